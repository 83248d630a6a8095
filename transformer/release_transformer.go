// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package transformer

import (
	"github.com/google/uuid"
	"github.com/rusko124/sbomify/database/models"
	"github.com/rusko124/sbomify/dtos"
)

func ReleaseArtifactToDTO(a models.ReleaseArtifact) dtos.ReleaseArtifactDTO {
	return dtos.ReleaseArtifactDTO{
		ID:           a.ID,
		ReleaseID:    a.ReleaseID,
		CreatedAt:    a.CreatedAt,
		ArtifactType: a.ArtifactType(),
		ArtifactName: a.ArtifactName(),
		SbomID:       a.SbomID,
		DocumentID:   a.DocumentID,
	}
}

func ReleaseToDTO(r models.Release) dtos.ReleaseDTO {
	dto := dtos.ReleaseDTO{
		ID:           r.ID,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
		Name:         r.Name,
		Description:  r.Description,
		IsLatest:     r.IsLatest,
		IsPrerelease: r.IsPrerelease,
		ProductID:    r.ProductID,
		Artifacts:    []dtos.ReleaseArtifactDTO{},
	}

	for _, a := range r.Artifacts {
		dto.Artifacts = append(dto.Artifacts, ReleaseArtifactToDTO(a))
	}

	return dto
}

func ReleaseCreateRequestToModel(r dtos.ReleaseCreateRequest, productID uuid.UUID) models.Release {
	return models.Release{
		Name:         r.Name,
		Description:  r.Description,
		IsPrerelease: r.IsPrerelease,
		ProductID:    productID,
	}
}
