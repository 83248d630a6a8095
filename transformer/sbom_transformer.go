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
	"github.com/rusko124/sbomify/database/models"
	"github.com/rusko124/sbomify/dtos"
)

func SbomToDTO(s models.SBOM) dtos.SbomDTO {
	return dtos.SbomDTO{
		ID:            s.ID,
		CreatedAt:     s.CreatedAt,
		Name:          s.Name,
		Version:       s.Version,
		Format:        string(s.Format),
		FormatVersion: s.FormatVersion,
		ComponentID:   s.ComponentID,
	}
}

func DocumentToDTO(d models.Document) dtos.DocumentDTO {
	return dtos.DocumentDTO{
		ID:           d.ID,
		CreatedAt:    d.CreatedAt,
		Name:         d.Name,
		Version:      d.Version,
		DocumentType: d.DocumentType,
		ContentType:  d.ContentType,
		ComponentID:  d.ComponentID,
	}
}

func DocumentCreateRequestToModel(r dtos.DocumentCreateRequest, component models.Component) models.Document {
	return models.Document{
		Name:         r.Name,
		Version:      r.Version,
		DocumentType: r.DocumentType,
		ContentType:  r.ContentType,
		ComponentID:  component.ID,
	}
}
