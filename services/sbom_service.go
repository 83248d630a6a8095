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

package services

import (
	"gorm.io/datatypes"

	"github.com/rusko124/sbomify/database/models"
	"github.com/rusko124/sbomify/normalize"
	"github.com/rusko124/sbomify/shared"
)

type sbomService struct {
	sbomRepository shared.SbomRepository
	releaseService shared.ReleaseService
}

func NewSbomService(sbomRepository shared.SbomRepository, releaseService shared.ReleaseService) *sbomService {
	return &sbomService{
		sbomRepository: sbomRepository,
		releaseService: releaseService,
	}
}

// ImportSbom stores a raw sbom upload for a component and propagates it into
// the latest release of every product containing the component.
func (s *sbomService) ImportSbom(component models.Component, raw []byte) (models.SBOM, error) {
	info, err := normalize.InspectSbom(raw)
	if err != nil {
		return models.SBOM{}, ErrInvalidSbom
	}

	name := info.Name
	if name == "" {
		name = component.Name
	}

	sbom := models.SBOM{
		Name:          name,
		Version:       info.Version,
		Format:        models.SbomFormat(info.Format),
		FormatVersion: info.FormatVersion,
		ComponentID:   component.ID,
		Data:          datatypes.JSON(raw),
	}

	if err := s.sbomRepository.Create(nil, &sbom); err != nil {
		return models.SBOM{}, err
	}

	if err := s.releaseService.SyncSbomToLatestReleases(sbom); err != nil {
		return models.SBOM{}, err
	}

	return sbom, nil
}
