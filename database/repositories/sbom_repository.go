// Copyright (C) 2023 Tim Bastin, l3montree GmbH
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
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package repositories

import (
	"github.com/google/uuid"
	"github.com/rusko124/sbomify/database/models"
	"github.com/rusko124/sbomify/utils"
	"gorm.io/gorm"
)

type sbomRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.SBOM, *gorm.DB]
}

func NewSbomRepository(db *gorm.DB) *sbomRepository {
	return &sbomRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.SBOM](db),
	}
}

func (g *sbomRepository) GetByComponentID(componentID uuid.UUID) ([]models.SBOM, error) {
	var sboms []models.SBOM
	err := g.db.Where("component_id = ?", componentID).Order("created_at desc").Find(&sboms).Error
	return sboms, err
}

// GetLatestByComponentAndFormat returns the newest upload for a
// (component, format) pair.
func (g *sbomRepository) GetLatestByComponentAndFormat(componentID uuid.UUID, format models.SbomFormat) (models.SBOM, error) {
	var sbom models.SBOM
	err := g.db.Where("component_id = ? AND format = ?", componentID, format).Order("created_at desc").First(&sbom).Error
	return sbom, err
}
