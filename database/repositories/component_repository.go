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

type componentRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Component, *gorm.DB]
}

func NewComponentRepository(db *gorm.DB) *componentRepository {
	return &componentRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Component](db),
	}
}

func (g *componentRepository) ReadBySlug(teamID uuid.UUID, slug string) (models.Component, error) {
	var c models.Component
	err := g.db.Model(models.Component{}).Where("team_id = ? AND slug = ?", teamID, slug).First(&c).Error
	return c, err
}

func (g *componentRepository) GetByTeamID(teamID uuid.UUID) ([]models.Component, error) {
	var components []models.Component
	err := g.db.Where("team_id = ?", teamID).Order("name asc").Find(&components).Error
	return components, err
}
