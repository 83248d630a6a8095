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

type documentRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Document, *gorm.DB]
}

func NewDocumentRepository(db *gorm.DB) *documentRepository {
	return &documentRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Document](db),
	}
}

func (g *documentRepository) GetByComponentID(componentID uuid.UUID) ([]models.Document, error) {
	var documents []models.Document
	err := g.db.Where("component_id = ?", componentID).Order("created_at desc").Find(&documents).Error
	return documents, err
}
