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

package models

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID        uuid.UUID `json:"id" gorm:"primarykey;type:uuid;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name        string `json:"name" gorm:"type:text;not null"`
	Slug        string `json:"slug" gorm:"type:text;not null;uniqueIndex:idx_products_team_slug"`
	Description string `json:"description" gorm:"type:text"`

	TeamID uuid.UUID `json:"teamId" gorm:"uniqueIndex:idx_products_team_slug;type:uuid;not null"`
	Team   Team      `json:"-" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE;"`

	Projects []Project `json:"projects,omitempty" gorm:"many2many:product_projects;"`
	Releases []Release `json:"releases,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE;"`
}

func (m Product) TableName() string {
	return "products"
}

func (m Product) GetID() uuid.UUID {
	return m.ID
}

// Project groups components and connects them to products. A component can
// serve multiple products through shared projects.
type Project struct {
	ID        uuid.UUID `json:"id" gorm:"primarykey;type:uuid;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name        string `json:"name" gorm:"type:text;not null"`
	Slug        string `json:"slug" gorm:"type:text;not null;uniqueIndex:idx_projects_team_slug"`
	Description string `json:"description" gorm:"type:text"`

	TeamID uuid.UUID `json:"teamId" gorm:"uniqueIndex:idx_projects_team_slug;type:uuid;not null"`
	Team   Team      `json:"-" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE;"`

	Products   []Product   `json:"products,omitempty" gorm:"many2many:product_projects;"`
	Components []Component `json:"components,omitempty" gorm:"many2many:project_components;"`
}

func (m Project) TableName() string {
	return "projects"
}
