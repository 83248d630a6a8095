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

// Component produces artifacts (SBOMs and documents). It belongs to a team
// and is linked to products through projects.
type Component struct {
	ID        uuid.UUID `json:"id" gorm:"primarykey;type:uuid;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name string `json:"name" gorm:"type:text;not null"`
	Slug string `json:"slug" gorm:"type:text;not null;uniqueIndex:idx_components_team_slug"`

	TeamID uuid.UUID `json:"teamId" gorm:"uniqueIndex:idx_components_team_slug;type:uuid;not null"`
	Team   Team      `json:"-" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE;"`

	Projects []Project `json:"projects,omitempty" gorm:"many2many:project_components;"`

	Sboms     []SBOM     `json:"sboms,omitempty" gorm:"foreignKey:ComponentID;constraint:OnDelete:CASCADE;"`
	Documents []Document `json:"documents,omitempty" gorm:"foreignKey:ComponentID;constraint:OnDelete:CASCADE;"`
}

func (m Component) TableName() string {
	return "components"
}

func (m Component) GetID() uuid.UUID {
	return m.ID
}
