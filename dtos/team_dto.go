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

package dtos

import (
	"time"

	"github.com/google/uuid"
)

type TeamDTO struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
}

type TeamCreateRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

type TeamChangeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=member admin"`
}

type ComponentCreateRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

type ComponentDTO struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	TeamID    uuid.UUID `json:"teamId"`
}
