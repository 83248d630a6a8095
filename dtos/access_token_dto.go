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

type AccessTokenDTO struct {
	ID          uuid.UUID  `json:"id"`
	CreatedAt   time.Time  `json:"createdAt"`
	Description string     `json:"description"`
	Scopes      string     `json:"scopes"`
	LastUsedAt  *time.Time `json:"lastUsedAt"`
}

type AccessTokenCreateRequest struct {
	Description string `json:"description"`
	Scopes      string `json:"scopes" validate:"required"`
}

// AccessTokenCreatedDTO is only returned once, directly after creation. The
// plaintext token is never persisted.
type AccessTokenCreatedDTO struct {
	AccessTokenDTO
	Token string `json:"token"`
}
