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

type SbomDTO struct {
	ID            uuid.UUID `json:"id"`
	CreatedAt     time.Time `json:"createdAt"`
	Name          string    `json:"name"`
	Version       string    `json:"version"`
	Format        string    `json:"format"`
	FormatVersion string    `json:"formatVersion"`
	ComponentID   uuid.UUID `json:"componentId"`
}

type DocumentDTO struct {
	ID           uuid.UUID `json:"id"`
	CreatedAt    time.Time `json:"createdAt"`
	Name         string    `json:"name"`
	Version      string    `json:"version"`
	DocumentType string    `json:"documentType"`
	ContentType  string    `json:"contentType"`
	ComponentID  uuid.UUID `json:"componentId"`
}

type DocumentCreateRequest struct {
	Name         string `json:"name" validate:"required,max=255"`
	Version      string `json:"version"`
	DocumentType string `json:"documentType"`
	ContentType  string `json:"contentType"`
}
