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

type ReleaseArtifactDTO struct {
	ID        uuid.UUID `json:"id"`
	ReleaseID uuid.UUID `json:"releaseId"`
	CreatedAt time.Time `json:"createdAt"`

	// denormalized for list views
	ArtifactType string `json:"artifactType"`
	ArtifactName string `json:"artifactName"`

	SbomID     *uuid.UUID `json:"sbomId,omitempty"`
	DocumentID *uuid.UUID `json:"documentId,omitempty"`
}

type ReleaseDTO struct {
	ID           uuid.UUID            `json:"id"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
	Name         string               `json:"name"`
	Description  string               `json:"description"`
	IsLatest     bool                 `json:"isLatest"`
	IsPrerelease bool                 `json:"isPrerelease"`
	ProductID    uuid.UUID            `json:"productId"`
	Artifacts    []ReleaseArtifactDTO `json:"artifacts"`
}

type AvailableArtifactsDTO struct {
	Sboms     []SbomDTO     `json:"sboms"`
	Documents []DocumentDTO `json:"documents"`
}

// requests
type ReleaseCreateRequest struct {
	Name         string `json:"name" validate:"required,max=255"`
	Description  string `json:"description"`
	IsPrerelease bool   `json:"isPrerelease"`
}

// ReleaseUpdateRequest carries pointer fields so a PATCH can distinguish
// "not provided" from a zero value.
type ReleaseUpdateRequest struct {
	Name         *string    `json:"name" validate:"omitempty,max=255"`
	Description  *string    `json:"description"`
	IsPrerelease *bool      `json:"isPrerelease"`
	CreatedAt    *time.Time `json:"createdAt"`
}

type ReleaseArtifactCreateRequest struct {
	SbomID     *uuid.UUID `json:"sbomId"`
	DocumentID *uuid.UUID `json:"documentId"`
}
