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

// LatestReleaseName is reserved for the system-managed release that always
// tracks the newest artifacts of a product.
const LatestReleaseName = "latest"

type Release struct {
	ID uuid.UUID `json:"id" gorm:"primarykey;type:uuid;default:gen_random_uuid()"`
	// CreatedAt is client-settable on update to allow backdating imported releases.
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name         string `json:"name" gorm:"not null;type:text;uniqueIndex:idx_releases_product_name"`
	Description  string `json:"description" gorm:"type:text"`
	IsLatest     bool   `json:"isLatest" gorm:"not null;default:false"`
	IsPrerelease bool   `json:"isPrerelease" gorm:"not null;default:false"`

	ProductID uuid.UUID `json:"productId" gorm:"uniqueIndex:idx_releases_product_name;type:uuid;not null"`
	Product   Product   `json:"-" gorm:"foreignKey:ProductID;references:ID;constraint:OnDelete:CASCADE;"`

	Artifacts []ReleaseArtifact `json:"artifacts,omitempty" gorm:"foreignKey:ReleaseID;constraint:OnDelete:CASCADE;"`
}

func (m Release) TableName() string {
	return "releases"
}

// ReleaseArtifact links a release to exactly one SBOM or one document,
// never both. The database enforces the exclusivity with a check constraint.
type ReleaseArtifact struct {
	ID        uuid.UUID `json:"id" gorm:"primarykey;type:uuid;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"createdAt"`

	ReleaseID uuid.UUID `json:"releaseId" gorm:"index;type:uuid;not null"`
	Release   Release   `json:"-" gorm:"foreignKey:ReleaseID;constraint:OnDelete:CASCADE;"`

	// unique (release_id, sbom_id) and (release_id, document_id) are enforced
	// by the SQL migrations
	SbomID *uuid.UUID `json:"sbomId,omitempty" gorm:"index;type:uuid"`
	Sbom   *SBOM      `json:"sbom,omitempty" gorm:"foreignKey:SbomID;references:ID;constraint:OnDelete:CASCADE;"`

	DocumentID *uuid.UUID `json:"documentId,omitempty" gorm:"index;type:uuid"`
	Document   *Document  `json:"document,omitempty" gorm:"foreignKey:DocumentID;references:ID;constraint:OnDelete:CASCADE;"`
}

func (m ReleaseArtifact) TableName() string {
	return "release_artifacts"
}

func (m ReleaseArtifact) ArtifactType() string {
	if m.SbomID != nil {
		return "sbom"
	}
	return "document"
}

func (m ReleaseArtifact) ArtifactName() string {
	if m.Sbom != nil {
		return m.Sbom.Name
	}
	if m.Document != nil {
		return m.Document.Name
	}
	return ""
}
