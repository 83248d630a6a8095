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
	"gorm.io/datatypes"
)

type SbomFormat string

const (
	SbomFormatCycloneDX SbomFormat = "cyclonedx"
	SbomFormatSPDX      SbomFormat = "spdx"
)

// SBOM is a software bill of materials uploaded for a component. The raw
// document is kept verbatim so it can be merged into release packages later.
type SBOM struct {
	ID        uuid.UUID `json:"id" gorm:"primarykey;type:uuid;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"createdAt"`

	Name          string     `json:"name" gorm:"type:text;not null"`
	Version       string     `json:"version" gorm:"type:text"`
	Format        SbomFormat `json:"format" gorm:"type:text;not null"`
	FormatVersion string     `json:"formatVersion" gorm:"type:text"`

	ComponentID uuid.UUID `json:"componentId" gorm:"index;type:uuid;not null"`
	Component   Component `json:"-" gorm:"foreignKey:ComponentID;constraint:OnDelete:CASCADE;"`

	Data datatypes.JSON `json:"-" gorm:"type:jsonb"`
}

func (m SBOM) TableName() string {
	return "sboms"
}

type Document struct {
	ID        uuid.UUID `json:"id" gorm:"primarykey;type:uuid;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"createdAt"`

	Name         string `json:"name" gorm:"type:text;not null"`
	Version      string `json:"version" gorm:"type:text"`
	DocumentType string `json:"documentType" gorm:"type:text"`
	ContentType  string `json:"contentType" gorm:"type:text"`

	ComponentID uuid.UUID `json:"componentId" gorm:"index;type:uuid;not null"`
	Component   Component `json:"-" gorm:"foreignKey:ComponentID;constraint:OnDelete:CASCADE;"`
}

func (m Document) TableName() string {
	return "documents"
}
