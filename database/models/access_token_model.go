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
	"crypto/sha256"
	"encoding/base64"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AccessToken is a personal API token. Only the sha256 hash is persisted.
type AccessToken struct {
	ID        uuid.UUID `json:"id" gorm:"primarykey;type:uuid;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"createdAt"`

	UserID      uuid.UUID  `json:"userId" gorm:"index;type:uuid;not null"`
	Description string     `json:"description" gorm:"type:text"`
	TokenHash   string     `json:"-" gorm:"type:text;not null;uniqueIndex"`
	LastUsedAt  *time.Time `json:"lastUsedAt" gorm:"default:null"`
	Scopes      string     `json:"scopes" gorm:"type:text"` // whitespace separated, e.g. "read manage"
}

func (m AccessToken) TableName() string {
	return "access_tokens"
}

func (m AccessToken) GetUserID() string {
	return m.UserID.String()
}

func (m AccessToken) GetScopes() []string {
	return strings.Fields(m.Scopes)
}

func HashToken(token string) string {
	hasher := sha256.New()
	hasher.Write([]byte(token))
	// make it base64
	return base64.StdEncoding.EncodeToString(hasher.Sum(nil))
}
