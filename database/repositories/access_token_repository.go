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
	"time"

	"github.com/google/uuid"
	"github.com/rusko124/sbomify/database/models"
	"github.com/rusko124/sbomify/utils"
	"gorm.io/gorm"
)

type accessTokenRepository struct {
	utils.Repository[uuid.UUID, models.AccessToken, *gorm.DB]
	db *gorm.DB
}

func NewAccessTokenRepository(db *gorm.DB) *accessTokenRepository {
	return &accessTokenRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.AccessToken](db),
	}
}

func (g *accessTokenRepository) ReadByToken(token string) (models.AccessToken, error) {
	var t models.AccessToken
	// make sure to hash the token before querying
	err := g.db.First(&t, "token_hash = ?", models.HashToken(token)).Error
	return t, err
}

func (g *accessTokenRepository) MarkAsLastUsedNow(id uuid.UUID) error {
	return g.db.Model(&models.AccessToken{}).Where("id = ?", id).Update("last_used_at", time.Now()).Error
}

func (g *accessTokenRepository) ListByUserID(userID string) ([]models.AccessToken, error) {
	var tokens []models.AccessToken
	err := g.db.Where("user_id = ?", userID).Find(&tokens).Error
	return tokens, err
}
