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
	"fmt"

	"github.com/google/uuid"
	"github.com/rusko124/sbomify/database/models"
	"github.com/rusko124/sbomify/utils"
	"gorm.io/gorm"
)

type teamRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Team, *gorm.DB]
}

func NewTeamRepository(db *gorm.DB) *teamRepository {
	return &teamRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Team](db),
	}
}

func (g *teamRepository) Create(tx *gorm.DB, team *models.Team) error {
	firstFreeSlug, err := g.firstFreeSlug(team.Slug)
	if err != nil {
		return fmt.Errorf("could not generate next slug: %w", err)
	}
	team.Slug = firstFreeSlug

	return g.GetDB(tx).Create(team).Error
}

func (g *teamRepository) ReadBySlug(slug string) (models.Team, error) {
	var t models.Team
	err := g.db.Model(models.Team{}).Where("slug = ?", slug).First(&t).Error
	return t, err
}

// firstFreeSlug appends an increasing suffix until the slug is unused.
func (g *teamRepository) firstFreeSlug(teamSlug string) (string, error) {
	var slugs []string
	err := g.db.Model(&models.Team{}).
		Where("slug LIKE ?", teamSlug+"%").
		Pluck("slug", &slugs).Error
	if err != nil {
		return "", err
	}

	baseTaken := false
	existing := make(map[string]bool)
	for _, s := range slugs {
		existing[s] = true
		if s == teamSlug {
			baseTaken = true
		}
	}

	if !baseTaken {
		return teamSlug, nil
	}

	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d", teamSlug, i)
		if !existing[candidate] {
			return candidate, nil
		}
	}
}
