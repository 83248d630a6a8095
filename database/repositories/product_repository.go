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

type productRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Product, *gorm.DB]
}

func NewProductRepository(db *gorm.DB) *productRepository {
	return &productRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Product](db),
	}
}

func (g *productRepository) Create(tx *gorm.DB, product *models.Product) error {
	firstFreeSlug, err := g.firstFreeSlug(product.TeamID, product.Slug)
	if err != nil {
		return fmt.Errorf("could not generate next slug: %w", err)
	}
	product.Slug = firstFreeSlug

	return g.GetDB(tx).Create(product).Error
}

func (g *productRepository) ReadBySlug(teamID uuid.UUID, slug string) (models.Product, error) {
	var p models.Product
	err := g.db.Model(models.Product{}).Where("team_id = ? AND slug = ?", teamID, slug).First(&p).Error
	return p, err
}

func (g *productRepository) GetByTeamID(teamID uuid.UUID) ([]models.Product, error) {
	var products []models.Product
	err := g.db.Where("team_id = ?", teamID).Order("name asc").Find(&products).Error
	return products, err
}

// GetProductComponents resolves the components reachable from a product
// through product_projects and project_components.
func (g *productRepository) GetProductComponents(productID uuid.UUID) ([]models.Component, error) {
	var components []models.Component
	err := g.db.
		Model(&models.Component{}).
		Joins("JOIN project_components pc ON pc.component_id = components.id").
		Joins("JOIN product_projects pp ON pp.project_id = pc.project_id").
		Where("pp.product_id = ?", productID).
		Distinct().
		Find(&components).Error
	return components, err
}

// GetByComponentID resolves the products which contain the component through
// one of their projects.
func (g *productRepository) GetByComponentID(componentID uuid.UUID) ([]models.Product, error) {
	var products []models.Product
	err := g.db.
		Model(&models.Product{}).
		Joins("JOIN product_projects pp ON pp.product_id = products.id").
		Joins("JOIN project_components pc ON pc.project_id = pp.project_id").
		Where("pc.component_id = ?", componentID).
		Distinct().
		Find(&products).Error
	return products, err
}

// slug uniqueness is per team, not global
func (g *productRepository) firstFreeSlug(teamID uuid.UUID, productSlug string) (string, error) {
	var slugs []string
	err := g.db.Model(&models.Product{}).
		Where("team_id = ? AND slug LIKE ?", teamID, productSlug+"%").
		Pluck("slug", &slugs).Error
	if err != nil {
		return "", err
	}

	baseTaken := false
	existing := make(map[string]bool)
	for _, s := range slugs {
		existing[s] = true
		if s == productSlug {
			baseTaken = true
		}
	}

	if !baseTaken {
		return productSlug, nil
	}

	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d", productSlug, i)
		if !existing[candidate] {
			return candidate, nil
		}
	}
}
