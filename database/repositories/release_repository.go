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
	"github.com/google/uuid"
	"github.com/rusko124/sbomify/database/models"
	"github.com/rusko124/sbomify/shared"
	"github.com/rusko124/sbomify/utils"
	"gorm.io/gorm"
)

type releaseRepository struct {
	utils.Repository[uuid.UUID, models.Release, *gorm.DB]
	db *gorm.DB
}

func NewReleaseRepository(db *gorm.DB) *releaseRepository {
	return &releaseRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Release](db),
	}
}

func (r *releaseRepository) GetByProductID(productID uuid.UUID) ([]models.Release, error) {
	var rels []models.Release
	err := r.db.Preload("Artifacts").Preload("Artifacts.Sbom").Preload("Artifacts.Document").
		Where("product_id = ?", productID).
		Order("created_at desc").
		Find(&rels).Error
	if err != nil {
		return nil, err
	}

	return rels, nil
}

// GetByProductIDPaged returns a paged list of releases for a product with optional search
func (r *releaseRepository) GetByProductIDPaged(tx *gorm.DB, productID uuid.UUID, pageInfo shared.PageInfo, search string) (shared.Paged[models.Release], error) {
	db := r.db
	if tx != nil {
		db = tx
	}

	q := db.Model(&models.Release{}).
		Preload("Artifacts").Preload("Artifacts.Sbom").Preload("Artifacts.Document").
		Where("product_id = ?", productID)

	if search != "" {
		q = q.Where("name ILIKE ? OR description ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return shared.Paged[models.Release]{}, err
	}

	var releases []models.Release
	if err := q.Order("created_at desc").Limit(pageInfo.PageSize).Offset((pageInfo.Page - 1) * pageInfo.PageSize).Find(&releases).Error; err != nil {
		return shared.Paged[models.Release]{}, err
	}

	return shared.NewPaged(pageInfo, count, releases), nil
}

// ReadWithArtifacts reads a release and preloads its artifact links and the
// linked sboms/documents.
func (r *releaseRepository) ReadWithArtifacts(id uuid.UUID) (models.Release, error) {
	var rel models.Release
	err := r.db.Preload("Artifacts").Preload("Artifacts.Sbom").Preload("Artifacts.Document").First(&rel, "id = ?", id).Error
	return rel, err
}

func (r *releaseRepository) ReadByProductIDAndName(productID uuid.UUID, name string) (models.Release, error) {
	var rel models.Release
	err := r.db.Where("product_id = ? AND name = ?", productID, name).First(&rel).Error
	return rel, err
}

// ReadLatestRelease returns the system-managed latest release of the
// product. The partial unique index guarantees at most one is_latest row
// per product.
func (r *releaseRepository) ReadLatestRelease(productID uuid.UUID) (models.Release, error) {
	var rel models.Release
	err := r.db.Where("product_id = ? AND is_latest = ?", productID, true).First(&rel).Error
	return rel, err
}

// CreateArtifact inserts a new ReleaseArtifact row.
func (r *releaseRepository) CreateArtifact(tx *gorm.DB, artifact *models.ReleaseArtifact) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	return db.Create(artifact).Error
}

// ReadArtifact reads an artifact link scoped to its release.
func (r *releaseRepository) ReadArtifact(releaseID, artifactID uuid.UUID) (models.ReleaseArtifact, error) {
	var artifact models.ReleaseArtifact
	err := r.db.Preload("Sbom").Preload("Document").Where("release_id = ?", releaseID).First(&artifact, "id = ?", artifactID).Error
	return artifact, err
}

// DeleteArtifact deletes an artifact link by id.
func (r *releaseRepository) DeleteArtifact(tx *gorm.DB, id uuid.UUID) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	return db.Delete(&models.ReleaseArtifact{}, "id = ?", id).Error
}

func (r *releaseRepository) GetArtifacts(releaseID uuid.UUID) ([]models.ReleaseArtifact, error) {
	var artifacts []models.ReleaseArtifact
	err := r.db.Preload("Sbom").Preload("Document").Where("release_id = ?", releaseID).Order("created_at asc").Find(&artifacts).Error
	return artifacts, err
}

// HasSbomOfFormat reports whether the release already links an sbom of the
// same component and format.
func (r *releaseRepository) HasSbomOfFormat(releaseID uuid.UUID, componentID uuid.UUID, format models.SbomFormat) (bool, error) {
	var count int64
	err := r.db.Model(&models.ReleaseArtifact{}).
		Joins("JOIN sboms ON sboms.id = release_artifacts.sbom_id").
		Where("release_artifacts.release_id = ? AND sboms.component_id = ? AND sboms.format = ?", releaseID, componentID, format).
		Count(&count).Error
	return count > 0, err
}

// GetSbomArtifactByComponentAndFormat returns the sbom link of the release
// matching the (component, format) pair.
func (r *releaseRepository) GetSbomArtifactByComponentAndFormat(releaseID uuid.UUID, componentID uuid.UUID, format models.SbomFormat) (models.ReleaseArtifact, error) {
	var artifact models.ReleaseArtifact
	err := r.db.
		Joins("JOIN sboms ON sboms.id = release_artifacts.sbom_id").
		Where("release_artifacts.release_id = ? AND sboms.component_id = ? AND sboms.format = ?", releaseID, componentID, format).
		First(&artifact).Error
	return artifact, err
}

// GetAvailableSboms returns the sboms of the product's components which are
// not yet linked to the release.
func (r *releaseRepository) GetAvailableSboms(productID, releaseID uuid.UUID) ([]models.SBOM, error) {
	var sboms []models.SBOM
	err := r.db.
		Model(&models.SBOM{}).
		Joins("JOIN project_components pc ON pc.component_id = sboms.component_id").
		Joins("JOIN product_projects pp ON pp.project_id = pc.project_id").
		Where("pp.product_id = ?", productID).
		Where("sboms.id NOT IN (?)", r.db.Model(&models.ReleaseArtifact{}).Select("sbom_id").Where("release_id = ? AND sbom_id IS NOT NULL", releaseID)).
		Distinct().
		Order("sboms.created_at desc").
		Find(&sboms).Error
	return sboms, err
}

// GetAvailableDocuments returns the documents of the product's components
// which are not yet linked to the release.
func (r *releaseRepository) GetAvailableDocuments(productID, releaseID uuid.UUID) ([]models.Document, error) {
	var documents []models.Document
	err := r.db.
		Model(&models.Document{}).
		Joins("JOIN project_components pc ON pc.component_id = documents.component_id").
		Joins("JOIN product_projects pp ON pp.project_id = pc.project_id").
		Where("pp.product_id = ?", productID).
		Where("documents.id NOT IN (?)", r.db.Model(&models.ReleaseArtifact{}).Select("document_id").Where("release_id = ? AND document_id IS NOT NULL", releaseID)).
		Distinct().
		Order("documents.created_at desc").
		Find(&documents).Error
	return documents, err
}
