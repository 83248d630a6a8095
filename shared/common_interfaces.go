// Copyright (C) 2025 timbastin
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

package shared

import (
	"github.com/CycloneDX/cyclonedx-go"
	"github.com/google/uuid"

	"github.com/rusko124/sbomify/database/models"
	"github.com/rusko124/sbomify/dtos"
	"github.com/rusko124/sbomify/utils"
)

type TeamRepository interface {
	utils.Repository[uuid.UUID, models.Team, DB]
	ReadBySlug(slug string) (models.Team, error)
}

type TeamService interface {
	CreateTeam(ctx Context, team *models.Team) error
	ReadBySlug(slug string) (*models.Team, error)
}

type ProductRepository interface {
	utils.Repository[uuid.UUID, models.Product, DB]
	ReadBySlug(teamID uuid.UUID, slug string) (models.Product, error)
	GetByTeamID(teamID uuid.UUID) ([]models.Product, error)
	GetProductComponents(productID uuid.UUID) ([]models.Component, error)
	GetByComponentID(componentID uuid.UUID) ([]models.Product, error)
}

type ComponentRepository interface {
	utils.Repository[uuid.UUID, models.Component, DB]
	ReadBySlug(teamID uuid.UUID, slug string) (models.Component, error)
	GetByTeamID(teamID uuid.UUID) ([]models.Component, error)
}

type SbomRepository interface {
	utils.Repository[uuid.UUID, models.SBOM, DB]
	GetByComponentID(componentID uuid.UUID) ([]models.SBOM, error)
	GetLatestByComponentAndFormat(componentID uuid.UUID, format models.SbomFormat) (models.SBOM, error)
}

type SbomService interface {
	ImportSbom(component models.Component, raw []byte) (models.SBOM, error)
}

type DocumentRepository interface {
	utils.Repository[uuid.UUID, models.Document, DB]
	GetByComponentID(componentID uuid.UUID) ([]models.Document, error)
}

type ReleaseRepository interface {
	utils.Repository[uuid.UUID, models.Release, DB]
	GetByProductID(productID uuid.UUID) ([]models.Release, error)
	GetByProductIDPaged(tx DB, productID uuid.UUID, pageInfo PageInfo, search string) (Paged[models.Release], error)
	ReadWithArtifacts(id uuid.UUID) (models.Release, error)
	ReadByProductIDAndName(productID uuid.UUID, name string) (models.Release, error)
	ReadLatestRelease(productID uuid.UUID) (models.Release, error)
	CreateArtifact(tx DB, artifact *models.ReleaseArtifact) error
	ReadArtifact(releaseID, artifactID uuid.UUID) (models.ReleaseArtifact, error)
	DeleteArtifact(tx DB, id uuid.UUID) error
	GetArtifacts(releaseID uuid.UUID) ([]models.ReleaseArtifact, error)
	HasSbomOfFormat(releaseID uuid.UUID, componentID uuid.UUID, format models.SbomFormat) (bool, error)
	GetSbomArtifactByComponentAndFormat(releaseID uuid.UUID, componentID uuid.UUID, format models.SbomFormat) (models.ReleaseArtifact, error)
	GetAvailableSboms(productID, releaseID uuid.UUID) ([]models.SBOM, error)
	GetAvailableDocuments(productID, releaseID uuid.UUID) ([]models.Document, error)
}

type ReleaseService interface {
	ListByProduct(productID uuid.UUID) ([]models.Release, error)
	ListByProductPaged(productID uuid.UUID, pageInfo PageInfo, search string) (Paged[models.Release], error)
	EnsureLatestRelease(productID uuid.UUID) (models.Release, error)
	Read(id uuid.UUID) (models.Release, error)
	Create(release *models.Release) error
	Update(release *models.Release, req dtos.ReleaseUpdateRequest) error
	Delete(release models.Release) error

	AttachArtifact(release models.Release, sbomID, documentID *uuid.UUID) (models.ReleaseArtifact, error)
	DetachArtifact(release models.Release, artifactID uuid.UUID) error
	AvailableArtifacts(release models.Release) ([]models.SBOM, []models.Document, error)
	GenerateReleaseSbom(release models.Release) (*cyclonedx.BOM, error)
	SyncSbomToLatestReleases(sbom models.SBOM) error
}

type AccessTokenRepository interface {
	utils.Repository[uuid.UUID, models.AccessToken, DB]
	ReadByToken(token string) (models.AccessToken, error)
	MarkAsLastUsedNow(id uuid.UUID) error
	ListByUserID(userID string) ([]models.AccessToken, error)
}
