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

package services

import (
	"bytes"
	"time"

	cdx "github.com/CycloneDX/cyclonedx-go"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/rusko124/sbomify/database"
	"github.com/rusko124/sbomify/database/models"
	"github.com/rusko124/sbomify/dtos"
	"github.com/rusko124/sbomify/monitoring"
	"github.com/rusko124/sbomify/normalize"
	"github.com/rusko124/sbomify/shared"
)

type releaseService struct {
	releaseRepository   shared.ReleaseRepository
	productRepository   shared.ProductRepository
	componentRepository shared.ComponentRepository
	sbomRepository      shared.SbomRepository
	documentRepository  shared.DocumentRepository
}

func NewReleaseService(releaseRepository shared.ReleaseRepository, productRepository shared.ProductRepository, componentRepository shared.ComponentRepository, sbomRepository shared.SbomRepository, documentRepository shared.DocumentRepository) *releaseService {
	return &releaseService{
		releaseRepository:   releaseRepository,
		productRepository:   productRepository,
		componentRepository: componentRepository,
		sbomRepository:      sbomRepository,
		documentRepository:  documentRepository,
	}
}

func (s *releaseService) ListByProduct(productID uuid.UUID) ([]models.Release, error) {
	// make sure the latest release exists before listing
	if _, err := s.EnsureLatestRelease(productID); err != nil {
		return nil, err
	}
	return s.releaseRepository.GetByProductID(productID)
}

func (s *releaseService) ListByProductPaged(productID uuid.UUID, pageInfo shared.PageInfo, search string) (shared.Paged[models.Release], error) {
	if _, err := s.EnsureLatestRelease(productID); err != nil {
		return shared.Paged[models.Release]{}, err
	}
	return s.releaseRepository.GetByProductIDPaged(nil, productID, pageInfo, search)
}

// EnsureLatestRelease returns the system-managed latest release of the
// product, creating it on first access. Concurrent creators race on the
// partial unique index (one is_latest row per product); the loser re-reads
// the winner's row instead of failing the request.
func (s *releaseService) EnsureLatestRelease(productID uuid.UUID) (models.Release, error) {
	rel, err := s.releaseRepository.ReadLatestRelease(productID)
	if err == nil {
		return rel, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Release{}, err
	}

	rel = models.Release{
		Name:        models.LatestReleaseName,
		Description: "Automatically managed release containing the latest artifacts",
		IsLatest:    true,
		ProductID:   productID,
	}
	if err := s.releaseRepository.Create(nil, &rel); err != nil {
		if database.IsUniqueConstraintError(err) {
			return s.releaseRepository.ReadLatestRelease(productID)
		}
		return models.Release{}, err
	}

	return rel, nil
}

func (s *releaseService) Read(id uuid.UUID) (models.Release, error) {
	return s.releaseRepository.ReadWithArtifacts(id)
}

func (s *releaseService) Create(release *models.Release) error {
	if release.Name == models.LatestReleaseName {
		return ErrReservedReleaseName
	}

	_, err := s.releaseRepository.ReadByProductIDAndName(release.ProductID, release.Name)
	if err == nil {
		return ErrReleaseNameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if err := s.releaseRepository.Create(nil, release); err != nil {
		// two concurrent creators: the duplicate check above cannot catch this
		if database.IsUniqueConstraintError(err) {
			return ErrReleaseNameTaken
		}
		return err
	}

	monitoring.ReleasesCreatedAmount.Inc()
	return nil
}

func (s *releaseService) Update(release *models.Release, req dtos.ReleaseUpdateRequest) error {
	if release.IsLatest {
		return ErrLatestReleaseImmutable
	}

	updated := false

	if req.Name != nil && *req.Name != release.Name {
		if *req.Name == models.LatestReleaseName {
			return ErrReservedReleaseName
		}

		_, err := s.releaseRepository.ReadByProductIDAndName(release.ProductID, *req.Name)
		if err == nil {
			return ErrReleaseNameTaken
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		release.Name = *req.Name
		updated = true
	}

	if req.Description != nil && *req.Description != release.Description {
		release.Description = *req.Description
		updated = true
	}

	if req.IsPrerelease != nil && *req.IsPrerelease != release.IsPrerelease {
		release.IsPrerelease = *req.IsPrerelease
		updated = true
	}

	if req.CreatedAt != nil && !req.CreatedAt.Equal(release.CreatedAt) {
		release.CreatedAt = *req.CreatedAt
		updated = true
	}

	// a no-op patch does not touch the database
	if !updated {
		return nil
	}

	if err := s.releaseRepository.Save(nil, release); err != nil {
		if database.IsUniqueConstraintError(err) {
			return ErrReleaseNameTaken
		}
		return err
	}
	return nil
}

func (s *releaseService) Delete(release models.Release) error {
	if release.IsLatest {
		return ErrLatestReleaseUndeletable
	}
	// artifact links cascade on the database level
	return s.releaseRepository.Delete(nil, release.ID)
}

func (s *releaseService) AttachArtifact(release models.Release, sbomID, documentID *uuid.UUID) (models.ReleaseArtifact, error) {
	if release.IsLatest {
		return models.ReleaseArtifact{}, ErrLatestReleaseImmutable
	}

	if (sbomID == nil) == (documentID == nil) {
		return models.ReleaseArtifact{}, ErrExactlyOneArtifact
	}

	product, err := s.productRepository.Read(release.ProductID)
	if err != nil {
		return models.ReleaseArtifact{}, err
	}

	artifact := models.ReleaseArtifact{ReleaseID: release.ID}

	if sbomID != nil {
		sbom, err := s.sbomRepository.Read(*sbomID)
		if err != nil {
			return models.ReleaseArtifact{}, err
		}

		component, err := s.componentRepository.Read(sbom.ComponentID)
		if err != nil {
			return models.ReleaseArtifact{}, err
		}
		if component.TeamID != product.TeamID {
			return models.ReleaseArtifact{}, ErrCrossTeamArtifact
		}

		hasFormat, err := s.releaseRepository.HasSbomOfFormat(release.ID, sbom.ComponentID, sbom.Format)
		if err != nil {
			return models.ReleaseArtifact{}, err
		}
		if hasFormat {
			return models.ReleaseArtifact{}, &DuplicateSbomFormatError{ComponentName: component.Name, Format: string(sbom.Format)}
		}

		artifact.SbomID = &sbom.ID
	} else {
		document, err := s.documentRepository.Read(*documentID)
		if err != nil {
			return models.ReleaseArtifact{}, err
		}

		component, err := s.componentRepository.Read(document.ComponentID)
		if err != nil {
			return models.ReleaseArtifact{}, err
		}
		if component.TeamID != product.TeamID {
			return models.ReleaseArtifact{}, ErrCrossTeamArtifact
		}

		artifact.DocumentID = &document.ID
	}

	if err := s.releaseRepository.CreateArtifact(nil, &artifact); err != nil {
		if database.IsUniqueConstraintError(err) {
			return models.ReleaseArtifact{}, ErrArtifactAlreadyLinked
		}
		return models.ReleaseArtifact{}, err
	}

	monitoring.ReleaseArtifactsLinkedAmount.WithLabelValues(artifact.ArtifactType()).Inc()

	// reload to populate the linked sbom/document for the response
	return s.releaseRepository.ReadArtifact(release.ID, artifact.ID)
}

func (s *releaseService) DetachArtifact(release models.Release, artifactID uuid.UUID) error {
	if release.IsLatest {
		return ErrLatestReleaseImmutable
	}

	artifact, err := s.releaseRepository.ReadArtifact(release.ID, artifactID)
	if err != nil {
		return err
	}

	return s.releaseRepository.DeleteArtifact(nil, artifact.ID)
}

func (s *releaseService) AvailableArtifacts(release models.Release) ([]models.SBOM, []models.Document, error) {
	sboms, err := s.releaseRepository.GetAvailableSboms(release.ProductID, release.ID)
	if err != nil {
		return nil, nil, err
	}

	documents, err := s.releaseRepository.GetAvailableDocuments(release.ProductID, release.ID)
	if err != nil {
		return nil, nil, err
	}

	return sboms, documents, nil
}

// GenerateReleaseSbom merges all linked cyclonedx sboms into a single bom
// describing the release.
func (s *releaseService) GenerateReleaseSbom(release models.Release) (*cdx.BOM, error) {
	start := time.Now()
	defer func() {
		monitoring.ReleaseSbomGenerationDuration.Observe(time.Since(start).Seconds())
	}()

	artifacts, err := s.releaseRepository.GetArtifacts(release.ID)
	if err != nil {
		return nil, err
	}

	var boms []*cdx.BOM
	for _, a := range artifacts {
		if a.Sbom == nil || a.Sbom.Format != models.SbomFormatCycloneDX {
			continue
		}

		var bom cdx.BOM
		if err := cdx.NewBOMDecoder(bytes.NewReader(a.Sbom.Data), cdx.BOMFileFormatJSON).Decode(&bom); err != nil {
			return nil, errors.Wrapf(err, "could not decode sbom %s", a.Sbom.ID)
		}
		boms = append(boms, &bom)
	}

	if len(boms) == 0 {
		return nil, ErrEmptyRelease
	}

	product, err := s.productRepository.Read(release.ProductID)
	if err != nil {
		return nil, err
	}

	return normalize.MergeBoms(product.Name, release.Name, boms), nil
}

// SyncSbomToLatestReleases links a freshly uploaded sbom into the latest
// release of every product containing its component, replacing an older
// upload of the same format.
func (s *releaseService) SyncSbomToLatestReleases(sbom models.SBOM) error {
	products, err := s.productRepository.GetByComponentID(sbom.ComponentID)
	if err != nil {
		return err
	}

	for _, product := range products {
		latest, err := s.EnsureLatestRelease(product.ID)
		if err != nil {
			return err
		}

		existing, err := s.releaseRepository.GetSbomArtifactByComponentAndFormat(latest.ID, sbom.ComponentID, sbom.Format)
		if err == nil {
			if existing.SbomID != nil && *existing.SbomID == sbom.ID {
				continue
			}
			if err := s.releaseRepository.DeleteArtifact(nil, existing.ID); err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		artifact := models.ReleaseArtifact{ReleaseID: latest.ID, SbomID: &sbom.ID}
		if err := s.releaseRepository.CreateArtifact(nil, &artifact); err != nil {
			return err
		}
	}

	return nil
}
