package services

import (
	"fmt"
	"testing"
	"time"

	cdx "github.com/CycloneDX/cyclonedx-go"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/rusko124/sbomify/database/models"
	"github.com/rusko124/sbomify/dtos"
	"github.com/rusko124/sbomify/mocks"
	"github.com/rusko124/sbomify/shared"
)

func TestReleaseCreate(t *testing.T) {
	productID := uuid.New()

	t.Run("should reject the reserved name latest", func(t *testing.T) {
		releaseRepository := mocks.NewReleaseRepository(t)

		s := NewReleaseService(releaseRepository, nil, nil, nil, nil)

		err := s.Create(&models.Release{Name: "latest", ProductID: productID})
		assert.ErrorIs(t, err, ErrReservedReleaseName)
	})

	t.Run("should reject a duplicate name", func(t *testing.T) {
		releaseRepository := mocks.NewReleaseRepository(t)
		releaseRepository.On("ReadByProductIDAndName", productID, "v1.0.0").Return(models.Release{Name: "v1.0.0"}, nil)

		s := NewReleaseService(releaseRepository, nil, nil, nil, nil)

		err := s.Create(&models.Release{Name: "v1.0.0", ProductID: productID})
		assert.ErrorIs(t, err, ErrReleaseNameTaken)
	})

	t.Run("should map a unique constraint violation to a duplicate name error", func(t *testing.T) {
		// a concurrent creator can slip past the duplicate pre-check
		releaseRepository := mocks.NewReleaseRepository(t)
		releaseRepository.On("ReadByProductIDAndName", productID, "v1.0.0").Return(models.Release{}, gorm.ErrRecordNotFound)
		releaseRepository.On("Create", mock.Anything, mock.Anything).Return(&pgconn.PgError{Code: "23505"})

		s := NewReleaseService(releaseRepository, nil, nil, nil, nil)

		err := s.Create(&models.Release{Name: "v1.0.0", ProductID: productID})
		assert.ErrorIs(t, err, ErrReleaseNameTaken)
	})

	t.Run("should pass through any other repository error", func(t *testing.T) {
		releaseRepository := mocks.NewReleaseRepository(t)
		releaseRepository.On("ReadByProductIDAndName", productID, "v1.0.0").Return(models.Release{}, fmt.Errorf("something went wrong"))

		s := NewReleaseService(releaseRepository, nil, nil, nil, nil)

		err := s.Create(&models.Release{Name: "v1.0.0", ProductID: productID})
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrReleaseNameTaken)
	})

	t.Run("should create the release if everything goes right", func(t *testing.T) {
		releaseRepository := mocks.NewReleaseRepository(t)
		releaseRepository.On("ReadByProductIDAndName", productID, "v1.0.0").Return(models.Release{}, gorm.ErrRecordNotFound)
		releaseRepository.On("Create", mock.Anything, mock.Anything).Return(nil)

		s := NewReleaseService(releaseRepository, nil, nil, nil, nil)

		err := s.Create(&models.Release{Name: "v1.0.0", ProductID: productID})
		assert.Nil(t, err)
	})
}

func TestReleaseUpdate(t *testing.T) {
	productID := uuid.New()

	t.Run("should refuse to update the latest release", func(t *testing.T) {
		releaseRepository := mocks.NewReleaseRepository(t)

		s := NewReleaseService(releaseRepository, nil, nil, nil, nil)

		release := models.Release{Name: "latest", IsLatest: true, ProductID: productID}
		err := s.Update(&release, dtos.ReleaseUpdateRequest{Name: shared.Ptr("v2")})
		assert.ErrorIs(t, err, ErrLatestReleaseImmutable)
	})

	t.Run("should refuse a rename to the reserved name", func(t *testing.T) {
		releaseRepository := mocks.NewReleaseRepository(t)

		s := NewReleaseService(releaseRepository, nil, nil, nil, nil)

		release := models.Release{Name: "v1.0.0", ProductID: productID}
		err := s.Update(&release, dtos.ReleaseUpdateRequest{Name: shared.Ptr("latest")})
		assert.ErrorIs(t, err, ErrReservedReleaseName)
	})

	t.Run("should refuse a rename to a taken name", func(t *testing.T) {
		releaseRepository := mocks.NewReleaseRepository(t)
		releaseRepository.On("ReadByProductIDAndName", productID, "v2.0.0").Return(models.Release{Name: "v2.0.0"}, nil)

		s := NewReleaseService(releaseRepository, nil, nil, nil, nil)

		release := models.Release{Name: "v1.0.0", ProductID: productID}
		err := s.Update(&release, dtos.ReleaseUpdateRequest{Name: shared.Ptr("v2.0.0")})
		assert.ErrorIs(t, err, ErrReleaseNameTaken)
	})

	t.Run("should not touch the database on a no-op patch", func(t *testing.T) {
		// AssertExpectations fails the test if Save gets called
		releaseRepository := mocks.NewReleaseRepository(t)

		s := NewReleaseService(releaseRepository, nil, nil, nil, nil)

		release := models.Release{Name: "v1.0.0", Description: "first", ProductID: productID}
		err := s.Update(&release, dtos.ReleaseUpdateRequest{Name: shared.Ptr("v1.0.0"), Description: shared.Ptr("first")})
		assert.Nil(t, err)
	})

	t.Run("should save the changed fields", func(t *testing.T) {
		releaseRepository := mocks.NewReleaseRepository(t)
		releaseRepository.On("ReadByProductIDAndName", productID, "v2.0.0").Return(models.Release{}, gorm.ErrRecordNotFound)
		releaseRepository.On("Save", mock.Anything, mock.Anything).Return(nil)

		s := NewReleaseService(releaseRepository, nil, nil, nil, nil)

		createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		release := models.Release{Name: "v1.0.0", IsPrerelease: false, ProductID: productID}
		err := s.Update(&release, dtos.ReleaseUpdateRequest{
			Name:         shared.Ptr("v2.0.0"),
			IsPrerelease: shared.Ptr(true),
			CreatedAt:    &createdAt,
		})

		assert.Nil(t, err)
		assert.Equal(t, "v2.0.0", release.Name)
		assert.True(t, release.IsPrerelease)
		assert.Equal(t, createdAt, release.CreatedAt)
	})
}

func TestReleaseDelete(t *testing.T) {
	t.Run("should refuse to delete the latest release", func(t *testing.T) {
		releaseRepository := mocks.NewReleaseRepository(t)

		s := NewReleaseService(releaseRepository, nil, nil, nil, nil)

		err := s.Delete(models.Release{Name: "latest", IsLatest: true})
		assert.ErrorIs(t, err, ErrLatestReleaseUndeletable)
	})

	t.Run("should delete a regular release", func(t *testing.T) {
		release := models.Release{ID: uuid.New(), Name: "v1.0.0"}

		releaseRepository := mocks.NewReleaseRepository(t)
		releaseRepository.On("Delete", mock.Anything, release.ID).Return(nil)

		s := NewReleaseService(releaseRepository, nil, nil, nil, nil)

		err := s.Delete(release)
		assert.Nil(t, err)
	})
}

func TestAttachArtifact(t *testing.T) {
	teamID := uuid.New()
	productID := uuid.New()
	componentID := uuid.New()
	release := models.Release{ID: uuid.New(), Name: "v1.0.0", ProductID: productID}
	product := models.Product{ID: productID, TeamID: teamID}

	t.Run("should refuse to modify the latest release", func(t *testing.T) {
		s := NewReleaseService(mocks.NewReleaseRepository(t), nil, nil, nil, nil)

		sbomID := uuid.New()
		_, err := s.AttachArtifact(models.Release{IsLatest: true}, &sbomID, nil)
		assert.ErrorIs(t, err, ErrLatestReleaseImmutable)
	})

	t.Run("should require exactly one artifact reference", func(t *testing.T) {
		s := NewReleaseService(mocks.NewReleaseRepository(t), nil, nil, nil, nil)

		_, err := s.AttachArtifact(release, nil, nil)
		assert.ErrorIs(t, err, ErrExactlyOneArtifact)

		sbomID := uuid.New()
		documentID := uuid.New()
		_, err = s.AttachArtifact(release, &sbomID, &documentID)
		assert.ErrorIs(t, err, ErrExactlyOneArtifact)
	})

	t.Run("should reject an sbom owned by a different team", func(t *testing.T) {
		sbom := models.SBOM{ID: uuid.New(), ComponentID: componentID, Format: models.SbomFormatCycloneDX}

		productRepository := mocks.NewProductRepository(t)
		productRepository.On("Read", productID).Return(product, nil)

		sbomRepository := mocks.NewSbomRepository(t)
		sbomRepository.On("Read", sbom.ID).Return(sbom, nil)

		componentRepository := mocks.NewComponentRepository(t)
		componentRepository.On("Read", componentID).Return(models.Component{ID: componentID, TeamID: uuid.New()}, nil)

		s := NewReleaseService(mocks.NewReleaseRepository(t), productRepository, componentRepository, sbomRepository, nil)

		_, err := s.AttachArtifact(release, &sbom.ID, nil)
		assert.ErrorIs(t, err, ErrCrossTeamArtifact)
	})

	t.Run("should reject a second sbom of the same format for the same component", func(t *testing.T) {
		sbom := models.SBOM{ID: uuid.New(), ComponentID: componentID, Format: models.SbomFormatCycloneDX}

		productRepository := mocks.NewProductRepository(t)
		productRepository.On("Read", productID).Return(product, nil)

		sbomRepository := mocks.NewSbomRepository(t)
		sbomRepository.On("Read", sbom.ID).Return(sbom, nil)

		componentRepository := mocks.NewComponentRepository(t)
		componentRepository.On("Read", componentID).Return(models.Component{ID: componentID, TeamID: teamID, Name: "backend"}, nil)

		releaseRepository := mocks.NewReleaseRepository(t)
		releaseRepository.On("HasSbomOfFormat", release.ID, componentID, models.SbomFormatCycloneDX).Return(true, nil)

		s := NewReleaseService(releaseRepository, productRepository, componentRepository, sbomRepository, nil)

		_, err := s.AttachArtifact(release, &sbom.ID, nil)

		var duplicateErr *DuplicateSbomFormatError
		assert.ErrorAs(t, err, &duplicateErr)
		assert.Contains(t, err.Error(), "already contains an SBOM of format")
	})

	t.Run("should map a unique constraint violation to an already linked error", func(t *testing.T) {
		document := models.Document{ID: uuid.New(), ComponentID: componentID}

		productRepository := mocks.NewProductRepository(t)
		productRepository.On("Read", productID).Return(product, nil)

		documentRepository := mocks.NewDocumentRepository(t)
		documentRepository.On("Read", document.ID).Return(document, nil)

		componentRepository := mocks.NewComponentRepository(t)
		componentRepository.On("Read", componentID).Return(models.Component{ID: componentID, TeamID: teamID}, nil)

		releaseRepository := mocks.NewReleaseRepository(t)
		releaseRepository.On("CreateArtifact", mock.Anything, mock.Anything).Return(&pgconn.PgError{Code: "23505"})

		s := NewReleaseService(releaseRepository, productRepository, componentRepository, nil, documentRepository)

		_, err := s.AttachArtifact(release, nil, &document.ID)
		assert.ErrorIs(t, err, ErrArtifactAlreadyLinked)
	})

	t.Run("should link an sbom and reload the artifact", func(t *testing.T) {
		sbom := models.SBOM{ID: uuid.New(), ComponentID: componentID, Format: models.SbomFormatCycloneDX}

		productRepository := mocks.NewProductRepository(t)
		productRepository.On("Read", productID).Return(product, nil)

		sbomRepository := mocks.NewSbomRepository(t)
		sbomRepository.On("Read", sbom.ID).Return(sbom, nil)

		componentRepository := mocks.NewComponentRepository(t)
		componentRepository.On("Read", componentID).Return(models.Component{ID: componentID, TeamID: teamID}, nil)

		releaseRepository := mocks.NewReleaseRepository(t)
		releaseRepository.On("HasSbomOfFormat", release.ID, componentID, models.SbomFormatCycloneDX).Return(false, nil)
		releaseRepository.On("CreateArtifact", mock.Anything, mock.Anything).Return(nil)
		releaseRepository.On("ReadArtifact", release.ID, mock.Anything).Return(models.ReleaseArtifact{ReleaseID: release.ID, SbomID: &sbom.ID, Sbom: &sbom}, nil)

		s := NewReleaseService(releaseRepository, productRepository, componentRepository, sbomRepository, nil)

		artifact, err := s.AttachArtifact(release, &sbom.ID, nil)
		assert.Nil(t, err)
		assert.Equal(t, &sbom.ID, artifact.SbomID)
	})
}

func TestDetachArtifact(t *testing.T) {
	t.Run("should refuse to modify the latest release", func(t *testing.T) {
		s := NewReleaseService(mocks.NewReleaseRepository(t), nil, nil, nil, nil)

		err := s.DetachArtifact(models.Release{IsLatest: true}, uuid.New())
		assert.ErrorIs(t, err, ErrLatestReleaseImmutable)
	})

	t.Run("should pass through a not found error", func(t *testing.T) {
		release := models.Release{ID: uuid.New()}
		artifactID := uuid.New()

		releaseRepository := mocks.NewReleaseRepository(t)
		releaseRepository.On("ReadArtifact", release.ID, artifactID).Return(models.ReleaseArtifact{}, gorm.ErrRecordNotFound)

		s := NewReleaseService(releaseRepository, nil, nil, nil, nil)

		err := s.DetachArtifact(release, artifactID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("should delete the link", func(t *testing.T) {
		release := models.Release{ID: uuid.New()}
		artifact := models.ReleaseArtifact{ID: uuid.New(), ReleaseID: release.ID}

		releaseRepository := mocks.NewReleaseRepository(t)
		releaseRepository.On("ReadArtifact", release.ID, artifact.ID).Return(artifact, nil)
		releaseRepository.On("DeleteArtifact", mock.Anything, artifact.ID).Return(nil)

		s := NewReleaseService(releaseRepository, nil, nil, nil, nil)

		err := s.DetachArtifact(release, artifact.ID)
		assert.Nil(t, err)
	})
}

func TestGenerateReleaseSbom(t *testing.T) {
	productID := uuid.New()
	release := models.Release{ID: uuid.New(), Name: "v1.0.0", ProductID: productID}

	cdxBom := func(componentName string) []byte {
		return []byte(fmt.Sprintf(`{"bomFormat":"CycloneDX","specVersion":"1.5","components":[{"type":"library","name":%q,"version":"1.0.0"}]}`, componentName))
	}

	t.Run("should fail on a release without sbom artifacts", func(t *testing.T) {
		releaseRepository := mocks.NewReleaseRepository(t)
		releaseRepository.On("GetArtifacts", release.ID).Return([]models.ReleaseArtifact{}, nil)

		s := NewReleaseService(releaseRepository, nil, nil, nil, nil)

		_, err := s.GenerateReleaseSbom(release)
		assert.ErrorIs(t, err, ErrEmptyRelease)
	})

	t.Run("should ignore documents and spdx sboms", func(t *testing.T) {
		spdxSbom := models.SBOM{ID: uuid.New(), Format: models.SbomFormatSPDX, Data: []byte(`{}`)}
		documentID := uuid.New()

		releaseRepository := mocks.NewReleaseRepository(t)
		releaseRepository.On("GetArtifacts", release.ID).Return([]models.ReleaseArtifact{
			{SbomID: &spdxSbom.ID, Sbom: &spdxSbom},
			{DocumentID: &documentID},
		}, nil)

		s := NewReleaseService(releaseRepository, nil, nil, nil, nil)

		_, err := s.GenerateReleaseSbom(release)
		assert.ErrorIs(t, err, ErrEmptyRelease)
	})

	t.Run("should merge the linked cyclonedx sboms into a single bom", func(t *testing.T) {
		first := models.SBOM{ID: uuid.New(), Format: models.SbomFormatCycloneDX, Data: cdxBom("left-pad")}
		second := models.SBOM{ID: uuid.New(), Format: models.SbomFormatCycloneDX, Data: cdxBom("right-pad")}

		releaseRepository := mocks.NewReleaseRepository(t)
		releaseRepository.On("GetArtifacts", release.ID).Return([]models.ReleaseArtifact{
			{SbomID: &first.ID, Sbom: &first},
			{SbomID: &second.ID, Sbom: &second},
		}, nil)

		productRepository := mocks.NewProductRepository(t)
		productRepository.On("Read", productID).Return(models.Product{ID: productID, Name: "shop"}, nil)

		s := NewReleaseService(releaseRepository, productRepository, nil, nil, nil)

		bom, err := s.GenerateReleaseSbom(release)
		assert.Nil(t, err)
		assert.Equal(t, cdx.BOMFormat, bom.BOMFormat)
		assert.NotNil(t, bom.Metadata.Component)
		assert.Equal(t, "shop", bom.Metadata.Component.Name)
		assert.Equal(t, "v1.0.0", bom.Metadata.Component.Version)
		assert.Len(t, *bom.Components, 2)
	})

	t.Run("should fail on a corrupt sbom document", func(t *testing.T) {
		corrupt := models.SBOM{ID: uuid.New(), Format: models.SbomFormatCycloneDX, Data: []byte(`{invalid`)}

		releaseRepository := mocks.NewReleaseRepository(t)
		releaseRepository.On("GetArtifacts", release.ID).Return([]models.ReleaseArtifact{
			{SbomID: &corrupt.ID, Sbom: &corrupt},
		}, nil)

		s := NewReleaseService(releaseRepository, nil, nil, nil, nil)

		_, err := s.GenerateReleaseSbom(release)
		assert.Error(t, err)
	})
}

func TestSyncSbomToLatestReleases(t *testing.T) {
	componentID := uuid.New()
	sbom := models.SBOM{ID: uuid.New(), ComponentID: componentID, Format: models.SbomFormatCycloneDX}

	t.Run("should do nothing if no product contains the component", func(t *testing.T) {
		productRepository := mocks.NewProductRepository(t)
		productRepository.On("GetByComponentID", componentID).Return([]models.Product{}, nil)

		s := NewReleaseService(mocks.NewReleaseRepository(t), productRepository, nil, nil, nil)

		err := s.SyncSbomToLatestReleases(sbom)
		assert.Nil(t, err)
	})

	t.Run("should link the sbom into the latest release of every product", func(t *testing.T) {
		product := models.Product{ID: uuid.New()}
		latest := models.Release{ID: uuid.New(), Name: "latest", IsLatest: true, ProductID: product.ID}

		productRepository := mocks.NewProductRepository(t)
		productRepository.On("GetByComponentID", componentID).Return([]models.Product{product}, nil)

		releaseRepository := mocks.NewReleaseRepository(t)
		releaseRepository.On("ReadLatestRelease", product.ID).Return(latest, nil)
		releaseRepository.On("GetSbomArtifactByComponentAndFormat", latest.ID, componentID, models.SbomFormatCycloneDX).Return(models.ReleaseArtifact{}, gorm.ErrRecordNotFound)
		releaseRepository.On("CreateArtifact", mock.Anything, mock.Anything).Return(nil)

		s := NewReleaseService(releaseRepository, productRepository, nil, nil, nil)

		err := s.SyncSbomToLatestReleases(sbom)
		assert.Nil(t, err)
	})

	t.Run("should replace an older upload of the same format", func(t *testing.T) {
		product := models.Product{ID: uuid.New()}
		latest := models.Release{ID: uuid.New(), Name: "latest", IsLatest: true, ProductID: product.ID}
		oldSbomID := uuid.New()
		existing := models.ReleaseArtifact{ID: uuid.New(), ReleaseID: latest.ID, SbomID: &oldSbomID}

		productRepository := mocks.NewProductRepository(t)
		productRepository.On("GetByComponentID", componentID).Return([]models.Product{product}, nil)

		releaseRepository := mocks.NewReleaseRepository(t)
		releaseRepository.On("ReadLatestRelease", product.ID).Return(latest, nil)
		releaseRepository.On("GetSbomArtifactByComponentAndFormat", latest.ID, componentID, models.SbomFormatCycloneDX).Return(existing, nil)
		releaseRepository.On("DeleteArtifact", mock.Anything, existing.ID).Return(nil)
		releaseRepository.On("CreateArtifact", mock.Anything, mock.Anything).Return(nil)

		s := NewReleaseService(releaseRepository, productRepository, nil, nil, nil)

		err := s.SyncSbomToLatestReleases(sbom)
		assert.Nil(t, err)
	})

	t.Run("should skip if the same sbom is already linked", func(t *testing.T) {
		product := models.Product{ID: uuid.New()}
		latest := models.Release{ID: uuid.New(), Name: "latest", IsLatest: true, ProductID: product.ID}
		existing := models.ReleaseArtifact{ID: uuid.New(), ReleaseID: latest.ID, SbomID: &sbom.ID}

		productRepository := mocks.NewProductRepository(t)
		productRepository.On("GetByComponentID", componentID).Return([]models.Product{product}, nil)

		// no DeleteArtifact and no CreateArtifact expected
		releaseRepository := mocks.NewReleaseRepository(t)
		releaseRepository.On("ReadLatestRelease", product.ID).Return(latest, nil)
		releaseRepository.On("GetSbomArtifactByComponentAndFormat", latest.ID, componentID, models.SbomFormatCycloneDX).Return(existing, nil)

		s := NewReleaseService(releaseRepository, productRepository, nil, nil, nil)

		err := s.SyncSbomToLatestReleases(sbom)
		assert.Nil(t, err)
	})
}

func TestEnsureLatestRelease(t *testing.T) {
	productID := uuid.New()

	t.Run("should return the existing latest release", func(t *testing.T) {
		latest := models.Release{ID: uuid.New(), Name: "latest", IsLatest: true, ProductID: productID}

		releaseRepository := mocks.NewReleaseRepository(t)
		releaseRepository.On("ReadLatestRelease", productID).Return(latest, nil)

		s := NewReleaseService(releaseRepository, nil, nil, nil, nil)

		rel, err := s.EnsureLatestRelease(productID)
		assert.Nil(t, err)
		assert.Equal(t, latest.ID, rel.ID)
	})

	t.Run("should create the latest release on first access", func(t *testing.T) {
		releaseRepository := mocks.NewReleaseRepository(t)
		releaseRepository.On("ReadLatestRelease", productID).Return(models.Release{}, gorm.ErrRecordNotFound)
		releaseRepository.On("Create", mock.Anything, mock.MatchedBy(func(r *models.Release) bool {
			return r.Name == "latest" && r.IsLatest && r.ProductID == productID
		})).Return(nil)

		s := NewReleaseService(releaseRepository, nil, nil, nil, nil)

		rel, err := s.EnsureLatestRelease(productID)
		assert.Nil(t, err)
		assert.True(t, rel.IsLatest)
	})

	t.Run("should re-read the winner's row if a concurrent creator wins the race", func(t *testing.T) {
		// the partial unique index allows exactly one is_latest row per
		// product, the loser gets a 23505 and must not fail the request
		winner := models.Release{ID: uuid.New(), Name: "latest", IsLatest: true, ProductID: productID}

		releaseRepository := mocks.NewReleaseRepository(t)
		releaseRepository.On("ReadLatestRelease", productID).Return(models.Release{}, gorm.ErrRecordNotFound).Once()
		releaseRepository.On("Create", mock.Anything, mock.Anything).Return(&pgconn.PgError{Code: "23505"})
		releaseRepository.On("ReadLatestRelease", productID).Return(winner, nil).Once()

		s := NewReleaseService(releaseRepository, nil, nil, nil, nil)

		rel, err := s.EnsureLatestRelease(productID)
		assert.Nil(t, err)
		assert.Equal(t, winner.ID, rel.ID)
	})

	t.Run("should pass through any other create error", func(t *testing.T) {
		releaseRepository := mocks.NewReleaseRepository(t)
		releaseRepository.On("ReadLatestRelease", productID).Return(models.Release{}, gorm.ErrRecordNotFound)
		releaseRepository.On("Create", mock.Anything, mock.Anything).Return(fmt.Errorf("something went wrong"))

		s := NewReleaseService(releaseRepository, nil, nil, nil, nil)

		_, err := s.EnsureLatestRelease(productID)
		assert.Error(t, err)
	})
}

func TestListByProduct(t *testing.T) {
	productID := uuid.New()

	t.Run("should ensure the latest release exists before listing", func(t *testing.T) {
		latest := models.Release{ID: uuid.New(), Name: "latest", IsLatest: true, ProductID: productID}

		releaseRepository := mocks.NewReleaseRepository(t)
		releaseRepository.On("ReadLatestRelease", productID).Return(latest, nil)
		releaseRepository.On("GetByProductID", productID).Return([]models.Release{latest}, nil)

		s := NewReleaseService(releaseRepository, nil, nil, nil, nil)

		releases, err := s.ListByProduct(productID)
		assert.Nil(t, err)
		assert.Len(t, releases, 1)
	})

	t.Run("should fail if the latest release cannot be created", func(t *testing.T) {
		releaseRepository := mocks.NewReleaseRepository(t)
		releaseRepository.On("ReadLatestRelease", productID).Return(models.Release{}, fmt.Errorf("something went wrong"))

		s := NewReleaseService(releaseRepository, nil, nil, nil, nil)

		_, err := s.ListByProduct(productID)
		assert.Error(t, err)
	})
}
