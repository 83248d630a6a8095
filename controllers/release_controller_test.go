package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/rusko124/sbomify/database/models"
	"github.com/rusko124/sbomify/mocks"
	"github.com/rusko124/sbomify/services"
	"github.com/rusko124/sbomify/shared"
)

func newReleaseCtx(t *testing.T, method, body string) (shared.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, "/", reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	e := echo.New()
	return e.NewContext(req, rec), rec
}

func TestReleaseControllerCreate(t *testing.T) {
	product := models.Product{ID: uuid.New(), Name: "shop"}

	t.Run("should create a release", func(t *testing.T) {
		ctx, rec := newReleaseCtx(t, http.MethodPost, `{"name": "v1.0.0", "description": "first stable"}`)
		shared.SetProduct(ctx, product)

		releaseService := mocks.NewReleaseService(t)
		releaseService.On("Create", mock.MatchedBy(func(r *models.Release) bool {
			return r.Name == "v1.0.0" && r.ProductID == product.ID
		})).Return(nil)

		h := NewReleaseController(releaseService)

		err := h.Create(ctx)
		assert.Nil(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp map[string]any
		assert.Nil(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "v1.0.0", resp["name"])
	})

	t.Run("should reject an invalid payload", func(t *testing.T) {
		ctx, _ := newReleaseCtx(t, http.MethodPost, `{"name": ""}`)
		shared.SetProduct(ctx, product)

		h := NewReleaseController(mocks.NewReleaseService(t))

		err := h.Create(ctx)

		var httpErr *echo.HTTPError
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("should answer 400 with the reserved name message", func(t *testing.T) {
		ctx, _ := newReleaseCtx(t, http.MethodPost, `{"name": "latest"}`)
		shared.SetProduct(ctx, product)

		releaseService := mocks.NewReleaseService(t)
		releaseService.On("Create", mock.Anything).Return(services.ErrReservedReleaseName)

		h := NewReleaseController(releaseService)

		err := h.Create(ctx)

		var httpErr *echo.HTTPError
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		assert.Contains(t, fmt.Sprint(httpErr.Message), "Cannot create release with name 'latest'")
	})

	t.Run("should answer 400 on a duplicate name", func(t *testing.T) {
		ctx, _ := newReleaseCtx(t, http.MethodPost, `{"name": "v1.0.0"}`)
		shared.SetProduct(ctx, product)

		releaseService := mocks.NewReleaseService(t)
		releaseService.On("Create", mock.Anything).Return(services.ErrReleaseNameTaken)

		h := NewReleaseController(releaseService)

		err := h.Create(ctx)

		var httpErr *echo.HTTPError
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		assert.Contains(t, fmt.Sprint(httpErr.Message), "already exists")
	})
}

func TestReleaseControllerUpdate(t *testing.T) {
	t.Run("should answer 400 when updating the latest release", func(t *testing.T) {
		ctx, _ := newReleaseCtx(t, http.MethodPatch, `{"description": "new"}`)
		shared.SetRelease(ctx, models.Release{Name: "latest", IsLatest: true})

		releaseService := mocks.NewReleaseService(t)
		releaseService.On("Update", mock.Anything, mock.Anything).Return(services.ErrLatestReleaseImmutable)

		h := NewReleaseController(releaseService)

		err := h.Update(ctx)

		var httpErr *echo.HTTPError
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		assert.Contains(t, fmt.Sprint(httpErr.Message), "automatically managed")
	})

	t.Run("should return the updated release", func(t *testing.T) {
		ctx, rec := newReleaseCtx(t, http.MethodPatch, `{"description": "new"}`)
		shared.SetRelease(ctx, models.Release{ID: uuid.New(), Name: "v1.0.0"})

		releaseService := mocks.NewReleaseService(t)
		releaseService.On("Update", mock.Anything, mock.Anything).Return(nil)

		h := NewReleaseController(releaseService)

		err := h.Update(ctx)
		assert.Nil(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestReleaseControllerDelete(t *testing.T) {
	t.Run("should answer 400 when deleting the latest release", func(t *testing.T) {
		ctx, _ := newReleaseCtx(t, http.MethodDelete, "")
		shared.SetRelease(ctx, models.Release{Name: "latest", IsLatest: true})

		releaseService := mocks.NewReleaseService(t)
		releaseService.On("Delete", mock.Anything).Return(services.ErrLatestReleaseUndeletable)

		h := NewReleaseController(releaseService)

		err := h.Delete(ctx)

		var httpErr *echo.HTTPError
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("should answer 204 on success", func(t *testing.T) {
		ctx, rec := newReleaseCtx(t, http.MethodDelete, "")
		shared.SetRelease(ctx, models.Release{ID: uuid.New(), Name: "v1.0.0"})

		releaseService := mocks.NewReleaseService(t)
		releaseService.On("Delete", mock.Anything).Return(nil)

		h := NewReleaseController(releaseService)

		err := h.Delete(ctx)
		assert.Nil(t, err)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestReleaseControllerAttachArtifact(t *testing.T) {
	release := models.Release{ID: uuid.New(), Name: "v1.0.0"}

	t.Run("should answer 400 if both or neither artifact reference is given", func(t *testing.T) {
		ctx, _ := newReleaseCtx(t, http.MethodPost, `{}`)
		shared.SetRelease(ctx, release)

		releaseService := mocks.NewReleaseService(t)
		releaseService.On("AttachArtifact", mock.Anything, mock.Anything, mock.Anything).Return(models.ReleaseArtifact{}, services.ErrExactlyOneArtifact)

		h := NewReleaseController(releaseService)

		err := h.AttachArtifact(ctx)

		var httpErr *echo.HTTPError
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		assert.Contains(t, fmt.Sprint(httpErr.Message), "Exactly one of sbomId or documentId")
	})

	t.Run("should answer 403 on a cross team artifact", func(t *testing.T) {
		sbomID := uuid.New()
		ctx, _ := newReleaseCtx(t, http.MethodPost, fmt.Sprintf(`{"sbomId": %q}`, sbomID))
		shared.SetRelease(ctx, release)

		releaseService := mocks.NewReleaseService(t)
		releaseService.On("AttachArtifact", mock.Anything, &sbomID, (*uuid.UUID)(nil)).Return(models.ReleaseArtifact{}, services.ErrCrossTeamArtifact)

		h := NewReleaseController(releaseService)

		err := h.AttachArtifact(ctx)

		var httpErr *echo.HTTPError
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusForbidden, httpErr.Code)
	})

	t.Run("should answer 400 on a duplicate sbom format", func(t *testing.T) {
		sbomID := uuid.New()
		ctx, _ := newReleaseCtx(t, http.MethodPost, fmt.Sprintf(`{"sbomId": %q}`, sbomID))
		shared.SetRelease(ctx, release)

		releaseService := mocks.NewReleaseService(t)
		releaseService.On("AttachArtifact", mock.Anything, mock.Anything, mock.Anything).Return(models.ReleaseArtifact{}, &services.DuplicateSbomFormatError{ComponentName: "backend", Format: "cyclonedx"})

		h := NewReleaseController(releaseService)

		err := h.AttachArtifact(ctx)

		var httpErr *echo.HTTPError
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		assert.Contains(t, fmt.Sprint(httpErr.Message), "already contains an SBOM of format cyclonedx")
	})

	t.Run("should answer 201 with the linked artifact", func(t *testing.T) {
		sbomID := uuid.New()
		ctx, rec := newReleaseCtx(t, http.MethodPost, fmt.Sprintf(`{"sbomId": %q}`, sbomID))
		shared.SetRelease(ctx, release)

		artifact := models.ReleaseArtifact{ID: uuid.New(), ReleaseID: release.ID, SbomID: &sbomID}

		releaseService := mocks.NewReleaseService(t)
		releaseService.On("AttachArtifact", mock.Anything, &sbomID, (*uuid.UUID)(nil)).Return(artifact, nil)

		h := NewReleaseController(releaseService)

		err := h.AttachArtifact(ctx)
		assert.Nil(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestReleaseControllerDetachArtifact(t *testing.T) {
	t.Run("should answer 400 on an invalid artifact id", func(t *testing.T) {
		ctx, _ := newReleaseCtx(t, http.MethodDelete, "")
		ctx.SetParamNames("artifactID")
		ctx.SetParamValues("not-a-uuid")

		h := NewReleaseController(mocks.NewReleaseService(t))

		err := h.DetachArtifact(ctx)

		var httpErr *echo.HTTPError
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("should answer 404 if the artifact is not linked", func(t *testing.T) {
		artifactID := uuid.New()

		ctx, _ := newReleaseCtx(t, http.MethodDelete, "")
		ctx.SetParamNames("artifactID")
		ctx.SetParamValues(artifactID.String())
		shared.SetRelease(ctx, models.Release{ID: uuid.New()})

		releaseService := mocks.NewReleaseService(t)
		releaseService.On("DetachArtifact", mock.Anything, artifactID).Return(gorm.ErrRecordNotFound)

		h := NewReleaseController(releaseService)

		err := h.DetachArtifact(ctx)

		var httpErr *echo.HTTPError
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusNotFound, httpErr.Code)
	})
}

func TestReleaseControllerDownloadSbom(t *testing.T) {
	t.Run("should answer 500 on an empty release", func(t *testing.T) {
		ctx, _ := newReleaseCtx(t, http.MethodGet, "")
		shared.SetRelease(ctx, models.Release{ID: uuid.New(), Name: "v1.0.0"})

		releaseService := mocks.NewReleaseService(t)
		releaseService.On("GenerateReleaseSbom", mock.Anything).Return(nil, services.ErrEmptyRelease)

		h := NewReleaseController(releaseService)

		err := h.DownloadSbom(ctx)

		var httpErr *echo.HTTPError
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusInternalServerError, httpErr.Code)
		assert.Contains(t, fmt.Sprint(httpErr.Message), "Error generating release SBOM")
	})
}
