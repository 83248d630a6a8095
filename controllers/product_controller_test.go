package controllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/rusko124/sbomify/database/models"
	"github.com/rusko124/sbomify/mocks"
	"github.com/rusko124/sbomify/shared"
)

func TestProductControllerRead(t *testing.T) {
	product := models.Product{ID: uuid.New(), Name: "shop"}

	newCtx := func() (shared.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		e := echo.New()
		ctx := e.NewContext(req, rec)
		shared.SetProduct(ctx, product)
		return ctx, rec
	}

	t.Run("should materialize the latest release on read", func(t *testing.T) {
		ctx, rec := newCtx()

		releaseService := mocks.NewReleaseService(t)
		releaseService.On("EnsureLatestRelease", product.ID).Return(models.Release{Name: "latest", IsLatest: true, ProductID: product.ID}, nil)

		h := NewProductController(mocks.NewProductRepository(t), releaseService)

		err := h.Read(ctx)
		assert.Nil(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("should fail if the latest release cannot be created", func(t *testing.T) {
		ctx, _ := newCtx()

		releaseService := mocks.NewReleaseService(t)
		releaseService.On("EnsureLatestRelease", mock.Anything).Return(models.Release{}, fmt.Errorf("something went wrong"))

		h := NewProductController(mocks.NewProductRepository(t), releaseService)

		err := h.Read(ctx)

		var httpErr *echo.HTTPError
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusInternalServerError, httpErr.Code)
	})
}
