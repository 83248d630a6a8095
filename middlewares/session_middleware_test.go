package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/rusko124/sbomify/database/models"
	"github.com/rusko124/sbomify/mocks"
	"github.com/rusko124/sbomify/shared"
)

func newSessionCtx(headers map[string]string) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	e := echo.New()
	return e.NewContext(req, httptest.NewRecorder())
}

func TestSessionMiddleware(t *testing.T) {
	next := func(ctx echo.Context) error { return ctx.NoContent(http.StatusOK) }

	t.Run("should pass an unauthenticated request through with an empty session", func(t *testing.T) {
		ctx := newSessionCtx(nil)

		accessTokenRepository := mocks.NewAccessTokenRepository(t)

		err := SessionMiddleware(accessTokenRepository)(next)(ctx)
		assert.Nil(t, err)
		assert.Equal(t, "", shared.GetSession(ctx).GetUserID())
	})

	t.Run("should reject an unknown token", func(t *testing.T) {
		ctx := newSessionCtx(map[string]string{"Authorization": "Bearer bogus"})

		accessTokenRepository := mocks.NewAccessTokenRepository(t)
		accessTokenRepository.On("ReadByToken", "bogus").Return(models.AccessToken{}, gorm.ErrRecordNotFound)

		err := SessionMiddleware(accessTokenRepository)(next)(ctx)

		var httpErr *echo.HTTPError
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 401, httpErr.Code)
	})

	t.Run("should build the session from a bearer token", func(t *testing.T) {
		ctx := newSessionCtx(map[string]string{"Authorization": "Bearer valid"})

		userID := uuid.New()
		accessTokenRepository := mocks.NewAccessTokenRepository(t)
		accessTokenRepository.On("ReadByToken", "valid").Return(models.AccessToken{ID: uuid.New(), UserID: userID, Scopes: "read manage"}, nil)
		// fired asynchronously, might not run before the test finishes
		accessTokenRepository.On("MarkAsLastUsedNow", mock.Anything).Return(nil).Maybe()

		err := SessionMiddleware(accessTokenRepository)(next)(ctx)
		assert.Nil(t, err)

		session := shared.GetSession(ctx)
		assert.Equal(t, userID.String(), session.GetUserID())
		assert.Equal(t, []string{"read", "manage"}, session.GetScopes())
	})

	t.Run("should accept the token from the X-Access-Token header", func(t *testing.T) {
		ctx := newSessionCtx(map[string]string{"X-Access-Token": "valid"})

		userID := uuid.New()
		accessTokenRepository := mocks.NewAccessTokenRepository(t)
		accessTokenRepository.On("ReadByToken", "valid").Return(models.AccessToken{ID: uuid.New(), UserID: userID}, nil)
		accessTokenRepository.On("MarkAsLastUsedNow", mock.Anything).Return(nil).Maybe()

		err := SessionMiddleware(accessTokenRepository)(next)(ctx)
		assert.Nil(t, err)
		assert.Equal(t, userID.String(), shared.GetSession(ctx).GetUserID())
	})
}

func TestSessionRequired(t *testing.T) {
	next := func(ctx echo.Context) error { return ctx.NoContent(http.StatusOK) }

	t.Run("should reject a request without a session", func(t *testing.T) {
		ctx := newSessionCtx(nil)

		err := SessionRequired()(next)(ctx)

		var httpErr *echo.HTTPError
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 401, httpErr.Code)
	})

	t.Run("should pass an authenticated request through", func(t *testing.T) {
		ctx := newSessionCtx(nil)

		authSession := mocks.NewAuthSession(t)
		authSession.On("GetUserID").Return("user-1")
		shared.SetSession(ctx, authSession)

		err := SessionRequired()(next)(ctx)
		assert.Nil(t, err)
	})
}
