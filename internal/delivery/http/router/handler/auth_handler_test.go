package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"horizon/config"
	"horizon/internal/delivery/http/middleware"
	"horizon/internal/delivery/http/validator"
	"horizon/internal/domain/entity"
	domainerrors "horizon/internal/domain/errors"
	mockusecase "horizon/internal/mocks/usecase"
	"horizon/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testCookieName = "horizon_session"

func newTestHandlerConfig() *config.Config {
	cfg := &config.Config{
		Session: &config.SessionConfig{
			CookieName: testCookieName,
			TTL:        30 * 24 * time.Hour,
		},
		LiveFeed: &config.LiveFeedConfig{
			PollInterval: 1500 * time.Millisecond,
		},
	}
	cfg.Env.Debug = true

	return cfg
}

func newAuthHandlerTest(t *testing.T) (*AuthHandler, *mockusecase.MockAuthUsecase) {
	mockAuthUC := mockusecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{
		AuthUC: mockAuthUC,
		Config: newTestHandlerConfig(),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return h, mockAuthUC
}

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}

	return nil
}

func TestAuthHandler_Login_SetsSessionCookie(t *testing.T) {
	h, mockAuthUC := newAuthHandlerTest(t)

	userID := uuid.New()
	expiresAt := time.Now().Add(30 * 24 * time.Hour)
	mockAuthUC.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(&usecase.SessionOutput{
			RawToken:  "raw-session-token",
			ExpiresAt: expiresAt,
			User:      &entity.User{ID: userID, Email: "ada@example.com"},
		}, nil)

	c, rec := newJSONContext(http.MethodPost, "/auth/login", `{"email":"ada@example.com","password":"correct horse"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := findCookie(rec, testCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, "raw-session-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	// The raw token must never leak into the response body.
	assert.NotContains(t, rec.Body.String(), "raw-session-token")
}

func TestAuthHandler_Login_InvalidCredentialsPropagate(t *testing.T) {
	h, mockAuthUC := newAuthHandlerTest(t)

	mockAuthUC.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrInvalidCredentials)

	c, rec := newJSONContext(http.MethodPost, "/auth/login", `{"email":"ada@example.com","password":"wrong"}`)

	err := h.Login(c)
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, findCookie(rec, testCookieName))
}

func TestAuthHandler_Login_RejectsMalformedBody(t *testing.T) {
	h, _ := newAuthHandlerTest(t)

	c, rec := newJSONContext(http.MethodPost, "/auth/login", `{"email":"not-an-email"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	h, mockAuthUC := newAuthHandlerTest(t)

	mockAuthUC.EXPECT().Logout(mock.Anything, "raw-session-token").Return(nil)

	c, rec := newJSONContext(http.MethodPost, "/auth/logout", "")
	c.Request().AddCookie(&http.Cookie{Name: testCookieName, Value: "raw-session-token"})

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := findCookie(rec, testCookieName)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestAuthHandler_ConsumeMagicLink_MissingTokenIsBadRequest(t *testing.T) {
	h, _ := newAuthHandlerTest(t)

	c, rec := newJSONContext(http.MethodGet, "/auth/magic-link/consume", "")

	require.NoError(t, h.ConsumeMagicLink(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthMiddleware_ValidCookieSetsIdentity(t *testing.T) {
	mockAuthUC := mockusecase.NewMockAuthUsecase(t)
	m := middleware.NewAuthMiddleware(mockAuthUC, newTestHandlerConfig())

	userID := uuid.New()
	sessionID := uuid.New()
	mockAuthUC.EXPECT().
		ResolveSession(mock.Anything, "raw-session-token").
		Return(&entity.User{ID: userID}, &entity.Session{ID: sessionID, UserID: userID}, nil)

	c, _ := newJSONContext(http.MethodGet, "/me", "")
	c.Request().AddCookie(&http.Cookie{Name: testCookieName, Value: "raw-session-token"})

	next := func(c echo.Context) error {
		assert.Equal(t, userID, c.Get("userID"))
		assert.Equal(t, sessionID, c.Get("sessionID"))

		return nil
	}

	require.NoError(t, m.Authenticate(next)(c))
}

func TestAuthMiddleware_MissingCookieIsUnauthenticated(t *testing.T) {
	mockAuthUC := mockusecase.NewMockAuthUsecase(t)
	m := middleware.NewAuthMiddleware(mockAuthUC, newTestHandlerConfig())

	// An absent cookie resolves like any other bad token; the usecase owns
	// the collapse to a single error.
	mockAuthUC.EXPECT().
		ResolveSession(mock.Anything, "").
		Return(nil, nil, domainerrors.ErrUnauthenticated)

	c, _ := newJSONContext(http.MethodGet, "/me", "")

	next := func(c echo.Context) error {
		t.Fatal("next handler must not run without a session")

		return nil
	}

	err := m.Authenticate(next)(c)
	require.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}
