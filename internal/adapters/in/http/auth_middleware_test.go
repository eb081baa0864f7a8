package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret, subject, role string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func runMiddleware(t *testing.T, authorization string) (*httptest.ResponseRecorder, identity.Identity, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var actor identity.Identity
	var reached bool
	next := func(c echo.Context) error {
		actor, reached = actorFromContext(c)
		return c.NoContent(http.StatusOK)
	}

	err := NewAuthMiddleware(testSecret).Authenticate(next)(c)
	require.NoError(t, err)
	return rec, actor, reached
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Run("valid_token", func(t *testing.T) {
		subjectID := kernel.NewUUID()
		token := signToken(t, testSecret, subjectID.String(), "DRIVER")

		rec, actor, reached := runMiddleware(t, "Bearer "+token)

		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, reached)
		require.True(t, actor.SubjectID.IsEqual(subjectID))
		require.Equal(t, identity.RoleDriver, actor.Role)
	})

	t.Run("missing_header", func(t *testing.T) {
		rec, _, reached := runMiddleware(t, "")

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.False(t, reached)
	})

	t.Run("not_bearer", func(t *testing.T) {
		rec, _, reached := runMiddleware(t, "Basic dXNlcjpwYXNz")

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.False(t, reached)
	})

	t.Run("wrong_secret", func(t *testing.T) {
		token := signToken(t, "other-secret", kernel.NewUUID().String(), "ADMIN")

		rec, _, reached := runMiddleware(t, "Bearer "+token)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.False(t, reached)
	})

	t.Run("expired_token", func(t *testing.T) {
		claims := jwt.MapClaims{
			"sub":  kernel.NewUUID().String(),
			"role": "ADMIN",
			"exp":  time.Now().Add(-time.Hour).Unix(),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		rec, _, reached := runMiddleware(t, "Bearer "+token)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.False(t, reached)
	})

	t.Run("malformed_subject", func(t *testing.T) {
		token := signToken(t, testSecret, "not-a-uuid", "ADMIN")

		rec, _, reached := runMiddleware(t, "Bearer "+token)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.False(t, reached)
	})

	t.Run("unknown_role", func(t *testing.T) {
		token := signToken(t, testSecret, kernel.NewUUID().String(), "SUPERVISOR")

		rec, _, reached := runMiddleware(t, "Bearer "+token)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.False(t, reached)
	})
}
