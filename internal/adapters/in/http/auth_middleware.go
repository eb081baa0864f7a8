package http

import (
	"net/http"
	"strings"

	"parceltrack/internal/core/domain/model/identity"
	"parceltrack/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// identityContextKey is where the middleware stores the verified actor
// identity on the echo context.
const identityContextKey = "identity"

// AuthMiddleware validates bearer tokens issued by the identity service and
// places the verified {subjectId, role} pair on the request context. Token
// issuance lives with the identity service; this side only verifies.
type AuthMiddleware struct {
	secret string
}

// NewAuthMiddleware creates a middleware bound to the shared signing secret.
func NewAuthMiddleware(secret string) *AuthMiddleware {
	return &AuthMiddleware{secret: secret}
}

// Authenticate validates the JWT access token and sets the actor identity
// on the context for handlers to use.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, errorBody{
				Code:    http.StatusUnauthorized,
				Message: "Authorization header is missing",
			})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, errorBody{
				Code:    http.StatusUnauthorized,
				Message: "Invalid token format, must be Bearer token",
			})
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(m.secret), nil
		})
		if err != nil || !token.Valid {
			return c.JSON(http.StatusUnauthorized, errorBody{
				Code:    http.StatusUnauthorized,
				Message: "Invalid or expired token",
			})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.JSON(http.StatusUnauthorized, errorBody{
				Code:    http.StatusUnauthorized,
				Message: "Failed to parse token claims",
			})
		}

		actor, err := identityFromClaims(claims)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, errorBody{
				Code:    http.StatusUnauthorized,
				Message: "Token claims do not form a valid identity",
			})
		}

		c.Set(identityContextKey, actor)
		return next(c)
	}
}

// identityFromClaims builds the actor identity from the sub and role claims.
func identityFromClaims(claims jwt.MapClaims) (identity.Identity, error) {
	subjectStr, err := claims.GetSubject()
	if err != nil {
		return identity.Identity{}, err
	}
	subjectID, err := kernel.UUIDFromString(subjectStr)
	if err != nil {
		return identity.Identity{}, err
	}

	roleStr, _ := claims["role"].(string)
	role, err := identity.RoleFromString(roleStr)
	if err != nil {
		return identity.Identity{}, err
	}

	return identity.NewIdentity(subjectID, role)
}

// actorFromContext retrieves the identity set by Authenticate.
func actorFromContext(c echo.Context) (identity.Identity, bool) {
	actor, ok := c.Get(identityContextKey).(identity.Identity)
	return actor, ok
}
