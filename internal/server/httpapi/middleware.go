package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dvargas92/fotoapp/internal/server/auth"
)

// Context keys under which the gate stores the authenticated identity.
const (
	ContextUserIDKey   = "userID"
	ContextUsernameKey = "username"
)

// TokenVerifier validates a raw bearer token and returns its claims.
type TokenVerifier interface {
	Validate(tokenString string) (*auth.Claims, error)
}

// RejectMode selects how the auth gate answers a request that carries no
// Authorization header at all. Two variants exist in the API surface and
// both are preserved as configured behaviors.
type RejectMode int

const (
	// RejectMissing401 answers a missing header with 401 "Token no enviado.".
	RejectMissing401 RejectMode = iota
	// RejectMissing422 answers a missing header with 422 "Por favor, inicie sesión.".
	RejectMissing422
)

// AuthGate returns middleware protecting a route group.
//
// Rejection is two-state: a request with no Authorization header fails per
// the configured RejectMode, while a header that is present but carries an
// empty, invalid, or expired token always fails 422 with the sign-in
// message. A valid token puts userID/username on the request context.
func AuthGate(verifier TokenVerifier, mode RejectMode) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")

		if strings.TrimSpace(header) == "" {
			if mode == RejectMissing422 {
				fail(c, http.StatusUnprocessableEntity, errNotAuthorized)
				return
			}
			fail(c, http.StatusUnauthorized, errNoTokenSupplied)
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		claims, err := verifier.Validate(token)
		if err != nil {
			fail(c, http.StatusUnprocessableEntity, errNotAuthorized)
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextUsernameKey, claims.Username)
		c.Next()
	}
}
