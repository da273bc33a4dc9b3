package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dvargas92/fotoapp/internal/common"
)

// Claims carries the identity embedded in a session token along with the
// standard registered claims (issued-at, expiry).
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

// TokenManager issues and validates HS256-signed session tokens. The secret
// key is process-wide configuration loaded once at startup; rotating it
// invalidates all previously issued tokens.
type TokenManager struct {
	secretKey []byte
	validity  time.Duration
}

func NewTokenManager(secretKey string, validity time.Duration) *TokenManager {
	return &TokenManager{secretKey: []byte(secretKey), validity: validity}
}

// Issue creates a signed token for the given identity. Expiry is
// issued-at plus the configured validity.
func (m *TokenManager) Issue(userID, username string) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.validity)),
		},
		UserID:   userID,
		Username: username,
	})

	tokenString, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Validate parses and verifies a token, returning its claims.
//
// Failures map to sentinels in internal/common:
//   - ErrTokenMalformed: structurally unparseable input, including "".
//   - ErrTokenExpired: signature valid but the token has expired.
//   - ErrTokenInvalid: bad signature or any other verification failure.
func (m *TokenManager) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secretKey, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, common.ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, common.ErrTokenExpired
		default:
			return nil, common.ErrTokenInvalid
		}
	}

	if !token.Valid {
		return nil, common.ErrTokenInvalid
	}

	return claims, nil
}
