package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dvargas92/fotoapp/internal/server/auth"
)

func gateRouter(t *testing.T, tokens *auth.TokenManager, mode RejectMode) http.Handler {
	t.Helper()
	r := gin.New()
	r.POST("/protected", AuthGate(tokens, mode), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID":   c.GetString(ContextUserIDKey),
			"username": c.GetString(ContextUsernameKey),
		})
	})
	return r
}

func doProtected(t *testing.T, router http.Handler, authorization string, setHeader bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	if setHeader {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthGate_NoHeader401(t *testing.T) {
	tokens := auth.NewTokenManager("k", time.Hour)
	router := gateRouter(t, tokens, RejectMissing401)

	w := doProtected(t, router, "", false)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	requireError(t, w, APIError{Title: "No autorizado !", Description: "Token no enviado."})
}

func TestAuthGate_NoHeader422Mode(t *testing.T) {
	tokens := auth.NewTokenManager("k", time.Hour)
	router := gateRouter(t, tokens, RejectMissing422)

	w := doProtected(t, router, "", false)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
	requireError(t, w, APIError{Title: "No autorizado !", Description: "Por favor, inicie sesión."})
}

func TestAuthGate_EmptyBearerToken(t *testing.T) {
	tokens := auth.NewTokenManager("k", time.Hour)
	router := gateRouter(t, tokens, RejectMissing401)

	// Header present but no token after the prefix: not the same rejection
	// as a missing header.
	w := doProtected(t, router, "Bearer ", true)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
	requireError(t, w, APIError{Title: "No autorizado !", Description: "Por favor, inicie sesión."})
}

func TestAuthGate_InvalidToken(t *testing.T) {
	tokens := auth.NewTokenManager("k", time.Hour)
	router := gateRouter(t, tokens, RejectMissing401)

	w := doProtected(t, router, "Bearer not-a-valid-token", true)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
	requireError(t, w, APIError{Title: "No autorizado !", Description: "Por favor, inicie sesión."})
}

func TestAuthGate_WrongKeyToken(t *testing.T) {
	tokens := auth.NewTokenManager("k", time.Hour)
	router := gateRouter(t, tokens, RejectMissing401)

	other, err := auth.NewTokenManager("other-key", time.Hour).Issue("u-1", "userOne")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	w := doProtected(t, router, "Bearer "+other, true)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
}

func TestAuthGate_ExpiredToken(t *testing.T) {
	live := auth.NewTokenManager("k", time.Hour)
	expired, err := auth.NewTokenManager("k", -time.Minute).Issue("u-1", "userOne")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	router := gateRouter(t, live, RejectMissing401)
	w := doProtected(t, router, "Bearer "+expired, true)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
	requireError(t, w, APIError{Title: "No autorizado !", Description: "Por favor, inicie sesión."})
}

func TestAuthGate_ValidTokenAttachesIdentity(t *testing.T) {
	tokens := auth.NewTokenManager("k", time.Hour)
	router := gateRouter(t, tokens, RejectMissing401)

	token, err := tokens.Issue("u-42", "alice")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	w := doProtected(t, router, "Bearer "+token, true)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	for _, s := range []string{`"userID":"u-42"`, `"username":"alice"`} {
		if !strings.Contains(w.Body.String(), s) {
			t.Fatalf("expected %s in body, got %s", s, w.Body.String())
		}
	}
}
