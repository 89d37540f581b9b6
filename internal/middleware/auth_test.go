package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"designvault/internal/auth"
	"designvault/internal/domain"
	"designvault/internal/domain/models"
	"designvault/internal/httputil"
)

type stubVerifier struct {
	claims *models.AuthClaims
	err    error
}

func (s *stubVerifier) VerifyToken(string) (*models.AuthClaims, error) {
	return s.claims, s.err
}

func (s *stubVerifier) Close() error { return nil }

func echoUserID() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(httputil.GetUserID(r)))
	})
}

func TestAuthMiddlewareDevFallback(t *testing.T) {
	h := AuthMiddleware(nil, "dev-user")(echoUserID())

	req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "dev-user" {
		t.Errorf("user id = %q, want dev-user", rec.Body.String())
	}
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	var verifier auth.JWTVerifier = &stubVerifier{}
	h := AuthMiddleware(verifier, "")(echoUserID())

	req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("content type = %q", ct)
	}
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	h := AuthMiddleware(&stubVerifier{err: domain.ErrUnauthorized}, "")(echoUserID())

	req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	claims := &models.AuthClaims{}
	claims.Subject = "user-123"
	h := AuthMiddleware(&stubVerifier{claims: claims}, "")(echoUserID())

	req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "user-123" {
		t.Errorf("user id = %q, want user-123", rec.Body.String())
	}
}

func TestAuthMiddlewareHealthExempt(t *testing.T) {
	h := AuthMiddleware(&stubVerifier{err: domain.ErrUnauthorized}, "")(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 without credentials", rec.Code)
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := Recovery(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}
