package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/openlot/account-service/internal/repository"
	"github.com/openlot/account-service/internal/utils"
)

const testSecret = "test-secret-key-at-least-32-chars-long"

// invoke runs the JWTAuth middleware against a request carrying the given
// Authorization header and reports the resulting status plus the context
// values the wrapped handler observed.
func invokeJWTAuth(t *testing.T, denylist *repository.TokenDenylist, authHeader string) (int, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen echo.Context
	h := JWTAuth(testSecret, denylist)(func(c echo.Context) error {
		seen = c
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	return rec.Code, seen
}

func TestJWTAuthMissingToken(t *testing.T) {
	denylist := repository.NewTokenDenylist(nil)

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not-a-token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, seen := invokeJWTAuth(t, denylist, tt.header)
			if code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", code)
			}
			if seen != nil {
				t.Fatal("handler must not run without a valid token")
			}
		})
	}
}

func TestJWTAuthValidToken(t *testing.T) {
	denylist := repository.NewTokenDenylist(nil)
	access, err := utils.NewAccessToken(testSecret, 42, "dealership", 15)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}

	code, seen := invokeJWTAuth(t, denylist, "Bearer "+access.Token)
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if got, ok := seen.Get(CtxUserID).(uint64); !ok || got != 42 {
		t.Errorf("user_id in context = %v, want 42", seen.Get(CtxUserID))
	}
	if got, ok := seen.Get(CtxRole).(string); !ok || got != "dealership" {
		t.Errorf("role in context = %v, want dealership", seen.Get(CtxRole))
	}
	if got, ok := seen.Get(CtxTokenID).(string); !ok || got != access.ID {
		t.Errorf("token_id in context = %v, want %q", seen.Get(CtxTokenID), access.ID)
	}
	if got, ok := seen.Get(CtxTokenExp).(time.Time); !ok || got.Unix() != access.Exp.Unix() {
		t.Errorf("token_exp in context = %v, want %v", seen.Get(CtxTokenExp), access.Exp)
	}
}

func TestJWTAuthExpiredToken(t *testing.T) {
	denylist := repository.NewTokenDenylist(nil)
	// Zero TTL produces a token that is already past expiry.
	access, err := utils.NewAccessToken(testSecret, 42, "dealership", 0)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}

	code, _ := invokeJWTAuth(t, denylist, "Bearer "+access.Token)
	if code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 for expired token", code)
	}
}

func TestJWTAuthRevokedToken(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()
	denylist := repository.NewTokenDenylist(rdb)

	access, err := utils.NewAccessToken(testSecret, 42, "salesperson", 15)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}

	code, _ := invokeJWTAuth(t, denylist, "Bearer "+access.Token)
	if code != http.StatusOK {
		t.Fatalf("status before revocation = %d, want 200", code)
	}

	if err := denylist.Revoke(context.Background(), access.ID, access.Exp); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	code, seen := invokeJWTAuth(t, denylist, "Bearer "+access.Token)
	if code != http.StatusUnauthorized {
		t.Fatalf("status after revocation = %d, want 401", code)
	}
	if seen != nil {
		t.Fatal("handler must not run for a revoked token")
	}
}
