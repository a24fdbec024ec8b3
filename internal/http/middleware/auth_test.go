package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"limoapi/internal/domain"
	"limoapi/internal/identity"
)

type fakeProvider struct {
	subject string
	user    identity.User
	verify  error
	fetch   error
}

func (f fakeProvider) VerifyToken(_ context.Context, token string) (string, error) {
	if f.verify != nil {
		return "", f.verify
	}
	return f.subject, nil
}

func (f fakeProvider) FetchUser(_ context.Context, userID string) (identity.User, error) {
	if f.fetch != nil {
		return identity.User{}, f.fetch
	}
	return f.user, nil
}

func authTestRouter(provider identity.Provider, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chain := []gin.HandlerFunc{RequireAuth(provider)}
	if role != "" {
		chain = append(chain, RequireRole(role))
	}
	chain = append(chain, func(c *gin.Context) {
		user, _ := GetAuthUser(c)
		c.JSON(http.StatusOK, gin.H{"userId": user.ID})
	})
	r.GET("/protected", chain...)
	return r
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	r := authTestRouter(fakeProvider{}, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireAuth_BadToken(t *testing.T) {
	r := authTestRouter(fakeProvider{verify: domain.UnauthorizedError{Msg: "bad token"}}, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer nope")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireAuth_ProviderOutage(t *testing.T) {
	r := authTestRouter(fakeProvider{
		subject: "user_1",
		fetch:   domain.DependencyError{Msg: "identity api down"},
	}, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("provider outage should be 500, not a token rejection, got %d", w.Code)
	}
}

func TestRequireRole_InsufficientRole(t *testing.T) {
	r := authTestRouter(fakeProvider{
		subject: "user_1",
		user:    identity.User{ID: "user_1", Role: "user"},
	}, identity.RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestRequireRole_AdminPasses(t *testing.T) {
	r := authTestRouter(fakeProvider{
		subject: "user_1",
		user:    identity.User{ID: "user_1", Role: "admin"},
	}, identity.RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestRequireRole_WithoutAuthIs401(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin-only", RequireRole(identity.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("role check without identity should be 401, got %d", w.Code)
	}
}
