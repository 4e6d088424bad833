package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/disha-labs/disha-backend/internal/data/repos"
	"github.com/disha-labs/disha-backend/internal/data/repos/testutil"
	"github.com/disha-labs/disha-backend/internal/pkg/ctxutil"
	"github.com/disha-labs/disha-backend/internal/services"
)

func newAuthStack(t *testing.T) (*AuthMiddleware, services.AuthService) {
	t.Helper()
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	log := testutil.Logger(t)
	svc := services.NewAuthService(
		tx,
		log,
		repos.NewUserRepo(tx, log),
		repos.NewProfileRepo(tx, log),
		repos.NewUserTokenRepo(tx, log),
		"test-secret",
		time.Hour,
		24*time.Hour,
	)
	return NewAuthMiddleware(log, svc), svc
}

func protectedRouter(am *AuthMiddleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/user", am.RequireAuth(), func(c *gin.Context) {
		rd := ctxutil.GetRequestData(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"user_id": rd.UserID})
	})
	return r
}

func TestRequireAuth_RejectsMissingAndMalformedHeaders(t *testing.T) {
	am, _ := newAuthStack(t)
	r := protectedRouter(am)

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic abc123"},
		{"bearer with garbage", "Bearer not-a-jwt"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/user", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}

func TestRequireAuth_AcceptsValidToken(t *testing.T) {
	am, svc := newAuthStack(t)
	r := protectedRouter(am)
	ctx := context.Background()

	if _, err := svc.RegisterUser(ctx, "mw-auth@example.com", "supersecret", "MW User"); err != nil {
		t.Fatalf("register: %v", err)
	}
	access, _, err := svc.LoginUser(ctx, "mw-auth@example.com", "supersecret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}
