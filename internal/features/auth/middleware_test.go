package auth

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/xyz-asif/voluntra/internal/config"
	"github.com/xyz-asif/voluntra/internal/features/users"
	idToken "github.com/xyz-asif/voluntra/internal/pkg/jwt"
	"github.com/xyz-asif/voluntra/internal/store"
)

const testSecret = "test-secret"

func newTestRouter(t *testing.T) (*gin.Engine, *users.Repository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st, err := store.Open(t.TempDir())
	require.NoError(t, err)
	repo := users.NewRepository(st)

	cfg := &config.Config{JWTSecret: testSecret}
	r := gin.New()
	r.GET("/protected", Middleware(repo, cfg), func(c *gin.Context) {
		user, _ := users.CurrentUser(c)
		c.JSON(200, gin.H{"id": user.ID})
	})
	r.GET("/admin", Middleware(repo, cfg), RequireAdmin(repo), func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	return r, repo
}

func signIn(t *testing.T, repo *users.Repository, id, role string) string {
	t.Helper()
	_, err := repo.Upsert(context.Background(), users.UserProfile{ID: id, Role: role, DisplayName: id})
	require.NoError(t, err)

	token, err := idToken.GenerateToken(id, id+"@example.com", role, idToken.DefaultConfig(testSecret))
	require.NoError(t, err)
	return token
}

func TestMiddleware_NoHeader(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, 401, w.Code)
	var body map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &body)
	require.NoError(t, err)
	require.Equal(t, "AUTH_REQUIRED", body["code"])
}

func TestMiddleware_MalformedHeader(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	r.ServeHTTP(w, req)

	require.Equal(t, 401, w.Code)
}

func TestMiddleware_InvalidToken(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)

	require.Equal(t, 401, w.Code)
}

func TestMiddleware_ValidTokenLoadsProfile(t *testing.T) {
	r, repo := newTestRouter(t)
	token := signIn(t, repo, "u1", users.RoleVolunteer)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	var body map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &body)
	require.NoError(t, err)
	require.Equal(t, "u1", body["id"])
}

func TestMiddleware_TokenForDeletedUser(t *testing.T) {
	r, _ := newTestRouter(t)

	token, err := idToken.GenerateToken("ghost", "ghost@example.com", users.RoleVolunteer, idToken.DefaultConfig(testSecret))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, 401, w.Code)
}

func TestRequireAdmin_ChecksStoredRole(t *testing.T) {
	r, repo := newTestRouter(t)

	volToken := signIn(t, repo, "vol", users.RoleVolunteer)
	adminToken := signIn(t, repo, "admin", users.RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+volToken)
	r.ServeHTTP(w, req)
	require.Equal(t, 403, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	r.ServeHTTP(w, req)
	require.Equal(t, 200, w.Code)
}

func TestRequireAdmin_RevokedAdminLosesAccess(t *testing.T) {
	r, repo := newTestRouter(t)
	adminToken := signIn(t, repo, "admin", users.RoleAdmin)

	// Demote after the token was issued. The stored role wins.
	_, err := repo.Upsert(context.Background(), users.UserProfile{ID: "admin", Role: users.RoleVolunteer, DisplayName: "admin"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	r.ServeHTTP(w, req)
	require.Equal(t, 403, w.Code)
}
