package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"podium/internal/authz"
	"podium/internal/handlers"
	"podium/internal/middleware"
)

const testSecret = "routes-test-secret"

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	middleware.SetJWTKey(testSecret)

	r := gin.New()
	return SetupRoutes(r,
		handlers.NewAuthHandler(nil, nil),
		handlers.NewBookingHandler(nil),
		handlers.NewDealHandler(nil),
		handlers.NewProjectHandler(nil),
		handlers.NewFinanceHandler(nil),
		handlers.NewSyncHandler(nil),
		handlers.NewReconcileHandler(nil),
		handlers.NewMigrationHandler(nil),
		handlers.NewDocumentHandler(nil),
		handlers.NewReportHandler(nil),
	)
}

func signToken(t *testing.T, roleID int) string {
	t.Helper()
	claims := &middleware.Claims{
		UserID: 1,
		RoleID: roleID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(30 * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

// Every guarded route must reject an unauthenticated request before any
// handler logic runs.
func TestGuardedRoutesRequireAuth(t *testing.T) {
	r := testRouter()

	routes := []struct {
		method, path string
	}{
		{http.MethodPost, "/api/sync/budget"},
		{http.MethodGet, "/api/sync/budget"},
		{http.MethodPost, "/api/admin/deals/"},
		{http.MethodGet, "/api/admin/deals/"},
		{http.MethodPut, "/api/admin/deals/1"},
		{http.MethodDelete, "/api/admin/deals/1"},
		{http.MethodPost, "/api/admin/deals/1/status"},
		{http.MethodPost, "/api/admin/projects/"},
		{http.MethodPost, "/api/admin/projects/from-deal"},
		{http.MethodPut, "/api/admin/projects/1"},
		{http.MethodDelete, "/api/admin/projects/1"},
		{http.MethodPut, "/api/admin/projects/1/stage-tasks"},
		{http.MethodPost, "/api/admin/projects/1/documents"},
		{http.MethodGet, "/api/admin/documents/1/download"},
		{http.MethodPut, "/api/admin/finances/deals/1"},
		{http.MethodPut, "/api/admin/finances/projects/1"},
		{http.MethodPost, "/api/admin/sync-finance"},
		{http.MethodGet, "/api/admin/sync-finance"},
		{http.MethodGet, "/api/admin/migrate-speaker-fees"},
		{http.MethodPost, "/api/admin/migrate-speaker-fees"},
		{http.MethodGet, "/api/admin/reports/summary"},
	}
	for _, rt := range routes {
		req := httptest.NewRequest(rt.method, rt.path, strings.NewReader("{}"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", rt.method, rt.path)
	}
}

func TestReadOnlyRoleCannotMutate(t *testing.T) {
	r := testRouter()
	token := signToken(t, authz.RoleReadOnly)

	for _, rt := range []struct{ method, path string }{
		{http.MethodPost, "/api/admin/deals/"},
		{http.MethodPut, "/api/admin/projects/1"},
		{http.MethodPost, "/api/sync/budget"},
		{http.MethodPost, "/api/admin/sync-finance"},
	} {
		req := httptest.NewRequest(rt.method, rt.path, strings.NewReader("{}"))
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code, "%s %s", rt.method, rt.path)
	}
}

// Sales can work deals but not the finance forms.
func TestFinanceRoutesNeedFinanceRole(t *testing.T) {
	r := testRouter()
	token := signToken(t, authz.RoleSales)

	for _, rt := range []struct{ method, path string }{
		{http.MethodPut, "/api/admin/finances/deals/1"},
		{http.MethodPut, "/api/admin/finances/projects/1"},
		{http.MethodPost, "/api/admin/sync-finance"},
		{http.MethodPost, "/api/admin/migrate-speaker-fees"},
	} {
		req := httptest.NewRequest(rt.method, rt.path, strings.NewReader("{}"))
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code, "%s %s", rt.method, rt.path)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	r := testRouter()
	claims := &middleware.Claims{
		UserID: 1,
		RoleID: authz.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/sync-finance", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHealthzIsPublic(t *testing.T) {
	r := testRouter()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
