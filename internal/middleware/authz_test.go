package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"secinstall/internal/authz"
)

func guardedRouter(roleID int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("role_id", roleID) })
	r.Use(ReadOnlyGuard())
	r.GET("/api/invoices", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/api/invoices", func(c *gin.Context) { c.Status(http.StatusCreated) })
	return r
}

func TestReadOnlyGuardBlocksAuditorWrites(t *testing.T) {
	r := guardedRouter(authz.RoleAuditor)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/invoices", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestReadOnlyGuardAllowsAuditorReads(t *testing.T) {
	r := guardedRouter(authz.RoleAuditor)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/invoices", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReadOnlyGuardIgnoresOtherRoles(t *testing.T) {
	r := guardedRouter(authz.RoleAccountant)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/invoices", nil))
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRequireRolesRejectsOutsiders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("role_id", authz.RoleTechnician) })
	r.GET("/api/expenses", RequireRoles(authz.RoleAccountant, authz.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/expenses", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}
