package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"fitcore/pkg/authz"
)

func requestWithRole(t *testing.T, cap authz.Capability, role string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/guarded",
		func(c *gin.Context) { c.Set(CtxRole, role) },
		RequireCapability(cap),
		func(c *gin.Context) { c.String(http.StatusOK, "ok") },
	)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/guarded", nil))
	return w
}

func TestRequireCapabilityAllowsPermittedRole(t *testing.T) {
	w := requestWithRole(t, authz.CapUsersManage, "admin")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestRequireCapabilityForbidsOtherRoles(t *testing.T) {
	w := requestWithRole(t, authz.CapUsersManage, "user")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

// Admin is not implicitly granted coach-only capabilities.
func TestRequireCapabilityNoHierarchy(t *testing.T) {
	w := requestWithRole(t, authz.CapClientsView, "admin")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireCapabilityMissingRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded",
		RequireCapability(authz.CapProfileSelf),
		func(c *gin.Context) { c.String(http.StatusOK, "ok") },
	)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/guarded", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}
