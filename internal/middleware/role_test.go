package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func officialRouter(role string) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if role != "" {
			c.Set("role", role)
		}
	})
	router.Use(OfficialOnly())
	router.GET("/officials/complaints", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return router
}

func TestOfficialOnly_AllowsOfficial(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/officials/complaints", nil)
	officialRouter("official").ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOfficialOnly_CitizenGetsNotFound(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/officials/complaints", nil)
	officialRouter("citizen").ServeHTTP(w, req)

	// soft guard: 404, not 403, so the surface stays invisible
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
	assert.NotContains(t, w.Body.String(), "FORBIDDEN")
}

func TestOfficialOnly_MissingRoleGetsNotFound(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/officials/complaints", nil)
	officialRouter("").ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRequireRole_Mismatch(t *testing.T) {
	router := gin.New()
	router.Use(func(c *gin.Context) { c.Set("role", "citizen") })
	router.Use(RequireRole("official"))
	router.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/x", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
