package article

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonTsoy/jwt-auth-api/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestListArticlesEndpoint(t *testing.T) {
	router := gin.New()
	api := router.Group("/api")
	NewHandler(store.NewMemoryArticleStore()).Register(api)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/article", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp []map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "Article1", resp[0]["title"])
	assert.Equal(t, "Content1", resp[0]["content"])
	assert.NotEmpty(t, resp[0]["id"])
	assert.Equal(t, "Article2", resp[1]["title"])
}
