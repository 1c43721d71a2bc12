package labels

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/annotator-api/api/types"
)

func TestGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	deps := &types.Dependencies{
		Labels: []string{"PERSON", "ORGANIZATION", "LOCATION", "MISCELLANEOUS"},
	}
	engine := gin.New()
	RegisterRoutes(engine.Group("/api/v1/labels"), deps)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/labels", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp types.LabelsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, deps.Labels, resp.Labels)
}
