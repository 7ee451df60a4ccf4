package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Raz-Bouganim/SocialNetwork-GameStopStock/config"
	"github.com/Raz-Bouganim/SocialNetwork-GameStopStock/pkg/pipeline"
	"github.com/Raz-Bouganim/SocialNetwork-GameStopStock/service"
)

func testRouter(t *testing.T) *mux.Router {
	t.Helper()

	runCfg := pipeline.NewConfig()
	runCfg.Set("hubs.catalyst_connections", 40)
	runCfg.Set("hubs.min_connections", 5)
	runCfg.Set("hubs.max_connections", 25)
	runCfg.Set("bipartite.posts", 40)
	runCfg.Set("logging.level", "error")

	analyses, err := service.NewAnalysisService(config.RunConfig{
		CacheSize:      8,
		MinNetworkSize: 50,
		MaxNetworkSize: 400,
		MaxSteps:       20,
		MaxKThreshold:  5,
	}, runCfg)
	require.NoError(t, err)

	router := mux.NewRouter()
	SetupRoutes(router, NewHandlers(analyses))
	return router
}

func doJSON(t *testing.T, router *mux.Router, method, path string, body interface{}) (*httptest.ResponseRecorder, Response) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

// submitAndWait submits a run and polls the status endpoint to completion.
func submitAndWait(t *testing.T, router *mux.Router) string {
	t.Helper()

	rec, resp := doJSON(t, router, http.MethodPost, "/api/v1/analyses", map[string]interface{}{
		"network_size": 100,
		"seed":         42,
		"tft_steps":    5,
		"k_threshold":  2,
	})
	require.Equal(t, http.StatusAccepted, rec.Code)
	require.True(t, resp.Success)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	id, _ := data["id"].(string)
	require.NotEmpty(t, id)

	deadline := time.Now().Add(30 * time.Second)
	for time.Now().Before(deadline) {
		rec, resp = doJSON(t, router, http.MethodGet, "/api/v1/analyses/"+id, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		data = resp.Data.(map[string]interface{})
		switch data["status"] {
		case string(service.StatusCompleted):
			return id
		case string(service.StatusFailed):
			t.Fatalf("run failed: %v", data["error"])
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("run did not finish in time")
	return ""
}

func TestHealthCheck(t *testing.T) {
	router := testRouter(t)
	rec, resp := doJSON(t, router, http.MethodGet, "/api/v1/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
}

func TestSubmitAnalysis_InvalidBody(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitAnalysis_OutOfBoundsParams(t *testing.T) {
	router := testRouter(t)
	rec, resp := doJSON(t, router, http.MethodPost, "/api/v1/analyses", map[string]interface{}{
		"network_size": 10,
		"seed":         1,
		"tft_steps":    5,
		"k_threshold":  2,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Error)
}

func TestGetAnalysis_NotFound(t *testing.T) {
	router := testRouter(t)
	rec, resp := doJSON(t, router, http.MethodGet, "/api/v1/analyses/no-such-run", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, resp.Success)
}

func TestGetResult_NotFound(t *testing.T) {
	router := testRouter(t)
	rec, _ := doJSON(t, router, http.MethodGet, "/api/v1/analyses/no-such-run/result", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAnalysisLifecycle(t *testing.T) {
	router := testRouter(t)
	id := submitAndWait(t, router)

	rec, resp := doJSON(t, router, http.MethodGet, "/api/v1/analyses/"+id+"/result", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	assert.Contains(t, data, "network_stats")
	assert.Contains(t, data, "top_influencers")
	assert.Contains(t, data, "cooperation_history")
	assert.Contains(t, data, "echo_chamber")

	history, ok := data["cooperation_history"].([]interface{})
	require.True(t, ok)
	assert.Len(t, history, 5)

	influencers, ok := data["top_influencers"].([]interface{})
	require.True(t, ok)
	assert.Len(t, influencers, 10)
}

func TestExports(t *testing.T) {
	router := testRouter(t)
	id := submitAndWait(t, router)

	get := func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}
	base := fmt.Sprintf("/api/v1/analyses/%s/export", id)

	rec := get(base + "/network.gexf")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/gexf+xml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "<gexf")

	rec = get(base + "/influencers.csv")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "user,weighted_in_degree")

	rec = get(base + "/bridges.csv")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "user,betweenness")

	rec = get(base + "/cooperation.csv")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "day,cooperation_rate")

	rec = get(base + "/matrix.bin")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/octet-stream", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Body.Bytes())
}
