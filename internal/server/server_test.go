package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pintrends/internal/config"
	"pintrends/internal/domain/trend"
	"pintrends/internal/server/handlers"
	"pintrends/internal/service/extract"
)

func newTestServer(snap *extract.Snapshot) http.Handler {
	cfg := config.ServerConfig{
		Host:        "127.0.0.1",
		Port:        8080,
		CorsOrigins: []string{"*"},
	}
	return NewServer(cfg, snap).Handler()
}

func TestGetTrends(t *testing.T) {
	snap := extract.NewSnapshot(trend.FallbackMissingDataset())
	h := newTestServer(snap)

	req := httptest.NewRequest(http.MethodGet, "/api/trends", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, snap.SnapshotID(), rec.Header().Get("X-Snapshot-ID"))
	assert.Equal(t, snap.Payload(), rec.Body.Bytes())
}

func TestGetTrendsByteIdenticalAcrossCalls(t *testing.T) {
	h := newTestServer(extract.NewSnapshot(trend.FallbackMissingDataset()))

	var bodies [][]byte
	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/trends", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		bodies = append(bodies, rec.Body.Bytes())
	}

	assert.Equal(t, bodies[0], bodies[1])
}

func TestGetTrendsShape(t *testing.T) {
	h := newTestServer(extract.NewSnapshot(trend.FallbackDataIssue()))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/trends", nil))

	var decoded []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	require.NotEmpty(t, decoded)

	fields := []string{
		"id", "trendName", "category", "currentPopularity",
		"predictedPopularityChange", "keywords", "imageUrl", "description",
	}
	for _, item := range decoded {
		for _, f := range fields {
			assert.Contains(t, item, f)
		}
	}
}

func TestPredict(t *testing.T) {
	h := newTestServer(extract.NewSnapshot(nil))

	req := httptest.NewRequest(http.MethodPost, "/api/predict", strings.NewReader(""))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, handlers.PredictMessage, body["message"])
}

func TestPredictIgnoresBody(t *testing.T) {
	h := newTestServer(extract.NewSnapshot(nil))

	req := httptest.NewRequest(http.MethodPost, "/api/predict", strings.NewReader(`{"image":"..."}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), handlers.PredictMessage)
}

func TestHealth(t *testing.T) {
	snap := extract.NewSnapshot(trend.FallbackMissingDataset())
	h := newTestServer(snap)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status   string `json:"status"`
		Snapshot string `json:"snapshot"`
		Trends   int    `json:"trends"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, snap.SnapshotID(), body.Snapshot)
	assert.Equal(t, 2, body.Trends)
}

func TestCORSAllowsAnyOrigin(t *testing.T) {
	h := newTestServer(extract.NewSnapshot(nil))

	req := httptest.NewRequest(http.MethodGet, "/api/trends", nil)
	req.Header.Set("Origin", "http://frontend.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
