package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/drakos74/edu-cluster/infra/config"
	"github.com/drakos74/edu-cluster/internal/cluster"
	"github.com/drakos74/edu-cluster/internal/dataset"
	"github.com/drakos74/edu-cluster/internal/metrics"
	"github.com/drakos74/edu-cluster/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *httptest.Server {
	m := metrics.NewMetrics()
	pipeline := cluster.NewPipeline(dataset.NewCache(dataset.NewGenerator()), config.Default().Clustering).
		WithMetrics(m)
	s := NewServer("test", 0).
		Add(Live()).
		Add(ClusterRoutes(pipeline)...).
		Handle("/metrics", m.Handler())
	return httptest.NewServer(s.Mux())
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestServer_Live(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	resp, _ := get(t, ts.URL+"/data")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_Dataset(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	resp, body := get(t, ts.URL+"/api/dataset")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var table model.Table
	require.NoError(t, json.Unmarshal(body, &table))
	require.Len(t, table, len(dataset.Provinces))
	for i, p := range table {
		assert.Equal(t, dataset.Provinces[i], p.Name)
	}
}

func TestServer_Cluster(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	type test struct {
		query string
		code  int
		k     int
	}

	tests := map[string]test{
		"default-k":   {query: "", code: http.StatusOK, k: 3},
		"k=2":         {query: "?k=2", code: http.StatusOK, k: 2},
		"k=5":         {query: "?k=5", code: http.StatusOK, k: 5},
		"below-range": {query: "?k=1", code: http.StatusBadRequest},
		"above-range": {query: "?k=6", code: http.StatusBadRequest},
		"not-number":  {query: "?k=three", code: http.StatusBadRequest},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			resp, body := get(t, ts.URL+"/api/cluster"+tt.query)
			require.Equal(t, tt.code, resp.StatusCode, string(body))
			if tt.code != http.StatusOK {
				assert.NotEmpty(t, body)
				return
			}
			var result struct {
				K     int         `json:"k"`
				Table model.Table `json:"table"`
			}
			require.NoError(t, json.Unmarshal(body, &result))
			assert.Equal(t, tt.k, result.K)
			require.Len(t, result.Table, len(dataset.Provinces))
			for _, p := range result.Table {
				assert.GreaterOrEqual(t, p.Cluster, 0)
				assert.Less(t, p.Cluster, tt.k)
			}
		})
	}
}

func TestServer_Summary(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	resp, body := get(t, ts.URL+"/api/summary?k=4")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var summary []cluster.Summary
	require.NoError(t, json.Unmarshal(body, &summary))
	require.NotEmpty(t, summary)
	var total int
	for _, s := range summary {
		total += s.Size
		assert.Len(t, s.Means, len(model.Features))
	}
	assert.Equal(t, len(dataset.Provinces), total)
}

func TestServer_Charts(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	for _, path := range []string{"/chart/scatter?k=3", "/chart/sizes?k=3"} {
		t.Run(path, func(t *testing.T) {
			resp, body := get(t, ts.URL+path)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, htmlType, resp.Header.Get("Content-Type"))
			assert.Contains(t, string(body), "echarts")
		})
	}
}

func TestServer_MethodNotImplemented(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/api/cluster?k=3", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotImplemented, resp.StatusCode)
}

func TestServer_Metrics(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	resp, _ := get(t, ts.URL+"/api/cluster?k=2")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := get(t, ts.URL+"/metrics")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `educluster_runs_total{k="2",status="ok"} 1`)
}
