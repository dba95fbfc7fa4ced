package fakemsk_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandemo-ya/mskgo/internal/fakemsk"
	api "github.com/nandemo-ya/mskgo/internal/kafka/generated"
)

func TestAdminServer_Endpoints(t *testing.T) {
	reg := prometheus.NewRegistry()
	client, fake := newTestClient(t, fakemsk.WithMetrics(reg))
	admin := fakemsk.NewAdminServer("127.0.0.1:0", fake, reg)
	server := httptest.NewServer(admin.Handler())
	t.Cleanup(server.Close)

	createCluster(t, client, "orders")
	_, err := client.ListClusters(context.Background(), &api.ListClustersRequest{})
	require.NoError(t, err)

	t.Run("healthz", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/healthz")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var health fakemsk.HealthResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
		assert.Equal(t, "OK", health.Status)
		assert.NotEmpty(t, health.Version)
	})

	t.Run("stats", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/stats")
		require.NoError(t, err)
		defer resp.Body.Close()

		var stats fakemsk.Stats
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
		assert.Equal(t, 1, stats.Clusters)
		assert.Equal(t, 1, stats.Calls["CreateCluster"])
		assert.Equal(t, 1, stats.Calls["ListClusters"])
	})

	t.Run("metrics", func(t *testing.T) {
		expected := `
# HELP fakemsk_requests_total Total number of requests served by operation and status code
# TYPE fakemsk_requests_total counter
fakemsk_requests_total{code="200",operation="CreateCluster"} 1
fakemsk_requests_total{code="200",operation="ListClusters"} 1
`
		require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "fakemsk_requests_total"))

		resp, err := http.Get(server.URL + "/metrics")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestAdminServer_Readiness(t *testing.T) {
	admin := fakemsk.NewAdminServer("127.0.0.1:0", fakemsk.New(), prometheus.NewRegistry())
	server := httptest.NewServer(admin.Handler())
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL + "/ready")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	admin.SetReady(true)
	resp, err = http.Get(server.URL + "/ready")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_MetricsCountInjectedErrors(t *testing.T) {
	reg := prometheus.NewRegistry()
	client, fake := newTestClient(t, fakemsk.WithMetrics(reg))
	fake.InjectError("ListKafkaVersions", http.StatusForbidden, "ForbiddenException", "denied")

	_, err := client.ListKafkaVersions(context.Background(), &api.ListKafkaVersionsRequest{})
	require.Error(t, err)

	expected := `
# HELP fakemsk_requests_total Total number of requests served by operation and status code
# TYPE fakemsk_requests_total counter
fakemsk_requests_total{code="403",operation="ListKafkaVersions"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "fakemsk_requests_total"))
}
