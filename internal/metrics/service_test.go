package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_CountersAreExposed(t *testing.T) {
	reg := prometheus.NewRegistry()
	svc := NewService(reg)

	svc.IncRankingsCalculated()
	svc.IncRankingsCalculated()
	svc.IncMatchesRecorded()
	svc.SetStartupTime(1.5)

	assert.Equal(t, float64(2), testutil.ToFloat64(svc.RankingsCalculated))
	assert.Equal(t, float64(1), testutil.ToFloat64(svc.MatchesRecorded))
	assert.Equal(t, 1.5, testutil.ToFloat64(svc.StartupTimeSeconds))

	srv := httptest.NewServer(NewMetricsHandler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "padel_rankings_calculated_total 2")
}
