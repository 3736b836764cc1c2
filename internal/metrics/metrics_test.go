package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.SubscriptionsActivated.WithLabelValues("daily").Inc()
	m.CallsOriginated.WithLabelValues("precoded").Add(2)
	m.HTTPRequests.WithLabelValues("/ping", "GET", "200").Inc()

	assert.Equal(t, float64(1), testutil.ToFloat64(m.SubscriptionsActivated.WithLabelValues("daily")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.CallsOriginated.WithLabelValues("precoded")))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "sakaclient_http_requests_total")
	assert.Contains(t, names, "sakaclient_subscriptions_activated_total")
	assert.Contains(t, names, "sakaclient_calls_originated_total")
}

func TestNew_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)

	assert.Panics(t, func() { New(reg) })
}
