package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New("yetalbot", reg)

	m.RecordHTTPRequest("webhook", "POST", 200, 5*time.Millisecond)
	m.RecordHTTPRequest("webhook", "POST", 200, 7*time.Millisecond)
	m.RecordHTTPRequest("webhook", "POST", 400, time.Millisecond)
	m.RecordUpdate("polling", "command")
	m.RecordHandler("start")
	m.RecordHandler("start")
	m.RecordHandlerFault("about")
	m.RecordDelivery("send", nil)
	m.RecordDelivery("edit", assert.AnError)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("webhook", "POST", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("webhook", "POST", "400")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.updatesReceived.WithLabelValues("polling", "command")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.handlerCalls.WithLabelValues("start")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.handlerFaults.WithLabelValues("about")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.deliveries.WithLabelValues("send", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.deliveries.WithLabelValues("edit", "error")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.httpDuration))
}

func TestMetrics_Gauges(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New("yetalbot", reg)

	m.SetWebhookPending(3)
	assert.Equal(t, 3.0, testutil.ToFloat64(m.webhookPending))

	m.SetWebhookPending(0)
	m.SetBuildInfo("2.0.0", "polling")

	assert.Equal(t, 0.0, testutil.ToFloat64(m.webhookPending))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.buildInfo.WithLabelValues("2.0.0", "polling")))
}

func TestMetrics_RegisteredNames(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New("yetalbot", reg)
	m.RecordUpdate("webhook", "callback")

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "yetalbot_updates_received_total")
}

func TestMetrics_WebhookPendingExposedWithoutLabels(t *testing.T) {
	reg := prometheus.NewRegistry()
	New("yetalbot", reg)

	families, err := reg.Gather()
	require.NoError(t, err)

	var found bool
	for _, f := range families {
		if f.GetName() != "yetalbot_webhook_pending_updates" {
			continue
		}
		found = true
		require.Len(t, f.GetMetric(), 1)
		assert.Empty(t, f.GetMetric()[0].GetLabel())
		assert.Equal(t, 0.0, f.GetMetric()[0].GetGauge().GetValue())
	}
	assert.True(t, found)
}

func TestMetrics_DoubleRegisterPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New("yetalbot", reg)

	assert.Panics(t, func() { New("yetalbot", reg) })
}
