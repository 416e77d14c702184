package metrics_test

import (
	"testing"

	"prep-scheduler/internal/utils/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := metrics.NewMetrics()

	m.TasksGenerated.WithLabelValues("fish-belly").Inc()
	m.TasksGenerated.WithLabelValues("fish-belly").Inc()
	m.WeatherFallbacks.Inc()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.TasksGenerated.WithLabelValues("fish-belly")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.WeatherFallbacks))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.DeliveryConfirmations))
}

func TestMetrics_SeparateRegistries(t *testing.T) {
	a := metrics.NewMetrics()
	b := metrics.NewMetrics()

	a.ScheduleGenerations.Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.ScheduleGenerations))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.ScheduleGenerations))
	assert.NotSame(t, a.Registry(), b.Registry())
}
