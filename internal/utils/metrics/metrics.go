package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics holds the collectors exposed on /metrics. Each instance owns its registry.
type Metrics struct {
	registry *prometheus.Registry

	TasksGenerated        *prometheus.CounterVec
	TasksClosed           *prometheus.CounterVec
	ScheduleGenerations   prometheus.Counter
	GenerationDuration    prometheus.Histogram
	WeatherFallbacks      prometheus.Counter
	DeliveryConfirmations prometheus.Counter
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		TasksGenerated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "prep_tasks_generated_total",
				Help: "Prep tasks created by schedule generation",
			},
			[]string{"item"},
		),
		TasksClosed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "prep_tasks_closed_total",
				Help: "Prep tasks removed from the schedule",
			},
			[]string{"action"},
		),
		ScheduleGenerations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "schedule_generations_total",
			Help: "Schedule generation runs",
		}),
		GenerationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "schedule_generation_duration_seconds",
			Help:    "Time taken by a schedule generation run",
			Buckets: prometheus.DefBuckets,
		}),
		WeatherFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "weather_fallbacks_total",
			Help: "Schedule runs that fell back to the default weather label",
		}),
		DeliveryConfirmations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "delivery_confirmations_total",
			Help: "Confirmed delivery plans",
		}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.TasksGenerated,
		m.TasksClosed,
		m.ScheduleGenerations,
		m.GenerationDuration,
		m.WeatherFallbacks,
		m.DeliveryConfirmations,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
