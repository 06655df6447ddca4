package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jssohel603-bot/football-game/internal/shared/types"
)

// MatchMetricsCollector tracks simulation throughput and gameplay events
// across every running session.
type MatchMetricsCollector struct {
	ticksTotal     prometheus.Counter
	goalsTotal     *prometheus.CounterVec
	kickoffsTotal  *prometheus.CounterVec
	actionsTotal   *prometheus.CounterVec
	activeSessions prometheus.Gauge
	tickDuration   prometheus.Histogram
}

// NewMatchMetricsCollector creates a new match metrics collector
func NewMatchMetricsCollector() *MatchMetricsCollector {
	return &MatchMetricsCollector{
		ticksTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "ticks_total",
				Help:      "Total number of simulation ticks across all sessions",
			},
		),
		goalsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "goals_total",
				Help:      "Goals scored by team",
			},
			[]string{"team"},
		),
		kickoffsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "kickoffs_total",
				Help:      "Kickoffs by reason (start, goal, manual)",
			},
			[]string{"reason"},
		),
		actionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "actions_total",
				Help:      "Player actions by kind (pass, shot, switch)",
			},
			[]string{"kind"},
		),
		activeSessions: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "active_sessions",
				Help:      "Number of matches currently running",
			},
		),
		tickDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "tick_duration_seconds",
				Help:      "Time spent advancing every session by one tick",
				Buckets:   []float64{0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01},
			},
		),
	}
}

// Register registers all match metrics with the Prometheus registry
func (c *MatchMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	metrics := []prometheus.Collector{
		c.ticksTotal,
		c.goalsTotal,
		c.kickoffsTotal,
		c.actionsTotal,
		c.activeSessions,
		c.tickDuration,
	}

	for _, metric := range metrics {
		if err := Registry.Register(metric); err != nil {
			return err
		}
	}

	return nil
}

// RecordTick records one manager tick and how long it took.
func (c *MatchMetricsCollector) RecordTick(d time.Duration) {
	c.ticksTotal.Inc()
	c.tickDuration.Observe(d.Seconds())
}

// RecordEvents counts the gameplay events raised by one session tick.
func (c *MatchMetricsCollector) RecordEvents(events []types.GameplayEvent) {
	for _, ev := range events {
		switch ev.Type {
		case types.EventGoal:
			c.goalsTotal.WithLabelValues(string(ev.Team)).Inc()
		case types.EventKickoff:
			c.kickoffsTotal.WithLabelValues(ev.Reason).Inc()
		case types.EventPass, types.EventShot, types.EventSwitch:
			c.actionsTotal.WithLabelValues(ev.Type).Inc()
		}
	}
}

// SetActiveSessions updates the running-session gauge.
func (c *MatchMetricsCollector) SetActiveSessions(n int) {
	c.activeSessions.Set(float64(n))
}
