package session

import "github.com/prometheus/client_golang/prometheus"

var (
	sessionsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "lightcycles",
			Subsystem: "session",
			Name:      "active",
			Help:      "Sessions currently open.",
		},
	)
	gamesStarted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "lightcycles",
			Subsystem: "game",
			Name:      "started_total",
			Help:      "Games started.",
		},
	)
	gamesEnded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lightcycles",
			Subsystem: "game",
			Name:      "ended_total",
			Help:      "Games ended, by cause.",
		},
		[]string{"cause"},
	)
	gameAgents = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "lightcycles",
			Subsystem: "game",
			Name:      "agents",
			Help:      "Agents taking part in a game.",
			Buckets:   prometheus.LinearBuckets(0, 1, 7),
		},
	)
	tickDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "lightcycles",
			Subsystem: "game",
			Name:      "tick_seconds",
			Help:      "Time spent rendering and simulating one tick.",
			Buckets:   prometheus.ExponentialBuckets(0.00005, 2, 12),
		},
	)
)

func instrumentTick() func() {
	t := prometheus.NewTimer(tickDuration)
	return func() { t.ObserveDuration() }
}

func init() {
	prometheus.MustRegister(sessionsActive, gamesStarted, gamesEnded, gameAgents, tickDuration)
}
