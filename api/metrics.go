package api

import "github.com/prometheus/client_golang/prometheus"

var (
	socketsOpen = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "lightcycles",
			Subsystem: "socket",
			Name:      "open",
			Help:      "Websocket connections currently open.",
		},
	)
	socketMessages = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lightcycles",
			Subsystem: "socket",
			Name:      "messages_total",
			Help:      "Inbound websocket messages, by type.",
		},
		[]string{"type"},
	)
	socketDropped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "lightcycles",
			Subsystem: "socket",
			Name:      "dropped_total",
			Help:      "Inbound websocket messages dropped by the rate limiter.",
		},
	)
)

func init() {
	prometheus.MustRegister(socketsOpen, socketMessages, socketDropped)
}
