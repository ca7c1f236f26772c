// Package observability defines the Prometheus collectors for the relay.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ActiveWebSockets is the gauge of currently open chat connections.
	ActiveWebSockets = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "haven_websocket_connections",
		Help: "Number of active WebSocket chat connections",
	})

	// WebSocketEventsTotal counts relay events by type (history, new_message, user_count).
	WebSocketEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "haven_websocket_events_total",
		Help: "Total WebSocket events sent by type",
	}, []string{"event_type"})

	// ChatMessagesDropped counts inbound chat frames rejected by the relay.
	ChatMessagesDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "haven_chat_messages_dropped_total",
		Help: "Total inbound chat messages dropped by reason",
	}, []string{"reason"})

	// WebSocketBackpressureDrops counts outbound messages dropped because a
	// client's send buffer was closed or full.
	WebSocketBackpressureDrops = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "haven_websocket_backpressure_drops_total",
		Help: "Total outbound WebSocket messages dropped due to backpressure",
	}, []string{"reason"})
)
