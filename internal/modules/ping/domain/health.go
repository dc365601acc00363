package domain

import (
	"fmt"
	"time"
)

// HealthReport represents a liveness snapshot of the bot.
type HealthReport struct {
	GatewayLatency time.Duration
	Uptime         time.Duration
	Timestamp      time.Time
}

// NewHealthReport creates a new HealthReport.
func NewHealthReport(gatewayLatency, uptime time.Duration) *HealthReport {
	return &HealthReport{
		GatewayLatency: gatewayLatency,
		Uptime:         uptime,
		Timestamp:      time.Now(),
	}
}

// Message renders the report as the /ping reply. The latency line is
// omitted when no gateway measurement is available.
func (r *HealthReport) Message() string {
	if r.GatewayLatency <= 0 {
		return fmt.Sprintf("Pong! Uptime: %s", r.Uptime.Round(time.Second))
	}
	return fmt.Sprintf("Pong! Gateway latency: %s | Uptime: %s",
		r.GatewayLatency.Round(time.Millisecond), r.Uptime.Round(time.Second))
}
