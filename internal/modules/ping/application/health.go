package application

import (
	"time"

	"github.com/inhouse-league/stackbot/internal/modules/ping/domain"
)

// HealthInteractor handles the ping use case.
type HealthInteractor struct {
	startedAt time.Time
}

// NewHealthInteractor creates a new HealthInteractor anchored at the
// current time.
func NewHealthInteractor() *HealthInteractor {
	return &HealthInteractor{startedAt: time.Now()}
}

// Execute builds a health report from the measured gateway latency.
func (h *HealthInteractor) Execute(gatewayLatency time.Duration) *domain.HealthReport {
	return domain.NewHealthReport(gatewayLatency, time.Since(h.startedAt))
}
