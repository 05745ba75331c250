package utils

import (
	"context"
	"sync"
	"time"
)

// CheckFunc reports an error when a dependency is unreachable.
type CheckFunc func(ctx context.Context) error

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Status    string          `json:"status"`
	Services  map[string]bool `json:"services"`
	CheckedAt time.Time       `json:"checkedAt"`
}

// HealthMonitor periodically runs checks and keeps the latest snapshot.
type HealthMonitor struct {
	checks  map[string]CheckFunc
	timeout time.Duration

	mu      sync.RWMutex
	current HealthStatus
}

func NewHealthMonitor(checks map[string]CheckFunc) *HealthMonitor {
	return &HealthMonitor{
		checks:  checks,
		timeout: 2 * time.Second,
		current: HealthStatus{Status: "ok", Services: map[string]bool{}},
	}
}

// Status returns the latest stored health snapshot.
func (m *HealthMonitor) Status() HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// CheckNow runs every check once and stores the result.
func (m *HealthMonitor) CheckNow(ctx context.Context) HealthStatus {
	services := make(map[string]bool, len(m.checks))
	status := "ok"
	for name, check := range m.checks {
		cctx, cancel := context.WithTimeout(ctx, m.timeout)
		healthy := check(cctx) == nil
		cancel()
		services[name] = healthy
		if !healthy {
			status = "degraded"
		}
	}

	snap := HealthStatus{Status: status, Services: services, CheckedAt: time.Now().UTC()}
	m.mu.Lock()
	m.current = snap
	m.mu.Unlock()
	return snap
}

// Run checks immediately and then on every interval until ctx is done.
func (m *HealthMonitor) Run(ctx context.Context, interval time.Duration) {
	m.CheckNow(ctx)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.CheckNow(ctx)
		}
	}
}
