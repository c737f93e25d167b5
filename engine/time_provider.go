package engine

import (
	"sync"
	"time"
)

// TimeProvider is a source of wall-clock time
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// ManualTimeProvider is a controllable time source for tests and replays
type ManualTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewManualTimeProvider creates a provider starting at startTime
func NewManualTimeProvider(startTime time.Time) *ManualTimeProvider {
	return &ManualTimeProvider{currentTime: startTime}
}

func (m *ManualTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Advance moves the current time forward by d
func (m *ManualTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}
