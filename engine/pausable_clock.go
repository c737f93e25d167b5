package engine

import (
	"sync"
	"time"
)

// PausableClock provides game time that stands still while paused
type PausableClock struct {
	mu sync.RWMutex

	realTime      TimeProvider
	realStartTime time.Time

	paused          bool
	pauseStartTime  time.Time     // when the current pause started (real time)
	totalPausedTime time.Duration // cumulative pause duration
}

// NewPausableClock creates a running clock on top of the given real time source
func NewPausableClock(realTime TimeProvider) *PausableClock {
	if realTime == nil {
		realTime = NewMonotonicTimeProvider()
	}
	return &PausableClock{
		realTime:      realTime,
		realStartTime: realTime.Now(),
	}
}

// Now returns current game time: real elapsed minus paused time
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.paused {
		return pc.realStartTime.Add(pc.pauseStartTime.Sub(pc.realStartTime) - pc.totalPausedTime)
	}
	return pc.realStartTime.Add(pc.realTime.Now().Sub(pc.realStartTime) - pc.totalPausedTime)
}

// Pause stops game time advancement
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStartTime = pc.realTime.Now()
}

// Resume continues game time advancement
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.paused {
		return
	}
	pc.paused = false
	pc.totalPausedTime += pc.realTime.Now().Sub(pc.pauseStartTime)
	pc.pauseStartTime = time.Time{}
}

// Toggle flips the pause state and reports whether the clock is now paused
func (pc *PausableClock) Toggle() bool {
	if pc.IsPaused() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPauseDuration returns cumulative pause time, including a pause in progress
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.paused {
		total += pc.realTime.Now().Sub(pc.pauseStartTime)
	}
	return total
}
