package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/simple2d/core"
)

const (
	sampleRate = beep.SampleRate(48000)

	// maxActiveCues drops cues while this many are still mixing
	maxActiveCues = 8
)

// SoundManager plays collision cues through the system speaker
// All methods are safe before Initialize and after Cleanup, they do nothing
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	log         *zap.Logger
	initialized bool
}

// NewSoundManager creates a manager at linear volume 0..1
func NewSoundManager(volume float64, log *zap.Logger) *SoundManager {
	if log == nil {
		log = zap.NewNop()
	}
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
		log:    log.With(zap.String("subsystem", "audio")),
	}
}

// Initialize opens the speaker, a missing audio device is reported as ErrInit
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("speaker: %v: %w", err, core.ErrInit)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play queues c on the mixer without waiting for it to sound
func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := CueStreamer(c, sm.volume, sampleRate)
	if s == nil {
		sm.log.Debug("no streamer for cue", zap.Stringer("cue", c))
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	if sm.mixer.Len() >= maxActiveCues {
		return
	}
	sm.mixer.Add(s)
}

// Cleanup silences pending cues and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.mixer.Clear()
	sm.initialized = false
}

var (
	_ Player = (*SoundManager)(nil)
	_ Player = Nop{}
)
