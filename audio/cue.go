package audio

// Cue is a short sound tied to a gameplay collision
type Cue uint8

const (
	CueLand  Cue = iota // player touched down
	CueStomp            // player landed on an enemy
	CueHurt             // enemy struck the player from the side
	CueJump
	cueCount
)

var cueNames = [cueCount]string{"land", "stomp", "hurt", "jump"}

func (c Cue) String() string {
	if c < cueCount {
		return cueNames[c]
	}
	return "unknown"
}

// Player plays cues, implementations must not block the simulation tick
type Player interface {
	Play(c Cue)
}

// Nop discards every cue, used when audio is disabled or the device is unavailable
type Nop struct{}

func (Nop) Play(Cue) {}
