package input

// Key is a game action produced by a terminal key
type Key uint8

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyJump
	KeyPause
	KeyDebug
	KeyQuit
)

var keyNames = map[string]Key{
	"none":  KeyNone,
	"left":  KeyLeft,
	"right": KeyRight,
	"jump":  KeyJump,
	"pause": KeyPause,
	"debug": KeyDebug,
	"quit":  KeyQuit,
}

func (k Key) String() string {
	for name, v := range keyNames {
		if v == k {
			return name
		}
	}
	return "unknown"
}

// Event is a key transition delivered to behavior scripts
type Event struct {
	Key     Key
	Pressed bool
}

// Press and Release build events for k
func Press(k Key) Event   { return Event{Key: k, Pressed: true} }
func Release(k Key) Event { return Event{Key: k, Pressed: false} }
