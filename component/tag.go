package component

// TagComponent is an opaque key-value blob owned by game logic
// The simulation core never reads it
type TagComponent struct {
	Data map[string]any
}

// NewTag returns an empty blob
func NewTag() TagComponent {
	return TagComponent{Data: make(map[string]any)}
}

func (t *TagComponent) Step() error { return nil }

func (t *TagComponent) Set(key string, v any) {
	if t.Data == nil {
		t.Data = make(map[string]any)
	}
	t.Data[key] = v
}

func (t *TagComponent) Get(key string) (any, bool) {
	v, ok := t.Data[key]
	return v, ok
}

// String returns the value under key if it is a string
func (t *TagComponent) String(key string) string {
	s, _ := t.Data[key].(string)
	return s
}

// Bool returns the value under key if it is a bool, false otherwise
func (t *TagComponent) Bool(key string) bool {
	b, _ := t.Data[key].(bool)
	return b
}

// Int returns the value under key as an int, accepting the number types YAML produces
func (t *TagComponent) Int(key string) int {
	switch v := t.Data[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}
