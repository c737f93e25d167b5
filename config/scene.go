package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/lixenwraith/simple2d/component"
	"github.com/lixenwraith/simple2d/core"
	"github.com/lixenwraith/simple2d/engine"
	"github.com/lixenwraith/simple2d/vmath"
)

// EntityDecl declares one entity by the kind names of its components
// Field values are applied to whichever of the attached components use them
type EntityDecl struct {
	Name       string         `yaml:"name"`
	Components []string       `yaml:"components"`
	Position   [2]float64     `yaml:"position,flow"`
	Velocity   [2]float64     `yaml:"velocity,flow"`
	Size       [2]float64     `yaml:"size,flow"`
	Offset     [2]float64     `yaml:"offset,flow"`
	Glyph      string         `yaml:"glyph"`
	Tags       map[string]any `yaml:"tags"`
}

func (d *EntityDecl) validate() error {
	if len(d.Components) == 0 {
		return fmt.Errorf("entity %q has no components: %w", d.Name, core.ErrInvalidInput)
	}
	for _, name := range d.Components {
		if _, err := component.ParseKind(name); err != nil {
			return fmt.Errorf("entity %q: %w", d.Name, err)
		}
	}
	if d.Size[0] < 0 || d.Size[1] < 0 {
		return fmt.Errorf("entity %q size %v: %w", d.Name, d.Size, core.ErrInvalidInput)
	}
	if d.Glyph != "" && utf8.RuneCountInString(d.Glyph) != 1 {
		return fmt.Errorf("entity %q glyph %q: %w", d.Name, d.Glyph, core.ErrInvalidInput)
	}
	return nil
}

// BuildScene creates the declared entities in w, in declaration order
// On error every entity created by this call is destroyed again
func (c *Config) BuildScene(w *engine.World) ([]core.Entity, error) {
	out := make([]core.Entity, 0, len(c.Scene))
	for i := range c.Scene {
		d := &c.Scene[i]
		if err := d.validate(); err != nil {
			w.DestroyEntity(out...)
			return nil, err
		}

		e := w.CreateEntity()
		for _, name := range d.Components {
			if err := w.AddComponent(e, name); err != nil {
				w.DestroyEntity(append(out, e)...)
				return nil, fmt.Errorf("entity %q: %w", d.Name, err)
			}
		}
		c.apply(w, e, d)
		out = append(out, e)
	}
	return out, nil
}

func (c *Config) apply(w *engine.World, e core.Entity, d *EntityDecl) {
	pos := vmath.Vec2{X: d.Position[0], Y: d.Position[1]}
	vel := vmath.Vec2{X: d.Velocity[0], Y: d.Velocity[1]}
	size := vmath.Size{W: d.Size[0], H: d.Size[1]}
	off := vmath.Vec2{X: d.Offset[0], Y: d.Offset[1]}
	glyph, _ := utf8.DecodeRuneInString(d.Glyph)
	if d.Glyph == "" {
		glyph = '#'
	}

	if m, ok := w.Motions.Get(e); ok {
		m.Position = pos
		m.Velocity = vel
	}
	if g, ok := w.Gravities.Get(e); ok {
		g.Strength = c.Physics.Gravity
	}
	if b, ok := w.Bodies.Get(e); ok {
		b.Size = size
		b.Offset = off
	}
	if s, ok := w.Sprites.Get(e); ok {
		s.Glyph = glyph
		s.Size = size
		s.Offset = off
	}
	if a, ok := w.Animations.Get(e); ok {
		a.Size = size
		a.Offset = off
		if len(a.Frames) == 0 {
			a.Frames = []component.Frame{{Glyph: glyph, Ticks: 1}}
		}
	}
	if r, ok := w.Tiles.Get(e); ok {
		r.Glyph = glyph
		r.Size = size
		r.Offset = off
	}
	if t, ok := w.Tags.Get(e); ok {
		for k, v := range d.Tags {
			t.Set(k, v)
		}
		if d.Name != "" {
			t.Set("name", d.Name)
		}
	}
}
