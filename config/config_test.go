package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/simple2d/core"
	"github.com/lixenwraith/simple2d/engine"
	"github.com/lixenwraith/simple2d/parameter"
	"github.com/lixenwraith/simple2d/vmath"
)

const sceneYAML = `
ticks_per_second: 30
world:
  width: 800
  height: 600
collision:
  cell_size: 16
  broad_phase: swept
physics:
  gravity: 0.5
log:
  level: debug
keys:
  a: left
  d: right
scene:
  - name: crate
    components: [motion, collision_body, static_sprite, downward_gravity, tag]
    position: [10, 20]
    velocity: [1, 0]
    size: [30, 30]
    glyph: "X"
    tags:
      weight: 3
  - name: floor
    components: [motion, collision_body, static_repetitive_sprite]
    position: [0, 500]
    size: [800, 40]
    glyph: "="
`

func TestLoadOverridesDefaults(t *testing.T) {
	c, err := Load(strings.NewReader(sceneYAML))
	require.NoError(t, err)

	assert.Equal(t, 30, c.TicksPerSecond)
	assert.Equal(t, parameter.MaxCatchUpTicks, c.MaxCatchUpTicks, "absent field keeps default")
	assert.Equal(t, WorldConfig{Width: 800, Height: 600}, c.World)
	assert.Equal(t, CollisionConfig{CellSize: 16, BroadPhase: "swept"}, c.Collision)
	assert.Equal(t, 0.5, c.Physics.Gravity)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "json", c.Log.Encoding)
	assert.Equal(t, map[string]string{"a": "left", "d": "right"}, c.Keys)
	require.Len(t, c.Scene, 2)
	assert.Equal(t, [2]float64{10, 20}, c.Scene[0].Position)
}

func TestLoadEmptyIsDefault(t *testing.T) {
	c, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadRejectsUnknownField(t *testing.T) {
	_, err := Load(strings.NewReader("tick_rate: 60\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero tick rate", func(c *Config) { c.TicksPerSecond = 0 }},
		{"zero catch up", func(c *Config) { c.MaxCatchUpTicks = 0 }},
		{"negative width", func(c *Config) { c.World.Width = -1 }},
		{"zero cell", func(c *Config) { c.Collision.CellSize = 0 }},
		{"bad broad phase", func(c *Config) { c.Collision.BroadPhase = "octree" }},
		{"loud", func(c *Config) { c.Audio.Volume = 2 }},
		{"zero scale", func(c *Config) { c.Render.Scale = 0 }},
		{"unknown kind", func(c *Config) {
			c.Scene = []EntityDecl{{Name: "x", Components: []string{"rigid_body"}}}
		}},
		{"no components", func(c *Config) { c.Scene = []EntityDecl{{Name: "x"}} }},
		{"wide glyph", func(c *Config) {
			c.Scene = []EntityDecl{{Name: "x", Components: []string{"motion"}, Glyph: "ab"}}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			err := c.Validate()
			require.Error(t, err)
			if tt.name != "unknown kind" {
				assert.ErrorIs(t, err, core.ErrInvalidInput)
			} else {
				assert.ErrorIs(t, err, core.ErrNotFound)
			}
		})
	}

	assert.NoError(t, Default().Validate())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	c, err := LoadFile(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	path := filepath.Join(dir, "simple2d.yaml")
	require.NoError(t, os.WriteFile(path, []byte("render:\n  scale: 5\n  debug: true\n"), 0o644))
	c, err = LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, RenderConfig{Scale: 5, Debug: true}, c.Render)
}

func TestBuildScene(t *testing.T) {
	c, err := Load(strings.NewReader(sceneYAML))
	require.NoError(t, err)

	w := engine.NewWorld(engine.Dimensions{Width: c.World.Width, Height: c.World.Height}, nil)
	entities, err := c.BuildScene(w)
	require.NoError(t, err)
	require.Len(t, entities, 2)
	crate, floor := entities[0], entities[1]

	m, ok := w.Motions.Get(crate)
	require.True(t, ok)
	assert.Equal(t, vmath.Vec2{X: 10, Y: 20}, m.Position)
	assert.Equal(t, vmath.Vec2{X: 1, Y: 0}, m.Velocity)

	b, ok := w.Bodies.Get(crate)
	require.True(t, ok)
	assert.True(t, b.Enabled)
	assert.Equal(t, vmath.Size{W: 30, H: 30}, b.Size)

	s, ok := w.Sprites.Get(crate)
	require.True(t, ok)
	assert.Equal(t, 'X', s.Glyph)

	g, ok := w.Gravities.Get(crate)
	require.True(t, ok)
	assert.Equal(t, 0.5, g.Strength)

	tag, ok := w.Tags.Get(crate)
	require.True(t, ok)
	assert.Equal(t, "crate", tag.String("name"))
	assert.Equal(t, 3, tag.Int("weight"))

	tile, ok := w.Tiles.Get(floor)
	require.True(t, ok)
	assert.Equal(t, '=', tile.Glyph)
	assert.Equal(t, vmath.Size{W: 800, H: 40}, tile.Size)
	assert.False(t, w.Gravities.Has(floor))
}

func TestBuildSceneRollsBackOnError(t *testing.T) {
	c := Default()
	c.Scene = []EntityDecl{
		{Name: "crate", Components: []string{"motion", "collision_body"}, Size: [2]float64{10, 10}},
		{Name: "sign", Components: []string{"motion", "static_sprite"}, Glyph: "ab"},
	}

	w := engine.NewWorld(engine.Dimensions{Width: c.World.Width, Height: c.World.Height}, nil)
	entities, err := c.BuildScene(w)
	assert.ErrorIs(t, err, core.ErrInvalidInput)
	assert.Nil(t, entities)
	assert.Zero(t, w.Motions.Count(), "crate destroyed again")
	assert.Zero(t, w.Bodies.Count())
}
