package component

import (
	"fmt"

	"github.com/lixenwraith/simple2d/core"
)

// Component is per-entity state that advances itself by one tick
// Kinds needing another entity's state are stepped by their manager instead
type Component interface {
	Step() error
}

// Kind indexes the fixed manager slots of a world
// Declaration order is the tick order
type Kind uint8

const (
	KindBehavior Kind = iota
	KindGravity
	KindSprite
	KindCollision
	KindMotion
	KindAnimatedSprite
	KindRepetitiveSprite
	KindTag

	KindCount
)

var kindNames = [KindCount]string{
	KindBehavior:         "behavior_script",
	KindGravity:          "downward_gravity",
	KindSprite:           "static_sprite",
	KindCollision:        "collision_body",
	KindMotion:           "motion",
	KindAnimatedSprite:   "animated_sprite",
	KindRepetitiveSprite: "static_repetitive_sprite",
	KindTag:              "json",
}

func (k Kind) String() string {
	if k < KindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind resolves a kind name, "tag" is accepted for the tag blob
func ParseKind(name string) (Kind, error) {
	if name == "tag" {
		return KindTag, nil
	}
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return KindCount, fmt.Errorf("component kind %q: %w", name, core.ErrNotFound)
}
