package engine

import (
	"encoding/binary"
	"math"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// Digest hashes the kinematic and collision state of every entity
// Two worlds stepped from the same state with the same inputs produce the same digest
func (w *World) Digest() uint64 {
	entities := w.Motions.All()
	slices.Sort(entities)

	h := xxhash.New()
	var buf [8]byte
	putFloat := func(f float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		_, _ = h.Write(buf[:])
	}

	// Ids are skipped, they differ between worlds built at different times
	for _, e := range entities {
		m, _ := w.Motions.Get(e)
		putFloat(m.Position.X)
		putFloat(m.Position.Y)
		putFloat(m.Velocity.X)
		putFloat(m.Velocity.Y)
		putFloat(m.Acceleration.X)
		putFloat(m.Acceleration.Y)

		if b, ok := w.Bodies.Get(e); ok {
			enabled := byte(0)
			if b.Enabled {
				enabled = 1
			}
			_, _ = h.Write([]byte{1, enabled})
		} else {
			_, _ = h.Write([]byte{0})
		}
	}
	return h.Sum64()
}
