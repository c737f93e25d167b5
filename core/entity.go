package core

import "sync/atomic"

// Entity is the identity shared by every per-kind component store
// Zero is never issued and reads as "no entity"
type Entity uint64

var entityCounter atomic.Uint64

// NewEntity returns a process-wide unique id, ids are never reused
func NewEntity() Entity {
	return Entity(entityCounter.Add(1))
}
