package builder

import "github.com/katalvlaran/lvlcycle/core"

// IDFn maps a zero-based vertex index to its VertexID.
// It must be pure and injective: equal indices give equal IDs, distinct
// indices give distinct IDs.
type IDFn func(idx int) core.VertexID

// DefaultIDFn uses the index itself as the ID: 0→0, 41→41.
func DefaultIDFn(idx int) core.VertexID {
	return core.VertexID(idx)
}

// OffsetIDFn shifts every index by k: OffsetIDFn(100)(3) == 103.
func OffsetIDFn(k int) IDFn {
	return func(idx int) core.VertexID {
		return core.VertexID(idx + k)
	}
}
