// Package voxel defines the voxel capability set consumed by the greedy mesher.
package voxel

// Visibility classifies how a voxel takes part in face culling.
// Values are ordered: Empty < Opaque.
type Visibility uint8

const (
	Empty Visibility = iota
	Opaque
)

func (v Visibility) String() string {
	switch v {
	case Empty:
		return "Empty"
	case Opaque:
		return "Opaque"
	default:
		return "Unknown"
	}
}

// Voxel is anything the mesher can classify for visibility.
type Voxel interface {
	Visibility() Visibility
}

// MergeVoxel is a Voxel that also reports which voxels may share a quad.
// Two faces merge only when their MergeValue results are equal.
type MergeVoxel[M comparable] interface {
	Voxel
	MergeValue() M
}

// Bool is a single-bit occupancy voxel.
type Bool bool

const (
	EmptyVoxel Bool = false
	FullVoxel  Bool = true
)

// Visibility returns Opaque for FULL and Empty for EMPTY.
func (b Bool) Visibility() Visibility {
	if b == EmptyVoxel {
		return Empty
	}
	return Opaque
}

// MergeValue is the voxel itself: FULL merges with FULL only.
func (b Bool) MergeValue() Bool {
	return b
}

func (b Bool) String() string {
	if b {
		return "FULL"
	}
	return "EMPTY"
}
