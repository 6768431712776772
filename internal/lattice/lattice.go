package lattice

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// DensitySampler evaluates the voxel state at a domain position.
// Implementations must be pure and defined for every real position.
type DensitySampler[V any] func(p mgl32.Vec3) V

// Lattice is a dense padded 3-D array of voxels owned by a single meshing call.
type Lattice[V any] struct {
	Shape  Shape
	Voxels []V
}

// New allocates a lattice of the given shape filled with the zero voxel.
func New[V any](shape Shape) *Lattice[V] {
	return &Lattice[V]{
		Shape:  shape,
		Voxels: make([]V, shape.Size()),
	}
}

// At returns the voxel at linear index i.
func (l *Lattice[V]) At(i uint32) V {
	l.check(i)
	return l.Voxels[i]
}

// Set stores v at linear index i.
func (l *Lattice[V]) Set(i uint32, v V) {
	l.check(i)
	l.Voxels[i] = v
}

// Get returns the voxel at padded coordinate (x, y, z).
func (l *Lattice[V]) Get(x, y, z uint32) V {
	return l.Voxels[l.Shape.Linearize([3]uint32{x, y, z})]
}

// Put stores v at padded coordinate (x, y, z).
func (l *Lattice[V]) Put(x, y, z uint32, v V) {
	l.Voxels[l.Shape.Linearize([3]uint32{x, y, z})] = v
}

// Fill sets every cell, padding included, to v.
func (l *Lattice[V]) Fill(v V) {
	for i := range l.Voxels {
		l.Voxels[i] = v
	}
}

func (l *Lattice[V]) check(i uint32) {
	if int(i) >= len(l.Voxels) {
		panic(fmt.Sprintf("lattice: index %d out of range for %d voxels", i, len(l.Voxels)))
	}
}

// Domain maps an integer lattice coordinate into the normalized sampling
// domain: (2/n)*c - 1 on every axis, n being the logical chunk edge.
// The sampler's spatial frequency therefore does not depend on n.
func Domain(n uint32, c [3]uint32) mgl32.Vec3 {
	s := 2 / float32(n)
	return mgl32.Vec3{
		s*float32(c[0]) - 1,
		s*float32(c[1]) - 1,
		s*float32(c[2]) - 1,
	}
}

// Sample fills a fresh (n+2)^3 lattice by evaluating sampler once per cell,
// in linear index order. The boundary layer is sampled like any other cell.
func Sample[V any](n uint32, sampler DensitySampler[V]) *Lattice[V] {
	l := New[V](NewPaddedShape(n))
	size := l.Shape.Size()
	for i := uint32(0); i < size; i++ {
		p := Domain(n, l.Shape.Delinearize(i))
		l.Voxels[i] = sampler(p)
	}
	return l
}
