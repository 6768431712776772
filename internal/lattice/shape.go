// Package lattice holds the padded voxel grid sampled for one meshing call.
package lattice

import "fmt"

// Padding is the number of boundary layers added on each side of a chunk.
const Padding = 1

// Shape is a cubic lattice of Edge^3 cells, linearized x-fastest.
type Shape struct {
	Edge uint32
}

// NewPaddedShape returns the shape of a chunk with logical edge n plus
// one padding layer on every side.
func NewPaddedShape(n uint32) Shape {
	return Shape{Edge: n + 2*Padding}
}

// Size is the number of cells in the lattice.
func (s Shape) Size() uint32 {
	return s.Edge * s.Edge * s.Edge
}

// Strides returns the linear index step for +1 along x, y and z.
func (s Shape) Strides() [3]uint32 {
	return [3]uint32{1, s.Edge, s.Edge * s.Edge}
}

// Linearize maps a 3-D coordinate to its linear index.
func (s Shape) Linearize(c [3]uint32) uint32 {
	if c[0] >= s.Edge || c[1] >= s.Edge || c[2] >= s.Edge {
		panic(fmt.Sprintf("lattice: coordinate %v out of range for edge %d", c, s.Edge))
	}
	return c[0] + s.Edge*(c[1]+s.Edge*c[2])
}

// Delinearize maps a linear index back to its 3-D coordinate.
func (s Shape) Delinearize(i uint32) [3]uint32 {
	if i >= s.Size() {
		panic(fmt.Sprintf("lattice: index %d out of range for size %d", i, s.Size()))
	}
	x := i % s.Edge
	i /= s.Edge
	y := i % s.Edge
	z := i / s.Edge
	return [3]uint32{x, y, z}
}
