package meshing

import (
	"testing"

	"voxmesh/internal/lattice"
	"voxmesh/internal/voxel"
)

func BenchmarkGreedyQuads_Sphere32(b *testing.B) {
	l := lattice.Sample(32, sphere(0.9))
	buf := NewQuadsBuffer(l.Shape.Size())
	edge := l.Shape.Edge
	hi := [3]uint32{edge - 1, edge - 1, edge - 1}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GreedyQuads[voxel.Bool, voxel.Bool](l, [3]uint32{}, hi, RightHandedYUp, buf)
	}
}

func BenchmarkGenerateMesh_Sphere16(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = GenerateMesh(16, sphere(0.9))
	}
}
