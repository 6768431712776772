package meshing

import (
	"time"

	"go.uber.org/zap"

	"voxmesh/internal/lattice"
	"voxmesh/internal/logger"
	"voxmesh/internal/profiling"
	"voxmesh/internal/voxel"
)

// VoxelSize is the world-space edge of one voxel.
const VoxelSize float32 = 1.0

// GenerateMesh samples an (n+2)^3 lattice from sampler, greedy-merges its
// visible faces and assembles the result. n must be positive.
func GenerateMesh(n uint32, sampler lattice.DensitySampler[voxel.Bool]) MeshBuffers {
	return Generate[voxel.Bool, voxel.Bool](n, sampler, RightHandedYUp)
}

// Generate is GenerateMesh for any mergeable voxel type and face table.
func Generate[V voxel.MergeVoxel[M], M comparable](n uint32, sampler lattice.DensitySampler[V], faces FaceConfig) MeshBuffers {
	if n == 0 {
		panic("meshing: chunk edge length must be positive")
	}
	defer profiling.Track("meshing.Generate")()
	start := time.Now()

	var l *lattice.Lattice[V]
	func() {
		defer profiling.Track("meshing.Sample")()
		l = lattice.Sample(n, sampler)
	}()

	edge := l.Shape.Edge
	buf := NewQuadsBuffer(l.Shape.Size())
	func() {
		defer profiling.Track("meshing.GreedyQuads")()
		GreedyQuads[V, M](l, [3]uint32{}, [3]uint32{edge - 1, edge - 1, edge - 1}, faces, buf)
	}()

	var m MeshBuffers
	func() {
		defer profiling.Track("meshing.Assemble")()
		m = Assemble(buf, faces, VoxelSize)
	}()

	logger.Debug("mesh generated",
		zap.Uint32("edge", n),
		zap.Int("quads", m.NumQuads()),
		zap.Int("vertices", m.NumVertices()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return m
}
