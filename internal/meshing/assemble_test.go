package meshing

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voxmesh/internal/lattice"
	"voxmesh/internal/voxel"
)

func sphere(radius float32) lattice.DensitySampler[voxel.Bool] {
	return func(p mgl32.Vec3) voxel.Bool {
		return voxel.Bool(p.Len() < radius)
	}
}

func TestAssembleBufferConsistency(t *testing.T) {
	l := randomLattice(8, 7, 0.5)
	buf := meshBool(l)
	m := Assemble(buf, RightHandedYUp, VoxelSize)

	q := buf.NumQuads()
	require.Positive(t, q)
	assert.Equal(t, q, m.NumQuads())
	assert.Len(t, m.Indices, 6*q)
	assert.Len(t, m.Positions, 4*q)
	assert.Len(t, m.Normals, 4*q)
	assert.Len(t, m.UVs, 4*q)
	require.NoError(t, m.Validate())

	for _, uv := range m.UVs {
		assert.Equal(t, [2]float32{}, uv)
	}
}

func TestAssembleIndicesAreMonotonicPerQuad(t *testing.T) {
	l := lattice.New[voxel.Bool](lattice.NewPaddedShape(4))
	l.Put(1, 1, 1, voxel.FullVoxel)
	l.Put(3, 3, 3, voxel.FullVoxel)
	m := Assemble(meshBool(l), RightHandedYUp, VoxelSize)
	require.Equal(t, 12, m.NumQuads())
	for qi := 0; qi < m.NumQuads(); qi++ {
		base := uint32(qi * 4)
		for _, idx := range m.Indices[qi*6 : qi*6+6] {
			assert.GreaterOrEqual(t, idx, base)
			assert.Less(t, idx, base+4)
		}
	}
}

func TestAssembleNormalsFollowGroupOrder(t *testing.T) {
	l := lattice.New[voxel.Bool](lattice.NewPaddedShape(3))
	l.Put(2, 2, 2, voxel.FullVoxel)
	m := Assemble(meshBool(l), RightHandedYUp, VoxelSize)
	require.Equal(t, 6, m.NumQuads())
	for fi, f := range RightHandedYUp {
		for v := 0; v < 4; v++ {
			assert.Equal(t, [3]float32(f.Normal), m.Normals[fi*4+v])
		}
	}
}

func TestAssembledTrianglesFaceOutward(t *testing.T) {
	m := GenerateMesh(8, sphere(0.7))
	require.NoError(t, m.Validate())
	for i := 0; i < len(m.Indices); i += 3 {
		a := mgl32.Vec3(m.Positions[m.Indices[i]])
		b := mgl32.Vec3(m.Positions[m.Indices[i+1]])
		c := mgl32.Vec3(m.Positions[m.Indices[i+2]])
		n := mgl32.Vec3(m.Normals[m.Indices[i]])
		assert.Greater(t, b.Sub(a).Cross(c.Sub(a)).Dot(n), float32(0), "triangle %d", i/3)
	}
}

func TestValidateDetectsBrokenBuffers(t *testing.T) {
	m := GenerateMesh(4, sphere(0.5))
	require.NoError(t, m.Validate())

	broken := m
	broken.Indices = append([]uint32(nil), m.Indices...)
	broken.Indices[0] = uint32(len(m.Positions))
	assert.True(t, errors.Is(broken.Validate(), ErrInconsistentBuffers))

	cross := m
	cross.Indices = append([]uint32(nil), m.Indices...)
	cross.Indices[0] = 4
	assert.ErrorIs(t, cross.Validate(), ErrInconsistentBuffers)

	short := m
	short.Normals = m.Normals[:len(m.Normals)-1]
	assert.ErrorIs(t, short.Validate(), ErrInconsistentBuffers)
}

func TestGenerateMeshDeterministic(t *testing.T) {
	a := GenerateMesh(12, sphere(0.9))
	b := GenerateMesh(12, sphere(0.9))
	assert.Equal(t, a, b)
}

func TestGenerateMeshEnclosedChunk(t *testing.T) {
	full := func(mgl32.Vec3) voxel.Bool { return voxel.FullVoxel }
	empty := func(mgl32.Vec3) voxel.Bool { return voxel.EmptyVoxel }
	assert.Zero(t, GenerateMesh(6, full).NumQuads())
	assert.Zero(t, GenerateMesh(6, empty).NumQuads())
}

func TestGenerateMeshSingleVoxel(t *testing.T) {
	// With n=2 only the origin maps to (0,0,0); a tiny sphere selects it alone.
	m := GenerateMesh(2, sphere(0.1))
	require.Equal(t, 6, m.NumQuads())
	require.NoError(t, m.Validate())
}

func TestGenerateMeshPanicsOnZeroEdge(t *testing.T) {
	assert.Panics(t, func() { GenerateMesh(0, sphere(1)) })
}

func TestInterleavedLayout(t *testing.T) {
	m := GenerateMesh(2, sphere(0.1))
	data := m.Interleaved()
	require.Len(t, data, m.NumVertices()*VertexStride)
	assert.Equal(t, m.Positions[5][1], data[5*VertexStride+1])
	assert.Equal(t, m.Normals[5][2], data[5*VertexStride+5])
}

func TestAppendRebasesIndices(t *testing.T) {
	a := GenerateMesh(2, sphere(0.1))
	b := GenerateMesh(4, sphere(0.6))

	var merged MeshBuffers
	merged.Append(a, [3]float32{})
	merged.Append(b, [3]float32{4, 0, 0})
	require.NoError(t, merged.Validate())

	assert.Equal(t, a.NumQuads()+b.NumQuads(), merged.NumQuads())
	n := a.NumVertices()
	assert.Equal(t, b.Positions[0][0]+4, merged.Positions[n][0])
	assert.Equal(t, b.Positions[0][1], merged.Positions[n][1])
	assert.Equal(t, b.Indices[0]+uint32(n), merged.Indices[len(a.Indices)])
}
