package meshing

import (
	"errors"
	"fmt"
)

// ErrInconsistentBuffers is returned by MeshBuffers.Validate.
var ErrInconsistentBuffers = errors.New("meshing: inconsistent mesh buffers")

// VertexStride is the number of float32 per vertex in Interleaved output
// (pos.xyz + normal.xyz + uv).
const VertexStride = 8

// MeshBuffers are flat, parallel triangle-list buffers. Every quad owns four
// fresh vertices and six indices; no vertex is shared between quads.
type MeshBuffers struct {
	Positions [][3]float32
	Normals   [][3]float32
	UVs       [][2]float32
	Indices   []uint32
}

// NumQuads is the number of quads the buffers were assembled from.
func (m MeshBuffers) NumQuads() int {
	return len(m.Indices) / 6
}

// NumVertices is the number of emitted vertices.
func (m MeshBuffers) NumVertices() int {
	return len(m.Positions)
}

// Validate checks the buffer length invariants and index bounds.
func (m MeshBuffers) Validate() error {
	quads := len(m.Positions) / 4
	if len(m.Positions)%4 != 0 {
		return fmt.Errorf("%w: %d positions is not a multiple of 4", ErrInconsistentBuffers, len(m.Positions))
	}
	if len(m.Normals) != len(m.Positions) || len(m.UVs) != len(m.Positions) {
		return fmt.Errorf("%w: %d positions, %d normals, %d uvs", ErrInconsistentBuffers, len(m.Positions), len(m.Normals), len(m.UVs))
	}
	if len(m.Indices) != 6*quads {
		return fmt.Errorf("%w: %d indices for %d quads", ErrInconsistentBuffers, len(m.Indices), quads)
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Positions) {
			return fmt.Errorf("%w: index %d at %d exceeds %d vertices", ErrInconsistentBuffers, idx, i, len(m.Positions))
		}
		if int(idx)/4 != i/6 {
			return fmt.Errorf("%w: index %d at %d references another quad", ErrInconsistentBuffers, idx, i)
		}
	}
	return nil
}

// Interleaved packs the buffers into a single pos+normal+uv float slice in
// vertex order, ready for a GL array buffer.
func (m MeshBuffers) Interleaved() []float32 {
	out := make([]float32, 0, len(m.Positions)*VertexStride)
	for i := range m.Positions {
		p, n, uv := m.Positions[i], m.Normals[i], m.UVs[i]
		out = append(out, p[0], p[1], p[2], n[0], n[1], n[2], uv[0], uv[1])
	}
	return out
}

// Assemble converts grouped quads into MeshBuffers, walking groups in face
// order and quads in emission order. voxelSize scales positions.
func Assemble(buf *QuadsBuffer, faces FaceConfig, voxelSize float32) MeshBuffers {
	numQuads := buf.NumQuads()
	m := MeshBuffers{
		Positions: make([][3]float32, 0, numQuads*4),
		Normals:   make([][3]float32, 0, numQuads*4),
		UVs:       make([][2]float32, numQuads*4),
		Indices:   make([]uint32, 0, numQuads*6),
	}
	for fi, group := range buf.Groups {
		face := faces[fi]
		for _, q := range group {
			idx := face.QuadIndices(uint32(len(m.Positions)))
			pos := face.QuadPositions(q, voxelSize)
			nrm := face.QuadNormals()
			m.Indices = append(m.Indices, idx[:]...)
			m.Positions = append(m.Positions, pos[:]...)
			m.Normals = append(m.Normals, nrm[:]...)
		}
	}
	return m
}

// Append adds o to m with its positions translated by offset, rebasing o's
// indices past m's existing vertices.
func (m *MeshBuffers) Append(o MeshBuffers, offset [3]float32) {
	base := uint32(len(m.Positions))
	for _, p := range o.Positions {
		m.Positions = append(m.Positions, [3]float32{p[0] + offset[0], p[1] + offset[1], p[2] + offset[2]})
	}
	m.Normals = append(m.Normals, o.Normals...)
	m.UVs = append(m.UVs, o.UVs...)
	for _, idx := range o.Indices {
		m.Indices = append(m.Indices, base+idx)
	}
}
