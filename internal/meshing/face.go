package meshing

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Axis indices into a [3] coordinate.
const (
	AxisX = 0
	AxisY = 1
	AxisZ = 2
)

// Face describes one of the six axis-aligned face directions: the normal axis
// and sign, and the (u, v) axes a quad extends along.
type Face struct {
	Sign   int
	Axis   int
	U      int
	V      int
	Normal mgl32.Vec3

	// counterClockwise is true when the triangle (min, min+u, min+v) already
	// winds counter-clockwise seen from outside the face.
	counterClockwise bool
}

// NewFace builds a face for the given normal sign and axis permutation (n, u, v).
func NewFace(sign int, n, u, v int) Face {
	var normal mgl32.Vec3
	normal[n] = float32(sign)
	var uu, vv mgl32.Vec3
	uu[u] = 1
	vv[v] = 1
	return Face{
		Sign:             sign,
		Axis:             n,
		U:                u,
		V:                v,
		Normal:           normal,
		counterClockwise: uu.Cross(vv).Dot(normal) > 0,
	}
}

func (f Face) String() string {
	s := "+"
	if f.Sign < 0 {
		s = "-"
	}
	return s + string("XYZ"[f.Axis])
}

// QuadCorners returns the four corners of q in voxel units, ordered
// min, min+u, min+v, min+u+v. Positive faces sit on the far side of the voxel.
func (f Face) QuadCorners(q Quad) [4]mgl32.Vec3 {
	origin := mgl32.Vec3{float32(q.Min[0]), float32(q.Min[1]), float32(q.Min[2])}
	if f.Sign > 0 {
		origin[f.Axis]++
	}
	var du, dv mgl32.Vec3
	du[f.U] = float32(q.Width)
	dv[f.V] = float32(q.Height)
	return [4]mgl32.Vec3{
		origin,
		origin.Add(du),
		origin.Add(dv),
		origin.Add(du).Add(dv),
	}
}

// QuadPositions returns the quad corners scaled to world units.
func (f Face) QuadPositions(q Quad, voxelSize float32) [4][3]float32 {
	var out [4][3]float32
	for i, c := range f.QuadCorners(q) {
		out[i] = c.Mul(voxelSize)
	}
	return out
}

// QuadNormals returns the face normal once per quad vertex.
func (f Face) QuadNormals() [4][3]float32 {
	n := [3]float32(f.Normal)
	return [4][3]float32{n, n, n, n}
}

// QuadIndices returns two outward-facing triangles over the vertices
// start..start+3 as laid out by QuadCorners.
func (f Face) QuadIndices(start uint32) [6]uint32 {
	if f.counterClockwise {
		return [6]uint32{start, start + 1, start + 2, start + 1, start + 3, start + 2}
	}
	return [6]uint32{start, start + 2, start + 1, start + 1, start + 2, start + 3}
}

// FaceConfig is the immutable set of six faces handed to the mesher.
// Quads are grouped by the position of their face in this table.
type FaceConfig [6]Face

// RightHandedYUp orders faces -X, -Y, -Z, +X, +Y, +Z with counter-clockwise
// front faces, so default back-face culling keeps every outward face.
var RightHandedYUp = FaceConfig{
	NewFace(-1, AxisX, AxisZ, AxisY),
	NewFace(-1, AxisY, AxisZ, AxisX),
	NewFace(-1, AxisZ, AxisX, AxisY),
	NewFace(+1, AxisX, AxisZ, AxisY),
	NewFace(+1, AxisY, AxisZ, AxisX),
	NewFace(+1, AxisZ, AxisX, AxisY),
}
