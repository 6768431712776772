package meshing

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestRightHandedYUpOrder(t *testing.T) {
	var names []string
	for _, f := range RightHandedYUp {
		names = append(names, f.String())
	}
	assert.Equal(t, []string{"-X", "-Y", "-Z", "+X", "+Y", "+Z"}, names)
}

func TestFaceNormalsAreUnitAxes(t *testing.T) {
	for _, f := range RightHandedYUp {
		assert.InDelta(t, 1, f.Normal.Len(), 1e-6, "face %s", f)
		assert.Equal(t, float32(f.Sign), f.Normal[f.Axis], "face %s", f)
		assert.NotEqual(t, f.Axis, f.U)
		assert.NotEqual(t, f.Axis, f.V)
		assert.NotEqual(t, f.U, f.V)
	}
}

func TestQuadCornersOffsetPositiveFaces(t *testing.T) {
	q := Quad{Min: [3]uint32{3, 4, 5}, Width: 2, Height: 3}

	top := RightHandedYUp[4] // +Y: u=Z, v=X
	c := top.QuadCorners(q)
	assert.Equal(t, mgl32.Vec3{3, 5, 5}, c[0])
	assert.Equal(t, mgl32.Vec3{3, 5, 7}, c[1])
	assert.Equal(t, mgl32.Vec3{6, 5, 5}, c[2])
	assert.Equal(t, mgl32.Vec3{6, 5, 7}, c[3])

	bottom := RightHandedYUp[1] // -Y sits on the voxel's lower plane
	assert.Equal(t, mgl32.Vec3{3, 4, 5}, bottom.QuadCorners(q)[0])
}

func TestQuadIndicesWindOutward(t *testing.T) {
	q := Quad{Min: [3]uint32{1, 1, 1}, Width: 2, Height: 1}
	for _, f := range RightHandedYUp {
		corners := f.QuadCorners(q)
		idx := f.QuadIndices(0)
		for tri := 0; tri < 2; tri++ {
			a, b, c := corners[idx[tri*3]], corners[idx[tri*3+1]], corners[idx[tri*3+2]]
			n := b.Sub(a).Cross(c.Sub(a))
			assert.Greater(t, n.Dot(f.Normal), float32(0), "face %s triangle %d faces inward", f, tri)
		}
	}
}

func TestQuadPositionsScale(t *testing.T) {
	q := Quad{Min: [3]uint32{1, 2, 3}, Width: 1, Height: 1}
	pos := RightHandedYUp[0].QuadPositions(q, 0.5)
	assert.Equal(t, [3]float32{0.5, 1, 1.5}, pos[0])
}
