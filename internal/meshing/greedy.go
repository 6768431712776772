package meshing

import (
	"voxmesh/internal/lattice"
	"voxmesh/internal/voxel"
)

// Quad is a merged rectangle of visible faces. Min is the padded lattice
// coordinate of its first voxel; Width runs along the face's U axis and
// Height along its V axis.
type Quad struct {
	Min    [3]uint32
	Width  uint32
	Height uint32
}

// Area is the number of voxel faces the quad covers.
func (q Quad) Area() uint32 {
	return q.Width * q.Height
}

// QuadsBuffer holds merged quads grouped by face, in FaceConfig order.
// Reusable across calls via Reset.
type QuadsBuffer struct {
	Groups [6][]Quad

	visited []bool
}

// NewQuadsBuffer preallocates scratch space for a lattice of the given size.
func NewQuadsBuffer(latticeSize uint32) *QuadsBuffer {
	return &QuadsBuffer{visited: make([]bool, 0, latticeSize)}
}

// Reset drops all quads but keeps allocated storage.
func (b *QuadsBuffer) Reset() {
	for i := range b.Groups {
		b.Groups[i] = b.Groups[i][:0]
	}
}

// NumQuads counts quads across all groups.
func (b *QuadsBuffer) NumQuads() int {
	n := 0
	for _, g := range b.Groups {
		n += len(g)
	}
	return n
}

// GreedyQuads merges every visible face of the voxels in the closed box
// [min, max] into maximal rectangles, appending them to buf by face.
//
// Only the interior [min+1, max-1] emits faces; the outer layer is read as
// neighbors so chunk borders cull correctly without looking at other chunks.
// A face is visible when its voxel is Opaque and the neighbor along the face
// normal is Empty. Faces merge only when their voxels share a MergeValue.
func GreedyQuads[V voxel.MergeVoxel[M], M comparable](l *lattice.Lattice[V], min, max [3]uint32, faces FaceConfig, buf *QuadsBuffer) {
	buf.Reset()
	for k := 0; k < 3; k++ {
		if max[k] < min[k]+2 {
			return
		}
	}
	var lo, hi [3]uint32
	for k := 0; k < 3; k++ {
		lo[k] = min[k] + 1
		hi[k] = max[k] - 1
	}
	for fi, f := range faces {
		buf.Groups[fi] = greedyFace[V, M](l, lo, hi, f, buf, buf.Groups[fi])
	}
}

// greedyFace runs the 2-D merge for one face direction, slice by slice
// along the normal axis.
func greedyFace[V voxel.MergeVoxel[M], M comparable](l *lattice.Lattice[V], lo, hi [3]uint32, f Face, buf *QuadsBuffer, quads []Quad) []Quad {
	strides := l.Shape.Strides()
	n, u, v := f.Axis, f.U, f.V
	uLen := hi[u] - lo[u] + 1
	vLen := hi[v] - lo[v] + 1

	visited := buf.visited[:0]
	for i := uint32(0); i < uLen*vLen; i++ {
		visited = append(visited, false)
	}
	buf.visited = visited

	visible := func(i uint32) bool {
		if l.At(i).Visibility() != voxel.Opaque {
			return false
		}
		var neighbor uint32
		if f.Sign > 0 {
			neighbor = i + strides[n]
		} else {
			neighbor = i - strides[n]
		}
		return l.At(neighbor).Visibility() == voxel.Empty
	}

	for d := lo[n]; d <= hi[n]; d++ {
		clear(visited)
		for vi := uint32(0); vi < vLen; vi++ {
			for ui := uint32(0); ui < uLen; {
				var c [3]uint32
				c[n] = d
				c[u] = lo[u] + ui
				c[v] = lo[v] + vi
				start := l.Shape.Linearize(c)
				row := vi * uLen

				if visited[row+ui] || !visible(start) {
					ui++
					continue
				}
				merge := l.At(start).MergeValue()
				matches := func(mask, i uint32) bool {
					return !visited[mask] && visible(i) && l.At(i).MergeValue() == merge
				}

				width := uint32(1)
				for ui+width < uLen && matches(row+ui+width, start+width*strides[u]) {
					width++
				}

				height := uint32(1)
			grow:
				for vi+height < vLen {
					next := (vi + height) * uLen
					base := start + height*strides[v]
					for k := uint32(0); k < width; k++ {
						if !matches(next+ui+k, base+k*strides[u]) {
							break grow
						}
					}
					height++
				}

				for hv := uint32(0); hv < height; hv++ {
					for wu := uint32(0); wu < width; wu++ {
						visited[(vi+hv)*uLen+ui+wu] = true
					}
				}
				quads = append(quads, Quad{Min: c, Width: width, Height: height})
				ui += width
			}
		}
	}
	return quads
}
