package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"voxmesh/internal/meshing"
)

var (
	background = color.RGBA{R: 18, G: 18, B: 24, A: 255}
	caption    = color.RGBA{R: 240, G: 240, B: 240, A: 255}
)

// RenderPreview rasterizes the upward-facing quads of m from above, one pixel
// per voxel column shaded by height, then scales the result to size x size
// and captions it with the quad count.
func RenderPreview(m meshing.MeshBuffers, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(background), image.Point{}, xdraw.Src)

	if src := heightmap(m); src != nil {
		xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	}

	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(caption),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(6, 16),
	}
	d.DrawString(fmt.Sprintf("%d quads / %d verts", m.NumQuads(), m.NumVertices()))
	return dst
}

// heightmap returns nil when m has no upward faces.
func heightmap(m meshing.MeshBuffers) *image.RGBA {
	type rect struct {
		x0, z0, x1, z1 int
		y              float32
	}
	var tops []rect
	minX, minZ := math.MaxInt, math.MaxInt
	maxX, maxZ := math.MinInt, math.MinInt
	minY, maxY := float32(math.MaxFloat32), float32(-math.MaxFloat32)

	for q := 0; q < m.NumQuads(); q++ {
		base := q * 4
		if m.Normals[base][1] <= 0 {
			continue
		}
		r := rect{x0: math.MaxInt, z0: math.MaxInt, x1: math.MinInt, z1: math.MinInt, y: m.Positions[base][1]}
		for v := base; v < base+4; v++ {
			p := m.Positions[v]
			r.x0 = min(r.x0, int(math.Floor(float64(p[0]))))
			r.z0 = min(r.z0, int(math.Floor(float64(p[2]))))
			r.x1 = max(r.x1, int(math.Ceil(float64(p[0]))))
			r.z1 = max(r.z1, int(math.Ceil(float64(p[2]))))
		}
		minX, minZ = min(minX, r.x0), min(minZ, r.z0)
		maxX, maxZ = max(maxX, r.x1), max(maxZ, r.z1)
		minY, maxY = min(minY, r.y), max(maxY, r.y)
		tops = append(tops, r)
	}
	if len(tops) == 0 {
		return nil
	}

	img := image.NewRGBA(image.Rect(0, 0, maxX-minX, maxZ-minZ))
	heights := make([]float32, img.Rect.Dx()*img.Rect.Dy())
	for i := range heights {
		heights[i] = float32(-math.MaxFloat32)
	}
	span := maxY - minY
	for _, r := range tops {
		shade := uint8(255)
		if span > 0 {
			shade = uint8(64 + 191*(r.y-minY)/span)
		}
		for z := r.z0; z < r.z1; z++ {
			for x := r.x0; x < r.x1; x++ {
				px, pz := x-minX, z-minZ
				i := pz*img.Rect.Dx() + px
				if r.y < heights[i] {
					continue
				}
				heights[i] = r.y
				img.SetRGBA(px, pz, color.RGBA{R: shade / 2, G: shade, B: shade / 3, A: 255})
			}
		}
	}
	return img
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("export png: %w", err)
	}
	return nil
}
