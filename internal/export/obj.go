// Package export writes MeshBuffers to files for inspection outside the viewer.
package export

import (
	"bufio"
	"fmt"
	"io"

	"voxmesh/internal/meshing"
)

// WriteOBJ writes m as a Wavefront OBJ triangle list. Every vertex carries
// its own normal and UV, so face elements use the same index for all three.
func WriteOBJ(w io.Writer, m meshing.MeshBuffers) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("export obj: %w", err)
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# voxmesh: %d quads, %d vertices\n", m.NumQuads(), m.NumVertices())
	for _, p := range m.Positions {
		fmt.Fprintf(bw, "v %g %g %g\n", p[0], p[1], p[2])
	}
	for _, n := range m.Normals {
		fmt.Fprintf(bw, "vn %g %g %g\n", n[0], n[1], n[2])
	}
	for _, uv := range m.UVs {
		fmt.Fprintf(bw, "vt %g %g\n", uv[0], uv[1])
	}
	for i := 0; i < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i]+1, m.Indices[i+1]+1, m.Indices[i+2]+1
		fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("export obj: %w", err)
	}
	return nil
}
