// Package stl writes triangle meshes as binary STL files.
package stl

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chewxy/math32"

	"github.com/printforge/slewgen/pkg/kernel"
)

// stlHeader defines the STL file header.
type stlHeader struct {
	_     [80]uint8 // Header
	Count uint32    // Number of triangles
}

// stlTriangle defines the triangle data within an STL file.
// Size on disk is 50 bytes.
type stlTriangle struct {
	Normal  [3]float32
	Vertex1 [3]float32
	Vertex2 [3]float32
	Vertex3 [3]float32
	_       uint16 // Attribute byte count
}

// Save writes all meshes into a single binary STL file at path.
func Save(path string, meshes []*kernel.Mesh) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	if err := Write(w, meshes); err != nil {
		return err
	}
	return w.Flush()
}

// Write writes all meshes to w in binary STL format: an 80-byte
// header, a uint32 triangle count, then 50 bytes per triangle,
// little-endian throughout.
func Write(w io.Writer, meshes []*kernel.Mesh) error {
	total := 0
	for _, m := range meshes {
		total += m.TriangleCount()
	}
	if total == 0 {
		return errors.New("stl: no triangles to write")
	}

	header := stlHeader{Count: uint32(total)}
	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return err
	}

	for _, m := range meshes {
		if err := writeMesh(w, m); err != nil {
			return fmt.Errorf("stl: mesh %s: %w", m.PartName, err)
		}
	}
	return nil
}

func writeMesh(w io.Writer, m *kernel.Mesh) error {
	var d stlTriangle
	for t := 0; t < m.TriangleCount(); t++ {
		i0 := m.Indices[t*3]
		i1 := m.Indices[t*3+1]
		i2 := m.Indices[t*3+2]

		d.Vertex1 = vertex(m, i0)
		d.Vertex2 = vertex(m, i1)
		d.Vertex3 = vertex(m, i2)
		d.Normal = triangleNormal(m, i0, d.Vertex1, d.Vertex2, d.Vertex3)

		if err := binary.Write(w, binary.LittleEndian, &d); err != nil {
			return err
		}
	}
	return nil
}

func vertex(m *kernel.Mesh, i uint32) [3]float32 {
	return [3]float32{m.Vertices[i*3], m.Vertices[i*3+1], m.Vertices[i*3+2]}
}

// triangleNormal prefers the mesh's stored per-vertex normal,
// renormalized; a missing or degenerate normal is recomputed from the
// vertex winding.
func triangleNormal(m *kernel.Mesh, i uint32, v1, v2, v3 [3]float32) [3]float32 {
	if int(i*3+2) < len(m.Normals) {
		n := [3]float32{m.Normals[i*3], m.Normals[i*3+1], m.Normals[i*3+2]}
		if unit(&n) {
			return n
		}
	}
	e1 := [3]float32{v2[0] - v1[0], v2[1] - v1[1], v2[2] - v1[2]}
	e2 := [3]float32{v3[0] - v1[0], v3[1] - v1[1], v3[2] - v1[2]}
	n := [3]float32{
		e1[1]*e2[2] - e1[2]*e2[1],
		e1[2]*e2[0] - e1[0]*e2[2],
		e1[0]*e2[1] - e1[1]*e2[0],
	}
	unit(&n)
	return n
}

// unit normalizes n in place, reporting false for a zero vector.
func unit(n *[3]float32) bool {
	l := math32.Sqrt(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])
	if l == 0 || math32.IsNaN(l) || math32.IsInf(l, 0) {
		return false
	}
	n[0] /= l
	n[1] /= l
	n[2] /= l
	return true
}
