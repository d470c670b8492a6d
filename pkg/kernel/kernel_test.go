package kernel

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestMeshCounts(t *testing.T) {
	m := &Mesh{
		Vertices: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Normals:  []float32{0, 0, 1, 0, 0, 1, 0, 0, 1},
		Indices:  []uint32{0, 1, 2},
	}
	if got := m.VertexCount(); got != 3 {
		t.Errorf("VertexCount() = %d, want 3", got)
	}
	if got := m.TriangleCount(); got != 1 {
		t.Errorf("TriangleCount() = %d, want 1", got)
	}
	if m.IsEmpty() {
		t.Error("IsEmpty() = true for a populated mesh")
	}
}

func TestMeshEmpty(t *testing.T) {
	m := &Mesh{}
	if !m.IsEmpty() {
		t.Error("IsEmpty() = false for an empty mesh")
	}
	if m.VertexCount() != 0 || m.TriangleCount() != 0 {
		t.Errorf("empty mesh counts = %d vertices, %d triangles",
			m.VertexCount(), m.TriangleCount())
	}
}

func TestAxisHelpers(t *testing.T) {
	z := ZAxis()
	if z.Start != (r3.Vec{}) || z.End != (r3.Vec{Z: 1}) {
		t.Errorf("ZAxis() = %+v", z)
	}
	x := XAxis()
	if x.Start != (r3.Vec{}) || x.End != (r3.Vec{X: 1}) {
		t.Errorf("XAxis() = %+v", x)
	}
}
