package render

import (
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/chazu/meshkit/pkg/mesh"
)

const tol = 1e-6

func cubeMesh() *mesh.Mesh {
	quads := [][]v3.Vec{
		{{X: 0, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 1, Y: 0, Z: 0}},
		{{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1}},
		{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 1}, {X: 0, Y: 0, Z: 1}},
		{{X: 0, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 0}},
		{{X: 0, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 1}, {X: 0, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 0}},
		{{X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 1}, {X: 1, Y: 0, Z: 1}},
	}
	return mesh.FromPolygons(quads, mesh.DefaultPrecision)
}

func TestFromMeshCube(t *testing.T) {
	rm := FromMesh(cubeMesh(), mesh.WeightArea)
	if rm.VertexCount() != 8 {
		t.Errorf("expected 8 vertices, got %d", rm.VertexCount())
	}
	// 6 quads fanned into 2 triangles each.
	if rm.TriangleCount() != 12 {
		t.Errorf("expected 12 triangles, got %d", rm.TriangleCount())
	}
	if len(rm.Normals) != len(rm.Vertices) {
		t.Errorf("normal array length %d does not match vertex array length %d",
			len(rm.Normals), len(rm.Vertices))
	}
	for _, idx := range rm.Indices {
		if int(idx) >= rm.VertexCount() {
			t.Fatalf("index %d out of range for %d vertices", idx, rm.VertexCount())
		}
	}
}

func TestFromMeshNormalsUnitLength(t *testing.T) {
	rm := FromMesh(cubeMesh(), mesh.WeightArea)
	for i := 0; i < rm.VertexCount(); i++ {
		x := float64(rm.Normals[3*i])
		y := float64(rm.Normals[3*i+1])
		z := float64(rm.Normals[3*i+2])
		length := x*x + y*y + z*z
		if !scalar.EqualWithinAbs(length, 1, tol) {
			t.Errorf("vertex %d normal has squared length %g", i, length)
		}
	}
}

func TestFromMeshDeterministic(t *testing.T) {
	src := cubeMesh()
	a := FromMesh(src, mesh.WeightAngle)
	b := FromMesh(src, mesh.WeightAngle)
	if len(a.Vertices) != len(b.Vertices) || len(a.Indices) != len(b.Indices) {
		t.Fatalf("output sizes differ between runs")
	}
	for i := range a.Vertices {
		if a.Vertices[i] != b.Vertices[i] {
			t.Fatalf("vertex array differs at %d", i)
		}
	}
	for i := range a.Indices {
		if a.Indices[i] != b.Indices[i] {
			t.Fatalf("index array differs at %d", i)
		}
	}
}

func TestFromMeshTriangle(t *testing.T) {
	m := mesh.New()
	v0 := m.AddVertex(v3.Vec{X: 0, Y: 0, Z: 0})
	v1 := m.AddVertex(v3.Vec{X: 1, Y: 0, Z: 0})
	v2 := m.AddVertex(v3.Vec{X: 0, Y: 1, Z: 0})
	m.AddFace([]mesh.VertexKey{v0, v1, v2})

	rm := FromMesh(m, mesh.WeightUniform)
	if rm.VertexCount() != 3 || rm.TriangleCount() != 1 {
		t.Fatalf("expected 3 vertices and 1 triangle, got %d/%d",
			rm.VertexCount(), rm.TriangleCount())
	}
	// A flat triangle's smooth normals all point along +Z.
	for i := 0; i < 3; i++ {
		if !scalar.EqualWithinAbs(float64(rm.Normals[3*i+2]), 1, tol) {
			t.Errorf("vertex %d normal Z = %g, want 1", i, rm.Normals[3*i+2])
		}
	}
}

func TestFromMeshEmpty(t *testing.T) {
	rm := FromMesh(mesh.New(), mesh.WeightArea)
	if !rm.IsEmpty() {
		t.Errorf("empty source should give empty render mesh")
	}
	if rm.Vertices == nil || rm.Indices == nil {
		t.Errorf("arrays should be empty, not nil")
	}
	if FromMesh(nil, mesh.WeightArea).IsEmpty() != true {
		t.Errorf("nil source should give empty render mesh")
	}
}
