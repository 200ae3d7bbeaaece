package mesh

import (
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestLineLength(t *testing.T) {
	l := Line{
		Start: v3.Vec{X: 0, Y: 0, Z: 0},
		End:   v3.Vec{X: 3, Y: 4, Z: 0},
	}
	if !scalar.EqualWithinAbs(l.Length(), 5, tol) {
		t.Errorf("expected length 5, got %g", l.Length())
	}
}

func TestLinePipe(t *testing.T) {
	l := Line{
		Start: v3.Vec{X: 0, Y: 0, Z: 0},
		End:   v3.Vec{X: 0, Y: 0, Z: 1},
	}
	m := l.Pipe(0.1)
	if m.NumVertices() != 26 || m.NumFaces() != 48 {
		t.Errorf("expected pipe topology 26/48, got %d/%d", m.NumVertices(), m.NumFaces())
	}
}

func TestPolylinePipeMeshes(t *testing.T) {
	pl := Polyline{Points: []v3.Vec{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 0},
		{X: 1, Y: 1, Z: 1},
	}}
	meshes := pl.PipeMeshes(0.05, DefaultPipeSides)
	if len(meshes) != 3 {
		t.Fatalf("expected one pipe per segment (3), got %d", len(meshes))
	}
	for i, m := range meshes {
		if m.NumFaces() != 48 {
			t.Errorf("segment %d: expected 48 faces, got %d", i, m.NumFaces())
		}
	}
}

func TestPolylinePipeMeshesTooShort(t *testing.T) {
	if got := (Polyline{}).PipeMeshes(0.05, DefaultPipeSides); got != nil {
		t.Errorf("empty polyline should yield nil, got %d meshes", len(got))
	}
	one := Polyline{Points: []v3.Vec{{X: 1, Y: 2, Z: 3}}}
	if got := one.PipeMeshes(0.05, DefaultPipeSides); got != nil {
		t.Errorf("single-point polyline should yield nil, got %d meshes", len(got))
	}
}

func TestEdgesAsLines(t *testing.T) {
	m := New()
	addTriangle(t, m)
	lines := m.EdgesAsLines()
	if len(lines) != 3 {
		t.Fatalf("triangle should have 3 edge lines, got %d", len(lines))
	}
	total := 0.0
	for _, l := range lines {
		total += l.Length()
	}
	// Unit right triangle perimeter: 1 + 1 + sqrt(2).
	want := 2 + 1.4142135623730951
	if !scalar.EqualWithinAbs(total, want, tol) {
		t.Errorf("expected perimeter %g, got %g", want, total)
	}
}

func TestEdgesAsLinesSharedEdge(t *testing.T) {
	m := New()
	v0 := m.AddVertex(v3.Vec{X: 0, Y: 0, Z: 0})
	v1 := m.AddVertex(v3.Vec{X: 1, Y: 0, Z: 0})
	v2 := m.AddVertex(v3.Vec{X: 0, Y: 1, Z: 0})
	v3k := m.AddVertex(v3.Vec{X: 1, Y: 1, Z: 0})
	m.AddFace([]VertexKey{v0, v1, v2})
	m.AddFace([]VertexKey{v1, v3k, v2})
	lines := m.EdgesAsLines()
	if len(lines) != 5 {
		t.Errorf("two triangles sharing an edge have 5 edges, got %d", len(lines))
	}
}

func TestEdgesAsPipes(t *testing.T) {
	m := FromPolygons(cubeQuads(), DefaultPrecision)
	pipes := m.EdgesAsPipes(DefaultPipeRadius, DefaultPipeSides)
	if len(pipes) != 12 {
		t.Fatalf("cube has 12 edges, got %d pipes", len(pipes))
	}
	for i, p := range pipes {
		if p.NumVertices() != 26 {
			t.Errorf("pipe %d: expected 26 vertices, got %d", i, p.NumVertices())
		}
	}
}

func TestEdgesAsPipesEmptyMesh(t *testing.T) {
	if got := New().EdgesAsPipes(DefaultPipeRadius, DefaultPipeSides); len(got) != 0 {
		t.Errorf("empty mesh should yield no pipes, got %d", len(got))
	}
}
