package mesh

import (
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// DefaultPipeRadius is the tube radius used by Line and Polyline pipe
// helpers when the caller passes radius <= 0.
const DefaultPipeRadius = 0.05

// DefaultPipeSides is the nominal side count accepted by the pipe
// helpers. The cross-section is produced from a fixed 12-sided
// template, so the value is decorative; it exists to keep call sites
// stable if the template is ever parameterized.
const DefaultPipeSides = 8

// Line is a 3D segment.
type Line struct {
	Start v3.Vec `json:"start"`
	End   v3.Vec `json:"end"`
}

// Length returns the segment length.
func (l Line) Length() float64 {
	return l.End.Sub(l.Start).Length()
}

// Pipe returns the cylindrical tube mesh for this segment, giving a
// zero-thickness line a renderable volume.
func (l Line) Pipe(radius float64) *Mesh {
	if radius <= 0 {
		radius = DefaultPipeRadius
	}
	return CreatePipe(l.Start, l.End, radius)
}

// Polyline is an ordered chain of 3D points.
type Polyline struct {
	Points []v3.Vec `json:"points"`
}

// PipeMeshes returns one tube mesh per polyline segment. Fewer than 2
// points yields no meshes. The sides parameter is accepted for call
// compatibility but the tubes are always 12-sided (see DefaultPipeSides).
func (pl Polyline) PipeMeshes(radius float64, sides int) []*Mesh {
	_ = sides
	if len(pl.Points) < 2 {
		return nil
	}
	if radius <= 0 {
		radius = DefaultPipeRadius
	}
	meshes := make([]*Mesh, 0, len(pl.Points)-1)
	for i := 0; i < len(pl.Points)-1; i++ {
		meshes = append(meshes, CreatePipe(pl.Points[i], pl.Points[i+1], radius))
	}
	return meshes
}

// EdgesAsLines extracts every unique undirected edge of the mesh as a
// Line. Edges are deduplicated by their normalized (min,max) key, so
// an edge shared by two faces appears once.
func (m *Mesh) EdgesAsLines() []Line {
	var lines []Line
	m.walkUniqueEdges(func(a, b v3.Vec) {
		lines = append(lines, Line{Start: a, End: b})
	})
	return lines
}

// EdgesAsPipes extracts every unique undirected edge as a tube mesh
// for visualization. The sides parameter is decorative, as with
// Polyline.PipeMeshes.
func (m *Mesh) EdgesAsPipes(radius float64, sides int) []*Mesh {
	_ = sides
	if radius <= 0 {
		radius = DefaultPipeRadius
	}
	var pipes []*Mesh
	m.walkUniqueEdges(func(a, b v3.Vec) {
		pipes = append(pipes, CreatePipe(a, b, radius))
	})
	return pipes
}

// walkUniqueEdges visits each undirected face edge once, in face
// iteration order, skipping edges whose endpoint positions are missing.
func (m *Mesh) walkUniqueEdges(visit func(a, b v3.Vec)) {
	seen := make(map[[2]VertexKey]struct{})
	for _, loop := range m.Face {
		n := len(loop)
		for i := 0; i < n; i++ {
			u, v := loop[i], loop[(i+1)%n]
			e := [2]VertexKey{u, v}
			if v < u {
				e = [2]VertexKey{v, u}
			}
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			pa, oka := m.VertexPosition(u)
			pb, okb := m.VertexPosition(v)
			if oka && okb {
				visit(pa, pb)
			}
		}
	}
}
