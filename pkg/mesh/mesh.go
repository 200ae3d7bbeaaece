package mesh

import (
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// VertexKey identifies a vertex. Keys are opaque: they carry no
// ordering significance and are stable for the lifetime of the mesh.
type VertexKey uint32

// FaceKey identifies a face.
type FaceKey uint32

// Mesh is a halfedge mesh. All maps are exported for iteration by
// render and exchange layers; mutation goes through the Add* methods,
// which keep the halfedge connectivity consistent.
type Mesh struct {
	// Vertex maps vertex key to vertex data.
	Vertex map[VertexKey]*VertexData `json:"vertex"`
	// Face maps face key to its vertex loop, in winding order.
	Face map[FaceKey][]VertexKey `json:"face"`
	// Halfedge maps u -> v -> face on the left of u->v, nil when the
	// directed edge u->v has no face (a boundary halfedge).
	Halfedge map[VertexKey]map[VertexKey]*FaceKey `json:"halfedge"`
	// FaceData and EdgeData hold sparse, caller-populated attributes.
	FaceData map[FaceKey]map[string]float64 `json:"facedata,omitempty"`
	EdgeData map[EdgeKey]map[string]float64 `json:"edgedata,omitempty"`
	// NextVertex and NextFace are the auto-key counters. They only grow:
	// a freshly generated key is strictly greater than every key the
	// mesh has ever used, explicit or generated.
	NextVertex VertexKey `json:"next_vertex"`
	NextFace   FaceKey   `json:"next_face"`
}

// New returns an empty mesh.
func New() *Mesh {
	return &Mesh{
		Vertex:   make(map[VertexKey]*VertexData),
		Face:     make(map[FaceKey][]VertexKey),
		Halfedge: make(map[VertexKey]map[VertexKey]*FaceKey),
		FaceData: make(map[FaceKey]map[string]float64),
		EdgeData: make(map[EdgeKey]map[string]float64),
	}
}

// IsEmpty reports whether the mesh has no vertices and no faces.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertex) == 0 && len(m.Face) == 0
}

// Clear empties all maps and resets the key counters.
func (m *Mesh) Clear() {
	m.Vertex = make(map[VertexKey]*VertexData)
	m.Face = make(map[FaceKey][]VertexKey)
	m.Halfedge = make(map[VertexKey]map[VertexKey]*FaceKey)
	m.FaceData = make(map[FaceKey]map[string]float64)
	m.EdgeData = make(map[EdgeKey]map[string]float64)
	m.NextVertex = 0
	m.NextFace = 0
}

// NumVertices returns the vertex count.
func (m *Mesh) NumVertices() int { return len(m.Vertex) }

// NumFaces returns the face count.
func (m *Mesh) NumFaces() int { return len(m.Face) }

// NumEdges returns the number of undirected edges. Each pair {u,v} is
// counted once no matter how many directed halfedge entries reference it.
func (m *Mesh) NumEdges() int {
	seen := make(map[[2]VertexKey]struct{})
	for u, neighbors := range m.Halfedge {
		for v := range neighbors {
			e := [2]VertexKey{u, v}
			if v < u {
				e = [2]VertexKey{v, u}
			}
			seen[e] = struct{}{}
		}
	}
	return len(seen)
}

// Euler returns the Euler characteristic V - E + F. It is 2 for a
// closed genus-0 polyhedron and 1 for a simply-connected open disk.
func (m *Mesh) Euler() int {
	return m.NumVertices() - m.NumEdges() + m.NumFaces()
}

// AddVertex inserts a vertex at an auto-generated key and returns it.
func (m *Mesh) AddVertex(position v3.Vec) VertexKey {
	key := m.NextVertex
	m.NextVertex = key + 1
	m.insertVertex(key, position)
	return key
}

// AddVertexWithKey inserts a vertex at an explicit key. A colliding key
// silently overwrites the existing vertex: last write wins, and no
// error is reported. Callers picking their own keys own that risk.
func (m *Mesh) AddVertexWithKey(position v3.Vec, key VertexKey) VertexKey {
	if key >= m.NextVertex {
		m.NextVertex = key + 1
	}
	m.insertVertex(key, position)
	return key
}

func (m *Mesh) insertVertex(key VertexKey, position v3.Vec) {
	m.Vertex[key] = &VertexData{Position: position}
	if m.Halfedge[key] == nil {
		m.Halfedge[key] = make(map[VertexKey]*FaceKey)
	}
}

// AddFace inserts a face with an auto-generated key. It returns false
// without mutating the mesh when the loop has fewer than 3 vertices,
// references a vertex the mesh does not have, or repeats a vertex.
func (m *Mesh) AddFace(vertices []VertexKey) (FaceKey, bool) {
	if !m.validFace(vertices) {
		return 0, false
	}
	key := m.NextFace
	m.NextFace = key + 1
	m.insertFace(key, vertices)
	return key, true
}

// AddFaceWithKey inserts a face at an explicit key, with the same
// validation as AddFace and the same last-write-wins collision
// behavior as AddVertexWithKey.
func (m *Mesh) AddFaceWithKey(vertices []VertexKey, key FaceKey) (FaceKey, bool) {
	if !m.validFace(vertices) {
		return 0, false
	}
	if key >= m.NextFace {
		m.NextFace = key + 1
	}
	m.insertFace(key, vertices)
	return key, true
}

func (m *Mesh) validFace(vertices []VertexKey) bool {
	if len(vertices) < 3 {
		return false
	}
	seen := make(map[VertexKey]struct{}, len(vertices))
	for _, v := range vertices {
		if _, ok := m.Vertex[v]; !ok {
			return false
		}
		if _, dup := seen[v]; dup {
			return false
		}
		seen[v] = struct{}{}
	}
	return true
}

func (m *Mesh) insertFace(key FaceKey, vertices []VertexKey) {
	loop := make([]VertexKey, len(vertices))
	copy(loop, vertices)
	m.Face[key] = loop

	for i, u := range loop {
		v := loop[(i+1)%len(loop)]
		if m.Halfedge[u] == nil {
			m.Halfedge[u] = make(map[VertexKey]*FaceKey)
		}
		if m.Halfedge[v] == nil {
			m.Halfedge[v] = make(map[VertexKey]*FaceKey)
		}
		fk := key
		m.Halfedge[u][v] = &fk
		// The opposite direction stays a boundary halfedge until some
		// later face claims it.
		if _, ok := m.Halfedge[v][u]; !ok {
			m.Halfedge[v][u] = nil
		}
	}
}

// VertexPosition returns the position of a vertex.
func (m *Mesh) VertexPosition(v VertexKey) (v3.Vec, bool) {
	vd, ok := m.Vertex[v]
	if !ok {
		return v3.Vec{}, false
	}
	return vd.Position, true
}

// FaceVertices returns the vertex loop of a face.
func (m *Mesh) FaceVertices(f FaceKey) ([]VertexKey, bool) {
	loop, ok := m.Face[f]
	return loop, ok
}

// IsVertexOnBoundary reports whether any outgoing halfedge of v has no
// face on its left.
func (m *Mesh) IsVertexOnBoundary(v VertexKey) bool {
	for _, face := range m.Halfedge[v] {
		if face == nil {
			return true
		}
	}
	return false
}

// VertexNeighbors returns the vertices adjacent to v. Order follows map
// iteration and is not significant.
func (m *Mesh) VertexNeighbors(v VertexKey) []VertexKey {
	neighbors := m.Halfedge[v]
	if len(neighbors) == 0 {
		return nil
	}
	out := make([]VertexKey, 0, len(neighbors))
	for u := range neighbors {
		out = append(out, u)
	}
	return out
}

// VertexFaces returns the faces incident to v. Order follows map
// iteration and is not significant.
func (m *Mesh) VertexFaces(v VertexKey) []FaceKey {
	var faces []FaceKey
	for fk, loop := range m.Face {
		for _, u := range loop {
			if u == v {
				faces = append(faces, fk)
				break
			}
		}
	}
	return faces
}
