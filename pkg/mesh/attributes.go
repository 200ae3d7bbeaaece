package mesh

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Color is an RGB vertex color with components in [0,1].
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// TexCoord is a UV texture coordinate.
type TexCoord struct {
	U float64 `json:"u"`
	V float64 `json:"v"`
}

// VertexData holds a vertex position plus sparse, caller-populated
// attributes. The position is always present; everything else is
// optional and structural validity never depends on it. Arbitrary
// named scalars that don't fit the typed fields go into Extra.
type VertexData struct {
	Position v3.Vec             `json:"position"`
	Color    *Color             `json:"color,omitempty"`
	Normal   *v3.Vec            `json:"normal,omitempty"`
	TexCoord *TexCoord          `json:"texcoord,omitempty"`
	Extra    map[string]float64 `json:"extra,omitempty"`
}

// SetExtra stores an arbitrary named scalar on the vertex.
func (vd *VertexData) SetExtra(name string, value float64) {
	if vd.Extra == nil {
		vd.Extra = make(map[string]float64)
	}
	vd.Extra[name] = value
}

// GetExtra looks up an arbitrary named scalar.
func (vd *VertexData) GetExtra(name string) (float64, bool) {
	value, ok := vd.Extra[name]
	return value, ok
}

// EdgeKey names an undirected edge for attribute storage. The two
// vertex keys are normalized to (min,max) so that u->v and v->u share
// attributes, and the string form survives JSON map encoding.
type EdgeKey string

// EdgeKeyOf builds the normalized key for the undirected edge {u,v}.
func EdgeKeyOf(u, v VertexKey) EdgeKey {
	if v < u {
		u, v = v, u
	}
	return EdgeKey(fmt.Sprintf("%d-%d", u, v))
}

// SetFaceAttribute stores a named scalar on a face.
func (m *Mesh) SetFaceAttribute(f FaceKey, name string, value float64) {
	if m.FaceData == nil {
		m.FaceData = make(map[FaceKey]map[string]float64)
	}
	if m.FaceData[f] == nil {
		m.FaceData[f] = make(map[string]float64)
	}
	m.FaceData[f][name] = value
}

// FaceAttribute looks up a named face scalar.
func (m *Mesh) FaceAttribute(f FaceKey, name string) (float64, bool) {
	value, ok := m.FaceData[f][name]
	return value, ok
}

// SetEdgeAttribute stores a named scalar on the undirected edge {u,v}.
func (m *Mesh) SetEdgeAttribute(u, v VertexKey, name string, value float64) {
	key := EdgeKeyOf(u, v)
	if m.EdgeData == nil {
		m.EdgeData = make(map[EdgeKey]map[string]float64)
	}
	if m.EdgeData[key] == nil {
		m.EdgeData[key] = make(map[string]float64)
	}
	m.EdgeData[key][name] = value
}

// EdgeAttribute looks up a named scalar on the undirected edge {u,v}.
func (m *Mesh) EdgeAttribute(u, v VertexKey, name string) (float64, bool) {
	value, ok := m.EdgeData[EdgeKeyOf(u, v)][name]
	return value, ok
}
