// Package mesh implements a halfedge mesh for polygonal surfaces.
//
// Connectivity is stored as a halfedge dictionary: Halfedge[u][v] holds the face
// bordering the directed edge u->v on its left, or nil when that
// direction is a boundary halfedge. Vertices and faces live in maps
// keyed by opaque unsigned keys; keys are never reused and entities are
// never removed individually (Clear resets the whole mesh).
//
// Construction entry points cover direct insertion (AddVertex/AddFace),
// polygon soups with spatial vertex merging (FromPolygons,
// FromPolygonsMerged), single-polygon ear-clip triangulation
// (FromPolygonEarClip), and parametric pipe generation (CreatePipe)
// used to give zero-thickness lines and polylines renderable volume.
package mesh
