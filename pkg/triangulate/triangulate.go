// Package triangulate implements ear-clipping triangulation of simple
// 2D polygons, plus the 3D-to-2D projection used to feed it. Polygons
// may be concave and given in either winding order; self-intersecting
// input is rejected with ErrNoEar rather than looping forever.
//
// The search is O(n) per clipped ear and O(n^2) overall, which is fine
// for the polygon sizes this kernel targets (tens of vertices).
package triangulate

import (
	"errors"

	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// ErrNoEar is returned when a full scan of the active vertices finds no
// clippable ear. This happens for degenerate or self-intersecting input.
var ErrNoEar = errors.New("triangulate: no valid ear found")

// ErrTooFewPoints is returned for polygons with fewer than 3 vertices.
var ErrTooFewPoints = errors.New("triangulate: polygon needs at least 3 vertices")

// EarClip triangulates a simple polygon given as an ordered boundary
// loop. It returns index triples into the original point order. A
// clockwise polygon is reversed internally and the triangle indices are
// mapped back, so the caller never sees the reversal.
func EarClip(points []v2.Vec) ([][3]int, error) {
	n := len(points)
	if n < 3 {
		return nil, ErrTooFewPoints
	}
	if n == 3 {
		return [][3]int{{0, 1, 2}}, nil
	}

	// Positive signed area means clockwise under this sign convention.
	poly := points
	reversed := signedArea(points) > 0
	if reversed {
		poly = make([]v2.Vec, n)
		for i, p := range points {
			poly[n-1-i] = p
		}
	}

	var triangles [][3]int
	active := make([]int, n)
	for i := range active {
		active[i] = i
	}

	for len(active) > 3 {
		clipped := false
		for i := range active {
			prev := active[(i+len(active)-1)%len(active)]
			curr := active[i]
			next := active[(i+1)%len(active)]

			if !isEar(poly, active, prev, curr, next) {
				continue
			}
			triangles = append(triangles, [3]int{prev, curr, next})
			active = append(active[:i], active[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			return nil, ErrNoEar
		}
	}
	triangles = append(triangles, [3]int{active[0], active[1], active[2]})

	if reversed {
		for t := range triangles {
			for i := range triangles[t] {
				triangles[t][i] = n - 1 - triangles[t][i]
			}
		}
	}
	return triangles, nil
}

// isEar reports whether the active vertex curr forms a clippable ear:
// the corner at curr is convex and no other active vertex lies inside
// the candidate triangle.
func isEar(poly []v2.Vec, active []int, prev, curr, next int) bool {
	a, b, c := poly[prev], poly[curr], poly[next]

	// Convexity: cross product of the incoming and outgoing edges.
	cross := (b.X-a.X)*(c.Y-b.Y) - (b.Y-a.Y)*(c.X-b.X)
	if cross <= 0 {
		return false
	}

	for _, idx := range active {
		if idx == prev || idx == curr || idx == next {
			continue
		}
		if pointInTriangle(poly[idx], a, b, c) {
			return false
		}
	}
	return true
}

// pointInTriangle uses the sign of the three edge half-plane tests. A
// point on an edge counts as inside, which keeps collinear vertices
// from being clipped over.
func pointInTriangle(p, a, b, c v2.Vec) bool {
	d1 := edgeSign(p, a, b)
	d2 := edgeSign(p, b, c)
	d3 := edgeSign(p, c, a)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func edgeSign(p, a, b v2.Vec) float64 {
	return (p.X-b.X)*(a.Y-b.Y) - (a.X-b.X)*(p.Y-b.Y)
}

// signedArea computes the shoelace-formula area of the polygon.
// Positive values indicate clockwise winding under this convention.
func signedArea(points []v2.Vec) float64 {
	sum := 0.0
	n := len(points)
	for i, p0 := range points {
		p1 := points[(i+1)%n]
		sum += (p1.X - p0.X) * (p1.Y + p0.Y)
	}
	return sum * 0.5
}

// Project maps a 3D polygon onto the 2D plane best aligned with it.
// The polygon normal is computed with Newell's method, which tolerates
// slightly non-planar input, and the dominant normal axis is dropped.
// A degenerate polygon falls back to the XY plane.
func Project(points []v3.Vec) []v2.Vec {
	if len(points) < 3 {
		return nil
	}

	var normal v3.Vec
	n := len(points)
	for i, curr := range points {
		next := points[(i+1)%n]
		normal.X += (curr.Y - next.Y) * (curr.Z + next.Z)
		normal.Y += (curr.Z - next.Z) * (curr.X + next.X)
		normal.Z += (curr.X - next.X) * (curr.Y + next.Y)
	}
	if normal.Length() < 1e-10 {
		normal = v3.Vec{X: 0, Y: 0, Z: 1}
	}

	abs := normal.Abs()
	out := make([]v2.Vec, n)
	switch {
	case abs.Z >= abs.X && abs.Z >= abs.Y:
		for i, p := range points {
			out[i] = v2.Vec{X: p.X, Y: p.Y}
		}
	case abs.Y >= abs.X:
		for i, p := range points {
			out[i] = v2.Vec{X: p.X, Y: p.Z}
		}
	default:
		for i, p := range points {
			out[i] = v2.Vec{X: p.Y, Y: p.Z}
		}
	}
	return out
}
