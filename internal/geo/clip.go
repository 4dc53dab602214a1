package geo

import (
	"github.com/paulmach/orb"
)

// ClipRing clips subject against a convex ring using Sutherland-Hodgman.
// The clip ring must be convex; the station buffer polygons produced by
// Buffer always are. Returns nil when the rings do not overlap.
func ClipRing(subject, clip orb.Ring) orb.Ring {
	if len(subject) < 3 || len(clip) < 3 {
		return nil
	}

	orientation := ringOrientation(clip)
	if orientation == 0 {
		return nil
	}

	output := openRing(subject)
	edges := closedRing(clip)

	for i := 0; i < len(edges)-1; i++ {
		if len(output) == 0 {
			return nil
		}
		a, b := edges[i], edges[i+1]

		input := output
		output = output[:0:0]
		for j := 0; j < len(input); j++ {
			current := input[j]
			previous := input[(j+len(input)-1)%len(input)]

			currentInside := insideEdge(current, a, b, orientation)
			previousInside := insideEdge(previous, a, b, orientation)

			if currentInside {
				if !previousInside {
					output = append(output, segmentIntersection(previous, current, a, b))
				}
				output = append(output, current)
			} else if previousInside {
				output = append(output, segmentIntersection(previous, current, a, b))
			}
		}
	}

	if len(output) < 3 {
		return nil
	}
	return closedRing(output)
}

// ClipPolygon clips every ring of subject against the convex outer ring of
// clip and reassembles the result. Inner rings that vanish are dropped.
func ClipPolygon(subject orb.Polygon, clip orb.Polygon) orb.Polygon {
	if len(subject) == 0 || len(clip) == 0 {
		return nil
	}

	outer := ClipRing(subject[0], clip[0])
	if outer == nil {
		return nil
	}

	result := orb.Polygon{outer}
	for _, hole := range subject[1:] {
		if clipped := ClipRing(hole, clip[0]); clipped != nil {
			result = append(result, clipped)
		}
	}
	return result
}

// IntersectionArea returns the geodesic area in square meters of the
// intersection between a polygonal geometry and a convex clip polygon.
func IntersectionArea(g orb.Geometry, clip orb.Polygon) float64 {
	switch geom := g.(type) {
	case orb.Polygon:
		if clipped := ClipPolygon(geom, clip); clipped != nil {
			return Area(clipped)
		}
	case orb.MultiPolygon:
		total := 0.0
		for _, poly := range geom {
			if clipped := ClipPolygon(poly, clip); clipped != nil {
				total += Area(clipped)
			}
		}
		return total
	}
	return 0
}

// Intersects reports whether a polygonal geometry overlaps the convex clip
// polygon. Bounding boxes are checked first to keep the common miss cheap.
func Intersects(g orb.Geometry, clip orb.Polygon) bool {
	if !g.Bound().Intersects(clip.Bound()) {
		return false
	}
	return IntersectionArea(g, clip) > 0
}

// ringOrientation returns +1 for counterclockwise rings, -1 for clockwise
// ones and 0 for degenerate rings, based on the shoelace sum.
func ringOrientation(ring orb.Ring) int {
	closed := closedRing(ring)
	sum := 0.0
	for i := 0; i < len(closed)-1; i++ {
		sum += (closed[i+1][0] - closed[i][0]) * (closed[i+1][1] + closed[i][1])
	}
	switch {
	case sum < 0:
		return 1
	case sum > 0:
		return -1
	default:
		return 0
	}
}

func insideEdge(p, a, b orb.Point, orientation int) bool {
	cross := (b[0]-a[0])*(p[1]-a[1]) - (b[1]-a[1])*(p[0]-a[0])
	if orientation > 0 {
		return cross >= 0
	}
	return cross <= 0
}

// segmentIntersection returns the intersection of segment p1-p2 with the
// infinite line through a-b. Callers only invoke it when the segment is
// known to cross the line.
func segmentIntersection(p1, p2, a, b orb.Point) orb.Point {
	dx1 := p2[0] - p1[0]
	dy1 := p2[1] - p1[1]
	dx2 := b[0] - a[0]
	dy2 := b[1] - a[1]

	denom := dx1*dy2 - dy1*dx2
	if denom == 0 {
		return p1
	}
	t := ((a[0]-p1[0])*dy2 - (a[1]-p1[1])*dx2) / denom
	return orb.Point{p1[0] + t*dx1, p1[1] + t*dy1}
}

// openRing drops the closing point so each vertex appears exactly once.
func openRing(ring orb.Ring) orb.Ring {
	if len(ring) > 1 && ring[0] == ring[len(ring)-1] {
		return ring[:len(ring)-1]
	}
	return ring
}

// closedRing ensures the ring's last point equals its first. The input is
// returned unchanged when already closed.
func closedRing(ring orb.Ring) orb.Ring {
	if len(ring) == 0 {
		return ring
	}
	if ring[0] == ring[len(ring)-1] {
		return ring
	}
	out := make(orb.Ring, 0, len(ring)+1)
	out = append(out, ring...)
	out = append(out, ring[0])
	return out
}
