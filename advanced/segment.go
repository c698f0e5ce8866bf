package advanced

import "math"

// A piece of a polygon's boundary. Both implementations are strictly bounded:
// intersections are clipped to the segment and to the ray's half line, never
// to the infinite supporting line or circle.
type Segment interface {
	// Start and End follow the direction of travel along the outline.
	Start() Point
	End() Point
	ClosestPoint(p Point) Point
	// Intersections with the ray, in order of distance along the ray. The ray
	// origin itself counts when it lies on the segment.
	IntersectRay(ray Ray, tol float64) []Point
	Bounds() Bounds
}

type Line struct {
	P0, P1 Point
}

// A circular arc spanning StartAngle to EndAngle counterclockwise, with
// StartAngle < EndAngle <= StartAngle+2π. Clockwise records the direction of
// travel along the outline: a clockwise arc is entered at EndAngle and left
// at StartAngle.
type Arc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
	Clockwise  bool
}

// Build the segment that runs from vertex v to the point next. A bulge on a
// zero length chord cannot describe an arc, so it degrades to a line.
func NewSegment(v Vertex, next Point) Segment {
	if v.Bulge == 0 || v.Point.DistanceTo(next) < Epsilon {
		return Line{v.Point, next}
	}
	return ArcFromBulge(v.Point, next, v.Bulge)
}

// Convert a bulge-tagged chord into an arc. bulge must be non-zero.
//
// With chord length c and bulge b = tan(θ/4), the radius is c(1+b²)/4|b| and
// the center sits c(1-b²)/4b along the chord's left normal from its midpoint.
func ArcFromBulge(p0, p1 Point, bulge float64) Arc {
	chord := p1.Sub(p0)
	c := chord.Length()
	normal := Point{-chord.Y, chord.X}.Scale(1 / c)
	mid := p0.Add(p1).Scale(0.5)
	center := mid.Add(normal.Scale(c * (1 - bulge*bulge) / (4 * bulge)))
	radius := c * (1 + bulge*bulge) / (4 * math.Abs(bulge))
	sweep := 4 * math.Atan(math.Abs(bulge))

	arc := Arc{Center: center, Radius: radius}
	if bulge > 0 {
		arc.StartAngle = angleOf(p0.Sub(center))
	} else {
		arc.StartAngle = angleOf(p1.Sub(center))
		arc.Clockwise = true
	}
	arc.EndAngle = arc.StartAngle + sweep
	return arc
}

func angleOf(v Point) float64 {
	return math.Atan2(v.Y, v.X)
}

// Line

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

func (l Line) ClosestPoint(p Point) Point {
	e := l.P1.Sub(l.P0)
	lengthSquared := e.Dot(e)
	if lengthSquared < Epsilon*Epsilon {
		return l.P0
	}
	t := p.Sub(l.P0).Dot(e) / lengthSquared
	t = math.Max(0, math.Min(1, t))
	return l.P0.Add(e.Scale(t))
}

func (l Line) IntersectRay(ray Ray, tol float64) []Point {
	d := ray.Direction
	e := l.P1.Sub(l.P0)
	w := l.P0.Sub(ray.Origin)
	denom := d.Cross(e)

	if math.Abs(denom) <= Epsilon*d.Length()*math.Max(e.Length(), 1) {
		// Parallel (or a zero length segment). Only a collinear overlap touches
		// the ray, and then the crossing points that matter are the segment's
		// endpoints.
		if math.Abs(w.Cross(d))/d.Length() >= tol {
			return nil
		}
		var hits []Point
		for _, p := range [...]Point{l.P0, l.P1} {
			if p.Sub(ray.Origin).Dot(d) >= 0 {
				hits = append(hits, p)
			}
		}
		if len(hits) == 2 && hits[0].Sub(ray.Origin).Dot(d) > hits[1].Sub(ray.Origin).Dot(d) {
			hits[0], hits[1] = hits[1], hits[0]
		}
		return hits
	}

	t := w.Cross(e) / denom // parameter along the ray
	u := w.Cross(d) / denom // parameter along the segment
	if t < 0 {
		return nil
	}
	// Allow the crossing to land up to tol beyond either endpoint, so a ray
	// through a vertex is reported by both of the segments meeting there.
	uTol := tol / e.Length()
	if u < -uTol || u > 1+uTol {
		return nil
	}
	return []Point{ray.Origin.Add(d.Scale(t))}
}

func (l Line) Bounds() Bounds {
	return emptyBounds().union(l.P0).union(l.P1)
}

// Arc

func (a Arc) pointAt(angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{a.Center.X + a.Radius*cos, a.Center.Y + a.Radius*sin}
}

func (a Arc) Start() Point {
	if a.Clockwise {
		return a.pointAt(a.EndAngle)
	}
	return a.pointAt(a.StartAngle)
}

func (a Arc) End() Point {
	if a.Clockwise {
		return a.pointAt(a.StartAngle)
	}
	return a.pointAt(a.EndAngle)
}

func (a Arc) Sweep() float64 {
	return a.EndAngle - a.StartAngle
}

// Midpoint of the arc, halfway along its sweep.
func (a Arc) Midpoint() Point {
	return a.pointAt(a.StartAngle + a.Sweep()/2)
}

// Check whether the angle falls within the arc's range, give or take slack
// radians at either end.
func (a Arc) ContainsAngle(angle, slack float64) bool {
	delta := normalizeAngle(angle - a.StartAngle)
	return delta <= a.Sweep()+slack || delta >= 2*math.Pi-slack
}

func (a Arc) ClosestPoint(p Point) Point {
	v := p.Sub(a.Center)
	distance := v.Length()
	if distance < Epsilon {
		// Every point of the arc is equally close to its center
		return a.Start()
	}
	if a.ContainsAngle(angleOf(v), 0) {
		return a.Center.Add(v.Scale(a.Radius / distance))
	}
	start, end := a.Start(), a.End()
	if p.DistanceTo(start) <= p.DistanceTo(end) {
		return start
	}
	return end
}

func (a Arc) IntersectRay(ray Ray, tol float64) []Point {
	dir := ray.Direction.Scale(1 / ray.Direction.Length())
	f := ray.Origin.Sub(a.Center)
	b := f.Dot(dir)
	// Signed distance from the center to the ray's supporting line
	perp := f.Cross(dir)

	// A tangent ray touches the circle without crossing it. TouchesRay reports
	// it, and anything close to it, separately.
	if math.Abs(perp) >= a.Radius {
		return nil
	}
	h := math.Sqrt(a.Radius*a.Radius - perp*perp)
	ts := []float64{-b - h, -b + h}

	slack := tol / a.Radius
	var hits []Point
	for _, t := range ts {
		if t < 0 {
			continue
		}
		p := ray.Origin.Add(dir.Scale(t))
		if a.ContainsAngle(angleOf(p.Sub(a.Center)), slack) {
			hits = append(hits, p)
		}
	}
	return hits
}

// TouchesRay reports whether the ray passes within tol of tangent to the arc,
// ahead of its origin and inside the arc's range. Near tangency the two
// crossings merge under tolerance, so the parity of such a ray can't be
// trusted any more than that of a ray through a vertex.
func (a Arc) TouchesRay(ray Ray, tol float64) bool {
	dir := ray.Direction.Scale(1 / ray.Direction.Length())
	f := ray.Origin.Sub(a.Center)
	perp := f.Cross(dir)
	if math.Abs(math.Abs(perp)-a.Radius) >= tol {
		return false
	}
	// Foot of the perpendicular from the center
	t := -f.Dot(dir)
	if t+math.Sqrt(math.Max(0, a.Radius*a.Radius-perp*perp)) < 0 {
		return false
	}
	foot := ray.Origin.Add(dir.Scale(t))
	return a.ContainsAngle(angleOf(foot.Sub(a.Center)), tol/a.Radius)
}

// The arc's extents are its endpoints plus any axis extremes it sweeps over.
func (a Arc) Bounds() Bounds {
	bounds := emptyBounds().union(a.Start()).union(a.End())
	for quadrant := 0; quadrant < 4; quadrant++ {
		angle := float64(quadrant) * math.Pi / 2
		if a.ContainsAngle(angle, 0) {
			bounds = bounds.union(a.pointAt(angle))
		}
	}
	return bounds
}
