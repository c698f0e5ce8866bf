package advanced

// Points are plain values. Nothing in the classifier ever mutates a caller's
// polygon, so they can be shared freely between goroutines.
type Point struct {
	X float64
	Y float64
}

// A point in the host's 3D space. Only X and Y take part in classification;
// Z is carried so results can be lifted back onto the polygon's plane.
type Point3 struct {
	X float64
	Y float64
	Z float64
}

// A polygon vertex. Bulge describes the segment running from this vertex to
// the next one: 0 is a straight line, otherwise it is tan(θ/4) of the included
// angle θ of a circular arc, positive for counterclockwise.
type Vertex struct {
	Point
	Bulge float64
}

// A polyline outline. When Closed is false the segment from the last vertex
// back to the first is not part of the boundary, although classification
// treats every outline as closed. Elevation is the constant Z of the
// polyline's plane.
type Polygon struct {
	Vertices  []Vertex
	Closed    bool
	Elevation float64
}

// A semi-infinite ray. Rays only ever live inside a single classification.
type Ray struct {
	Origin    Point
	Direction Point
}

// Axis aligned extents.
type Bounds struct {
	Min, Max Point
}

type Classification int

const (
	Outside Classification = iota - 1
	OnBoundary
	Inside
)

func (c Classification) String() string {
	switch c {
	case Outside:
		return "outside"
	case OnBoundary:
		return "on-boundary"
	case Inside:
		return "inside"
	}
	return "unknown"
}
