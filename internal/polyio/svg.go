package polyio

import (
	"io"
	"math"
	"strings"

	"github.com/JoshVarga/svgparser"
	. "github.com/osuushi/ptinpoly/advanced"
	"github.com/pkg/errors"
	"github.com/tdewolff/parse/v2/strconv"
)

// ParseSVG collects every <polygon>, <polyline> and <path> in the document, in
// document order. Coordinates are taken as they are written; transforms and
// units are ignored.
//
// Paths may use the M, L, H, V, A and Z commands, in either case. Arcs must be
// circular, and become bulges on the vertex they start from. Each subpath is a
// separate polygon, closed if it ends with Z.
func ParseSVG(r io.Reader) ([]Polygon, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	polygons := []Polygon{}
	err = walkElements(root, func(el *svgparser.Element) error {
		switch el.Name {
		case "polygon", "polyline":
			vertices, err := parsePointList(el.Attributes["points"])
			if err != nil {
				return errors.Wrapf(err, "<%s>", el.Name)
			}
			if len(vertices) > 0 {
				polygons = append(polygons, Polygon{Vertices: vertices, Closed: el.Name == "polygon"})
			}
		case "path":
			parsed, err := parsePathData(el.Attributes["d"])
			if err != nil {
				return errors.Wrap(err, "<path>")
			}
			polygons = append(polygons, parsed...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return polygons, nil
}

func walkElements(el *svgparser.Element, fn func(*svgparser.Element) error) error {
	if err := fn(el); err != nil {
		return err
	}
	for _, child := range el.Children {
		if err := walkElements(child, fn); err != nil {
			return err
		}
	}
	return nil
}

// Points are separated by whitespace and/or commas
func parsePointList(s string) ([]Vertex, error) {
	fields := strings.Fields(strings.ReplaceAll(s, ",", " "))
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", s)
	}
	values, err := parseFloats(fields)
	if err != nil {
		return nil, err
	}
	vertices := make([]Vertex, 0, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		vertices = append(vertices, Vertex{Point: Point{X: values[i], Y: values[i+1]}})
	}
	return vertices, nil
}

type pathScanner struct {
	data []byte
	pos  int
}

func (s *pathScanner) skipSeparators() {
	for s.pos < len(s.data) {
		switch s.data[s.pos] {
		case ' ', '\t', '\n', '\r', '\f', ',':
			s.pos++
		default:
			return
		}
	}
}

func (s *pathScanner) done() bool {
	s.skipSeparators()
	return s.pos >= len(s.data)
}

// Returns the next command letter, if the next token is one.
func (s *pathScanner) command() (byte, bool) {
	if s.done() {
		return 0, false
	}
	c := s.data[s.pos]
	if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
		s.pos++
		return c, true
	}
	return 0, false
}

func (s *pathScanner) number() (float64, error) {
	s.skipSeparators()
	f, n := strconv.ParseFloat(s.data[s.pos:])
	if n == 0 {
		return 0, errors.Errorf("expected a number at offset %d", s.pos)
	}
	s.pos += n
	return f, nil
}

// Arc flags are a single digit, and may be written without separators
func (s *pathScanner) flag() (bool, error) {
	s.skipSeparators()
	if s.pos < len(s.data) {
		switch s.data[s.pos] {
		case '0':
			s.pos++
			return false, nil
		case '1':
			s.pos++
			return true, nil
		}
	}
	return false, errors.Errorf("expected an arc flag at offset %d", s.pos)
}

func (s *pathScanner) numbers(n int) ([]float64, error) {
	values := make([]float64, n)
	for i := range values {
		v, err := s.number()
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func parsePathData(d string) ([]Polygon, error) {
	s := &pathScanner{data: []byte(d)}
	polygons := []Polygon{}
	var vertices []Vertex
	var cursor, start Point
	var cmd byte
	closedSubpath := false

	flush := func(closed bool) {
		if closed && len(vertices) > 1 && PointsEqual(vertices[len(vertices)-1].Point, vertices[0].Point, Epsilon) {
			vertices = vertices[:len(vertices)-1]
		}
		if len(vertices) > 1 {
			polygons = append(polygons, Polygon{Vertices: vertices, Closed: closed})
		}
		vertices = nil
	}
	moveTo := func(p Point) {
		cursor = p
		vertices = append(vertices, Vertex{Point: p})
	}

	for !s.done() {
		if c, ok := s.command(); ok {
			cmd = c
		} else if cmd == 0 || cmd == 'Z' || cmd == 'z' {
			return nil, errors.Errorf("expected a command at offset %d", s.pos)
		}

		relative := cmd >= 'a' && cmd <= 'z'
		offset := Point{}
		if relative {
			offset = cursor
		}

		upper := cmd &^ 0x20
		if upper != 'M' && upper != 'Z' && vertices == nil {
			if !closedSubpath {
				return nil, errors.Errorf("%c before any moveto", cmd)
			}
			// Drawing straight on after a Z starts a new subpath where the
			// closed one started
			moveTo(start)
		}

		switch upper {
		case 'M':
			values, err := s.numbers(2)
			if err != nil {
				return nil, err
			}
			flush(false)
			moveTo(offset.Add(Point{X: values[0], Y: values[1]}))
			start = cursor
			closedSubpath = false
			// Further coordinate pairs are implicit linetos
			if relative {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'L':
			values, err := s.numbers(2)
			if err != nil {
				return nil, err
			}
			moveTo(offset.Add(Point{X: values[0], Y: values[1]}))
		case 'H':
			x, err := s.number()
			if err != nil {
				return nil, err
			}
			moveTo(Point{X: offset.X + x, Y: cursor.Y})
		case 'V':
			y, err := s.number()
			if err != nil {
				return nil, err
			}
			moveTo(Point{X: cursor.X, Y: offset.Y + y})
		case 'A':
			radii, err := s.numbers(3)
			if err != nil {
				return nil, err
			}
			largeArc, err := s.flag()
			if err != nil {
				return nil, err
			}
			sweep, err := s.flag()
			if err != nil {
				return nil, err
			}
			end, err := s.numbers(2)
			if err != nil {
				return nil, err
			}
			to := offset.Add(Point{X: end[0], Y: end[1]})
			bulge, err := arcBulge(cursor, to, radii[0], radii[1], largeArc, sweep)
			if err != nil {
				return nil, errors.Wrapf(err, "arc at offset %d", s.pos)
			}
			vertices[len(vertices)-1].Bulge = bulge
			moveTo(to)
		case 'Z':
			flush(true)
			cursor = start
			closedSubpath = true
		default:
			return nil, errors.Errorf("unsupported path command %q", cmd)
		}
	}
	flush(false)
	return polygons, nil
}

// Convert an SVG elliptical arc into a bulge. Only circular arcs can be
// represented. The sweep flag picks the direction of increasing angle, which
// is counterclockwise in the unflipped coordinates we read.
func arcBulge(from, to Point, rx, ry float64, largeArc, sweep bool) (float64, error) {
	chord := from.DistanceTo(to)
	rx, ry = math.Abs(rx), math.Abs(ry)
	// Degenerate arcs are straight lines
	if chord < Epsilon || rx == 0 || ry == 0 {
		return 0, nil
	}
	if math.Abs(rx-ry) > 1e-9*math.Max(rx, ry) {
		return 0, errors.Errorf("elliptical arc with radii %g and %g", rx, ry)
	}

	// Radii too small to span the chord are scaled up until they do
	r := math.Max(rx, chord/2)
	theta := 2 * math.Asin(math.Min(1, chord/(2*r)))
	if largeArc {
		theta = 2*math.Pi - theta
	}
	bulge := math.Tan(theta / 4)
	if !sweep {
		bulge = -bulge
	}
	return bulge, nil
}
