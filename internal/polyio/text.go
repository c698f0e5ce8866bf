// Package polyio reads polygons and query points from the formats the command
// line tool accepts.
package polyio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	. "github.com/osuushi/ptinpoly/advanced"
	"github.com/pkg/errors"
)

// ParseText reads polygons as newline separated vertices in the form "x y" or
// "x y bulge", with each polygon separated by a blank line. Lines starting with
// # are ignored. Every polygon read this way is closed.
func ParseText(r io.Reader) ([]Polygon, error) {
	polygons := []Polygon{}
	scanner := bufio.NewScanner(r)
	vertices := []Vertex{}
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}

		// If it's empty, and we collected any vertices, this is the end of the
		// polygon
		if line == "" {
			if len(vertices) > 0 {
				polygons = append(polygons, Polygon{Vertices: vertices, Closed: true})
				vertices = []Vertex{}
			}
			continue
		}

		vertex, err := parseVertex(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		vertices = append(vertices, vertex)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading polygons")
	}

	// Handle trailing polygon if any
	if len(vertices) > 0 {
		polygons = append(polygons, Polygon{Vertices: vertices, Closed: true})
	}
	return polygons, nil
}

func parseVertex(line string) (Vertex, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 && len(fields) != 3 {
		return Vertex{}, errors.Errorf("expected \"x y\" or \"x y bulge\", got %q", line)
	}
	values, err := parseFloats(fields)
	if err != nil {
		return Vertex{}, err
	}
	vertex := Vertex{Point: Point{X: values[0], Y: values[1]}}
	if len(values) == 3 {
		vertex.Bulge = values[2]
	}
	return vertex, nil
}

func parseFloats(fields []string) ([]float64, error) {
	values := make([]float64, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errors.Errorf("invalid number %q", field)
		}
		values[i] = v
	}
	return values, nil
}
