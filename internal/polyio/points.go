package polyio

import (
	"bufio"
	"io"
	"strings"

	. "github.com/osuushi/ptinpoly/advanced"
	"github.com/pkg/errors"
)

// ParsePoint parses a query point written as "x,y" or "x y".
func ParsePoint(s string) (Point, error) {
	fields := strings.Fields(strings.ReplaceAll(s, ",", " "))
	if len(fields) != 2 {
		return Point{}, errors.Errorf("expected \"x,y\", got %q", s)
	}
	values, err := parseFloats(fields)
	if err != nil {
		return Point{}, err
	}
	return Point{X: values[0], Y: values[1]}, nil
}

// ParsePoints reads one query point per line. Blank lines and lines starting
// with # are skipped.
func ParsePoints(r io.Reader) ([]Point, error) {
	points := []Point{}
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		p, err := ParsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return points, nil
}
