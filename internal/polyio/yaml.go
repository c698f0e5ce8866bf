package polyio

import (
	"io"

	. "github.com/osuushi/ptinpoly/advanced"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type yamlVertex struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Bulge float64 `yaml:"bulge,omitempty"`
}

type yamlPolygon struct {
	// Polygons are closed unless they say otherwise
	Closed    *bool        `yaml:"closed,omitempty"`
	Elevation float64      `yaml:"elevation,omitempty"`
	Vertices  []yamlVertex `yaml:"vertices"`
}

func (y yamlPolygon) polygon() Polygon {
	polygon := Polygon{
		Closed:    y.Closed == nil || *y.Closed,
		Elevation: y.Elevation,
		Vertices:  make([]Vertex, len(y.Vertices)),
	}
	for i, v := range y.Vertices {
		polygon.Vertices[i] = Vertex{Point: Point{X: v.X, Y: v.Y}, Bulge: v.Bulge}
	}
	return polygon
}

// ParseYAML reads polygons from a YAML stream. Each document is either a single
// polygon mapping or a sequence of them:
//
//	closed: true
//	elevation: 0
//	vertices:
//	  - {x: 0, y: 0}
//	  - {x: 10, y: 0, bulge: 1}
//	  - {x: 10, y: 10}
func ParseYAML(r io.Reader) ([]Polygon, error) {
	polygons := []Polygon{}
	decoder := yaml.NewDecoder(r)
	for document := 1; ; document++ {
		var node yaml.Node
		err := decoder.Decode(&node)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "yaml document %d", document)
		}

		var decoded []yamlPolygon
		content := &node
		if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
			content = node.Content[0]
		}
		switch content.Kind {
		case yaml.SequenceNode:
			err = content.Decode(&decoded)
		case yaml.MappingNode:
			var single yamlPolygon
			err = content.Decode(&single)
			decoded = []yamlPolygon{single}
		default:
			err = errors.Errorf("expected a polygon or a list of polygons at line %d", content.Line)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "yaml document %d", document)
		}

		for _, y := range decoded {
			polygons = append(polygons, y.polygon())
		}
	}
	return polygons, nil
}

// WriteYAML writes polygons in the form ParseYAML reads.
func WriteYAML(w io.Writer, polygons []Polygon) error {
	out := make([]yamlPolygon, len(polygons))
	for i, polygon := range polygons {
		closed := polygon.Closed
		out[i] = yamlPolygon{
			Closed:    &closed,
			Elevation: polygon.Elevation,
			Vertices:  make([]yamlVertex, len(polygon.Vertices)),
		}
		for j, v := range polygon.Vertices {
			out[i].Vertices[j] = yamlVertex{X: v.X, Y: v.Y, Bulge: v.Bulge}
		}
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(out); err != nil {
		return errors.Wrap(err, "encoding polygons")
	}
	return errors.Wrap(encoder.Close(), "encoding polygons")
}
