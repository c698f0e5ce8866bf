package polyio

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	. "github.com/osuushi/ptinpoly/advanced"
	"github.com/pkg/errors"
)

type Format string

const (
	FormatAuto Format = "auto"
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatSVG  Format = "svg"
)

var Formats = []string{string(FormatAuto), string(FormatText), string(FormatYAML), string(FormatSVG)}

// Guess a format from a file name. Anything unrecognized is text.
func DetectFormat(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".svg":
		return FormatSVG
	default:
		return FormatText
	}
}

func Parse(r io.Reader, format Format) ([]Polygon, error) {
	switch format {
	case FormatText:
		return ParseText(r)
	case FormatYAML:
		return ParseYAML(r)
	case FormatSVG:
		return ParseSVG(r)
	default:
		return nil, errors.Errorf("unknown polygon format %q", format)
	}
}

// ReadFile reads polygons from a file, detecting the format from its extension
// when format is FormatAuto or empty.
func ReadFile(name string, format Format) ([]Polygon, error) {
	if format == "" || format == FormatAuto {
		format = DetectFormat(name)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "opening polygon file")
	}
	defer f.Close()

	polygons, err := Parse(f, format)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	if len(polygons) == 0 {
		return nil, errors.Errorf("no polygons in %s", name)
	}
	return polygons, nil
}
