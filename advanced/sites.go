package advanced

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// On disk form of a site list:
//
//   sites:
//     - {x: 1, y: 2}
type siteFile struct {
	Sites []Point `yaml:"sites"`
}

func SaveSites(w io.Writer, sites []Point) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(siteFile{sites}); err != nil {
		return errors.Wrap(err, "encoding sites")
	}
	return errors.Wrap(enc.Close(), "encoding sites")
}

// Read a site list written by SaveSites. An empty document is an empty list.
func LoadSites(r io.Reader) ([]Point, error) {
	var file siteFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decoding sites")
	}
	return file.Sites, nil
}

// Insert every point, skipping duplicates. Returns how many were skipped.
func (tr *Triangulation) InsertAll(points []Point) int {
	skipped := 0
	for _, p := range points {
		if _, err := tr.Insert(p); err != nil {
			skipped++
		}
	}
	return skipped
}
