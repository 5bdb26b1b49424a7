package config

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/bjaus/pround"
)

// csvSource is a CSV file with a header row.
type csvSource struct {
	path    string
	header  []string
	records [][]string
}

func readCSV(path string) (*csvSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read source %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read source %s: missing header row", path)
	}
	return &csvSource{path: path, header: records[0], records: records[1:]}, nil
}

// floats returns the named column converted with [pround.Floats].
func (s *csvSource) floats(name string) ([]float64, error) {
	idx := -1
	for i, h := range s.header {
		if strings.TrimSpace(h) == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("source %s has no column %q", s.path, name)
	}
	cells := make([]string, len(s.records))
	for i, rec := range s.records {
		cells[i] = rec[idx]
	}
	values, err := pround.Floats(cells)
	if err != nil {
		return nil, fmt.Errorf("source %s column %q: %w", s.path, name, err)
	}
	return values, nil
}
