package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"ivy_homes/internal/domain"
)

// FileSource reads a JSON document of the form {"properties": [...]}.
// Declaration order is preserved; it is the tie-break for result truncation
// downstream. Unknown fields in a record are ignored, not rejected.
type FileSource struct {
	Path string
}

func NewFileSource(path string) *FileSource { return &FileSource{Path: path} }

type catalogDoc struct {
	Properties []domain.Property `json:"properties"`
}

func (s *FileSource) Load(_ context.Context) ([]domain.Property, error) {
	if s.Path == "" {
		return nil, fmt.Errorf("file source: no data path configured")
	}
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("file source: read %s: %w", s.Path, err)
	}
	var doc catalogDoc
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("file source: parse %s: %w", s.Path, err)
	}
	// A document without the properties key is an empty catalog, not an error.
	if doc.Properties == nil {
		return []domain.Property{}, nil
	}
	return doc.Properties, nil
}
