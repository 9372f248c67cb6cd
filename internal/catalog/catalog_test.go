package catalog_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"ivy_homes/internal/catalog"
	"ivy_homes/internal/domain"
)

// ---- file source ----

func TestFileSource_LoadPreservesOrderAndIgnoresExtras(t *testing.T) {
	src := catalog.NewFileSource(filepath.Join("testdata", "properties.json"))

	props, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(props) != 3 {
		t.Fatalf("expected 3 properties, got %d", len(props))
	}
	for i, want := range []string{"IVY-001", "IVY-002", "IVY-003"} {
		if props[i].ID != want {
			t.Fatalf("order: got %s at %d, want %s", props[i].ID, i, want)
		}
	}

	first := props[0]
	if first.TypeName() != "apartment" || first.PriceValue() != 9_500_000 || first.BedroomCount() != 2 {
		t.Fatalf("unexpected first record: %+v", first)
	}
	if first.AreaSqFt() != 1180 || first.BuiltYear() != 2016 {
		t.Fatalf("square_feet/year_built not parsed: %+v", first)
	}

	// optional fields stay nil when the source omits them
	second := props[1]
	if second.Address != nil || second.SquareFeet != nil || second.Description != nil {
		t.Fatalf("expected nil optionals: %+v", second)
	}
	if second.AddressLine() != "" || second.AreaSqFt() != 0 {
		t.Fatal("accessors must default missing fields")
	}
}

func TestFileSource_MissingFileIsAnError(t *testing.T) {
	src := catalog.NewFileSource(filepath.Join("testdata", "does-not-exist.json"))
	if _, err := src.Load(context.Background()); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFileSource_MalformedDocumentIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte(`{"properties": [`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	src := catalog.NewFileSource(path)
	if _, err := src.Load(context.Background()); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestFileSource_MissingCollectionIsEmptyNotError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nocollection.json")
	if err := os.WriteFile(path, []byte(`{"listings": [{"id": "X"}]}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	src := catalog.NewFileSource(path)
	props, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("a parseable document without the collection is empty, not an error: %v", err)
	}
	if len(props) != 0 {
		t.Fatalf("expected empty, got %d", len(props))
	}
}

func TestFileSource_EmptyPathIsAnError(t *testing.T) {
	src := catalog.NewFileSource("")
	if _, err := src.Load(context.Background()); err == nil {
		t.Fatal("expected error for empty path")
	}
}

// ---- catalog ----

type failingSource struct{}

func (failingSource) Load(context.Context) ([]domain.Property, error) {
	return nil, errors.New("boom")
}

type staticSource struct{ props []domain.Property }

func (s *staticSource) Load(context.Context) ([]domain.Property, error) { return s.props, nil }

func TestCatalog_StartsEmpty(t *testing.T) {
	c := catalog.New()
	if c.Len() != 0 || len(c.Properties()) != 0 {
		t.Fatal("fresh catalog must be empty, not nil-panicky")
	}
}

func TestCatalog_ReloadDegradesToEmptyOnFailure(t *testing.T) {
	c := catalog.New()
	c.Reload(context.Background(), &staticSource{props: []domain.Property{{ID: "A"}}})
	if c.Len() != 1 {
		t.Fatalf("len: %d", c.Len())
	}

	// a failing reload swaps in an empty catalog rather than keeping stale
	// data or crashing
	c.Reload(context.Background(), failingSource{})
	if c.Len() != 0 {
		t.Fatalf("expected empty catalog after failed reload, got %d", c.Len())
	}
}

func TestCatalog_ReloadSwapsWholeSnapshot(t *testing.T) {
	c := catalog.New()
	c.Reload(context.Background(), &staticSource{props: []domain.Property{{ID: "A"}, {ID: "B"}}})

	before := c.Properties()
	c.Reload(context.Background(), &staticSource{props: []domain.Property{{ID: "C"}}})

	// the earlier snapshot is untouched by the swap
	if len(before) != 2 || before[0].ID != "A" {
		t.Fatalf("old snapshot mutated: %+v", before)
	}
	after := c.Properties()
	if len(after) != 1 || after[0].ID != "C" {
		t.Fatalf("new snapshot wrong: %+v", after)
	}
}
