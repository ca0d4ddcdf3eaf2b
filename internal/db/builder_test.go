package db

import (
	"strings"
	"testing"
)

func TestIndexBuilder_Simple(t *testing.T) {
	idx := NewIndex("test-idx").
		Prefix("doc:").
		Tag("category").
		Numeric("price").
		MustBuild()

	if err := idx.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx.Name != "test-idx" {
		t.Errorf("name = %q, want test-idx", idx.Name)
	}
	if idx.StorageType != StorageHash {
		t.Errorf("storage = %q, want HASH", idx.StorageType)
	}
	if len(idx.Fields) != 2 {
		t.Fatalf("fields count = %d, want 2", len(idx.Fields))
	}
	if idx.Fields[0].Name != "category" || idx.Fields[0].Type != IndexFieldTag {
		t.Errorf("field[0] = %+v, want category TAG", idx.Fields[0])
	}
	if idx.Fields[1].Name != "price" || idx.Fields[1].Type != IndexFieldNumeric {
		t.Errorf("field[1] = %+v, want price NUMERIC", idx.Fields[1])
	}
}

func TestIndexBuilder_JSONAliasSortable(t *testing.T) {
	idx := NewIndex("rec-idx").
		OnJSON().
		Prefix("rec:").
		Numeric("$.year").As("year").Sortable().
		TagWithOpts(`$["STATE NAME"]`, "|", true).As("state").
		MustBuild()

	if idx.StorageType != StorageJSON {
		t.Errorf("storage = %q, want JSON", idx.StorageType)
	}
	if f := idx.Fields[0]; f.Alias != "year" || !f.Sortable {
		t.Errorf("field[0] = %+v", f)
	}
	if f := idx.Fields[1]; f.Ref() != "state" || f.Sortable {
		t.Errorf("field[1] = %+v", f)
	}
}

func TestIndexDefinition_Args(t *testing.T) {
	idx := NewIndex("rec-idx").
		OnJSON().
		Prefix("rec:").
		Numeric("$.year").As("year").Sortable().
		TagWithOpts("$.Alliance", "|", true).As("alliance").
		MustBuild()

	got := strings.Join(idx.Args(), " ")
	want := "rec-idx ON JSON PREFIX 1 rec: SCHEMA $.year AS year NUMERIC SORTABLE " +
		"$.Alliance AS alliance TAG SEPARATOR | CASESENSITIVE"
	if got != want {
		t.Errorf("args:\n got %q\nwant %q", got, want)
	}
	if !strings.HasPrefix(idx.String(), "FT.CREATE rec-idx") {
		t.Errorf("String() = %q", idx.String())
	}
}

func TestIndexBuilder_ModifiersWithoutField(t *testing.T) {
	b := NewIndex("idx").As("x").Sortable()
	if _, err := b.Build(); err == nil {
		t.Fatal("expected error for index with no fields")
	}
}

func TestIndexBuilder_MultiplePrefixes(t *testing.T) {
	idx := NewIndex("multi-idx").
		Prefix("a:", "b:", "c:").
		Tag("x").
		MustBuild()

	if len(idx.Prefixes) != 3 {
		t.Errorf("prefix count = %d, want 3", len(idx.Prefixes))
	}
}

func TestIndexBuilder_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		builder func() (*IndexDefinition, error)
		wantErr string
	}{
		{
			name: "empty name",
			builder: func() (*IndexDefinition, error) {
				return NewIndex("").Tag("x").Build()
			},
			wantErr: "index name is required",
		},
		{
			name: "no fields",
			builder: func() (*IndexDefinition, error) {
				return NewIndex("idx").Build()
			},
			wantErr: "at least one field",
		},
		{
			name: "json field without path",
			builder: func() (*IndexDefinition, error) {
				return NewIndex("idx").OnJSON().Tag("state").Build()
			},
			wantErr: "JSONPath",
		},
		{
			name: "invalid characters",
			builder: func() (*IndexDefinition, error) {
				return NewIndex("idx with spaces").Tag("x").Build()
			},
			wantErr: "invalid characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("got error %q, want containing %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestIndexBuilder_DuplicateAliases(t *testing.T) {
	idx := &IndexDefinition{
		Name: "dup-idx",
		Fields: []IndexField{
			{Name: "$.a", Alias: "f", Type: IndexFieldTag},
			{Name: "$.b", Alias: "f", Type: IndexFieldNumeric},
		},
	}

	if err := idx.Validate(); err == nil {
		t.Fatal("expected error for duplicate fields")
	}
}
