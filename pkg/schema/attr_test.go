package schema

import (
	"errors"
	"testing"
)

func testSchema() Schema {
	return Schema{
		{Name: "keepOffsets", Type: KindBool, Default: true},
		{Name: "smoothing", Type: KindInt, Min: Num(0), Max: Num(5)},
		{Name: "mirrorAxis", Type: KindOption, Options: []string{"x", "y", "z"}},
		{Name: "targets", Type: KindNodeList, Optional: true},
	}
}

func TestSchemaValidate_OK(t *testing.T) {
	s := testSchema()
	values := map[string]any{
		"keepOffsets": false,
		"smoothing":   3,
		"mirrorAxis":  2,
		"targets":     []string{"spine_01", "spine_02"},
	}
	if err := s.Validate(values); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestSchemaValidate_CollectsAllFailures(t *testing.T) {
	s := testSchema()
	values := map[string]any{
		"keepOffsets": "yes", // wrong kind
		"smoothing":   9,     // above max
		"mirrorAxis":  5,     // out of option range
	}

	err := s.Validate(values)
	if err == nil {
		t.Fatal("Validate() expected error")
	}

	var aggr *AggregateError
	if !errors.As(err, &aggr) {
		t.Fatalf("expected *AggregateError, got %T", err)
	}
	if len(aggr.Errors) != 3 {
		t.Errorf("expected 3 errors, got %d: %v", len(aggr.Errors), aggr)
	}
}

func TestSchemaValidate_RequiredAndDefaults(t *testing.T) {
	s := testSchema()

	// smoothing has no default and is not optional: required.
	err := s.Validate(map[string]any{"mirrorAxis": 0})
	if err == nil {
		t.Fatal("Validate() expected required error for smoothing")
	}

	// keepOffsets may be omitted because it has a default.
	// targets may be omitted because it is optional.
	if err := s.Validate(map[string]any{"smoothing": 1, "mirrorAxis": 0}); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestSchemaDefaults(t *testing.T) {
	s := testSchema()
	defaults := s.Defaults()

	if got := defaults["keepOffsets"]; got != true {
		t.Errorf("defaults[keepOffsets] = %v, want true", got)
	}
	if got := defaults["smoothing"]; got != 0 {
		t.Errorf("defaults[smoothing] = %v, want 0", got)
	}
	if _, ok := defaults["targets"]; ok {
		t.Error("optional attr without default should not appear in Defaults()")
	}
}

func TestSchemaByName_PreservesOrder(t *testing.T) {
	s := testSchema()

	if _, ok := s.ByName("smoothing"); !ok {
		t.Error("ByName(smoothing) not found")
	}
	if _, ok := s.ByName("nope"); ok {
		t.Error("ByName(nope) unexpectedly found")
	}

	want := []string{"keepOffsets", "smoothing", "mirrorAxis", "targets"}
	for i, a := range s {
		if a.Name != want[i] {
			t.Errorf("attr %d = %q, want %q", i, a.Name, want[i])
		}
	}
}

func TestSchemaCheckSpecs(t *testing.T) {
	tests := []struct {
		name    string
		s       Schema
		wantErr bool
	}{
		{"valid", testSchema(), false},
		{"missing name", Schema{{Type: KindBool}}, true},
		{"duplicate name", Schema{{Name: "a", Type: KindBool}, {Name: "a", Type: KindInt}}, true},
		{"unknown kind", Schema{{Name: "a", Type: Kind("vector")}}, true},
		{"option without options", Schema{{Name: "a", Type: KindOption}}, true},
		{"bad default", Schema{{Name: "a", Type: KindInt, Default: "x"}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.CheckSpecs()
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckSpecs() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
