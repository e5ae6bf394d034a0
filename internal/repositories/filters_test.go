package repositories

import (
	"reflect"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestNormalizeFilter(t *testing.T) {
	tests := []struct {
		name     string
		input    *string
		expected *string
	}{
		{"nil stays nil", nil, nil},
		{"all sentinel", strPtr("all"), nil},
		{"all uppercase", strPtr("ALL"), nil},
		{"blank", strPtr("  "), nil},
		{"value kept", strPtr("instagram"), strPtr("instagram")},
		{"value trimmed", strPtr(" beauty "), strPtr("beauty")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeFilter(tt.input)
			if (got == nil) != (tt.expected == nil) {
				t.Fatalf("NormalizeFilter = %v, want %v", got, tt.expected)
			}
			if got != nil && *got != *tt.expected {
				t.Errorf("NormalizeFilter = %q, want %q", *got, *tt.expected)
			}
		})
	}
}

func TestWhereBuilderEmpty(t *testing.T) {
	var b whereBuilder
	if b.Where() != "" {
		t.Errorf("empty builder should produce no WHERE, got %q", b.Where())
	}
	if len(b.Args()) != 0 {
		t.Errorf("empty builder should have no args")
	}
}

func TestWhereBuilderClauses(t *testing.T) {
	var b whereBuilder
	b.Add("created_by = $%d", "user-1")
	b.Add("platform = $%d", "instagram")
	b.AddRaw("active")

	want := " WHERE created_by = $1 AND platform = $2 AND active"
	if got := b.Where(); got != want {
		t.Errorf("Where() = %q, want %q", got, want)
	}
	if got := b.Args(); !reflect.DeepEqual(got, []any{"user-1", "instagram"}) {
		t.Errorf("Args() = %v", got)
	}
}

func TestWhereBuilderSearch(t *testing.T) {
	var b whereBuilder
	b.Add("created_by = $%d", "user-1")
	b.AddSearch("cafe", "influencer_name", "sns_id", "tags")

	want := " WHERE created_by = $1 AND (influencer_name ILIKE $2 OR sns_id ILIKE $2 OR tags ILIKE $2)"
	if got := b.Where(); got != want {
		t.Errorf("Where() = %q, want %q", got, want)
	}
	if got := b.Args(); !reflect.DeepEqual(got, []any{"user-1", "%cafe%"}) {
		t.Errorf("Args() = %v", got)
	}
}

func TestWhereBuilderSearchEmptyTerm(t *testing.T) {
	var b whereBuilder
	b.AddSearch("", "name")
	if b.Where() != "" {
		t.Error("empty search term should add no clause")
	}
}

func TestWhereBuilderPage(t *testing.T) {
	var b whereBuilder
	b.Add("status = $%d", "active")

	frag, args := b.Page("created_at DESC", 20, 40)
	if frag != " ORDER BY created_at DESC LIMIT $2 OFFSET $3" {
		t.Errorf("frag = %q", frag)
	}
	if !reflect.DeepEqual(args, []any{"active", 20, 40}) {
		t.Errorf("args = %v", args)
	}
}

func TestWhereBuilderPageDefaults(t *testing.T) {
	var b whereBuilder
	_, args := b.Page("created_at DESC", 0, -5)
	if !reflect.DeepEqual(args, []any{defaultListLimit, 0}) {
		t.Errorf("defaults not applied: %v", args)
	}
}

func TestWhereBuilderPageDoesNotMutateArgs(t *testing.T) {
	var b whereBuilder
	b.Add("status = $%d", "active")
	b.Page("created_at DESC", 10, 0)
	// A later count query must see only the predicate args.
	if !reflect.DeepEqual(b.Args(), []any{"active"}) {
		t.Errorf("Page mutated builder args: %v", b.Args())
	}
}
