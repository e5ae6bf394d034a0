package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Kind
	}{
		{"not found", NotFound("campaign not found"), KindNotFound},
		{"conflict", Conflict("duplicate"), KindConflict},
		{"validation", Validation("missing fields"), KindValidation},
		{"unauthorized", Unauthorized("no token"), KindUnauthorized},
		{"invalid action", InvalidAction(), KindInvalidAction},
		{"method not allowed", MethodNotAllowed(), KindMethodNotAllowed},
		{"wrapped", fmt.Errorf("outer: %w", NotFound("inner")), KindNotFound},
		{"plain error", errors.New("boom"), KindInternal},
		{"internal", Internal("database error", errors.New("conn reset")), KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.expected {
				t.Errorf("KindOf() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMessageOf(t *testing.T) {
	if got := MessageOf(NotFound("campaign not found")); got != "campaign not found" {
		t.Errorf("MessageOf = %q", got)
	}
	if got := MessageOf(errors.New("pq: connection refused")); got != "internal error" {
		t.Errorf("plain errors must not leak, got %q", got)
	}
}

func TestFromDB(t *testing.T) {
	if err := FromDB(nil, "nf", "dup"); err != nil {
		t.Errorf("nil should stay nil, got %v", err)
	}

	err := FromDB(pgx.ErrNoRows, "campaign not found", "dup")
	if KindOf(err) != KindNotFound || MessageOf(err) != "campaign not found" {
		t.Errorf("no rows => not found, got %v", err)
	}

	uniq := &pgconn.PgError{Code: "23505", ConstraintName: "influencers_platform_sns_id_key"}
	err = FromDB(uniq, "nf", "duplicate influencer")
	if KindOf(err) != KindConflict || MessageOf(err) != "duplicate influencer" {
		t.Errorf("unique violation => conflict, got %v", err)
	}

	err = FromDB(errors.New("conn reset"), "nf", "dup")
	if KindOf(err) != KindInternal {
		t.Errorf("other errors => internal, got %v", err)
	}
}
