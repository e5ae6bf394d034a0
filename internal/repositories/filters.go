package repositories

import (
	"fmt"
	"strings"
)

// FilterAll is the sentinel a client may send to mean "no restriction".
const FilterAll = "all"

// defaultListLimit bounds every page fetch; callers must not assume
// unlimited results.
const defaultListLimit = 1000

// NormalizeFilter maps the "all" sentinel (and blank strings) to nil so it
// imposes no constraint.
func NormalizeFilter(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" || strings.EqualFold(trimmed, FilterAll) {
		return nil
	}
	return &trimmed
}

// whereBuilder accumulates positional predicate clauses. The same built
// WHERE is applied to both the page query and the count query so the
// reported total always matches the filter.
type whereBuilder struct {
	clauses []string
	args    []any
}

// Add appends a clause containing a single $%d placeholder.
func (b *whereBuilder) Add(cond string, arg any) {
	b.clauses = append(b.clauses, fmt.Sprintf(cond, len(b.args)+1))
	b.args = append(b.args, arg)
}

// AddRaw appends a clause with no bound argument.
func (b *whereBuilder) AddRaw(cond string) {
	b.clauses = append(b.clauses, cond)
}

// AddSearch appends an OR of case-insensitive partial matches of term over
// the given columns.
func (b *whereBuilder) AddSearch(term string, columns ...string) {
	if term == "" || len(columns) == 0 {
		return
	}
	idx := len(b.args) + 1
	parts := make([]string, 0, len(columns))
	for _, col := range columns {
		parts = append(parts, fmt.Sprintf("%s ILIKE $%d", col, idx))
	}
	b.clauses = append(b.clauses, "("+strings.Join(parts, " OR ")+")")
	b.args = append(b.args, "%"+term+"%")
}

// Where returns the assembled WHERE fragment (with leading " WHERE "), or
// an empty string when no clause was added.
func (b *whereBuilder) Where() string {
	if len(b.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.clauses, " AND ")
}

// Args returns the bound arguments in placeholder order.
func (b *whereBuilder) Args() []any {
	return b.args
}

// Page appends ORDER BY / LIMIT / OFFSET and returns the final argument
// slice. A non-positive limit falls back to defaultListLimit.
func (b *whereBuilder) Page(orderBy string, limit, offset int) (string, []any) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	idx := len(b.args) + 1
	frag := fmt.Sprintf(" ORDER BY %s LIMIT $%d OFFSET $%d", orderBy, idx, idx+1)
	args := append(append([]any{}, b.args...), limit, offset)
	return frag, args
}
