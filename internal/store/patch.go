package store

import (
	"wedonate/pkg/types"

	sq "github.com/Masterminds/squirrel"
)

// Patch collects the columns a partial update will set. Columns are applied
// in insertion order and each column pairs positionally with its value, so a
// patch can never mix up which value lands in which column. A nil set via
// SetNull is a real value (clears the column), not an omitted field.
type Patch struct {
	columns []string
	values  []any
}

func NewPatch() *Patch {
	return &Patch{}
}

func (p *Patch) Set(column string, value any) *Patch {
	p.columns = append(p.columns, column)
	p.values = append(p.values, value)
	return p
}

// SetString adds the column only when v is non-nil. A nil pointer means the
// caller did not ask for a change.
func (p *Patch) SetString(column string, v *string) *Patch {
	if v == nil {
		return p
	}
	return p.Set(column, *v)
}

// SetNull clears the column.
func (p *Patch) SetNull(column string) *Patch {
	return p.Set(column, nil)
}

func (p *Patch) Len() int {
	return len(p.columns)
}

func (p *Patch) Columns() []string {
	out := make([]string, len(p.columns))
	copy(out, p.columns)
	return out
}

// Apply adds every collected column to the update builder, preserving order.
// An empty patch returns types.ErrEmptyPatch so callers reject no-op writes
// before touching the database.
func (p *Patch) Apply(builder sq.UpdateBuilder) (sq.UpdateBuilder, error) {
	if p.Len() == 0 {
		return builder, types.ErrEmptyPatch
	}

	for i, column := range p.columns {
		builder = builder.Set(column, p.values[i])
	}

	return builder, nil
}
