package query

import "gorm.io/gorm"

type deletedMode int

const (
	excludeDeleted deletedMode = iota // default: deletion timestamp unset
	includeDeleted
	onlyDeleted
)

type condition struct {
	query any
	args  []any
}

// Filter accumulates read predicates, starting from "not soft-deleted".
// It is copy-on-write: every call returns a new Filter, so a chain never
// mutates a filter another caller holds.
type Filter struct {
	mode  deletedMode
	conds []condition
}

func NewFilter() *Filter {
	return &Filter{}
}

// WithDeleted drops the default not-deleted predicate.
func (f *Filter) WithDeleted() *Filter {
	c := f.clone()
	c.mode = includeDeleted
	return c
}

// OnlyDeleted replaces the default predicate with "deletion timestamp set".
func (f *Filter) OnlyDeleted() *Filter {
	c := f.clone()
	c.mode = onlyDeleted
	return c
}

// Where appends a condition; all conditions combine with AND.
func (f *Filter) Where(query any, args ...any) *Filter {
	c := f.clone()
	c.conds = append(c.conds, condition{query: query, args: args})
	return c
}

// Apply projects the filter onto a GORM statement.
func (f *Filter) Apply(tx *gorm.DB) *gorm.DB {
	switch f.mode {
	case includeDeleted:
		tx = tx.Unscoped()
	case onlyDeleted:
		tx = tx.Unscoped().Where("deleted_at IS NOT NULL")
	}
	for _, c := range f.conds {
		tx = tx.Where(c.query, c.args...)
	}
	return tx
}

func (f *Filter) clone() *Filter {
	conds := make([]condition, len(f.conds))
	copy(conds, f.conds)
	return &Filter{mode: f.mode, conds: conds}
}
