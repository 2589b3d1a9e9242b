// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package dataframe

import (
	"fmt"
	"sort"
)

// Column is one named column of a Table: a homogeneous-length sequence
// of cell values. A cell may be a scalar, a string, a list, or a set
// (spec §3: DataframeBundle.value).
type Column []any

// Table is a columnar in-memory table: named columns sharing one row
// count. Table is the canonical internal form of a DataframeBundle's
// `value` field.
type Table struct {
	columns map[string]Column
	order   []string
	rows    int
}

// NewTable builds a Table from named columns. Every column must have
// the same length; that length becomes the table's row count.
func NewTable(data map[string]Column) (*Table, error) {
	t := &Table{columns: make(map[string]Column, len(data))}
	rows := -1
	// Deterministic column order regardless of map iteration order is not
	// required by the spec, but keeps output reproducible for callers
	// that enumerate columns (e.g. additional-column continuity).
	names := make([]string, 0, len(data))
	for name := range data {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		col := data[name]
		if rows == -1 {
			rows = len(col)
		} else if len(col) != rows {
			return nil, fmt.Errorf("dataframe: column %q has %d rows, want %d", name, len(col), rows)
		}
		t.columns[name] = col
		t.order = append(t.order, name)
	}
	if rows == -1 {
		rows = 0
	}
	t.rows = rows
	return t, nil
}

// Rows reports the table's row count.
func (t *Table) Rows() int { return t.rows }

// Has reports whether name is a column of the table.
func (t *Table) Has(name string) bool {
	_, ok := t.columns[name]
	return ok
}

// Column returns the named column and whether it exists.
func (t *Table) Column(name string) (Column, bool) {
	col, ok := t.columns[name]
	return col, ok
}

// ColumnNames returns every column name, in a stable order.
func (t *Table) ColumnNames() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// AddColumn adds a new, uniquely-named auxiliary column to the table.
// It is the one documented mutation dataframe operators may perform
// (spec §5): existing columns are never overwritten or mutated.
func (t *Table) AddColumn(name string, col Column) error {
	if t.Has(name) {
		return fmt.Errorf("dataframe: column %q already exists", name)
	}
	if len(col) != t.rows {
		return fmt.Errorf("dataframe: auxiliary column %q has %d rows, want %d", name, len(col), t.rows)
	}
	t.columns[name] = col
	t.order = append(t.order, name)
	return nil
}

// UniqueColumnName returns a column name derived from base that does not
// already exist in the table, used by the grouped-emptiness operators to
// register their per-row auxiliary column (spec §4.5, §9).
func (t *Table) UniqueColumnName(base string) string {
	if !t.Has(base) {
		return base
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s_%d", base, i)
		if !t.Has(candidate) {
			return candidate
		}
	}
}
