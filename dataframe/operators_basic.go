// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package dataframe

import (
	"strings"

	"github.com/clinicalcore/ruleops"
	"github.com/clinicalcore/ruleops/vecops"
)

// comparatorValueAt returns the comparator value that applies to row i:
// the column cell when the comparator resolved to a column, otherwise
// the broadcast literal (spec §4.4).
func comparatorValueAt(cmp ComparatorValue, i int) any {
	if cmp.IsColumn {
		if i < len(cmp.Column) {
			return cmp.Column[i]
		}
		return nil
	}
	return cmp.Literal
}

// Exists reports whether Target names a column present in the table,
// broadcast to every row (spec §4.5 "Existence").
func (b *Bundle) Exists(args OperatorArgs) (ruleops.Result, error) {
	_, ok := b.targetColumn(args)
	out := make([]bool, b.Value.Rows())
	for i := range out {
		out[i] = ok
	}
	return ruleops.ColumnOf(out), nil
}

// NotExists is the complement of Exists.
func (b *Bundle) NotExists(args OperatorArgs) (ruleops.Result, error) {
	r, err := b.Exists(args)
	if err != nil {
		return r, err
	}
	return r.Not(), nil
}

func (b *Bundle) compareColumn(args OperatorArgs, cmp func(cellEmpty bool, cell, other any) bool) ruleops.Result {
	col, ok := b.targetColumn(args)
	if !ok {
		return ruleops.ColumnOf(falseColumn(b.Value.Rows()))
	}
	cmpData := b.ComparatorData(args)
	out := make([]bool, len(col))
	for i, cell := range col {
		other := comparatorValueAt(cmpData, i)
		out[i] = cmp(vecops.IsEmpty(cell), cell, other)
	}
	return ruleops.ColumnOf(out)
}

// EqualTo compares the target column to the comparator element-wise,
// excluding empty/missing target cells (spec §4.5, §8 property 5).
func (b *Bundle) EqualTo(args OperatorArgs) (ruleops.Result, error) {
	return b.compareColumn(args, func(empty bool, cell, other any) bool {
		if empty {
			return false
		}
		return vecops.Equal(cell, other, false)
	}), nil
}

// NotEqualTo is the complement of EqualTo.
func (b *Bundle) NotEqualTo(args OperatorArgs) (ruleops.Result, error) {
	r, err := b.EqualTo(args)
	return r.Not(), err
}

// EqualToCaseInsensitive is EqualTo with case-folded string comparison.
func (b *Bundle) EqualToCaseInsensitive(args OperatorArgs) (ruleops.Result, error) {
	return b.compareColumn(args, func(empty bool, cell, other any) bool {
		if empty {
			return false
		}
		return vecops.Equal(cell, other, true)
	}), nil
}

// NotEqualToCaseInsensitive is the complement of EqualToCaseInsensitive.
func (b *Bundle) NotEqualToCaseInsensitive(args OperatorArgs) (ruleops.Result, error) {
	r, err := b.EqualToCaseInsensitive(args)
	return r.Not(), err
}

func orderedCompare(cell, other any) (diffSign int, ok bool) {
	if cd, ok1 := vecops.LooksNumeric(cell); ok1 {
		if od, ok2 := vecops.LooksNumeric(other); ok2 {
			switch {
			case vecops.NumericEqual(cd, od):
				return 0, true
			case vecops.NumericGreaterThan(cd, od):
				return 1, true
			default:
				return -1, true
			}
		}
	}
	cs, os := vecops.StringOf(cell), vecops.StringOf(other)
	return strings.Compare(cs, os), true
}

// LessThan compares the target column to the comparator element-wise
// using numeric tolerance when both sides look numeric, else lexical
// string comparison.
func (b *Bundle) LessThan(args OperatorArgs) (ruleops.Result, error) {
	return b.compareColumn(args, func(_ bool, cell, other any) bool {
		sign, ok := orderedCompare(cell, other)
		return ok && sign < 0
	}), nil
}

func (b *Bundle) LessThanOrEqualTo(args OperatorArgs) (ruleops.Result, error) {
	return b.compareColumn(args, func(_ bool, cell, other any) bool {
		sign, ok := orderedCompare(cell, other)
		return ok && sign <= 0
	}), nil
}

func (b *Bundle) GreaterThan(args OperatorArgs) (ruleops.Result, error) {
	return b.compareColumn(args, func(_ bool, cell, other any) bool {
		sign, ok := orderedCompare(cell, other)
		return ok && sign > 0
	}), nil
}

func (b *Bundle) GreaterThanOrEqualTo(args OperatorArgs) (ruleops.Result, error) {
	return b.compareColumn(args, func(_ bool, cell, other any) bool {
		sign, ok := orderedCompare(cell, other)
		return ok && sign >= 0
	}), nil
}

// Empty reports whether each cell equals "" or is missing (spec §4.5
// "Emptiness").
func (b *Bundle) Empty(args OperatorArgs) (ruleops.Result, error) {
	col, ok := b.targetColumn(args)
	if !ok {
		out := make([]bool, b.Value.Rows())
		for i := range out {
			out[i] = true
		}
		return ruleops.ColumnOf(out), nil
	}
	out := make([]bool, len(col))
	for i, cell := range col {
		out[i] = vecops.IsEmpty(cell)
	}
	return ruleops.ColumnOf(out), nil
}

// NonEmpty is the complement of Empty.
func (b *Bundle) NonEmpty(args OperatorArgs) (ruleops.Result, error) {
	r, err := b.Empty(args)
	return r.Not(), err
}
