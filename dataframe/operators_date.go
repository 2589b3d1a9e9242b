// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package dataframe

import (
	"github.com/clinicalcore/ruleops"
	"github.com/clinicalcore/ruleops/vecops"
)

// InvalidDate reports whether each target cell fails to parse as a date
// (spec §4.5 "Date validity").
func (b *Bundle) InvalidDate(args OperatorArgs) (ruleops.Result, error) {
	col, ok := b.targetColumn(args)
	if !ok {
		return ruleops.ColumnOf(falseColumn(b.Value.Rows())), nil
	}
	out := make([]bool, len(col))
	for i, cell := range col {
		out[i] = !vecops.ParseDate(vecops.StringOf(cell)).Valid
	}
	return ruleops.ColumnOf(out), nil
}

// IsCompleteDate reports whether every component (year through second)
// was present in the parsed cell.
func (b *Bundle) IsCompleteDate(args OperatorArgs) (ruleops.Result, error) {
	col, ok := b.targetColumn(args)
	if !ok {
		return ruleops.ColumnOf(falseColumn(b.Value.Rows())), nil
	}
	out := make([]bool, len(col))
	for i, cell := range col {
		out[i] = vecops.ParseDate(vecops.StringOf(cell)).Complete()
	}
	return ruleops.ColumnOf(out), nil
}

// IsIncompleteDate is the complement of IsCompleteDate among parseable
// dates: an unparseable cell is neither complete nor incomplete, so it
// reports false here (use InvalidDate to detect that case).
func (b *Bundle) IsIncompleteDate(args OperatorArgs) (ruleops.Result, error) {
	col, ok := b.targetColumn(args)
	if !ok {
		return ruleops.ColumnOf(falseColumn(b.Value.Rows())), nil
	}
	out := make([]bool, len(col))
	for i, cell := range col {
		dp := vecops.ParseDate(vecops.StringOf(cell))
		out[i] = dp.Valid && !dp.Complete()
	}
	return ruleops.ColumnOf(out), nil
}

// dateComponentOrder is the precedence used to compare two parsed dates
// as a whole when args.DateComponent is empty.
var dateComponentOrder = []string{"year", "month", "day", "hour", "minute", "second"}

// dateCompare orders two parsed dates component-by-component; components
// missing on both sides are skipped, a component present on only one
// side makes the dates incomparable.
func dateCompare(a, b vecops.DateParts) (sign int, ok bool) {
	if !a.Valid || !b.Valid {
		return 0, false
	}
	for _, name := range dateComponentOrder {
		av, aok := a.Component(name)
		bv, bok := b.Component(name)
		if aok != bok {
			return 0, false
		}
		if !aok {
			continue
		}
		switch {
		case av < bv:
			return -1, true
		case av > bv:
			return 1, true
		}
	}
	return 0, true
}

// dateComponentCompare compares a single named component of two parsed
// dates.
func dateComponentCompare(a, b vecops.DateParts, component string) (sign int, ok bool) {
	av, aok := a.Component(component)
	bv, bok := b.Component(component)
	if !aok || !bok {
		return 0, false
	}
	switch {
	case av < bv:
		return -1, true
	case av > bv:
		return 1, true
	default:
		return 0, true
	}
}

func (b *Bundle) dateFamily(args OperatorArgs, accept func(sign int, ok bool) bool) (ruleops.Result, error) {
	col, ok := b.targetColumn(args)
	if !ok {
		return ruleops.ColumnOf(falseColumn(b.Value.Rows())), nil
	}
	cmp := b.ComparatorData(args)
	out := make([]bool, len(col))
	for i, cell := range col {
		left := vecops.ParseDate(vecops.StringOf(cell))
		right := vecops.ParseDate(vecops.StringOf(comparatorValueAt(cmp, i)))
		var sign int
		var cok bool
		if args.DateComponent != "" {
			sign, cok = dateComponentCompare(left, right, args.DateComponent)
		} else {
			sign, cok = dateCompare(left, right)
		}
		out[i] = accept(sign, cok)
	}
	return ruleops.ColumnOf(out), nil
}

func (b *Bundle) DateEqualTo(args OperatorArgs) (ruleops.Result, error) {
	return b.dateFamily(args, func(sign int, ok bool) bool { return ok && sign == 0 })
}

func (b *Bundle) DateNotEqualTo(args OperatorArgs) (ruleops.Result, error) {
	r, err := b.DateEqualTo(args)
	return r.Not(), err
}

func (b *Bundle) DateLessThan(args OperatorArgs) (ruleops.Result, error) {
	return b.dateFamily(args, func(sign int, ok bool) bool { return ok && sign < 0 })
}

func (b *Bundle) DateLessThanOrEqualTo(args OperatorArgs) (ruleops.Result, error) {
	return b.dateFamily(args, func(sign int, ok bool) bool { return ok && sign <= 0 })
}

func (b *Bundle) DateGreaterThan(args OperatorArgs) (ruleops.Result, error) {
	return b.dateFamily(args, func(sign int, ok bool) bool { return ok && sign > 0 })
}

func (b *Bundle) DateGreaterThanOrEqualTo(args OperatorArgs) (ruleops.Result, error) {
	return b.dateFamily(args, func(sign int, ok bool) bool { return ok && sign >= 0 })
}
