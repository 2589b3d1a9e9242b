// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package dataframe

import (
	"fmt"
	"strings"

	"github.com/clinicalcore/ruleops"
	"github.com/clinicalcore/ruleops/vecops"
	"golang.org/x/exp/slices"
)

func columnHasIterableCells(col Column) bool {
	for _, cell := range col {
		if vecops.IsIterable(cell) {
			return true
		}
	}
	return false
}

func memberOf(items []any, x any, caseInsensitive bool) bool {
	if caseInsensitive {
		return vecops.ContainsCI(items, x)
	}
	return vecops.ContainsExact(items, x)
}

// containedByFamily implements is_contained_by / is_not_contained_by and
// their case-insensitive variants (spec §4.5 "Set membership").
func (b *Bundle) containedByFamily(args OperatorArgs, caseInsensitive bool) ruleops.Result {
	col, ok := b.targetColumn(args)
	if !ok {
		return ruleops.ColumnOf(falseColumn(b.Value.Rows()))
	}
	cmp := b.ComparatorData(args)
	out := make([]bool, len(col))
	if cmp.IsColumn && columnHasIterableCells(cmp.Column) {
		for i, cell := range col {
			items := vecops.ToSlice(comparatorValueAt(cmp, i))
			out[i] = memberOf(items, cell, caseInsensitive)
		}
		return ruleops.ColumnOf(out)
	}
	var items []any
	if cmp.IsColumn {
		items = cmp.Column
	} else {
		items = vecops.ToSlice(cmp.Literal)
	}
	for i, cell := range col {
		out[i] = memberOf(items, cell, caseInsensitive)
	}
	return ruleops.ColumnOf(out)
}

func (b *Bundle) IsContainedBy(args OperatorArgs) (ruleops.Result, error) {
	return b.containedByFamily(args, false), nil
}

func (b *Bundle) IsNotContainedBy(args OperatorArgs) (ruleops.Result, error) {
	return b.containedByFamily(args, false).Not(), nil
}

func (b *Bundle) IsContainedByCaseInsensitive(args OperatorArgs) (ruleops.Result, error) {
	return b.containedByFamily(args, true), nil
}

func (b *Bundle) IsNotContainedByCaseInsensitive(args OperatorArgs) (ruleops.Result, error) {
	return b.containedByFamily(args, true).Not(), nil
}

// resolveComparatorColumns resolves a comparator that names one or more
// grouping columns: a single column (already resolved), a literal
// column-name string, or a literal list of column-name strings.
func (b *Bundle) resolveComparatorColumns(cmp ComparatorValue) []Column {
	if cmp.IsColumn {
		return []Column{cmp.Column}
	}
	switch v := cmp.Literal.(type) {
	case string:
		if col, ok := b.Value.Column(b.ReplacePrefix(v)); ok {
			return []Column{col}
		}
		return nil
	case []any:
		var cols []Column
		for _, item := range v {
			if name, ok := item.(string); ok {
				if col, ok2 := b.Value.Column(b.ReplacePrefix(name)); ok2 {
					cols = append(cols, col)
				}
			}
		}
		return cols
	default:
		return nil
	}
}

func groupKeys(target Column, extra []Column) []string {
	keys := make([]string, len(target))
	for i := range target {
		var sb strings.Builder
		sb.WriteString(vecops.StringOf(target[i]))
		for _, col := range extra {
			sb.WriteByte('\x1f')
			if i < len(col) {
				sb.WriteString(vecops.StringOf(col[i]))
			}
		}
		keys[i] = sb.String()
	}
	return keys
}

// IsUniqueSet groups rows by target combined with comparator (a column
// or a list of columns); a row is true iff its group has size <= 1
// (spec §4.5 "Set uniqueness").
func (b *Bundle) IsUniqueSet(args OperatorArgs) (ruleops.Result, error) {
	target, ok := b.targetColumn(args)
	if !ok {
		out := make([]bool, b.Value.Rows())
		for i := range out {
			out[i] = true
		}
		return ruleops.ColumnOf(out), nil
	}
	cmp := b.ComparatorData(args)
	extra := b.resolveComparatorColumns(cmp)
	keys := groupKeys(target, extra)
	counts := make(map[string]int, len(keys))
	for _, k := range keys {
		counts[k]++
	}
	out := make([]bool, len(keys))
	for i, k := range keys {
		out[i] = counts[k] <= 1
	}
	return ruleops.ColumnOf(out), nil
}

func (b *Bundle) IsNotUniqueSet(args OperatorArgs) (ruleops.Result, error) {
	r, err := b.IsUniqueSet(args)
	return r.Not(), err
}

// IsUniqueRelationship checks one-to-one integrity between target and
// comparator: after removing exact duplicate pairs, neither side may
// repeat (spec §4.5, §8 property 6, scenario S4).
func (b *Bundle) IsUniqueRelationship(args OperatorArgs) (ruleops.Result, error) {
	target, okT := b.targetColumn(args)
	cmp := b.ComparatorData(args)
	cols := b.resolveComparatorColumns(cmp)
	if !okT || len(cols) == 0 {
		out := make([]bool, b.Value.Rows())
		for i := range out {
			out[i] = true
		}
		return ruleops.ColumnOf(out), nil
	}
	comparatorCol := cols[0]
	n := len(target)
	type pair struct{ a, c string }
	pairs := make([]pair, n)
	for i := range target {
		c := ""
		if i < len(comparatorCol) {
			c = vecops.StringOf(comparatorCol[i])
		}
		pairs[i] = pair{vecops.StringOf(target[i]), c}
	}
	unique := make(map[pair]struct{}, n)
	for _, p := range pairs {
		unique[p] = struct{}{}
	}
	leftCount := map[string]int{}
	rightCount := map[string]int{}
	for p := range unique {
		leftCount[p.a]++
		rightCount[p.c]++
	}
	out := make([]bool, n)
	for i, p := range pairs {
		violation := leftCount[p.a] > 1 || rightCount[p.c] > 1
		out[i] = !violation
	}
	return ruleops.ColumnOf(out), nil
}

func (b *Bundle) IsNotUniqueRelationship(args OperatorArgs) (ruleops.Result, error) {
	r, err := b.IsUniqueRelationship(args)
	return r.Not(), err
}

// IsOrderedSet groups rows by comparator (a single column) and checks
// that target's values, collected in listing order per group, are
// already non-decreasing (spec §4.5 "Ordering", aggregate). A list
// comparator is rejected with ErrInvalidArgument.
func (b *Bundle) IsOrderedSet(args OperatorArgs) (ruleops.Result, error) {
	const op = "dataframe.Bundle.IsOrderedSet"
	target, okT := b.targetColumn(args)
	cmp := b.ComparatorData(args)
	if !cmp.IsColumn && vecops.IsIterable(cmp.Literal) {
		return ruleops.Result{}, fmt.Errorf("%s: %w: comparator must name a single column, not a list", op, ruleops.ErrInvalidArgument)
	}
	cols := b.resolveComparatorColumns(cmp)
	if !okT || len(cols) != 1 {
		return ruleops.BoolOf(true), nil
	}
	groupCol := cols[0]
	groups := map[string][]any{}
	order := []string{}
	for i := range target {
		key := vecops.StringOf(groupCol[i])
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], target[i])
	}
	for _, key := range order {
		vals := groups[key]
		for i := 1; i < len(vals); i++ {
			sign, ok := orderedCompare(vals[i-1], vals[i])
			if ok && sign > 0 {
				return ruleops.BoolOf(false), nil
			}
		}
	}
	return ruleops.BoolOf(true), nil
}

func (b *Bundle) IsNotOrderedSet(args OperatorArgs) (ruleops.Result, error) {
	r, err := b.IsOrderedSet(args)
	return r.Not(), err
}

// IsOrderedBy reports, per row, whether the target column equals its own
// stable ascending reordering (spec §4.5, §8 property 7).
func (b *Bundle) IsOrderedBy(args OperatorArgs) (ruleops.Result, error) {
	target, ok := b.targetColumn(args)
	if !ok {
		return ruleops.ColumnOf(falseColumn(b.Value.Rows())), nil
	}
	sorted := slices.Clone(target)
	slices.SortStableFunc(sorted, func(a, b any) int {
		sign, ok := orderedCompare(a, b)
		if !ok {
			return 0
		}
		return sign
	})
	same := true
	for i := range target {
		if vecops.StringOf(target[i]) != vecops.StringOf(sorted[i]) {
			same = false
			break
		}
	}
	out := make([]bool, len(target))
	for i := range out {
		out[i] = same
	}
	return ruleops.ColumnOf(out), nil
}

// ContainsAll reports whether every distinct value of comparator (a
// literal list or a column's unique set) appears among target's
// distinct values (spec §4.5 "Contains-all", aggregate).
func (b *Bundle) ContainsAll(args OperatorArgs) (ruleops.Result, error) {
	target, ok := b.targetColumn(args)
	if !ok {
		return ruleops.BoolOf(false), nil
	}
	cmp := b.ComparatorData(args)
	var comparatorValues []any
	if cmp.IsColumn {
		comparatorValues = cmp.Column
	} else {
		comparatorValues = vecops.ToSlice(cmp.Literal)
	}
	targetSet := buildStringSet(target)
	for _, v := range distinct(comparatorValues) {
		if _, ok := targetSet[vecops.StringOf(v)]; !ok {
			return ruleops.BoolOf(false), nil
		}
	}
	return ruleops.BoolOf(true), nil
}

func (b *Bundle) NotContainsAll(args OperatorArgs) (ruleops.Result, error) {
	r, err := b.ContainsAll(args)
	return r.Not(), err
}

func distinct(items []any) []any {
	seen := map[string]struct{}{}
	out := make([]any, 0, len(items))
	for _, item := range items {
		key := vecops.StringOf(item)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	return out
}
