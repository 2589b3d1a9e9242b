// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package dataframe

import (
	"regexp"
	"sort"
	"strconv"

	"github.com/clinicalcore/ruleops"
	"github.com/clinicalcore/ruleops/vecops"
	"github.com/spf13/cast"
)

// groupRowIndices partitions row indices by args.Within (or a single
// group spanning the whole table when Within is empty), in first-seen
// group order (spec §4.5 "within" grouping).
func (b *Bundle) groupRowIndices(args OperatorArgs) [][]int {
	return b.groupRowIndicesBy(args.Within)
}

// groupRowIndicesBy partitions row indices by the named column's value,
// preserving first-seen group order, falling back to one whole-table
// group when groupBy is empty or unresolvable.
func (b *Bundle) groupRowIndicesBy(groupBy string) [][]int {
	n := b.Value.Rows()
	whole := make([]int, n)
	for i := range whole {
		whole[i] = i
	}
	if groupBy == "" {
		return [][]int{whole}
	}
	col, ok := b.targetColumnByName(groupBy)
	if !ok {
		return [][]int{whole}
	}
	groups := map[string][]int{}
	order := []string{}
	for i := 0; i < n; i++ {
		key := vecops.StringOf(col[i])
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], i)
	}
	out := make([][]int, 0, len(order))
	for _, k := range order {
		out = append(out, groups[k])
	}
	return out
}

// orderGroup sorts a group's row indices by args.Ordering ascending, if
// that column exists; otherwise it is left in table order.
func (b *Bundle) orderGroup(args OperatorArgs, g []int) {
	if args.Ordering == "" {
		return
	}
	col, ok := b.targetColumnByName(args.Ordering)
	if !ok {
		return
	}
	sort.SliceStable(g, func(x, y int) bool {
		sign, ok := orderedCompare(col[g[x]], col[g[y]])
		return ok && sign < 0
	})
}

// HasNextCorrespondingRecord reports, per row, whether the next row in
// its group (ordered by args.Ordering when given) has a comparator cell
// equal to this row's target cell. The last row of each group has no
// "next" row, so it carries no meaningful result (spec §4.5, §8
// property 8).
func (b *Bundle) HasNextCorrespondingRecord(args OperatorArgs) (ruleops.Result, error) {
	n := b.Value.Rows()
	target, ok := b.targetColumn(args)
	out := make([]bool, n)
	valid := make([]bool, n)
	if !ok {
		return ruleops.ColumnOfWithValidity(out, valid), nil
	}
	cmp := b.ComparatorData(args)
	groups := b.groupRowIndices(args)
	for _, g := range groups {
		b.orderGroup(args, g)
		for pos, rowIdx := range g {
			if pos == len(g)-1 {
				continue
			}
			valid[rowIdx] = true
			nextIdx := g[pos+1]
			out[rowIdx] = vecops.Equal(target[rowIdx], comparatorValueAt(cmp, nextIdx), false)
		}
	}
	return ruleops.ColumnOfWithValidity(out, valid), nil
}

func (b *Bundle) DoesNotHaveNextCorrespondingRecord(args OperatorArgs) (ruleops.Result, error) {
	r, err := b.HasNextCorrespondingRecord(args)
	return r.Not(), err
}

// PresentOnMultipleRowsWithin reports, for every row in a within-group,
// whether that group's row count exceeds min_count (args.Comparator,
// default 1). The target's own values play no part in the grouping or
// the comparison -- only the group's size matters (spec §4.5,
// operators.py's present_on_multiple_rows_within/validate_series_length).
func (b *Bundle) PresentOnMultipleRowsWithin(args OperatorArgs) (ruleops.Result, error) {
	if _, ok := b.targetColumn(args); !ok {
		return ruleops.ColumnOf(falseColumn(b.Value.Rows())), nil
	}
	minCount := 1
	if args.Comparator != nil {
		if v, err := cast.ToIntE(args.Comparator); err == nil {
			minCount = v
		}
	}
	n := b.Value.Rows()
	out := make([]bool, n)
	for _, g := range b.groupRowIndicesBy(b.ReplacePrefix(args.Within)) {
		present := len(g) > minCount
		for _, rowIdx := range g {
			out[rowIdx] = present
		}
	}
	return ruleops.ColumnOf(out), nil
}

func (b *Bundle) NotPresentOnMultipleRowsWithin(args OperatorArgs) (ruleops.Result, error) {
	r, err := b.PresentOnMultipleRowsWithin(args)
	return r.Not(), err
}

// additionalColumns discovers the repeating "<target><N>" column family
// (e.g. AEACN1, AEACN2, ...), sorted ascending by their numeric suffix
// (spec §4.5 "Additional columns").
func (b *Bundle) additionalColumns(target string) []Column {
	re := regexp.MustCompile("^" + regexp.QuoteMeta(target) + `(\d+)$`)
	type found struct {
		n   int
		col Column
	}
	var matches []found
	for _, name := range b.Value.ColumnNames() {
		m := re.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		col, ok := b.Value.Column(name)
		if !ok {
			continue
		}
		matches = append(matches, found{n, col})
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].n < matches[j].n })
	cols := make([]Column, len(matches))
	for i, f := range matches {
		cols[i] = f.col
	}
	return cols
}

// AdditionalColumnsEmpty reports, per row, whether an empty cell in the
// discovered additional-column family is followed by a non-empty one
// (empty continuing into non-empty) at any adjacent pair (spec §4.5).
func (b *Bundle) AdditionalColumnsEmpty(args OperatorArgs) (ruleops.Result, error) {
	resolved := b.ReplacePrefix(args.Target)
	cols := b.additionalColumns(resolved)
	n := b.Value.Rows()
	out := make([]bool, n)
	for i := 0; i < n; i++ {
		out[i] = hasEmptyToNonEmptyTransition(cols, i)
	}
	return ruleops.ColumnOf(out), nil
}

// AdditionalColumnsNotEmpty is the complement of AdditionalColumnsEmpty.
func (b *Bundle) AdditionalColumnsNotEmpty(args OperatorArgs) (ruleops.Result, error) {
	resolved := b.ReplacePrefix(args.Target)
	cols := b.additionalColumns(resolved)
	n := b.Value.Rows()
	out := make([]bool, n)
	for i := 0; i < n; i++ {
		out[i] = !hasEmptyToNonEmptyTransition(cols, i)
	}
	return ruleops.ColumnOf(out), nil
}

func hasEmptyToNonEmptyTransition(cols []Column, row int) bool {
	for j := 0; j+1 < len(cols); j++ {
		cellEmpty := row >= len(cols[j]) || vecops.IsEmpty(cols[j][row])
		nextEmpty := row >= len(cols[j+1]) || vecops.IsEmpty(cols[j+1][row])
		if cellEmpty && !nextEmpty {
			return true
		}
	}
	return false
}

// groupedEmptinessRows computes, for every row except each group's last
// (grouped by the comparator column, ordered by args.Ordering), whether
// target is empty; the last row of each group is excluded from the
// returned index set entirely (spec §4.5 "Grouped emptiness").
func (b *Bundle) groupedEmptinessRows(args OperatorArgs) (isEmpty []bool, counted []bool) {
	target, ok := b.targetColumn(args)
	n := b.Value.Rows()
	isEmpty = make([]bool, n)
	counted = make([]bool, n)
	if !ok {
		return isEmpty, counted
	}
	groupBy, _ := args.Comparator.(string)
	groups := b.groupRowIndicesBy(b.ReplacePrefix(groupBy))
	for _, g := range groups {
		b.orderGroup(args, g)
		for pos, rowIdx := range g {
			if pos == len(g)-1 {
				continue
			}
			counted[rowIdx] = true
			isEmpty[rowIdx] = vecops.IsEmpty(target[rowIdx])
		}
	}
	return isEmpty, counted
}

func (b *Bundle) persistAuxiliary(base string, col []bool) {
	name := b.Value.UniqueColumnName(base)
	vals := make(Column, len(col))
	for i, v := range col {
		vals[i] = v
	}
	_ = b.Value.AddColumn(name, vals)
}

// EmptyWithinExceptLastRow reports, aggregated across the whole call,
// whether any row (other than a group's last) has an empty target cell
// (spec §4.5). The per-row detail -- empty for a counted row, true
// (exempt) for a group's last row -- is persisted as a fresh auxiliary
// column, spec §5's one documented operator side effect.
func (b *Bundle) EmptyWithinExceptLastRow(args OperatorArgs) (ruleops.Result, error) {
	isEmpty, counted := b.groupedEmptinessRows(args)
	perRow := make([]bool, len(isEmpty))
	any := false
	for i := range perRow {
		if !counted[i] {
			perRow[i] = true
			continue
		}
		perRow[i] = isEmpty[i]
		if isEmpty[i] {
			any = true
		}
	}
	b.persistAuxiliary("empty_within_except_last_row", perRow)
	return ruleops.BoolOf(any), nil
}

// NonEmptyWithinExceptLastRow is EmptyWithinExceptLastRow's inverted
// companion: true iff every such cell is non-empty (spec §4.5).
func (b *Bundle) NonEmptyWithinExceptLastRow(args OperatorArgs) (ruleops.Result, error) {
	isEmpty, counted := b.groupedEmptinessRows(args)
	perRow := make([]bool, len(isEmpty))
	all := true
	for i := range perRow {
		if !counted[i] {
			perRow[i] = true
			continue
		}
		perRow[i] = !isEmpty[i]
		if isEmpty[i] {
			all = false
		}
	}
	b.persistAuxiliary("non_empty_within_except_last_row", perRow)
	return ruleops.BoolOf(all), nil
}

// ReferencesCorrectCodelist reports whether the codelist id named by the
// comparator, on each row, is one of target's registered codelists in
// ColumnCodelistMap (falling back to the generic column name, spec §3).
// A target column unknown to the map passes every row (spec §4.5).
func (b *Bundle) ReferencesCorrectCodelist(args OperatorArgs) (ruleops.Result, error) {
	resolved := b.ReplacePrefix(args.Target)
	allowed, ok := b.ColumnCodelistMap[resolved]
	if !ok {
		if generic, ok2 := b.genericColumnName(resolved); ok2 {
			allowed, ok = b.ColumnCodelistMap[generic]
		}
	}
	n := b.Value.Rows()
	out := make([]bool, n)
	if !ok {
		for i := range out {
			out[i] = true
		}
		return ruleops.ColumnOf(out), nil
	}
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		allowedSet[a] = struct{}{}
	}
	cmp := b.ComparatorData(args)
	for i := 0; i < n; i++ {
		name := vecops.StringOf(comparatorValueAt(cmp, i))
		_, out[i] = allowedSet[name]
	}
	return ruleops.ColumnOf(out), nil
}

func (b *Bundle) DoesNotReferenceCorrectCodelist(args OperatorArgs) (ruleops.Result, error) {
	r, err := b.ReferencesCorrectCodelist(args)
	return r.Not(), err
}

// lookupCodelistTerms searches every registered codelist-term map for
// name, in declaration order (spec §3 CodelistTermMaps).
func (b *Bundle) lookupCodelistTerms(name string) (CodelistTerms, bool) {
	for _, m := range b.CodelistTermMaps {
		if ct, ok := m[name]; ok {
			return ct, true
		}
	}
	return CodelistTerms{}, false
}

// UsesValidCodelistTerms reports, per row, whether the target cell names
// a codelist id that is either extensible or whose AllowedTerms contains
// every term in the comparator cell's term list. A codelist id absent
// from every registered CodelistTermMaps entry passes (spec §3, §4.5,
// §8 scenario S6).
func (b *Bundle) UsesValidCodelistTerms(args OperatorArgs) (ruleops.Result, error) {
	col, ok := b.targetColumn(args)
	if !ok {
		return ruleops.ColumnOf(falseColumn(b.Value.Rows())), nil
	}
	cmp := b.ComparatorData(args)
	out := make([]bool, len(col))
	for i, cell := range col {
		name := vecops.StringOf(cell)
		ct, ok := b.lookupCodelistTerms(name)
		if !ok {
			out[i] = true
			continue
		}
		if ct.Extensible {
			out[i] = true
			continue
		}
		terms := vecops.ToSlice(comparatorValueAt(cmp, i))
		allPresent := true
		for _, term := range terms {
			if _, present := ct.AllowedTerms[vecops.StringOf(term)]; !present {
				allPresent = false
				break
			}
		}
		out[i] = allPresent
	}
	return ruleops.ColumnOf(out), nil
}

func (b *Bundle) DoesNotUseValidCodelistTerms(args OperatorArgs) (ruleops.Result, error) {
	r, err := b.UsesValidCodelistTerms(args)
	return r.Not(), err
}

// uniformColumn reports whether every cell of target renders identically
// (spec §4.5 "Uniformity", aggregate).
func (b *Bundle) uniformColumn(args OperatorArgs) bool {
	col, ok := b.targetColumn(args)
	if !ok || len(col) == 0 {
		return true
	}
	first := vecops.StringOf(col[0])
	for _, v := range col[1:] {
		if vecops.StringOf(v) != first {
			return false
		}
	}
	return true
}

// HasSameValues broadcasts a single aggregate boolean -- whether every
// target cell renders identically -- to a per-row column (spec §4.5).
func (b *Bundle) HasSameValues(args OperatorArgs) (ruleops.Result, error) {
	same := b.uniformColumn(args)
	out := make([]bool, b.Value.Rows())
	for i := range out {
		out[i] = same
	}
	return ruleops.ColumnOf(out), nil
}

func (b *Bundle) HasDifferentValues(args OperatorArgs) (ruleops.Result, error) {
	r, err := b.HasSameValues(args)
	return r.Not(), err
}
