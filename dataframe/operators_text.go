// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package dataframe

import (
	"regexp"
	"strings"

	"github.com/clinicalcore/ruleops"
	"github.com/clinicalcore/ruleops/vecops"
)

func buildStringSet(col Column) map[string]struct{} {
	set := make(map[string]struct{}, len(col))
	for _, cell := range col {
		set[vecops.StringOf(cell)] = struct{}{}
	}
	return set
}

// containsFamily implements the contains / contains_case_insensitive
// special-case dispatch described in spec §4.5: set-membership
// element-wise when the target cell is itself an iterable; membership
// of the comparator cell in the target column's value set when the
// comparator is a column; plain substring containment otherwise.
func (b *Bundle) containsFamily(args OperatorArgs, caseInsensitive bool) ruleops.Result {
	col, ok := b.targetColumn(args)
	if !ok {
		return ruleops.ColumnOf(falseColumn(b.Value.Rows()))
	}
	cmp := b.ComparatorData(args)
	out := make([]bool, len(col))
	var targetSet map[string]struct{}
	if cmp.IsColumn {
		targetSet = buildStringSet(col)
	}
	for i, cell := range col {
		switch {
		case vecops.IsIterable(cell):
			other := comparatorValueAt(cmp, i)
			if caseInsensitive {
				out[i] = vecops.ContainsCI(vecops.ToSlice(cell), other)
			} else {
				out[i] = vecops.ContainsExact(vecops.ToSlice(cell), other)
			}
		case cmp.IsColumn:
			out[i] = setHas(targetSet, comparatorValueAt(cmp, i), caseInsensitive)
		default:
			cellStr, otherStr := vecops.StringOf(cell), vecops.StringOf(cmp.Literal)
			if caseInsensitive {
				out[i] = strings.Contains(strings.ToLower(cellStr), strings.ToLower(otherStr))
			} else {
				out[i] = strings.Contains(cellStr, otherStr)
			}
		}
	}
	return ruleops.ColumnOf(out)
}

func setHas(set map[string]struct{}, v any, caseInsensitive bool) bool {
	s := vecops.StringOf(v)
	if !caseInsensitive {
		_, ok := set[s]
		return ok
	}
	for member := range set {
		if strings.EqualFold(member, s) {
			return true
		}
	}
	return false
}

func (b *Bundle) Contains(args OperatorArgs) (ruleops.Result, error) {
	return b.containsFamily(args, false), nil
}

func (b *Bundle) ContainsCaseInsensitive(args OperatorArgs) (ruleops.Result, error) {
	return b.containsFamily(args, true), nil
}

func (b *Bundle) DoesNotContain(args OperatorArgs) (ruleops.Result, error) {
	return b.containsFamily(args, false).Not(), nil
}

func (b *Bundle) DoesNotContainCaseInsensitive(args OperatorArgs) (ruleops.Result, error) {
	return b.containsFamily(args, true).Not(), nil
}

func (b *Bundle) StartsWith(args OperatorArgs) (ruleops.Result, error) {
	return b.compareColumn(args, func(_ bool, cell, other any) bool {
		return strings.HasPrefix(vecops.StringOf(cell), vecops.StringOf(other))
	}), nil
}

func (b *Bundle) EndsWith(args OperatorArgs) (ruleops.Result, error) {
	return b.compareColumn(args, func(_ bool, cell, other any) bool {
		return strings.HasSuffix(vecops.StringOf(cell), vecops.StringOf(other))
	}), nil
}

func (b *Bundle) regexFamily(args OperatorArgs, extract func(s string) string) (ruleops.Result, error) {
	col, ok := b.targetColumn(args)
	if !ok {
		return ruleops.ColumnOf(falseColumn(b.Value.Rows())), nil
	}
	cmp := b.ComparatorData(args)
	out := make([]bool, len(col))
	var compiled *regexp.Regexp
	if !cmp.IsColumn {
		re, err := regexp.Compile(vecops.StringOf(cmp.Literal))
		if err != nil {
			return ruleops.Result{}, err
		}
		compiled = re
	}
	for i, cell := range col {
		re := compiled
		if re == nil {
			pattern := vecops.StringOf(comparatorValueAt(cmp, i))
			var err error
			if re, err = regexp.Compile(pattern); err != nil {
				return ruleops.Result{}, err
			}
		}
		out[i] = re.MatchString(extract(vecops.StringOf(cell)))
	}
	return ruleops.ColumnOf(out), nil
}

func (b *Bundle) MatchesRegex(args OperatorArgs) (ruleops.Result, error) {
	return b.regexFamily(args, func(s string) string { return s })
}

func (b *Bundle) NotMatchesRegex(args OperatorArgs) (ruleops.Result, error) {
	r, err := b.MatchesRegex(args)
	return r.Not(), err
}

// PrefixMatchesRegex applies the regex to the first args.Prefix code
// points of each cell (spec §4.5).
func (b *Bundle) PrefixMatchesRegex(args OperatorArgs) (ruleops.Result, error) {
	return b.regexFamily(args, func(s string) string { return vecops.FirstNRunes(s, args.Prefix) })
}

// SuffixMatchesRegex applies the regex to the last args.Suffix code
// points of each cell (spec §4.5).
func (b *Bundle) SuffixMatchesRegex(args OperatorArgs) (ruleops.Result, error) {
	return b.regexFamily(args, func(s string) string { return vecops.LastNRunes(s, args.Suffix) })
}

func (b *Bundle) NotPrefixMatchesRegex(args OperatorArgs) (ruleops.Result, error) {
	r, err := b.PrefixMatchesRegex(args)
	return r.Not(), err
}

func (b *Bundle) NotSuffixMatchesRegex(args OperatorArgs) (ruleops.Result, error) {
	r, err := b.SuffixMatchesRegex(args)
	return r.Not(), err
}

// Length family: operates on the rune/element length of each cell.

func (b *Bundle) lengthFamily(args OperatorArgs, cmpFn func(length, threshold int) bool) (ruleops.Result, error) {
	col, ok := b.targetColumn(args)
	if !ok {
		return ruleops.ColumnOf(falseColumn(b.Value.Rows())), nil
	}
	cmp := b.ComparatorData(args)
	out := make([]bool, len(col))
	for i, cell := range col {
		threshold := lengthThresholdAt(cmp, i)
		out[i] = cmpFn(vecops.Length(cell), threshold)
	}
	return ruleops.ColumnOf(out), nil
}

func lengthThresholdAt(cmp ComparatorValue, i int) int {
	if cmp.IsColumn {
		return vecops.Length(comparatorValueAt(cmp, i))
	}
	if d, ok := vecops.LooksNumeric(cmp.Literal); ok {
		f, _ := d.Float64()
		return int(f)
	}
	return vecops.Length(cmp.Literal)
}

func (b *Bundle) HasEqualLength(args OperatorArgs) (ruleops.Result, error) {
	return b.lengthFamily(args, func(l, t int) bool { return l == t })
}

func (b *Bundle) HasNotEqualLength(args OperatorArgs) (ruleops.Result, error) {
	r, err := b.HasEqualLength(args)
	return r.Not(), err
}

func (b *Bundle) LongerThan(args OperatorArgs) (ruleops.Result, error) {
	return b.lengthFamily(args, func(l, t int) bool { return l > t })
}

func (b *Bundle) LongerThanOrEqualTo(args OperatorArgs) (ruleops.Result, error) {
	return b.lengthFamily(args, func(l, t int) bool { return l >= t })
}

func (b *Bundle) ShorterThan(args OperatorArgs) (ruleops.Result, error) {
	return b.lengthFamily(args, func(l, t int) bool { return l < t })
}

func (b *Bundle) ShorterThanOrEqualTo(args OperatorArgs) (ruleops.Result, error) {
	return b.lengthFamily(args, func(l, t int) bool { return l <= t })
}
