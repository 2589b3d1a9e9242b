// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package dataframe

import (
	"fmt"
	"strings"

	"github.com/clinicalcore/ruleops/vecops"
)

// RowPredicate evaluates a row-level condition against a table, used by
// ValueLevelMetadata records (spec §3's VLM filter/type_check/length_check).
type RowPredicate func(row int, t *Table) bool

// VLMRecord carries one value-level-metadata entry (spec §3).
type VLMRecord struct {
	Filter      RowPredicate
	TypeCheck   RowPredicate
	LengthCheck RowPredicate
}

// CodelistTerms is one codelist's allowed-terms entry (spec §3).
type CodelistTerms struct {
	Extensible   bool
	AllowedTerms map[string]struct{}
}

// RelationshipData is the external reference-integrity map (spec §3):
// key -> set of permitted related values, nested one level for
// context-qualified references. A leaf value is a set (see asSet); an
// intermediate value is another RelationshipData keyed by context.
type RelationshipData map[string]any

// Bundle is the canonical internal form of a DataframeBundle (spec §3):
// a Table plus the reference metadata its operators consult. Bundles
// may be shared across many operator calls; operators must not mutate
// columns that existed at construction (they may add uniquely-named
// auxiliary columns, spec §5).
type Bundle struct {
	Value              *Table
	ColumnPrefixMap    map[string]string
	RelationshipData   RelationshipData
	ValueLevelMetadata []VLMRecord
	ColumnCodelistMap  map[string][]string
	CodelistTermMaps   []map[string]CodelistTerms
}

// NewBundle constructs a Bundle. Only Value is required (spec §6); every
// other field defaults to empty.
func NewBundle(value *Table, opts ...BundleOption) (*Bundle, error) {
	if value == nil {
		return nil, fmt.Errorf("dataframe: NewBundle requires a non-nil value table")
	}
	b := &Bundle{
		Value:             value,
		ColumnPrefixMap:   map[string]string{},
		RelationshipData:  RelationshipData{},
		ColumnCodelistMap: map[string][]string{},
	}
	for _, o := range opts {
		if err := o(b); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// BundleOption configures an optional Bundle field at construction.
type BundleOption func(*Bundle) error

func WithColumnPrefixMap(m map[string]string) BundleOption {
	return func(b *Bundle) error {
		b.ColumnPrefixMap = m
		return nil
	}
}

func WithRelationshipData(m RelationshipData) BundleOption {
	return func(b *Bundle) error {
		b.RelationshipData = m
		return nil
	}
}

func WithValueLevelMetadata(records []VLMRecord) BundleOption {
	return func(b *Bundle) error {
		b.ValueLevelMetadata = records
		return nil
	}
}

func WithColumnCodelistMap(m map[string][]string) BundleOption {
	return func(b *Bundle) error {
		b.ColumnCodelistMap = m
		return nil
	}
}

func WithCodelistTermMaps(maps []map[string]CodelistTerms) BundleOption {
	return func(b *Bundle) error {
		b.CodelistTermMaps = maps
		return nil
	}
}

// ReplacePrefix rewrites a leading generic token in name (e.g. "--") to
// its concrete domain prefix, per ColumnPrefixMap (spec §3, §4.4 rule 1).
// Column-name arguments always go through this; comparator arguments do
// too, unless the caller marks them literal.
func (b *Bundle) ReplacePrefix(name string) string {
	for token, prefix := range b.ColumnPrefixMap {
		if token != "" && strings.HasPrefix(name, token) {
			return prefix + strings.TrimPrefix(name, token)
		}
	}
	return name
}

// genericColumnName reverses ReplacePrefix: given a concrete column name,
// returns the generic form a codelist map might key on instead (used by
// references_correct_codelist's prefix fallback, spec §4.5).
func (b *Bundle) genericColumnName(concrete string) (string, bool) {
	for token, prefix := range b.ColumnPrefixMap {
		if prefix != "" && strings.HasPrefix(concrete, prefix) {
			return token + strings.TrimPrefix(concrete, prefix), true
		}
	}
	return "", false
}

// ComparatorValue is the resolved shape of a dataframe operator's
// comparator argument (spec §4.4 rule 2-3): either a table column
// (per-row alignment) or a literal value/list (broadcast across rows).
type ComparatorValue struct {
	IsColumn bool
	Column   Column
	Literal  any
}

// ComparatorData resolves args.Comparator per spec §4.4's
// get_comparator_data: the literal itself when ValueIsLiteral, else the
// column if Comparator names one (after prefix rewriting), else falls
// back to treating Comparator as a literal.
func (b *Bundle) ComparatorData(args OperatorArgs) ComparatorValue {
	if !args.ValueIsLiteral {
		if name, ok := args.Comparator.(string); ok {
			resolved := b.ReplacePrefix(name)
			if col, ok := b.Value.Column(resolved); ok {
				return ComparatorValue{IsColumn: true, Column: col}
			}
		}
	}
	return ComparatorValue{Literal: args.Comparator}
}

// targetColumn resolves args.Target through ReplacePrefix and looks it
// up; the bool reports whether the column exists (spec §7: a missing
// column is not an error).
func (b *Bundle) targetColumn(args OperatorArgs) (Column, bool) {
	return b.Value.Column(b.ReplacePrefix(args.Target))
}

// asSet normalizes a RelationshipData leaf value into a string set.
func asSet(v any) (map[string]struct{}, bool) {
	switch t := v.(type) {
	case map[string]struct{}:
		return t, true
	case []string:
		out := make(map[string]struct{}, len(t))
		for _, s := range t {
			out[s] = struct{}{}
		}
		return out, true
	case []any:
		out := make(map[string]struct{}, len(t))
		for _, s := range t {
			out[vecops.StringOf(s)] = struct{}{}
		}
		return out, true
	default:
		return nil, false
	}
}

// asNestedRelationshipData normalizes a RelationshipData intermediate
// (context-qualified) node.
func asNestedRelationshipData(v any) (RelationshipData, bool) {
	switch t := v.(type) {
	case RelationshipData:
		return t, true
	case map[string]any:
		return RelationshipData(t), true
	default:
		return nil, false
	}
}

// memberOfSet reports candidate's membership in set, trying both string
// and numeric equality (spec §4.5 is_valid_relationship: "with
// numeric/string coercions tried").
func memberOfSet(set map[string]struct{}, candidate any) bool {
	if _, ok := set[vecops.StringOf(candidate)]; ok {
		return true
	}
	cd, ok := vecops.LooksNumeric(candidate)
	if !ok {
		return false
	}
	for member := range set {
		if md, ok := vecops.LooksNumeric(member); ok && vecops.NumericEqual(cd, md) {
			return true
		}
	}
	return false
}

func falseColumn(n int) []bool {
	return make([]bool, n)
}
