// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package dataframe

import (
	"github.com/clinicalcore/ruleops"
	"github.com/clinicalcore/ruleops/vecops"
)

// relationshipScope resolves the RelationshipData node a row's target
// cell must be a key of: relationship_data itself, or, when args.Context
// names a column, relationship_data[context_value] (spec §3
// RelationshipData, §4.5 "Reference integrity").
func (b *Bundle) relationshipScope(args OperatorArgs, i int) (RelationshipData, bool) {
	if args.Context == "" {
		return b.RelationshipData, true
	}
	ctxCol, ok := b.targetColumnByName(args.Context)
	if !ok || i >= len(ctxCol) {
		return nil, false
	}
	node, ok := b.RelationshipData[vecops.StringOf(ctxCol[i])]
	if !ok {
		return nil, false
	}
	return asNestedRelationshipData(node)
}

func (b *Bundle) targetColumnByName(name string) (Column, bool) {
	return b.Value.Column(b.ReplacePrefix(name))
}

// IsValidReference reports whether each target cell is itself a key of
// relationship_data (scoped by args.Context when given); a missing
// target, context, or relationship entry is a safe default of false
// (spec §4.5, §7).
func (b *Bundle) IsValidReference(args OperatorArgs) (ruleops.Result, error) {
	col, ok := b.targetColumn(args)
	if !ok {
		return ruleops.ColumnOf(falseColumn(b.Value.Rows())), nil
	}
	out := make([]bool, len(col))
	for i, cell := range col {
		scope, ok := b.relationshipScope(args, i)
		if !ok {
			continue
		}
		_, out[i] = scope[vecops.StringOf(cell)]
	}
	return ruleops.ColumnOf(out), nil
}

func (b *Bundle) IsNotValidReference(args OperatorArgs) (ruleops.Result, error) {
	r, err := b.IsValidReference(args)
	return r.Not(), err
}

// IsValidRelationship checks that the target/comparator pair on each row
// is a member of the permitted relationship pairs; the comparator names
// the partner column and RelationshipData[target value] holds the
// partner's permitted set (spec §4.5, §8 property 6).
func (b *Bundle) IsValidRelationship(args OperatorArgs) (ruleops.Result, error) {
	target, okT := b.targetColumn(args)
	cmp := b.ComparatorData(args)
	if !okT || !cmp.IsColumn {
		return ruleops.ColumnOf(falseColumn(b.Value.Rows())), nil
	}
	out := make([]bool, len(target))
	for i, cell := range target {
		leaf, ok := b.RelationshipData[vecops.StringOf(cell)]
		if !ok {
			continue
		}
		set, ok := asSet(leaf)
		if !ok {
			continue
		}
		out[i] = memberOfSet(set, comparatorValueAt(cmp, i))
	}
	return ruleops.ColumnOf(out), nil
}

func (b *Bundle) IsNotValidRelationship(args OperatorArgs) (ruleops.Result, error) {
	r, err := b.IsValidRelationship(args)
	return r.Not(), err
}
