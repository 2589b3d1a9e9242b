// Copyright (c) HashiCorp, Inc.

package ruleops

import (
	"fmt"

	"github.com/clinicalcore/ruleops/vecops"
)

var selectMultipleOperators = newTypeRegistry()

func init() {
	selectMultipleOperators.register("contains_all", SELECT_MULTIPLE)
	selectMultipleOperators.register("is_contained_by", SELECT_MULTIPLE)
	selectMultipleOperators.register("is_not_contained_by", SELECT_MULTIPLE)
	selectMultipleOperators.register("shares_at_least_one_element_with", SELECT_MULTIPLE)
	selectMultipleOperators.register("shares_exactly_one_element_with", SELECT_MULTIPLE)
	selectMultipleOperators.register("shares_no_elements_with", SELECT_MULTIPLE)
}

// SelectMultipleValue is semantically a multiset; operators treat it as
// a collection with membership (spec §3).
type SelectMultipleValue struct {
	items []any
}

// NewSelectMultipleValue coerces raw into a SelectMultipleValue; any
// iterable passes.
func NewSelectMultipleValue(raw any) (SelectMultipleValue, error) {
	return SelectMultipleValue{items: vecops.ToSlice(raw)}, nil
}

// Items returns the underlying items.
func (s SelectMultipleValue) Items() []any { return s.items }

// SelectMultipleOperators enumerates SelectMultipleValue's registered
// operators.
func SelectMultipleOperators() []OperatorInfo { return selectMultipleOperators.allOperators() }

// ContainsAll reports whether every element of other is a member of s.
func (s SelectMultipleValue) ContainsAll(other []any) bool {
	for _, o := range other {
		if !vecops.ContainsCI(s.items, o) {
			return false
		}
	}
	return true
}

// IsContainedBy reports whether every element of s is a member of other.
func (s SelectMultipleValue) IsContainedBy(other []any) bool {
	for _, item := range s.items {
		if !vecops.ContainsCI(other, item) {
			return false
		}
	}
	return true
}

// IsNotContainedBy is the complement of IsContainedBy.
func (s SelectMultipleValue) IsNotContainedBy(other []any) bool { return !s.IsContainedBy(other) }

// SharesAtLeastOneElementWith reports any intersection between s and other.
func (s SelectMultipleValue) SharesAtLeastOneElementWith(other []any) bool {
	for _, item := range s.items {
		if vecops.ContainsCI(other, item) {
			return true
		}
	}
	return false
}

// SharesExactlyOneElementWith counts the elements of s that also appear
// in other, across the whole iteration, and reports whether that count
// is exactly one.
func (s SelectMultipleValue) SharesExactlyOneElementWith(other []any) bool {
	count := 0
	for _, item := range s.items {
		if vecops.ContainsCI(other, item) {
			count++
		}
	}
	return count == 1
}

// SharesNoElementsWith is the complement of SharesAtLeastOneElementWith.
func (s SelectMultipleValue) SharesNoElementsWith(other []any) bool {
	return !s.SharesAtLeastOneElementWith(other)
}

// Call addresses an operator by name (spec §6's invocation contract).
func (s SelectMultipleValue) Call(name string, args ...any) (Result, error) {
	const op = "ruleops.SelectMultipleValue.Call"
	if len(args) == 0 {
		return Result{}, fmt.Errorf("%s: %w: %s needs an argument", op, ErrInvalidArgument, name)
	}
	other := vecops.ToSlice(args[0])
	switch name {
	case "contains_all":
		return BoolOf(s.ContainsAll(other)), nil
	case "is_contained_by":
		return BoolOf(s.IsContainedBy(other)), nil
	case "is_not_contained_by":
		return BoolOf(s.IsNotContainedBy(other)), nil
	case "shares_at_least_one_element_with":
		return BoolOf(s.SharesAtLeastOneElementWith(other)), nil
	case "shares_exactly_one_element_with":
		return BoolOf(s.SharesExactlyOneElementWith(other)), nil
	case "shares_no_elements_with":
		return BoolOf(s.SharesNoElementsWith(other)), nil
	default:
		return Result{}, fmt.Errorf("%s: %w: %q", op, ErrUnknownOperator, name)
	}
}
