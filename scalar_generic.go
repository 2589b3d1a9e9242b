// Copyright (c) HashiCorp, Inc.

package ruleops

import (
	"fmt"

	"github.com/clinicalcore/ruleops/vecops"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

var genericOperators = newTypeRegistry()

func init() {
	genericOperators.register("equal_to", TEXT)
	genericOperators.register("not_equal_to", TEXT)
	genericOperators.register("is_contained_by", SELECT_MULTIPLE)
}

type genericKind int

const (
	genericString genericKind = iota
	genericNumeric
	genericOther
)

// GenericValue is a tagged variant that accepts any value and forwards
// to the appropriate scalar family at call time (spec §3, §4.3: "Generic
// type"). It is a Go-native replacement for the source's multi-parent
// inheritance (spec §9 design note).
type GenericValue struct {
	kind genericKind
	raw  any
	num  decimal.Decimal
	str  string
}

// NewGenericValue coerces raw the way spec §4.1 describes: strings stay
// strings, numerics become decimal, everything else passes through
// unchanged and is dispatched on at call time.
func NewGenericValue(raw any) (GenericValue, error) {
	switch v := raw.(type) {
	case string:
		return GenericValue{kind: genericString, raw: raw, str: v}, nil
	default:
		if d, ok := vecops.LooksNumeric(raw); ok {
			return GenericValue{kind: genericNumeric, raw: raw, num: d}, nil
		}
		return GenericValue{kind: genericOther, raw: raw, str: cast.ToString(raw)}, nil
	}
}

// Raw returns the underlying, uncoerced value.
func (g GenericValue) Raw() any { return g.raw }

// GenericOperators enumerates GenericValue's registered operators.
func GenericOperators() []OperatorInfo { return genericOperators.allOperators() }

// EqualTo dispatches by runtime kind: decimal tolerance for numeric
// values, string equality otherwise (spec §4.3).
func (g GenericValue) EqualTo(other any) bool {
	if g.kind == genericNumeric {
		if d, ok := vecops.LooksNumeric(other); ok {
			return vecops.NumericEqual(g.num, d)
		}
	}
	return vecops.StringOf(g.raw) == vecops.StringOf(other)
}

// NotEqualTo is the complement of EqualTo.
func (g GenericValue) NotEqualTo(other any) bool { return !g.EqualTo(other) }

// IsContainedBy wraps a non-list scalar into a one-element list before
// delegating to membership (spec §4.3).
func (g GenericValue) IsContainedBy(list any) bool {
	items := vecops.ToSlice(list)
	for _, item := range items {
		if g.EqualTo(item) {
			return true
		}
	}
	return false
}

// Call addresses an operator by name (spec §6's invocation contract).
func (g GenericValue) Call(name string, args ...any) (Result, error) {
	const op = "ruleops.GenericValue.Call"
	if len(args) == 0 {
		return Result{}, fmt.Errorf("%s: %w: %s needs an argument", op, ErrInvalidArgument, name)
	}
	switch name {
	case "equal_to":
		return BoolOf(g.EqualTo(args[0])), nil
	case "not_equal_to":
		return BoolOf(g.NotEqualTo(args[0])), nil
	case "is_contained_by":
		return BoolOf(g.IsContainedBy(args[0])), nil
	default:
		return Result{}, fmt.Errorf("%s: %w: %q", op, ErrUnknownOperator, name)
	}
}
