// Copyright (c) HashiCorp, Inc.

package ruleops

import (
	"fmt"

	"github.com/clinicalcore/ruleops/vecops"
	"github.com/shopspring/decimal"
)

var numericOperators = newTypeRegistry()

func init() {
	numericOperators.register("equal_to", NUMERIC)
	numericOperators.register("not_equal_to", NUMERIC)
	numericOperators.register("greater_than", NUMERIC)
	numericOperators.register("greater_than_or_equal_to", NUMERIC)
	numericOperators.register("less_than", NUMERIC)
	numericOperators.register("less_than_or_equal_to", NUMERIC)
}

// NumericValue is an arbitrary-precision decimal (spec §3). Equality
// uses an absolute tolerance of vecops.Epsilon.
type NumericValue struct {
	v decimal.Decimal
}

// NewNumericValue coerces raw into a NumericValue: integers exact,
// floats via decimal's lossless text round-trip, decimals pass through,
// numeric strings parsed; anything else fails.
func NewNumericValue(raw any) (NumericValue, error) {
	const op = "ruleops.NewNumericValue"
	d, err := vecops.AsDecimal(raw)
	if err != nil {
		return NumericValue{}, fmt.Errorf("%s: %w: %v", op, ErrTypeMismatch, raw)
	}
	return NumericValue{v: d}, nil
}

// Decimal returns the underlying decimal value.
func (n NumericValue) Decimal() decimal.Decimal { return n.v }

// NumericOperators enumerates NumericValue's registered operators.
func NumericOperators() []OperatorInfo { return numericOperators.allOperators() }

func (n NumericValue) EqualTo(other NumericValue) bool    { return vecops.NumericEqual(n.v, other.v) }
func (n NumericValue) NotEqualTo(other NumericValue) bool { return !n.EqualTo(other) }
func (n NumericValue) GreaterThan(other NumericValue) bool {
	return vecops.NumericGreaterThan(n.v, other.v)
}
func (n NumericValue) LessThan(other NumericValue) bool {
	return vecops.NumericLessThan(n.v, other.v)
}
func (n NumericValue) GreaterThanOrEqualTo(other NumericValue) bool {
	return n.GreaterThan(other) || n.EqualTo(other)
}
func (n NumericValue) LessThanOrEqualTo(other NumericValue) bool {
	return n.LessThan(other) || n.EqualTo(other)
}

// Call addresses an operator by name (spec §6's invocation contract).
func (n NumericValue) Call(name string, args ...any) (Result, error) {
	const op = "ruleops.NumericValue.Call"
	if _, ok := numericOperators.lookup(name); !ok {
		return Result{}, fmt.Errorf("%s: %w: %q", op, ErrUnknownOperator, name)
	}
	if len(args) == 0 {
		return Result{}, fmt.Errorf("%s: %w: %s needs an argument", op, ErrInvalidArgument, name)
	}
	other, err := NewNumericValue(args[0])
	if err != nil {
		return Result{}, err
	}
	switch name {
	case "equal_to":
		return BoolOf(n.EqualTo(other)), nil
	case "not_equal_to":
		return BoolOf(n.NotEqualTo(other)), nil
	case "greater_than":
		return BoolOf(n.GreaterThan(other)), nil
	case "greater_than_or_equal_to":
		return BoolOf(n.GreaterThanOrEqualTo(other)), nil
	case "less_than":
		return BoolOf(n.LessThan(other)), nil
	case "less_than_or_equal_to":
		return BoolOf(n.LessThanOrEqualTo(other)), nil
	default:
		return Result{}, fmt.Errorf("%s: %w: %q", op, ErrUnknownOperator, name)
	}
}
