// Copyright (c) HashiCorp, Inc.

package ruleops

import "fmt"

var booleanOperators = newTypeRegistry()

func init() {
	booleanOperators.register("is_true", NO_INPUT)
	booleanOperators.register("is_false", NO_INPUT)
}

// BooleanValue is exactly true or false; anything else fails coercion
// (spec §3, §4.1: strict).
type BooleanValue struct {
	v bool
}

// NewBooleanValue coerces raw into a BooleanValue. Only the two Go
// boolean constants are accepted; no truthy/falsy conversion.
func NewBooleanValue(raw any) (BooleanValue, error) {
	const op = "ruleops.NewBooleanValue"
	b, ok := raw.(bool)
	if !ok {
		return BooleanValue{}, fmt.Errorf("%s: %w: %v", op, ErrTypeMismatch, raw)
	}
	return BooleanValue{v: b}, nil
}

// BooleanOperators enumerates BooleanValue's registered operators.
func BooleanOperators() []OperatorInfo { return booleanOperators.allOperators() }

func (b BooleanValue) IsTrue() bool  { return b.v }
func (b BooleanValue) IsFalse() bool { return !b.v }

// Call addresses an operator by name (spec §6's invocation contract).
func (b BooleanValue) Call(name string, _ ...any) (Result, error) {
	const op = "ruleops.BooleanValue.Call"
	switch name {
	case "is_true":
		return BoolOf(b.IsTrue()), nil
	case "is_false":
		return BoolOf(b.IsFalse()), nil
	default:
		return Result{}, fmt.Errorf("%s: %w: %q", op, ErrUnknownOperator, name)
	}
}
