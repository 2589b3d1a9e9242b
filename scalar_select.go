// Copyright (c) HashiCorp, Inc.

package ruleops

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/clinicalcore/ruleops/vecops"
)

var selectOperators = newTypeRegistry()

func init() {
	selectOperators.register("contains", SELECT)
	selectOperators.register("does_not_contain", SELECT)
}

// SelectValue wraps an ordered, duplicate-preserving iterable of items
// (spec §3: "any iterable collection of items").
type SelectValue struct {
	items []any
}

// NewSelectValue coerces raw into a SelectValue; any iterable passes.
func NewSelectValue(raw any) (SelectValue, error) {
	return SelectValue{items: vecops.ToSlice(raw)}, nil
}

// Items returns the underlying items, in order.
func (s SelectValue) Items() []any { return s.items }

// SelectOperators enumerates SelectValue's registered operators.
func SelectOperators() []OperatorInfo { return selectOperators.allOperators() }

// Contains reports whether any element equals x; string-vs-string
// comparisons are case-insensitive, other comparisons exact (spec §4.3).
func (s SelectValue) Contains(x any) bool {
	xs, xIsString := x.(string)
	for _, item := range s.items {
		if is, ok := item.(string); ok && xIsString {
			if strings.EqualFold(is, xs) {
				return true
			}
		} else if reflect.DeepEqual(item, x) {
			return true
		}
	}
	return false
}

// DoesNotContain is the complement of Contains.
func (s SelectValue) DoesNotContain(x any) bool { return !s.Contains(x) }

// Call addresses an operator by name (spec §6's invocation contract).
func (s SelectValue) Call(name string, args ...any) (Result, error) {
	const op = "ruleops.SelectValue.Call"
	if len(args) == 0 {
		return Result{}, fmt.Errorf("%s: %w: %s needs an argument", op, ErrInvalidArgument, name)
	}
	switch name {
	case "contains":
		return BoolOf(s.Contains(args[0])), nil
	case "does_not_contain":
		return BoolOf(s.DoesNotContain(args[0])), nil
	default:
		return Result{}, fmt.Errorf("%s: %w: %q", op, ErrUnknownOperator, name)
	}
}
