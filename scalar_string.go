// Copyright (c) HashiCorp, Inc.

package ruleops

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/clinicalcore/ruleops/vecops"
)

var stringOperators = newTypeRegistry()

func init() {
	stringOperators.register("equal_to", TEXT)
	stringOperators.register("not_equal_to", TEXT)
	stringOperators.register("equal_to_case_insensitive", TEXT)
	stringOperators.register("starts_with", TEXT)
	stringOperators.register("ends_with", TEXT)
	stringOperators.register("contains", TEXT)
	stringOperators.register("matches_regex", TEXT)
	stringOperators.register("non_empty", NO_INPUT)
}

// StringValue is the canonical internal form of a string scalar (spec
// §3). The empty sequence replaces a missing input.
type StringValue struct {
	v string
}

// NewStringValue coerces raw into a StringValue. nil becomes "".
func NewStringValue(raw any) (StringValue, error) {
	const op = "ruleops.NewStringValue"
	switch v := raw.(type) {
	case nil:
		return StringValue{}, nil
	case string:
		return StringValue{v: v}, nil
	case fmt.Stringer:
		return StringValue{v: v.String()}, nil
	default:
		return StringValue{}, fmt.Errorf("%s: %w: %v", op, ErrTypeMismatch, raw)
	}
}

// String returns the underlying value.
func (s StringValue) String() string { return s.v }

// StringOperators enumerates StringValue's registered operators.
func StringOperators() []OperatorInfo { return stringOperators.allOperators() }

func (s StringValue) EqualTo(other string) bool                 { return s.v == other }
func (s StringValue) NotEqualTo(other string) bool               { return !s.EqualTo(other) }
func (s StringValue) EqualToCaseInsensitive(other string) bool   { return strings.EqualFold(s.v, other) }
func (s StringValue) StartsWith(prefix string) bool              { return strings.HasPrefix(s.v, prefix) }
func (s StringValue) EndsWith(suffix string) bool                { return strings.HasSuffix(s.v, suffix) }
func (s StringValue) Contains(substr string) bool                { return strings.Contains(s.v, substr) }
func (s StringValue) NonEmpty() bool                              { return s.v != "" }

// MatchesRegex reports whether pattern matches anywhere in the value.
// Its return is conceptually a regex match object; callers treat it as
// a boolean (spec §4.3, §6).
func (s StringValue) MatchesRegex(pattern string) (bool, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(s.v), nil
}

// Call addresses an operator by name (spec §6's invocation contract).
func (s StringValue) Call(name string, args ...any) (Result, error) {
	const op = "ruleops.StringValue.Call"
	if _, ok := stringOperators.lookup(name); !ok {
		return Result{}, fmt.Errorf("%s: %w: %q", op, ErrUnknownOperator, name)
	}
	arg := func(i int) (string, error) {
		if i >= len(args) {
			return "", fmt.Errorf("%s: %w: %s needs an argument", op, ErrInvalidArgument, name)
		}
		return vecops.StringOf(args[i]), nil
	}
	switch name {
	case "equal_to":
		a, err := arg(0)
		if err != nil {
			return Result{}, err
		}
		return BoolOf(s.EqualTo(a)), nil
	case "not_equal_to":
		a, err := arg(0)
		if err != nil {
			return Result{}, err
		}
		return BoolOf(s.NotEqualTo(a)), nil
	case "equal_to_case_insensitive":
		a, err := arg(0)
		if err != nil {
			return Result{}, err
		}
		return BoolOf(s.EqualToCaseInsensitive(a)), nil
	case "starts_with":
		a, err := arg(0)
		if err != nil {
			return Result{}, err
		}
		return BoolOf(s.StartsWith(a)), nil
	case "ends_with":
		a, err := arg(0)
		if err != nil {
			return Result{}, err
		}
		return BoolOf(s.EndsWith(a)), nil
	case "contains":
		a, err := arg(0)
		if err != nil {
			return Result{}, err
		}
		return BoolOf(s.Contains(a)), nil
	case "matches_regex":
		a, err := arg(0)
		if err != nil {
			return Result{}, err
		}
		matched, err := s.MatchesRegex(a)
		if err != nil {
			return Result{}, err
		}
		return MatchOf(matched), nil
	case "non_empty":
		return BoolOf(s.NonEmpty()), nil
	default:
		return Result{}, fmt.Errorf("%s: %w: %q", op, ErrUnknownOperator, name)
	}
}
