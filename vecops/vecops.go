// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package vecops holds the element-wise helpers shared by the scalar
// operators and the dataframe operators: numeric coercion with epsilon
// tolerance, case-insensitive comparison, iterable membership, date
// parsing and component comparison, and rune-accurate length/prefix/
// suffix extraction.
package vecops

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/araddon/dateparse"
	"github.com/shopspring/decimal"
)

// Epsilon is the absolute numeric tolerance used for decimal equality
// (spec §3: EPSILON = 10⁻⁶).
var Epsilon = decimal.New(1, -6)

// AsDecimal coerces a value into an arbitrary-precision decimal.
// Integers are exact; floats go through decimal's lossless text
// round-trip; decimal.Decimal passes through; strings are parsed;
// anything else fails.
func AsDecimal(raw any) (decimal.Decimal, error) {
	switch v := raw.(type) {
	case decimal.Decimal:
		return v, nil
	case *decimal.Decimal:
		if v == nil {
			return decimal.Decimal{}, fmt.Errorf("nil decimal")
		}
		return *v, nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int8:
		return decimal.NewFromInt(int64(v)), nil
	case int16:
		return decimal.NewFromInt(int64(v)), nil
	case int32:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case uint:
		return decimal.NewFromInt(int64(v)), nil
	case uint8:
		return decimal.NewFromInt(int64(v)), nil
	case uint16:
		return decimal.NewFromInt(int64(v)), nil
	case uint32:
		return decimal.NewFromInt(int64(v)), nil
	case uint64:
		return decimal.NewFromInt(int64(v)), nil
	case float32:
		return decimal.NewFromFloat(float64(v)), nil
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		return decimal.NewFromString(strings.TrimSpace(v))
	default:
		return decimal.Decimal{}, fmt.Errorf("cannot coerce %T to a numeric value", raw)
	}
}

// LooksNumeric reports whether raw can be coerced to a decimal, without
// returning the error. Used by GenericValue to classify its runtime kind.
func LooksNumeric(raw any) (decimal.Decimal, bool) {
	d, err := AsDecimal(raw)
	return d, err == nil
}

// NumericEqual reports whether a and b are within Epsilon of each other.
func NumericEqual(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(Epsilon)
}

// NumericGreaterThan reports a > b outside of Epsilon tolerance.
func NumericGreaterThan(a, b decimal.Decimal) bool {
	return a.Sub(b).GreaterThan(Epsilon)
}

// NumericLessThan reports a < b outside of Epsilon tolerance.
func NumericLessThan(a, b decimal.Decimal) bool {
	return a.Sub(b).LessThan(Epsilon.Neg())
}

// StringOf renders any scalar as a string for string-shaped comparisons.
// nil becomes "" (spec §4.1: None becomes "").
func StringOf(raw any) string {
	if raw == nil {
		return ""
	}
	if s, ok := raw.(string); ok {
		return s
	}
	if d, ok := raw.(decimal.Decimal); ok {
		return d.String()
	}
	return fmt.Sprintf("%v", raw)
}

// Equal compares two scalar values: numeric tolerance when both sides
// look numeric, otherwise string comparison (optionally case-insensitive).
func Equal(a, b any, caseInsensitive bool) bool {
	if da, ok := LooksNumeric(a); ok {
		if db, ok := LooksNumeric(b); ok {
			return NumericEqual(da, db)
		}
	}
	sa, sb := StringOf(a), StringOf(b)
	if caseInsensitive {
		return strings.EqualFold(sa, sb)
	}
	return sa == sb
}

// IsEmpty reports whether a cell counts as empty under spec §4.5: the
// empty string, or a missing (nil) value.
func IsEmpty(raw any) bool {
	if raw == nil {
		return true
	}
	if s, ok := raw.(string); ok {
		return s == ""
	}
	return false
}

// ToSlice normalizes any iterable-shaped value (slice, array, or a
// single scalar) into a []any. A single scalar becomes a one-element
// slice, mirroring GenericType.is_contained_by's scalar-to-list wrap
// (spec §4.3).
func ToSlice(raw any) []any {
	if raw == nil {
		return nil
	}
	if s, ok := raw.([]any); ok {
		return s
	}
	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out
	default:
		return []any{raw}
	}
}

// IsIterable reports whether raw is a slice/array/map (a "cell that is
// itself an iterable", spec §4.5 contains/contains_case_insensitive
// special case), as opposed to a plain scalar.
func IsIterable(raw any) bool {
	if raw == nil {
		return false
	}
	if _, ok := raw.(string); ok {
		return false
	}
	switch reflect.ValueOf(raw).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	default:
		return false
	}
}

// ContainsCI reports whether x is a member of items; string members are
// compared case-insensitively, everything else with numeric-or-string
// Equal semantics.
func ContainsCI(items []any, x any) bool {
	for _, item := range items {
		if Equal(item, x, true) {
			return true
		}
	}
	return false
}

// ContainsExact reports set membership using exact (non-folded) equality
// for strings, numeric tolerance for numbers.
func ContainsExact(items []any, x any) bool {
	for _, item := range items {
		if Equal(item, x, false) {
			return true
		}
	}
	return false
}

// Length returns the rune length of a string cell, or the element count
// of an iterable cell (spec §4.5 length family operates on "string
// length of each cell", generalized to iterables per §2 item 6).
func Length(raw any) int {
	if raw == nil {
		return 0
	}
	if s, ok := raw.(string); ok {
		return len([]rune(s))
	}
	if IsIterable(raw) {
		return len(ToSlice(raw))
	}
	return len([]rune(StringOf(raw)))
}

// runeStack is a minimal LIFO of runes, used by FirstNRunes/LastNRunes to
// scan a string by code point the same way the lexer's rune stack
// accumulates "current" runes while scanning.
type runeStack struct {
	data []rune
}

func (s *runeStack) push(r rune) {
	s.data = append(s.data, r)
}

func (s *runeStack) pop() (rune, bool) {
	var r rune
	if len(s.data) > 0 {
		r, s.data = s.data[len(s.data)-1], s.data[:len(s.data)-1]
		return r, true
	}
	return r, false
}

func (s *runeStack) reversedString() string {
	var result string
	for i := 0; i < len(s.data); i++ {
		result = string(s.data[i]) + result
	}
	return result
}

// FirstNRunes returns the first n code points of s (or all of s, if
// shorter), used by prefix_matches_regex (spec §4.5).
func FirstNRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if n > len(runes) {
		n = len(runes)
	}
	return string(runes[:n])
}

// LastNRunes returns the last n code points of s, scanned back-to-front
// with a rune stack so the result is built the same way the lexer
// accumulates lookback state, used by suffix_matches_regex (spec §4.5).
func LastNRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	var st runeStack
	start := len(runes) - n
	if start < 0 {
		start = 0
	}
	for i := start; i < len(runes); i++ {
		st.push(runes[i])
	}
	// runes were pushed in forward order; pop to reverse, then reverse
	// again to restore original order via reversedString's fold.
	var fwd runeStack
	for {
		r, ok := st.pop()
		if !ok {
			break
		}
		fwd.push(r)
	}
	return fwd.reversedString()
}

// DateParts is the component decomposition of a parsed date/time cell.
type DateParts struct {
	Year, Month, Day, Hour, Minute, Second int
	HasYear, HasMonth, HasDay              bool
	HasHour, HasMinute, HasSecond          bool
	Valid                                  bool
}

// ParseDate parses a heterogeneous clinical date string. Missing
// components (partial dates) are reported via the Has* flags rather than
// failing the parse.
func ParseDate(s string) DateParts {
	s = strings.TrimSpace(s)
	if s == "" {
		return DateParts{}
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return DateParts{}
	}
	dp := DateParts{Valid: true}
	dp.Year, dp.HasYear = t.Year(), true
	dp.Month, dp.HasMonth = int(t.Month()), hasComponent(s, "month")
	dp.Day, dp.HasDay = t.Day(), hasComponent(s, "day")
	dp.Hour, dp.HasHour = t.Hour(), hasComponent(s, "hour")
	dp.Minute, dp.HasMinute = t.Minute(), hasComponent(s, "minute")
	dp.Second, dp.HasSecond = t.Second(), hasComponent(s, "second")
	return dp
}

// hasComponent approximates whether the original text actually specified
// a given component, based on how many digits it contains: clinical
// partial dates are almost always truncated ISO-8601 text ("2020",
// "2020-03") rather than free text, so a digit-count threshold is an
// allocation-free proxy without re-parsing with multiple layouts.
func hasComponent(raw, component string) bool {
	digits := 0
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	switch component {
	case "month":
		return digits >= 6
	case "day":
		return digits >= 8
	case "hour":
		return digits >= 10
	case "minute":
		return digits >= 12
	case "second":
		return digits >= 14
	default:
		return true
	}
}

// Complete reports whether every date/time component was present.
func (d DateParts) Complete() bool {
	return d.Valid && d.HasYear && d.HasMonth && d.HasDay && d.HasHour && d.HasMinute && d.HasSecond
}

// Component looks up a named component (year/month/day/hour/minute/second).
func (d DateParts) Component(name string) (int, bool) {
	switch strings.ToLower(name) {
	case "year":
		return d.Year, d.HasYear
	case "month":
		return d.Month, d.HasMonth
	case "day":
		return d.Day, d.HasDay
	case "hour":
		return d.Hour, d.HasHour
	case "minute":
		return d.Minute, d.HasMinute
	case "second":
		return d.Second, d.HasSecond
	default:
		return 0, false
	}
}
