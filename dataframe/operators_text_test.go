// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package dataframe_test

import (
	"testing"

	"github.com/clinicalcore/ruleops/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainsLiteralSubstring(t *testing.T) {
	t.Parallel()
	b := newBundle(t, map[string]dataframe.Column{
		"TERM": {"Headache", "Nausea"},
	})
	res, err := b.Call("contains", map[string]any{
		"target": "TERM", "comparator": "ache", "value_is_literal": true,
	})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, res.Column)
}

func TestContainsIterableCellIsElementwiseMembership(t *testing.T) {
	t.Parallel()
	b := newBundle(t, map[string]dataframe.Column{
		"TERMS": {[]any{"HR", "BP"}, []any{"TEMP"}},
	})
	res, err := b.Call("contains", map[string]any{
		"target": "TERMS", "comparator": "HR", "value_is_literal": true,
	})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, res.Column)
}

func TestContainsColumnComparatorIsSetMembership(t *testing.T) {
	t.Parallel()
	b := newBundle(t, map[string]dataframe.Column{
		"TERM":  {"HR", "BP", "TEMP"},
		"MATCH": {"HR", "HR", "HR"},
	})
	res, err := b.Call("contains", map[string]any{"target": "TERM", "comparator": "MATCH"})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, true}, res.Column)
}

func TestStartsWithAndEndsWith(t *testing.T) {
	t.Parallel()
	b := newBundle(t, map[string]dataframe.Column{"VAL": {"AE001", "SE002"}})
	res, err := b.Call("starts_with", map[string]any{
		"target": "VAL", "comparator": "AE", "value_is_literal": true,
	})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, res.Column)

	res, err = b.Call("ends_with", map[string]any{
		"target": "VAL", "comparator": "002", "value_is_literal": true,
	})
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true}, res.Column)
}

func TestMatchesRegex(t *testing.T) {
	t.Parallel()
	b := newBundle(t, map[string]dataframe.Column{"VAL": {"AE001", "bad"}})
	res, err := b.Call("matches_regex", map[string]any{
		"target": "VAL", "comparator": `^AE\d+$`, "value_is_literal": true,
	})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, res.Column)
}

func TestPrefixAndSuffixMatchesRegex(t *testing.T) {
	t.Parallel()
	b := newBundle(t, map[string]dataframe.Column{"VAL": {"AE0012024"}})
	res, err := b.Call("prefix_matches_regex", map[string]any{
		"target": "VAL", "comparator": `^AE$`, "value_is_literal": true, "prefix": 2,
	})
	require.NoError(t, err)
	assert.True(t, res.Column[0])

	res, err = b.Call("suffix_matches_regex", map[string]any{
		"target": "VAL", "comparator": `^2024$`, "value_is_literal": true, "suffix": 4,
	})
	require.NoError(t, err)
	assert.True(t, res.Column[0])
}

func TestLengthFamily(t *testing.T) {
	t.Parallel()
	b := newBundle(t, map[string]dataframe.Column{"VAL": {"abc", "ab"}})
	res, err := b.Call("has_equal_length", map[string]any{
		"target": "VAL", "comparator": 3, "value_is_literal": true,
	})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, res.Column)

	res, err = b.Call("longer_than", map[string]any{
		"target": "VAL", "comparator": 2, "value_is_literal": true,
	})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, res.Column)
}
