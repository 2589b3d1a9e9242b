// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package dataframe_test

import (
	"testing"

	"github.com/clinicalcore/ruleops/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBundle(t *testing.T, cols map[string]dataframe.Column, opts ...dataframe.BundleOption) *dataframe.Bundle {
	t.Helper()
	tbl, err := dataframe.NewTable(cols)
	require.NoError(t, err)
	b, err := dataframe.NewBundle(tbl, opts...)
	require.NoError(t, err)
	return b
}

func TestExistsAndNotExists(t *testing.T) {
	t.Parallel()
	b := newBundle(t, map[string]dataframe.Column{"AESEQ": {"1", "2"}})

	res, err := b.Call("exists", map[string]any{"target": "AESEQ"})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true}, res.Column)

	res, err = b.Call("not_exists", map[string]any{"target": "MISSING"})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true}, res.Column)
}

// TestEqualToWithPrefixRewrite covers scenario S3: a generic "--TESTCD"
// target is rewritten through ColumnPrefixMap to the concrete AETESTCD
// column before comparison.
func TestEqualToWithPrefixRewrite(t *testing.T) {
	t.Parallel()
	b := newBundle(t, map[string]dataframe.Column{
		"AETESTCD": {"HR", "BP", ""},
	}, dataframe.WithColumnPrefixMap(map[string]string{"--": "AE"}))

	res, err := b.Call("equal_to", map[string]any{
		"target":           "--TESTCD",
		"comparator":       "HR",
		"value_is_literal": true,
	})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, false}, res.Column)
}

func TestEqualToExcludesEmptyCells(t *testing.T) {
	t.Parallel()
	b := newBundle(t, map[string]dataframe.Column{
		"VAL": {"", nil, "5"},
	})
	res, err := b.Call("equal_to", map[string]any{
		"target": "VAL", "comparator": "", "value_is_literal": true,
	})
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, false}, res.Column)
}

func TestNumericComparisonUsesTolerance(t *testing.T) {
	t.Parallel()
	b := newBundle(t, map[string]dataframe.Column{
		"VAL": {"1.0000001", "2"},
	})
	res, err := b.Call("equal_to", map[string]any{
		"target": "VAL", "comparator": "1.0000002", "value_is_literal": true,
	})
	require.NoError(t, err)
	assert.True(t, res.Column[0])
	assert.False(t, res.Column[1])
}

func TestGreaterThanColumnComparator(t *testing.T) {
	t.Parallel()
	b := newBundle(t, map[string]dataframe.Column{
		"A": {"5", "1"},
		"B": {"3", "4"},
	})
	res, err := b.Call("greater_than", map[string]any{"target": "A", "comparator": "B"})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, res.Column)
}

func TestEmptyAndNonEmpty(t *testing.T) {
	t.Parallel()
	b := newBundle(t, map[string]dataframe.Column{
		"VAL": {"", "x", nil},
	})
	res, err := b.Call("empty", map[string]any{"target": "VAL"})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true}, res.Column)

	res, err = b.Call("non_empty", map[string]any{"target": "VAL"})
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, false}, res.Column)
}

func TestUnknownOperator(t *testing.T) {
	t.Parallel()
	b := newBundle(t, map[string]dataframe.Column{"A": {"1"}})
	_, err := b.Call("not_a_real_operator", map[string]any{"target": "A"})
	assert.Error(t, err)
}
