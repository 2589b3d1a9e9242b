// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package dataframe_test

import (
	"testing"

	"github.com/clinicalcore/ruleops/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHasNextCorrespondingRecord covers scenario S5: row i's target must
// equal row i+1's comparator, and the last row of each group carries no
// meaningful result.
func TestHasNextCorrespondingRecord(t *testing.T) {
	t.Parallel()
	b := newBundle(t, map[string]dataframe.Column{
		"SUBJ":    {"1", "1", "1", "2"},
		"SEQ":     {"10", "20", "30", "99"},
		"PREVSEQ": {"", "10", "99", ""},
	})
	res, err := b.Call("has_next_corresponding_record", map[string]any{
		"target": "SEQ", "comparator": "PREVSEQ", "within": "SUBJ", "ordering": "SEQ",
	})
	require.NoError(t, err)
	assert.True(t, res.ValidAt(0))
	assert.True(t, res.Column[0])
	assert.True(t, res.ValidAt(1))
	assert.False(t, res.Column[1])
	assert.False(t, res.ValidAt(2))
	assert.False(t, res.ValidAt(3))
}

// TestEmptyWithinExceptLastRow exercises the grouped-emptiness family:
// grouped by comparator, every row but each group's last is checked,
// and the per-row detail is persisted as a fresh auxiliary column.
func TestEmptyWithinExceptLastRow(t *testing.T) {
	t.Parallel()
	b := newBundle(t, map[string]dataframe.Column{
		"SEQ":   {"1", "2", "3", "1", "2"},
		"GROUP": {"A", "A", "A", "B", "B"},
		"VAL":   {"", "x", "y", "z", ""},
	})
	res, err := b.Call("empty_within_except_last_row", map[string]any{
		"target": "VAL", "comparator": "GROUP", "ordering": "SEQ",
	})
	require.NoError(t, err)
	assert.True(t, res.AsBool())
	assert.True(t, b.Value.Has("empty_within_except_last_row"))

	res, err = b.Call("non_empty_within_except_last_row", map[string]any{
		"target": "VAL", "comparator": "GROUP", "ordering": "SEQ",
	})
	require.NoError(t, err)
	assert.False(t, res.AsBool())
	assert.True(t, b.Value.Has("non_empty_within_except_last_row"))
}

// TestPresentOnMultipleRowsWithin covers grouping by within alone: a
// group's row count, not its target values, decides the result. Using
// distinct TERM values within the SUBJ=1 group catches a grouping bug
// that a same-value fixture would miss.
func TestPresentOnMultipleRowsWithin(t *testing.T) {
	t.Parallel()
	b := newBundle(t, map[string]dataframe.Column{
		"SUBJ": {"1", "1", "2"},
		"TERM": {"HR", "AE", "HR"},
	})
	res, err := b.Call("present_on_multiple_rows_within", map[string]any{"target": "TERM", "within": "SUBJ"})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, false}, res.Column)

	res, err = b.Call("not_present_on_multiple_rows_within", map[string]any{"target": "TERM", "within": "SUBJ"})
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, true}, res.Column)
}

// TestPresentOnMultipleRowsWithinMinCount covers the comparator as an
// explicit min_count threshold: a group passes only when its size
// exceeds min_count, not merely reaches it.
func TestPresentOnMultipleRowsWithinMinCount(t *testing.T) {
	t.Parallel()
	b := newBundle(t, map[string]dataframe.Column{
		"SUBJ": {"1", "1", "1", "2", "2"},
		"TERM": {"HR", "AE", "BP", "HR", "AE"},
	})
	res, err := b.Call("present_on_multiple_rows_within", map[string]any{
		"target": "TERM", "within": "SUBJ", "comparator": 2,
	})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, true, false, false}, res.Column)
}

// TestAdditionalColumnsEmptyAndNotEmpty exercises spec.md's literal
// adjacent-transition predicate: true iff some column is empty and the
// next column (ascending numeric suffix) is non-empty.
func TestAdditionalColumnsEmptyAndNotEmpty(t *testing.T) {
	t.Parallel()
	b := newBundle(t, map[string]dataframe.Column{
		"AEACN":  {"DRUG WITHDRAWN", "DOSE REDUCED"},
		"AEACN1": {"", "A"},
		"AEACN2": {"B", ""},
	})
	res, err := b.Call("additional_columns_empty", map[string]any{"target": "AEACN"})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, res.Column)

	res, err = b.Call("additional_columns_not_empty", map[string]any{"target": "AEACN"})
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true}, res.Column)
}

func TestReferencesCorrectCodelist(t *testing.T) {
	t.Parallel()
	b := newBundle(t, map[string]dataframe.Column{
		"AETESTCD": {"HR", "BP"},
		"CODELIST": {"TESTCD", "WRONGLIST"},
	}, dataframe.WithColumnCodelistMap(map[string][]string{
		"AETESTCD": {"TESTCD"},
	}))
	res, err := b.Call("references_correct_codelist", map[string]any{
		"target": "AETESTCD", "comparator": "CODELIST",
	})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, res.Column)
}

// TestReferencesCorrectCodelistUnknownColumnPasses covers spec.md's
// explicit default: a target column absent from ColumnCodelistMap
// passes every row.
func TestReferencesCorrectCodelistUnknownColumnPasses(t *testing.T) {
	t.Parallel()
	b := newBundle(t, map[string]dataframe.Column{
		"AETESTCD": {"HR", "BP"},
		"CODELIST": {"TESTCD", "WRONGLIST"},
	})
	res, err := b.Call("references_correct_codelist", map[string]any{
		"target": "AETESTCD", "comparator": "CODELIST",
	})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true}, res.Column)
}

// TestUsesValidCodelistTerms covers scenario S6: target names the
// codelist id, comparator carries the row's term list; a non-extensible
// codelist accepts only its allowed terms, and an unregistered codelist
// id passes.
func TestUsesValidCodelistTerms(t *testing.T) {
	t.Parallel()
	b := newBundle(t, map[string]dataframe.Column{
		"CODELIST": {"SEVERITY", "SEVERITY", "UNKNOWN"},
		"TERMS":    {"MILD", "CATASTROPHIC", "ANYTHING"},
	}, dataframe.WithCodelistTermMaps([]map[string]dataframe.CodelistTerms{
		{
			"SEVERITY": {
				Extensible:   false,
				AllowedTerms: map[string]struct{}{"MILD": {}, "MODERATE": {}, "SEVERE": {}},
			},
		},
	}))
	res, err := b.Call("uses_valid_codelist_terms", map[string]any{"target": "CODELIST", "comparator": "TERMS"})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true}, res.Column)

	res, err = b.Call("does_not_use_valid_codelist_terms", map[string]any{"target": "CODELIST", "comparator": "TERMS"})
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, false}, res.Column)
}

func TestHasSameAndDifferentValues(t *testing.T) {
	t.Parallel()
	b := newBundle(t, map[string]dataframe.Column{"STUDYID": {"S1", "S1", "S1"}})
	res, err := b.Call("has_same_values", map[string]any{"target": "STUDYID"})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, true}, res.Column)

	res, err = b.Call("has_different_values", map[string]any{"target": "STUDYID"})
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, false}, res.Column)
}
