// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package dataframe_test

import (
	"testing"

	"github.com/clinicalcore/ruleops/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIsValidReference covers spec.md's literal wording: each target
// cell must itself be a key of relationship_data.
func TestIsValidReference(t *testing.T) {
	t.Parallel()
	b := newBundle(t, map[string]dataframe.Column{
		"DOMAIN": {"AE", "ZZ"},
	}, dataframe.WithRelationshipData(dataframe.RelationshipData{
		"AE": true,
		"DM": true,
		"LB": true,
	}))
	res, err := b.Call("is_valid_reference", map[string]any{"target": "DOMAIN"})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, res.Column)
}

// TestIsValidReferenceWithContext covers the context-scoped form: the
// target cell must be a key of relationship_data[context_value].
func TestIsValidReferenceWithContext(t *testing.T) {
	t.Parallel()
	b := newBundle(t, map[string]dataframe.Column{
		"VISIT": {"V1", "V1", "V2"},
		"TEST":  {"HR", "BP", "HR"},
	}, dataframe.WithRelationshipData(dataframe.RelationshipData{
		"V1": dataframe.RelationshipData{"HR": true},
		"V2": dataframe.RelationshipData{"HR": true, "BP": true},
	}))
	res, err := b.Call("is_valid_reference", map[string]any{
		"target": "TEST", "context": "VISIT",
	})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true}, res.Column)
}

func TestIsValidRelationship(t *testing.T) {
	t.Parallel()
	b := newBundle(t, map[string]dataframe.Column{
		"CODE": {"1", "1", "2"},
		"TERM": {"Mild", "Severe", "Mild"},
	}, dataframe.WithRelationshipData(dataframe.RelationshipData{
		"1": []string{"Mild", "Moderate"},
		"2": []string{"Mild"},
	}))
	res, err := b.Call("is_valid_relationship", map[string]any{"target": "CODE", "comparator": "TERM"})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true}, res.Column)
}
