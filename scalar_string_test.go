// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package ruleops_test

import (
	"testing"

	"github.com/clinicalcore/ruleops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringValue(t *testing.T) {
	t.Parallel()
	s, err := ruleops.NewStringValue("Alice")
	require.NoError(t, err)
	assert.True(t, s.EqualTo("Alice"))
	assert.False(t, s.EqualTo("alice"))
	assert.True(t, s.EqualToCaseInsensitive("alice"))
	assert.True(t, s.StartsWith("Al"))
	assert.True(t, s.EndsWith("ce"))
	assert.True(t, s.Contains("lic"))
	assert.True(t, s.NonEmpty())

	matched, err := s.MatchesRegex("^A.*e$")
	require.NoError(t, err)
	assert.True(t, matched)
}

func TestStringValueCoercesNil(t *testing.T) {
	t.Parallel()
	s, err := ruleops.NewStringValue(nil)
	require.NoError(t, err)
	assert.False(t, s.NonEmpty())
	assert.Equal(t, "", s.String())
}

func TestStringValueCoerceIdempotent(t *testing.T) {
	t.Parallel()
	s1, err := ruleops.NewStringValue("x")
	require.NoError(t, err)
	s2, err := ruleops.NewStringValue(s1.String())
	require.NoError(t, err)
	assert.Equal(t, s1, s2)
}

func TestStringValueCall(t *testing.T) {
	t.Parallel()
	s, err := ruleops.NewStringValue("Alice")
	require.NoError(t, err)
	res, err := s.Call("equal_to_case_insensitive", "alice")
	require.NoError(t, err)
	assert.True(t, res.AsBool())

	_, err = s.Call("not_a_real_operator")
	assert.ErrorIs(t, err, ruleops.ErrUnknownOperator)
}

func TestStringOperatorsCatalog(t *testing.T) {
	t.Parallel()
	ops := ruleops.StringOperators()
	require.NotEmpty(t, ops)
	var found bool
	for _, o := range ops {
		if o.Name == "starts_with" {
			found = true
			assert.Equal(t, "Starts with", o.Label)
			assert.Equal(t, ruleops.TEXT, o.InputKind)
		}
	}
	assert.True(t, found)
}
