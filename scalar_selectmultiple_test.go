// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package ruleops_test

import (
	"testing"

	"github.com/clinicalcore/ruleops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectMultipleValue(t *testing.T) {
	t.Parallel()
	s, err := ruleops.NewSelectMultipleValue([]any{"HR", "BP", "TEMP"})
	require.NoError(t, err)

	assert.True(t, s.ContainsAll([]any{"hr", "bp"}))
	assert.False(t, s.ContainsAll([]any{"hr", "weight"}))
	assert.True(t, s.IsContainedBy([]any{"HR", "BP", "TEMP", "WEIGHT"}))
	assert.False(t, s.IsContainedBy([]any{"HR"}))
	assert.True(t, s.IsNotContainedBy([]any{"HR"}))
	assert.True(t, s.SharesAtLeastOneElementWith([]any{"BP"}))
	assert.True(t, s.SharesExactlyOneElementWith([]any{"BP"}))
	assert.False(t, s.SharesExactlyOneElementWith([]any{"BP", "HR"}))
	assert.True(t, s.SharesNoElementsWith([]any{"WEIGHT"}))
}

func TestSelectMultipleValueCall(t *testing.T) {
	t.Parallel()
	s, err := ruleops.NewSelectMultipleValue([]any{"HR", "BP"})
	require.NoError(t, err)

	res, err := s.Call("shares_no_elements_with", []any{"TEMP"})
	require.NoError(t, err)
	assert.True(t, res.AsBool())

	_, err = s.Call("contains_all")
	assert.ErrorIs(t, err, ruleops.ErrInvalidArgument)

	_, err = s.Call("not_a_real_operator", []any{})
	assert.ErrorIs(t, err, ruleops.ErrUnknownOperator)
}

func TestSelectMultipleOperatorsCatalog(t *testing.T) {
	t.Parallel()
	ops := ruleops.SelectMultipleOperators()
	require.NotEmpty(t, ops)
	var found bool
	for _, o := range ops {
		if o.Name == "shares_exactly_one_element_with" {
			found = true
			assert.Equal(t, ruleops.SELECT_MULTIPLE, o.InputKind)
		}
	}
	assert.True(t, found)
}
