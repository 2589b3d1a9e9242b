// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package ruleops_test

import (
	"testing"

	"github.com/clinicalcore/ruleops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericValueTolerance(t *testing.T) {
	t.Parallel()
	a, err := ruleops.NewNumericValue(1.0000001)
	require.NoError(t, err)
	one, err := ruleops.NewNumericValue(1)
	require.NoError(t, err)
	assert.True(t, a.EqualTo(one))
	assert.False(t, a.GreaterThan(one))
	assert.False(t, a.LessThan(one))

	b, err := ruleops.NewNumericValue(1.001)
	require.NoError(t, err)
	assert.False(t, b.EqualTo(one))
	assert.True(t, b.GreaterThan(one))
	assert.True(t, b.GreaterThanOrEqualTo(one))
}

func TestNumericValueRejectsNonNumeric(t *testing.T) {
	t.Parallel()
	_, err := ruleops.NewNumericValue("not-a-number")
	assert.ErrorIs(t, err, ruleops.ErrTypeMismatch)
}

func TestNumericValueCoerceIdempotent(t *testing.T) {
	t.Parallel()
	n1, err := ruleops.NewNumericValue(42)
	require.NoError(t, err)
	n2, err := ruleops.NewNumericValue(n1.Decimal())
	require.NoError(t, err)
	assert.True(t, n1.EqualTo(n2))
}
