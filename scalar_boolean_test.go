// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package ruleops_test

import (
	"testing"

	"github.com/clinicalcore/ruleops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBooleanValueStrict(t *testing.T) {
	t.Parallel()
	b, err := ruleops.NewBooleanValue(true)
	require.NoError(t, err)
	assert.True(t, b.IsTrue())
	assert.False(t, b.IsFalse())

	_, err = ruleops.NewBooleanValue("true")
	assert.ErrorIs(t, err, ruleops.ErrTypeMismatch)

	_, err = ruleops.NewBooleanValue(1)
	assert.ErrorIs(t, err, ruleops.ErrTypeMismatch)
}
