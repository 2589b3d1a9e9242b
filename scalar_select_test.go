// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package ruleops_test

import (
	"testing"

	"github.com/clinicalcore/ruleops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectValueContainsCaseInsensitive(t *testing.T) {
	t.Parallel()
	sel, err := ruleops.NewSelectValue([]any{"Apple", "Pear"})
	require.NoError(t, err)
	assert.True(t, sel.Contains("apple"))
	assert.False(t, sel.Contains("kiwi"))
	assert.True(t, sel.DoesNotContain("kiwi"))
}
