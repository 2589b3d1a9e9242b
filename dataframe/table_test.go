// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package dataframe_test

import (
	"testing"

	"github.com/clinicalcore/ruleops/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTableRejectsMismatchedLength(t *testing.T) {
	t.Parallel()
	_, err := dataframe.NewTable(map[string]dataframe.Column{
		"USUBJID": {"1", "2"},
		"AESEQ":   {"1"},
	})
	assert.Error(t, err)
}

func TestTableColumnAccess(t *testing.T) {
	t.Parallel()
	tbl, err := dataframe.NewTable(map[string]dataframe.Column{
		"USUBJID": {"1", "2", "3"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.Rows())
	assert.True(t, tbl.Has("USUBJID"))
	assert.False(t, tbl.Has("AESEQ"))
	col, ok := tbl.Column("USUBJID")
	require.True(t, ok)
	assert.Equal(t, dataframe.Column{"1", "2", "3"}, col)
}

func TestTableAddColumnRejectsExisting(t *testing.T) {
	t.Parallel()
	tbl, err := dataframe.NewTable(map[string]dataframe.Column{
		"USUBJID": {"1", "2"},
	})
	require.NoError(t, err)
	assert.NoError(t, tbl.AddColumn("AESEQ", dataframe.Column{"1", "2"}))
	assert.Error(t, tbl.AddColumn("AESEQ", dataframe.Column{"3", "4"}))
	assert.Error(t, tbl.AddColumn("AEDECOD", dataframe.Column{"only-one"}))
}

func TestTableUniqueColumnName(t *testing.T) {
	t.Parallel()
	tbl, err := dataframe.NewTable(map[string]dataframe.Column{
		"AESEQ": {"1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "AESEQ_flag", tbl.UniqueColumnName("AESEQ_flag"))
	require.NoError(t, tbl.AddColumn("AESEQ_flag", dataframe.Column{"x"}))
	assert.Equal(t, "AESEQ_flag_1", tbl.UniqueColumnName("AESEQ_flag"))
}
