// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

//go:build postgres_integration

package postgres

import (
	"context"
	"testing"

	"github.com/clinicalcore/ruleops/refdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test_postgres exercises refdata.GormLoader end to end against a real
// Postgres instance, the way the teacher's own tests/postgres package
// validated mql-generated SQL against Postgres rather than sqlite.
func Test_postgres(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	gormDB := setupDB(t)
	loader := refdata.NewGormLoader(gormDB)
	require.NoError(t, loader.Migrate(ctx))

	require.NoError(t, gormDB.Create(&refdata.RelationshipEntry{
		RelationshipKey: "DOMAIN", MemberValue: "AE",
	}).Error)
	require.NoError(t, gormDB.Create(&refdata.Codelist{Name: "SEVERITY", Extensible: true}).Error)
	require.NoError(t, gormDB.Create(&refdata.CodelistTerm{CodelistName: "SEVERITY", Term: "MILD"}).Error)

	data, err := loader.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"AE"}, data.RelationshipData["DOMAIN"])
	assert.True(t, data.CodelistTerms["SEVERITY"].Extensible)
}
