// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package refdata

import (
	"context"
	"fmt"

	"github.com/clinicalcore/ruleops/dataframe"
	"gorm.io/gorm"
)

// Loader populates Bundle construction options from an external store.
// Load runs once, at Bundle construction; operators never query it
// mid-evaluation (spec §3, §9).
type Loader interface {
	Load(ctx context.Context) (Data, error)
}

// Data is everything a Loader can contribute to a Bundle.
type Data struct {
	RelationshipData  dataframe.RelationshipData
	ColumnCodelistMap map[string][]string
	CodelistTerms     map[string]dataframe.CodelistTerms
}

// BundleOptions converts Data into the dataframe.BundleOption values
// NewBundle expects.
func (d Data) BundleOptions() []dataframe.BundleOption {
	return []dataframe.BundleOption{
		dataframe.WithRelationshipData(d.RelationshipData),
		dataframe.WithColumnCodelistMap(d.ColumnCodelistMap),
		dataframe.WithCodelistTermMaps([]map[string]dataframe.CodelistTerms{d.CodelistTerms}),
	}
}

// GormLoader loads Data from any gorm.io/gorm-compatible database (spec
// §9: sqlite in-process for unit tests, Postgres for integration tests
// via refdata/postgres).
type GormLoader struct {
	DB *gorm.DB
}

// NewGormLoader wraps an already-connected *gorm.DB.
func NewGormLoader(db *gorm.DB) *GormLoader {
	return &GormLoader{DB: db}
}

// Migrate creates the reference-data schema. Tests call this against an
// in-memory sqlite database; production callers run it once per
// deployment, the way a migration tool would.
func (l *GormLoader) Migrate(ctx context.Context) error {
	return l.DB.WithContext(ctx).AutoMigrate(AllModels()...)
}

func (l *GormLoader) Load(ctx context.Context) (Data, error) {
	const op = "refdata.GormLoader.Load"
	db := l.DB.WithContext(ctx)

	var relEntries []RelationshipEntry
	if err := db.Find(&relEntries).Error; err != nil {
		return Data{}, fmt.Errorf("%s: loading relationship entries: %w", op, err)
	}
	relationshipData := buildRelationshipData(relEntries)

	var columnCodelists []ColumnCodelist
	if err := db.Find(&columnCodelists).Error; err != nil {
		return Data{}, fmt.Errorf("%s: loading column codelists: %w", op, err)
	}
	columnCodelistMap := make(map[string][]string, len(columnCodelists))
	for _, cc := range columnCodelists {
		columnCodelistMap[cc.ColumnName] = append(columnCodelistMap[cc.ColumnName], cc.CodelistName)
	}

	var codelists []Codelist
	if err := db.Find(&codelists).Error; err != nil {
		return Data{}, fmt.Errorf("%s: loading codelists: %w", op, err)
	}
	var terms []CodelistTerm
	if err := db.Find(&terms).Error; err != nil {
		return Data{}, fmt.Errorf("%s: loading codelist terms: %w", op, err)
	}
	codelistTerms := buildCodelistTerms(codelists, terms)

	return Data{
		RelationshipData:  relationshipData,
		ColumnCodelistMap: columnCodelistMap,
		CodelistTerms:     codelistTerms,
	}, nil
}

// buildRelationshipData folds a flat relationship_entries table into the
// nested map shape dataframe.RelationshipData expects: un-scoped entries
// become a flat []string set; context-scoped entries become a nested
// map[context]->[]string (spec §3). The same rows serve both reference
// operators: is_valid_relationship reads RelationshipKey as the target
// value and checks the comparator against the resulting []string set,
// while is_valid_reference checks only that RelationshipKey itself
// matches the target value (MemberValue is irrelevant to it).
func buildRelationshipData(entries []RelationshipEntry) dataframe.RelationshipData {
	flat := map[string][]string{}
	nested := map[string]map[string][]string{}
	for _, e := range entries {
		if e.ContextKey == "" {
			flat[e.RelationshipKey] = append(flat[e.RelationshipKey], e.MemberValue)
			continue
		}
		byCtx, ok := nested[e.RelationshipKey]
		if !ok {
			byCtx = map[string][]string{}
			nested[e.RelationshipKey] = byCtx
		}
		byCtx[e.ContextKey] = append(byCtx[e.ContextKey], e.MemberValue)
	}
	out := make(dataframe.RelationshipData, len(flat)+len(nested))
	for key, members := range flat {
		out[key] = members
	}
	for key, byCtx := range nested {
		node := make(map[string]any, len(byCtx))
		for ctx, members := range byCtx {
			node[ctx] = members
		}
		out[key] = node
	}
	return out
}

func buildCodelistTerms(codelists []Codelist, terms []CodelistTerm) map[string]dataframe.CodelistTerms {
	extensible := make(map[string]bool, len(codelists))
	for _, c := range codelists {
		extensible[c.Name] = c.Extensible
	}
	byName := map[string]map[string]struct{}{}
	for _, t := range terms {
		set, ok := byName[t.CodelistName]
		if !ok {
			set = map[string]struct{}{}
			byName[t.CodelistName] = set
		}
		set[t.Term] = struct{}{}
	}
	out := make(map[string]dataframe.CodelistTerms, len(codelists))
	for _, c := range codelists {
		out[c.Name] = dataframe.CodelistTerms{
			Extensible:   extensible[c.Name],
			AllowedTerms: byName[c.Name],
		}
	}
	return out
}
