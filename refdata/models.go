// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package refdata loads a Bundle's reference-integrity metadata --
// relationship data, codelist term sets, and column-to-codelist
// mappings -- from a relational store at construction time (spec §3,
// §9 "Reference-data loading"). Loading happens once per Bundle;
// operators never query the store mid-evaluation.
package refdata

// RelationshipEntry is one row of the relationship_entries table: a
// named relationship, optionally scoped by context, permitting one
// member value (spec §3 RelationshipData).
type RelationshipEntry struct {
	ID              uint   `gorm:"primaryKey"`
	RelationshipKey string `gorm:"column:relationship_key;index:idx_rel_key"`
	ContextKey      string `gorm:"column:context_key"`
	MemberValue     string `gorm:"column:member_value"`
}

func (RelationshipEntry) TableName() string { return "relationship_entries" }

// Codelist is one controlled-terminology list, e.g. a CDISC codelist
// (spec §3 CodelistTerms).
type Codelist struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"column:name;uniqueIndex"`
	Extensible bool   `gorm:"column:extensible"`
}

func (Codelist) TableName() string { return "codelists" }

// CodelistTerm is one allowed term of a Codelist.
type CodelistTerm struct {
	ID           uint   `gorm:"primaryKey"`
	CodelistName string `gorm:"column:codelist_name;index:idx_term_codelist"`
	Term         string `gorm:"column:term"`
}

func (CodelistTerm) TableName() string { return "codelist_terms" }

// ColumnCodelist registers which codelist(s) a column is permitted to
// reference (spec §3 ColumnCodelistMap, §4.5 references_correct_codelist).
type ColumnCodelist struct {
	ID           uint   `gorm:"primaryKey"`
	ColumnName   string `gorm:"column:column_name;index:idx_column"`
	CodelistName string `gorm:"column:codelist_name"`
}

func (ColumnCodelist) TableName() string { return "column_codelists" }

// AllModels lists every model AutoMigrate needs to create the schema,
// used by both the in-process sqlite tests and the Postgres integration
// suite (refdata/postgres).
func AllModels() []any {
	return []any{
		&RelationshipEntry{},
		&Codelist{},
		&CodelistTerm{},
		&ColumnCodelist{},
	}
}
