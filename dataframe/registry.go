// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package dataframe

import (
	"strings"

	"github.com/clinicalcore/ruleops"
)

// operatorNames lists every dataframe operator in the spec §4.5
// catalog, in declaration order, for AllOperators(). Every dataframe
// operator takes the same DATAFRAME-shaped record argument (spec §4.4),
// so every entry shares ruleops.DATAFRAME as its input kind.
var operatorNames = []string{
	"exists", "not_exists",
	"equal_to", "not_equal_to", "equal_to_case_insensitive", "not_equal_to_case_insensitive",
	"less_than", "less_than_or_equal_to", "greater_than", "greater_than_or_equal_to",
	"contains", "contains_case_insensitive", "does_not_contain", "does_not_contain_case_insensitive",
	"starts_with", "ends_with",
	"matches_regex", "not_matches_regex",
	"prefix_matches_regex", "not_prefix_matches_regex",
	"suffix_matches_regex", "not_suffix_matches_regex",
	"is_contained_by", "is_not_contained_by",
	"is_contained_by_case_insensitive", "is_not_contained_by_case_insensitive",
	"has_equal_length", "has_not_equal_length",
	"longer_than", "longer_than_or_equal_to", "shorter_than", "shorter_than_or_equal_to",
	"empty", "non_empty",
	"empty_within_except_last_row", "non_empty_within_except_last_row",
	"is_unique_set", "is_not_unique_set",
	"is_unique_relationship", "is_not_unique_relationship",
	"is_ordered_set", "is_not_ordered_set", "is_ordered_by",
	"contains_all", "not_contains_all",
	"invalid_date", "is_complete_date", "is_incomplete_date",
	"date_equal_to", "date_not_equal_to",
	"date_less_than", "date_less_than_or_equal_to",
	"date_greater_than", "date_greater_than_or_equal_to",
	"is_valid_reference", "is_not_valid_reference",
	"is_valid_relationship", "is_not_valid_relationship",
	"non_conformant_value_data_type", "conformant_value_data_type",
	"non_conformant_value_length", "conformant_value_length",
	"has_next_corresponding_record", "does_not_have_next_corresponding_record",
	"present_on_multiple_rows_within", "not_present_on_multiple_rows_within",
	"additional_columns_empty", "additional_columns_not_empty",
	"references_correct_codelist", "does_not_reference_correct_codelist",
	"uses_valid_codelist_terms", "does_not_use_valid_codelist_terms",
	"has_different_values", "has_same_values",
}

// AllOperators enumerates every dataframe operator's pretty label and
// input kind (spec §4.2, §6 registry surface).
func AllOperators() []ruleops.OperatorInfo {
	out := make([]ruleops.OperatorInfo, 0, len(operatorNames))
	for _, name := range operatorNames {
		out = append(out, ruleops.OperatorInfo{
			Name:      name,
			Label:     deriveLabel(name),
			InputKind: ruleops.DATAFRAME,
		})
	}
	return out
}

// deriveLabel mirrors the root package's label-derivation rule (spec
// §4.2): split on "_", capitalize the first token, lowercase the rest.
func deriveLabel(name string) string {
	parts := strings.Split(name, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		if i == 0 {
			parts[i] = strings.ToUpper(p[:1]) + strings.ToLower(p[1:])
		} else {
			parts[i] = strings.ToLower(p)
		}
	}
	return strings.Join(parts, " ")
}
