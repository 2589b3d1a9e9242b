// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package dataframe

import (
	"fmt"

	"github.com/clinicalcore/ruleops"
)

// Call addresses a dataframe operator by name with its raw argument
// record (spec §6's invocation contract, generalized to the DATAFRAME
// input kind's single record argument, spec §4.4).
func (b *Bundle) Call(name string, raw map[string]any) (ruleops.Result, error) {
	const op = "dataframe.Bundle.Call"
	args, err := DecodeArgs(raw)
	if err != nil {
		return ruleops.Result{}, err
	}
	switch name {
	case "exists":
		return b.Exists(args)
	case "not_exists":
		return b.NotExists(args)
	case "equal_to":
		return b.EqualTo(args)
	case "not_equal_to":
		return b.NotEqualTo(args)
	case "equal_to_case_insensitive":
		return b.EqualToCaseInsensitive(args)
	case "not_equal_to_case_insensitive":
		return b.NotEqualToCaseInsensitive(args)
	case "less_than":
		return b.LessThan(args)
	case "less_than_or_equal_to":
		return b.LessThanOrEqualTo(args)
	case "greater_than":
		return b.GreaterThan(args)
	case "greater_than_or_equal_to":
		return b.GreaterThanOrEqualTo(args)
	case "contains":
		return b.Contains(args)
	case "contains_case_insensitive":
		return b.ContainsCaseInsensitive(args)
	case "does_not_contain":
		return b.DoesNotContain(args)
	case "does_not_contain_case_insensitive":
		return b.DoesNotContainCaseInsensitive(args)
	case "starts_with":
		return b.StartsWith(args)
	case "ends_with":
		return b.EndsWith(args)
	case "matches_regex":
		return b.MatchesRegex(args)
	case "not_matches_regex":
		return b.NotMatchesRegex(args)
	case "prefix_matches_regex":
		return b.PrefixMatchesRegex(args)
	case "not_prefix_matches_regex":
		return b.NotPrefixMatchesRegex(args)
	case "suffix_matches_regex":
		return b.SuffixMatchesRegex(args)
	case "not_suffix_matches_regex":
		return b.NotSuffixMatchesRegex(args)
	case "is_contained_by":
		return b.IsContainedBy(args)
	case "is_not_contained_by":
		return b.IsNotContainedBy(args)
	case "is_contained_by_case_insensitive":
		return b.IsContainedByCaseInsensitive(args)
	case "is_not_contained_by_case_insensitive":
		return b.IsNotContainedByCaseInsensitive(args)
	case "has_equal_length":
		return b.HasEqualLength(args)
	case "has_not_equal_length":
		return b.HasNotEqualLength(args)
	case "longer_than":
		return b.LongerThan(args)
	case "longer_than_or_equal_to":
		return b.LongerThanOrEqualTo(args)
	case "shorter_than":
		return b.ShorterThan(args)
	case "shorter_than_or_equal_to":
		return b.ShorterThanOrEqualTo(args)
	case "empty":
		return b.Empty(args)
	case "non_empty":
		return b.NonEmpty(args)
	case "empty_within_except_last_row":
		return b.EmptyWithinExceptLastRow(args)
	case "non_empty_within_except_last_row":
		return b.NonEmptyWithinExceptLastRow(args)
	case "is_unique_set":
		return b.IsUniqueSet(args)
	case "is_not_unique_set":
		return b.IsNotUniqueSet(args)
	case "is_unique_relationship":
		return b.IsUniqueRelationship(args)
	case "is_not_unique_relationship":
		return b.IsNotUniqueRelationship(args)
	case "is_ordered_set":
		return b.IsOrderedSet(args)
	case "is_not_ordered_set":
		return b.IsNotOrderedSet(args)
	case "is_ordered_by":
		return b.IsOrderedBy(args)
	case "contains_all":
		return b.ContainsAll(args)
	case "not_contains_all":
		return b.NotContainsAll(args)
	case "invalid_date":
		return b.InvalidDate(args)
	case "is_complete_date":
		return b.IsCompleteDate(args)
	case "is_incomplete_date":
		return b.IsIncompleteDate(args)
	case "date_equal_to":
		return b.DateEqualTo(args)
	case "date_not_equal_to":
		return b.DateNotEqualTo(args)
	case "date_less_than":
		return b.DateLessThan(args)
	case "date_less_than_or_equal_to":
		return b.DateLessThanOrEqualTo(args)
	case "date_greater_than":
		return b.DateGreaterThan(args)
	case "date_greater_than_or_equal_to":
		return b.DateGreaterThanOrEqualTo(args)
	case "is_valid_reference":
		return b.IsValidReference(args)
	case "is_not_valid_reference":
		return b.IsNotValidReference(args)
	case "is_valid_relationship":
		return b.IsValidRelationship(args)
	case "is_not_valid_relationship":
		return b.IsNotValidRelationship(args)
	case "non_conformant_value_data_type":
		return b.NonConformantValueDataType(args)
	case "conformant_value_data_type":
		return b.ConformantValueDataType(args)
	case "non_conformant_value_length":
		return b.NonConformantValueLength(args)
	case "conformant_value_length":
		return b.ConformantValueLength(args)
	case "has_next_corresponding_record":
		return b.HasNextCorrespondingRecord(args)
	case "does_not_have_next_corresponding_record":
		return b.DoesNotHaveNextCorrespondingRecord(args)
	case "present_on_multiple_rows_within":
		return b.PresentOnMultipleRowsWithin(args)
	case "not_present_on_multiple_rows_within":
		return b.NotPresentOnMultipleRowsWithin(args)
	case "additional_columns_empty":
		return b.AdditionalColumnsEmpty(args)
	case "additional_columns_not_empty":
		return b.AdditionalColumnsNotEmpty(args)
	case "references_correct_codelist":
		return b.ReferencesCorrectCodelist(args)
	case "does_not_reference_correct_codelist":
		return b.DoesNotReferenceCorrectCodelist(args)
	case "uses_valid_codelist_terms":
		return b.UsesValidCodelistTerms(args)
	case "does_not_use_valid_codelist_terms":
		return b.DoesNotUseValidCodelistTerms(args)
	case "has_different_values":
		return b.HasDifferentValues(args)
	case "has_same_values":
		return b.HasSameValues(args)
	default:
		return ruleops.Result{}, fmt.Errorf("%s: %w: %q", op, ruleops.ErrUnknownOperator, name)
	}
}
