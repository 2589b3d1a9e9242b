// Copyright (c) HashiCorp, Inc.

package ruleops

// AllOperatorsByType returns every scalar type's operator enumeration,
// keyed by type name, the shape a rule-authoring UI walks to render a
// form per type (spec §6 registry surface). Dataframe operators are
// enumerated separately by the dataframe package, since they live in
// their own registry.
func AllOperatorsByType() map[string][]OperatorInfo {
	return map[string][]OperatorInfo{
		"string":          StringOperators(),
		"numeric":         NumericOperators(),
		"boolean":         BooleanOperators(),
		"select":          SelectOperators(),
		"select_multiple": SelectMultipleOperators(),
		"generic":         GenericOperators(),
	}
}
