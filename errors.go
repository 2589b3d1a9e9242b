// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package ruleops

import "errors"

// Sentinel errors produced by the value-coercion layer and the operator
// dispatch contract. ErrTypeMismatch and ErrInvalidArgument report bad
// values and argument shapes; ErrUnknownOperator reports a name no Call
// method recognizes; ErrInternal and ErrInvalidParameter report setup
// failures (argument decoder construction, a nil logger option).
// Missing columns, unresolved prefixes and absent relationship keys are
// not errors.
var (
	ErrInternal         = errors.New("internal error")
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrTypeMismatch is raised at construction time, or at argument
	// coercion time, when a value fails its type's coercion contract.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrInvalidArgument is raised when an operator receives a
	// malformed argument shape.
	ErrInvalidArgument = errors.New("invalid argument")

	ErrUnknownOperator = errors.New("unknown operator")
	ErrInvalidFieldKind = errors.New("invalid field kind")
)
