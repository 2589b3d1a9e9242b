// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package dataframe

import (
	"fmt"

	"github.com/clinicalcore/ruleops"
	"github.com/mitchellh/mapstructure"
)

// OperatorArgs is the decoded shape of a dataframe operator's single
// record argument (spec §4.4): the recognized keys are target,
// comparator, value_is_literal, context, within, ordering,
// date_component, prefix, suffix.
type OperatorArgs struct {
	Target         string `mapstructure:"target"`
	Comparator     any    `mapstructure:"comparator"`
	ValueIsLiteral bool   `mapstructure:"value_is_literal"`
	Context        string `mapstructure:"context"`
	Within         string `mapstructure:"within"`
	Ordering       string `mapstructure:"ordering"`
	DateComponent  string `mapstructure:"date_component"`
	Prefix         int    `mapstructure:"prefix"`
	Suffix         int    `mapstructure:"suffix"`
}

// DecodeArgs decodes a raw argument record (typically JSON-shaped
// map[string]any coming from a rule definition) into OperatorArgs.
func DecodeArgs(raw map[string]any) (OperatorArgs, error) {
	const op = "dataframe.DecodeArgs"
	var args OperatorArgs
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &args,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return args, fmt.Errorf("%s: %w: %v", op, ruleops.ErrInternal, err)
	}
	if err := dec.Decode(raw); err != nil {
		return args, fmt.Errorf("%s: %w: %v", op, ruleops.ErrInvalidArgument, err)
	}
	return args, nil
}
