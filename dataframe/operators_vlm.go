// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package dataframe

import "github.com/clinicalcore/ruleops"

// vlmRecordsFor returns every VLMRecord whose Filter passes for row i, in
// declaration order (spec §3: multiple records may apply to one row,
// e.g. different codelists per visit type).
func (b *Bundle) vlmRecordsFor(i int) []VLMRecord {
	var out []VLMRecord
	for _, rec := range b.ValueLevelMetadata {
		if rec.Filter == nil || rec.Filter(i, b.Value) {
			out = append(out, rec)
		}
	}
	return out
}

// NonConformantValueDataType reports whether row i fails every
// applicable VLM record's TypeCheck (spec §4.5 "Value-level metadata
// conformance", §9 Open Question: this is deliberately NOT the logical
// complement of ConformantValueDataType — see that method).
func (b *Bundle) NonConformantValueDataType(args OperatorArgs) (ruleops.Result, error) {
	out := make([]bool, b.Value.Rows())
	for i := range out {
		records := b.vlmRecordsFor(i)
		if len(records) == 0 {
			continue
		}
		failed := true
		for _, rec := range records {
			if rec.TypeCheck == nil || rec.TypeCheck(i, b.Value) {
				failed = false
				break
			}
		}
		out[i] = failed
	}
	return ruleops.ColumnOf(out), nil
}

// ConformantValueDataType reports whether row i passes at least one
// applicable VLM record's TypeCheck. A row with no applicable record is
// neither conformant nor non-conformant here; both operators report
// false for it, matching the source catalog's non-exhaustive pairing
// rather than synthesizing a complement.
func (b *Bundle) ConformantValueDataType(args OperatorArgs) (ruleops.Result, error) {
	out := make([]bool, b.Value.Rows())
	for i := range out {
		for _, rec := range b.vlmRecordsFor(i) {
			if rec.TypeCheck == nil || rec.TypeCheck(i, b.Value) {
				out[i] = true
				break
			}
		}
	}
	return ruleops.ColumnOf(out), nil
}

func (b *Bundle) NonConformantValueLength(args OperatorArgs) (ruleops.Result, error) {
	out := make([]bool, b.Value.Rows())
	for i := range out {
		records := b.vlmRecordsFor(i)
		if len(records) == 0 {
			continue
		}
		failed := true
		for _, rec := range records {
			if rec.LengthCheck == nil || rec.LengthCheck(i, b.Value) {
				failed = false
				break
			}
		}
		out[i] = failed
	}
	return ruleops.ColumnOf(out), nil
}

func (b *Bundle) ConformantValueLength(args OperatorArgs) (ruleops.Result, error) {
	out := make([]bool, b.Value.Rows())
	for i := range out {
		for _, rec := range b.vlmRecordsFor(i) {
			if rec.LengthCheck == nil || rec.LengthCheck(i, b.Value) {
				out[i] = true
				break
			}
		}
	}
	return ruleops.ColumnOf(out), nil
}
