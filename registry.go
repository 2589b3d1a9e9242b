// Copyright (c) HashiCorp, Inc.

package ruleops

import "strings"

// OperatorInfo describes one registered operator: its name, UI label and
// the input widget kind a rule-authoring UI should render for its
// argument (spec §4.2, §6).
type OperatorInfo struct {
	Name      string
	Label     string
	InputKind FieldKind
}

// typeRegistry is the per-type static table spec §9 calls for in place
// of the source's method-decorator scan: built once at package
// initialization, keyed by operator name, in declaration order.
type typeRegistry struct {
	order   []string
	entries map[string]OperatorInfo
}

func newTypeRegistry() *typeRegistry {
	return &typeRegistry{entries: make(map[string]OperatorInfo)}
}

// register tags name as an operator with the given input kind and an
// auto-derived label, unless overridden by label.
func (r *typeRegistry) register(name string, kind FieldKind, label ...string) {
	lbl := deriveLabel(name)
	if len(label) > 0 && label[0] != "" {
		lbl = label[0]
	}
	if _, exists := r.entries[name]; !exists {
		r.order = append(r.order, name)
	}
	r.entries[name] = OperatorInfo{Name: name, Label: lbl, InputKind: kind}
}

// allOperators returns every registered operator in declaration order.
func (r *typeRegistry) allOperators() []OperatorInfo {
	out := make([]OperatorInfo, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.entries[name])
	}
	return out
}

func (r *typeRegistry) lookup(name string) (OperatorInfo, bool) {
	info, ok := r.entries[name]
	return info, ok
}

// deriveLabel tokenizes an operator name by splitting on "_",
// capitalizing the first token and lowercasing the rest, then joins
// with spaces (spec §4.2's default-label rule).
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
