// Copyright (c) 2025-present LaunchPlan Labs. All Rights Reserved.
// See LICENSE.txt for license information.

package plan

import (
	"fmt"
	"strings"
)

// Attributes is the caller-supplied product and market brief that feeds the
// prompt builders. Keys follow the intake form vocabulary (product_name,
// product_features, target_primary, marketing_channels, ...) and values are
// strings or lists of strings. Only product_name is required anywhere;
// missing keys degrade prompt specificity, never the pipeline.
type Attributes map[string]any

// Str returns the attribute rendered as a single prompt line, or fallback
// when the key is absent or holds an empty value. List values are joined
// with ", " so multi-valued attributes can feed one placeholder.
func (a Attributes) Str(key, fallback string) string {
	v, ok := a[key]
	if !ok || v == nil {
		return fallback
	}
	switch t := v.(type) {
	case string:
		if strings.TrimSpace(t) == "" {
			return fallback
		}
		return t
	case []string:
		if len(t) == 0 {
			return fallback
		}
		return strings.Join(t, ", ")
	case []any:
		if len(t) == 0 {
			return fallback
		}
		parts := make([]string, 0, len(t))
		for _, item := range t {
			parts = append(parts, fmt.Sprintf("%v", item))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprintf("%v", t)
	}
}

// Strs returns the attribute as a list. Scalars become a single-element
// list; absent or empty values return nil.
func (a Attributes) Strs(key string) []string {
	v, ok := a[key]
	if !ok || v == nil {
		return nil
	}
	switch t := v.(type) {
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			out = append(out, fmt.Sprintf("%v", item))
		}
		return out
	case string:
		if strings.TrimSpace(t) == "" {
			return nil
		}
		return []string{t}
	default:
		return []string{fmt.Sprintf("%v", t)}
	}
}

// Clone copies the attribute set, duplicating list values so the iteration
// path can layer feedback onto a copy without touching the caller's map.
func (a Attributes) Clone() Attributes {
	out := make(Attributes, len(a))
	for k, v := range a {
		switch t := v.(type) {
		case []string:
			out[k] = append([]string(nil), t...)
		case []any:
			out[k] = append([]any(nil), t...)
		default:
			out[k] = v
		}
	}
	return out
}
