// Copyright (c) 2025-present LaunchPlan Labs. All Rights Reserved.
// See LICENSE.txt for license information.

package plan

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const tableOfContents = `## Table of Contents
1. [Executive Summary](#1-executive-summary)
2. [Mission, Vision, and Value Proposition](#2-mission-vision-and-value-proposition)
3. [Situation and Market Analysis](#3-situation-and-market-analysis)
4. [SWOT Analysis](#4-swot-analysis)
5. [Target Audience and Positioning](#5-target-audience-and-positioning)
6. [Marketing Goals and KPIs](#6-marketing-goals-and-kpis)
7. [Strategy and Marketing Mix](#7-strategy-and-marketing-mix)
8. [Tactics and Action Plan](#8-tactics-and-action-plan)
9. [Budget and Resources](#9-budget-and-resources)
10. [Monitoring and Evaluation](#10-monitoring-and-evaluation)
11. [Risks and Mitigation](#11-risks-and-mitigation)
12. [Launch Strategy](#12-launch-strategy)
`

// Markdown renders the document as a readable report: header block, table
// of contents, the twelve sections in registry order, and the evaluation
// summary. Output is deterministic for a given document.
func (d *Document) Markdown() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Marketing Plan: %s\n\n", d.Metadata.ProductName)
	fmt.Fprintf(&sb, "**Generated:** %s  \n", d.Metadata.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(&sb, "**Version:** %s  \n", d.Metadata.Version)
	fmt.Fprintf(&sb, "**Quality Score:** %.1f/10  \n", d.Evaluation.OverallScore)
	sb.WriteString("\n---\n\n")
	sb.WriteString(tableOfContents)
	sb.WriteString("\n---\n\n")

	for _, def := range sectionRegistry {
		section, ok := d.Sections[def.key]
		if !ok {
			continue
		}
		fmt.Fprintf(&sb, "\n## %s\n\n", section.Title)
		sb.WriteString(renderSectionContent(section.Content))
		sb.WriteString("\n---\n")
	}

	sb.WriteString("\n## Evaluation Summary\n\n")
	fmt.Fprintf(&sb, "**Overall Score:** %.1f/10\n\n", d.Evaluation.OverallScore)

	if len(d.Evaluation.Strengths) > 0 {
		sb.WriteString("### Strengths\n")
		strengths := d.Evaluation.Strengths
		if len(strengths) > 5 {
			strengths = strengths[:5]
		}
		for _, s := range strengths {
			fmt.Fprintf(&sb, "- %s\n", s)
		}
		sb.WriteString("\n")
	}
	if len(d.Evaluation.Recommendations) > 0 {
		sb.WriteString("### Recommendations\n")
		for _, r := range d.Evaluation.Recommendations {
			fmt.Fprintf(&sb, "- %s\n", r)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// renderSectionContent walks the content through its JSON form so typed
// fragments render in field declaration order and raw maps render in sorted
// key order, both stable across runs.
func renderSectionContent(content any) string {
	if content == nil {
		return ""
	}
	raw, err := json.Marshal(content)
	if err != nil {
		return ""
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	v, err := decodeOrdered(dec)
	if err != nil || v.kind != kindObject {
		return ""
	}
	var sb strings.Builder
	renderFields(&sb, v, 3)
	return sb.String()
}

type mdKind int

const (
	kindScalar mdKind = iota
	kindObject
	kindArray
)

type mdValue struct {
	kind   mdKind
	scalar string
	fields []mdField
	items  []mdValue
}

type mdField struct {
	key   string
	value mdValue
}

// decodeOrdered reads one JSON value off the decoder, preserving object key
// order, which encoding/json's map decoding would lose.
func decodeOrdered(dec *json.Decoder) (mdValue, error) {
	tok, err := dec.Token()
	if err != nil {
		return mdValue{}, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := mdValue{kind: kindObject}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return mdValue{}, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return mdValue{}, fmt.Errorf("unexpected object key token %v", keyTok)
				}
				val, err := decodeOrdered(dec)
				if err != nil {
					return mdValue{}, err
				}
				obj.fields = append(obj.fields, mdField{key: key, value: val})
			}
			if _, err := dec.Token(); err != nil {
				return mdValue{}, err
			}
			return obj, nil
		default: // '['
			arr := mdValue{kind: kindArray}
			for dec.More() {
				val, err := decodeOrdered(dec)
				if err != nil {
					return mdValue{}, err
				}
				arr.items = append(arr.items, val)
			}
			if _, err := dec.Token(); err != nil {
				return mdValue{}, err
			}
			return arr, nil
		}
	case string:
		return mdValue{kind: kindScalar, scalar: t}, nil
	case json.Number:
		return mdValue{kind: kindScalar, scalar: t.String()}, nil
	case bool:
		return mdValue{kind: kindScalar, scalar: strconv.FormatBool(t)}, nil
	default: // null
		return mdValue{kind: kindScalar}, nil
	}
}

// renderFields writes an object as markdown: nested objects and lists get a
// sub-header at the current level, scalars render as bold key/value lines.
func renderFields(sb *strings.Builder, obj mdValue, level int) {
	for _, f := range obj.fields {
		header := titleize(f.key)
		switch f.value.kind {
		case kindObject:
			fmt.Fprintf(sb, "%s %s\n\n", strings.Repeat("#", level), header)
			renderFields(sb, f.value, level+1)
		case kindArray:
			fmt.Fprintf(sb, "%s %s\n\n", strings.Repeat("#", level), header)
			for _, item := range f.value.items {
				if item.kind == kindObject {
					renderItemFields(sb, item)
					sb.WriteString("\n")
				} else {
					fmt.Fprintf(sb, "- %s\n", item.scalar)
				}
			}
			sb.WriteString("\n")
		default:
			fmt.Fprintf(sb, "**%s:** %s\n\n", header, f.value.scalar)
		}
	}
}

// renderItemFields writes one object list entry as bold key/value bullets,
// joining nested lists and flattening nested objects into the same bullet
// run.
func renderItemFields(sb *strings.Builder, item mdValue) {
	for _, f := range item.fields {
		key := titleize(f.key)
		switch f.value.kind {
		case kindArray:
			parts := make([]string, 0, len(f.value.items))
			for _, it := range f.value.items {
				parts = append(parts, it.scalar)
			}
			fmt.Fprintf(sb, "- **%s:** %s\n", key, strings.Join(parts, ", "))
		case kindObject:
			renderItemFields(sb, f.value)
		default:
			fmt.Fprintf(sb, "- **%s:** %s\n", key, f.value.scalar)
		}
	}
}

// titleize turns a snake_case key into a spaced header, capitalizing each
// word the way the report's section bodies expect.
func titleize(key string) string {
	words := strings.Split(strings.ReplaceAll(key, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
