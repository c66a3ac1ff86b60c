// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"
)

type outputFormat string

const (
	formatJSON  outputFormat = "json"
	formatYAML  outputFormat = "yaml"
	formatTable outputFormat = "table"
)

// tableValueWidth bounds the display width of a value cell.
const tableValueWidth = 72

func parseFormat(s string) (outputFormat, error) {
	switch f := outputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case formatJSON, formatYAML, formatTable:
		return f, nil
	case "yml":
		return formatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want json, yaml or table)", s)
	}
}

// tabular is implemented by values with a natural column layout.
type tabular interface {
	header() []string
	rows() [][]string
}

func render(w io.Writer, f outputFormat, v any) error {
	switch f {
	case formatYAML:
		return writeYAML(w, v)
	case formatTable:
		if t, ok := v.(tabular); ok {
			return writeTable(w, t.header(), t.rows())
		}
		rows, err := keyValueRows(v)
		if err != nil {
			return err
		}
		return writeTable(w, []string{"SECTION", "VALUE"}, rows)
	default:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}
}

// toNode converts v to a YAML node through its JSON form, so the json tags
// and the report key order carry over.
func toNode(v any) (*yaml.Node, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("convert to yaml: %w", err)
	}
	if doc.Kind == yaml.DocumentNode && len(doc.Content) == 1 {
		return doc.Content[0], nil
	}
	return &doc, nil
}

// blockStyle drops the flow and quoting styles inherited from JSON.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}

func writeYAML(w io.Writer, v any) error {
	node, err := toNode(v)
	if err != nil {
		return err
	}
	blockStyle(node)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// keyValueRows flattens the top level of v into one row per key. Nested
// values are shown inline in YAML flow style.
func keyValueRows(v any) ([][]string, error) {
	node, err := toNode(v)
	if err != nil {
		return nil, err
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("table output needs an object, got yaml kind %d", node.Kind)
	}

	rows := make([][]string, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		value.Style = yaml.FlowStyle
		if value.Kind == yaml.ScalarNode {
			value.Style = 0
		}
		out, err := yaml.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", key.Value, err)
		}
		cell := strings.Join(strings.Fields(string(out)), " ")
		rows = append(rows, []string{key.Value, runewidth.Truncate(cell, tableValueWidth, "...")})
	}
	return rows, nil
}

// writeTable pads columns by display width so CJK and emoji place names
// stay aligned.
func writeTable(w io.Writer, header []string, rows [][]string) error {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			if cw := runewidth.StringWidth(row[i]); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	writeRow := func(cells []string) error {
		var sb strings.Builder
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			if i == len(widths)-1 {
				sb.WriteString(cell)
				break
			}
			sb.WriteString(runewidth.FillRight(cell, widths[i]))
			sb.WriteString("  ")
		}
		_, err := fmt.Fprintln(w, strings.TrimRight(sb.String(), " "))
		return err
	}

	if err := writeRow(header); err != nil {
		return err
	}
	dashes := make([]string, len(widths))
	for i, wd := range widths {
		dashes[i] = strings.Repeat("-", wd)
	}
	if err := writeRow(dashes); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeRow(row); err != nil {
			return err
		}
	}
	return nil
}
