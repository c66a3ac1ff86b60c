// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/tomtom215/wayfarer/internal/config"
	"github.com/tomtom215/wayfarer/internal/insights"
)

const journal = `{"allPages": [
  {"textData": "Sunrise over the temple was wonderful and the old temple bells were beautiful", "location": "Kyoto, Japan", "updatedAt": "2024-04-02T06:30:00Z", "tags": ["temple", "hiking"]},
  {"textData": "Another quiet temple garden, a lovely calm afternoon", "location": "Kyoto, Japan", "updatedAt": "2024-04-03T15:00:00Z", "tags": ["temple"]},
  {"textData": "Rainy museum day in Paris", "location": "Paris, France", "updatedAt": "2024-11-20T10:00:00Z", "tags": 7}
]}`

// execute runs the CLI with args and stdin and returns stdout. Command tests
// are not parallel because every run reconfigures the global logger.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var stdout bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.Execute()
	return stdout.String(), err
}

func TestAnalyzeJSONFromStdin(t *testing.T) {
	out, err := execute(t, journal, "analyze")
	if err != nil {
		t.Fatalf("analyze error = %v", err)
	}

	var report map[string]any
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if report["status"] != "success" {
		t.Errorf("status = %v, want success", report["status"])
	}
	if report["unique_locations_count"] != float64(2) {
		t.Errorf("unique_locations_count = %v, want 2", report["unique_locations_count"])
	}
	seasonal := report["seasonal_patterns"].(map[string]any)
	if seasonal["most_common_season"] != "Spring" {
		t.Errorf("most_common_season = %v, want Spring", seasonal["most_common_season"])
	}
}

func TestAnalyzeYAMLFromFile(t *testing.T) {
	// A bare array is accepted from files exported by other tools.
	path := filepath.Join(t.TempDir(), "pages.json")
	pages := `[{"textData": "Glacier lake hike, amazing views", "location": "Banff, Canada", "updatedAt": "2024-07-10"}]`
	if err := os.WriteFile(path, []byte(pages), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "", "analyze", "--file", path, "--format", "yaml")
	if err != nil {
		t.Fatalf("analyze error = %v", err)
	}

	var report map[string]any
	if err := yaml.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, out)
	}
	if report["status"] != "success" {
		t.Errorf("status = %v, want success", report["status"])
	}
	if !strings.HasPrefix(out, "status: success\n") {
		t.Errorf("YAML should keep report key order, got:\n%.80s", out)
	}
	if strings.Contains(out, `"status"`) || strings.Contains(out, "status: \"success\"") {
		t.Errorf("YAML output should not keep JSON quoting, got:\n%.80s", out)
	}
}

func TestAnalyzeSection(t *testing.T) {
	out, err := execute(t, journal, "analyze", "--section", insights.SectionLocationRepeats)
	if err != nil {
		t.Fatalf("analyze error = %v", err)
	}

	var section map[string]any
	if err := json.Unmarshal([]byte(out), &section); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if _, ok := section[insights.SectionLocationRepeats]; !ok {
		t.Errorf("missing %s key in %v", insights.SectionLocationRepeats, section)
	}
	if section["unique_locations_count"] != float64(2) {
		t.Errorf("unique_locations_count = %v, want 2", section["unique_locations_count"])
	}
}

func TestAnalyzeTable(t *testing.T) {
	out, err := execute(t, journal, "analyze", "-o", "table")
	if err != nil {
		t.Fatalf("analyze error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if !strings.HasPrefix(lines[0], "SECTION") || !strings.HasPrefix(lines[1], "-------") {
		t.Fatalf("unexpected table header:\n%s", out)
	}
	// header, rule, then one row per report key
	if len(lines) != 2+19 {
		t.Errorf("table rows = %d, want 19", len(lines)-2)
	}
	if !strings.Contains(out, "unique_locations_count") {
		t.Errorf("table is missing unique_locations_count:\n%s", out)
	}
}

func TestAnalyzeErrors(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  error
	}{
		{"unknown section", journal, []string{"analyze", "--section", "vibes"}, insights.ErrUnknownSection},
		{"bad format", journal, []string{"analyze", "--format", "xml"}, nil},
		{"malformed json", `{"allPages": [`, []string{"analyze"}, nil},
		{"missing pages", `{"pages": []}`, []string{"analyze"}, nil},
		{"missing file", "", []string{"analyze", "-f", "/does/not/exist.json"}, os.ErrNotExist},
		{"negative limit", journal, []string{"words", "--limit", "-1"}, nil},
		{"bad log level", journal, []string{"sections", "--log-level", "loud"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewRootCmd()
			cmd.SetIn(strings.NewReader(tt.stdin))
			cmd.SetOut(io.Discard)
			cmd.SetErr(io.Discard)
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestWords(t *testing.T) {
	out, err := execute(t, journal, "words", "--limit", "2")
	if err != nil {
		t.Fatalf("words error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("lines = %d, want header, rule and 2 rows:\n%s", len(lines), out)
	}
	if fields := strings.Fields(lines[2]); len(fields) != 2 || fields[0] != "temple" || fields[1] != "3" {
		t.Errorf("first row = %q, want temple 3", lines[2])
	}

	out, err = execute(t, journal, "words", "-o", "json")
	if err != nil {
		t.Fatalf("words error = %v", err)
	}
	var words []struct {
		Word  string `json:"word"`
		Count int    `json:"count"`
	}
	if err := json.Unmarshal([]byte(out), &words); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(words) == 0 || words[0].Word != "temple" {
		t.Errorf("words = %v, want temple first", words)
	}
}

func TestSections(t *testing.T) {
	out, err := execute(t, "", "sections")
	if err != nil {
		t.Fatalf("sections error = %v", err)
	}
	names := strings.Fields(out)
	if len(names) != 16 {
		t.Fatalf("sections = %d, want 16", len(names))
	}
	if names[0] != insights.SectionSentiment || names[15] != insights.SectionTravelStyle {
		t.Errorf("sections order = %v", names)
	}
}

func TestConfigFlag(t *testing.T) {
	t.Setenv(config.ConfigPathEnvVar, "")

	path := filepath.Join(t.TempDir(), "wayfarer.yaml")
	cfg := "insights:\n  word_frequency_limit: 1\ngeocoder:\n  provider: none\n"
	if err := os.WriteFile(path, []byte(cfg), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, journal, "words", "--config", path, "-o", "json")
	if err != nil {
		t.Fatalf("words error = %v", err)
	}
	var words []map[string]any
	if err := json.Unmarshal([]byte(out), &words); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(words) != 1 {
		t.Errorf("words = %d, want 1 from word_frequency_limit", len(words))
	}

	if _, err := execute(t, journal, "sections", "--config", filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing --config file should fail")
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := map[string]outputFormat{
		"json":   formatJSON,
		" YAML ": formatYAML,
		"yml":    formatYAML,
		"table":  formatTable,
	}
	for in, want := range tests {
		got, err := parseFormat(in)
		if err != nil || got != want {
			t.Errorf("parseFormat(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := parseFormat("csv"); err == nil {
		t.Error("parseFormat(csv) should fail")
	}
}

func TestWriteTableWideRunes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rows := [][]string{{"東京", "3"}, {"Lisbon", "12"}}
	if err := writeTable(&buf, []string{"PLACE", "COUNT"}, rows); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// 東京 is four columns wide, so COUNT starts at the same column on every row.
	want := []string{
		"PLACE   COUNT",
		"------  -----",
		"東京    3",
		"Lisbon  12",
	}
	if len(lines) != len(want) {
		t.Fatalf("lines = %q", lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}
