// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tomtom215/wayfarer/internal/insights"
	"github.com/tomtom215/wayfarer/internal/logging"
	"github.com/tomtom215/wayfarer/internal/models"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	var file, section, format string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Generate the insight report for a journal export",
		Example: "  wayfarer analyze -f journal.json\n" +
			"  cat journal.json | wayfarer analyze --section mood_timeline --format yaml",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := parseFormat(format)
			if err != nil {
				return err
			}
			result, err := a.readPages(cmd, file)
			if err != nil {
				return err
			}

			if section != "" {
				out, err := a.engine.RunSection(cmd.Context(), result.Entries, section)
				switch {
				case errors.Is(err, insights.ErrUnknownSection):
					return fmt.Errorf("%w (run 'wayfarer sections' for the list)", err)
				case err != nil:
					logging.Warn().Err(err).Str("section", section).Msg("Section degraded to its default")
				}
				return render(cmd.OutOrStdout(), f, out)
			}

			report, summary := a.engine.Run(cmd.Context(), result.Entries)
			if summary.Degraded() {
				logging.Warn().Strs("sections", summary.Failed).Msg("Report degraded")
			}
			return render(cmd.OutOrStdout(), f, report)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "journal export file (default stdin)")
	cmd.Flags().StringVarP(&section, "section", "s", "", "run a single section")
	cmd.Flags().StringVarP(&format, "format", "o", string(formatJSON), "output format: json, yaml, table")
	return cmd
}

// wordTable renders word counts as two columns.
type wordTable []models.WordCount

func (w wordTable) header() []string { return []string{"WORD", "COUNT"} }

func (w wordTable) rows() [][]string {
	rows := make([][]string, len(w))
	for i, wc := range w {
		rows[i] = []string{wc.Word, strconv.Itoa(wc.Count)}
	}
	return rows
}

func newWordsCmd(a *app) *cobra.Command {
	var file, format string
	var limit int

	cmd := &cobra.Command{
		Use:   "words",
		Short: "List the most frequent words across all entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := parseFormat(format)
			if err != nil {
				return err
			}
			if limit < 0 {
				return fmt.Errorf("--limit must not be negative, got %d", limit)
			}
			result, err := a.readPages(cmd, file)
			if err != nil {
				return err
			}

			words := a.engine.WordFrequencies(result.Entries)
			if limit > 0 && limit < len(words) {
				words = words[:limit]
			}
			if f == formatTable {
				return render(cmd.OutOrStdout(), f, wordTable(words))
			}
			return render(cmd.OutOrStdout(), f, words)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "journal export file (default stdin)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of words (default insights.word_frequency_limit)")
	cmd.Flags().StringVarP(&format, "format", "o", string(formatTable), "output format: json, yaml, table")
	return cmd
}

func newSectionsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List insight section names in report order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range a.engine.Sections() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
