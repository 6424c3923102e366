package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/evidenceworks/go-exif-harvest/internal/config"
	"github.com/evidenceworks/go-exif-harvest/internal/logger"
	"github.com/evidenceworks/go-exif-harvest/internal/metadata"
	"github.com/evidenceworks/go-exif-harvest/internal/storage"
	"github.com/evidenceworks/go-exif-harvest/internal/summary"
)

func newSummarizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summarize <json-file>",
		Short: "Flatten and summarize ExifTool JSON output",
		Long: `Load an ExifTool JSON dump, flatten nested tags into dot-separated columns,
and print per-tag non-null and unique-value counts. The summary can be written
to CSV and compared against a previous run to spot metadata drift.`,
		Args: cobra.ExactArgs(1),
		RunE: runSummarize,
	}

	cmd.Flags().String("write-summary", "", "path to write the generated column summary as CSV")
	cmd.Flags().String("compare-summary", "", "summary CSV from a previous run to compare against")
	cmd.Flags().Int("head", 5, "number of flattened rows to display for quick inspection (0 disables)")

	return cmd
}

func runSummarize(cmd *cobra.Command, args []string) error {
	cfg := parseSummaryConfig(cmd, args)

	records, err := metadata.LoadDocuments(cfg.JSONPath)
	if err != nil {
		return err
	}
	table := metadata.Flatten(records)
	summaries := summary.Summarize(table)

	fmt.Printf("Loaded %d metadata record(s) with %d tag columns.\n", len(table.Rows), len(table.Columns))
	if cfg.Head > 0 {
		fmt.Println("\nSample rows (flattened):")
		summary.PrintPreview(os.Stdout, table, cfg.Head)
	}

	fmt.Println("\nColumn summary:")
	summary.PrintSummary(os.Stdout, summaries)

	if cfg.SummaryPath != "" {
		if err := storage.WriteSummaryCSV(cfg.SummaryPath, summaries); err != nil {
			return err
		}
		fmt.Printf("\nWrote summary CSV to %s\n", cfg.SummaryPath)
	}

	if cfg.ComparePath != "" {
		existing, err := storage.ReadSummaryCSV(cfg.ComparePath)
		if errors.Is(err, os.ErrNotExist) {
			logger.Debugf("Comparison summary %s not found, skipping", cfg.ComparePath)
			return nil
		}
		if err != nil {
			return err
		}
		diffs := summary.Compare(summaries, existing)
		if len(diffs) == 0 {
			fmt.Println("\nNo differences detected when compared to existing summary.")
		} else {
			fmt.Println("\nDifferences compared to existing summary:")
			summary.PrintDiffs(os.Stdout, diffs)
		}
	}

	return nil
}

// parseSummaryConfig collects the summarize flags into a config struct
func parseSummaryConfig(cmd *cobra.Command, args []string) config.SummaryConfig {
	summaryPath, _ := cmd.Flags().GetString("write-summary")
	comparePath, _ := cmd.Flags().GetString("compare-summary")
	head, _ := cmd.Flags().GetInt("head")

	return config.SummaryConfig{
		JSONPath:    args[0],
		SummaryPath: summaryPath,
		ComparePath: comparePath,
		Head:        head,
	}
}
