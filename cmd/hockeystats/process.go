package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"hockey-stats-pipeline/analysis"
)

var (
	processInput  string
	processOutput string
	processReport string
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Clean the raw scrape CSV and emit a profiling report",
	RunE:  runProcess,
}

func init() {
	processCmd.Flags().StringVar(&processInput, "input", "data/raw/hockey_teams_raw.csv", "Raw scrape CSV to process")
	processCmd.Flags().StringVar(&processOutput, "output", "data/processed/hockey_team_stats.csv", "Cleaned CSV destination")
	processCmd.Flags().StringVar(&processReport, "report", "reports/data_profiling_report.html", "HTML profile report destination")
	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	raw, err := analysis.Load(processInput)
	if err != nil {
		return err
	}

	seasons, err := analysis.Clean(raw.Drop("scrape_timestamp", "goals_diff"))
	if err != nil {
		return fmt.Errorf("clean dataset: %w", err)
	}

	cleaned := analysis.SeasonsDataset(seasons)
	if err := cleaned.WriteCSV(processOutput); err != nil {
		return err
	}
	slog.Info("cleaned dataset written",
		slog.String("path", processOutput),
		slog.Int("rows", len(seasons)),
	)

	if processReport != "" {
		title := "Hockey Team Stats - Data Profile Report"
		if err := analysis.WriteProfileReport(cleaned, processReport, title); err != nil {
			return err
		}
		slog.Info("profile report written", slog.String("path", processReport))
	}

	return nil
}
