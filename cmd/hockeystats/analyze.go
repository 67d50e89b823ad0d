package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hockey-stats-pipeline/analysis"
)

var (
	analyzeInput    string
	analyzeColumn   string
	analyzeAgg      string
	analyzeN        int
	analyzeBottom   bool
	analyzeDescribe bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Print aggregate and descriptive tables over the cleaned dataset",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeInput, "input", "data/processed/hockey_team_stats.csv", "Cleaned CSV to analyze")
	analyzeCmd.Flags().StringVar(&analyzeColumn, "column", "wins", "Numeric column to aggregate")
	analyzeCmd.Flags().StringVar(&analyzeAgg, "agg", "sum", "Aggregation: sum, mean, max, or min")
	analyzeCmd.Flags().IntVarP(&analyzeN, "top", "n", 5, "Number of teams to rank")
	analyzeCmd.Flags().BoolVar(&analyzeBottom, "bottom", false, "Rank smallest aggregates instead of largest")
	analyzeCmd.Flags().BoolVar(&analyzeDescribe, "describe", false, "Also print structure and per-column statistics")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	dataset, err := analysis.Load(analyzeInput)
	if err != nil {
		return err
	}

	seasons, err := analysis.Clean(dataset)
	if err != nil {
		return fmt.Errorf("clean dataset: %w", err)
	}

	var (
		aggs  []analysis.TeamAggregate
		title string
	)
	if analyzeBottom {
		aggs, err = analysis.BottomN(seasons, analyzeColumn, analyzeAgg, analyzeN)
		title = fmt.Sprintf("Bottom %d teams by %s(%s)", analyzeN, analyzeAgg, analyzeColumn)
	} else {
		aggs, err = analysis.TopN(seasons, analyzeColumn, analyzeAgg, analyzeN)
		title = fmt.Sprintf("Top %d teams by %s(%s)", analyzeN, analyzeAgg, analyzeColumn)
	}
	if err != nil {
		return err
	}

	analysis.RenderAggregates(os.Stdout, title, analyzeColumn, aggs)

	if analyzeDescribe {
		analysis.RenderStructure(os.Stdout, analysis.Structure(dataset))
		analysis.RenderDescribe(os.Stdout, analysis.DescribeColumns(dataset))
	}

	return nil
}
