package analysis

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// RenderAggregates prints a ranked aggregate table.
func RenderAggregates(w io.Writer, title, column string, aggs []TeamAggregate) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(title)
	t.AppendHeader(table.Row{"#", "team_name", column})

	for i, agg := range aggs {
		t.AppendRow(table.Row{i + 1, agg.TeamName, fmt.Sprintf("%g", agg.Value)})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}

// RenderDescribe prints per-column statistics.
func RenderDescribe(w io.Writer, stats []ColumnStats) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{
		"column", "total", "null", "not_null", "unique", "distinct", "longest", "shortest", "avg_len",
	})

	for _, cs := range stats {
		t.AppendRow(table.Row{
			cs.Column,
			cs.TotalRows,
			cs.NullRows,
			cs.NonNullRows,
			cs.UniqueCount,
			cs.DistinctCount,
			cs.LongestLen,
			cs.ShortestLen,
			fmt.Sprintf("%.2f", cs.AverageLen),
		})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}

// RenderStructure prints the dataset structure summary.
func RenderStructure(w io.Writer, s StructureSummary) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"metric", "value"})
	t.AppendRows([]table.Row{
		{"Row Count", s.RowCount},
		{"Column Count", s.ColumnCount},
		{"Total Datapoints", s.TotalDatapoints},
		{"Null Datapoints", s.NullDatapoints},
		{"Non-Null Datapoints", s.NonNullDatapoints},
	})
	t.SetStyle(table.StyleRounded)
	t.Render()
}
