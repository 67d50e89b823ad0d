package analysis

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// reportColumn is one column section of the profile report.
type reportColumn struct {
	ColumnStats
	Numeric bool
	Min     float64
	Max     float64
	Mean    float64
}

type reportData struct {
	Title       string
	GeneratedAt string
	Structure   StructureSummary
	Columns     []reportColumn
}

var reportTemplate = template.Must(template.New("profile").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2em; color: #222; }
h1 { border-bottom: 2px solid #444; padding-bottom: 0.3em; }
table { border-collapse: collapse; margin: 1em 0; }
th, td { border: 1px solid #bbb; padding: 0.4em 0.8em; text-align: left; }
th { background: #f0f0f0; }
.generated { color: #777; font-size: 0.9em; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p class="generated">Generated at {{.GeneratedAt}}</p>

<h2>Dataset structure</h2>
<table>
<tr><th>Metric</th><th>Value</th></tr>
<tr><td>Row Count</td><td>{{.Structure.RowCount}}</td></tr>
<tr><td>Column Count</td><td>{{.Structure.ColumnCount}}</td></tr>
<tr><td>Total Datapoints</td><td>{{.Structure.TotalDatapoints}}</td></tr>
<tr><td>Null Datapoints</td><td>{{.Structure.NullDatapoints}}</td></tr>
<tr><td>Non-Null Datapoints</td><td>{{.Structure.NonNullDatapoints}}</td></tr>
</table>

<h2>Columns</h2>
{{range .Columns}}
<h3>{{.Column}}</h3>
<table>
<tr><th>Metric</th><th>Value</th></tr>
<tr><td>Non-Null Rows</td><td>{{.NonNullRows}} of {{.TotalRows}}</td></tr>
<tr><td>Null Rows</td><td>{{.NullRows}}</td></tr>
<tr><td>Unique Values</td><td>{{.UniqueCount}}</td></tr>
<tr><td>Distinct Values (count = 1)</td><td>{{.DistinctCount}}</td></tr>
{{if .Numeric}}
<tr><td>Min</td><td>{{.Min}}</td></tr>
<tr><td>Max</td><td>{{.Max}}</td></tr>
<tr><td>Mean</td><td>{{printf "%.3f" .Mean}}</td></tr>
{{else}}
<tr><td>Longest Value Length</td><td>{{.LongestLen}}</td></tr>
<tr><td>Shortest Value Length</td><td>{{.ShortestLen}}</td></tr>
<tr><td>Average Value Length</td><td>{{printf "%.2f" .AverageLen}}</td></tr>
{{end}}
</table>
{{end}}
</body>
</html>
`))

// WriteProfileReport renders an HTML profiling report for a dataset.
func WriteProfileReport(d *Dataset, path, title string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}

	stats := DescribeColumns(d)
	data := reportData{
		Title:       title,
		GeneratedAt: time.Now().Format(time.RFC1123),
		Structure:   Structure(d),
		Columns:     make([]reportColumn, 0, len(stats)),
	}

	for i, cs := range stats {
		col := reportColumn{ColumnStats: cs}
		if min, max, mean, ok := numericSummary(d, i); ok {
			col.Numeric = true
			col.Min = min
			col.Max = max
			col.Mean = mean
		}
		data.Columns = append(data.Columns, col)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()

	if err := reportTemplate.Execute(f, data); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

// numericSummary reports min/max/mean when every non-null value in the
// column parses as a number.
func numericSummary(d *Dataset, column int) (min, max, mean float64, ok bool) {
	count := 0
	total := 0.0

	for _, row := range d.Rows {
		if column >= len(row) || row[column] == "" {
			continue
		}
		v, err := strconv.ParseFloat(row[column], 64)
		if err != nil {
			return 0, 0, 0, false
		}
		if count == 0 || v < min {
			min = v
		}
		if count == 0 || v > max {
			max = v
		}
		total += v
		count++
	}

	if count == 0 {
		return 0, 0, 0, false
	}
	return min, max, total / float64(count), true
}
