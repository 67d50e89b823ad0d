// Package analysis holds the offline consumers of the scraped CSV: type
// coercion, descriptive statistics, top-N/bottom-N aggregates, and the HTML
// profile report. It never touches the network.
package analysis

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// Dataset is a column-ordered view of a CSV file. All values are raw text;
// an empty string counts as a null datapoint.
type Dataset struct {
	Columns []string
	Rows    [][]string
}

// Load reads a CSV file produced by the scraper (or the cleaning stage).
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("dataset %s has no header row", path)
	}

	return &Dataset{Columns: rows[0], Rows: rows[1:]}, nil
}

// ColumnIndex returns the position of a named column.
func (d *Dataset) ColumnIndex(name string) (int, error) {
	for i, col := range d.Columns {
		if col == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("dataset has no column %q", name)
}

// Drop returns a copy of the dataset without the named columns. Unknown
// names are ignored, matching a best-effort column drop.
func (d *Dataset) Drop(names ...string) *Dataset {
	dropped := make(map[string]bool, len(names))
	for _, name := range names {
		dropped[name] = true
	}

	keep := make([]int, 0, len(d.Columns))
	columns := make([]string, 0, len(d.Columns))
	for i, col := range d.Columns {
		if dropped[col] {
			continue
		}
		keep = append(keep, i)
		columns = append(columns, col)
	}

	rows := make([][]string, len(d.Rows))
	for r, row := range d.Rows {
		out := make([]string, len(keep))
		for j, i := range keep {
			if i < len(row) {
				out[j] = row[i]
			}
		}
		rows[r] = out
	}

	return &Dataset{Columns: columns, Rows: rows}
}

// WriteCSV writes the dataset to path, creating parent directories and
// overwriting any existing file.
func (d *Dataset) WriteCSV(path string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(d.Columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	if err := writer.WriteAll(d.Rows); err != nil {
		return fmt.Errorf("write csv rows: %w", err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
