package analysis

// StructureSummary describes a dataset's shape and null density.
type StructureSummary struct {
	RowCount          int
	ColumnCount       int
	TotalDatapoints   int
	NullDatapoints    int
	NonNullDatapoints int
}

// Structure computes the dataset's structural summary. Empty strings count
// as nulls.
func Structure(d *Dataset) StructureSummary {
	s := StructureSummary{
		RowCount:    len(d.Rows),
		ColumnCount: len(d.Columns),
	}
	s.TotalDatapoints = s.RowCount * s.ColumnCount

	for _, row := range d.Rows {
		for i := range d.Columns {
			if i >= len(row) || row[i] == "" {
				s.NullDatapoints++
			}
		}
	}
	s.NonNullDatapoints = s.TotalDatapoints - s.NullDatapoints
	return s
}

// ColumnStats holds count and length statistics for one text column.
type ColumnStats struct {
	Column        string
	TotalRows     int
	NullRows      int
	NonNullRows   int
	UniqueCount   int
	DistinctCount int // values appearing exactly once
	LongestLen    int
	ShortestLen   int
	AverageLen    float64
}

// DescribeColumns computes per-column statistics over the raw text values.
// Length statistics consider non-null values only.
func DescribeColumns(d *Dataset) []ColumnStats {
	stats := make([]ColumnStats, 0, len(d.Columns))

	for i, name := range d.Columns {
		cs := ColumnStats{Column: name, TotalRows: len(d.Rows)}
		counts := make(map[string]int)
		lengthTotal := 0

		for _, row := range d.Rows {
			value := ""
			if i < len(row) {
				value = row[i]
			}
			if value == "" {
				cs.NullRows++
				continue
			}
			cs.NonNullRows++
			counts[value]++

			length := len([]rune(value))
			lengthTotal += length
			if length > cs.LongestLen {
				cs.LongestLen = length
			}
			if cs.ShortestLen == 0 || length < cs.ShortestLen {
				cs.ShortestLen = length
			}
		}

		cs.UniqueCount = len(counts)
		for _, c := range counts {
			if c == 1 {
				cs.DistinctCount++
			}
		}
		if cs.NonNullRows > 0 {
			cs.AverageLen = float64(lengthTotal) / float64(cs.NonNullRows)
		}

		stats = append(stats, cs)
	}

	return stats
}
