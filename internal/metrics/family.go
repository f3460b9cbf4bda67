// Package metrics computes per-column and dataset-level data-quality
// metrics over an already-materialized dataset. Three independent metric
// families share one result shape: completeness (missing cells),
// consistency (type-coercion failures against the inferred column type),
// and accuracy (z-score outliers). The computation is total: no column
// content makes it fail.
package metrics

import "github.com/tabqa/tabqa/internal/dataset"

// ColumnResult is the per-column outcome for one metric family. The count
// fields are not mutually exclusive partitions of a row: a cell can be
// counted by more than one family at once.
type ColumnResult struct {
	Column    string
	Type      dataset.ColumnType
	TotalRows int

	Missing      int
	Outliers     int
	Inconsistent int
	// DriftFail is reserved for baseline drift detection. No baseline is
	// ever compared, so it is always zero; the field keeps the report shape
	// stable if drift detection lands later.
	DriftFail int
	Correct   int

	Pct float64

	// passing is the family-specific count of cells meeting the family's
	// criterion; the aggregator derives the cell-weighted overall
	// percentage from it.
	passing int
}

// Family is one metric family evaluated per column.
type Family interface {
	Name() string
	Evaluate(col *dataset.Column) ColumnResult
}

// pct guards the zero-row case: an empty column reports 0, not a fault.
func pct(passing, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(passing) / float64(total) * 100
}
