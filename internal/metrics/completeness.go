package metrics

import "github.com/tabqa/tabqa/internal/dataset"

// Completeness counts missing cells. Ingestion normalizes empty and
// whitespace-only strings to the missing marker, so by the time a column
// reaches this evaluator every blank is already missing.
type Completeness struct{}

func (Completeness) Name() string { return "completeness" }

func (Completeness) Evaluate(col *dataset.Column) ColumnResult {
	total := col.Len()
	present := col.NonMissing()

	return ColumnResult{
		Column:    col.Name(),
		TotalRows: total,
		Missing:   total - present,
		Pct:       pct(present, total),
		passing:   present,
	}
}
