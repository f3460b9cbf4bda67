package metrics

import "github.com/tabqa/tabqa/internal/dataset"

// Consistency counts non-missing values that fail to coerce to the column's
// inferred type. Columns inferred as "other" assert no format and are
// always fully consistent.
type Consistency struct{}

func (Consistency) Name() string { return "consistency" }

func (Consistency) Evaluate(col *dataset.Column) ColumnResult {
	total := col.Len()
	typ := col.Type()

	inconsistent := 0
	switch typ {
	case dataset.TypeNumeric:
		for i := 0; i < total; i++ {
			v := col.Cell(i)
			if v.IsMissing() {
				continue
			}
			if _, ok := v.Float(); !ok {
				inconsistent++
			}
		}
	case dataset.TypeDatetime:
		for i := 0; i < total; i++ {
			v := col.Cell(i)
			if v.IsMissing() {
				continue
			}
			if _, ok := v.Time(); !ok {
				inconsistent++
			}
		}
	}

	return ColumnResult{
		Column:       col.Name(),
		Type:         typ,
		TotalRows:    total,
		Inconsistent: inconsistent,
		Pct:          pct(total-inconsistent, total),
		passing:      total - inconsistent,
	}
}
