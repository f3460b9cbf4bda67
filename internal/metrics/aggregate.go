package metrics

// Overall is the dataset-level aggregate for one metric family.
type Overall struct {
	TotalCells        int
	MissingCells      int
	OutlierCells      int
	InconsistentCells int
	DriftFailCells    int
	CorrectCells      int
	Pct               float64
}

// FamilyReport holds one family's per-column rows, in input column order,
// plus the dataset aggregate.
type FamilyReport struct {
	Family  string
	Columns []ColumnResult
	Overall Overall
}

// Report is the full result of a run: one FamilyReport per requested
// family. Computed once and never mutated.
type Report struct {
	Families []FamilyReport
}

// Family returns the report for the named family, or nil.
func (r *Report) Family(name string) *FamilyReport {
	for i := range r.Families {
		if r.Families[i].Family == name {
			return &r.Families[i]
		}
	}
	return nil
}

// aggregate sums per-column counts into dataset totals. The overall
// percentage is cell-weighted — passing cells over total cells — not an
// arithmetic mean of column percentages, so ragged inputs aggregate
// correctly.
func aggregate(cols []ColumnResult) Overall {
	var o Overall
	passing := 0
	for _, c := range cols {
		o.TotalCells += c.TotalRows
		o.MissingCells += c.Missing
		o.OutlierCells += c.Outliers
		o.InconsistentCells += c.Inconsistent
		o.DriftFailCells += c.DriftFail
		passing += c.passing
	}
	o.CorrectCells = o.TotalCells - o.MissingCells - o.OutlierCells - o.DriftFailCells
	o.Pct = pct(passing, o.TotalCells)
	return o
}
