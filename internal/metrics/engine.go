package metrics

import (
	"runtime"
	"sync"

	"github.com/tabqa/tabqa/internal/dataset"
)

// Evaluate runs every family over every column and aggregates the results.
// Columns are independent, so the per-column pass fans out over a bounded
// worker pool; results are written by column index, so report order always
// tracks input column order regardless of completion order. workers <= 0
// means one worker per CPU.
func Evaluate(ds *dataset.Dataset, families []Family, workers int) *Report {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	cols := ds.Columns()
	perFamily := make([][]ColumnResult, len(families))
	for i := range perFamily {
		perFamily[i] = make([]ColumnResult, len(cols))
	}

	semaphore := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, col := range cols {
		wg.Add(1)
		go func(i int, col *dataset.Column) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			for fi, fam := range families {
				perFamily[fi][i] = fam.Evaluate(col)
			}
		}(i, col)
	}
	wg.Wait()

	report := &Report{Families: make([]FamilyReport, len(families))}
	for fi, fam := range families {
		report.Families[fi] = FamilyReport{
			Family:  fam.Name(),
			Columns: perFamily[fi],
			Overall: aggregate(perFamily[fi]),
		}
	}
	return report
}
