package metrics

import (
	"math"

	"github.com/tabqa/tabqa/internal/dataset"
)

// DefaultZThreshold is the z-score cutoff used when the caller supplies
// none.
const DefaultZThreshold = 3.0

// Accuracy flags statistical outliers by absolute z-score against a
// caller-supplied threshold. Outlier detection applies only to columns
// whose every non-missing value coerces to a float; a single coercion
// failure disqualifies the whole column and yields zero outliers.
type Accuracy struct {
	Threshold float64
}

func (Accuracy) Name() string { return "accuracy" }

func (a Accuracy) Evaluate(col *dataset.Column) ColumnResult {
	total := col.Len()
	missing := total - col.NonMissing()
	outliers := a.countOutliers(col)
	driftFail := 0 // no reference baseline to compare against

	// Deliberately not clamped: the formula subtracts the counts as-is
	// rather than deduplicating rows flagged by more than one of them.
	correct := total - missing - outliers - driftFail

	return ColumnResult{
		Column:    col.Name(),
		TotalRows: total,
		Missing:   missing,
		Outliers:  outliers,
		DriftFail: driftFail,
		Correct:   correct,
		Pct:       pct(correct, total),
		passing:   correct,
	}
}

// countOutliers computes population statistics (divisor N, not N-1) over
// the non-missing values and counts those whose |z| strictly exceeds the
// threshold. Empty and zero-variance columns yield zero outliers, which
// also keeps the division defined.
func (a Accuracy) countOutliers(col *dataset.Column) int {
	vals := make([]float64, 0, col.Len())
	for i := 0; i < col.Len(); i++ {
		v := col.Cell(i)
		if v.IsMissing() {
			continue
		}
		f, ok := v.Float()
		if !ok {
			return 0
		}
		vals = append(vals, f)
	}
	if len(vals) == 0 {
		return 0
	}

	n := float64(len(vals))
	sum := 0.0
	for _, x := range vals {
		sum += x
	}
	mean := sum / n

	// Two-pass variance: exact for the integer-valued inputs the boundary
	// behavior is specified against, unlike the sumSq - mean² form.
	ss := 0.0
	for _, x := range vals {
		d := x - mean
		ss += d * d
	}
	variance := ss / n
	if variance == 0 {
		return 0
	}
	sigma := math.Sqrt(variance)

	threshold := a.Threshold
	if threshold <= 0 {
		threshold = DefaultZThreshold
	}

	count := 0
	for _, x := range vals {
		if math.Abs(x-mean)/sigma > threshold {
			count++
		}
	}
	return count
}
