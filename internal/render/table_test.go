package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tabqa/tabqa/internal/dataset"
	"github.com/tabqa/tabqa/internal/metrics"
)

func sampleReport(t *testing.T) *metrics.Report {
	t.Helper()
	ds := dataset.New(
		dataset.ColumnFromStrings("amount", "1", "2", "abc", ""),
		dataset.ColumnFromStrings("note", "x", "y", "z", "w"),
	)
	return metrics.Evaluate(ds, []metrics.Family{
		metrics.Completeness{},
		metrics.Consistency{},
		metrics.Accuracy{Threshold: 3.0},
	}, 1)
}

func TestTableDispatch(t *testing.T) {
	rep := sampleReport(t)

	out := Table(rep.Family("completeness"))
	assert.Contains(t, out, "Completeness Summary")
	assert.Contains(t, out, "Overall")

	out = Table(rep.Family("consistency"))
	assert.Contains(t, out, "Consistency Summary per column")
	assert.Contains(t, out, "numeric")
	assert.Contains(t, out, "Inconsistent cells : 1")

	out = Table(rep.Family("accuracy"))
	assert.Contains(t, out, "Accuracy Summary per column")
	assert.Contains(t, out, "DriftFail")
	assert.Contains(t, out, "Drift-fail cells : 0")
}

func TestTableRowPerColumn(t *testing.T) {
	rep := sampleReport(t)

	out := Table(rep.Family("accuracy"))
	assert.Contains(t, out, "amount")
	assert.Contains(t, out, "note")
}

func TestTruncateLongColumnNames(t *testing.T) {
	long := strings.Repeat("x", 40)
	ds := dataset.New(dataset.ColumnFromStrings(long, "1"))
	rep := metrics.Evaluate(ds, []metrics.Family{metrics.Completeness{}}, 1)

	out := Table(rep.Family("completeness"))
	assert.NotContains(t, out, long)
	assert.Contains(t, out, "...")
}
