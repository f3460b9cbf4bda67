package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tabqa/tabqa/internal/dataset"
)

func TestConsistencyNumericColumn(t *testing.T) {
	col := dataset.ColumnFromStrings("c", "1", "2", "abc", "4")

	r := Consistency{}.Evaluate(col)
	assert.Equal(t, dataset.TypeNumeric, r.Type)
	assert.Equal(t, 1, r.Inconsistent)
	assert.Equal(t, 75.0, r.Pct)
}

func TestConsistencyDatetimeColumn(t *testing.T) {
	col := dataset.ColumnFromStrings("c", "2024-01-01", "nope", "2024-02-03")

	r := Consistency{}.Evaluate(col)
	assert.Equal(t, dataset.TypeDatetime, r.Type)
	assert.Equal(t, 1, r.Inconsistent)
	assert.InDelta(t, 66.67, r.Pct, 0.01)
}

func TestConsistencyOtherColumnAlwaysConsistent(t *testing.T) {
	col := dataset.ColumnFromStrings("c", "red", "green", "blue")

	r := Consistency{}.Evaluate(col)
	assert.Equal(t, dataset.TypeOther, r.Type)
	assert.Equal(t, 0, r.Inconsistent)
	assert.Equal(t, 100.0, r.Pct)
}

func TestConsistencyAllMissing(t *testing.T) {
	col := dataset.ColumnFromStrings("c", "", "", "")

	r := Consistency{}.Evaluate(col)
	assert.Equal(t, 0, r.Inconsistent)
}

func TestConsistencyMissingNotCounted(t *testing.T) {
	col := dataset.ColumnFromStrings("c", "1", "", "3")

	r := Consistency{}.Evaluate(col)
	assert.Equal(t, dataset.TypeNumeric, r.Type)
	assert.Equal(t, 0, r.Inconsistent)
	assert.Equal(t, 100.0, r.Pct)
}
