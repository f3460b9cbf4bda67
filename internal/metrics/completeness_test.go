package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tabqa/tabqa/internal/dataset"
)

func TestCompletenessCountsNormalizedBlanks(t *testing.T) {
	col := dataset.ColumnFromStrings("c", "a", "", "  ", "b")

	r := Completeness{}.Evaluate(col)
	assert.Equal(t, 4, r.TotalRows)
	assert.Equal(t, 2, r.Missing)
	assert.Equal(t, 50.0, r.Pct)
}

func TestCompletenessAllMissing(t *testing.T) {
	col := dataset.ColumnFromStrings("c", "", "", "")

	r := Completeness{}.Evaluate(col)
	assert.Equal(t, 3, r.Missing)
	assert.Equal(t, 0.0, r.Pct)
}

func TestCompletenessEmptyColumn(t *testing.T) {
	col := dataset.NewColumn("c", nil)

	r := Completeness{}.Evaluate(col)
	assert.Equal(t, 0, r.TotalRows)
	assert.Equal(t, 0.0, r.Pct)
}
