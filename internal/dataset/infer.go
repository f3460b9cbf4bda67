package dataset

// ColumnType is the inferred type of a column's non-missing values.
type ColumnType string

const (
	TypeNumeric  ColumnType = "numeric"
	TypeDatetime ColumnType = "datetime"
	TypeOther    ColumnType = "other"
)

// classify inspects the non-missing cells and picks numeric, datetime, or
// other. A type is chosen when coercion fails for strictly fewer values than
// the non-missing count, numeric tried first; a column where neither
// coercion ever succeeds degrades to other. Classification never fails.
func classify(cells []Value) ColumnType {
	nonMissing := 0
	numFailures := 0
	dtFailures := 0
	for _, v := range cells {
		if v.IsMissing() {
			continue
		}
		nonMissing++
		if _, ok := v.Float(); !ok {
			numFailures++
		}
		if _, ok := v.Time(); !ok {
			dtFailures++
		}
	}

	if nonMissing == 0 {
		return TypeOther
	}
	if numFailures < nonMissing {
		return TypeNumeric
	}
	if dtFailures < nonMissing {
		return TypeDatetime
	}
	return TypeOther
}
