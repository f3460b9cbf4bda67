package dataset

import "sync"

// Column is a named, ordered sequence of cells. It is a read-only view over
// ingested input: callers must not mutate cells after construction.
type Column struct {
	name  string
	cells []Value

	inferOnce sync.Once
	inferred  ColumnType
}

// NewColumn builds a column over the given cells. The slice is owned by the
// column from this point on.
func NewColumn(name string, cells []Value) *Column {
	return &Column{name: name, cells: cells}
}

// ColumnFromStrings builds a column from raw string cells, normalizing blank
// and whitespace-only strings to the missing marker.
func ColumnFromStrings(name string, raw ...string) *Column {
	cells := make([]Value, len(raw))
	for i, s := range raw {
		cells[i] = StringValue(s)
	}
	return NewColumn(name, cells)
}

func (c *Column) Name() string { return c.name }

// Len is the total row count, missing cells included.
func (c *Column) Len() int { return len(c.cells) }

func (c *Column) Cell(i int) Value { return c.cells[i] }

// NonMissing counts cells that carry a present value.
func (c *Column) NonMissing() int {
	n := 0
	for _, v := range c.cells {
		if !v.IsMissing() {
			n++
		}
	}
	return n
}

// Type returns the inferred column type, classifying on first use and
// caching the result. Safe for concurrent callers.
func (c *Column) Type() ColumnType {
	c.inferOnce.Do(func() {
		c.inferred = classify(c.cells)
	})
	return c.inferred
}

// Dataset is an ordered set of named columns, immutable after ingestion.
type Dataset struct {
	cols []*Column
}

func New(cols ...*Column) *Dataset {
	return &Dataset{cols: cols}
}

func (d *Dataset) Columns() []*Column { return d.cols }

func (d *Dataset) NumColumns() int { return len(d.cols) }

// Rows is the longest column length; columns may be ragged.
func (d *Dataset) Rows() int {
	rows := 0
	for _, c := range d.cols {
		if c.Len() > rows {
			rows = c.Len()
		}
	}
	return rows
}
