package dataset

import (
	"strconv"
	"strings"
	"time"
)

// Kind discriminates the shapes a cell value can take.
type Kind uint8

const (
	KindMissing Kind = iota
	KindString
	KindNumber
	KindTime
)

// Value is a single cell: a string, number, or timestamp, or the missing
// marker. Missing is distinct from an empty string; StringValue normalizes
// blank input so evaluators never observe an empty string as present.
type Value struct {
	kind Kind
	str  string
	num  float64
	ts   time.Time
}

// Missing returns the missing marker.
func Missing() Value {
	return Value{kind: KindMissing}
}

// StringValue wraps a raw string cell. Empty and whitespace-only strings
// collapse to the missing marker.
func StringValue(s string) Value {
	if strings.TrimSpace(s) == "" {
		return Missing()
	}
	return Value{kind: KindString, str: s}
}

// NumberValue wraps a cell whose storage type is already numeric.
func NumberValue(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// TimeValue wraps a cell whose storage type is already a timestamp.
func TimeValue(t time.Time) Value {
	return Value{kind: KindTime, ts: t}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsMissing() bool { return v.kind == KindMissing }

// Float attempts strict numeric coercion.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindNumber:
		return v.num, true
	case KindString:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.str), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// timeLayouts is the single parsing strategy applied uniformly across a
// column: first matching layout wins. Day-first layouts precede month-first,
// so ambiguous dd/mm vs mm/dd strings always resolve day-first.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
	"01/02/2006",
	"02-Jan-2006",
}

// Time attempts date/time coercion.
func (v Value) Time() (time.Time, bool) {
	switch v.kind {
	case KindTime:
		return v.ts, true
	case KindString:
		s := strings.TrimSpace(v.str)
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

// String renders the value for display. Missing renders empty.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindTime:
		return v.ts.Format(time.RFC3339)
	default:
		return ""
	}
}
