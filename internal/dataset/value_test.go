package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStringValueNormalizesBlanks(t *testing.T) {
	assert.True(t, StringValue("").IsMissing())
	assert.True(t, StringValue("   ").IsMissing())
	assert.True(t, StringValue("\t \n").IsMissing())
	assert.False(t, StringValue("a").IsMissing())
	assert.False(t, StringValue(" a ").IsMissing())
}

func TestValueFloat(t *testing.T) {
	f, ok := StringValue("42.5").Float()
	assert.True(t, ok)
	assert.Equal(t, 42.5, f)

	f, ok = NumberValue(7).Float()
	assert.True(t, ok)
	assert.Equal(t, 7.0, f)

	_, ok = StringValue("abc").Float()
	assert.False(t, ok)

	_, ok = Missing().Float()
	assert.False(t, ok)

	_, ok = TimeValue(time.Now()).Float()
	assert.False(t, ok)
}

func TestValueTimeLayouts(t *testing.T) {
	ts, ok := StringValue("2024-03-09").Time()
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), ts)

	// Ambiguous slash dates resolve day-first.
	ts, ok = StringValue("03/04/2024").Time()
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC), ts)

	_, ok = StringValue("not a date").Time()
	assert.False(t, ok)

	_, ok = NumberValue(20240101).Time()
	assert.False(t, ok)
}
