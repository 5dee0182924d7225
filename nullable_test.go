package coerce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullableSource(t *testing.T) {
	five := 5
	n, ok := TryConvert[*int, int64](&five, nil)
	assert.True(t, ok)
	assert.Equal(t, int64(5), n)

	// absent sources succeed only into string, as the "no value" marker
	s, ok := TryConvert[*int, string](nil, nil)
	assert.True(t, ok)
	assert.Equal(t, "", s)

	v, ok := TryConvert[*int, int32](nil, nil)
	assert.False(t, ok)
	assert.Equal(t, int32(0), v)

	_, ok = TryConvert[*time.Time, time.Time](nil, nil)
	assert.False(t, ok)

	when := time.Date(2023, 1, 15, 12, 30, 45, 0, time.UTC)
	str, ok := TryConvert[*time.Time, string](&when, nil)
	assert.True(t, ok)
	assert.Equal(t, "2023-01-15T12:30:45Z", str)

	// nested pointers unwrap all the way down
	ptr := &five
	n, ok = TryConvert[**int, int64](&ptr, nil)
	assert.True(t, ok)
	assert.Equal(t, int64(5), n)
}

func TestNullableTarget(t *testing.T) {
	out, ok := TryConvert[int, *int](7, nil)
	require.True(t, ok)
	require.NotNil(t, out)
	assert.Equal(t, 7, *out)

	out, ok = TryConvert[string, *int]("42", nil)
	require.True(t, ok)
	require.NotNil(t, out)
	assert.Equal(t, 42, *out)

	// failure into a nullable target degrades to a nil result
	out, ok = TryConvert[string, *int]("not-a-number", nil)
	assert.True(t, ok)
	assert.Nil(t, out)

	ts, ok := TryConvert[bool, *time.Time](true, nil)
	assert.True(t, ok)
	assert.Nil(t, ts)

	// absent into a nullable string rewraps the marker, not nil
	str, ok := TryConvert[*int, *string](nil, nil)
	require.True(t, ok)
	require.NotNil(t, str)
	assert.Equal(t, "", *str)

	p, ok := TryConvert[*int, *int64](nil, nil)
	assert.True(t, ok)
	assert.Nil(t, p)
}
