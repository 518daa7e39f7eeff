package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestAverage(t *testing.T) {
	assert.Nil(t, Average(nil))
	assert.Nil(t, Average([]float64{}))

	avg := Average([]float64{1, 2, 2})
	require.NotNil(t, avg)
	assert.Equal(t, 1.7, *avg)

	avg = Average([]float64{0, 0})
	require.NotNil(t, avg)
	assert.Equal(t, 0.0, *avg)

	avg = Average([]float64{3.25})
	require.NotNil(t, avg)
	assert.Equal(t, 3.3, *avg)
}

func TestAverageInts_SkipsNil(t *testing.T) {
	assert.Nil(t, AverageInts([]*int{nil, nil}))
	avg := AverageInts([]*int{intPtr(4), nil, intPtr(1)})
	require.NotNil(t, avg)
	assert.Equal(t, 2.5, *avg)
}

func TestBucketByDay(t *testing.T) {
	samples := []Sample{
		{At: time.Date(2024, 3, 14, 8, 0, 0, 0, time.UTC), Value: intPtr(2)},
		{At: time.Date(2024, 3, 14, 23, 59, 0, 0, time.UTC), Value: intPtr(3)},
		{At: time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC), Value: nil},
		{At: time.Date(2024, 3, 15, 0, 1, 0, 0, time.UTC), Value: intPtr(5)},
	}

	buckets := BucketByDay(samples)
	assert.Equal(t, map[string]DayBucket{
		"2024-03-14": {Average: 2.5, Count: 2},
		"2024-03-15": {Average: 5, Count: 1},
	}, buckets)

	assert.Empty(t, BucketByDay(nil))
}

func TestTopN(t *testing.T) {
	counts := TopN([][]string{{"a", "b"}, {"a"}, {"b", "c"}}, 3)
	assert.Equal(t, []Count{{"a", 2}, {"b", 2}, {"c", 1}}, counts)

	// first seen wins ties
	counts = TopN([][]string{{"x"}, {"y", "x", "y"}, {"z", " "}}, 2)
	assert.Equal(t, []Count{{"x", 2}, {"y", 2}}, counts)

	assert.Empty(t, TopN(nil, 3))
}

func TestDistinctDays(t *testing.T) {
	days := DistinctDays([]time.Time{
		time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC),
	})
	assert.Equal(t, []string{"2024-03-14", "2024-03-15"}, days)
}
