// Package aggregate holds the pure derivations the sync units compute over their loaded rows.
package aggregate

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/2beens/motivly/internal/daterange"
)

func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Average returns nil for an empty input, never NaN or zero.
func Average(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	avg := Round1(sum / float64(len(values)))
	return &avg
}

// AverageInts averages the non-nil values.
func AverageInts(values []*int) *float64 {
	nums := make([]float64, 0, len(values))
	for _, v := range values {
		if v != nil {
			nums = append(nums, float64(*v))
		}
	}
	return Average(nums)
}

type DayBucket struct {
	Average float64 `json:"avg"`
	Count   int     `json:"count"`
}

type Sample struct {
	At    time.Time
	Value *int
}

// BucketByDay groups samples with a value by the UTC calendar date of At.
func BucketByDay(samples []Sample) map[string]DayBucket {
	values := map[string][]float64{}
	for _, s := range samples {
		if s.Value == nil {
			continue
		}
		key := daterange.DayKey(s.At)
		values[key] = append(values[key], float64(*s.Value))
	}

	buckets := make(map[string]DayBucket, len(values))
	for key, vals := range values {
		buckets[key] = DayBucket{
			Average: *Average(vals),
			Count:   len(vals),
		}
	}
	return buckets
}

type Count struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// TopN counts values across lists and returns the n most frequent.
// Ties keep the order in which values were first seen.
func TopN(lists [][]string, n int) []Count {
	index := map[string]int{}
	var counts []Count
	for _, list := range lists {
		for _, v := range list {
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			if i, ok := index[v]; ok {
				counts[i].Count++
				continue
			}
			index[v] = len(counts)
			counts = append(counts, Count{Key: v, Count: 1})
		}
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

// DistinctDays returns the sorted UTC calendar dates of ts.
func DistinctDays(ts []time.Time) []string {
	seen := map[string]struct{}{}
	days := make([]string, 0, len(ts))
	for _, t := range ts {
		key := daterange.DayKey(t)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		days = append(days, key)
	}
	sort.Strings(days)
	return days
}
