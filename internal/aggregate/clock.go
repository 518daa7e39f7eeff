package aggregate

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// ParseClock converts "HH:MM" to minutes since midnight.
func ParseClock(s string) (int, bool) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(hh) == 0 || len(hh) > 2 || len(mm) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

func FormatClock(minutes int) string {
	minutes = ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// AverageClock is the arithmetic mean of the valid clock values, rounded to the minute.
// Values are not averaged circularly, so 23:00 and 01:00 average to 12:00.
func AverageClock(values []string) *string {
	sum, n := 0, 0
	for _, v := range values {
		if m, ok := ParseClock(v); ok {
			sum += m
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := FormatClock(int(math.Round(float64(sum) / float64(n))))
	return &avg
}

// SleepMinutes assumes the night spanned midnight when wake is not after bed.
func SleepMinutes(bed, wake int) int {
	if wake <= bed {
		wake += minutesPerDay
	}
	return wake - bed
}

type ClockPair struct {
	Bed  string
	Wake string
}

// AverageSleepDuration needs at least two rows with both clocks set to average per-row
// durations. Otherwise it falls back to a single duration between the averaged bed and
// wake times, or nil when either is missing.
func AverageSleepDuration(pairs []ClockPair) *int {
	var durations []int
	beds := make([]string, 0, len(pairs))
	wakes := make([]string, 0, len(pairs))
	for _, p := range pairs {
		beds = append(beds, p.Bed)
		wakes = append(wakes, p.Wake)
		bed, okBed := ParseClock(p.Bed)
		wake, okWake := ParseClock(p.Wake)
		if okBed && okWake {
			durations = append(durations, SleepMinutes(bed, wake))
		}
	}

	if len(durations) >= 2 {
		sum := 0
		for _, d := range durations {
			sum += d
		}
		avg := int(math.Round(float64(sum) / float64(len(durations))))
		return &avg
	}

	avgBed, avgWake := AverageClock(beds), AverageClock(wakes)
	if avgBed == nil || avgWake == nil {
		return nil
	}
	bed, _ := ParseClock(*avgBed)
	wake, _ := ParseClock(*avgWake)
	d := SleepMinutes(bed, wake)
	return &d
}
