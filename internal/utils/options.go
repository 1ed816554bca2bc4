package utils

const (
	DefaultStartHour = 0
	DefaultEndHour   = 23

	DefaultFareStart int64 = 0
	DefaultFareEnd   int64 = 10000
	DefaultFareStep  int64 = 1000
)

// TimeSlots lists every whole hour from startHour:00 to endHour:00 inclusive.
// Hours outside 0..23 or an inverted range give nil.
func TimeSlots(startHour, endHour int) []string {
	if startHour < 0 || endHour > 23 || startHour > endHour {
		return nil
	}
	out := make([]string, 0, endHour-startHour+1)
	for h := startHour; h <= endHour; h++ {
		out = append(out, FormatClock(h*60))
	}
	return out
}

// FareBrackets lists start, start+step, ... up to and including end.
// A non-positive step or start > end gives nil.
func FareBrackets(start, end, step int64) []int64 {
	if step <= 0 || start > end {
		return nil
	}
	out := make([]int64, 0, (end-start)/step+1)
	for v := start; ; v += step {
		out = append(out, v)
		if v > end-step {
			break
		}
	}
	return out
}

// DefaultTimeSlots is TimeSlots(0, 23).
func DefaultTimeSlots() []string {
	return TimeSlots(DefaultStartHour, DefaultEndHour)
}

// DefaultFareBrackets is FareBrackets(0, 10000, 1000).
func DefaultFareBrackets() []int64 {
	return FareBrackets(DefaultFareStart, DefaultFareEnd, DefaultFareStep)
}
