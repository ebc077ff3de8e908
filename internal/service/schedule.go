package service

import "time"

const (
	// ScheduleSlots is the number of updates dispatched per cycle.
	ScheduleSlots = 7
	// ScheduleTotal is the intended length of a cycle in seconds.
	ScheduleTotal = 61
	// MinDelay and MaxDelay bound every drawn delay, in seconds.
	MinDelay = 5
	MaxDelay = 15
)

// Schedule is the ordered list of per-slot delays of one cycle, in seconds.
type Schedule []int

// BuildSchedule draws ScheduleSlots-1 delays uniformly in [MinDelay, MaxDelay]
// and sets the last one to the remainder of ScheduleTotal.
//
// adjusted is true when the remainder fell outside [MinDelay, MaxDelay]. The
// remainder is then recomputed from the first delays, which yields the same
// value: it is neither redrawn nor clamped, so it may be out of range or
// non-positive.
func BuildSchedule(rng Rand) (schedule Schedule, adjusted bool) {
	schedule = make(Schedule, 0, ScheduleSlots)
	for range ScheduleSlots - 1 {
		schedule = append(schedule, RandomDelay(rng))
	}
	schedule = append(schedule, ScheduleTotal-schedule.Sum())

	last := schedule[ScheduleSlots-1]
	if last >= MinDelay && last <= MaxDelay {
		return schedule, false
	}

	schedule = schedule[:ScheduleSlots-1]
	schedule = append(schedule, ScheduleTotal-schedule.Sum())
	return schedule, true
}

// RandomDelay returns one delay drawn uniformly in [MinDelay, MaxDelay].
func RandomDelay(rng Rand) int {
	return randomInRange(rng, MinDelay, MaxDelay)
}

func (s Schedule) Sum() int {
	total := 0
	for _, d := range s {
		total += d
	}
	return total
}

// Durations converts the delays to time.Duration values.
func (s Schedule) Durations() []time.Duration {
	out := make([]time.Duration, len(s))
	for i, d := range s {
		out[i] = time.Duration(d) * time.Second
	}
	return out
}
