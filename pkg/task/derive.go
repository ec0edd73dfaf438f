package task

import (
	"sort"

	"tableflip.dev/weekplan/pkg/calendar"
)

// Sort orders tasks by (done ascending, time-of-day ascending). Completed
// tasks always sort after incomplete ones regardless of time. The sort is
// stable: same-time tasks keep their original relative order.
func Sort(tasks []Task) []Task {
	sorted := make([]Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Done != sorted[j].Done {
			return !sorted[i].Done
		}
		return calendar.MinutesFromTime(sorted[i].Time) < calendar.MinutesFromTime(sorted[j].Time)
	})
	return sorted
}

// ForDay filters tasks scheduled on the given ISO date, preserving order.
func ForDay(tasks []Task, day string) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Day == day {
			out = append(out, t)
		}
	}
	return out
}

// ByBucket partitions an already-ordered task sequence by bucket,
// preserving per-bucket relative order. It is a pure projection: callers
// recompute it from the canonical sequence on every read.
func ByBucket(tasks []Task, buckets []Bucket) map[Bucket][]Task {
	out := make(map[Bucket][]Task, len(buckets))
	for _, b := range buckets {
		out[b] = []Task{}
	}
	for _, t := range tasks {
		if _, ok := out[t.Bucket]; ok {
			out[t.Bucket] = append(out[t.Bucket], t)
		}
	}
	return out
}

// ByPriority partitions an already-ordered task sequence by priority,
// preserving per-priority relative order.
func ByPriority(tasks []Task, priorities []Priority) map[Priority][]Task {
	out := make(map[Priority][]Task, len(priorities))
	for _, p := range priorities {
		out[p] = []Task{}
	}
	for _, t := range tasks {
		if _, ok := out[t.Priority]; ok {
			out[t.Priority] = append(out[t.Priority], t)
		}
	}
	return out
}
