package leaderboard

import (
	"fmt"
	"sort"
	"time"
)

type TimeFilter string

const (
	TimeAll   TimeFilter = "all"
	TimeYear  TimeFilter = "year"
	TimeMonth TimeFilter = "month"
)

type GenderFilter string

const (
	GenderAll    GenderFilter = "all"
	GenderMale   GenderFilter = "M"
	GenderFemale GenderFilter = "F"
)

const topSize = 10

// Rank filters entries by gender and date window relative to now, orders them
// fastest first and reassigns ranks from 1. The attempt-count pre-sort fixes
// the input ordering so ties resolve the same way on every run.
func Rank(entries []Entry, timeFilter TimeFilter, genderFilter GenderFilter, now time.Time) []Entry {
	ranked := make([]Entry, len(entries))
	copy(ranked, entries)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AttemptCount > ranked[j].AttemptCount
	})

	if genderFilter != GenderAll && genderFilter != "" {
		ranked = filterEntries(ranked, func(e Entry) bool {
			return GenderFilter(e.Gender) == genderFilter
		})
	}

	if cutoff, ok := windowStart(timeFilter, now); ok {
		ranked = filterEntries(ranked, func(e Entry) bool {
			return !e.Date.Before(cutoff)
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TimeSec < ranked[j].TimeSec
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

func windowStart(filter TimeFilter, now time.Time) (time.Time, bool) {
	switch filter {
	case TimeYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()), true
	case TimeMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), true
	default:
		return time.Time{}, false
	}
}

func filterEntries(entries []Entry, keep func(Entry) bool) []Entry {
	out := entries[:0]
	for _, e := range entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// Display trims a ranked list to the top ten and, when the viewer ranks below
// them, appends the viewer's row behind an ellipsis separator.
func Display(ranked []Entry, viewerID string) Board {
	board := Board{}
	if len(ranked) <= topSize {
		board.Entries = ranked
	} else {
		board.Entries = ranked[:topSize]
	}

	for _, e := range ranked {
		if e.UserID == viewerID && e.Rank > topSize {
			viewer := e
			board.Ellipsis = true
			board.Viewer = &viewer
			break
		}
	}
	return board
}

// FormatTime renders seconds as H:MM:SS for hour-plus efforts, M:SS otherwise.
func FormatTime(sec int64) string {
	h := sec / 3600
	m := (sec % 3600) / 60
	s := sec % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
