package activity

import (
	"fmt"
	"sort"
	"time"
)

const hoursPerDay = 24

// Mile deltas outside [minMileDelta, maxMileDelta) are treated as GPS glitches
// (backtracks, teleports, device resets) and excluded from hourly totals. The
// thresholds are inherited tuning values, not derived from anything physical.
const (
	minMileDelta = 0.0
	maxMileDelta = 10.0
)

// PointsPerDay groups waypoints into a [day][hour] grid in the given IANA
// timezone. Day 0 is the first sample's local calendar day; the hour axis is
// rotated so that column 0 is the hour of the first sample. Points are sorted
// by timestamp before grouping, so input order does not matter.
func PointsPerDay(points []Waypoint, timezone string) (DailyData, error) {
	if len(points) == 0 {
		return DailyData{}, nil
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", timezone, err)
	}

	sorted := make([]Waypoint, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	first := sorted[0].Timestamp
	firstHour := first.In(loc).Hour()

	days := DailyData{}
	for _, p := range sorted {
		hoursSinceFirst := int(p.Timestamp.Sub(first) / time.Hour)
		dayIdx := hoursSinceFirst / hoursPerDay
		hourIdx := (p.Timestamp.In(loc).Hour() - firstHour + hoursPerDay) % hoursPerDay

		for len(days) <= dayIdx {
			days = append(days, emptyDay())
		}
		days[dayIdx][hourIdx] = append(days[dayIdx][hourIdx], p)
	}
	return days, nil
}

func emptyDay() [][]Waypoint {
	day := make([][]Waypoint, hoursPerDay)
	for i := range day {
		day[i] = []Waypoint{}
	}
	return day
}

// MilesByHour computes miles traveled per [day][hour] cell from the mile
// markers carried by the waypoints. The previous marker is carried across day
// boundaries; a delta outside [minMileDelta, maxMileDelta) contributes nothing
// to the hour but still advances the carried marker.
func MilesByHour(days DailyData) [][]float64 {
	totals := make([][]float64, len(days))
	var prevMile *float64

	for d, day := range days {
		totals[d] = make([]float64, hoursPerDay)
		for h, hour := range day {
			for _, p := range hour {
				if p.MileMarker == nil {
					continue
				}
				curr := *p.MileMarker
				if prevMile != nil {
					delta := curr - *prevMile
					if delta >= minMileDelta && delta < maxMileDelta {
						totals[d][h] += delta
					}
				}
				prevMile = &curr
			}
		}
	}
	return totals
}
