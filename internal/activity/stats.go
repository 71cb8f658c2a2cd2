package activity

import "sort"

// UserStatsFrom folds activities into per-user summaries ordered by completion
// count descending. Grouping preserves first-appearance order so equal counts
// rank deterministically.
func UserStatsFrom(activities []SegmentActivity) []UserStats {
	var order []string
	byUser := map[string]*UserStats{}
	types := map[string]map[string]struct{}{}

	for _, a := range activities {
		stats, ok := byUser[a.UserID]
		if !ok {
			stats = &UserStats{UserID: a.UserID}
			byUser[a.UserID] = stats
			types[a.UserID] = map[string]struct{}{}
			order = append(order, a.UserID)
		}

		completions := 1
		if a.SegmentCompletions != nil {
			completions = *a.SegmentCompletions
		}
		stats.Completions += completions
		stats.TotalTime += a.ElapsedTime

		if a.ElapsedTime > 0 {
			if stats.FastestTime == nil || a.ElapsedTime < *stats.FastestTime {
				fastest := a.ElapsedTime
				stats.FastestTime = &fastest
			}
		}
		if a.ActivityType != "" {
			types[a.UserID][a.ActivityType] = struct{}{}
		}
	}

	result := make([]UserStats, 0, len(order))
	for _, userID := range order {
		stats := byUser[userID]
		if stats.Completions > 0 {
			stats.AverageTime = float64(stats.TotalTime) / float64(stats.Completions)
		}
		stats.ActivityTypes = sortedKeys(types[userID])
		result = append(result, *stats)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Completions > result[j].Completions
	})
	return result
}

// SegmentStatsFrom counts activities per segment and resolves titles from the
// supplied segment list, ordered by count descending.
func SegmentStatsFrom(activities []SegmentActivity, segments []Segment) []SegmentStats {
	titles := make(map[string]string, len(segments))
	for _, s := range segments {
		titles[s.ID] = s.Title
	}

	var order []string
	counts := map[string]int{}
	for _, a := range activities {
		if _, seen := counts[a.SegmentID]; !seen {
			order = append(order, a.SegmentID)
		}
		counts[a.SegmentID]++
	}

	result := make([]SegmentStats, 0, len(order))
	for _, id := range order {
		result = append(result, SegmentStats{
			SegmentID: id,
			Title:     titles[id],
			Count:     counts[id],
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	return result
}

// ActivityTypeStatsFrom builds a histogram of activity types with each type's
// share of the total, ordered by count descending.
func ActivityTypeStatsFrom(activities []SegmentActivity) []ActivityTypeStats {
	var order []string
	counts := map[string]int{}
	for _, a := range activities {
		if _, seen := counts[a.ActivityType]; !seen {
			order = append(order, a.ActivityType)
		}
		counts[a.ActivityType]++
	}

	total := len(activities)
	result := make([]ActivityTypeStats, 0, len(order))
	for _, typ := range order {
		stats := ActivityTypeStats{ActivityType: typ, Count: counts[typ]}
		if total > 0 {
			stats.Percentage = float64(stats.Count) / float64(total) * 100
		}
		result = append(result, stats)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	return result
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
