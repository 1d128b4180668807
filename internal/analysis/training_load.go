package analysis

import (
	"math"
	"sort"
	"time"

	"zonecoach/internal/store"
)

// TRIMP calculates Training Impulse (Banister model) from an activity's
// average heart rate:
//
//	TRIMP = duration (min) * ΔHR ratio * e^(b * ΔHR ratio)
//
// where b = 1.92 for men, 1.67 for women (using male default)
func TRIMP(activity store.Activity, zones HRZones) float64 {
	duration := float64(activity.MovingTime) / 60.0 // Convert to minutes

	if activity.AverageHeartrate == nil || *activity.AverageHeartrate <= 0 {
		return 0
	}
	avgHR := *activity.AverageHeartrate

	// Heart rate reserve ratio
	hrReserve := zones.MaxHR - zones.RestingHR
	if hrReserve <= 0 {
		return 0
	}

	hrRatio := (avgHR - zones.RestingHR) / hrReserve
	if hrRatio < 0 {
		hrRatio = 0
	}
	if hrRatio > 1 {
		hrRatio = 1
	}

	// Gender coefficient (using male default)
	b := 1.92

	return duration * hrRatio * math.Exp(b*hrRatio)
}

// DailyLoad represents training load for a single day
type DailyLoad struct {
	Date  time.Time
	TRIMP float64
}

// DailyLoads computes per-day TRIMP totals from a run set, oldest first.
// Multiple activities on the same day sum.
func DailyLoads(runs []store.Activity, zones HRZones) []DailyLoad {
	loadMap := make(map[string]float64)
	for _, r := range runs {
		trimp := TRIMP(r, zones)
		if trimp == 0 {
			continue
		}
		key := r.StartDate.Format("2006-01-02")
		loadMap[key] += trimp
	}

	loads := make([]DailyLoad, 0, len(loadMap))
	for key, trimp := range loadMap {
		date, err := time.Parse("2006-01-02", key)
		if err != nil {
			continue
		}
		loads = append(loads, DailyLoad{Date: date, TRIMP: trimp})
	}

	sort.Slice(loads, func(i, j int) bool {
		return loads[i].Date.Before(loads[j].Date)
	})
	return loads
}

// WeeklyLoads buckets daily loads into calendar weeks (Monday start) and
// returns the totals oldest first, padded with zero weeks so charts stay
// continuous
func WeeklyLoads(loads []DailyLoad, numWeeks int, now time.Time) []float64 {
	totals := make([]float64, numWeeks)
	currentWeekStart := WeekStart(now)

	for _, dl := range loads {
		weekStart := WeekStart(dl.Date)
		weeksAgo := int(currentWeekStart.Sub(weekStart).Hours() / (24 * 7))
		idx := numWeeks - 1 - weeksAgo
		if idx < 0 || idx >= numWeeks {
			continue
		}
		totals[idx] += dl.TRIMP
	}

	return totals
}

// WeekStart returns Monday 00:00 of the week containing t, in t's location.
// Midnight is computed in local time so runs logged late Sunday don't slide
// into the wrong week for non-UTC users
func WeekStart(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday belongs to the previous Monday
	}
	return t.AddDate(0, 0, -(weekday - 1))
}
