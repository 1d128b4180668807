package analysis

import (
	"time"

	"zonecoach/internal/store"
)

// FreshnessResult reports how old a profile's data is and what should be
// refreshed
type FreshnessResult struct {
	IsStale               bool
	DaysSinceUpdate       int
	CriticalUpdatesNeeded []string
	RecommendedActions    []string
}

// FreshnessGrade maps an age in days to a freshness grade
func FreshnessGrade(daysSinceUpdate int, params Params) string {
	switch {
	case daysSinceUpdate < params.FreshDays:
		return FreshnessFresh
	case daysSinceUpdate <= params.StaleDays:
		return FreshnessAging
	default:
		return FreshnessStale
	}
}

// CheckDataFreshness determines whether a profile's data is stale and which
// fields need urgent re-entry. A zero LastUpdated surfaces as extremely stale
// rather than erroring.
func CheckDataFreshness(p *store.Profile, now time.Time, params Params) FreshnessResult {
	days := int(now.Sub(p.LastUpdated).Hours() / 24)
	if days < 0 {
		days = 0
	}

	result := FreshnessResult{
		DaysSinceUpdate: days,
		IsStale:         days > params.StaleDays,
	}

	if days > params.CriticalDays {
		if p.MaxHREstimated {
			result.CriticalUpdatesNeeded = append(result.CriticalUpdatesNeeded,
				"Max heart rate should be re-measured or re-estimated")
		}
		if p.RestingHREstimated {
			result.CriticalUpdatesNeeded = append(result.CriticalUpdatesNeeded,
				"Resting heart rate should be re-measured")
		}
	}

	if result.IsStale {
		result.RecommendedActions = append(result.RecommendedActions,
			"Update your body weight; it drifts more than you think")
		if p.RestingHREstimated {
			result.RecommendedActions = append(result.RecommendedActions,
				"Re-measure your resting heart rate over a few rested mornings")
		} else {
			result.RecommendedActions = append(result.RecommendedActions,
				"Confirm your resting heart rate is still accurate")
		}
		if p.MaxHREstimated {
			result.RecommendedActions = append(result.RecommendedActions,
				"Your max heart rate is estimated; a field test would pin it down")
		}
	}

	return result
}
