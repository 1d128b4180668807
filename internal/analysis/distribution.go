package analysis

import (
	"fmt"
	"sort"

	"zonecoach/internal/store"
)

// ZoneTime is the accumulated time share for one zone
type ZoneTime struct {
	Percentage float64 // 0-100
	TotalTime  float64 // minutes
}

// ZoneDistributionAnalysis compares actual time-in-zone against the optimal
// polarized distribution
type ZoneDistributionAnalysis struct {
	// CurrentDistribution is indexed by zone (index 0 = zone 1)
	CurrentDistribution []ZoneTime
	Recommendations     []string
}

// AnalyzeZoneDistribution buckets each run's moving time into the heart rate
// zone matching its average heart rate (pace zone when heart rate is absent),
// computes per-zone percentages, and emits recommendations where the
// distribution deviates materially from the polarized target. Percentages sum
// to 100 within rounding tolerance.
func AnalyzeZoneDistribution(runs []store.Activity, zones TrainingZones, params Params) ZoneDistributionAnalysis {
	analysis := ZoneDistributionAnalysis{
		CurrentDistribution: make([]ZoneTime, 5),
	}

	var totalMinutes float64
	for _, r := range runs {
		if r.MovingTime <= 0 {
			continue
		}
		zone := assignZone(r, zones)
		if zone < 0 {
			continue
		}
		minutes := float64(r.MovingTime) / 60
		analysis.CurrentDistribution[zone].TotalTime += minutes
		totalMinutes += minutes
	}

	if totalMinutes == 0 {
		return analysis
	}

	for i := range analysis.CurrentDistribution {
		analysis.CurrentDistribution[i].Percentage =
			analysis.CurrentDistribution[i].TotalTime / totalMinutes * 100
	}

	analysis.Recommendations = distributionRecommendations(analysis.CurrentDistribution, params)
	return analysis
}

// assignZone picks the zone index (0-4) for a run using average heart rate,
// or average pace when no heart rate was recorded. Values below zone 1 or
// above zone 5 clamp to the outer zones. Returns -1 when neither signal is
// usable.
func assignZone(r store.Activity, zones TrainingZones) int {
	if r.AverageHeartrate != nil && *r.AverageHeartrate > 0 {
		hr := *r.AverageHeartrate
		for i, z := range zones.HeartRate {
			if hr < z.Max {
				return i
			}
		}
		return len(zones.HeartRate) - 1
	}

	if r.Distance > 0 {
		pace := float64(r.MovingTime) / (r.Distance / 1000) // seconds per km
		// Iterate from most intense: a faster pace than a zone's fast bound
		// belongs to a higher zone
		for i := len(zones.Pace) - 1; i >= 0; i-- {
			if pace <= zones.Pace[i].Max {
				return i
			}
		}
		return 0
	}

	return -1
}

// intensityBucket groups zones for comparison against the polarized target
type intensityBucket struct {
	label     string
	actualPct float64
	targetPct float64
	advice    map[bool]string // keyed by "actual above target"
}

// distributionRecommendations compares the low/moderate/high buckets against
// the polarized targets, most-deviant first, capped at MaxRecommendations
func distributionRecommendations(dist []ZoneTime, params Params) []string {
	buckets := []intensityBucket{
		{
			label:     "low intensity (zones 1-2)",
			actualPct: dist[0].Percentage + dist[1].Percentage,
			targetPct: params.TargetLowPct,
			advice: map[bool]string{
				false: "Add more easy running; most of your weekly time should feel genuinely relaxed",
				true:  "You have plenty of easy volume; consider converting some of it into quality sessions",
			},
		},
		{
			label:     "moderate intensity (zone 3)",
			actualPct: dist[2].Percentage,
			targetPct: params.TargetModeratePct,
			advice: map[bool]string{
				false: "A little more tempo work would round out your week",
				true:  "Too much time in the moderate gray zone; slow your easy days down and make hard days harder",
			},
		},
		{
			label:     "high intensity (zones 4-5)",
			actualPct: dist[3].Percentage + dist[4].Percentage,
			targetPct: params.TargetHighPct,
			advice: map[bool]string{
				false: "Add a weekly interval or threshold session to sharpen top-end fitness",
				true:  "High-intensity load is above target; watch recovery and cut back if fatigue builds",
			},
		},
	}

	type deviation struct {
		message string
		amount  float64
	}

	var deviations []deviation
	for _, b := range buckets {
		diff := b.actualPct - b.targetPct
		amount := diff
		if amount < 0 {
			amount = -amount
		}
		if amount < params.MaterialDeviationPct {
			continue
		}
		deviations = append(deviations, deviation{
			message: fmt.Sprintf("%s is at %.0f%% versus a %.0f%% target. %s",
				b.label, b.actualPct, b.targetPct, b.advice[diff > 0]),
			amount: amount,
		})
	}

	sort.SliceStable(deviations, func(i, j int) bool {
		return deviations[i].amount > deviations[j].amount
	})

	if len(deviations) > params.MaxRecommendations {
		deviations = deviations[:params.MaxRecommendations]
	}

	recommendations := make([]string, 0, len(deviations))
	for _, d := range deviations {
		recommendations = append(recommendations, d.message)
	}
	return recommendations
}
