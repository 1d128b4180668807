package analysis

import (
	"time"

	"zonecoach/internal/store"
)

// HRZones represents athlete's heart rate limits
type HRZones struct {
	RestingHR float64
	MaxHR     float64
}

// DefaultZones returns sensible defaults if not configured
func DefaultZones() HRZones {
	return HRZones{
		RestingHR: DefaultRestingHR,
		MaxHR:     DefaultMaxHR,
	}
}

// ZonesFromProfile builds heart rate limits from a profile, falling back to
// defaults for whatever the profile doesn't carry
func ZonesFromProfile(p *store.Profile) HRZones {
	zones := DefaultZones()
	if p == nil {
		return zones
	}
	if p.RestingHeartRate != nil {
		zones.RestingHR = *p.RestingHeartRate
	}
	if p.MaxHeartRate != nil {
		zones.MaxHR = *p.MaxHeartRate
	}
	return zones
}

// HRZone is one heart rate training zone
type HRZone struct {
	Min         float64 // bpm, inclusive
	Max         float64 // bpm, exclusive except for the top zone
	Description string
}

// PaceZone is one pace training zone. Min is the faster bound (numerically
// smaller seconds per km).
type PaceZone struct {
	Name        string
	Min         float64 // seconds per km, faster bound
	Max         float64 // seconds per km, slower bound
	Description string
}

// TrainingZones holds the five heart rate and five pace zones in ascending
// physiological-intensity order (index 0 = zone 1)
type TrainingZones struct {
	HeartRate []HRZone
	Pace      []PaceZone
}

var hrZoneDescriptions = [5]string{
	"Recovery - very light effort",
	"Easy - aerobic base building",
	"Tempo - comfortably hard",
	"Threshold - sustained hard effort",
	"VO2max - maximal aerobic effort",
}

var paceZoneNames = [5]string{"Recovery", "Easy", "Tempo", "Threshold", "VO2max"}

var paceZoneDescriptions = [5]string{
	"Jogging, full conversation pace",
	"Relaxed pace for the bulk of weekly volume",
	"Steady pace you could hold for about an hour",
	"Roughly 10K race effort",
	"Short interval pace, 3-5 minute efforts",
}

// fallbackBestPace maps fitness level to a plausible best-effort pace in
// seconds per km, used when no qualifying run exists
var fallbackBestPace = map[string]float64{
	"elite":        210,
	"advanced":     250,
	"intermediate": 300,
	"beginner":     360,
}

const defaultBestPace = 330

// CalculateTrainingZones derives heart rate zones (Karvonen method) and pace
// zones from the athlete's recent runs and profile. Zones are returned in
// ascending intensity order with strictly increasing heart rate boundaries.
func CalculateTrainingZones(runs []store.Activity, p *store.Profile, params Params) TrainingZones {
	limits := ZonesFromProfile(p)
	reserve := limits.MaxHR - limits.RestingHR

	var zones TrainingZones
	for i := 0; i < 5; i++ {
		zones.HeartRate = append(zones.HeartRate, HRZone{
			Min:         limits.RestingHR + params.HRZoneBands[i]*reserve,
			Max:         limits.RestingHR + params.HRZoneBands[i+1]*reserve,
			Description: hrZoneDescriptions[i],
		})
	}

	best := bestRecentPace(runs, p, params)
	for i := 0; i < 5; i++ {
		zones.Pace = append(zones.Pace, PaceZone{
			Name:        paceZoneNames[i],
			Min:         best * params.PaceZoneBands[i+1],
			Max:         best * params.PaceZoneBands[i],
			Description: paceZoneDescriptions[i],
		})
	}

	return zones
}

// bestRecentPace finds the fastest average pace (seconds per km) among
// qualifying recent runs. The recency window is anchored on the newest run so
// the result doesn't depend on the wall clock. Falls back to a fitness-level
// default when no run qualifies.
func bestRecentPace(runs []store.Activity, p *store.Profile, params Params) float64 {
	var newest time.Time
	for _, r := range runs {
		if r.StartDate.After(newest) {
			newest = r.StartDate
		}
	}
	cutoff := newest.AddDate(0, 0, -params.BestEffortWindowDays)

	best := 0.0
	for _, r := range runs {
		if r.Distance < params.BestEffortMinMeters || r.MovingTime <= 0 {
			continue
		}
		if r.StartDate.Before(cutoff) {
			continue
		}
		pace := float64(r.MovingTime) / (r.Distance / 1000)
		if best == 0 || pace < best {
			best = pace
		}
	}

	if best > 0 {
		return best
	}
	if p != nil && p.FitnessLevel != nil {
		if pace, ok := fallbackBestPace[*p.FitnessLevel]; ok {
			return pace
		}
	}
	return defaultBestPace
}
