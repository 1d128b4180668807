package analysis

import (
	"fmt"
	"math"

	"zonecoach/internal/store"
)

const (
	// DefaultMaxHR is the conservative fallback when nothing better is known
	DefaultMaxHR = 185
	// DefaultRestingHR is the fallback resting heart rate
	DefaultRestingHR = 60
	// ObservedMaxBuffer is added on top of the highest observed heart rate,
	// since few training runs reach a true maximum
	ObservedMaxBuffer = 5
	// MinObservedActivities is how many HR-carrying activities are needed
	// before the observed maximum is trusted
	MinObservedActivities = 5
)

// restingHRByFitness maps a self-reported fitness level to a typical
// resting heart rate
var restingHRByFitness = map[string]float64{
	"elite":        45,
	"advanced":     50,
	"intermediate": 60,
	"beginner":     65,
}

// Estimate is a derived physiological value with its provenance
type Estimate struct {
	Value      float64
	Method     string // age-based, observed-max, default, fitness-level
	Confidence string // high, medium, low
}

// PhysiologyEstimate aggregates the filled heart-rate values along with
// disclaimers naming the methods used and follow-up recommendations.
// Both slices are always non-empty.
type PhysiologyEstimate struct {
	MaxHR           Estimate
	RestingHR       Estimate
	Disclaimers     []string
	Recommendations []string
}

// EstimateMaxHR derives a maximum heart rate when the user hasn't supplied one.
// Preference order: Tanaka age formula, observed maximum across activities,
// conservative default. It never fails; absent inputs resolve to the default.
func EstimateMaxHR(p *store.Profile, activities []store.Activity) Estimate {
	if p.Age != nil {
		// Tanaka et al.: 208 - 0.7 * age
		return Estimate{
			Value:      math.Round(208 - 0.7*float64(*p.Age)),
			Method:     MethodAgeBased,
			Confidence: ConfidenceMedium,
		}
	}

	var observed float64
	var count int
	for _, a := range activities {
		if a.MaxHeartrate != nil && *a.MaxHeartrate > 0 {
			count++
			if *a.MaxHeartrate > observed {
				observed = *a.MaxHeartrate
			}
		}
	}
	if count >= MinObservedActivities {
		return Estimate{
			Value:      observed + ObservedMaxBuffer,
			Method:     MethodObservedMax,
			Confidence: ConfidenceMedium,
		}
	}

	return Estimate{
		Value:      DefaultMaxHR,
		Method:     MethodDefault,
		Confidence: ConfidenceLow,
	}
}

// EstimateRestingHR derives a resting heart rate from the stated fitness
// level, falling back to a population default
func EstimateRestingHR(p *store.Profile) Estimate {
	if p.FitnessLevel != nil {
		if hr, ok := restingHRByFitness[*p.FitnessLevel]; ok {
			return Estimate{
				Value:      hr,
				Method:     MethodFitnessLevel,
				Confidence: ConfidenceMedium,
			}
		}
	}
	return Estimate{
		Value:      DefaultRestingHR,
		Method:     MethodDefault,
		Confidence: ConfidenceLow,
	}
}

// EstimatePhysiology fills both heart-rate fields and explains itself
func EstimatePhysiology(p *store.Profile, activities []store.Activity) PhysiologyEstimate {
	est := PhysiologyEstimate{
		MaxHR:     EstimateMaxHR(p, activities),
		RestingHR: EstimateRestingHR(p),
	}

	switch est.MaxHR.Method {
	case MethodAgeBased:
		est.Disclaimers = append(est.Disclaimers,
			fmt.Sprintf("Max heart rate %.0f bpm estimated from age (208 - 0.7 x age); individual variation is large", est.MaxHR.Value))
	case MethodObservedMax:
		est.Disclaimers = append(est.Disclaimers,
			fmt.Sprintf("Max heart rate %.0f bpm estimated from your highest recorded heart rate plus a %d bpm buffer", est.MaxHR.Value, ObservedMaxBuffer))
	default:
		est.Disclaimers = append(est.Disclaimers,
			fmt.Sprintf("Max heart rate set to a conservative default of %d bpm; no age or heart rate history available", DefaultMaxHR))
	}

	switch est.RestingHR.Method {
	case MethodFitnessLevel:
		est.Disclaimers = append(est.Disclaimers,
			fmt.Sprintf("Resting heart rate %.0f bpm estimated from your fitness level", est.RestingHR.Value))
	default:
		est.Disclaimers = append(est.Disclaimers,
			fmt.Sprintf("Resting heart rate set to a conservative default of %d bpm", DefaultRestingHR))
	}

	est.Recommendations = append(est.Recommendations,
		"Measure your resting heart rate first thing in the morning for a week and enter the average",
		"A supervised field test (or a hard 5K finish) gives a far better max heart rate than any formula")

	return est
}
