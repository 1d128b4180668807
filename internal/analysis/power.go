package analysis

import "zonecoach/internal/store"

// PowerEstimate is an estimated average mechanical power for one activity
type PowerEstimate struct {
	EstimatedPower float64 // watts
	Confidence     string  // high, medium, low
}

// EstimateRunningPower estimates average mechanical power for a run from its
// summary data and the athlete's body weight.
//
// Average speed comes from distance over moving time. The cost of running is
// a flat term plus a grade term driven by elevation gain per unit distance,
// then scaled by body weight:
//
//	watts = (flatCost + gradeCost * grade) * speed (m/s) * weight (kg)
//
// Confidence is high when the run carries both heart-rate and elevation data,
// medium with one of the two, low otherwise. Callers building aggregates
// should filter on confidence != low.
func EstimateRunningPower(run store.Activity, bodyWeightKg float64, params Params) PowerEstimate {
	if run.MovingTime <= 0 || run.Distance <= 0 || bodyWeightKg <= 0 {
		return PowerEstimate{Confidence: ConfidenceLow}
	}

	speed := run.Distance / float64(run.MovingTime) // m/s

	grade := run.TotalElevationGain / run.Distance
	if grade < 0 {
		grade = 0
	}
	if grade > params.MaxGrade {
		grade = params.MaxGrade
	}

	costPerKgM := params.FlatCostPerKgM + params.GradeCostPerKgM*grade
	watts := costPerKgM * speed * bodyWeightKg

	hasHR := run.AverageHeartrate != nil && *run.AverageHeartrate > 0
	hasElevation := run.TotalElevationGain > 0

	confidence := ConfidenceLow
	switch {
	case hasHR && hasElevation:
		confidence = ConfidenceHigh
	case hasHR || hasElevation:
		confidence = ConfidenceMedium
	}

	return PowerEstimate{
		EstimatedPower: watts,
		Confidence:     confidence,
	}
}
