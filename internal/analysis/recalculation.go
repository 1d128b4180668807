package analysis

// Derived metric names used in recalculation results
const (
	MetricTrainingZones  = "Training zones"
	MetricTRIMP          = "TRIMP calculations"
	MetricPowerEstimates = "Power estimates"
)

// Human-readable recalculation durations
const (
	DurationFull   = "5-10 minutes"
	DurationRecent = "1-2 minutes"
)

// RecalculationResult says whether historical derived metrics must be
// recomputed, over what window, and which metrics are affected
type RecalculationResult struct {
	ShouldRecalculate bool
	AffectedPeriod    string // none, recent, all
	AffectedMetrics   []string
	EstimatedDuration string
}

// TriggerHistoricalRecalculation decides what to recompute after a profile
// change. Heart-rate limits invalidate every zone- and load-derived metric
// over all history; body weight only affects recent power estimates; the
// remaining fields change nothing historical.
//
// Multiple simultaneous changes union their metric sets and take the
// broadest period (all > recent > none).
func TriggerHistoricalRecalculation(changedFields []string) RecalculationResult {
	result := RecalculationResult{AffectedPeriod: PeriodNone}

	changed := make(map[string]bool, len(changedFields))
	for _, f := range changedFields {
		changed[f] = true
	}

	hrChanged := changed[FieldMaxHeartRate] || changed[FieldRestingHeartRate]
	weightChanged := changed[FieldBodyWeightKg]

	if hrChanged {
		result.AffectedPeriod = PeriodAll
		result.AffectedMetrics = append(result.AffectedMetrics, MetricTrainingZones, MetricTRIMP)
	}

	if weightChanged {
		if result.AffectedPeriod == PeriodNone {
			result.AffectedPeriod = PeriodRecent
		}
		result.AffectedMetrics = append(result.AffectedMetrics, MetricPowerEstimates)
	}

	switch result.AffectedPeriod {
	case PeriodAll:
		result.EstimatedDuration = DurationFull
	case PeriodRecent:
		result.EstimatedDuration = DurationRecent
	}

	result.ShouldRecalculate = result.AffectedPeriod != PeriodNone
	return result
}
