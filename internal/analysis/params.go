package analysis

// Confidence grades attached to estimated values
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// Estimation methods recorded on a profile
const (
	MethodUserInput    = "user-input"
	MethodAgeBased     = "age-based"
	MethodObservedMax  = "observed-max"
	MethodDefault      = "default"
	MethodFitnessLevel = "fitness-level"
)

// Data freshness grades
const (
	FreshnessFresh = "fresh"
	FreshnessAging = "aging"
	FreshnessStale = "stale"
)

// Data quality grades
const (
	QualityHigh = "high"
	QualityLow  = "low"
)

// Recalculation periods, broadest last
const (
	PeriodNone   = "none"
	PeriodRecent = "recent"
	PeriodAll    = "all"
)

// Prompt priorities
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Profile field names, matching the platform API's JSON field names.
// These are the keys used in profile patches and changed-field sets.
const (
	FieldRestingHeartRate       = "resting_heart_rate"
	FieldMaxHeartRate           = "max_heart_rate"
	FieldBodyWeightKg           = "body_weight_kg"
	FieldHeightCm               = "height_cm"
	FieldAge                    = "age"
	FieldGender                 = "gender"
	FieldFitnessLevel           = "fitness_level"
	FieldRunningExperienceYears = "running_experience_years"
	FieldWeeklyMileageKm        = "weekly_mileage_km"
)

// Params bundles the engine's tunable constants so tests can override
// thresholds explicitly instead of relying on scattered magic numbers.
type Params struct {
	// Karvonen zone bands as fractions of heart rate reserve.
	// Band i spans HRZoneBands[i] to HRZoneBands[i+1].
	HRZoneBands [6]float64

	// Pace zone multipliers applied to the athlete's best recent pace.
	// Zone i spans best pace * PaceZoneBands[i] to best pace * PaceZoneBands[i+1],
	// fastest (most intense) multipliers last.
	PaceZoneBands [6]float64

	// Freshness thresholds in days
	FreshDays    int // at most this old = fresh
	StaleDays    int // older than this = stale
	CriticalDays int // older than this with estimated fields = critical

	// ReminderDays is how far out the next-update reminder is set
	ReminderDays int

	// Completeness score deductions per missing or estimated field
	DeductionHigh   int
	DeductionMedium int
	DeductionLow    int

	// Polarized distribution targets, percent of total time
	TargetLowPct      float64 // zones 1-2
	TargetModeratePct float64 // zone 3
	TargetHighPct     float64 // zones 4-5

	// MaterialDeviationPct is how far off target a bucket must be
	// before a recommendation is emitted
	MaterialDeviationPct float64

	// MaxRecommendations caps the distribution recommendation list
	MaxRecommendations int

	// Running power cost model: energy cost in J/(kg·m) on the flat,
	// plus an additional cost per unit of grade (elevation gain / distance)
	FlatCostPerKgM  float64
	GradeCostPerKgM float64
	MaxGrade        float64 // grade clamp for the cost model

	// Pace zone source window: how far back to look for a best effort,
	// and the minimum distance for a run to qualify
	BestEffortWindowDays int
	BestEffortMinMeters  float64
}

// DefaultParams returns the engine defaults
func DefaultParams() Params {
	return Params{
		HRZoneBands:   [6]float64{0.5, 0.6, 0.7, 0.8, 0.9, 1.0},
		PaceZoneBands: [6]float64{1.70, 1.45, 1.25, 1.15, 1.05, 0.95},

		FreshDays:    30,
		StaleDays:    90,
		CriticalDays: 365,
		ReminderDays: 90,

		DeductionHigh:   20,
		DeductionMedium: 10,
		DeductionLow:    5,

		TargetLowPct:         80,
		TargetModeratePct:    10,
		TargetHighPct:        10,
		MaterialDeviationPct: 10,
		MaxRecommendations:   3,

		// ~0.98 J/(kg·m) is the commonly cited flat cost of running;
		// the grade term approximates the extra vertical work at typical
		// running economy.
		FlatCostPerKgM:  0.98,
		GradeCostPerKgM: 2.7,
		MaxGrade:        0.30,

		BestEffortWindowDays: 90,
		BestEffortMinMeters:  3000,
	}
}
