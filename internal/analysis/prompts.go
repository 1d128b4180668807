package analysis

import "zonecoach/internal/store"

// UpdatePrompt asks the user to supply or refresh a single profile field
type UpdatePrompt struct {
	Field    string
	Priority string // high, medium, low
	Message  string
	HelpText string
}

// UpdatePromptSet is a prioritized list of missing-field prompts plus a
// profile completeness score (0-100)
type UpdatePromptSet struct {
	Prompts      []UpdatePrompt
	OverallScore int
}

// promptSpec describes one tracked field: how to detect it missing or
// estimated, and the fixed prompt text
type promptSpec struct {
	field    string
	priority string
	message  string
	helpText string
	needed   func(p *store.Profile) bool
}

// trackedFields is ordered high -> medium -> low; order within a priority
// class is stable
var trackedFields = []promptSpec{
	{
		field:    FieldMaxHeartRate,
		priority: PriorityHigh,
		message:  "Your maximum heart rate is missing or estimated",
		helpText: "A rough estimate is 220 minus your age, but a directly measured value (hard finish of a short race) is much better",
		needed:   func(p *store.Profile) bool { return p.MaxHeartRate == nil || p.MaxHREstimated },
	},
	{
		field:    FieldRestingHeartRate,
		priority: PriorityHigh,
		message:  "Your resting heart rate is missing or estimated",
		helpText: "Measure it first thing in the morning, before getting out of bed, over several days",
		needed:   func(p *store.Profile) bool { return p.RestingHeartRate == nil || p.RestingHREstimated },
	},
	{
		field:    FieldBodyWeightKg,
		priority: PriorityHigh,
		message:  "Your body weight is missing",
		helpText: "Weight drives power estimation; weigh yourself in the morning for consistency",
		needed:   func(p *store.Profile) bool { return p.BodyWeightKg == nil },
	},
	{
		field:    FieldAge,
		priority: PriorityMedium,
		message:  "Your age is missing",
		helpText: "Age improves the max heart rate estimate when no measured value exists",
		needed:   func(p *store.Profile) bool { return p.Age == nil },
	},
	{
		field:    FieldFitnessLevel,
		priority: PriorityMedium,
		message:  "Your fitness level is missing",
		helpText: "Pick the closest match: beginner, intermediate, advanced, or elite",
		needed:   func(p *store.Profile) bool { return p.FitnessLevel == nil },
	},
	{
		field:    FieldWeeklyMileageKm,
		priority: PriorityMedium,
		message:  "Your typical weekly mileage is missing",
		helpText: "An average over the last month is fine",
		needed:   func(p *store.Profile) bool { return p.WeeklyMileageKm == nil },
	},
	{
		field:    FieldHeightCm,
		priority: PriorityLow,
		message:  "Your height is missing",
		helpText: "Height refines body-composition context; it is the least urgent field",
		needed:   func(p *store.Profile) bool { return p.HeightCm == nil },
	},
}

// GenerateUpdatePrompts produces a prioritized list of missing-field prompts
// and a completeness score. A fully specified, non-estimated profile scores
// exactly 100.
func GenerateUpdatePrompts(p *store.Profile, params Params) UpdatePromptSet {
	set := UpdatePromptSet{OverallScore: 100}

	for _, spec := range trackedFields {
		if !spec.needed(p) {
			continue
		}
		set.Prompts = append(set.Prompts, UpdatePrompt{
			Field:    spec.field,
			Priority: spec.priority,
			Message:  spec.message,
			HelpText: spec.helpText,
		})
		switch spec.priority {
		case PriorityHigh:
			set.OverallScore -= params.DeductionHigh
		case PriorityMedium:
			set.OverallScore -= params.DeductionMedium
		case PriorityLow:
			set.OverallScore -= params.DeductionLow
		}
	}

	if set.OverallScore < 0 {
		set.OverallScore = 0
	}
	return set
}
