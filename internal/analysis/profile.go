package analysis

import (
	"time"

	"zonecoach/internal/store"
)

// ProfilePatch is a partial profile update. Nil fields are left untouched
// when merging; the patch is applied field-by-field, never by blind copy.
type ProfilePatch struct {
	RestingHeartRate       *float64 `json:"resting_heart_rate,omitempty"`
	MaxHeartRate           *float64 `json:"max_heart_rate,omitempty"`
	BodyWeightKg           *float64 `json:"body_weight_kg,omitempty"`
	HeightCm               *float64 `json:"height_cm,omitempty"`
	Age                    *int     `json:"age,omitempty"`
	Gender                 *string  `json:"gender,omitempty"`
	FitnessLevel           *string  `json:"fitness_level,omitempty"`
	RunningExperienceYears *float64 `json:"running_experience_years,omitempty"`
	WeeklyMileageKm        *float64 `json:"weekly_mileage_km,omitempty"`
}

// ChangedFields lists the field names present in the patch, using the
// platform API field names
func (p ProfilePatch) ChangedFields() []string {
	var fields []string
	if p.RestingHeartRate != nil {
		fields = append(fields, FieldRestingHeartRate)
	}
	if p.MaxHeartRate != nil {
		fields = append(fields, FieldMaxHeartRate)
	}
	if p.BodyWeightKg != nil {
		fields = append(fields, FieldBodyWeightKg)
	}
	if p.HeightCm != nil {
		fields = append(fields, FieldHeightCm)
	}
	if p.Age != nil {
		fields = append(fields, FieldAge)
	}
	if p.Gender != nil {
		fields = append(fields, FieldGender)
	}
	if p.FitnessLevel != nil {
		fields = append(fields, FieldFitnessLevel)
	}
	if p.RunningExperienceYears != nil {
		fields = append(fields, FieldRunningExperienceYears)
	}
	if p.WeeklyMileageKm != nil {
		fields = append(fields, FieldWeeklyMileageKm)
	}
	return fields
}

// ProfileResult is the outcome of a profile create-or-update. Success is
// false when validation found errors, but the computed profile is always
// present; the caller can inspect its ValidationErrors for detail.
type ProfileResult struct {
	Success       bool
	Profile       *store.Profile
	Warnings      []string
	Disclaimers   []string
	Recalculation RecalculationResult
}

// BuildProfile merges a patch onto an existing profile (or a blank one keyed
// by userID), validates the result, fills missing heart-rate fields through
// the estimator, stamps freshness and the next update reminder, and decides
// what historical data needs recomputing.
func BuildProfile(userID string, patch ProfilePatch, existing *store.Profile, activities []store.Activity, now time.Time, params Params) ProfileResult {
	profile := blankProfile(userID, now)
	if existing != nil {
		copied := *existing
		profile = &copied
	}
	applyPatch(profile, patch)

	validation := ValidateProfile(profile)
	result := ProfileResult{
		Success:  len(validation.Errors) == 0,
		Profile:  profile,
		Warnings: validation.Warnings,
	}

	// Fill whatever the user never supplied directly. A value that was
	// itself estimated last time is re-estimated, since new patch fields
	// (age, fitness level) may improve it.
	if patch.MaxHeartRate != nil {
		profile.MaxHREstimated = false
	} else if profile.MaxHeartRate == nil || profile.MaxHREstimated {
		est := EstimateMaxHR(profile, activities)
		profile.MaxHeartRate = &est.Value
		profile.MaxHREstimated = true
		profile.EstimationMethod = est.Method
	}
	if patch.RestingHeartRate != nil {
		profile.RestingHREstimated = false
	} else if profile.RestingHeartRate == nil || profile.RestingHREstimated {
		est := EstimateRestingHR(profile)
		profile.RestingHeartRate = &est.Value
		profile.RestingHREstimated = true
		if !profile.MaxHREstimated {
			profile.EstimationMethod = est.Method
		}
	}
	if !profile.MaxHREstimated && !profile.RestingHREstimated {
		profile.EstimationMethod = MethodUserInput
	}

	if profile.MaxHREstimated || profile.RestingHREstimated {
		est := EstimatePhysiology(profile, activities)
		result.Disclaimers = est.Disclaimers
	}

	profile.LastUpdated = now
	profile.DataFreshness = FreshnessFresh
	profile.DataQuality = validation.Quality()
	profile.ValidationErrors = validation.Errors
	if profile.ValidationErrors == nil {
		profile.ValidationErrors = []string{}
	}
	reminder := now.AddDate(0, 0, params.ReminderDays)
	profile.NextUpdateReminder = &reminder
	profile.UpdatedAt = now

	result.Recalculation = TriggerHistoricalRecalculation(patch.ChangedFields())
	return result
}

// blankProfile returns an empty profile keyed by userID
func blankProfile(userID string, now time.Time) *store.Profile {
	return &store.Profile{
		UserID:           userID,
		EstimationMethod: MethodUserInput,
		DataFreshness:    FreshnessFresh,
		DataQuality:      QualityHigh,
		ValidationErrors: []string{},
		CreatedAt:        now,
	}
}

// applyPatch merges non-nil patch fields onto the profile
func applyPatch(profile *store.Profile, patch ProfilePatch) {
	if patch.RestingHeartRate != nil {
		profile.RestingHeartRate = patch.RestingHeartRate
	}
	if patch.MaxHeartRate != nil {
		profile.MaxHeartRate = patch.MaxHeartRate
	}
	if patch.BodyWeightKg != nil {
		profile.BodyWeightKg = patch.BodyWeightKg
	}
	if patch.HeightCm != nil {
		profile.HeightCm = patch.HeightCm
	}
	if patch.Age != nil {
		profile.Age = patch.Age
	}
	if patch.Gender != nil {
		profile.Gender = patch.Gender
	}
	if patch.FitnessLevel != nil {
		profile.FitnessLevel = patch.FitnessLevel
	}
	if patch.RunningExperienceYears != nil {
		profile.RunningExperienceYears = patch.RunningExperienceYears
	}
	if patch.WeeklyMileageKm != nil {
		profile.WeeklyMileageKm = patch.WeeklyMileageKm
	}
}
