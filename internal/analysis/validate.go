package analysis

import (
	"fmt"

	"zonecoach/internal/store"
)

// Physiological range limits for profile validation
const (
	MinMaxHR          = 100
	MaxMaxHR          = 220
	MinRestingHR      = 30
	MaxRestingHR      = 120
	MinBodyWeightKg   = 30
	MaxBodyWeightKg   = 200
	MinHeightCm       = 100
	MaxHeightCm       = 250
	MinAge            = 10
	MaxAge            = 100
	MaxExperienceYrs  = 50
	MaxWeeklyKm       = 300
	MinHRGap          = 20 // narrower than this between max and resting draws a warning
)

// ValidationResult collects range and relationship violations for a profile.
// Errors make the profile low quality; warnings do not.
type ValidationResult struct {
	Errors   []string
	Warnings []string
}

// Quality returns the data quality grade implied by the validation result
func (r ValidationResult) Quality() string {
	if len(r.Errors) == 0 {
		return QualityHigh
	}
	return QualityLow
}

// ValidateProfile checks a profile's field ranges and relationships.
// Each check is independent: all violations are collected, none short-circuits,
// and validation itself never fails.
func ValidateProfile(p *store.Profile) ValidationResult {
	var result ValidationResult

	if p.MaxHeartRate != nil && (*p.MaxHeartRate < MinMaxHR || *p.MaxHeartRate > MaxMaxHR) {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Maximum heart rate %.0f bpm is out of range (%d-%d)", *p.MaxHeartRate, MinMaxHR, MaxMaxHR))
	}

	if p.RestingHeartRate != nil && (*p.RestingHeartRate < MinRestingHR || *p.RestingHeartRate > MaxRestingHR) {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Resting heart rate %.0f bpm is out of range (%d-%d)", *p.RestingHeartRate, MinRestingHR, MaxRestingHR))
	}

	if p.MaxHeartRate != nil && p.RestingHeartRate != nil {
		if *p.MaxHeartRate <= *p.RestingHeartRate {
			result.Errors = append(result.Errors,
				fmt.Sprintf("Maximum heart rate (%.0f) must be higher than resting heart rate (%.0f)", *p.MaxHeartRate, *p.RestingHeartRate))
		} else if *p.MaxHeartRate-*p.RestingHeartRate < MinHRGap {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Unusually narrow heart rate range (%.0f bpm); double-check both values", *p.MaxHeartRate-*p.RestingHeartRate))
		}
	}

	if p.BodyWeightKg != nil && (*p.BodyWeightKg < MinBodyWeightKg || *p.BodyWeightKg > MaxBodyWeightKg) {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Body weight %.1f kg is out of range (%d-%d)", *p.BodyWeightKg, MinBodyWeightKg, MaxBodyWeightKg))
	}

	if p.HeightCm != nil && (*p.HeightCm < MinHeightCm || *p.HeightCm > MaxHeightCm) {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Height %.0f cm is out of range (%d-%d)", *p.HeightCm, MinHeightCm, MaxHeightCm))
	}

	if p.Age != nil && (*p.Age < MinAge || *p.Age > MaxAge) {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Age %d is out of range (%d-%d)", *p.Age, MinAge, MaxAge))
	}

	if p.RunningExperienceYears != nil && (*p.RunningExperienceYears < 0 || *p.RunningExperienceYears > MaxExperienceYrs) {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Running experience %.0f years is out of range (0-%d)", *p.RunningExperienceYears, MaxExperienceYrs))
	}

	if p.WeeklyMileageKm != nil && (*p.WeeklyMileageKm < 0 || *p.WeeklyMileageKm > MaxWeeklyKm) {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Weekly mileage %.0f km is out of range (0-%d)", *p.WeeklyMileageKm, MaxWeeklyKm))
	}

	return result
}
