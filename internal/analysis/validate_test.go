package analysis

import (
	"strings"
	"testing"

	"zonecoach/internal/store"
)

func TestValidateProfile(t *testing.T) {
	tests := []struct {
		name          string
		profile       *store.Profile
		wantErrors    int
		wantWarnings  int
		errContains   string
		warnContains  string
	}{
		{
			name:    "empty profile is valid",
			profile: &store.Profile{},
		},
		{
			name: "fully valid profile",
			profile: &store.Profile{
				RestingHeartRate:       floatPtr(52),
				MaxHeartRate:           floatPtr(188),
				BodyWeightKg:           floatPtr(70),
				HeightCm:               floatPtr(178),
				Age:                    intPtr(34),
				RunningExperienceYears: floatPtr(8),
				WeeklyMileageKm:        floatPtr(55),
			},
		},
		{
			name:        "max HR out of range high",
			profile:     &store.Profile{MaxHeartRate: floatPtr(240)},
			wantErrors:  1,
			errContains: "out of range",
		},
		{
			name:        "max HR out of range low",
			profile:     &store.Profile{MaxHeartRate: floatPtr(90)},
			wantErrors:  1,
			errContains: "Maximum heart rate",
		},
		{
			name:        "resting HR out of range",
			profile:     &store.Profile{RestingHeartRate: floatPtr(20)},
			wantErrors:  1,
			errContains: "Resting heart rate",
		},
		{
			name: "resting above max",
			profile: &store.Profile{
				RestingHeartRate: floatPtr(150),
				MaxHeartRate:     floatPtr(100),
			},
			wantErrors:  2, // resting out of range too
			errContains: "higher than resting",
		},
		{
			name: "narrow HR range warns but does not error",
			profile: &store.Profile{
				RestingHeartRate: floatPtr(140),
				MaxHeartRate:     floatPtr(150),
			},
			wantErrors:   1, // resting 140 is out of range
			wantWarnings: 1,
			warnContains: "narrow",
		},
		{
			name: "narrow HR range with valid values",
			profile: &store.Profile{
				RestingHeartRate: floatPtr(110),
				MaxHeartRate:     floatPtr(125),
			},
			wantWarnings: 1,
			warnContains: "narrow",
		},
		{
			name:        "body weight out of range",
			profile:     &store.Profile{BodyWeightKg: floatPtr(300)},
			wantErrors:  1,
			errContains: "Body weight",
		},
		{
			name:        "height out of range",
			profile:     &store.Profile{HeightCm: floatPtr(80)},
			wantErrors:  1,
			errContains: "Height",
		},
		{
			name:        "age out of range",
			profile:     &store.Profile{Age: intPtr(105)},
			wantErrors:  1,
			errContains: "Age",
		},
		{
			name:        "experience out of range",
			profile:     &store.Profile{RunningExperienceYears: floatPtr(60)},
			wantErrors:  1,
			errContains: "experience",
		},
		{
			name:        "mileage out of range",
			profile:     &store.Profile{WeeklyMileageKm: floatPtr(400)},
			wantErrors:  1,
			errContains: "mileage",
		},
		{
			name: "violations accumulate, none short-circuits",
			profile: &store.Profile{
				MaxHeartRate: floatPtr(250),
				BodyWeightKg: floatPtr(10),
				Age:          intPtr(5),
			},
			wantErrors: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateProfile(tt.profile)

			if len(result.Errors) != tt.wantErrors {
				t.Errorf("Errors = %v, want %d", result.Errors, tt.wantErrors)
			}
			if len(result.Warnings) != tt.wantWarnings {
				t.Errorf("Warnings = %v, want %d", result.Warnings, tt.wantWarnings)
			}
			if tt.errContains != "" && !containsAny(result.Errors, tt.errContains) {
				t.Errorf("Errors %v should mention %q", result.Errors, tt.errContains)
			}
			if tt.warnContains != "" && !containsAny(result.Warnings, tt.warnContains) {
				t.Errorf("Warnings %v should mention %q", result.Warnings, tt.warnContains)
			}
		})
	}
}

func TestValidationQuality(t *testing.T) {
	clean := ValidationResult{}
	if clean.Quality() != QualityHigh {
		t.Errorf("Quality() = %q, want high", clean.Quality())
	}

	dirty := ValidationResult{Errors: []string{"Age 5 is out of range (10-100)"}}
	if dirty.Quality() != QualityLow {
		t.Errorf("Quality() = %q, want low", dirty.Quality())
	}

	// Warnings alone don't degrade quality
	warned := ValidationResult{Warnings: []string{"Unusually narrow heart rate range"}}
	if warned.Quality() != QualityHigh {
		t.Errorf("Quality() with warnings only = %q, want high", warned.Quality())
	}
}

func containsAny(list []string, substr string) bool {
	for _, s := range list {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}
