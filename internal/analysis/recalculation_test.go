package analysis

import (
	"strings"
	"testing"
)

func TestTriggerHistoricalRecalculation(t *testing.T) {
	tests := []struct {
		name             string
		changedFields    []string
		wantRecalculate  bool
		wantPeriod       string
		wantMetrics      []string
		durationContains string
	}{
		{
			name:            "no changes",
			changedFields:   nil,
			wantRecalculate: false,
			wantPeriod:      PeriodNone,
		},
		{
			name:            "cosmetic fields change nothing",
			changedFields:   []string{FieldHeightCm, FieldRunningExperienceYears},
			wantRecalculate: false,
			wantPeriod:      PeriodNone,
		},
		{
			name:            "gender and fitness level alone change nothing",
			changedFields:   []string{FieldGender, FieldFitnessLevel, FieldWeeklyMileageKm},
			wantRecalculate: false,
			wantPeriod:      PeriodNone,
		},
		{
			name:             "heart rate limits invalidate everything",
			changedFields:    []string{FieldMaxHeartRate, FieldRestingHeartRate},
			wantRecalculate:  true,
			wantPeriod:       PeriodAll,
			wantMetrics:      []string{MetricTrainingZones, MetricTRIMP},
			durationContains: "5-10",
		},
		{
			name:             "max HR alone still invalidates everything",
			changedFields:    []string{FieldMaxHeartRate},
			wantRecalculate:  true,
			wantPeriod:       PeriodAll,
			wantMetrics:      []string{MetricTrainingZones, MetricTRIMP},
			durationContains: "5-10",
		},
		{
			name:             "body weight alone touches recent power",
			changedFields:    []string{FieldBodyWeightKg},
			wantRecalculate:  true,
			wantPeriod:       PeriodRecent,
			wantMetrics:      []string{MetricPowerEstimates},
			durationContains: "1-2",
		},
		{
			name:             "weight plus heart rate unions metrics, takes broadest period",
			changedFields:    []string{FieldBodyWeightKg, FieldRestingHeartRate},
			wantRecalculate:  true,
			wantPeriod:       PeriodAll,
			wantMetrics:      []string{MetricTrainingZones, MetricTRIMP, MetricPowerEstimates},
			durationContains: "5-10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := TriggerHistoricalRecalculation(tt.changedFields)

			if result.ShouldRecalculate != tt.wantRecalculate {
				t.Errorf("ShouldRecalculate = %v, want %v", result.ShouldRecalculate, tt.wantRecalculate)
			}
			if result.AffectedPeriod != tt.wantPeriod {
				t.Errorf("AffectedPeriod = %q, want %q", result.AffectedPeriod, tt.wantPeriod)
			}
			if len(result.AffectedMetrics) != len(tt.wantMetrics) {
				t.Fatalf("AffectedMetrics = %v, want %v", result.AffectedMetrics, tt.wantMetrics)
			}
			for _, m := range tt.wantMetrics {
				found := false
				for _, got := range result.AffectedMetrics {
					if got == m {
						found = true
					}
				}
				if !found {
					t.Errorf("AffectedMetrics %v missing %q", result.AffectedMetrics, m)
				}
			}
			if tt.durationContains != "" && !strings.Contains(result.EstimatedDuration, tt.durationContains) {
				t.Errorf("EstimatedDuration = %q, want it to contain %q", result.EstimatedDuration, tt.durationContains)
			}
			if tt.wantPeriod == PeriodNone && result.EstimatedDuration != "" {
				t.Errorf("EstimatedDuration = %q, want empty for period none", result.EstimatedDuration)
			}
		})
	}
}
