package analysis

import (
	"testing"
	"time"

	"zonecoach/internal/store"
)

func TestCheckDataFreshness(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	params := DefaultParams()

	tests := []struct {
		name             string
		profile          *store.Profile
		wantStale        bool
		wantDays         int
		wantCritical     int
		criticalContains string
	}{
		{
			name:      "updated today",
			profile:   &store.Profile{LastUpdated: now},
			wantStale: false,
			wantDays:  0,
		},
		{
			name:      "updated 100 days ago is stale",
			profile:   &store.Profile{LastUpdated: now.AddDate(0, 0, -100)},
			wantStale: true,
			wantDays:  100,
		},
		{
			name:      "90 days is the boundary, not yet stale",
			profile:   &store.Profile{LastUpdated: now.AddDate(0, 0, -90)},
			wantStale: false,
			wantDays:  90,
		},
		{
			name: "over a year with estimated max HR is critical",
			profile: &store.Profile{
				LastUpdated:    now.AddDate(0, 0, -400),
				MaxHREstimated: true,
			},
			wantStale:        true,
			wantDays:         400,
			wantCritical:     1,
			criticalContains: "Max heart rate",
		},
		{
			name: "over a year with both HR fields estimated",
			profile: &store.Profile{
				LastUpdated:        now.AddDate(0, 0, -400),
				MaxHREstimated:     true,
				RestingHREstimated: true,
			},
			wantStale:    true,
			wantDays:     400,
			wantCritical: 2,
		},
		{
			name: "over a year but nothing estimated",
			profile: &store.Profile{
				LastUpdated: now.AddDate(0, 0, -400),
			},
			wantStale:    true,
			wantDays:     400,
			wantCritical: 0,
		},
		{
			name:      "zero LastUpdated is extremely stale, never an error",
			profile:   &store.Profile{},
			wantStale: true,
			wantDays:  int(now.Sub(time.Time{}).Hours() / 24),
		},
		{
			name:      "future timestamp clamps to zero days",
			profile:   &store.Profile{LastUpdated: now.AddDate(0, 0, 5)},
			wantStale: false,
			wantDays:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CheckDataFreshness(tt.profile, now, params)

			if result.IsStale != tt.wantStale {
				t.Errorf("IsStale = %v, want %v", result.IsStale, tt.wantStale)
			}
			if result.DaysSinceUpdate != tt.wantDays {
				t.Errorf("DaysSinceUpdate = %d, want %d", result.DaysSinceUpdate, tt.wantDays)
			}
			if len(result.CriticalUpdatesNeeded) != tt.wantCritical {
				t.Errorf("CriticalUpdatesNeeded = %v, want %d entries", result.CriticalUpdatesNeeded, tt.wantCritical)
			}
			if tt.criticalContains != "" && !containsAny(result.CriticalUpdatesNeeded, tt.criticalContains) {
				t.Errorf("CriticalUpdatesNeeded %v should mention %q", result.CriticalUpdatesNeeded, tt.criticalContains)
			}
			if tt.wantStale && len(result.RecommendedActions) == 0 {
				t.Error("stale profile should carry recommended actions")
			}
		})
	}
}

func TestFreshnessGrade(t *testing.T) {
	params := DefaultParams()

	tests := []struct {
		days int
		want string
	}{
		{0, FreshnessFresh},
		{29, FreshnessFresh},
		{30, FreshnessAging},
		{90, FreshnessAging},
		{91, FreshnessStale},
		{1000, FreshnessStale},
	}

	for _, tt := range tests {
		if got := FreshnessGrade(tt.days, params); got != tt.want {
			t.Errorf("FreshnessGrade(%d) = %q, want %q", tt.days, got, tt.want)
		}
	}
}
