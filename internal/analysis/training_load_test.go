package analysis

import (
	"math"
	"testing"
	"time"

	"zonecoach/internal/store"
)

func TestTRIMP(t *testing.T) {
	zones := HRZones{RestingHR: 50, MaxHR: 190}

	tests := []struct {
		name     string
		activity store.Activity
		want     float64
		delta    float64
	}{
		{
			name: "easy hour",
			activity: store.Activity{
				MovingTime:       3600,
				AverageHeartrate: floatPtr(120), // ratio 0.5
			},
			want:  60 * 0.5 * math.Exp(1.92*0.5),
			delta: 0.01,
		},
		{
			name: "hard half hour",
			activity: store.Activity{
				MovingTime:       1800,
				AverageHeartrate: floatPtr(176), // ratio 0.9
			},
			want:  30 * 0.9 * math.Exp(1.92*0.9),
			delta: 0.01,
		},
		{
			name:     "no heart rate",
			activity: store.Activity{MovingTime: 3600},
			want:     0,
		},
		{
			name: "heart rate below resting clamps to zero",
			activity: store.Activity{
				MovingTime:       3600,
				AverageHeartrate: floatPtr(45),
			},
			want: 0,
		},
		{
			name: "heart rate above max clamps to ratio 1",
			activity: store.Activity{
				MovingTime:       600,
				AverageHeartrate: floatPtr(205),
			},
			want:  10 * math.Exp(1.92),
			delta: 0.01,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TRIMP(tt.activity, zones)
			if math.Abs(got-tt.want) > tt.delta {
				t.Errorf("TRIMP() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTRIMPDegenerateZones(t *testing.T) {
	activity := store.Activity{MovingTime: 3600, AverageHeartrate: floatPtr(150)}
	if got := TRIMP(activity, HRZones{RestingHR: 185, MaxHR: 185}); got != 0 {
		t.Errorf("TRIMP() with zero reserve = %v, want 0", got)
	}
}

func TestDailyLoads(t *testing.T) {
	zones := DefaultZones()
	day1 := time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 4, 18, 30, 0, 0, time.UTC)

	runs := []store.Activity{
		{ID: 1, StartDate: day2, MovingTime: 1800, AverageHeartrate: floatPtr(150)},
		{ID: 2, StartDate: day1, MovingTime: 3600, AverageHeartrate: floatPtr(130)},
		{ID: 3, StartDate: day1.Add(10 * time.Hour), MovingTime: 1200, AverageHeartrate: floatPtr(140)},
		{ID: 4, StartDate: day1, MovingTime: 3600}, // no HR, contributes nothing
	}

	loads := DailyLoads(runs, zones)

	if len(loads) != 2 {
		t.Fatalf("len(loads) = %d, want 2", len(loads))
	}
	if !loads[0].Date.Before(loads[1].Date) {
		t.Errorf("loads not sorted oldest first: %v, %v", loads[0].Date, loads[1].Date)
	}

	wantDay1 := TRIMP(runs[1], zones) + TRIMP(runs[2], zones)
	if math.Abs(loads[0].TRIMP-wantDay1) > 0.01 {
		t.Errorf("day 1 TRIMP = %v, want %v", loads[0].TRIMP, wantDay1)
	}
}

func TestWeeklyLoads(t *testing.T) {
	now := time.Date(2026, 3, 18, 12, 0, 0, 0, time.UTC) // a Wednesday

	loads := []DailyLoad{
		{Date: time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC), TRIMP: 50}, // this week (Mon)
		{Date: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), TRIMP: 40}, // last week
		{Date: time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC), TRIMP: 30},  // Sunday, two weeks back
		{Date: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), TRIMP: 99}, // outside window
	}

	totals := WeeklyLoads(loads, 4, now)

	want := []float64{0, 30, 40, 50}
	if len(totals) != len(want) {
		t.Fatalf("len(totals) = %d, want %d", len(totals), len(want))
	}
	for i := range want {
		if math.Abs(totals[i]-want[i]) > 0.01 {
			t.Errorf("week %d total = %v, want %v", i, totals[i], want[i])
		}
	}
}

func TestWeekStart(t *testing.T) {
	ekb := time.FixedZone("UTC+5", 5*3600)

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			"midweek",
			time.Date(2026, 3, 18, 15, 30, 0, 0, time.UTC),
			time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			"monday stays put",
			time.Date(2026, 3, 16, 6, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			"sunday belongs to previous monday",
			time.Date(2026, 3, 22, 9, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			// early Monday east of Greenwich is still behind UTC's Monday;
			// midnight must be taken in the run's own zone
			"early monday in eastern zone",
			time.Date(2026, 3, 16, 0, 30, 0, 0, ekb),
			time.Date(2026, 3, 16, 0, 0, 0, 0, ekb),
		},
		{
			"late sunday in eastern zone",
			time.Date(2026, 3, 15, 23, 45, 0, 0, ekb),
			time.Date(2026, 3, 9, 0, 0, 0, 0, ekb),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeekStart(tt.in); !got.Equal(tt.want) {
				t.Errorf("WeekStart() = %v, want %v", got, tt.want)
			}
		})
	}
}
