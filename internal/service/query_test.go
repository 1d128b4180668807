package service

import (
	"context"
	"math"
	"testing"
	"time"

	"zonecoach/internal/analysis"
	"zonecoach/internal/store"
)

func seedRun(t *testing.T, db *store.DB, id int64, start time.Time, distance float64, movingTime int, avgHR float64) {
	t.Helper()
	a := &store.Activity{
		ID:         id,
		UserID:     "athlete-1",
		Name:       "Run",
		Type:       "Run",
		StartDate:  start,
		Distance:   distance,
		MovingTime: movingTime,
	}
	if avgHR > 0 {
		a.AverageHeartrate = &avgHR
		a.HasHeartrate = true
	}
	if err := db.UpsertActivity(a); err != nil {
		t.Fatalf("seeding activity %d: %v", id, err)
	}
}

func TestGetDashboardData(t *testing.T) {
	db := setupTestDB(t)
	profiles := NewProfileService(db, nil, "athlete-1")
	if _, err := profiles.Update(context.Background(), analysis.ProfilePatch{
		MaxHeartRate:     floatPtr(190),
		RestingHeartRate: floatPtr(50),
		BodyWeightKg:     floatPtr(70),
		HeightCm:         floatPtr(178),
		Age:              intPtr(35),
		FitnessLevel:     strPtr("intermediate"),
		WeeklyMileageKm:  floatPtr(40),
	}); err != nil {
		t.Fatalf("seeding profile: %v", err)
	}

	now := time.Now()
	seedRun(t, db, 1, now.AddDate(0, 0, -1), 8000, 2400, 130)
	seedRun(t, db, 2, now.AddDate(0, 0, -3), 12000, 4000, 145)
	seedRun(t, db, 3, now.AddDate(0, 0, -200), 10000, 3000, 150) // outside window

	q := NewQueryService(db, "athlete-1")
	data, err := q.GetDashboardData()
	if err != nil {
		t.Fatalf("GetDashboardData() error: %v", err)
	}

	if len(data.Zones.HeartRate) != 5 {
		t.Errorf("len(Zones.HeartRate) = %d, want 5", len(data.Zones.HeartRate))
	}
	if data.Score != 100 {
		t.Errorf("Score = %d, want 100 for a complete profile", data.Score)
	}
	if data.Freshness.IsStale {
		t.Error("Freshness.IsStale = true right after saving")
	}

	var sum float64
	for _, zt := range data.Distribution.CurrentDistribution {
		sum += zt.Percentage
	}
	if math.Abs(sum-100) > 0.01 {
		t.Errorf("distribution percentages sum to %v, want 100", sum)
	}

	if len(data.WeeklyTRIMP) != ChartWeeks {
		t.Errorf("len(WeeklyTRIMP) = %d, want %d", len(data.WeeklyTRIMP), ChartWeeks)
	}
	var totalLoad float64
	for _, v := range data.WeeklyTRIMP {
		totalLoad += v
	}
	if totalLoad <= 0 {
		t.Error("WeeklyTRIMP should carry load from the seeded runs")
	}
}

func TestGetDashboardDataNoProfile(t *testing.T) {
	db := setupTestDB(t)
	q := NewQueryService(db, "athlete-1")

	data, err := q.GetDashboardData()
	if err != nil {
		t.Fatalf("GetDashboardData() error: %v", err)
	}

	// Defaults kick in: zones still computed, score reflects the empty profile
	if len(data.Zones.HeartRate) != 5 {
		t.Errorf("len(Zones.HeartRate) = %d, want 5", len(data.Zones.HeartRate))
	}
	if data.Score >= 60 {
		t.Errorf("Score = %d, want below 60 with no profile", data.Score)
	}
}

func TestGetZonesDataEstimatedDisclaimer(t *testing.T) {
	db := setupTestDB(t)
	q := NewQueryService(db, "athlete-1")

	data, err := q.GetZonesData()
	if err != nil {
		t.Fatalf("GetZonesData() error: %v", err)
	}
	if !data.Estimated {
		t.Error("Estimated = false, want true with no profile")
	}
	if len(data.Disclaimers) == 0 {
		t.Error("expected disclaimers for estimated limits")
	}
	if data.Limits.MaxHR != 185 || data.Limits.RestingHR != 60 {
		t.Errorf("Limits = %+v, want defaults 185/60", data.Limits)
	}
}

func TestGetActivitiesList(t *testing.T) {
	db := setupTestDB(t)
	profiles := NewProfileService(db, nil, "athlete-1")
	if _, err := profiles.Update(context.Background(), analysis.ProfilePatch{
		BodyWeightKg: floatPtr(70),
	}); err != nil {
		t.Fatalf("seeding profile: %v", err)
	}

	now := time.Now()
	seedRun(t, db, 1, now.AddDate(0, 0, -1), 10000, 3000, 140)
	seedRun(t, db, 2, now.AddDate(0, 0, -2), 0, 1800, 0) // treadmill, no distance

	q := NewQueryService(db, "athlete-1")
	rows, err := q.GetActivitiesList(10, 0)
	if err != nil {
		t.Fatalf("GetActivitiesList() error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}

	// Newest first
	if rows[0].Activity.ID != 2 {
		t.Errorf("rows[0].ID = %d, want 2", rows[0].Activity.ID)
	}
	if rows[0].PaceSec != 0 {
		t.Errorf("PaceSec = %v, want 0 without distance", rows[0].PaceSec)
	}

	if math.Abs(rows[1].PaceSec-300) > 0.01 {
		t.Errorf("PaceSec = %v, want 300 for 10K in 50 minutes", rows[1].PaceSec)
	}
	if rows[1].Power.EstimatedPower <= 0 {
		t.Errorf("Power.EstimatedPower = %v, want positive", rows[1].Power.EstimatedPower)
	}
}
