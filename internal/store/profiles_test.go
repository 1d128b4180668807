package store

import (
	"testing"
	"time"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := OpenTest()
	if err != nil {
		t.Fatalf("OpenTest() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func TestProfiles(t *testing.T) {
	db := setupTestDB(t)

	now := time.Now().UTC().Truncate(time.Second)
	reminder := now.AddDate(0, 0, 90)

	t.Run("GetProfile returns ErrNoProfile when empty", func(t *testing.T) {
		_, err := db.GetProfile("athlete-1")
		if err != ErrNoProfile {
			t.Errorf("GetProfile() error = %v, want ErrNoProfile", err)
		}
	})

	t.Run("UpsertProfile inserts new profile", func(t *testing.T) {
		p := &Profile{
			UserID:             "athlete-1",
			RestingHeartRate:   floatPtr(52),
			MaxHeartRate:       floatPtr(188),
			BodyWeightKg:       floatPtr(70),
			Age:                intPtr(34),
			MaxHREstimated:     false,
			RestingHREstimated: false,
			EstimationMethod:   "user-input",
			LastUpdated:        now,
			DataFreshness:      "fresh",
			DataQuality:        "high",
			ValidationErrors:   []string{},
			NextUpdateReminder: &reminder,
		}

		if err := db.UpsertProfile(p); err != nil {
			t.Fatalf("UpsertProfile() error = %v", err)
		}

		got, err := db.GetProfile("athlete-1")
		if err != nil {
			t.Fatalf("GetProfile() error = %v", err)
		}

		if got.MaxHeartRate == nil || *got.MaxHeartRate != 188 {
			t.Errorf("MaxHeartRate = %v, want 188", got.MaxHeartRate)
		}
		if got.Age == nil || *got.Age != 34 {
			t.Errorf("Age = %v, want 34", got.Age)
		}
		if got.HeightCm != nil {
			t.Errorf("HeightCm = %v, want nil", got.HeightCm)
		}
		if !got.LastUpdated.Equal(now) {
			t.Errorf("LastUpdated = %v, want %v", got.LastUpdated, now)
		}
		if got.NextUpdateReminder == nil || !got.NextUpdateReminder.Equal(reminder) {
			t.Errorf("NextUpdateReminder = %v, want %v", got.NextUpdateReminder, reminder)
		}
		if len(got.ValidationErrors) != 0 {
			t.Errorf("ValidationErrors = %v, want empty", got.ValidationErrors)
		}
	})

	t.Run("UpsertProfile updates existing profile", func(t *testing.T) {
		p := &Profile{
			UserID:           "athlete-1",
			MaxHeartRate:     floatPtr(192),
			MaxHREstimated:   true,
			EstimationMethod: "age-based",
			LastUpdated:      now,
			DataFreshness:    "fresh",
			DataQuality:      "low",
			ValidationErrors: []string{"Body weight 300.0 kg is out of range (30-200)"},
		}

		if err := db.UpsertProfile(p); err != nil {
			t.Fatalf("UpsertProfile() error = %v", err)
		}

		got, err := db.GetProfile("athlete-1")
		if err != nil {
			t.Fatalf("GetProfile() error = %v", err)
		}

		if got.MaxHeartRate == nil || *got.MaxHeartRate != 192 {
			t.Errorf("MaxHeartRate = %v, want 192", got.MaxHeartRate)
		}
		if !got.MaxHREstimated {
			t.Error("MaxHREstimated = false, want true")
		}
		if got.DataQuality != "low" {
			t.Errorf("DataQuality = %q, want %q", got.DataQuality, "low")
		}
		if len(got.ValidationErrors) != 1 {
			t.Errorf("ValidationErrors = %v, want 1 entry", got.ValidationErrors)
		}
	})
}

func TestActivities(t *testing.T) {
	db := setupTestDB(t)

	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		a := &Activity{
			ID:                 int64(i + 1),
			UserID:             "athlete-1",
			Name:               "Morning Run",
			Type:               "Run",
			StartDate:          base.AddDate(0, 0, i),
			Distance:           10000,
			MovingTime:         3000,
			ElapsedTime:        3100,
			TotalElevationGain: 80,
			AverageHeartrate:   floatPtr(150),
			MaxHeartrate:       floatPtr(172),
			HasHeartrate:       true,
		}
		if err := db.UpsertActivity(a); err != nil {
			t.Fatalf("UpsertActivity() error = %v", err)
		}
	}

	t.Run("ListActivities orders by start date descending", func(t *testing.T) {
		got, err := db.ListActivities(10, 0)
		if err != nil {
			t.Fatalf("ListActivities() error = %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("len = %d, want 3", len(got))
		}
		if got[0].ID != 3 {
			t.Errorf("first activity ID = %d, want 3", got[0].ID)
		}
	})

	t.Run("ListRunsSince filters by date", func(t *testing.T) {
		got, err := db.ListRunsSince(base.AddDate(0, 0, 1))
		if err != nil {
			t.Fatalf("ListRunsSince() error = %v", err)
		}
		if len(got) != 2 {
			t.Errorf("len = %d, want 2", len(got))
		}
	})

	t.Run("GetActivity returns ErrActivityNotFound for missing ID", func(t *testing.T) {
		_, err := db.GetActivity(999)
		if err != ErrActivityNotFound {
			t.Errorf("GetActivity() error = %v, want ErrActivityNotFound", err)
		}
	})
}
