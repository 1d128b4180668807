package store

import "time"

// Auth represents OAuth tokens for platform API access
type Auth struct {
	UserID       string    `db:"user_id"`
	AccessToken  string    `db:"access_token"`
	RefreshToken string    `db:"refresh_token"`
	ExpiresAt    time.Time `db:"expires_at"`
}

// Profile represents a user's physiology profile.
// Optional fields are pointers: nil means the user never supplied the value,
// in which case the estimator may have filled a derived one and set the
// corresponding estimated flag.
type Profile struct {
	UserID                 string     `db:"user_id"`
	RestingHeartRate       *float64   `db:"resting_heart_rate"` // bpm
	MaxHeartRate           *float64   `db:"max_heart_rate"`     // bpm
	BodyWeightKg           *float64   `db:"body_weight_kg"`
	HeightCm               *float64   `db:"height_cm"`
	Age                    *int       `db:"age"`
	Gender                 *string    `db:"gender"`
	FitnessLevel           *string    `db:"fitness_level"` // beginner, intermediate, advanced, elite
	RunningExperienceYears *float64   `db:"running_experience_years"`
	WeeklyMileageKm        *float64   `db:"weekly_mileage_km"`
	MaxHREstimated         bool       `db:"max_hr_estimated"`
	RestingHREstimated     bool       `db:"resting_hr_estimated"`
	EstimationMethod       string     `db:"estimation_method"` // user-input, age-based, observed-max, default, fitness-level
	LastUpdated            time.Time  `db:"last_updated"`
	DataFreshness          string     `db:"data_freshness"` // fresh, aging, stale
	DataQuality            string     `db:"data_quality"`   // high, medium, low
	ValidationErrors       []string   `db:"validation_errors"` // stored as JSON
	NextUpdateReminder     *time.Time `db:"next_update_reminder"`
	CreatedAt              time.Time  `db:"created_at"`
	UpdatedAt              time.Time  `db:"updated_at"`
}

// Activity represents a synced activity summary
type Activity struct {
	ID                 int64     `db:"id"`
	UserID             string    `db:"user_id"`
	Name               string    `db:"name"`
	Type               string    `db:"type"`
	StartDate          time.Time `db:"start_date"`
	Distance           float64   `db:"distance"`             // meters
	MovingTime         int       `db:"moving_time"`          // seconds
	ElapsedTime        int       `db:"elapsed_time"`         // seconds
	TotalElevationGain float64   `db:"total_elevation_gain"` // meters
	AverageHeartrate   *float64  `db:"average_heartrate"`    // nullable
	MaxHeartrate       *float64  `db:"max_heartrate"`        // nullable
	HasHeartrate       bool      `db:"has_heartrate"`
}
