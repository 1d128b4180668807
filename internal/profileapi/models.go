package profileapi

import "time"

// Profile represents an athlete profile as returned by the RunBeacon API.
// Pointer fields are omitted by the platform when the athlete never set them.
type Profile struct {
	UserID                 string     `json:"user_id"`
	RestingHeartRate       *float64   `json:"resting_heart_rate,omitempty"`
	MaxHeartRate           *float64   `json:"max_heart_rate,omitempty"`
	BodyWeightKg           *float64   `json:"body_weight_kg,omitempty"`
	HeightCm               *float64   `json:"height_cm,omitempty"`
	Age                    *int       `json:"age,omitempty"`
	Gender                 *string    `json:"gender,omitempty"`
	FitnessLevel           *string    `json:"fitness_level,omitempty"`
	RunningExperienceYears *float64   `json:"running_experience_years,omitempty"`
	WeeklyMileageKm        *float64   `json:"weekly_mileage_km,omitempty"`
	UpdatedAt              *time.Time `json:"updated_at,omitempty"`
}

// Activity represents an activity summary from the RunBeacon feed
type Activity struct {
	ID                 int64     `json:"id"`
	UserID             string    `json:"user_id"`
	Name               string    `json:"name"`
	Type               string    `json:"type"`
	StartDate          time.Time `json:"start_date"`
	Distance           float64   `json:"distance"`             // meters
	MovingTime         int       `json:"moving_time"`          // seconds
	ElapsedTime        int       `json:"elapsed_time"`         // seconds
	TotalElevationGain float64   `json:"total_elevation_gain"` // meters
	AverageHeartrate   float64   `json:"average_heartrate"`    // bpm, 0 when absent
	MaxHeartrate       float64   `json:"max_heartrate"`        // bpm, 0 when absent
	HasHeartrate       bool      `json:"has_heartrate"`
}
