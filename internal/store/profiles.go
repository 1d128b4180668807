package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrNoProfile is returned when no profile is stored for a user
var ErrNoProfile = errors.New("no profile stored")

// UpsertProfile inserts or updates a physiology profile
func (db *DB) UpsertProfile(p *Profile) error {
	validationErrors, err := json.Marshal(p.ValidationErrors)
	if err != nil {
		return fmt.Errorf("encoding validation errors: %w", err)
	}

	var reminder interface{}
	if p.NextUpdateReminder != nil {
		reminder = p.NextUpdateReminder.Format(time.RFC3339)
	}

	_, err = db.Exec(`
		INSERT INTO profiles (
			user_id, resting_heart_rate, max_heart_rate, body_weight_kg, height_cm,
			age, gender, fitness_level, running_experience_years, weekly_mileage_km,
			max_hr_estimated, resting_hr_estimated, estimation_method, last_updated,
			data_freshness, data_quality, validation_errors, next_update_reminder, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(user_id) DO UPDATE SET
			resting_heart_rate = excluded.resting_heart_rate,
			max_heart_rate = excluded.max_heart_rate,
			body_weight_kg = excluded.body_weight_kg,
			height_cm = excluded.height_cm,
			age = excluded.age,
			gender = excluded.gender,
			fitness_level = excluded.fitness_level,
			running_experience_years = excluded.running_experience_years,
			weekly_mileage_km = excluded.weekly_mileage_km,
			max_hr_estimated = excluded.max_hr_estimated,
			resting_hr_estimated = excluded.resting_hr_estimated,
			estimation_method = excluded.estimation_method,
			last_updated = excluded.last_updated,
			data_freshness = excluded.data_freshness,
			data_quality = excluded.data_quality,
			validation_errors = excluded.validation_errors,
			next_update_reminder = excluded.next_update_reminder,
			updated_at = CURRENT_TIMESTAMP
	`,
		p.UserID, p.RestingHeartRate, p.MaxHeartRate, p.BodyWeightKg, p.HeightCm,
		p.Age, p.Gender, p.FitnessLevel, p.RunningExperienceYears, p.WeeklyMileageKm,
		boolToInt(p.MaxHREstimated), boolToInt(p.RestingHREstimated), p.EstimationMethod,
		p.LastUpdated.Format(time.RFC3339), p.DataFreshness, p.DataQuality,
		string(validationErrors), reminder,
	)
	return err
}

// GetProfile retrieves the profile for a user
func (db *DB) GetProfile(userID string) (*Profile, error) {
	row := db.QueryRow(`
		SELECT user_id, resting_heart_rate, max_heart_rate, body_weight_kg, height_cm,
			age, gender, fitness_level, running_experience_years, weekly_mileage_km,
			max_hr_estimated, resting_hr_estimated, estimation_method, last_updated,
			data_freshness, data_quality, validation_errors, next_update_reminder,
			created_at, updated_at
		FROM profiles
		WHERE user_id = ?
	`, userID)

	return scanProfile(row)
}

// scanProfile scans a single profile from a row
func scanProfile(row *sql.Row) (*Profile, error) {
	var p Profile
	var maxHREst, restingHREst int
	var lastUpdated, validationErrors, createdAt, updatedAt string
	var reminder *string

	err := row.Scan(
		&p.UserID, &p.RestingHeartRate, &p.MaxHeartRate, &p.BodyWeightKg, &p.HeightCm,
		&p.Age, &p.Gender, &p.FitnessLevel, &p.RunningExperienceYears, &p.WeeklyMileageKm,
		&maxHREst, &restingHREst, &p.EstimationMethod, &lastUpdated,
		&p.DataFreshness, &p.DataQuality, &validationErrors, &reminder,
		&createdAt, &updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoProfile
	}
	if err != nil {
		return nil, err
	}

	p.MaxHREstimated = maxHREst != 0
	p.RestingHREstimated = restingHREst != 0

	p.LastUpdated, err = time.Parse(time.RFC3339, lastUpdated)
	if err != nil {
		return nil, fmt.Errorf("parsing last_updated: %w", err)
	}
	if reminder != nil {
		t, err := time.Parse(time.RFC3339, *reminder)
		if err != nil {
			return nil, fmt.Errorf("parsing next_update_reminder: %w", err)
		}
		p.NextUpdateReminder = &t
	}
	if err := json.Unmarshal([]byte(validationErrors), &p.ValidationErrors); err != nil {
		return nil, fmt.Errorf("decoding validation errors: %w", err)
	}

	// created_at/updated_at use SQLite's CURRENT_TIMESTAMP format
	p.CreatedAt, _ = time.Parse("2006-01-02 15:04:05", createdAt)
	p.UpdatedAt, _ = time.Parse("2006-01-02 15:04:05", updatedAt)

	return &p, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
