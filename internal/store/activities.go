package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrActivityNotFound is returned when an activity doesn't exist
var ErrActivityNotFound = errors.New("activity not found")

// UpsertActivity inserts or updates an activity
func (db *DB) UpsertActivity(a *Activity) error {
	_, err := db.Exec(`
		INSERT INTO activities (
			id, user_id, name, type, start_date, distance, moving_time,
			elapsed_time, total_elevation_gain, average_heartrate, max_heartrate,
			has_heartrate, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			user_id = excluded.user_id,
			name = excluded.name,
			type = excluded.type,
			start_date = excluded.start_date,
			distance = excluded.distance,
			moving_time = excluded.moving_time,
			elapsed_time = excluded.elapsed_time,
			total_elevation_gain = excluded.total_elevation_gain,
			average_heartrate = excluded.average_heartrate,
			max_heartrate = excluded.max_heartrate,
			has_heartrate = excluded.has_heartrate,
			updated_at = CURRENT_TIMESTAMP
	`,
		a.ID, a.UserID, a.Name, a.Type, a.StartDate.Format(time.RFC3339),
		a.Distance, a.MovingTime, a.ElapsedTime, a.TotalElevationGain,
		a.AverageHeartrate, a.MaxHeartrate, boolToInt(a.HasHeartrate),
	)
	return err
}

// GetActivity retrieves an activity by ID
func (db *DB) GetActivity(id int64) (*Activity, error) {
	row := db.QueryRow(`
		SELECT id, user_id, name, type, start_date, distance, moving_time,
			elapsed_time, total_elevation_gain, average_heartrate, max_heartrate,
			has_heartrate
		FROM activities
		WHERE id = ?
	`, id)

	a, err := scanActivity(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrActivityNotFound
	}
	return a, err
}

// ListActivities returns activities ordered by start date descending
func (db *DB) ListActivities(limit, offset int) ([]Activity, error) {
	rows, err := db.Query(`
		SELECT id, user_id, name, type, start_date, distance, moving_time,
			elapsed_time, total_elevation_gain, average_heartrate, max_heartrate,
			has_heartrate
		FROM activities
		ORDER BY start_date DESC
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanActivities(rows)
}

// ListRunsSince returns runs started on or after the given time,
// ordered by start date descending
func (db *DB) ListRunsSince(since time.Time) ([]Activity, error) {
	rows, err := db.Query(`
		SELECT id, user_id, name, type, start_date, distance, moving_time,
			elapsed_time, total_elevation_gain, average_heartrate, max_heartrate,
			has_heartrate
		FROM activities
		WHERE type = 'Run' AND start_date >= ?
		ORDER BY start_date DESC
	`, since.Format(time.RFC3339))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanActivities(rows)
}

// CountActivities returns the total number of activities
func (db *DB) CountActivities() (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM activities`).Scan(&count)
	return count, err
}

// scanner abstracts sql.Row and sql.Rows for scanning
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanActivity scans a single activity
func scanActivity(s scanner) (*Activity, error) {
	var a Activity
	var startDate string
	var hasHR int

	err := s.Scan(
		&a.ID, &a.UserID, &a.Name, &a.Type, &startDate, &a.Distance,
		&a.MovingTime, &a.ElapsedTime, &a.TotalElevationGain,
		&a.AverageHeartrate, &a.MaxHeartrate, &hasHR,
	)
	if err != nil {
		return nil, err
	}

	a.StartDate, err = time.Parse(time.RFC3339, startDate)
	if err != nil {
		return nil, fmt.Errorf("parsing start_date: %w", err)
	}
	a.HasHeartrate = hasHR != 0

	return &a, nil
}

// scanActivities scans multiple activities from rows
func scanActivities(rows *sql.Rows) ([]Activity, error) {
	var activities []Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, *a)
	}
	return activities, rows.Err()
}
