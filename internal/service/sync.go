package service

import (
	"context"
	"fmt"
	"time"

	"zonecoach/internal/config"
	"zonecoach/internal/profileapi"
	"zonecoach/internal/store"
)

// SyncService orchestrates pulling data from the RunBeacon platform
type SyncService struct {
	client       *profileapi.Client
	store        *store.DB
	profiles     *ProfileService
	pageSize     int
	lookbackDays int
}

// NewSyncService creates a new sync service
func NewSyncService(client *profileapi.Client, db *store.DB, profiles *ProfileService, cfg config.SyncConfig) *SyncService {
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 100
	}
	return &SyncService{
		client:       client,
		store:        db,
		profiles:     profiles,
		pageSize:     pageSize,
		lookbackDays: cfg.LookbackDays,
	}
}

// SyncProgress reports progress during sync
type SyncProgress struct {
	Phase     string // "activities", "profile"
	Total     int
	Completed int
	Error     error
}

// SyncResult contains the results of a sync operation
type SyncResult struct {
	ActivitiesFetched int
	ActivitiesStored  int
	RunsWithHR        int
	ProfileSynced     bool
	Errors            []error
}

// SyncAll performs a full sync: activity feed, then the remote profile
func (s *SyncService) SyncAll(ctx context.Context, progress chan<- SyncProgress) (*SyncResult, error) {
	if progress != nil {
		defer close(progress)
	}

	result := &SyncResult{}

	if err := s.syncActivities(ctx, progress, result); err != nil {
		return result, fmt.Errorf("syncing activities: %w", err)
	}

	if err := s.syncProfile(ctx, progress, result); err != nil {
		// Profile sync failures shouldn't discard freshly stored activities
		result.Errors = append(result.Errors, fmt.Errorf("syncing profile: %w", err))
	}

	return result, nil
}

// syncActivities fetches the activity feed incrementally and stores runs
func (s *SyncService) syncActivities(ctx context.Context, progress chan<- SyncProgress, result *SyncResult) error {
	// Get last sync time
	lastSyncStr, _ := s.store.GetSyncState("last_activity_sync")
	var after time.Time
	if lastSyncStr != "" {
		after, _ = time.Parse(time.RFC3339, lastSyncStr)
	} else if s.lookbackDays > 0 {
		// First sync: bound how far back we fetch
		after = time.Now().AddDate(0, 0, -s.lookbackDays)
	}

	if progress != nil {
		progress <- SyncProgress{Phase: "activities"}
	}

	page := 1

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		activities, err := s.client.GetActivities(ctx, after, page, s.pageSize)
		if err != nil {
			return fmt.Errorf("fetching page %d: %w", page, err)
		}

		if len(activities) == 0 {
			break
		}

		result.ActivitiesFetched += len(activities)

		for _, a := range activities {
			if a.Type != "Run" {
				continue
			}
			if err := s.store.UpsertActivity(convertActivity(a)); err != nil {
				result.Errors = append(result.Errors, fmt.Errorf("storing activity %d: %w", a.ID, err))
				continue
			}
			result.ActivitiesStored++
			if a.HasHeartrate {
				result.RunsWithHR++
			}
		}

		if progress != nil {
			progress <- SyncProgress{
				Phase:     "activities",
				Total:     result.ActivitiesFetched,
				Completed: result.ActivitiesStored,
			}
		}

		if len(activities) < s.pageSize {
			break // Last page
		}

		page++
	}

	// Update last sync time
	s.store.SetSyncState("last_activity_sync", time.Now().Format(time.RFC3339))

	return nil
}

// syncProfile pulls the remote profile through the profile service so the
// merge and validation rules apply to platform data too
func (s *SyncService) syncProfile(ctx context.Context, progress chan<- SyncProgress, result *SyncResult) error {
	if s.profiles == nil {
		return nil
	}

	if progress != nil {
		progress <- SyncProgress{Phase: "profile"}
	}

	if err := s.profiles.Pull(ctx); err != nil {
		return err
	}

	result.ProfileSynced = true
	if progress != nil {
		progress <- SyncProgress{Phase: "profile", Total: 1, Completed: 1}
	}
	return nil
}

// RateLimitStatus returns the current rate limit status from the client
func (s *SyncService) RateLimitStatus() (shortRemaining, dailyRemaining int) {
	return s.client.RateLimitStatus()
}

// convertActivity converts a platform API activity to a store activity
func convertActivity(a profileapi.Activity) *store.Activity {
	activity := &store.Activity{
		ID:                 a.ID,
		UserID:             a.UserID,
		Name:               a.Name,
		Type:               a.Type,
		StartDate:          a.StartDate,
		Distance:           a.Distance,
		MovingTime:         a.MovingTime,
		ElapsedTime:        a.ElapsedTime,
		TotalElevationGain: a.TotalElevationGain,
		HasHeartrate:       a.HasHeartrate,
	}

	if a.AverageHeartrate > 0 {
		activity.AverageHeartrate = &a.AverageHeartrate
	}
	if a.MaxHeartrate > 0 {
		activity.MaxHeartrate = &a.MaxHeartrate
	}

	return activity
}
