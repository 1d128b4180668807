package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"zonecoach/internal/analysis"
	"zonecoach/internal/profileapi"
	"zonecoach/internal/store"
)

// ProfileService orchestrates profile reads and writes: it merges patches
// through the analysis engine, persists accepted profiles locally, and keeps
// the remote platform copy in step.
type ProfileService struct {
	store  *store.DB
	client *profileapi.Client // nil when running offline
	userID string
	params analysis.Params
}

// NewProfileService creates a new profile service
func NewProfileService(db *store.DB, client *profileapi.Client, userID string) *ProfileService {
	return &ProfileService{
		store:  db,
		client: client,
		userID: userID,
		params: analysis.DefaultParams(),
	}
}

// Get returns the locally stored profile, or store.ErrNoProfile when the
// athlete has never saved one
func (s *ProfileService) Get() (*store.Profile, error) {
	return s.store.GetProfile(s.userID)
}

// Update applies a partial update through the engine. The merged profile is
// persisted and pushed to the platform only when validation passes; the
// result carries the validation errors otherwise.
func (s *ProfileService) Update(ctx context.Context, patch analysis.ProfilePatch) (analysis.ProfileResult, error) {
	existing, err := s.store.GetProfile(s.userID)
	if err != nil && !errors.Is(err, store.ErrNoProfile) {
		return analysis.ProfileResult{}, fmt.Errorf("loading profile: %w", err)
	}

	activities, err := s.store.ListActivities(HistoricalActivitiesLimit, 0)
	if err != nil {
		return analysis.ProfileResult{}, fmt.Errorf("loading activities: %w", err)
	}

	result := analysis.BuildProfile(s.userID, patch, existing, activities, time.Now(), s.params)
	if !result.Success {
		return result, nil
	}

	if err := s.store.UpsertProfile(result.Profile); err != nil {
		return result, fmt.Errorf("saving profile: %w", err)
	}

	if s.client != nil {
		if err := s.client.UpdateProfile(ctx, s.userID, toAPIProfile(result.Profile)); err != nil {
			// Local copy is authoritative; remote push failures are reported
			// but don't undo the update
			return result, fmt.Errorf("pushing profile to platform: %w", err)
		}
	}

	return result, nil
}

// Pull fetches the remote profile and merges it into the local store through
// the engine. A missing remote profile is not an error; the local state is
// simply left alone.
func (s *ProfileService) Pull(ctx context.Context) error {
	if s.client == nil {
		return nil
	}

	remote, err := s.client.GetProfile(ctx, s.userID)
	if errors.Is(err, profileapi.ErrProfileNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("fetching remote profile: %w", err)
	}

	existing, err := s.store.GetProfile(s.userID)
	if err != nil && !errors.Is(err, store.ErrNoProfile) {
		return fmt.Errorf("loading profile: %w", err)
	}

	activities, err := s.store.ListActivities(HistoricalActivitiesLimit, 0)
	if err != nil {
		return fmt.Errorf("loading activities: %w", err)
	}

	result := analysis.BuildProfile(s.userID, fromAPIProfile(remote), existing, activities, time.Now(), s.params)
	if !result.Success {
		return fmt.Errorf("remote profile failed validation: %v", result.Profile.ValidationErrors)
	}

	if err := s.store.UpsertProfile(result.Profile); err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	return nil
}

// Freshness reports how stale the stored profile is
func (s *ProfileService) Freshness() (analysis.FreshnessResult, error) {
	profile, err := s.store.GetProfile(s.userID)
	if err != nil {
		return analysis.FreshnessResult{}, err
	}
	return analysis.CheckDataFreshness(profile, time.Now(), s.params), nil
}

// Prompts returns the completeness prompts for the stored profile. A missing
// profile prompts for everything.
func (s *ProfileService) Prompts() (analysis.UpdatePromptSet, error) {
	profile, err := s.store.GetProfile(s.userID)
	if errors.Is(err, store.ErrNoProfile) {
		profile = &store.Profile{UserID: s.userID}
		err = nil
	}
	if err != nil {
		return analysis.UpdatePromptSet{}, err
	}
	return analysis.GenerateUpdatePrompts(profile, s.params), nil
}

// toAPIProfile converts a stored profile into the platform's wire shape.
// Estimated values are not pushed; the platform only holds what the athlete
// actually told us.
func toAPIProfile(p *store.Profile) *profileapi.Profile {
	api := &profileapi.Profile{
		UserID:                 p.UserID,
		BodyWeightKg:           p.BodyWeightKg,
		HeightCm:               p.HeightCm,
		Age:                    p.Age,
		Gender:                 p.Gender,
		FitnessLevel:           p.FitnessLevel,
		RunningExperienceYears: p.RunningExperienceYears,
		WeeklyMileageKm:        p.WeeklyMileageKm,
	}
	if !p.MaxHREstimated {
		api.MaxHeartRate = p.MaxHeartRate
	}
	if !p.RestingHREstimated {
		api.RestingHeartRate = p.RestingHeartRate
	}
	return api
}

// fromAPIProfile converts a platform profile into an engine patch
func fromAPIProfile(p *profileapi.Profile) analysis.ProfilePatch {
	return analysis.ProfilePatch{
		RestingHeartRate:       p.RestingHeartRate,
		MaxHeartRate:           p.MaxHeartRate,
		BodyWeightKg:           p.BodyWeightKg,
		HeightCm:               p.HeightCm,
		Age:                    p.Age,
		Gender:                 p.Gender,
		FitnessLevel:           p.FitnessLevel,
		RunningExperienceYears: p.RunningExperienceYears,
		WeeklyMileageKm:        p.WeeklyMileageKm,
	}
}
