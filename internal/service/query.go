package service

import (
	"errors"
	"time"

	"zonecoach/internal/analysis"
	"zonecoach/internal/store"
)

// QueryService provides read-only queries for the TUI
type QueryService struct {
	store  *store.DB
	userID string
	params analysis.Params
}

// NewQueryService creates a new query service
func NewQueryService(db *store.DB, userID string) *QueryService {
	return &QueryService{
		store:  db,
		userID: userID,
		params: analysis.DefaultParams(),
	}
}

// DashboardData contains all data needed for the dashboard
type DashboardData struct {
	Zones        analysis.TrainingZones
	Distribution analysis.ZoneDistributionAnalysis
	Freshness    analysis.FreshnessResult
	Score        int // profile completeness, 0-100

	// This week
	WeekRunCount int
	WeekDistance float64 // km
	WeekTime     int     // seconds

	// For charts
	WeeklyTRIMP  []float64 // last 12 weeks, oldest first
	WeeklyLabels []string
}

// GetDashboardData assembles everything the dashboard screen shows
func (q *QueryService) GetDashboardData() (*DashboardData, error) {
	now := time.Now()

	profile, err := q.store.GetProfile(q.userID)
	if errors.Is(err, store.ErrNoProfile) {
		profile = nil
	} else if err != nil {
		return nil, err
	}

	runs, err := q.store.ListRunsSince(now.AddDate(0, 0, -DistributionWindowDays))
	if err != nil {
		return nil, err
	}

	data := &DashboardData{}
	data.Zones = analysis.CalculateTrainingZones(runs, profile, q.params)
	data.Distribution = analysis.AnalyzeZoneDistribution(runs, data.Zones, q.params)
	data.Score = analysis.GenerateUpdatePrompts(orBlank(profile, q.userID), q.params).OverallScore
	if profile != nil {
		data.Freshness = analysis.CheckDataFreshness(profile, now, q.params)
	}

	weekStart := analysis.WeekStart(now)
	for _, r := range runs {
		if !r.StartDate.Before(weekStart) {
			data.WeekRunCount++
			data.WeekDistance += r.Distance / MetersPerKm
			data.WeekTime += r.MovingTime
		}
	}

	data.WeeklyTRIMP, data.WeeklyLabels = q.buildWeeklyTRIMP(now, profile)

	return data, nil
}

// buildWeeklyTRIMP builds the 12-week training load chart data
func (q *QueryService) buildWeeklyTRIMP(now time.Time, profile *store.Profile) ([]float64, []string) {
	labels := make([]string, ChartWeeks)
	currentWeekStart := analysis.WeekStart(now)
	for i := 0; i < ChartWeeks; i++ {
		weekStart := currentWeekStart.AddDate(0, 0, -7*(ChartWeeks-1-i))
		labels[i] = weekStart.Format("Jan 02")
	}

	since := currentWeekStart.AddDate(0, 0, -7*(ChartWeeks-1))
	runs, err := q.store.ListRunsSince(since)
	if err != nil {
		return make([]float64, ChartWeeks), labels
	}

	zones := analysis.ZonesFromProfile(profile)
	loads := analysis.DailyLoads(runs, zones)
	return analysis.WeeklyLoads(loads, ChartWeeks, now), labels
}

// ZonesData contains everything the zones screen shows
type ZonesData struct {
	Zones       analysis.TrainingZones
	Limits      analysis.HRZones
	Estimated   bool // true when either HR limit came from the estimator
	Profile     *store.Profile
	Disclaimers []string
}

// GetZonesData returns the training zones with their provenance
func (q *QueryService) GetZonesData() (*ZonesData, error) {
	profile, err := q.store.GetProfile(q.userID)
	if errors.Is(err, store.ErrNoProfile) {
		profile = nil
	} else if err != nil {
		return nil, err
	}

	runs, err := q.store.ListRunsSince(time.Now().AddDate(0, 0, -DistributionWindowDays))
	if err != nil {
		return nil, err
	}

	data := &ZonesData{
		Zones:   analysis.CalculateTrainingZones(runs, profile, q.params),
		Limits:  analysis.ZonesFromProfile(profile),
		Profile: profile,
	}
	if profile == nil || profile.MaxHREstimated || profile.RestingHREstimated {
		data.Estimated = true
		est := analysis.EstimatePhysiology(orBlank(profile, q.userID), runs)
		data.Disclaimers = est.Disclaimers
	}
	return data, nil
}

// ProfileData contains everything the profile screen shows
type ProfileData struct {
	Profile   *store.Profile // nil when never saved
	Prompts   analysis.UpdatePromptSet
	Freshness analysis.FreshnessResult
}

// GetProfileData returns the profile with its prompts and freshness state
func (q *QueryService) GetProfileData() (*ProfileData, error) {
	profile, err := q.store.GetProfile(q.userID)
	if errors.Is(err, store.ErrNoProfile) {
		profile = nil
	} else if err != nil {
		return nil, err
	}

	data := &ProfileData{
		Profile: profile,
		Prompts: analysis.GenerateUpdatePrompts(orBlank(profile, q.userID), q.params),
	}
	if profile != nil {
		data.Freshness = analysis.CheckDataFreshness(profile, time.Now(), q.params)
	}
	return data, nil
}

// ActivityRow combines an activity with its derived per-run numbers
type ActivityRow struct {
	Activity store.Activity
	PaceSec  float64 // seconds per km, 0 when distance is missing
	Power    analysis.PowerEstimate
}

// GetActivitiesList returns paginated activities with pace and power
func (q *QueryService) GetActivitiesList(limit, offset int) ([]ActivityRow, error) {
	activities, err := q.store.ListActivities(limit, offset)
	if err != nil {
		return nil, err
	}

	var weight float64
	profile, err := q.store.GetProfile(q.userID)
	if err == nil && profile.BodyWeightKg != nil {
		weight = *profile.BodyWeightKg
	}

	rows := make([]ActivityRow, len(activities))
	for i, a := range activities {
		row := ActivityRow{Activity: a}
		if a.Distance > 0 && a.MovingTime > 0 {
			row.PaceSec = float64(a.MovingTime) / (a.Distance / MetersPerKm)
		}
		if weight > 0 {
			row.Power = analysis.EstimateRunningPower(a, weight, q.params)
		}
		rows[i] = row
	}
	return rows, nil
}

// GetTotalActivityCount returns the total number of activities
func (q *QueryService) GetTotalActivityCount() (int, error) {
	return q.store.CountActivities()
}

// orBlank substitutes an empty profile so prompt and estimate calls never see
// a nil pointer
func orBlank(p *store.Profile, userID string) *store.Profile {
	if p != nil {
		return p
	}
	return &store.Profile{UserID: userID}
}
