package service

const (
	// Unit conversions
	MetersPerKm = 1000.0

	// Time windows
	DistributionWindowDays = 90
	ChartWeeks             = 12

	// HistoricalActivitiesLimit bounds how many activities feed profile
	// estimation
	HistoricalActivitiesLimit = 200
)
