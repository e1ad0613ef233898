package usecase

const (
	// RecentTransactionsLimit is the default size of the dashboard's
	// recent-activity feed.
	RecentTransactionsLimit = 5

	// MaxPageSize caps any client-supplied page size.
	MaxPageSize = 100

	// DefaultPageSize is used when a list request omits a page size.
	DefaultPageSize = 20

	// AnalysisWindowMonths is the trailing window used for budget
	// planning averages.
	AnalysisWindowMonths = 3

	// ForecastHistoryDays is the lookback used to derive the historical
	// daily spending rate for forecasts.
	ForecastHistoryDays = 90

	// DefaultTargetSavingsRate is the savings-rate percentage assumed
	// when the user has not set a budget goal.
	DefaultTargetSavingsRate = 20
)
