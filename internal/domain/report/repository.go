package report

import "context"

type Repository interface {
	// -------- Rows --------
	ListRows(
		ctx context.Context,
		order RowOrder,
	) ([]Row, error)

	// -------- Aggregates --------
	Leaderboard(
		ctx context.Context,
		q LeaderboardQuery,
	) ([]LeaderboardRow, error)

	ChartPoints(
		ctx context.Context,
		q ChartQuery,
	) ([]ChartPoint, error)

	// -------- Gallery --------
	ScreenshotRows(
		ctx context.Context,
		locationID *uint,
	) ([]ScreenshotRow, error)
}
