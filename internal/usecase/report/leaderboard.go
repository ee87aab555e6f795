package report

import (
	"context"

	domain "github.com/BruksfildServices01/valet-reports/internal/domain/report"
)

type LeaderboardResult struct {
	Sort       domain.SortColumn       `json:"sort"`
	Order      domain.SortOrder        `json:"order"`
	LocationID *uint                   `json:"location_id"`
	Rows       []domain.LeaderboardRow `json:"rows"`
}

type Leaderboard struct {
	repo domain.Repository
}

func NewLeaderboard(repo domain.Repository) *Leaderboard {
	return &Leaderboard{repo: repo}
}

// Execute ranks valets. Unknown sort or order values fall back to the
// defaults and the effective choice is returned with the rows.
func (uc *Leaderboard) Execute(ctx context.Context, sort, order string, locationID *uint) (*LeaderboardResult, error) {
	q := domain.NewLeaderboardQuery(sort, order, locationID)

	rows, err := uc.repo.Leaderboard(ctx, q)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []domain.LeaderboardRow{}
	}

	return &LeaderboardResult{
		Sort:       q.Sort,
		Order:      q.Order,
		LocationID: locationID,
		Rows:       rows,
	}, nil
}
