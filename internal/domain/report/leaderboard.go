package report

import "strings"

type SortColumn string

const (
	SortTotalHours  SortColumn = "total_hours"
	SortTotalOnline SortColumn = "total_online"
	SortTotalCash   SortColumn = "total_cash"
	SortTotalTips   SortColumn = "total_tips"
)

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

var sortColumns = []SortColumn{SortTotalHours, SortTotalOnline, SortTotalCash, SortTotalTips}

// ParseSortColumn maps caller input onto the allow-list. Anything unknown
// becomes total_hours.
func ParseSortColumn(s string) SortColumn {
	for _, c := range sortColumns {
		if string(c) == s {
			return c
		}
	}
	return SortTotalHours
}

// ParseSortOrder maps caller input onto asc/desc, defaulting to desc.
func ParseSortOrder(s string) SortOrder {
	if SortOrder(s) == OrderAsc {
		return OrderAsc
	}
	return OrderDesc
}

type LeaderboardRow struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	TotalHours  float64 `json:"total_hours"`
	TotalOnline float64 `json:"total_online"`
	TotalCash   float64 `json:"total_cash"`
	TotalTips   float64 `json:"total_tips"`
}

type LeaderboardQuery struct {
	Sort       SortColumn
	Order      SortOrder
	LocationID *uint
}

// NewLeaderboardQuery builds a query from raw request values.
func NewLeaderboardQuery(sort, order string, locationID *uint) LeaderboardQuery {
	return LeaderboardQuery{
		Sort:       ParseSortColumn(sort),
		Order:      ParseSortOrder(order),
		LocationID: locationID,
	}
}

const leaderboardSelect = `SELECT u.id, u.name, u.phone,
	COALESCE(SUM(sr.hours), 0) AS total_hours,
	COALESCE(SUM(sr.online_tips), 0) AS total_online,
	COALESCE(SUM(sr.cash_tips), 0) AS total_cash,
	COALESCE(SUM(sr.online_tips), 0) + COALESCE(SUM(sr.cash_tips), 0) AS total_tips
FROM users u
`

const (
	leaderboardJoinAll      = "LEFT JOIN shift_reports sr ON sr.user_id = u.id\n"
	leaderboardJoinLocation = "LEFT JOIN shift_reports sr ON sr.user_id = u.id AND sr.location_id = ?\n"
	leaderboardGroup        = "WHERE u.role = 'valet'\nGROUP BY u.id, u.name, u.phone\n"
)

type leaderboardVariant struct {
	sort       SortColumn
	order      SortOrder
	byLocation bool
}

// leaderboardQueries holds every statement the leaderboard can run. Lookup
// is by typed enum values only.
var leaderboardQueries = buildLeaderboardQueries()

func buildLeaderboardQueries() map[leaderboardVariant]string {
	orderKeyword := map[SortOrder]string{OrderAsc: "ASC", OrderDesc: "DESC"}

	out := map[leaderboardVariant]string{}
	for _, col := range sortColumns {
		for _, ord := range []SortOrder{OrderAsc, OrderDesc} {
			for _, byLoc := range []bool{false, true} {
				var b strings.Builder
				b.WriteString(leaderboardSelect)
				if byLoc {
					b.WriteString(leaderboardJoinLocation)
				} else {
					b.WriteString(leaderboardJoinAll)
				}
				b.WriteString(leaderboardGroup)
				b.WriteString("ORDER BY " + string(col) + " " + orderKeyword[ord] + ", u.id ASC")
				out[leaderboardVariant{col, ord, byLoc}] = b.String()
			}
		}
	}
	return out
}

// SQL returns the statement and its bind arguments.
func (q LeaderboardQuery) SQL() (string, []any) {
	v := leaderboardVariant{
		sort:       ParseSortColumn(string(q.Sort)),
		order:      ParseSortOrder(string(q.Order)),
		byLocation: q.LocationID != nil,
	}

	stmt := leaderboardQueries[v]
	if q.LocationID != nil {
		return stmt, []any{*q.LocationID}
	}
	return stmt, nil
}
