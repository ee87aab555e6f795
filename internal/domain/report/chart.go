package report

import (
	"sort"
	"strings"
)

type Attribute string

const (
	AttrHours      Attribute = "hours"
	AttrOnlineTips Attribute = "online_tips"
	AttrCashTips   Attribute = "cash_tips"
	AttrTotalTips  Attribute = "total_tips"
)

var attributes = []Attribute{AttrHours, AttrOnlineTips, AttrCashTips, AttrTotalTips}

// ParseAttribute maps caller input onto the allow-list, defaulting to hours.
func ParseAttribute(s string) Attribute {
	for _, a := range attributes {
		if string(a) == s {
			return a
		}
	}
	return AttrHours
}

// SingleSeriesLabel names the only dataset of a chart restricted to one valet.
const SingleSeriesLabel = "Valet Performance"

var attributeExpr = map[Attribute]string{
	AttrHours:      "COALESCE(SUM(sr.hours), 0)",
	AttrOnlineTips: "COALESCE(SUM(sr.online_tips), 0)",
	AttrCashTips:   "COALESCE(SUM(sr.cash_tips), 0)",
	AttrTotalTips:  "COALESCE(SUM(sr.online_tips), 0) + COALESCE(SUM(sr.cash_tips), 0)",
}

// ChartQuery sums one attribute per calendar day of the reporting timezone.
// With PerValet set the sums are further split by valet.
type ChartQuery struct {
	Attribute  Attribute
	LocationID *uint
	ValetID    *uint
	PerValet   bool
	Timezone   string
}

type chartVariant struct {
	attr       Attribute
	byLocation bool
	byValet    bool
	perValet   bool
}

var chartQueries = buildChartQueries()

func buildChartQueries() map[chartVariant]string {
	out := map[chartVariant]string{}
	for _, attr := range attributes {
		for _, byLoc := range []bool{false, true} {
			for _, byValet := range []bool{false, true} {
				for _, perValet := range []bool{false, true} {
					v := chartVariant{attr, byLoc, byValet, perValet}
					out[v] = chartSQL(v)
				}
			}
		}
	}
	return out
}

func chartSQL(v chartVariant) string {
	var b strings.Builder

	b.WriteString("SELECT to_char(sr.shift_date AT TIME ZONE ?, 'YYYY-MM-DD') AS date, ")
	if v.perValet {
		b.WriteString("u.id AS user_id, u.name AS user_name, ")
	} else {
		b.WriteString("0 AS user_id, '' AS user_name, ")
	}
	b.WriteString(attributeExpr[v.attr] + " AS value\n")
	b.WriteString("FROM shift_reports sr\nJOIN users u ON sr.user_id = u.id\n")

	var where []string
	if v.byLocation {
		where = append(where, "sr.location_id = ?")
	}
	if v.byValet {
		where = append(where, "sr.user_id = ?")
	}
	if len(where) > 0 {
		b.WriteString("WHERE " + strings.Join(where, " AND ") + "\n")
	}

	if v.perValet {
		b.WriteString("GROUP BY 1, u.id, u.name\nORDER BY 1 ASC, u.id ASC")
	} else {
		b.WriteString("GROUP BY 1\nORDER BY 1 ASC")
	}
	return b.String()
}

// SQL returns the statement and its bind arguments.
func (q ChartQuery) SQL() (string, []any) {
	v := chartVariant{
		attr:       ParseAttribute(string(q.Attribute)),
		byLocation: q.LocationID != nil,
		byValet:    q.ValetID != nil,
		perValet:   q.PerValet,
	}

	args := []any{q.Timezone}
	if q.LocationID != nil {
		args = append(args, *q.LocationID)
	}
	if q.ValetID != nil {
		args = append(args, *q.ValetID)
	}
	return chartQueries[v], args
}

// ChartPoint is one summed value as returned by a ChartQuery.
type ChartPoint struct {
	Date     string  `gorm:"column:date"`
	UserID   uint    `gorm:"column:user_id"`
	UserName string  `gorm:"column:user_name"`
	Value    float64 `gorm:"column:value"`
}

type Series struct {
	Label string    `json:"label"`
	Data  []float64 `json:"data"`
}

type Chart struct {
	Labels   []string `json:"labels"`
	Datasets []Series `json:"datasets"`
}

// BuildChart lays points out on a dense date axis: the sorted union of every
// date present. Each series carries exactly one value per axis date, zero
// where it has no point. Without perValet all points form a single series
// labelled singleLabel; otherwise one series per valet in first-seen order.
func BuildChart(points []ChartPoint, perValet bool, singleLabel string) Chart {
	seen := map[string]bool{}
	labels := []string{}
	for _, p := range points {
		if !seen[p.Date] {
			seen[p.Date] = true
			labels = append(labels, p.Date)
		}
	}
	sort.Strings(labels)

	pos := make(map[string]int, len(labels))
	for i, d := range labels {
		pos[d] = i
	}

	chart := Chart{Labels: labels, Datasets: []Series{}}

	if !perValet {
		data := make([]float64, len(labels))
		for _, p := range points {
			data[pos[p.Date]] += num(p.Value)
		}
		chart.Datasets = append(chart.Datasets, Series{Label: singleLabel, Data: data})
		return chart
	}

	idx := map[uint]int{}
	for _, p := range points {
		i, ok := idx[p.UserID]
		if !ok {
			i = len(chart.Datasets)
			idx[p.UserID] = i
			chart.Datasets = append(chart.Datasets, Series{
				Label: p.UserName,
				Data:  make([]float64, len(labels)),
			})
		}
		chart.Datasets[i].Data[pos[p.Date]] += num(p.Value)
	}
	return chart
}
