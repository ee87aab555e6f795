package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/valet-reports/internal/httperr"
	"github.com/BruksfildServices01/valet-reports/internal/httpresp"
	ucReport "github.com/BruksfildServices01/valet-reports/internal/usecase/report"
)

// DashboardHandler serves the admin analytics views.
type DashboardHandler struct {
	dayView     *ucReport.DayView
	leaderboard *ucReport.Leaderboard
	charts      *ucReport.Charts
}

func NewDashboardHandler(
	dayView *ucReport.DayView,
	leaderboard *ucReport.Leaderboard,
	charts *ucReport.Charts,
) *DashboardHandler {
	return &DashboardHandler{
		dayView:     dayView,
		leaderboard: leaderboard,
		charts:      charts,
	}
}

func (h *DashboardHandler) DayView(c *gin.Context) {
	days, err := h.dayView.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "day_view_failed", "Could not load day view.")
		return
	}
	httpresp.List(c, days)
}

// Leaderboard ranks valets. Unknown sort or order values fall back to total
// hours descending.
func (h *DashboardHandler) Leaderboard(c *gin.Context) {
	res, err := h.leaderboard.Execute(
		c.Request.Context(),
		c.Query("sort"),
		c.Query("order"),
		optionalID(c, "location_id"),
	)
	if err != nil {
		httperr.Internal(c, "leaderboard_failed", "Could not load leaderboard.")
		return
	}
	httpresp.OK(c, res)
}

type chartTotalsResponse struct {
	Attribute string    `json:"attribute"`
	Labels    []string  `json:"labels"`
	Values    []float64 `json:"values"`
}

// Charts returns the daily totals of one attribute as a single series.
func (h *DashboardHandler) Charts(c *gin.Context) {
	res, err := h.charts.Totals(
		c.Request.Context(),
		c.Query("attribute"),
		optionalID(c, "location_id"),
	)
	if err != nil {
		httperr.Internal(c, "chart_failed", "Could not load chart.")
		return
	}

	values := []float64{}
	if len(res.Datasets) > 0 {
		values = res.Datasets[0].Data
	}
	httpresp.OK(c, chartTotalsResponse{
		Attribute: string(res.Attribute),
		Labels:    res.Labels,
		Values:    values,
	})
}

// Compare returns one series per valet, or a single series when valet_id
// is given.
func (h *DashboardHandler) Compare(c *gin.Context) {
	res, err := h.charts.Compare(
		c.Request.Context(),
		c.Query("attribute"),
		optionalID(c, "location_id"),
		optionalID(c, "valet_id"),
	)
	if err != nil {
		httperr.Internal(c, "chart_failed", "Could not load chart.")
		return
	}
	httpresp.OK(c, res)
}
