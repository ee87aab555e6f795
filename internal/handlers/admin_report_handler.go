package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/valet-reports/internal/domain/shift"
	"github.com/BruksfildServices01/valet-reports/internal/dto"
	"github.com/BruksfildServices01/valet-reports/internal/httperr"
	"github.com/BruksfildServices01/valet-reports/internal/httpresp"
	"github.com/BruksfildServices01/valet-reports/internal/timezone"
	ucReport "github.com/BruksfildServices01/valet-reports/internal/usecase/report"
	ucShift "github.com/BruksfildServices01/valet-reports/internal/usecase/shift"
)

type AdminReportHandler struct {
	list   *ucReport.ListReports
	get    *ucShift.GetShift
	edit   *ucShift.EditShift
	delete *ucShift.DeleteShift
	loc    *time.Location
}

func NewAdminReportHandler(
	list *ucReport.ListReports,
	get *ucShift.GetShift,
	edit *ucShift.EditShift,
	delete *ucShift.DeleteShift,
	loc *time.Location,
) *AdminReportHandler {
	return &AdminReportHandler{
		list:   list,
		get:    get,
		edit:   edit,
		delete: delete,
		loc:    loc,
	}
}

// --------- Requests ---------

type UpdateReportRequest struct {
	ShiftDate  string   `json:"shift_date" binding:"required"`
	Hours      *float64 `json:"hours" binding:"required"`
	OnlineTips *float64 `json:"online_tips" binding:"required"`
	CashTips   *float64 `json:"cash_tips" binding:"required"`
	Cars       *int     `json:"cars" binding:"required"`
}

// values expects a request that passed its binding tags.
func (r UpdateReportRequest) values(loc *time.Location) (domain.Values, error) {
	at, err := timezone.ParseLocal(r.ShiftDate, loc)
	if err != nil {
		return domain.Values{}, httperr.ErrBusiness("invalid_shift_date")
	}
	v := domain.Values{
		ShiftDate:  at,
		Hours:      *r.Hours,
		OnlineTips: *r.OnlineTips,
		CashTips:   *r.CashTips,
		Cars:       *r.Cars,
	}
	return v, v.Validate()
}

// --------- Handlers ---------

func (h *AdminReportHandler) List(c *gin.Context) {
	rows, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "reports_list_failed", "Could not load reports.")
		return
	}
	httpresp.List(c, rows)
}

func (h *AdminReportHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid report id.")
		return
	}

	report, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, dto.NewShiftReportDTO(report))
}

func (h *AdminReportHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid report id.")
		return
	}

	var req UpdateReportRequest
	if !bindJSON(c, &req) {
		return
	}

	values, err := req.values(h.loc)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	report, err := h.edit.Execute(c.Request.Context(), currentUserID(c), id, values)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, dto.NewShiftReportDTO(report))
}

func (h *AdminReportHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid report id.")
		return
	}

	if err := h.delete.Execute(c.Request.Context(), currentUserID(c), id); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
