package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/valet-reports/internal/domain/shift"
	"github.com/BruksfildServices01/valet-reports/internal/dto"
	"github.com/BruksfildServices01/valet-reports/internal/httperr"
	"github.com/BruksfildServices01/valet-reports/internal/httpresp"
	ucShift "github.com/BruksfildServices01/valet-reports/internal/usecase/shift"
)

// MaxScreenshotBytes caps a single uploaded screenshot before it is decoded.
const MaxScreenshotBytes = 10 << 20

var errScreenshotTooLarge = errors.New("screenshot too large")

type ShiftHandler struct {
	submit *ucShift.SubmitShift
	mine   *ucShift.ListMyShifts
	loc    *time.Location
}

func NewShiftHandler(
	submit *ucShift.SubmitShift,
	mine *ucShift.ListMyShifts,
	loc *time.Location,
) *ShiftHandler {
	return &ShiftHandler{submit: submit, mine: mine, loc: loc}
}

// Submit accepts a multipart form with the shift figures and up to five
// files under "screenshots".
func (h *ShiftHandler) Submit(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Expected a multipart form.")
		return
	}

	values, locationID, err := domain.Form{
		ShiftDate:  c.PostForm("shift_date"),
		Hours:      c.PostForm("hours"),
		OnlineTips: c.PostForm("online_tips"),
		CashTips:   c.PostForm("cash_tips"),
		Cars:       c.PostForm("cars"),
		LocationID: c.PostForm("location_id"),
	}.Parse(h.loc)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	files := form.File["screenshots"]
	if len(files) > domain.MaxScreenshots {
		httperr.FromError(c, httperr.ErrBusiness("too_many_screenshots"))
		return
	}

	shots := make([][]byte, 0, len(files))
	for _, fh := range files {
		raw, err := readUpload(fh)
		if err != nil {
			if errors.Is(err, errScreenshotTooLarge) {
				httperr.FromError(c, httperr.ErrBusiness("screenshot_too_large"))
				return
			}
			httperr.BadRequest(c, "invalid_screenshot", "Could not read screenshot.")
			return
		}
		shots = append(shots, raw)
	}

	report, err := h.submit.Execute(c.Request.Context(), ucShift.SubmitShiftInput{
		UserID:      currentUserID(c),
		LocationID:  locationID,
		Values:      values,
		Screenshots: shots,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, dto.NewShiftReportDTO(report))
}

func (h *ShiftHandler) ListMine(c *gin.Context) {
	reports, err := h.mine.Execute(c.Request.Context(), currentUserID(c))
	if err != nil {
		httperr.Internal(c, "shifts_list_failed", "Could not load shifts.")
		return
	}
	httpresp.List(c, dto.NewShiftReportDTOs(reports))
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	if fh.Size > MaxScreenshotBytes {
		return nil, errScreenshotTooLarge
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, MaxScreenshotBytes+1))
	if err != nil {
		return nil, err
	}
	if len(raw) > MaxScreenshotBytes {
		return nil, errScreenshotTooLarge
	}
	return raw, nil
}
