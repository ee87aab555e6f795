package httperr

import (
	"errors"
	"net/http"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}

type description struct {
	status  int
	message string
}

var descriptions = map[string]description{
	"missing_fields":           {http.StatusBadRequest, "All fields are required."},
	"invalid_phone":            {http.StatusBadRequest, "Phone number is not valid."},
	"phone_already_registered": {http.StatusConflict, "Phone number already registered."},
	"invalid_credentials":      {http.StatusUnauthorized, "Invalid phone or password."},
	"user_not_found":           {http.StatusNotFound, "User not found."},

	"invalid_shift_date":   {http.StatusBadRequest, "Shift date is not valid."},
	"invalid_hours":        {http.StatusBadRequest, "Hours must be a non-negative number."},
	"invalid_online_tips":  {http.StatusBadRequest, "Online tips must be a non-negative number."},
	"invalid_cash_tips":    {http.StatusBadRequest, "Cash tips must be a non-negative number."},
	"invalid_cars":         {http.StatusBadRequest, "Cars must be a non-negative whole number."},
	"invalid_location":     {http.StatusBadRequest, "Location is required."},
	"unknown_location":     {http.StatusBadRequest, "Selected location does not exist."},
	"too_many_screenshots": {http.StatusBadRequest, "At most 5 screenshots can be uploaded."},
	"invalid_screenshot":   {http.StatusBadRequest, "Screenshots must be png, jpeg, or webp images."},
	"screenshot_too_large": {http.StatusRequestEntityTooLarge, "Each screenshot must be at most 10 MB."},
	"report_not_found":     {http.StatusNotFound, "Shift report not found."},

	"invalid_location_name": {http.StatusBadRequest, "Location name is required."},
	"location_not_found":    {http.StatusNotFound, "Location not found."},
	"location_in_use":       {http.StatusConflict, "Location still has shift reports."},
}

// Describe returns the HTTP status and user message for a business code.
// Unknown codes are treated as validation failures.
func Describe(code string) (int, string) {
	if d, ok := descriptions[code]; ok {
		return d.status, d.message
	}
	return http.StatusBadRequest, code
}
