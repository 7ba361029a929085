package app

import (
	"strconv"
	"strings"
	"time"

	"stayhaven/internal/domain"
)

// Validation messages in their fixed surface order.
const (
	msgRoomRequired     = "Please select a room type."
	msgNameRequired     = "Name is required."
	msgEmailRequired    = "Email is required."
	msgCheckinRequired  = "Check-in date is required."
	msgCheckoutRequired = "Check-out date is required."
	msgGuestsMin        = "Guests must be at least 1."
	msgDateOrder        = "Check-out date must be after check-in date."
)

// parseDate reads a calendar date as UTC midnight. RFC3339 is accepted as a
// fallback so ISO timestamps from date-time pickers still work.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.ParseInLocation("2006-01-02", s, time.UTC); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// parseGuests mirrors lenient integer parsing: leading digits count,
// anything non-numeric is 0.
func parseGuests(s string) int {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	// accept a numeric prefix, e.g. "2 adults"
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j > i {
		if n, err := strconv.Atoi(s[:j]); err == nil {
			return n
		}
	}
	return 0
}

// ValidateBookingRequest checks a raw submission and returns either a
// normalized intent or the ordered list of user-facing errors plus the echoed
// form values. Rules are evaluated independently, never short-circuited, so a
// submission with several problems reports all of them at once.
func ValidateBookingRequest(form domain.BookingForm) domain.ValidationResult {
	var errs []string

	if strings.TrimSpace(form.RoomID) == "" {
		errs = append(errs, msgRoomRequired)
	}
	if strings.TrimSpace(form.Name) == "" {
		errs = append(errs, msgNameRequired)
	}
	if strings.TrimSpace(form.Email) == "" {
		errs = append(errs, msgEmailRequired)
	}
	if strings.TrimSpace(form.Checkin) == "" {
		errs = append(errs, msgCheckinRequired)
	}
	if strings.TrimSpace(form.Checkout) == "" {
		errs = append(errs, msgCheckoutRequired)
	}

	guests := parseGuests(form.Guests)
	if guests <= 0 {
		errs = append(errs, msgGuestsMin)
	}

	// Date order is only checkable when both dates are present and parse.
	// Unparseable dates skip this rule; display-time math falls back to one
	// night for them.
	if form.Checkin != "" && form.Checkout != "" {
		in, inOK := parseDate(form.Checkin)
		out, outOK := parseDate(form.Checkout)
		if inOK && outOK && !out.After(in) {
			errs = append(errs, msgDateOrder)
		}
	}

	if len(errs) > 0 {
		echo := form
		// coerced for redisplay only; never treated as valid
		if guests != 0 {
			echo.Guests = strconv.Itoa(guests)
		} else {
			echo.Guests = "1"
		}
		return domain.ValidationResult{Errors: errs, Form: echo}
	}

	roomID, _ := strconv.ParseInt(strings.TrimSpace(form.RoomID), 10, 64)
	return domain.ValidationResult{Intent: domain.BookingIntent{
		RoomID:   roomID,
		Name:     form.Name,
		Email:    form.Email,
		Phone:    form.Phone,
		Checkin:  form.Checkin,
		Checkout: form.Checkout,
		Guests:   guests,
	}}
}
