package app

import (
	"math"

	"stayhaven/internal/domain"
)

type Stay struct {
	Nights int
	Total  float64
}

// ComputeStay derives the night count and total estimate for a persisted
// booking at display time. It never re-validates: missing or unparseable
// dates, and non-positive differences, all fall back to a single night.
func ComputeStay(checkin, checkout string, pricePerNight float64) Stay {
	nights := 1
	in, inOK := parseDate(checkin)
	out, outOK := parseDate(checkout)
	if inOK && outOK {
		if d := int(math.Round(out.Sub(in).Hours() / 24)); d > 0 {
			nights = d
		}
	}
	return Stay{Nights: nights, Total: float64(nights) * pricePerNight}
}

// StayFor is a convenience for joined booking rows.
func StayFor(b domain.BookingView) Stay {
	return ComputeStay(b.CheckinDate, b.CheckoutDate, b.PricePerNight)
}
