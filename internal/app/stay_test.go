package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stayhaven/internal/app"
	"stayhaven/internal/domain"
)

func TestComputeStay(t *testing.T) {
	cases := []struct {
		name       string
		in, out    string
		price      float64
		wantNights int
		wantTotal  float64
	}{
		{"two nights", "2024-06-01", "2024-06-03", 1000, 2, 2000},
		{"one night", "2024-06-01", "2024-06-02", 3500, 1, 3500},
		{"equal dates default", "2024-06-01", "2024-06-01", 1000, 1, 1000},
		{"checkout before checkin default", "2024-06-03", "2024-06-01", 1000, 1, 1000},
		{"missing checkin default", "", "2024-06-03", 1200, 1, 1200},
		{"missing checkout default", "2024-06-01", "", 1200, 1, 1200},
		{"both missing default", "", "", 800, 1, 800},
		{"unparseable default", "next week", "2024-06-03", 500, 1, 500},
		{"long stay", "2024-06-01", "2024-06-15", 100, 14, 1400},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := app.ComputeStay(tc.in, tc.out, tc.price)
			assert.Equal(t, tc.wantNights, got.Nights)
			assert.InDelta(t, tc.wantTotal, got.Total, 1e-9)
		})
	}
}

func TestStayFor(t *testing.T) {
	bv := domain.BookingView{
		Booking:       domain.Booking{CheckinDate: "2024-06-01", CheckoutDate: "2024-06-03"},
		PricePerNight: 1000,
	}
	got := app.StayFor(bv)
	assert.Equal(t, 2, got.Nights)
	assert.InDelta(t, 2000.0, got.Total, 1e-9)
}
