package domain

import (
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrRoomNotFound = errors.New("room not found")
)

// BookingForm carries the raw strings as submitted; nothing is trusted yet.
type BookingForm struct {
	RoomID   string
	Name     string
	Email    string
	Phone    string
	Checkin  string
	Checkout string
	Guests   string
}

// BookingIntent is a validated request that has not been persisted.
// Checkin/Checkout stay in their submitted string form; the database stores
// them as-is and display-time math re-parses them.
type BookingIntent struct {
	RoomID   int64
	Name     string
	Email    string
	Phone    string
	Checkin  string
	Checkout string
	Guests   int
}

type Booking struct {
	ID           int64
	Reference    string
	RoomID       int64
	GuestName    string
	GuestEmail   string
	GuestPhone   string
	CheckinDate  string
	CheckoutDate string
	Guests       int
	CreatedAt    time.Time
}

// BookingView is a booking joined with its room and hotel for display.
type BookingView struct {
	Booking
	RoomName      string
	PricePerNight float64
	HotelName     string
	City          string
}

// ValidationResult is a tagged result: either Errors is empty and Intent is
// usable, or Errors holds the ordered messages and Form the echoed values for
// redisplay. Never both.
type ValidationResult struct {
	Intent BookingIntent
	Errors []string
	Form   BookingForm
}

func (r ValidationResult) OK() bool { return len(r.Errors) == 0 }
