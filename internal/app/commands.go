package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"stayhaven/internal/adapters/observability"
	"stayhaven/internal/domain"
)

// BookingService owns the single write path. There is deliberately no
// availability check: two bookings for the same room and date range both
// succeed, exactly as the product behaves today.
type BookingService struct {
	repo domain.Repository
}

func NewBookingService(r domain.Repository) *BookingService {
	return &BookingService{repo: r}
}

// CreateBooking persists a validated intent and returns the new booking id.
// A stale or bogus room id surfaces as ErrRoomNotFound so the handler can
// render its distinct message instead of a generic validation failure.
func (s *BookingService) CreateBooking(ctx context.Context, intent domain.BookingIntent) (int64, error) {
	if _, err := s.repo.GetRoom(ctx, intent.RoomID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, domain.ErrRoomNotFound
		}
		return 0, fmt.Errorf("resolve room %d: %w", intent.RoomID, err)
	}

	ref := uuid.NewString()
	id, err := s.repo.InsertBooking(ctx, intent, ref)
	if err != nil {
		return 0, fmt.Errorf("insert booking: %w", err)
	}
	observability.ObserveBookingCreated()
	return id, nil
}
