package app

import (
	"context"
	"fmt"
	"time"

	"stayhaven/internal/domain"
)

// QueryService serves the read side. Hotel content changes rarely, so those
// lookups go cache-aside through redis; booking reads always hit the database.
type QueryService struct {
	repo     domain.Repository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(r domain.Repository, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{repo: r, cache: c, cacheTTL: ttl}
}

func (s *QueryService) ttlSec() int { return int(s.cacheTTL.Seconds()) }

func (s *QueryService) Cities(ctx context.Context) ([]string, error) {
	key := "cities"
	var out []string
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}
	cs, err := s.repo.ListCities(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, key, cs, s.ttlSec())
	return cs, nil
}

func (s *QueryService) FeaturedHotels(ctx context.Context, limit int) ([]domain.Hotel, error) {
	key := fmt.Sprintf("featured:%d", limit)
	var out []domain.Hotel
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}
	hs, err := s.repo.ListFeaturedHotels(ctx, limit)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, key, hs, s.ttlSec())
	return hs, nil
}

// SearchHotels treats an empty city as "all hotels". Matching is exact and
// case-sensitive; checkin/checkout/guests are display-only and never filter.
func (s *QueryService) SearchHotels(ctx context.Context, city string) ([]domain.Hotel, error) {
	key := "search:" + city
	if city == "" {
		key = "hotels:all"
	}
	var out []domain.Hotel
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}
	hs, err := s.repo.SearchHotels(ctx, city)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, key, hs, s.ttlSec())
	return hs, nil
}

func (s *QueryService) GetHotel(ctx context.Context, id int64) (domain.Hotel, error) {
	key := fmt.Sprintf("hotel:%d", id)
	var out domain.Hotel
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}
	h, err := s.repo.GetHotel(ctx, id)
	if err != nil {
		return domain.Hotel{}, err
	}
	_ = s.cache.Set(ctx, key, h, s.ttlSec())
	return h, nil
}

func (s *QueryService) RoomsForHotel(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	key := fmt.Sprintf("rooms:%d", hotelID)
	var out []domain.Room
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}
	rs, err := s.repo.ListRooms(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, key, rs, s.ttlSec())
	return rs, nil
}

// Room lookups only happen on the booking error path; not worth caching.
func (s *QueryService) Room(ctx context.Context, id int64) (domain.Room, error) {
	return s.repo.GetRoom(ctx, id)
}

// Booking reads are uncached: the admin list changes on every submission and
// a confirmation is typically viewed once.
func (s *QueryService) Booking(ctx context.Context, id int64) (domain.BookingView, error) {
	return s.repo.GetBooking(ctx, id)
}

func (s *QueryService) Bookings(ctx context.Context) ([]domain.BookingView, error) {
	return s.repo.ListBookings(ctx)
}
