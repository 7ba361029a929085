package domain

import "context"

type Repository interface {
	// Hotel reads
	ListCities(ctx context.Context) ([]string, error)
	ListFeaturedHotels(ctx context.Context, limit int) ([]Hotel, error)
	SearchHotels(ctx context.Context, city string) ([]Hotel, error)
	GetHotel(ctx context.Context, id int64) (Hotel, error)
	ListRooms(ctx context.Context, hotelID int64) ([]Room, error)
	GetRoom(ctx context.Context, id int64) (Room, error)

	// Booking paths
	InsertBooking(ctx context.Context, intent BookingIntent, reference string) (int64, error)
	GetBooking(ctx context.Context, id int64) (BookingView, error)
	ListBookings(ctx context.Context) ([]BookingView, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
