package mysql

import (
	"context"

	"github.com/rs/zerolog/log"
)

type seedHotel struct {
	name, city, description, imageURL string
	rating                            float64
	featured                          bool
}

type seedRoom struct {
	name          string
	pricePerNight float64
	capacity      int
	imageURL      string
}

var sampleHotels = []seedHotel{
	{
		name:        "Oceanview Paradise",
		city:        "Goa",
		description: "Beachfront resort with infinity pool and sunset views.",
		imageURL:    "https://images.pexels.com/photos/258154/pexels-photo-258154.jpeg",
		rating:      4.8,
		featured:    true,
	},
	{
		name:        "Skyline Grand Hotel",
		city:        "Mumbai",
		description: "Luxury hotel in the heart of the city with rooftop lounge.",
		imageURL:    "https://images.pexels.com/photos/261102/pexels-photo-261102.jpeg",
		rating:      4.6,
		featured:    true,
	},
	{
		name:        "Serenity Hills Retreat",
		city:        "Manali",
		description: "Cozy mountain resort surrounded by pine forests.",
		imageURL:    "https://images.pexels.com/photos/258154/pexels-photo-258154.jpeg",
		rating:      4.7,
		featured:    false,
	},
}

// Every hotel gets the same two room tiers.
var sampleRooms = []seedRoom{
	{name: "Deluxe Room", pricePerNight: 3500, capacity: 2, imageURL: "https://images.pexels.com/photos/164595/pexels-photo-164595.jpeg"},
	{name: "Family Suite", pricePerNight: 5200, capacity: 4, imageURL: "https://images.pexels.com/photos/258154/pexels-photo-258154.jpeg"},
}

// Seed inserts the sample catalogue, but only into an empty hotels table.
// It runs inside one transaction so a partial seed never survives a crash.
func (r *Repo) Seed(ctx context.Context) error {
	var count int
	if err := r.db.QueryRowContext(ctx, countHotelsSQL).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, h := range sampleHotels {
		res, err := tx.ExecContext(ctx, insertHotelSQL,
			h.name, h.city, h.description, h.imageURL, h.rating, h.featured)
		if err != nil {
			return err
		}
		hotelID, err := res.LastInsertId()
		if err != nil {
			return err
		}
		for _, rm := range sampleRooms {
			if _, err := tx.ExecContext(ctx, insertRoomSQL,
				hotelID, rm.name, rm.pricePerNight, rm.capacity, rm.imageURL); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	log.Info().Int("hotels", len(sampleHotels)).Msg("seeded sample data")
	return nil
}
