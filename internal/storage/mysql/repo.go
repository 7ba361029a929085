package mysql

import (
	"context"
	"database/sql"

	"stayhaven/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// EnsureSchema creates the three tables when missing. Statements are
// individually idempotent so re-running on startup is safe.
func (r *Repo) EnsureSchema(ctx context.Context) error {
	for _, q := range []string{createHotelsSQL, createRoomsSQL, createBookingsSQL} {
		if _, err := r.db.ExecContext(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repo) ListCities(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, listCitiesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *Repo) ListFeaturedHotels(ctx context.Context, limit int) ([]domain.Hotel, error) {
	rows, err := r.db.QueryContext(ctx, listFeaturedSQL, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanHotels(rows)
}

func (r *Repo) SearchHotels(ctx context.Context, city string) ([]domain.Hotel, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if city == "" {
		rows, err = r.db.QueryContext(ctx, searchAllSQL)
	} else {
		rows, err = r.db.QueryContext(ctx, searchByCitySQL, city)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanHotels(rows)
}

func (r *Repo) GetHotel(ctx context.Context, id int64) (domain.Hotel, error) {
	row := r.db.QueryRowContext(ctx, getHotelSQL, id)
	h, err := scanHotel(row)
	if err == sql.ErrNoRows {
		return domain.Hotel{}, domain.ErrNotFound
	}
	return h, err
}

func (r *Repo) ListRooms(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	rows, err := r.db.QueryContext(ctx, listRoomsSQL, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Room
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rm)
	}
	return out, rows.Err()
}

func (r *Repo) GetRoom(ctx context.Context, id int64) (domain.Room, error) {
	rm, err := scanRoom(r.db.QueryRowContext(ctx, getRoomSQL, id))
	if err == sql.ErrNoRows {
		return domain.Room{}, domain.ErrNotFound
	}
	return rm, err
}

func (r *Repo) InsertBooking(ctx context.Context, intent domain.BookingIntent, reference string) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertBookingSQL,
		reference,
		intent.RoomID,
		intent.Name,
		intent.Email,
		nullStr(intent.Phone),
		intent.Checkin,
		intent.Checkout,
		intent.Guests,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *Repo) GetBooking(ctx context.Context, id int64) (domain.BookingView, error) {
	bv, err := scanBookingView(r.db.QueryRowContext(ctx, getBookingSQL, id))
	if err == sql.ErrNoRows {
		return domain.BookingView{}, domain.ErrNotFound
	}
	return bv, err
}

func (r *Repo) ListBookings(ctx context.Context) ([]domain.BookingView, error) {
	rows, err := r.db.QueryContext(ctx, listBookingsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.BookingView
	for rows.Next() {
		bv, err := scanBookingView(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, bv)
	}
	return out, rows.Err()
}

// ---- scanning helpers ----

type scanner interface{ Scan(dest ...any) error }

func scanHotel(s scanner) (domain.Hotel, error) {
	var h domain.Hotel
	var desc, img sql.NullString
	var rating sql.NullFloat64
	if err := s.Scan(&h.ID, &h.Name, &h.City, &desc, &img, &rating, &h.Featured); err != nil {
		return domain.Hotel{}, err
	}
	h.Description = desc.String
	h.ImageURL = img.String
	h.Rating = rating.Float64
	return h, nil
}

func scanHotels(rows *sql.Rows) ([]domain.Hotel, error) {
	var out []domain.Hotel
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func scanRoom(s scanner) (domain.Room, error) {
	var rm domain.Room
	var img sql.NullString
	if err := s.Scan(&rm.ID, &rm.HotelID, &rm.Name, &rm.PricePerNight, &rm.Capacity, &img); err != nil {
		return domain.Room{}, err
	}
	rm.ImageURL = img.String
	return rm, nil
}

func scanBookingView(s scanner) (domain.BookingView, error) {
	var bv domain.BookingView
	var phone sql.NullString
	if err := s.Scan(
		&bv.ID, &bv.Reference, &bv.RoomID, &bv.GuestName, &bv.GuestEmail, &phone,
		&bv.CheckinDate, &bv.CheckoutDate, &bv.Guests, &bv.CreatedAt,
		&bv.RoomName, &bv.PricePerNight,
		&bv.HotelName, &bv.City,
	); err != nil {
		return domain.BookingView{}, err
	}
	bv.GuestPhone = phone.String
	return bv, nil
}

func nullStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}
