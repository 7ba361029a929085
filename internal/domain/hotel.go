package domain

type Hotel struct {
	ID          int64
	Name        string
	City        string
	Description string
	ImageURL    string
	Rating      float64
	Featured    bool
}

type Room struct {
	ID            int64
	HotelID       int64
	Name          string
	PricePerNight float64
	Capacity      int
	ImageURL      string
}
