package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"stayhaven/internal/adapters/observability"
	"stayhaven/internal/app"
	"stayhaven/internal/domain"
)

type Handlers struct {
	Q *app.QueryService
	B *app.BookingService
	R *Renderer

	// token bucket shared across all booking submissions
	SubmitLimiter *rate.Limiter
}

// ---- page data bags ----

type homePage struct {
	Cities   []string
	Featured []domain.Hotel
}

type searchPage struct {
	Hotels   []domain.Hotel
	City     string
	Checkin  string
	Checkout string
	Guests   string
}

type hotelPage struct {
	Hotel  domain.Hotel
	Rooms  []domain.Room
	Errors []string
	Form   domain.BookingForm
}

type bookingPage struct {
	Booking domain.BookingView
	Nights  int
	Total   float64
}

type adminPage struct {
	Bookings []domain.BookingView
}

type errorPage struct {
	Title   string
	Message string
}

func (s *Server) MountHandlers(h *Handlers) {
	s.MountStatic()

	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/", h.home)
	s.mux.Get("/search", h.search)
	s.mux.Get("/hotel/{id}", h.hotel)
	s.mux.With(SubmitLimit(h.SubmitLimiter, h.tooManyRequests)).Post("/book", h.book)
	s.mux.Get("/booking/{id}", h.booking)
	s.mux.Get("/admin/bookings", h.adminBookings)

	s.mux.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.R.HTML(w, http.StatusNotFound, "error.html", errorPage{Title: "Not found", Message: "Page not found"})
	})
}

// ---- error helpers ----

// Infrastructure failures log the detail and show the user nothing but a
// generic page.
func (h *Handlers) serverError(w http.ResponseWriter, err error) {
	log.Error().Err(err).Msg("request failed")
	h.R.HTML(w, http.StatusInternalServerError, "error.html",
		errorPage{Title: "Server error", Message: "Something went wrong. Please try again."})
}

func (h *Handlers) notFoundPage(w http.ResponseWriter, msg string) {
	h.R.HTML(w, http.StatusNotFound, "error.html", errorPage{Title: "Not found", Message: msg})
}

func (h *Handlers) tooManyRequests(w http.ResponseWriter, _ *http.Request) {
	h.R.HTML(w, http.StatusTooManyRequests, "error.html",
		errorPage{Title: "Slow down", Message: "Too many booking attempts. Please try again in a moment."})
}

func urlID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

// ---- handlers ----

func (h *Handlers) home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	cities, err := h.Q.Cities(ctx)
	if err != nil {
		h.serverError(w, err)
		return
	}
	featured, err := h.Q.FeaturedHotels(ctx, 4)
	if err != nil {
		h.serverError(w, err)
		return
	}
	h.R.HTML(w, http.StatusOK, "index.html", homePage{Cities: cities, Featured: featured})
}

func (h *Handlers) search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	city := q.Get("city")
	hotels, err := h.Q.SearchHotels(r.Context(), city)
	if err != nil {
		h.serverError(w, err)
		return
	}
	h.R.HTML(w, http.StatusOK, "search.html", searchPage{
		Hotels:   hotels,
		City:     city,
		Checkin:  q.Get("checkin"),
		Checkout: q.Get("checkout"),
		Guests:   q.Get("guests"),
	})
}

func (h *Handlers) hotel(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		h.notFoundPage(w, "Hotel not found")
		return
	}
	ctx := r.Context()
	hotel, err := h.Q.GetHotel(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.notFoundPage(w, "Hotel not found")
			return
		}
		h.serverError(w, err)
		return
	}
	rooms, err := h.Q.RoomsForHotel(ctx, id)
	if err != nil {
		h.serverError(w, err)
		return
	}
	h.R.HTML(w, http.StatusOK, "hotel.html", hotelPage{
		Hotel:  hotel,
		Rooms:  rooms,
		Errors: nil,
		Form:   domain.BookingForm{Guests: "2"},
	})
}

func (h *Handlers) book(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.serverError(w, err)
		return
	}
	form := domain.BookingForm{
		RoomID:   r.PostFormValue("room_id"),
		Name:     r.PostFormValue("name"),
		Email:    r.PostFormValue("email"),
		Phone:    r.PostFormValue("phone"),
		Checkin:  r.PostFormValue("checkin"),
		Checkout: r.PostFormValue("checkout"),
		Guests:   r.PostFormValue("guests"),
	}
	ctx := r.Context()

	res := app.ValidateBookingRequest(form)
	if !res.OK() {
		observability.ObserveValidationFailed()
		h.rerenderWithErrors(w, r, form.RoomID, res)
		return
	}

	id, err := h.B.CreateBooking(ctx, res.Intent)
	if err != nil {
		if errors.Is(err, domain.ErrRoomNotFound) {
			h.staleRoom(w)
			return
		}
		h.serverError(w, err)
		return
	}
	http.Redirect(w, r, "/booking/"+strconv.FormatInt(id, 10), http.StatusSeeOther)
}

// rerenderWithErrors shows the hotel page again with the ordered messages and
// the caller's values echoed into the form. The room id anchors which hotel
// to re-render; when it no longer resolves, the distinct stale-room page wins.
func (h *Handlers) rerenderWithErrors(w http.ResponseWriter, r *http.Request, rawRoomID string, res domain.ValidationResult) {
	ctx := r.Context()
	roomID, _ := strconv.ParseInt(rawRoomID, 10, 64)
	room, err := h.Q.Room(ctx, roomID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.staleRoom(w)
			return
		}
		h.serverError(w, err)
		return
	}
	hotel, err := h.Q.GetHotel(ctx, room.HotelID)
	if err != nil {
		h.serverError(w, err)
		return
	}
	rooms, err := h.Q.RoomsForHotel(ctx, room.HotelID)
	if err != nil {
		h.serverError(w, err)
		return
	}
	h.R.HTML(w, http.StatusBadRequest, "hotel.html", hotelPage{
		Hotel:  hotel,
		Rooms:  rooms,
		Errors: res.Errors,
		Form:   res.Form,
	})
}

func (h *Handlers) staleRoom(w http.ResponseWriter) {
	h.R.HTML(w, http.StatusBadRequest, "error.html",
		errorPage{Title: "Not found", Message: "Selected room no longer exists."})
}

func (h *Handlers) booking(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		h.notFoundPage(w, "Booking not found")
		return
	}
	bv, err := h.Q.Booking(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.notFoundPage(w, "Booking not found")
			return
		}
		h.serverError(w, err)
		return
	}
	stay := app.StayFor(bv)
	h.R.HTML(w, http.StatusOK, "booking.html", bookingPage{Booking: bv, Nights: stay.Nights, Total: stay.Total})
}

func (h *Handlers) adminBookings(w http.ResponseWriter, r *http.Request) {
	bs, err := h.Q.Bookings(r.Context())
	if err != nil {
		h.serverError(w, err)
		return
	}
	h.R.HTML(w, http.StatusOK, "admin_bookings.html", adminPage{Bookings: bs})
}
