package httpserver_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"golang.org/x/time/rate"

	server "stayhaven/internal/adapters/http_server"
	"stayhaven/internal/app"
	"stayhaven/internal/domain"
)

// ---- in-memory repository ----

type memRepo struct {
	hotels   []domain.Hotel
	rooms    map[int64][]domain.Room
	roomByID map[int64]domain.Room
	bookings map[int64]domain.BookingView
	nextID   int64
}

func newMemRepo() *memRepo {
	goa := domain.Hotel{ID: 1, Name: "Oceanview Paradise", City: "Goa", Description: "Beachfront resort", Rating: 4.8, Featured: true}
	mum := domain.Hotel{ID: 2, Name: "Skyline Grand Hotel", City: "Mumbai", Rating: 4.6, Featured: true}
	deluxe := domain.Room{ID: 10, HotelID: 1, Name: "Deluxe Room", PricePerNight: 3500, Capacity: 2}
	suite := domain.Room{ID: 11, HotelID: 1, Name: "Family Suite", PricePerNight: 5200, Capacity: 4}
	return &memRepo{
		hotels:   []domain.Hotel{goa, mum},
		rooms:    map[int64][]domain.Room{1: {deluxe, suite}},
		roomByID: map[int64]domain.Room{10: deluxe, 11: suite},
		bookings: map[int64]domain.BookingView{},
		nextID:   1,
	}
}

func (m *memRepo) ListCities(ctx context.Context) ([]string, error) {
	return []string{"Goa", "Mumbai"}, nil
}

func (m *memRepo) ListFeaturedHotels(ctx context.Context, limit int) ([]domain.Hotel, error) {
	var out []domain.Hotel
	for _, h := range m.hotels {
		if h.Featured && len(out) < limit {
			out = append(out, h)
		}
	}
	return out, nil
}

func (m *memRepo) SearchHotels(ctx context.Context, city string) ([]domain.Hotel, error) {
	if city == "" {
		return m.hotels, nil
	}
	var out []domain.Hotel
	for _, h := range m.hotels {
		if h.City == city {
			out = append(out, h)
		}
	}
	return out, nil
}

func (m *memRepo) GetHotel(ctx context.Context, id int64) (domain.Hotel, error) {
	for _, h := range m.hotels {
		if h.ID == id {
			return h, nil
		}
	}
	return domain.Hotel{}, domain.ErrNotFound
}

func (m *memRepo) ListRooms(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	return m.rooms[hotelID], nil
}

func (m *memRepo) GetRoom(ctx context.Context, id int64) (domain.Room, error) {
	if rm, ok := m.roomByID[id]; ok {
		return rm, nil
	}
	return domain.Room{}, domain.ErrNotFound
}

func (m *memRepo) InsertBooking(ctx context.Context, intent domain.BookingIntent, reference string) (int64, error) {
	id := m.nextID
	m.nextID++
	rm := m.roomByID[intent.RoomID]
	m.bookings[id] = domain.BookingView{
		Booking: domain.Booking{
			ID: id, Reference: reference, RoomID: intent.RoomID,
			GuestName: intent.Name, GuestEmail: intent.Email, GuestPhone: intent.Phone,
			CheckinDate: intent.Checkin, CheckoutDate: intent.Checkout, Guests: intent.Guests,
			CreatedAt: time.Now(),
		},
		RoomName:      rm.Name,
		PricePerNight: rm.PricePerNight,
		HotelName:     "Oceanview Paradise",
		City:          "Goa",
	}
	return id, nil
}

func (m *memRepo) GetBooking(ctx context.Context, id int64) (domain.BookingView, error) {
	if bv, ok := m.bookings[id]; ok {
		return bv, nil
	}
	return domain.BookingView{}, domain.ErrNotFound
}

func (m *memRepo) ListBookings(ctx context.Context) ([]domain.BookingView, error) {
	var out []domain.BookingView
	for _, bv := range m.bookings {
		out = append(out, bv)
	}
	return out, nil
}

// noopCache always misses; handler tests exercise the repo path.
type noopCache struct{}

func (noopCache) Get(ctx context.Context, key string, dst any) (bool, error) { return false, nil }
func (noopCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	return nil
}
func (noopCache) Del(ctx context.Context, key string) error { return nil }

// ---- harness ----

func newTestServer(t *testing.T, limiter *rate.Limiter) (http.Handler, *memRepo) {
	t.Helper()
	repo := newMemRepo()
	q := app.NewQueryService(repo, noopCache{}, time.Minute)
	b := app.NewBookingService(repo)
	rn, err := server.NewRenderer()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	srv := server.New()
	srv.MountHandlers(&server.Handlers{Q: q, B: b, R: rn, SubmitLimiter: limiter})
	return srv.Mux(), repo
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func postForm(t *testing.T, h http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func bookingForm() url.Values {
	return url.Values{
		"room_id":  {"10"},
		"name":     {"A"},
		"email":    {"a@b.com"},
		"checkin":  {"2024-06-01"},
		"checkout": {"2024-06-03"},
		"guests":   {"2"},
	}
}

func unlimited() *rate.Limiter { return rate.NewLimiter(rate.Inf, 1) }

// ---- tests ----

func TestHome(t *testing.T) {
	h, _ := newTestServer(t, unlimited())
	rr := get(t, h, "/")
	if rr.Code != http.StatusOK {
		t.Fatalf("status: %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Oceanview Paradise") || !strings.Contains(body, "Goa") {
		t.Fatalf("expected featured hotels on home page")
	}
}

func TestSearch_EchoesCriteria(t *testing.T) {
	h, _ := newTestServer(t, unlimited())
	rr := get(t, h, "/search?city=Goa&checkin=2024-06-01&checkout=2024-06-03&guests=2")
	if rr.Code != http.StatusOK {
		t.Fatalf("status: %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Hotels in Goa") {
		t.Fatalf("expected city heading")
	}
	if strings.Contains(body, "Skyline Grand Hotel") {
		t.Fatalf("Mumbai hotel should not match a Goa search")
	}
}

func TestHotelPage(t *testing.T) {
	h, _ := newTestServer(t, unlimited())
	rr := get(t, h, "/hotel/1")
	if rr.Code != http.StatusOK {
		t.Fatalf("status: %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Deluxe Room") || !strings.Contains(body, "Family Suite") {
		t.Fatalf("expected room list")
	}
}

func TestHotelPage_NotFound(t *testing.T) {
	h, _ := newTestServer(t, unlimited())
	rr := get(t, h, "/hotel/999")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status: %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Hotel not found") {
		t.Fatalf("expected hotel not-found message")
	}
}

func TestBook_ValidationFailureRerendersForm(t *testing.T) {
	h, _ := newTestServer(t, unlimited())
	form := bookingForm()
	form.Set("name", "")
	rr := postForm(t, h, "/book", form)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status: %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Name is required.") {
		t.Fatalf("expected validation message in page")
	}
	if !strings.Contains(body, "a@b.com") {
		t.Fatalf("expected submitted email echoed into the form")
	}
}

func TestBook_UnknownRoomDistinctMessage(t *testing.T) {
	h, _ := newTestServer(t, unlimited())
	form := bookingForm()
	form.Set("room_id", "999")
	rr := postForm(t, h, "/book", form)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status: %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Selected room no longer exists.") {
		t.Fatalf("expected stale-room message")
	}
}

func TestBook_SuccessRedirectsToConfirmation(t *testing.T) {
	h, repo := newTestServer(t, unlimited())
	rr := postForm(t, h, "/book", bookingForm())
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status: %d", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/booking/1" {
		t.Fatalf("location: %s", loc)
	}
	if len(repo.bookings) != 1 {
		t.Fatalf("expected one stored booking")
	}

	// confirmation shows nights and total: 2 nights x 3500
	rr = get(t, h, "/booking/1")
	if rr.Code != http.StatusOK {
		t.Fatalf("status: %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "7000.00") {
		t.Fatalf("expected total 7000.00 in confirmation page")
	}
}

func TestBookingPage_NotFound(t *testing.T) {
	h, _ := newTestServer(t, unlimited())
	rr := get(t, h, "/booking/42")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status: %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Booking not found") {
		t.Fatalf("expected booking not-found message")
	}
}

func TestAdminBookings(t *testing.T) {
	h, _ := newTestServer(t, unlimited())
	postForm(t, h, "/book", bookingForm())

	rr := get(t, h, "/admin/bookings")
	if rr.Code != http.StatusOK {
		t.Fatalf("status: %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "a@b.com") {
		t.Fatalf("expected booking row in admin table")
	}
}

func TestUnmatchedRouteRenders404(t *testing.T) {
	h, _ := newTestServer(t, unlimited())
	rr := get(t, h, "/nope")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status: %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Page not found") {
		t.Fatalf("expected 404 page")
	}
}

func TestBook_RateLimited(t *testing.T) {
	h, _ := newTestServer(t, rate.NewLimiter(0, 0))
	rr := postForm(t, h, "/book", bookingForm())
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("status: %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Too many booking attempts") {
		t.Fatalf("expected rendered 429 page")
	}
}
