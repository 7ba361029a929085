package mysql

// Schema bootstrap. Dates are stored as the submitted strings, matching the
// display layer which re-parses them; created_at is the only server-side time.

const createHotelsSQL = `
CREATE TABLE IF NOT EXISTS hotels (
  id          BIGINT PRIMARY KEY AUTO_INCREMENT,
  name        VARCHAR(255) NOT NULL,
  city        VARCHAR(128) NOT NULL,
  description TEXT,
  image_url   VARCHAR(512),
  rating      DOUBLE,
  featured    TINYINT(1) NOT NULL DEFAULT 0,
  KEY idx_hotels_city (city),
  KEY idx_hotels_featured (featured)
)
`

const createRoomsSQL = `
CREATE TABLE IF NOT EXISTS rooms (
  id              BIGINT PRIMARY KEY AUTO_INCREMENT,
  hotel_id        BIGINT NOT NULL,
  name            VARCHAR(255) NOT NULL,
  price_per_night DOUBLE NOT NULL,
  capacity        INT NOT NULL,
  image_url       VARCHAR(512),
  KEY idx_rooms_hotel (hotel_id),
  CONSTRAINT fk_rooms_hotel FOREIGN KEY (hotel_id) REFERENCES hotels(id)
)
`

const createBookingsSQL = `
CREATE TABLE IF NOT EXISTS bookings (
  id            BIGINT PRIMARY KEY AUTO_INCREMENT,
  reference     CHAR(36) NOT NULL,
  room_id       BIGINT NOT NULL,
  guest_name    VARCHAR(255) NOT NULL,
  guest_email   VARCHAR(255) NOT NULL,
  guest_phone   VARCHAR(64),
  checkin_date  VARCHAR(32) NOT NULL,
  checkout_date VARCHAR(32) NOT NULL,
  guests        INT NOT NULL,
  created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
  KEY idx_bookings_room (room_id),
  KEY idx_bookings_created (created_at),
  CONSTRAINT fk_bookings_room FOREIGN KEY (room_id) REFERENCES rooms(id)
)
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

const listCitiesSQL = `SELECT DISTINCT city FROM hotels ORDER BY city ASC`

const listFeaturedSQL = `
SELECT id, name, city, description, image_url, rating, featured
FROM hotels
WHERE featured = 1
LIMIT ?`

const searchAllSQL = `
SELECT id, name, city, description, image_url, rating, featured
FROM hotels`

// Exact, case-sensitive match as stored; no fuzzy matching.
const searchByCitySQL = searchAllSQL + `
WHERE city = ?`

const getHotelSQL = `
SELECT id, name, city, description, image_url, rating, featured
FROM hotels
WHERE id = ?`

const listRoomsSQL = `
SELECT id, hotel_id, name, price_per_night, capacity, image_url
FROM rooms
WHERE hotel_id = ?
ORDER BY price_per_night ASC`

const getRoomSQL = `
SELECT id, hotel_id, name, price_per_night, capacity, image_url
FROM rooms
WHERE id = ?`

// -----------------------------------------------------------------------------
// BOOKING QUERIES
// -----------------------------------------------------------------------------

const insertBookingSQL = `
INSERT INTO bookings
  (reference, room_id, guest_name, guest_email, guest_phone, checkin_date, checkout_date, guests)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?)`

const getBookingSQL = `
SELECT b.id, b.reference, b.room_id, b.guest_name, b.guest_email, b.guest_phone,
       b.checkin_date, b.checkout_date, b.guests, b.created_at,
       r.name AS room_name, r.price_per_night,
       h.name AS hotel_name, h.city
FROM bookings b
JOIN rooms r  ON b.room_id = r.id
JOIN hotels h ON r.hotel_id = h.id
WHERE b.id = ?`

const listBookingsSQL = `
SELECT b.id, b.reference, b.room_id, b.guest_name, b.guest_email, b.guest_phone,
       b.checkin_date, b.checkout_date, b.guests, b.created_at,
       r.name AS room_name, r.price_per_night,
       h.name AS hotel_name, h.city
FROM bookings b
JOIN rooms r  ON b.room_id = r.id
JOIN hotels h ON r.hotel_id = h.id
ORDER BY b.created_at DESC, b.id DESC`

// -----------------------------------------------------------------------------
// SEED
// -----------------------------------------------------------------------------

const countHotelsSQL = `SELECT COUNT(*) FROM hotels`

const insertHotelSQL = `
INSERT INTO hotels (name, city, description, image_url, rating, featured)
VALUES (?, ?, ?, ?, ?, ?)`

const insertRoomSQL = `
INSERT INTO rooms (hotel_id, name, price_per_night, capacity, image_url)
VALUES (?, ?, ?, ?, ?)`
