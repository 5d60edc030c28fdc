package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"eventhub/internal/config"
	"eventhub/internal/models"
	"eventhub/internal/storage"

	"github.com/lib/pq"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = bootstrap(db); err != nil {
		return nil, fmt.Errorf("failed to prepare schema: %w", err)
	}

	return &Storage{DB: db}, nil
}

func bootstrap(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			roles TEXT[] NOT NULL DEFAULT '{guest}',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE TABLE IF NOT EXISTS locations (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			latitude DOUBLE PRECISION NOT NULL DEFAULT 0,
			longitude DOUBLE PRECISION NOT NULL DEFAULT 0
		);
		CREATE TABLE IF NOT EXISTS event_types (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE
		);
		CREATE TABLE IF NOT EXISTS events (
			id SERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			event_type_id INTEGER NOT NULL REFERENCES event_types(id),
			location_id INTEGER NOT NULL REFERENCES locations(id),
			starts_at TIMESTAMPTZ NOT NULL,
			ends_at TIMESTAMPTZ NOT NULL,
			user_id INTEGER NOT NULL REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE TABLE IF NOT EXISTS reservations (
			id SERIAL PRIMARY KEY,
			event_id INTEGER NOT NULL REFERENCES events(id),
			user_id INTEGER NOT NULL REFERENCES users(id),
			guests_count INTEGER NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE TABLE IF NOT EXISTS images (
			id SERIAL PRIMARY KEY,
			event_id INTEGER NOT NULL REFERENCES events(id),
			url TEXT NOT NULL,
			is_cover BOOLEAN NOT NULL DEFAULT FALSE
		);`

	_, err := db.Exec(schema)

	return err
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

// --- users ---

func (s *Storage) CreateUser(name, email, passwordHash string, roles []models.Role) (int, error) {
	query := `
		INSERT INTO users (name, email, password_hash, roles)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	roleStrs := make([]string, 0, len(roles))
	for _, r := range roles {
		roleStrs = append(roleStrs, string(r))
	}

	var id int
	err := s.DB.QueryRow(query, name, email, passwordHash, pq.Array(roleStrs)).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return 0, storage.ErrUserExists
		}
		return 0, fmt.Errorf("failed to create user: %w", err)
	}

	return id, nil
}

func (s *Storage) GetUser(id int) (*models.User, error) {
	query := `
		SELECT id, name, email, password_hash, roles, created_at
		FROM users
		WHERE id = $1`

	return s.scanUser(s.DB.QueryRow(query, id))
}

func (s *Storage) GetUserByEmail(email string) (*models.User, error) {
	query := `
		SELECT id, name, email, password_hash, roles, created_at
		FROM users
		WHERE email = $1`

	return s.scanUser(s.DB.QueryRow(query, email))
}

func (s *Storage) scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	var roleStrs []string

	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		pq.Array(&roleStrs),
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	for _, r := range roleStrs {
		user.Roles = append(user.Roles, models.Role(r))
	}

	return &user, nil
}

func (s *Storage) AddUserRole(userID int, role models.Role) error {
	query := `
		UPDATE users
		SET roles = array_append(roles, $2)
		WHERE id = $1 AND NOT ($2 = ANY(roles))`

	if _, err := s.DB.Exec(query, userID, string(role)); err != nil {
		return fmt.Errorf("failed to add user role: %w", err)
	}

	return nil
}

// --- events ---

func (s *Storage) CreateEvent(event *models.Event) (int, error) {
	query := `
		INSERT INTO events (title, description, event_type_id, location_id, starts_at, ends_at, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id int
	err := s.DB.QueryRow(query,
		event.Title,
		event.Description,
		event.EventTypeID,
		event.LocationID,
		event.StartsAt,
		event.EndsAt,
		event.UserID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create event: %w", err)
	}

	return id, nil
}

func (s *Storage) GetEvent(id int) (*models.Event, error) {
	query := `
		SELECT id, title, description, event_type_id, location_id, starts_at, ends_at, user_id, created_at
		FROM events
		WHERE id = $1`

	var event models.Event
	err := s.DB.QueryRow(query, id).Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.EventTypeID,
		&event.LocationID,
		&event.StartsAt,
		&event.EndsAt,
		&event.UserID,
		&event.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return &event, nil
}

func (s *Storage) UpdateEvent(event *models.Event) error {
	query := `
		UPDATE events
		SET title = $2, description = $3, event_type_id = $4, location_id = $5, starts_at = $6, ends_at = $7
		WHERE id = $1`

	res, err := s.DB.Exec(query,
		event.ID,
		event.Title,
		event.Description,
		event.EventTypeID,
		event.LocationID,
		event.StartsAt,
		event.EndsAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}

	if rows, _ := res.RowsAffected(); rows == 0 {
		return storage.ErrEventNotFound
	}

	return nil
}

// DeleteEvent removes the event together with its reservations and images
// in a single transaction.
func (s *Storage) DeleteEvent(id int) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.Exec(`DELETE FROM reservations WHERE event_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete event reservations: %w", err)
	}

	if _, err = tx.Exec(`DELETE FROM images WHERE event_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete event images: %w", err)
	}

	res, err := tx.Exec(`DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	if rows, _ := res.RowsAffected(); rows == 0 {
		return storage.ErrEventNotFound
	}

	return tx.Commit()
}

func (s *Storage) GetAllEvents() ([]models.Event, error) {
	query := `
		SELECT id, title, description, event_type_id, location_id, starts_at, ends_at, user_id, created_at
		FROM events
		ORDER BY starts_at ASC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var event models.Event
		err = rows.Scan(
			&event.ID,
			&event.Title,
			&event.Description,
			&event.EventTypeID,
			&event.LocationID,
			&event.StartsAt,
			&event.EndsAt,
			&event.UserID,
			&event.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}

		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

// --- reservations ---

func (s *Storage) SumGuestCounts(eventID int) (int, error) {
	query := `
		SELECT COALESCE(SUM(guests_count), 0)
		FROM reservations
		WHERE event_id = $1`

	var sum int
	if err := s.DB.QueryRow(query, eventID).Scan(&sum); err != nil {
		return 0, fmt.Errorf("failed to sum guest counts: %w", err)
	}

	return sum, nil
}

func (s *Storage) ReservationExists(eventID, userID int) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM reservations
			WHERE event_id = $1 AND user_id = $2
		)`

	var exists bool
	if err := s.DB.QueryRow(query, eventID, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check existing reservation: %w", err)
	}

	return exists, nil
}

func (s *Storage) CreateReservation(eventID, userID, guestsCount int) (int, error) {
	query := `
		INSERT INTO reservations (event_id, user_id, guests_count)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int
	if err := s.DB.QueryRow(query, eventID, userID, guestsCount).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to create reservation: %w", err)
	}

	return id, nil
}

func (s *Storage) GetReservation(id int) (*models.Reservation, error) {
	query := `
		SELECT id, event_id, user_id, guests_count, created_at, updated_at
		FROM reservations
		WHERE id = $1`

	var reservation models.Reservation
	err := s.DB.QueryRow(query, id).Scan(
		&reservation.ID,
		&reservation.EventID,
		&reservation.UserID,
		&reservation.GuestsCount,
		&reservation.CreatedAt,
		&reservation.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}

	return &reservation, nil
}

func (s *Storage) UpdateReservationGuests(id, guestsCount int) error {
	query := `
		UPDATE reservations
		SET guests_count = $2, updated_at = NOW()
		WHERE id = $1`

	res, err := s.DB.Exec(query, id, guestsCount)
	if err != nil {
		return fmt.Errorf("failed to update reservation: %w", err)
	}

	if rows, _ := res.RowsAffected(); rows == 0 {
		return storage.ErrReservationNotFound
	}

	return nil
}

func (s *Storage) DeleteReservation(id int) error {
	res, err := s.DB.Exec(`DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete reservation: %w", err)
	}

	if rows, _ := res.RowsAffected(); rows == 0 {
		return storage.ErrReservationNotFound
	}

	return nil
}

func (s *Storage) GetUserReservations(userID int) ([]models.Reservation, error) {
	query := `
		SELECT id, event_id, user_id, guests_count, created_at, updated_at
		FROM reservations
		WHERE user_id = $1
		ORDER BY created_at DESC`

	return s.queryReservations(query, userID)
}

func (s *Storage) GetEventReservations(eventID int) ([]models.Reservation, error) {
	query := `
		SELECT id, event_id, user_id, guests_count, created_at, updated_at
		FROM reservations
		WHERE event_id = $1
		ORDER BY created_at DESC`

	return s.queryReservations(query, eventID)
}

func (s *Storage) queryReservations(query string, arg int) ([]models.Reservation, error) {
	rows, err := s.DB.Query(query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to get reservations: %w", err)
	}
	defer rows.Close()

	var reservations []models.Reservation
	for rows.Next() {
		var reservation models.Reservation
		err = rows.Scan(
			&reservation.ID,
			&reservation.EventID,
			&reservation.UserID,
			&reservation.GuestsCount,
			&reservation.CreatedAt,
			&reservation.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reservation: %w", err)
		}

		reservations = append(reservations, reservation)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reservations: %w", err)
	}

	return reservations, nil
}

// --- locations ---

func (s *Storage) CreateLocation(location *models.Location) (int, error) {
	query := `
		INSERT INTO locations (name, latitude, longitude)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int
	err := s.DB.QueryRow(query, location.Name, location.Latitude, location.Longitude).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create location: %w", err)
	}

	return id, nil
}

func (s *Storage) GetLocation(id int) (*models.Location, error) {
	query := `
		SELECT id, name, latitude, longitude
		FROM locations
		WHERE id = $1`

	var location models.Location
	err := s.DB.QueryRow(query, id).Scan(
		&location.ID,
		&location.Name,
		&location.Latitude,
		&location.Longitude,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrLocationNotFound
		}
		return nil, fmt.Errorf("failed to get location: %w", err)
	}

	return &location, nil
}

func (s *Storage) GetAllLocations() ([]models.Location, error) {
	rows, err := s.DB.Query(`SELECT id, name, latitude, longitude FROM locations ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to get locations: %w", err)
	}
	defer rows.Close()

	var locations []models.Location
	for rows.Next() {
		var location models.Location
		if err = rows.Scan(&location.ID, &location.Name, &location.Latitude, &location.Longitude); err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}

		locations = append(locations, location)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating locations: %w", err)
	}

	return locations, nil
}

// --- event types ---

func (s *Storage) CreateEventType(name string) (int, error) {
	query := `
		INSERT INTO event_types (name)
		VALUES ($1)
		RETURNING id`

	var id int
	if err := s.DB.QueryRow(query, name).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to create event type: %w", err)
	}

	return id, nil
}

func (s *Storage) GetEventType(id int) (*models.EventType, error) {
	query := `
		SELECT id, name
		FROM event_types
		WHERE id = $1`

	var eventType models.EventType
	if err := s.DB.QueryRow(query, id).Scan(&eventType.ID, &eventType.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventTypeNotFound
		}
		return nil, fmt.Errorf("failed to get event type: %w", err)
	}

	return &eventType, nil
}

func (s *Storage) GetAllEventTypes() ([]models.EventType, error) {
	rows, err := s.DB.Query(`SELECT id, name FROM event_types ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to get event types: %w", err)
	}
	defer rows.Close()

	var eventTypes []models.EventType
	for rows.Next() {
		var eventType models.EventType
		if err = rows.Scan(&eventType.ID, &eventType.Name); err != nil {
			return nil, fmt.Errorf("failed to scan event type: %w", err)
		}

		eventTypes = append(eventTypes, eventType)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event types: %w", err)
	}

	return eventTypes, nil
}

// --- images ---

func (s *Storage) AddImage(eventID int, url string, isCover bool) (int, error) {
	query := `
		INSERT INTO images (event_id, url, is_cover)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int
	if err := s.DB.QueryRow(query, eventID, url, isCover).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to add image: %w", err)
	}

	return id, nil
}

// SetCoverImage marks one of the event's images as cover and unmarks the
// rest, atomically.
func (s *Storage) SetCoverImage(eventID, imageID int) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.Exec(`UPDATE images SET is_cover = FALSE WHERE event_id = $1`, eventID); err != nil {
		return fmt.Errorf("failed to reset cover images: %w", err)
	}

	res, err := tx.Exec(`UPDATE images SET is_cover = TRUE WHERE id = $1 AND event_id = $2`, imageID, eventID)
	if err != nil {
		return fmt.Errorf("failed to set cover image: %w", err)
	}

	if rows, _ := res.RowsAffected(); rows == 0 {
		return storage.ErrImageNotFound
	}

	return tx.Commit()
}

func (s *Storage) GetEventImages(eventID int) ([]models.Image, error) {
	rows, err := s.DB.Query(`SELECT id, event_id, url, is_cover FROM images WHERE event_id = $1 ORDER BY id ASC`, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get images: %w", err)
	}
	defer rows.Close()

	var images []models.Image
	for rows.Next() {
		var image models.Image
		if err = rows.Scan(&image.ID, &image.EventID, &image.URL, &image.IsCover); err != nil {
			return nil, fmt.Errorf("failed to scan image: %w", err)
		}

		images = append(images, image)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating images: %w", err)
	}

	return images, nil
}
