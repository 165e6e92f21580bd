package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/eventbook/eventbook-go/internal/model"
)

var ErrEventNotFound = errors.New("event not found")

const eventColumns = `id, user_id, title, description, date, time, created_at, updated_at`

// EventRepository handles event persistence. Every query is scoped by the
// owning user's id, so events are never visible or mutable across owners;
// no caller re-implements that filter.
type EventRepository struct {
	db *sql.DB
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create inserts a new event and sets the generated ID on the event struct.
func (r *EventRepository) Create(ctx context.Context, event *model.Event) error {
	now := time.Now()
	query := `INSERT INTO events (user_id, title, description, date, time, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		event.UserID, event.Title, event.Description,
		event.Date, event.Time, now.Unix(), now.Unix(),
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	event.ID = id
	event.CreatedAt = now
	event.UpdatedAt = now
	return nil
}

// ListByOwner retrieves all events owned by the given user, ordered by id.
func (r *EventRepository) ListByOwner(ctx context.Context, userID int64) ([]model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE user_id = ? ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		event, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, err
		}
		events = append(events, *event)
	}

	return events, rows.Err()
}

// GetByOwner retrieves a single event by id, only if the given user owns
// it. Returns ErrEventNotFound otherwise, whether the event belongs to
// someone else or does not exist at all.
func (r *EventRepository) GetByOwner(ctx context.Context, userID, eventID int64) (*model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = ? AND user_id = ?`

	event, err := scanEvent(r.db.QueryRowContext(ctx, query, eventID, userID).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	return event, nil
}

// Update persists the mutable fields of an event, scoped by owner.
// Existence is established by the preceding GetByOwner; affected-row
// counts are not checked because MySQL reports zero for a no-change
// update.
func (r *EventRepository) Update(ctx context.Context, event *model.Event) error {
	now := time.Now()
	query := `UPDATE events SET title = ?, description = ?, date = ?, time = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`

	_, err := r.db.ExecContext(ctx, query,
		event.Title, event.Description, event.Date, event.Time,
		now.Unix(), event.ID, event.UserID,
	)
	if err != nil {
		return err
	}

	event.UpdatedAt = now
	return nil
}

// Delete removes an event by id, only if the given user owns it. Returns
// ErrEventNotFound under the same contract as GetByOwner.
func (r *EventRepository) Delete(ctx context.Context, userID, eventID int64) error {
	query := `DELETE FROM events WHERE id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query, eventID, userID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrEventNotFound
	}

	return nil
}

func scanEvent(scan func(dest ...any) error) (*model.Event, error) {
	event := &model.Event{}
	var eventTime sql.NullString
	var created, updated int64

	err := scan(
		&event.ID, &event.UserID, &event.Title, &event.Description,
		&event.Date, &eventTime, &created, &updated,
	)
	if err != nil {
		return nil, err
	}

	if eventTime.Valid {
		event.Time = &eventTime.String
	}
	event.CreatedAt = time.Unix(created, 0)
	event.UpdatedAt = time.Unix(updated, 0)
	return event, nil
}
