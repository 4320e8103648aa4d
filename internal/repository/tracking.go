package repository

import (
	"context"

	"github.com/rookgm/chefbazaar/internal/models"
	"github.com/rookgm/chefbazaar/internal/repository/postgres"
)

const (
	insertTrackingEventQuery = `
						INSERT INTO tracking_events (tracking_id, status, detail)
						VALUES ($1, $2, $3)
						RETURNING id, created_at
`
	selectTrackingEventsQuery = `
						SELECT id, tracking_id, status, detail, created_at FROM tracking_events
						WHERE tracking_id = $1
						ORDER BY created_at, id
`
)

// TrackingRepository is append-only log of order lifecycle events
type TrackingRepository struct {
	db *postgres.DB
}

// NewTrackingRepository creates new TrackingRepository instance
func NewTrackingRepository(db *postgres.DB) *TrackingRepository {
	return &TrackingRepository{db: db}
}

// AppendEvent appends event for tracking id
func (tr *TrackingRepository) AppendEvent(ctx context.Context, trackingID, status string) (*models.TrackingEvent, error) {
	return appendEvent(ctx, tr.db, trackingID, status)
}

// GetEvents returns events for tracking id in order of creation
func (tr *TrackingRepository) GetEvents(ctx context.Context, trackingID string) ([]models.TrackingEvent, error) {
	rows, err := tr.db.Query(ctx, selectTrackingEventsQuery, trackingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []models.TrackingEvent{}

	for rows.Next() {
		event := models.TrackingEvent{}
		if err := rows.Scan(&event.ID, &event.TrackingID, &event.Status, &event.Detail, &event.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

func appendEvent(ctx context.Context, q querier, trackingID, status string) (*models.TrackingEvent, error) {
	event := models.TrackingEvent{
		TrackingID: trackingID,
		Status:     status,
		Detail:     models.TrackingDetail(status),
	}

	err := q.QueryRow(ctx, insertTrackingEventQuery, event.TrackingID, event.Status, event.Detail).
		Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &event, nil
}
