package models

import (
	"strings"
	"time"
)

// tracking event status codes
const (
	TrackingOrderCreated = "order_created"
	TrackingOrderPaid    = "order_paid"
)

// TrackingEvent is immutable lifecycle event of order
type TrackingEvent struct {
	ID         uint64
	TrackingID string
	Status     string
	Detail     string
	CreatedAt  time.Time
}

// TrackingDetail makes human-readable detail from status code
func TrackingDetail(status string) string {
	return strings.ReplaceAll(status, "_", " ")
}
