package models

import "time"

// created — заказ оформлен, оплата не подтверждена;
// pending-pickup — оплата подтверждена, заказ ждёт выдачи курьеру.

// order status
const (
	OrderStatusCreated       = "created"
	OrderStatusPendingPickup = "pending-pickup"
)

// payment status
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
)

// Order is order entity
type Order struct {
	ID            uint64
	BuyerEmail    string
	BuyerName     string
	FoodID        string
	MealName      string
	Price         float64
	TrackingID    string
	Status        string
	PaymentStatus string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Page limits list queries
type Page struct {
	Skip  int
	Limit int
}

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Normalize clamps skip and limit to allowed range
func (p Page) Normalize() Page {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}
