package service

import (
	"context"

	"github.com/rookgm/chefbazaar/internal/models"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks github.com/rookgm/chefbazaar/internal/service OrderRepository,MealRepository,TrackingRepository,PaymentRepository,PaymentProvider,IDGenerator

// OrderRepository is interface for interacting with order-related data
type OrderRepository interface {
	// CreateOrder inserts new order to database
	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	// GetOrderByTrackingID returns order by tracking id
	GetOrderByTrackingID(ctx context.Context, trackingID string) (*models.Order, error)
	// GetOrdersByBuyer returns buyer orders, newest first
	GetOrdersByBuyer(ctx context.Context, email string, page models.Page) ([]models.Order, error)
}

// MealRepository gives read access to catalog meals
type MealRepository interface {
	// GetMeal returns meal by id
	GetMeal(ctx context.Context, id string) (*models.Meal, error)
}

// TrackingRepository is append-only log of lifecycle events
type TrackingRepository interface {
	// AppendEvent appends event for tracking id
	AppendEvent(ctx context.Context, trackingID, status string) (*models.TrackingEvent, error)
	// GetEvents returns events for tracking id in order of creation
	GetEvents(ctx context.Context, trackingID string) ([]models.TrackingEvent, error)
}

// PaymentRepository stores reconciled payments
type PaymentRepository interface {
	// GetPaymentByTransactionID returns payment by provider transaction id
	GetPaymentByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error)
	// GetPayments returns payments, newest first
	GetPayments(ctx context.Context, page models.Page) ([]models.Payment, error)
	// CommitPayment stores payment and applies order transition atomically
	CommitPayment(ctx context.Context, payment *models.Payment) (*models.Payment, error)
}

// PaymentProvider is hosted checkout provider
type PaymentProvider interface {
	// CreateSession opens checkout session
	CreateSession(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutSession, error)
	// RetrieveSession returns authoritative session record
	RetrieveSession(ctx context.Context, id string) (*models.ProviderSession, error)
	// ExpireSession closes open session so it can no longer be paid
	ExpireSession(ctx context.Context, id string) error
}

// IDGenerator makes tracking identifiers
type IDGenerator interface {
	NewID() (string, error)
}

// ReconciliationCache keeps reconciliation outcomes by session id
type ReconciliationCache interface {
	Get(ctx context.Context, sessionID string) (*models.Reconciliation, bool, error)
	Set(ctx context.Context, sessionID string, rec models.Reconciliation) error
}

// EventPublisher notifies other services about paid orders
type EventPublisher interface {
	PublishOrderPaid(ctx context.Context, event models.OrderPaidEvent) error
}
