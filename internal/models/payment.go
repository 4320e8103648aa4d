package models

import (
	"math"
	"time"
)

// checkout session metadata keys
const (
	MetadataTrackingID = "trackingId"
	MetadataFoodID     = "foodId"
	MetadataBuyerEmail = "buyerEmail"
	MetadataBuyerName  = "buyerName"
	MetadataMealName   = "mealName"
)

// Payment is the proof that provider transaction has been reconciled.
// TransactionID is unique.
type Payment struct {
	ID            uint64
	TransactionID string
	SessionID     string
	AmountMinor   int64
	Currency      string
	BuyerEmail    string
	FoodID        string
	TrackingID    string
	Status        string
	CreatedAt     time.Time
}

// Amount returns amount in major currency units
func (p Payment) Amount() float64 {
	return float64(p.AmountMinor) / 100
}

// MaxPriceMinor is the largest price in minor units that NUMERIC(12,2) columns hold
const MaxPriceMinor = 999_999_999_999

// ToMinorUnits converts price to minor currency units, fractional cents are rounded
func ToMinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// CheckoutRequest describes the charge for provider session
type CheckoutRequest struct {
	Price      float64
	MealName   string
	BuyerEmail string
	BuyerName  string
	FoodID     string
	TrackingID string
}

// CheckoutSession is provider-hosted checkout session
type CheckoutSession struct {
	ID         string
	URL        string
	TrackingID string
}

// ProviderSession is authoritative session record retrieved from provider
type ProviderSession struct {
	ID              string
	PaymentStatus   string
	PaymentIntentID string
	AmountTotal     int64
	Currency        string
	Metadata        map[string]string
}

// Reconciliation is the outcome of payment confirmation
type Reconciliation struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transactionId,omitempty"`
	TrackingID    string `json:"trackingId,omitempty"`
	Modified      bool   `json:"modified,omitempty"`
}

// OrderPaidEvent is published when order payment has been reconciled
type OrderPaidEvent struct {
	TrackingID    string    `json:"trackingId"`
	TransactionID string    `json:"transactionId"`
	FoodID        string    `json:"foodId"`
	BuyerEmail    string    `json:"buyerEmail"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	PaidAt        time.Time `json:"paidAt"`
}
