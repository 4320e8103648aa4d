// Package payment adapts Stripe Checkout to the payment provider contract used by
// checkout and reconciliation services.
package payment

import (
	"context"
	"errors"

	"github.com/rookgm/chefbazaar/internal/models"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
)

// sessionBackend is implemented by *session.Client
type sessionBackend interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	Get(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	Expire(id string, params *stripe.CheckoutSessionExpireParams) (*stripe.CheckoutSession, error)
}

// StripeProvider creates and retrieves Stripe checkout sessions
type StripeProvider struct {
	sessions   sessionBackend
	currency   string
	successURL string
	cancelURL  string
}

// NewStripeProvider creates new StripeProvider instance
func NewStripeProvider(secretKey, currency, successURL, cancelURL string) *StripeProvider {
	return &StripeProvider{
		sessions: &session.Client{
			B:   stripe.GetBackend(stripe.APIBackend),
			Key: secretKey,
		},
		currency:   currency,
		successURL: successURL,
		cancelURL:  cancelURL,
	}
}

// CreateSession opens hosted checkout session for single meal
func (sp *StripeProvider) CreateSession(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutSession, error) {
	params := sp.sessionParams(req)
	params.Context = ctx

	s, err := sp.sessions.New(params)
	if err != nil {
		return nil, models.NewProviderError("create session", describe(err))
	}

	return &models.CheckoutSession{
		ID:         s.ID,
		URL:        s.URL,
		TrackingID: req.TrackingID,
	}, nil
}

// RetrieveSession returns session as Stripe knows it
func (sp *StripeProvider) RetrieveSession(ctx context.Context, id string) (*models.ProviderSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	s, err := sp.sessions.Get(id, params)
	if err != nil {
		return nil, models.NewProviderError("retrieve session", describe(err))
	}

	return toProviderSession(s), nil
}

// ExpireSession expires open session, buyer can no longer pay it
func (sp *StripeProvider) ExpireSession(ctx context.Context, id string) error {
	params := &stripe.CheckoutSessionExpireParams{}
	params.Context = ctx

	if _, err := sp.sessions.Expire(id, params); err != nil {
		return models.NewProviderError("expire session", describe(err))
	}

	return nil
}

func (sp *StripeProvider) sessionParams(req models.CheckoutRequest) *stripe.CheckoutSessionParams {
	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail: stripe.String(req.BuyerEmail),
		SuccessURL:    stripe.String(sp.successURL),
		CancelURL:     stripe.String(sp.cancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(sp.currency),
					UnitAmount: stripe.Int64(models.ToMinorUnits(req.Price)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.MealName),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}

	params.AddMetadata(models.MetadataTrackingID, req.TrackingID)
	params.AddMetadata(models.MetadataFoodID, req.FoodID)
	params.AddMetadata(models.MetadataBuyerEmail, req.BuyerEmail)
	params.AddMetadata(models.MetadataBuyerName, req.BuyerName)
	params.AddMetadata(models.MetadataMealName, req.MealName)

	return params
}

func toProviderSession(s *stripe.CheckoutSession) *models.ProviderSession {
	ps := &models.ProviderSession{
		ID:            s.ID,
		PaymentStatus: string(s.PaymentStatus),
		AmountTotal:   s.AmountTotal,
		Currency:      string(s.Currency),
		Metadata:      s.Metadata,
	}
	if s.PaymentIntent != nil {
		ps.PaymentIntentID = s.PaymentIntent.ID
	}
	if ps.Metadata == nil {
		ps.Metadata = map[string]string{}
	}
	return ps
}

// describe keeps Stripe message and request id, the rest of stripe.Error is noise in logs
func describe(err error) error {
	var se *stripe.Error
	if errors.As(err, &se) {
		return &providerFailure{
			status:    se.HTTPStatusCode,
			code:      string(se.Code),
			msg:       se.Msg,
			requestID: se.RequestID,
		}
	}
	return err
}
