package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/rookgm/chefbazaar/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
)

type fakeSessions struct {
	created *stripe.CheckoutSessionParams
	session *stripe.CheckoutSession
	err     error
	gotID   string
	expired string
}

func (f *fakeSessions) New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	f.created = params
	if f.err != nil {
		return nil, f.err
	}
	return f.session, nil
}

func (f *fakeSessions) Get(id string, _ *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	f.gotID = id
	if f.err != nil {
		return nil, f.err
	}
	return f.session, nil
}

func (f *fakeSessions) Expire(id string, _ *stripe.CheckoutSessionExpireParams) (*stripe.CheckoutSession, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.expired = id
	return &stripe.CheckoutSession{ID: id, Status: stripe.CheckoutSessionStatusExpired}, nil
}

func newTestProvider(f *fakeSessions) *StripeProvider {
	return &StripeProvider{
		sessions:   f,
		currency:   "usd",
		successURL: "https://chef.example/success?session_id={CHECKOUT_SESSION_ID}",
		cancelURL:  "https://chef.example/cancel",
	}
}

func TestStripeProvider_CreateSession(t *testing.T) {
	f := &fakeSessions{session: &stripe.CheckoutSession{ID: "cs_test_1", URL: "https://checkout.stripe.com/c/cs_test_1"}}
	sp := newTestProvider(f)

	got, err := sp.CreateSession(context.Background(), models.CheckoutRequest{
		Price:      12.50,
		MealName:   "Chicken Biryani",
		BuyerEmail: "buyer@example.com",
		BuyerName:  "Rahim",
		FoodID:     "meal-1",
		TrackingID: "PKG-20261019-0A1B2C3D",
	})
	require.NoError(t, err)
	assert.Equal(t, &models.CheckoutSession{
		ID:         "cs_test_1",
		URL:        "https://checkout.stripe.com/c/cs_test_1",
		TrackingID: "PKG-20261019-0A1B2C3D",
	}, got)

	params := f.created
	require.NotNil(t, params)
	assert.Equal(t, "payment", *params.Mode)
	assert.Equal(t, "buyer@example.com", *params.CustomerEmail)
	assert.Equal(t, "https://chef.example/cancel", *params.CancelURL)
	require.Len(t, params.LineItems, 1)
	assert.Equal(t, int64(1250), *params.LineItems[0].PriceData.UnitAmount)
	assert.Equal(t, "usd", *params.LineItems[0].PriceData.Currency)
	assert.Equal(t, "Chicken Biryani", *params.LineItems[0].PriceData.ProductData.Name)
	assert.Equal(t, int64(1), *params.LineItems[0].Quantity)
	assert.Equal(t, map[string]string{
		models.MetadataTrackingID: "PKG-20261019-0A1B2C3D",
		models.MetadataFoodID:     "meal-1",
		models.MetadataBuyerEmail: "buyer@example.com",
		models.MetadataBuyerName:  "Rahim",
		models.MetadataMealName:   "Chicken Biryani",
	}, params.Metadata)
}

func TestStripeProvider_CreateSession_RoundsPrice(t *testing.T) {
	f := &fakeSessions{session: &stripe.CheckoutSession{ID: "cs_test_2"}}
	sp := newTestProvider(f)

	_, err := sp.CreateSession(context.Background(), models.CheckoutRequest{Price: 19.99, MealName: "Soup"})
	require.NoError(t, err)
	assert.Equal(t, int64(1999), *f.created.LineItems[0].PriceData.UnitAmount)
}

func TestStripeProvider_CreateSession_Error(t *testing.T) {
	f := &fakeSessions{err: &stripe.Error{HTTPStatusCode: 400, Code: stripe.ErrorCodeAmountTooSmall, Msg: "Amount must be at least $0.50"}}
	sp := newTestProvider(f)

	_, err := sp.CreateSession(context.Background(), models.CheckoutRequest{Price: 0.1, MealName: "Tea"})
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrProvider)
	assert.Contains(t, err.Error(), "Amount must be at least $0.50")
}

func TestStripeProvider_RetrieveSession(t *testing.T) {
	f := &fakeSessions{session: &stripe.CheckoutSession{
		ID:            "cs_test_1",
		PaymentStatus: stripe.CheckoutSessionPaymentStatusPaid,
		PaymentIntent: &stripe.PaymentIntent{ID: "pi_abc"},
		AmountTotal:   1250,
		Currency:      stripe.CurrencyUSD,
		Metadata:      map[string]string{models.MetadataTrackingID: "PKG-20261019-0A1B2C3D"},
	}}
	sp := newTestProvider(f)

	got, err := sp.RetrieveSession(context.Background(), "cs_test_1")
	require.NoError(t, err)
	assert.Equal(t, "cs_test_1", f.gotID)
	assert.Equal(t, &models.ProviderSession{
		ID:              "cs_test_1",
		PaymentStatus:   "paid",
		PaymentIntentID: "pi_abc",
		AmountTotal:     1250,
		Currency:        "usd",
		Metadata:        map[string]string{models.MetadataTrackingID: "PKG-20261019-0A1B2C3D"},
	}, got)
}

func TestStripeProvider_RetrieveSession_Unpaid(t *testing.T) {
	f := &fakeSessions{session: &stripe.CheckoutSession{
		ID:            "cs_test_3",
		PaymentStatus: stripe.CheckoutSessionPaymentStatusUnpaid,
	}}
	sp := newTestProvider(f)

	got, err := sp.RetrieveSession(context.Background(), "cs_test_3")
	require.NoError(t, err)
	assert.Equal(t, "unpaid", got.PaymentStatus)
	assert.Empty(t, got.PaymentIntentID)
	assert.NotNil(t, got.Metadata)
}

func TestStripeProvider_RetrieveSession_Error(t *testing.T) {
	cause := errors.New("dial tcp: i/o timeout")
	sp := newTestProvider(&fakeSessions{err: cause})

	_, err := sp.RetrieveSession(context.Background(), "cs_missing")
	assert.ErrorIs(t, err, models.ErrProvider)
	assert.ErrorIs(t, err, cause)
}

func TestStripeProvider_ExpireSession(t *testing.T) {
	f := &fakeSessions{}
	sp := newTestProvider(f)

	require.NoError(t, sp.ExpireSession(context.Background(), "cs_test_1"))
	assert.Equal(t, "cs_test_1", f.expired)
}

func TestStripeProvider_ExpireSession_Error(t *testing.T) {
	f := &fakeSessions{err: &stripe.Error{HTTPStatusCode: 400, Msg: "Only Checkout Sessions with a status of open can be expired"}}
	sp := newTestProvider(f)

	err := sp.ExpireSession(context.Background(), "cs_test_1")
	assert.ErrorIs(t, err, models.ErrProvider)
	assert.Empty(t, f.expired)
}
