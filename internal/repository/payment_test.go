package repository

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/rookgm/chefbazaar/internal/models"
	"github.com/rookgm/chefbazaar/internal/repository/postgres"
	"github.com/rookgm/chefbazaar/internal/tracking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestDB connects to DATABASE_URI and applies migrations
func newTestDB(t *testing.T) *postgres.DB {
	t.Helper()

	dsn := os.Getenv("DATABASE_URI")
	if dsn == "" {
		t.Skip("DATABASE_URI is not set")
	}

	db, err := postgres.New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, db.Migrate())

	return db
}

// seedOrder stores meal and unpaid order for it
func seedOrder(t *testing.T, db *postgres.DB) *models.Order {
	t.Helper()
	ctx := context.Background()

	foodID := "meal-" + uuid.NewString()
	_, err := db.Exec(ctx, `INSERT INTO meals (id, name, price) VALUES ($1, $2, $3)`, foodID, "Chicken Biryani", 12.50)
	require.NoError(t, err)

	trackingID, err := tracking.NewGenerator().NewID()
	require.NoError(t, err)

	order, err := NewOrderRepository(db).CreateOrder(ctx, &models.Order{
		BuyerEmail:    "buyer@example.com",
		FoodID:        foodID,
		MealName:      "Chicken Biryani",
		Price:         12.50,
		TrackingID:    trackingID,
		Status:        models.OrderStatusCreated,
		PaymentStatus: models.PaymentStatusPending,
	})
	require.NoError(t, err)

	return order
}

func paymentFor(order *models.Order, transactionID string) *models.Payment {
	return &models.Payment{
		TransactionID: transactionID,
		SessionID:     "cs_test_" + transactionID,
		AmountMinor:   models.ToMinorUnits(order.Price),
		Currency:      "usd",
		BuyerEmail:    order.BuyerEmail,
		FoodID:        order.FoodID,
		TrackingID:    order.TrackingID,
		Status:        models.PaymentStatusPaid,
	}
}

func countRows(t *testing.T, db *postgres.DB, query string, args ...any) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

func TestPaymentRepository_CommitPayment_Concurrent(t *testing.T) {
	const callers = 16

	db := newTestDB(t)
	order := seedOrder(t, db)
	payments := NewPaymentRepository(db)
	transactionID := "pi_" + uuid.NewString()

	var (
		start = make(chan struct{})
		wg    sync.WaitGroup
		errs  = make([]error, callers)
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, errs[i] = payments.CommitPayment(context.Background(), paymentFor(order, transactionID))
		}(i)
	}
	close(start)
	wg.Wait()

	committed, conflicts := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			committed++
		case errors.Is(err, models.ErrConflictData):
			conflicts++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, committed)
	assert.Equal(t, callers-1, conflicts)

	assert.Equal(t, 1, countRows(t, db, `SELECT count(*) FROM payments WHERE transaction_id = $1`, transactionID))
	assert.Equal(t, 1, countRows(t, db, `SELECT count(*) FROM tracking_events WHERE tracking_id = $1 AND status = $2`,
		order.TrackingID, models.TrackingOrderPaid))

	got, err := NewOrderRepository(db).GetOrderByTrackingID(context.Background(), order.TrackingID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPendingPickup, got.Status)
	assert.Equal(t, models.PaymentStatusPaid, got.PaymentStatus)

	meal, err := NewMealRepository(db).GetMeal(context.Background(), order.FoodID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, meal.PaymentStatus)

	stored, err := payments.GetPaymentByTransactionID(context.Background(), transactionID)
	require.NoError(t, err)
	assert.Equal(t, int64(1250), stored.AmountMinor)
	assert.Equal(t, order.TrackingID, stored.TrackingID)
}

func TestPaymentRepository_CommitPayment_RollsBack(t *testing.T) {
	db := newTestDB(t)
	payments := NewPaymentRepository(db)

	t.Run("order_paid_by_other_transaction", func(t *testing.T) {
		order := seedOrder(t, db)

		_, err := payments.CommitPayment(context.Background(), paymentFor(order, "pi_"+uuid.NewString()))
		require.NoError(t, err)

		second := "pi_" + uuid.NewString()
		_, err = payments.CommitPayment(context.Background(), paymentFor(order, second))
		assert.ErrorIs(t, err, models.ErrOrderPaid)

		assert.Equal(t, 0, countRows(t, db, `SELECT count(*) FROM payments WHERE transaction_id = $1`, second))
		assert.Equal(t, 1, countRows(t, db, `SELECT count(*) FROM tracking_events WHERE tracking_id = $1 AND status = $2`,
			order.TrackingID, models.TrackingOrderPaid))
	})

	t.Run("unknown_order", func(t *testing.T) {
		order := seedOrder(t, db)
		trackingID, err := tracking.NewGenerator().NewID()
		require.NoError(t, err)
		order.TrackingID = trackingID

		transactionID := "pi_" + uuid.NewString()
		_, err = payments.CommitPayment(context.Background(), paymentFor(order, transactionID))
		assert.ErrorIs(t, err, models.ErrDataNotFound)

		_, err = payments.GetPaymentByTransactionID(context.Background(), transactionID)
		assert.ErrorIs(t, err, models.ErrDataNotFound)
	})
}

func TestOrderRepository_CreateOrder_DuplicateTrackingID(t *testing.T) {
	db := newTestDB(t)
	order := seedOrder(t, db)

	dup := *order
	dup.ID = 0
	_, err := NewOrderRepository(db).CreateOrder(context.Background(), &dup)
	assert.ErrorIs(t, err, models.ErrConflictData)
}
