package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rookgm/chefbazaar/internal/models"
	"github.com/rookgm/chefbazaar/internal/repository/postgres"
)

const (
	insertPaymentQuery = `
						INSERT INTO payments (transaction_id, session_id, amount_minor, currency, buyer_email, food_id, tracking_id, status)
						VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
						RETURNING id, created_at
`
	selectPaymentByTransactionIDQuery = `
						SELECT id, transaction_id, session_id, amount_minor, currency, buyer_email, food_id, tracking_id, status, created_at
						FROM payments
						WHERE transaction_id = $1
`
	selectPaymentsQuery = `
						SELECT id, transaction_id, session_id, amount_minor, currency, buyer_email, food_id, tracking_id, status, created_at
						FROM payments
						ORDER BY created_at DESC, id DESC
						OFFSET $1 LIMIT $2
`
)

// PaymentRepository stores reconciled payments
type PaymentRepository struct {
	db *postgres.DB
}

// NewPaymentRepository creates new PaymentRepository instance
func NewPaymentRepository(db *postgres.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// GetPaymentByTransactionID returns payment by provider transaction id
func (pr *PaymentRepository) GetPaymentByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error) {
	payment, err := scanPayment(pr.db.QueryRow(ctx, selectPaymentByTransactionIDQuery, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrDataNotFound
		}
		return nil, err
	}

	return payment, nil
}

// GetPayments returns payments, newest first
func (pr *PaymentRepository) GetPayments(ctx context.Context, page models.Page) ([]models.Payment, error) {
	rows, err := pr.db.Query(ctx, selectPaymentsQuery, page.Skip, page.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []models.Payment{}

	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, *payment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}

// CommitPayment inserts payment, moves order and meal to paid state and appends
// order_paid event in single transaction.
// Payment row is inserted first, so concurrent commit of the same transaction id
// fails on unique index with models.ErrConflictData and changes nothing.
func (pr *PaymentRepository) CommitPayment(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	err := pr.db.InTx(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, insertPaymentQuery,
			payment.TransactionID, payment.SessionID, payment.AmountMinor, payment.Currency,
			payment.BuyerEmail, payment.FoodID, payment.TrackingID, payment.Status,
		).Scan(&payment.ID, &payment.CreatedAt)
		if err != nil {
			if errCode := pr.db.ErrorCode(err); errCode == pgErrUniqueViolationCode {
				return models.ErrConflictData
			}
			return fmt.Errorf("insert payment: %w", err)
		}

		if err := markOrderPaid(ctx, tx, payment.TrackingID); err != nil {
			return fmt.Errorf("update order %s: %w", payment.TrackingID, err)
		}

		if err := markMealPaid(ctx, tx, payment.FoodID); err != nil {
			return fmt.Errorf("update meal %s: %w", payment.FoodID, err)
		}

		if _, err := appendEvent(ctx, tx, payment.TrackingID, models.TrackingOrderPaid); err != nil {
			return fmt.Errorf("append tracking event: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return payment, nil
}

func scanPayment(row pgx.Row) (*models.Payment, error) {
	payment := models.Payment{}
	err := row.Scan(&payment.ID, &payment.TransactionID, &payment.SessionID, &payment.AmountMinor, &payment.Currency,
		&payment.BuyerEmail, &payment.FoodID, &payment.TrackingID, &payment.Status, &payment.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}
