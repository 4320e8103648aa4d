package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rookgm/chefbazaar/internal/logger"
	"github.com/rookgm/chefbazaar/internal/metrics"
	"github.com/rookgm/chefbazaar/internal/models"
	"go.uber.org/zap"
)

// PaymentService reconciles completed checkout sessions with orders
type PaymentService struct {
	payments  PaymentRepository
	provider  PaymentProvider
	cache     ReconciliationCache
	publisher EventPublisher
}

// PaymentOption configures PaymentService
type PaymentOption func(*PaymentService)

// WithReconciliationCache serves repeated confirmations of the same session from cache
func WithReconciliationCache(cache ReconciliationCache) PaymentOption {
	return func(ps *PaymentService) {
		ps.cache = cache
	}
}

// WithEventPublisher publishes order paid events after commit
func WithEventPublisher(publisher EventPublisher) PaymentOption {
	return func(ps *PaymentService) {
		ps.publisher = publisher
	}
}

// NewPaymentService creates new PaymentService instance
func NewPaymentService(payments PaymentRepository, provider PaymentProvider, opts ...PaymentOption) *PaymentService {
	ps := &PaymentService{
		payments: payments,
		provider: provider,
	}
	for _, opt := range opts {
		opt(ps)
	}
	return ps
}

// Reconcile confirms payment of checkout session exactly once.
//
// Session is always read from provider, client supplies only its id.
// Provider transaction id is the idempotency key: if payment with this id exists,
// stored outcome is returned and nothing changes. Otherwise payment, order and meal
// update and order_paid event are committed in one transaction. A concurrent
// reconciliation that loses the race on the unique index gets the winner's outcome.
// Unpaid sessions change nothing and are not an error, client may poll again.
func (ps *PaymentService) Reconcile(ctx context.Context, sessionID string) (*models.Reconciliation, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, models.ValidationError("session_id", "is required")
	}

	if rec, ok := ps.cached(ctx, sessionID); ok {
		metrics.ReconciliationsTotal.WithLabelValues(metrics.OutcomeCached).Inc()
		return rec, nil
	}

	session, err := ps.provider.RetrieveSession(ctx, sessionID)
	if err != nil {
		metrics.ReconciliationsTotal.WithLabelValues(metrics.OutcomeFailed).Inc()
		return nil, err
	}

	// provider creates payment intent only when buyer submits payment
	transactionID := session.PaymentIntentID

	if transactionID != "" {
		existing, err := ps.payments.GetPaymentByTransactionID(ctx, transactionID)
		switch {
		case err == nil:
			return ps.duplicate(ctx, sessionID, existing), nil
		case !errors.Is(err, models.ErrDataNotFound):
			metrics.ReconciliationsTotal.WithLabelValues(metrics.OutcomeFailed).Inc()
			return nil, fmt.Errorf("get payment %s: %w", transactionID, err)
		}
	}

	if session.PaymentStatus != models.PaymentStatusPaid || transactionID == "" {
		logger.Log.Debug("checkout session is not paid yet",
			zap.String("session_id", sessionID),
			zap.String("payment_status", session.PaymentStatus))
		metrics.ReconciliationsTotal.WithLabelValues(metrics.OutcomeUnpaid).Inc()
		return &models.Reconciliation{Success: true}, nil
	}

	trackingID := session.Metadata[models.MetadataTrackingID]
	if trackingID == "" {
		metrics.ReconciliationsTotal.WithLabelValues(metrics.OutcomeFailed).Inc()
		return nil, models.ValidationError("session", "has no tracking id")
	}

	payment, err := ps.payments.CommitPayment(ctx, &models.Payment{
		TransactionID: transactionID,
		SessionID:     session.ID,
		AmountMinor:   session.AmountTotal,
		Currency:      session.Currency,
		BuyerEmail:    session.Metadata[models.MetadataBuyerEmail],
		FoodID:        session.Metadata[models.MetadataFoodID],
		TrackingID:    trackingID,
		Status:        models.PaymentStatusPaid,
	})
	if err != nil {
		if errors.Is(err, models.ErrConflictData) {
			winner, err := ps.payments.GetPaymentByTransactionID(ctx, transactionID)
			if err != nil {
				metrics.ReconciliationsTotal.WithLabelValues(metrics.OutcomeFailed).Inc()
				return nil, fmt.Errorf("get payment %s after conflict: %w", transactionID, err)
			}
			return ps.duplicate(ctx, sessionID, winner), nil
		}
		metrics.ReconciliationsTotal.WithLabelValues(metrics.OutcomeFailed).Inc()
		return nil, fmt.Errorf("commit payment %s: %w", transactionID, err)
	}

	metrics.ReconciliationsTotal.WithLabelValues(metrics.OutcomeReconciled).Inc()
	logger.Log.Info("payment has been reconciled",
		zap.String("session_id", sessionID),
		zap.String("transaction_id", payment.TransactionID),
		zap.String("tracking_id", payment.TrackingID),
		zap.Int64("amount_minor", payment.AmountMinor))

	ps.remember(ctx, sessionID, payment)
	ps.publish(ctx, payment)

	return &models.Reconciliation{
		Success:       true,
		TransactionID: payment.TransactionID,
		TrackingID:    payment.TrackingID,
		Modified:      true,
	}, nil
}

// ListPayments returns reconciled payments, newest first
func (ps *PaymentService) ListPayments(ctx context.Context, page models.Page) ([]models.Payment, error) {
	return ps.payments.GetPayments(ctx, page.Normalize())
}

func (ps *PaymentService) duplicate(ctx context.Context, sessionID string, payment *models.Payment) *models.Reconciliation {
	metrics.ReconciliationsTotal.WithLabelValues(metrics.OutcomeDuplicate).Inc()
	logger.Log.Debug("payment has already been reconciled",
		zap.String("session_id", sessionID),
		zap.String("transaction_id", payment.TransactionID))

	ps.remember(ctx, sessionID, payment)

	return &models.Reconciliation{
		Success:       true,
		TransactionID: payment.TransactionID,
		TrackingID:    payment.TrackingID,
	}
}

func (ps *PaymentService) cached(ctx context.Context, sessionID string) (*models.Reconciliation, bool) {
	if ps.cache == nil {
		return nil, false
	}

	rec, ok, err := ps.cache.Get(ctx, sessionID)
	if err != nil {
		logger.Log.Warn("read reconciliation cache", zap.String("session_id", sessionID), zap.Error(err))
		return nil, false
	}

	return rec, ok
}

func (ps *PaymentService) remember(ctx context.Context, sessionID string, payment *models.Payment) {
	if ps.cache == nil {
		return
	}

	rec := models.Reconciliation{
		Success:       true,
		TransactionID: payment.TransactionID,
		TrackingID:    payment.TrackingID,
	}
	if err := ps.cache.Set(ctx, sessionID, rec); err != nil {
		logger.Log.Warn("write reconciliation cache", zap.String("session_id", sessionID), zap.Error(err))
	}
}

// publish is best-effort, reconciliation is already committed
func (ps *PaymentService) publish(ctx context.Context, payment *models.Payment) {
	if ps.publisher == nil {
		return
	}

	err := ps.publisher.PublishOrderPaid(ctx, models.OrderPaidEvent{
		TrackingID:    payment.TrackingID,
		TransactionID: payment.TransactionID,
		FoodID:        payment.FoodID,
		BuyerEmail:    payment.BuyerEmail,
		Amount:        payment.Amount(),
		Currency:      payment.Currency,
		PaidAt:        payment.CreatedAt.UTC(),
	})
	if err != nil {
		logger.Log.Error("publish order paid event",
			zap.String("tracking_id", payment.TrackingID),
			zap.Error(err))
	}
}
