package service

import (
	"context"
	"fmt"

	"github.com/rookgm/chefbazaar/internal/logger"
	"github.com/rookgm/chefbazaar/internal/metrics"
	"github.com/rookgm/chefbazaar/internal/models"
	"github.com/rookgm/chefbazaar/internal/tracking"
	"go.uber.org/zap"
)

// CheckoutService opens hosted checkout sessions for orders
type CheckoutService struct {
	provider PaymentProvider
	orders   OrderRepository
	meals    MealRepository
	tracking TrackingRepository
	ids      IDGenerator
}

// NewCheckoutService creates new CheckoutService instance
func NewCheckoutService(provider PaymentProvider, orders OrderRepository, meals MealRepository, tracking TrackingRepository, ids IDGenerator) *CheckoutService {
	return &CheckoutService{
		provider: provider,
		orders:   orders,
		meals:    meals,
		tracking: tracking,
		ids:      ids,
	}
}

// CreateSession opens provider session carrying order metadata.
// With tracking id the session pays for existing order in created state.
// Without it, tracking id is generated and the order is stored only after provider
// has accepted the session.
func (cs *CheckoutService) CreateSession(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutSession, error) {
	if err := validateOrder(req.Price, req.MealName, req.BuyerEmail, req.FoodID); err != nil {
		return nil, err
	}

	newOrder := req.TrackingID == ""
	if newOrder {
		if _, err := cs.meals.GetMeal(ctx, req.FoodID); err != nil {
			return nil, fmt.Errorf("get meal %s: %w", req.FoodID, err)
		}

		id, err := cs.ids.NewID()
		if err != nil {
			return nil, fmt.Errorf("generate tracking id: %w", err)
		}
		req.TrackingID = id
	} else {
		if err := cs.checkOrder(ctx, req); err != nil {
			return nil, err
		}
	}

	session, err := cs.provider.CreateSession(ctx, req)
	if err != nil {
		metrics.CheckoutSessionsTotal.WithLabelValues("provider_error").Inc()
		return nil, err
	}

	if newOrder {
		_, err := placeOrder(ctx, cs.orders, cs.tracking, cs.ids, &models.Order{
			BuyerEmail: req.BuyerEmail,
			BuyerName:  req.BuyerName,
			FoodID:     req.FoodID,
			MealName:   req.MealName,
			Price:      req.Price,
			TrackingID: req.TrackingID,
		})
		if err != nil {
			logger.Log.Error("store order for checkout session",
				zap.String("session_id", session.ID),
				zap.String("tracking_id", req.TrackingID),
				zap.Error(err))
			metrics.CheckoutSessionsTotal.WithLabelValues("storage_error").Inc()

			// session without order could be paid but never reconciled
			if expErr := cs.provider.ExpireSession(ctx, session.ID); expErr != nil {
				logger.Log.Error("expire orphan checkout session",
					zap.String("session_id", session.ID),
					zap.Error(expErr))
			}
			return nil, err
		}
	}

	metrics.CheckoutSessionsTotal.WithLabelValues("created").Inc()
	logger.Log.Debug("checkout session has been created",
		zap.String("session_id", session.ID),
		zap.String("tracking_id", req.TrackingID))

	return session, nil
}

// checkOrder checks that client-supplied tracking id references buyer's unpaid order
func (cs *CheckoutService) checkOrder(ctx context.Context, req models.CheckoutRequest) error {
	if !tracking.Valid(req.TrackingID) {
		return models.ValidationError("trackingId", "is malformed")
	}

	order, err := cs.orders.GetOrderByTrackingID(ctx, req.TrackingID)
	if err != nil {
		return fmt.Errorf("get order %s: %w", req.TrackingID, err)
	}

	switch {
	case order.BuyerEmail != req.BuyerEmail:
		return models.ErrForbidden
	case order.FoodID != req.FoodID:
		return models.ValidationError("foodId", "does not match order")
	case order.Status != models.OrderStatusCreated:
		return models.ErrOrderPaid
	}

	return nil
}
