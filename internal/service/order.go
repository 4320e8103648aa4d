package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/rookgm/chefbazaar/internal/logger"
	"github.com/rookgm/chefbazaar/internal/models"
	"go.uber.org/zap"
)

// attempts to insert order with freshly generated tracking id
const maxTrackingIDAttempts = 3

// OrderService implements OrderService interface
type OrderService struct {
	orders   OrderRepository
	meals    MealRepository
	tracking TrackingRepository
	ids      IDGenerator
}

// NewOrderService creates new OrderService instance
func NewOrderService(orders OrderRepository, meals MealRepository, tracking TrackingRepository, ids IDGenerator) *OrderService {
	return &OrderService{
		orders:   orders,
		meals:    meals,
		tracking: tracking,
		ids:      ids,
	}
}

// CreateOrder validates and stores new order in created state.
// Tracking id is assigned by server, order_created event is appended.
func (os *OrderService) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	if err := validateOrder(order.Price, order.MealName, order.BuyerEmail, order.FoodID); err != nil {
		return nil, err
	}

	if _, err := os.meals.GetMeal(ctx, order.FoodID); err != nil {
		return nil, fmt.Errorf("get meal %s: %w", order.FoodID, err)
	}

	order.TrackingID = ""

	return placeOrder(ctx, os.orders, os.tracking, os.ids, order)
}

// ListBuyerOrders returns buyer orders, newest first
func (os *OrderService) ListBuyerOrders(ctx context.Context, email string, page models.Page) ([]models.Order, error) {
	return os.orders.GetOrdersByBuyer(ctx, email, page.Normalize())
}

// GetTracking returns order event history. Only buyer and admin can read it.
func (os *OrderService) GetTracking(ctx context.Context, trackingID string, who *models.TokenPayload) ([]models.TrackingEvent, error) {
	order, err := os.orders.GetOrderByTrackingID(ctx, trackingID)
	if err != nil {
		return nil, err
	}

	if who.Role != models.RoleAdmin && order.BuyerEmail != who.Email {
		return nil, models.ErrForbidden
	}

	return os.tracking.GetEvents(ctx, trackingID)
}

// placeOrder stores order in created state and appends order_created event.
// If order has no tracking id, new one is generated and regenerated on collision.
func placeOrder(ctx context.Context, orders OrderRepository, tracking TrackingRepository, ids IDGenerator, order *models.Order) (*models.Order, error) {
	generate := order.TrackingID == ""

	order.Status = models.OrderStatusCreated
	order.PaymentStatus = models.PaymentStatusPending

	var (
		created *models.Order
		err     error
	)
	for attempt := 0; attempt < maxTrackingIDAttempts; attempt++ {
		if generate {
			if order.TrackingID, err = ids.NewID(); err != nil {
				return nil, fmt.Errorf("generate tracking id: %w", err)
			}
		}

		created, err = orders.CreateOrder(ctx, order)
		if err == nil {
			break
		}
		if !generate || !errors.Is(err, models.ErrConflictData) {
			return nil, fmt.Errorf("create order: %w", err)
		}
		logger.Log.Warn("tracking id collision", zap.String("tracking_id", order.TrackingID))
	}
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	// tracking log is best-effort here, order exists without its first event
	if _, err := tracking.AppendEvent(ctx, created.TrackingID, models.TrackingOrderCreated); err != nil {
		logger.Log.Error("append tracking event",
			zap.String("tracking_id", created.TrackingID),
			zap.String("status", models.TrackingOrderCreated),
			zap.Error(err))
	}

	logger.Log.Debug("order has been created",
		zap.Uint64("id", created.ID),
		zap.String("tracking_id", created.TrackingID))

	return created, nil
}

func validateOrder(price float64, mealName, buyerEmail, foodID string) error {
	switch {
	case math.IsNaN(price) || math.IsInf(price, 0) || price <= 0:
		return models.ValidationError("price", "must be positive")
	case price*100 > models.MaxPriceMinor:
		return models.ValidationError("price", "is too large")
	case models.ToMinorUnits(price) == 0:
		return models.ValidationError("price", "is less than one cent")
	case strings.TrimSpace(mealName) == "":
		return models.ValidationError("mealName", "is required")
	case strings.TrimSpace(buyerEmail) == "":
		return models.ValidationError("buyerEmail", "is required")
	case strings.TrimSpace(foodID) == "":
		return models.ValidationError("foodId", "is required")
	}
	return nil
}
