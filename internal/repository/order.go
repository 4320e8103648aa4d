package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/rookgm/chefbazaar/internal/models"
	"github.com/rookgm/chefbazaar/internal/repository/postgres"
)

const (
	insertOrderQuery = `
						INSERT INTO orders (buyer_email, buyer_name, food_id, meal_name, price, tracking_id, status, payment_status)
						VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
						RETURNING id, created_at, updated_at
`
	selectOrderByTrackingIDQuery = `
						SELECT id, buyer_email, buyer_name, food_id, meal_name, price, tracking_id, status, payment_status, created_at, updated_at
						FROM orders
						WHERE tracking_id = $1
`
	selectOrdersByBuyerQuery = `
						SELECT id, buyer_email, buyer_name, food_id, meal_name, price, tracking_id, status, payment_status, created_at, updated_at
						FROM orders
						WHERE buyer_email = $1
						ORDER BY created_at DESC, id DESC
						OFFSET $2 LIMIT $3
`
	updateOrderPaidQuery = `
						UPDATE orders
						SET payment_status = $1, status = $2, updated_at = now()
						WHERE tracking_id = $3 AND status = $4
`
	selectOrderStatusQuery = `
						SELECT status FROM orders
						WHERE tracking_id = $1
`
)

// OrderRepository implements OrderRepository interface
type OrderRepository struct {
	db *postgres.DB
}

// NewOrderRepository creates new OrderRepository instance
func NewOrderRepository(db *postgres.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// CreateOrder inserts new order to database
func (or *OrderRepository) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	err := or.db.QueryRow(ctx, insertOrderQuery,
		order.BuyerEmail, order.BuyerName, order.FoodID, order.MealName, order.Price,
		order.TrackingID, order.Status, order.PaymentStatus,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		if errCode := or.db.ErrorCode(err); errCode == pgErrUniqueViolationCode {
			return nil, models.ErrConflictData
		}
		return nil, err
	}

	return order, nil
}

// GetOrderByTrackingID returns order by tracking id
func (or *OrderRepository) GetOrderByTrackingID(ctx context.Context, trackingID string) (*models.Order, error) {
	order, err := scanOrder(or.db.QueryRow(ctx, selectOrderByTrackingIDQuery, trackingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrDataNotFound
		}
		return nil, err
	}

	return order, nil
}

// GetOrdersByBuyer returns buyer orders, newest first
func (or *OrderRepository) GetOrdersByBuyer(ctx context.Context, email string, page models.Page) ([]models.Order, error) {
	rows, err := or.db.Query(ctx, selectOrdersByBuyerQuery, email, page.Skip, page.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}

	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// markOrderPaid moves order from created to pending-pickup.
// Returns models.ErrOrderPaid if order has already left created state.
func markOrderPaid(ctx context.Context, q querier, trackingID string) error {
	cmd, err := q.Exec(ctx, updateOrderPaidQuery,
		models.PaymentStatusPaid, models.OrderStatusPendingPickup, trackingID, models.OrderStatusCreated)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() > 0 {
		return nil
	}

	var status string
	if err := q.QueryRow(ctx, selectOrderStatusQuery, trackingID).Scan(&status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ErrDataNotFound
		}
		return err
	}

	return models.ErrOrderPaid
}

func scanOrder(row pgx.Row) (*models.Order, error) {
	order := models.Order{}
	err := row.Scan(&order.ID, &order.BuyerEmail, &order.BuyerName, &order.FoodID, &order.MealName, &order.Price,
		&order.TrackingID, &order.Status, &order.PaymentStatus, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &order, nil
}
