package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/rookgm/chefbazaar/internal/models"
	"github.com/rookgm/chefbazaar/internal/repository/postgres"
)

const (
	selectMealQuery = `
						SELECT id, name, chef_email, price, payment_status, order_status FROM meals
						WHERE id = $1
`
	updateMealPaidQuery = `
						UPDATE meals
						SET payment_status = $1, order_status = $2
						WHERE id = $3
`
)

// MealRepository gives access to meals owned by catalog
type MealRepository struct {
	db *postgres.DB
}

// NewMealRepository creates new MealRepository instance
func NewMealRepository(db *postgres.DB) *MealRepository {
	return &MealRepository{db: db}
}

// GetMeal returns meal by id
func (mr *MealRepository) GetMeal(ctx context.Context, id string) (*models.Meal, error) {
	meal := models.Meal{}
	err := mr.db.QueryRow(ctx, selectMealQuery, id).
		Scan(&meal.ID, &meal.Name, &meal.ChefEmail, &meal.Price, &meal.PaymentStatus, &meal.OrderStatus)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrDataNotFound
		}
		return nil, err
	}

	return &meal, nil
}

// markMealPaid sets meal payment and order status. Missing meal is not an error,
// catalog may have removed it after checkout.
func markMealPaid(ctx context.Context, q querier, foodID string) error {
	_, err := q.Exec(ctx, updateMealPaidQuery, models.PaymentStatusPaid, models.OrderStatusPendingPickup, foodID)
	return err
}
