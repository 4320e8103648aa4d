package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rookgm/chefbazaar/internal/middleware"
	"github.com/rookgm/chefbazaar/internal/models"
	"github.com/rookgm/chefbazaar/internal/tracking"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks github.com/rookgm/chefbazaar/internal/handler/http CheckoutService,OrderService,PaymentService

type OrderService interface {
	// CreateOrder stores new order of buyer
	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	// ListBuyerOrders returns buyer orders, newest first
	ListBuyerOrders(ctx context.Context, email string, page models.Page) ([]models.Order, error)
	// GetTracking returns order event history
	GetTracking(ctx context.Context, trackingID string, who *models.TokenPayload) ([]models.TrackingEvent, error)
}

// OrderHandler represents HTTP handler for order-related requests
type OrderHandler struct {
	svc OrderService
}

// NewOrderHandler creates new OrderHandler instance
func NewOrderHandler(svc OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

type createOrderRequest struct {
	FoodID    string  `json:"foodId"`
	MealName  string  `json:"mealName"`
	Price     float64 `json:"price"`
	BuyerName string  `json:"buyerName"`
}

type createOrderResponse struct {
	InsertedID uint64 `json:"insertedId"`
	TrackingID string `json:"trackingId"`
}

// CreateOrder submits buyer order
// 201 — заказ создан;
// 400 — неверный формат запроса;
// 401 — пользователь не аутентифицирован;
// 404 — блюдо не найдено;
// 500 — внутренняя ошибка сервера.
func (oh *OrderHandler) CreateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middleware.Identity(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		order, err := oh.svc.CreateOrder(r.Context(), &models.Order{
			BuyerEmail: identity.Email,
			BuyerName:  req.BuyerName,
			FoodID:     req.FoodID,
			MealName:   req.MealName,
			Price:      req.Price,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, createOrderResponse{
			InsertedID: order.ID,
			TrackingID: order.TrackingID,
		})
	}
}

type orderResponse struct {
	ID            uint64  `json:"id"`
	FoodID        string  `json:"foodId"`
	MealName      string  `json:"mealName"`
	Price         float64 `json:"price"`
	TrackingID    string  `json:"trackingId"`
	Status        string  `json:"orderStatus"`
	PaymentStatus string  `json:"paymentStatus"`
	CreatedAt     string  `json:"orderTime"`
}

// ListBuyerOrders returns buyer orders
// 200 — успешная обработка запроса;
// 204 — нет данных для ответа;
// 400 — неверные параметры страницы;
// 401 — пользователь не авторизован;
// 500 — внутренняя ошибка сервера.
func (oh *OrderHandler) ListBuyerOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middleware.Identity(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		page, err := pageFromQuery(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		orders, err := oh.svc.ListBuyerOrders(r.Context(), identity.Email, page)
		if err != nil {
			writeError(w, r, err)
			return
		}

		if len(orders) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		resp := make([]orderResponse, 0, len(orders))
		for _, o := range orders {
			resp = append(resp, orderResponse{
				ID:            o.ID,
				FoodID:        o.FoodID,
				MealName:      o.MealName,
				Price:         o.Price,
				TrackingID:    o.TrackingID,
				Status:        o.Status,
				PaymentStatus: o.PaymentStatus,
				CreatedAt:     o.CreatedAt.Format(time.RFC3339),
			})
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

type trackingEventResponse struct {
	Status    string `json:"status"`
	Detail    string `json:"details"`
	CreatedAt string `json:"createdAt"`
}

// GetTracking returns order tracking history
// 200 — успешная обработка запроса;
// 400 — неверный формат идентификатора отслеживания;
// 401 — пользователь не авторизован;
// 403 — заказ принадлежит другому покупателю;
// 404 — заказ не найден;
// 500 — внутренняя ошибка сервера.
func (oh *OrderHandler) GetTracking() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middleware.Identity(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		trackingID := chi.URLParam(r, "trackingID")
		if !tracking.Valid(trackingID) {
			http.Error(w, "invalid tracking id", http.StatusBadRequest)
			return
		}

		events, err := oh.svc.GetTracking(r.Context(), trackingID, identity)
		if err != nil {
			writeError(w, r, err)
			return
		}

		resp := make([]trackingEventResponse, 0, len(events))
		for _, e := range events {
			resp = append(resp, trackingEventResponse{
				Status:    e.Status,
				Detail:    e.Detail,
				CreatedAt: e.CreatedAt.Format(time.RFC3339),
			})
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
