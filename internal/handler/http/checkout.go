package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rookgm/chefbazaar/internal/middleware"
	"github.com/rookgm/chefbazaar/internal/models"
)

type CheckoutService interface {
	// CreateSession opens provider checkout session for order
	CreateSession(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutSession, error)
}

// CheckoutHandler represents HTTP handler for checkout requests
type CheckoutHandler struct {
	svc CheckoutService
}

// NewCheckoutHandler creates new CheckoutHandler instance
func NewCheckoutHandler(svc CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{svc: svc}
}

type checkoutRequest struct {
	Price      float64 `json:"price"`
	MealName   string  `json:"mealName"`
	BuyerEmail string  `json:"buyerEmail"`
	BuyerName  string  `json:"buyerName"`
	FoodID     string  `json:"foodId"`
	TrackingID string  `json:"trackingId"`
}

type checkoutResponse struct {
	URL        string `json:"url"`
	SessionID  string `json:"sessionId"`
	TrackingID string `json:"trackingId"`
}

// CreateSession opens checkout session and returns its url
// 200 — сессия оплаты создана;
// 400 — неверный формат запроса;
// 401 — пользователь не аутентифицирован;
// 403 — заказ принадлежит другому покупателю;
// 404 — блюдо или заказ не найдены;
// 409 — заказ уже оплачен;
// 502 — ошибка платёжного провайдера;
// 500 — внутренняя ошибка сервера.
func (ch *CheckoutHandler) CreateSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middleware.Identity(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req checkoutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		// buyer pays only for own orders
		if req.BuyerEmail != "" && !strings.EqualFold(req.BuyerEmail, identity.Email) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		session, err := ch.svc.CreateSession(r.Context(), models.CheckoutRequest{
			Price:      req.Price,
			MealName:   req.MealName,
			BuyerEmail: identity.Email,
			BuyerName:  req.BuyerName,
			FoodID:     req.FoodID,
			TrackingID: strings.TrimSpace(req.TrackingID),
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, checkoutResponse{
			URL:        session.URL,
			SessionID:  session.ID,
			TrackingID: session.TrackingID,
		})
	}
}
