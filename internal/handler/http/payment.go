package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/rookgm/chefbazaar/internal/models"
)

type PaymentService interface {
	// Reconcile confirms payment of checkout session
	Reconcile(ctx context.Context, sessionID string) (*models.Reconciliation, error)
	// ListPayments returns reconciled payments, newest first
	ListPayments(ctx context.Context, page models.Page) ([]models.Payment, error)
}

// PaymentHandler represents HTTP handler for payment-related requests
type PaymentHandler struct {
	svc PaymentService
}

// NewPaymentHandler creates new PaymentHandler instance
func NewPaymentHandler(svc PaymentService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

// ConfirmPayment reconciles checkout session after buyer returns from provider.
// Repeated confirmations of the same session are answered with the stored outcome.
// 200 — успешная обработка запроса;
// 400 — не указан идентификатор сессии;
// 401 — пользователь не аутентифицирован;
// 409 — заказ уже оплачен другой транзакцией;
// 502 — ошибка платёжного провайдера;
// 500 — внутренняя ошибка сервера.
func (ph *PaymentHandler) ConfirmPayment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.URL.Query().Get("session_id")
		if sessionID == "" {
			http.Error(w, "session_id is required", http.StatusBadRequest)
			return
		}

		rec, err := ph.svc.Reconcile(r.Context(), sessionID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, rec)
	}
}

type paymentResponse struct {
	TransactionID string  `json:"transactionId"`
	SessionID     string  `json:"sessionId"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	BuyerEmail    string  `json:"buyerEmail"`
	FoodID        string  `json:"foodId"`
	TrackingID    string  `json:"trackingId"`
	Status        string  `json:"paymentStatus"`
	CreatedAt     string  `json:"date"`
}

// ListPayments returns reconciled payments
// 200 — успешная обработка запроса;
// 204 — нет данных для ответа;
// 400 — неверные параметры страницы;
// 500 — внутренняя ошибка сервера.
func (ph *PaymentHandler) ListPayments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := pageFromQuery(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		payments, err := ph.svc.ListPayments(r.Context(), page)
		if err != nil {
			writeError(w, r, err)
			return
		}

		if len(payments) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		resp := make([]paymentResponse, 0, len(payments))
		for _, p := range payments {
			resp = append(resp, paymentResponse{
				TransactionID: p.TransactionID,
				SessionID:     p.SessionID,
				Amount:        p.Amount(),
				Currency:      p.Currency,
				BuyerEmail:    p.BuyerEmail,
				FoodID:        p.FoodID,
				TrackingID:    p.TrackingID,
				Status:        p.Status,
				CreatedAt:     p.CreatedAt.Format(time.RFC3339),
			})
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
