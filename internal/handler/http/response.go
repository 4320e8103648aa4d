package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rookgm/chefbazaar/internal/logger"
	"github.com/rookgm/chefbazaar/internal/models"
	"go.uber.org/zap"
)

// writeError maps service error to response status
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var pe models.ProviderError

	switch {
	case errors.Is(err, models.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, models.ErrDataNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.As(err, &pe):
		logger.Log.Warn("payment provider error", zap.String("uri", r.RequestURI), zap.Error(err))
		http.Error(w, "payment provider unavailable", http.StatusBadGateway)
	case errors.Is(err, models.ErrUnauthorized):
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	case errors.Is(err, models.ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, models.ErrOrderPaid):
		http.Error(w, "order already paid", http.StatusConflict)
	default:
		logger.Log.Error("request failed", zap.String("uri", r.RequestURI), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("encode response", zap.Error(err))
	}
}

// pageFromQuery reads skip and limit query parameters
func pageFromQuery(r *http.Request) (models.Page, error) {
	var (
		page models.Page
		err  error
	)

	q := r.URL.Query()
	if s := q.Get("skip"); s != "" {
		if page.Skip, err = strconv.Atoi(s); err != nil || page.Skip < 0 {
			return page, models.ValidationError("skip", "must be non-negative integer")
		}
	}
	if s := q.Get("limit"); s != "" {
		if page.Limit, err = strconv.Atoi(s); err != nil || page.Limit < 0 {
			return page, models.ValidationError("limit", "must be non-negative integer")
		}
	}

	return page.Normalize(), nil
}
