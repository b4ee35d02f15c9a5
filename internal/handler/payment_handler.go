package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"doctors-portal-api/internal/model"
	"doctors-portal-api/internal/store"
)

// CreatePaymentIntent opens a provider payment intent for a booking's price
// and returns the client secret the frontend confirms the card against.
func (h *Handler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Price float64 `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if req.Price <= 0 {
		badRequest(w, "price must be positive")
		return
	}

	secret, err := h.intents.CreateIntent(r.Context(), int64(req.Price*100))
	if err != nil {
		h.internal(w, "create intent", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"clientSecret": secret})
}

// RecordPayment stores the confirmed payment and marks the booking paid.
func (h *Handler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BookingID     string  `json:"bookingId"`
		Email         string  `json:"email"`
		Price         float64 `json:"price"`
		TransactionID string  `json:"transactionId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if req.BookingID == "" || req.TransactionID == "" {
		badRequest(w, "bookingId and transactionId are required")
		return
	}

	id, err := h.store.CreatePayment(r.Context(), &model.Payment{
		BookingID:     req.BookingID,
		Email:         req.Email,
		Price:         req.Price,
		TransactionID: req.TransactionID,
	})
	if err != nil {
		h.internal(w, "create payment", err)
		return
	}

	err = h.store.MarkBookingPaid(r.Context(), req.BookingID, req.TransactionID)
	if errors.Is(err, store.ErrNotFound) {
		notFound(w, "booking not found")
		return
	}
	if err != nil {
		h.internal(w, "mark booking paid", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"acknowledged": true, "insertedId": id})
}
