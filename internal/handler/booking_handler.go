package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"doctors-portal-api/internal/middleware"
	"doctors-portal-api/internal/model"
	"doctors-portal-api/internal/store"
)

type bookingRequest struct {
	AppointmentDate string  `json:"appointmentDate"`
	Treatment       string  `json:"treatment"`
	Patient         string  `json:"patient"`
	Slot            string  `json:"slot"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	Price           float64 `json:"price"`
}

// ListBookings returns the caller's own bookings. The email query parameter
// must match the authenticated email; asking for someone else's is forbidden.
func (h *Handler) ListBookings(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email != middleware.Email(r.Context()) {
		middleware.Forbidden(w)
		return
	}

	bookings, err := h.store.BookingsByEmail(r.Context(), email)
	if err != nil {
		h.internal(w, "bookings by email", err)
		return
	}
	if bookings == nil {
		bookings = []model.Booking{}
	}
	writeJSON(w, http.StatusOK, bookings)
}

func (h *Handler) GetBooking(w http.ResponseWriter, r *http.Request) {
	b, err := h.store.BookingByID(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		notFound(w, "booking not found")
		return
	}
	if err != nil {
		h.internal(w, "booking by id", err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

// CreateBooking reserves a slot. One booking per (date, email, treatment);
// a duplicate is reported back, never inserted twice.
func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if req.AppointmentDate == "" || req.Treatment == "" || req.Slot == "" || req.Email == "" {
		badRequest(w, "appointmentDate, treatment, slot and email are required")
		return
	}

	exists, err := h.store.BookingExists(r.Context(), req.AppointmentDate, req.Email, req.Treatment)
	if err != nil {
		h.internal(w, "booking exists", err)
		return
	}
	if exists {
		writeJSON(w, http.StatusOK, map[string]any{
			"acknowledged": false,
			"message":      fmt.Sprintf("You already have a booking on %s", req.AppointmentDate),
		})
		return
	}

	id, err := h.store.CreateBooking(r.Context(), &model.Booking{
		AppointmentDate: req.AppointmentDate,
		Treatment:       req.Treatment,
		Patient:         req.Patient,
		Slot:            req.Slot,
		Email:           req.Email,
		Phone:           req.Phone,
		Price:           req.Price,
	})
	if err != nil {
		h.internal(w, "create booking", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"acknowledged": true,
		"insertedId":   id,
	})
}
