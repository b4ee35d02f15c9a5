package handler

import (
	"net/http"

	"doctors-portal-api/internal/schedule"
)

// ListOptions returns the catalog with each option's slots narrowed to the
// ones still open on the requested date. Availability is recomputed on every
// call; bookings change between requests.
func (h *Handler) ListOptions(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	options, err := h.store.Options(r.Context())
	if err != nil {
		h.internal(w, "options", err)
		return
	}
	booked, err := h.store.BookingsByDate(r.Context(), date)
	if err != nil {
		h.internal(w, "bookings by date", err)
		return
	}

	writeJSON(w, http.StatusOK, schedule.Remaining(options, booked))
}

func (h *Handler) ListSpecialties(w http.ResponseWriter, r *http.Request) {
	names, err := h.store.OptionNames(r.Context())
	if err != nil {
		h.internal(w, "option names", err)
		return
	}
	writeJSON(w, http.StatusOK, names)
}
