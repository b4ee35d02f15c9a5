package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"doctors-portal-api/internal/payment"
	"doctors-portal-api/internal/store"
)

type Handler struct {
	store   *store.Store
	intents payment.IntentCreator
	secret  string
	log     zerolog.Logger
}

func New(st *store.Store, intents payment.IntentCreator, secret string, log zerolog.Logger) *Handler {
	return &Handler{store: st, intents: intents, secret: secret, log: log}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("doctors portal server is running"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"message": msg})
}

func notFound(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusNotFound, map[string]string{"message": msg})
}

func (h *Handler) internal(w http.ResponseWriter, op string, err error) {
	h.log.Error().Err(err).Str("op", op).Msg("store error")
	writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "internal error"})
}
