package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"doctors-portal-api/internal/model"
	"doctors-portal-api/internal/store"
)

func (h *Handler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.store.Doctors(r.Context())
	if err != nil {
		h.internal(w, "doctors", err)
		return
	}
	if doctors == nil {
		doctors = []model.Doctor{}
	}
	writeJSON(w, http.StatusOK, doctors)
}

func (h *Handler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name      string `json:"name"`
		Email     string `json:"email"`
		Specialty string `json:"specialty"`
		Image     string `json:"img"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Specialty == "" {
		badRequest(w, "name, email and specialty are required")
		return
	}

	id, err := h.store.CreateDoctor(r.Context(), &model.Doctor{
		Name:      req.Name,
		Email:     req.Email,
		Specialty: req.Specialty,
		Image:     req.Image,
	})
	if err != nil {
		h.internal(w, "create doctor", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"acknowledged": true, "insertedId": id})
}

func (h *Handler) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	err := h.store.DeleteDoctor(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		notFound(w, "doctor not found")
		return
	}
	if err != nil {
		h.internal(w, "delete doctor", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"acknowledged": true, "deletedCount": 1})
}
