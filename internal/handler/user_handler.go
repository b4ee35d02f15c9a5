package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"doctors-portal-api/internal/auth"
	"doctors-portal-api/internal/model"
	"doctors-portal-api/internal/store"
)

// IssueToken hands out an access token for a known user. Credentialing is
// the identity provider's job; the server only checks the user exists.
func (h *Handler) IssueToken(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		badRequest(w, "email is required")
		return
	}

	_, err := h.store.UserByEmail(r.Context(), email)
	if errors.Is(err, store.ErrNotFound) {
		writeJSON(w, http.StatusForbidden, map[string]string{"accessToken": ""})
		return
	}
	if err != nil {
		h.internal(w, "user by email", err)
		return
	}

	tok, err := auth.MakeToken(email, h.secret)
	if err != nil {
		h.internal(w, "make token", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"accessToken": tok})
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.Users(r.Context())
	if err != nil {
		h.internal(w, "users", err)
		return
	}
	if users == nil {
		users = []model.User{}
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" {
		badRequest(w, "name and email are required")
		return
	}

	id, err := h.store.CreateUser(r.Context(), &model.User{Name: req.Name, Email: req.Email})
	if err != nil {
		h.internal(w, "create user", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"acknowledged": true, "insertedId": id})
}

// CheckAdmin reports whether the email belongs to an admin. Unauthenticated;
// the frontend calls it to toggle admin-only UI.
func (h *Handler) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	isAdmin, err := h.store.IsAdmin(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		h.internal(w, "is admin", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"isAdmin": isAdmin})
}

// GrantAdmin promotes an existing user to admin. Promoting an unknown id is
// 404; promotion never creates users.
func (h *Handler) GrantAdmin(w http.ResponseWriter, r *http.Request) {
	err := h.store.GrantAdmin(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		notFound(w, "user not found")
		return
	}
	if err != nil {
		h.internal(w, "grant admin", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"acknowledged": true, "modifiedCount": 1})
}
