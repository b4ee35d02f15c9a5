package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"doctors-portal-api/internal/auth"
	"doctors-portal-api/internal/model"
)

type ctxKey string

const EmailKey ctxKey = "email"

// Email returns the authenticated email placed in ctx by VerifyJWT.
func Email(ctx context.Context) string {
	s, _ := ctx.Value(EmailKey).(string)
	return s
}

// UserFinder is the slice of the user store the admin check needs.
type UserFinder interface {
	UserByEmail(ctx context.Context, email string) (*model.User, error)
}

// VerifyJWT rejects requests without a valid bearer token. The wire contract
// is fixed: 401 with a plain "unauthorized access" body when the header is
// absent, 403 with {"message":"forbidden access"} when the token does not
// verify. On success the claims email is attached to the request context.
func VerifyJWT(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				http.Error(w, "unauthorized access", http.StatusUnauthorized)
				return
			}

			// token is whatever follows the first space ("Bearer <jwt>")
			_, raw, _ := strings.Cut(header, " ")
			claims, err := auth.ParseToken(raw, secret)
			if err != nil {
				Forbidden(w)
				return
			}

			ctx := context.WithValue(r.Context(), EmailKey, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// VerifyAdmin allows the request through only when the authenticated user
// carries the admin role. It must be composed after VerifyJWT: the lookup
// keys on the email VerifyJWT put in context, so an empty email (no prior
// authentication) is rejected outright.
func VerifyAdmin(users UserFinder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := Email(r.Context())
			if email == "" {
				Forbidden(w)
				return
			}
			u, err := users.UserByEmail(r.Context(), email)
			if err != nil || u.Role != model.RoleAdmin {
				Forbidden(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Forbidden writes the portal's fixed 403 body.
func Forbidden(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "forbidden access"})
}
