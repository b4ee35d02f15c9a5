package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"doctors-portal-api/internal/middleware"
)

// Routes wires the portal's HTTP surface. Gate ordering matters: VerifyAdmin
// reads the email VerifyJWT puts in context, so it always comes second.
func (h *Handler) Routes(log zerolog.Logger, rl *middleware.RateLimiter) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recoverer(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	verify := middleware.VerifyJWT(h.secret)
	admin := middleware.VerifyAdmin(h.store)

	r.Get("/", h.Health)
	r.Get("/appointmentOptions", h.ListOptions)
	r.Get("/appointmentSpecialty", h.ListSpecialties)

	r.With(middleware.RateLimit(rl)).Get("/jwt", h.IssueToken)

	r.Route("/bookings", func(r chi.Router) {
		r.With(verify).Get("/", h.ListBookings)
		r.Post("/", h.CreateBooking)
		r.Get("/{id}", h.GetBooking)
	})

	r.With(verify).Post("/create-payment-intent", h.CreatePaymentIntent)
	r.With(verify).Post("/payments", h.RecordPayment)

	r.Route("/users", func(r chi.Router) {
		r.With(verify, admin).Get("/", h.ListUsers)
		r.Post("/", h.CreateUser)
		r.Get("/admin/{email}", h.CheckAdmin)
		r.With(verify, admin).Put("/admin/{id}", h.GrantAdmin)
	})

	r.Route("/doctors", func(r chi.Router) {
		r.Use(verify, admin)
		r.Get("/", h.ListDoctors)
		r.Post("/", h.CreateDoctor)
		r.Delete("/{id}", h.DeleteDoctor)
	})

	return r
}
