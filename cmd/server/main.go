package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"doctors-portal-api/internal/handler"
	"doctors-portal-api/internal/middleware"
	"doctors-portal-api/internal/payment"
	"doctors-portal-api/internal/store"
)

func main() {
	_ = godotenv.Load()

	log := newLogger(env("ENV", "dev"))

	mongoURI := env("MONGODB_URI", "mongodb://localhost:27017")
	secret := os.Getenv("ACCESS_TOKEN_SECRET")
	if secret == "" {
		log.Fatal().Msg("ACCESS_TOKEN_SECRET is required")
	}
	stripeKey := os.Getenv("STRIPE_SECRET_KEY")
	port := env("PORT", "5000")

	// database
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(mongoURI).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)))
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect")
	}
	defer client.Disconnect(context.Background())
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal().Err(err).Msg("mongo ping")
	}
	log.Info().Msg("connected to mongodb")

	st := store.New(client.Database(env("DB_NAME", "doctorsPortal")))
	if err := st.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("ensure indexes")
	}

	h := handler.New(st, payment.NewStripeClient(stripeKey), secret, log)
	rl := middleware.NewRateLimiter(5, 10)

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: h.Routes(log, rl),
	}
	go func() {
		log.Info().Str("port", port).Msg("doctors portal server running")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("http")
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	log.Info().Msg("shutting down")
	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	_ = srv.Shutdown(shutdownCtx)
}

func newLogger(environment string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	l := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if environment == "dev" {
		return l.Level(zerolog.DebugLevel)
	}
	return l.Level(zerolog.InfoLevel)
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
