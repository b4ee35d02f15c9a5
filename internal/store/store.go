// Package store wraps the doctorsPortal MongoDB collections.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("not found")

type Store struct {
	options  *mongo.Collection
	bookings *mongo.Collection
	users    *mongo.Collection
	doctors  *mongo.Collection
	payments *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{
		options:  db.Collection("appointmentOptions"),
		bookings: db.Collection("bookings"),
		users:    db.Collection("users"),
		doctors:  db.Collection("doctors"),
		payments: db.Collection("payments"),
	}
}

// EnsureIndexes backs the hot lookups: bookings by date (availability) and
// by the duplicate-check triple, users by email (auth gate).
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.bookings.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "appointmentDate", Value: 1}}},
		{Keys: bson.D{
			{Key: "appointmentDate", Value: 1},
			{Key: "email", Value: 1},
			{Key: "treatment", Value: 1},
		}},
	})
	if err != nil {
		return err
	}
	_, err = s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
	})
	return err
}
