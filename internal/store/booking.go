package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"doctors-portal-api/internal/model"
)

// BookingsByDate returns every booking for one appointment date, across all
// treatments. The availability calculation starts from this set.
func (s *Store) BookingsByDate(ctx context.Context, date string) ([]model.Booking, error) {
	cur, err := s.bookings.Find(ctx, bson.M{"appointmentDate": date})
	if err != nil {
		return nil, err
	}
	var out []model.Booking
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) BookingsByEmail(ctx context.Context, email string) ([]model.Booking, error) {
	cur, err := s.bookings.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	var out []model.Booking
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) BookingByID(ctx context.Context, id string) (*model.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	b := &model.Booking{}
	err = s.bookings.FindOne(ctx, bson.M{"_id": oid}).Decode(b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// BookingExists reports whether the caller already holds a booking for this
// treatment on this date. One booking per (date, email, treatment).
func (s *Store) BookingExists(ctx context.Context, date, email, treatment string) (bool, error) {
	n, err := s.bookings.CountDocuments(ctx, bson.M{
		"appointmentDate": date,
		"email":           email,
		"treatment":       treatment,
	})
	return n > 0, err
}

// CreateBooking inserts and returns the new document id.
func (s *Store) CreateBooking(ctx context.Context, b *model.Booking) (string, error) {
	res, err := s.bookings.InsertOne(ctx, b)
	if err != nil {
		return "", err
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

// MarkBookingPaid records the payment outcome on the booking itself.
func (s *Store) MarkBookingPaid(ctx context.Context, id, transactionID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := s.bookings.UpdateByID(ctx, oid, bson.M{
		"$set": bson.M{"paid": true, "transactionId": transactionID},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
