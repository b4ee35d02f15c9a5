package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"doctors-portal-api/internal/model"
)

func (s *Store) CreatePayment(ctx context.Context, p *model.Payment) (string, error) {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	res, err := s.payments.InsertOne(ctx, p)
	if err != nil {
		return "", err
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}
