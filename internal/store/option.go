package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"doctors-portal-api/internal/model"
)

// Options returns the full treatment catalog.
func (s *Store) Options(ctx context.Context) ([]model.AppointmentOption, error) {
	cur, err := s.options.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var out []model.AppointmentOption
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// OptionNames returns just the treatment names, for the specialty picker.
func (s *Store) OptionNames(ctx context.Context) ([]model.AppointmentOption, error) {
	cur, err := s.options.Find(ctx, bson.M{},
		options.Find().SetProjection(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}
	var out []model.AppointmentOption
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
