package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"doctors-portal-api/internal/model"
)

func (s *Store) CreateDoctor(ctx context.Context, d *model.Doctor) (string, error) {
	res, err := s.doctors.InsertOne(ctx, d)
	if err != nil {
		return "", err
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

func (s *Store) Doctors(ctx context.Context) ([]model.Doctor, error) {
	cur, err := s.doctors.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var out []model.Doctor
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) DeleteDoctor(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := s.doctors.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
