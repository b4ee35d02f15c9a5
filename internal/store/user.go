package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"doctors-portal-api/internal/model"
)

func (s *Store) UserByEmail(ctx context.Context, email string) (*model.User, error) {
	u := &model.User{}
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Store) Users(ctx context.Context) ([]model.User, error) {
	cur, err := s.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var out []model.User
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) CreateUser(ctx context.Context, u *model.User) (string, error) {
	res, err := s.users.InsertOne(ctx, u)
	if err != nil {
		return "", err
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

// GrantAdmin promotes an existing user. No upsert; an unknown id is an error.
func (s *Store) GrantAdmin(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := s.users.UpdateByID(ctx, oid, bson.M{
		"$set": bson.M{"role": model.RoleAdmin},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// IsAdmin reports whether the user with this email exists and holds the
// admin role. A missing user is simply not an admin.
func (s *Store) IsAdmin(ctx context.Context, email string) (bool, error) {
	u, err := s.UserByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return u.Role == model.RoleAdmin, nil
}
