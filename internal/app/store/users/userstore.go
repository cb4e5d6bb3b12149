// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"errors"
	"strings"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/status"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/domain/models"
)

// ErrDuplicateEmail is returned when a create would reuse an existing
// email address.
var ErrDuplicateEmail = errors.New("email already registered")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	var u models.User
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	return u, err
}

// GetByEmail looks a user up by the folded email.
func (s *Store) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := s.c.FindOne(ctx, bson.M{"email_ci": text.Fold(strings.TrimSpace(email))}).Decode(&u)
	return u, err
}

// Create inserts a new user. Email uniqueness is enforced by the
// unique index on email_ci.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	u.FullName = strings.TrimSpace(u.FullName)
	u.Email = strings.TrimSpace(u.Email)

	if u.FullName == "" {
		return models.User{}, mongo.CommandError{Message: "full name is required"}
	}
	if u.Email == "" {
		return models.User{}, mongo.CommandError{Message: "email is required"}
	}

	u.ID = primitive.NewObjectID()
	u.FullNameCI = text.Fold(u.FullName)
	u.EmailCI = text.Fold(u.Email)
	if u.Role == "" {
		u.Role = "student"
	}
	if u.Status == "" {
		u.Status = status.Active
	}
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

// UpdateProfile changes the mutable profile fields.
func (s *Store) UpdateProfile(ctx context.Context, id primitive.ObjectID, fullName, preferredLang string) error {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return mongo.CommandError{Message: "full name is required"}
	}

	set := bson.M{
		"full_name":    fullName,
		"full_name_ci": text.Fold(fullName),
		"updated_at":   time.Now().UTC(),
	}
	if preferredLang != "" {
		set["preferred_lang"] = preferredLang
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// SetStatus activates or disables an account.
func (s *Store) SetStatus(ctx context.Context, id primitive.ObjectID, st string) error {
	if !status.IsValid(st) {
		return mongo.CommandError{Message: "invalid status"}
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": st, "updated_at": time.Now().UTC()}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// List returns users newest first, optionally filtered by role.
func (s *Store) List(ctx context.Context, role string) ([]models.User, error) {
	q := bson.M{}
	if role != "" {
		q["role"] = role
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})

	cur, err := s.c.Find(ctx, q, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	users := []models.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
