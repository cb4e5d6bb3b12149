// internal/app/store/bookings/bookingstore.go
package bookingstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/winnaoderwas/academy-coachigo-sub001/internal/domain/models"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("session_bookings")}
}

// Insert persists a booking. The caller provides the timetable
// reference (a concrete entry or the sentinel) and the booking
// reference code; ID and BookedAt are filled in here.
func (s *Store) Insert(ctx context.Context, b models.Booking) (models.Booking, error) {
	b.ID = primitive.NewObjectID()
	if b.BookedAt.IsZero() {
		b.BookedAt = time.Now().UTC()
	}
	if b.Status == "" {
		b.Status = models.BookingConfirmed
	}

	if b.UserID.IsZero() {
		return models.Booking{}, mongo.CommandError{Message: "user_id is required"}
	}

	if _, err := s.c.InsertOne(ctx, b); err != nil {
		return models.Booking{}, err
	}
	return b, nil
}

// ListGroupBookingsByUser returns the user's bookings that claim a
// session group (legacy rows with a null group are excluded). Status
// is deliberately not filtered here; any row counts as booked.
func (s *Store) ListGroupBookingsByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Booking, error) {
	q := bson.M{
		"user_id":          userID,
		"session_group_id": bson.M{"$ne": nil},
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "booked_at", Value: -1}, {Key: "_id", Value: -1}})

	cur, err := s.c.Find(ctx, q, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var bookings []models.Booking
	if err := cur.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// ListByUser returns every booking of a user, newest first.
func (s *Store) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Booking, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "booked_at", Value: -1}, {Key: "_id", Value: -1}})

	cur, err := s.c.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var bookings []models.Booking
	if err := cur.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// CountByGroup returns the number of bookings referencing a session
// group.
func (s *Store) CountByGroup(ctx context.Context, groupID primitive.ObjectID) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"session_group_id": groupID})
}

// ListByGroup returns the bookings of a session group, newest first.
// Used by the admin group view.
func (s *Store) ListByGroup(ctx context.Context, groupID primitive.ObjectID) ([]models.Booking, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "booked_at", Value: -1}, {Key: "_id", Value: -1}})

	cur, err := s.c.Find(ctx, bson.M{"session_group_id": groupID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var bookings []models.Booking
	if err := cur.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
