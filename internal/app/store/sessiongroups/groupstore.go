// internal/app/store/sessiongroups/groupstore.go
package sessiongroupstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/winnaoderwas/academy-coachigo-sub001/internal/domain/models"
)

type Store struct {
	groups   *mongo.Collection
	bookings *mongo.Collection
}

// ErrGroupHasBookings is returned by Delete when bookings still
// reference the group. Groups with bookings must be deactivated
// instead of deleted.
var ErrGroupHasBookings = errors.New("session group has bookings and cannot be deleted")

func New(db *mongo.Database) *Store {
	return &Store{
		groups:   db.Collection("session_groups"),
		bookings: db.Collection("session_bookings"),
	}
}

// GetByID returns a session group by its ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.SessionGroup, error) {
	var g models.SessionGroup
	if err := s.groups.FindOne(ctx, bson.M{"_id": id}).Decode(&g); err != nil {
		return models.SessionGroup{}, err
	}
	return g, nil
}

// List returns session groups ordered newest-created-first. A non-nil
// courseID restricts the result to that course.
func (s *Store) List(ctx context.Context, courseID *primitive.ObjectID) ([]models.SessionGroup, error) {
	q := bson.M{}
	if courseID != nil {
		q["course_id"] = *courseID
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})

	cur, err := s.groups.Find(ctx, q, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var groups []models.SessionGroup
	if err := cur.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// ListActive returns the active groups of a course, soonest start
// first. Used by the public course detail page.
func (s *Store) ListActive(ctx context.Context, courseID primitive.ObjectID) ([]models.SessionGroup, error) {
	q := bson.M{"course_id": courseID, "is_active": true}

	opts := options.Find().
		SetSort(bson.D{{Key: "start_date", Value: 1}, {Key: "_id", Value: 1}})

	cur, err := s.groups.Find(ctx, q, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var groups []models.SessionGroup
	if err := cur.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// Create inserts a new session group, folding NameCI and setting
// timestamps. Name and StartDate are required; Price must not be
// negative; EndDate, when present, must not precede StartDate.
func (s *Store) Create(ctx context.Context, g models.SessionGroup) (models.SessionGroup, error) {
	now := time.Now().UTC()

	g.ID = primitive.NewObjectID()
	g.NameCI = text.Fold(g.Name)
	g.CreatedAt = now
	g.UpdatedAt = now

	if err := validate(g); err != nil {
		return models.SessionGroup{}, err
	}

	if _, err := s.groups.InsertOne(ctx, g); err != nil {
		return models.SessionGroup{}, err
	}
	return g, nil
}

// Patch carries a partial update. Nil fields are left untouched so an
// admin form can change a single attribute without clobbering the
// rest.
type Patch struct {
	Name            *string
	Description     *string
	Price           *float64
	MaxParticipants *int
	StartDate       *time.Time
	EndDate         *time.Time
	ClearEndDate    bool
	IsActive        *bool
	CourseID        *primitive.ObjectID
}

// Update applies only the fields present in the patch and refreshes
// UpdatedAt. The patched date window is validated against the stored
// document before anything is written, so a rejected update leaves the
// group untouched. Returns the updated group.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, p Patch) (models.SessionGroup, error) {
	var current models.SessionGroup
	if err := s.groups.FindOne(ctx, bson.M{"_id": id}).Decode(&current); err != nil {
		return models.SessionGroup{}, err
	}

	start := current.StartDate
	if p.StartDate != nil {
		start = *p.StartDate
	}
	end := current.EndDate
	if p.ClearEndDate {
		end = nil
	} else if p.EndDate != nil {
		end = p.EndDate
	}
	if end != nil && end.Before(start) {
		return models.SessionGroup{}, mongo.CommandError{Message: "end_date must not precede start_date"}
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	unset := bson.M{}

	if p.Name != nil {
		if strings.TrimSpace(*p.Name) == "" {
			return models.SessionGroup{}, mongo.CommandError{Message: "name is required"}
		}
		set["name"] = *p.Name
		set["name_ci"] = text.Fold(*p.Name)
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.Price != nil {
		if *p.Price < 0 {
			return models.SessionGroup{}, mongo.CommandError{Message: "price must not be negative"}
		}
		set["price"] = *p.Price
	}
	if p.MaxParticipants != nil {
		set["max_participants"] = *p.MaxParticipants
	}
	if p.StartDate != nil {
		set["start_date"] = *p.StartDate
	}
	if p.ClearEndDate {
		unset["end_date"] = ""
	} else if p.EndDate != nil {
		set["end_date"] = *p.EndDate
	}
	if p.IsActive != nil {
		set["is_active"] = *p.IsActive
	}
	if p.CourseID != nil {
		set["course_id"] = *p.CourseID
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var g models.SessionGroup
	if err := s.groups.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&g); err != nil {
		return models.SessionGroup{}, err
	}
	return g, nil
}

// Delete removes a session group. It refuses with ErrGroupHasBookings
// while any booking references the group.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	n, err := s.bookings.CountDocuments(ctx, bson.M{"session_group_id": id})
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrGroupHasBookings
	}

	res, err := s.groups.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func validate(g models.SessionGroup) error {
	if strings.TrimSpace(g.Name) == "" {
		return mongo.CommandError{Message: "name is required"}
	}
	if g.CourseID.IsZero() {
		return mongo.CommandError{Message: "course_id is required"}
	}
	if g.StartDate.IsZero() {
		return mongo.CommandError{Message: "start_date is required"}
	}
	if g.EndDate != nil && g.EndDate.Before(g.StartDate) {
		return mongo.CommandError{Message: "end_date must not precede start_date"}
	}
	if g.Price < 0 {
		return mongo.CommandError{Message: "price must not be negative"}
	}
	return nil
}
