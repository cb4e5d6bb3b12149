// internal/app/store/objectives/objectivestore.go
package objectivestore

import (
	"context"
	"strings"
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
	return &Store{c: db.Collection("course_objectives")}
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Objective, error) {
	var o models.Objective
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&o)
	return o, err
}

// ListByCourse returns a course's learning objectives in order_num
// order.
func (s *Store) ListByCourse(ctx context.Context, courseID primitive.ObjectID) ([]models.Objective, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "order_num", Value: 1}, {Key: "_id", Value: 1}})

	cur, err := s.c.Find(ctx, bson.M{"course_id": courseID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	objectives := []models.Objective{}
	if err := cur.All(ctx, &objectives); err != nil {
		return nil, err
	}
	return objectives, nil
}

func (s *Store) Create(ctx context.Context, o models.Objective) (models.Objective, error) {
	o.TextEN = strings.TrimSpace(o.TextEN)
	o.TextDE = strings.TrimSpace(o.TextDE)

	if o.TextEN == "" {
		return models.Objective{}, mongo.CommandError{Message: "text is required"}
	}
	if o.CourseID.IsZero() {
		return models.Objective{}, mongo.CommandError{Message: "course_id is required"}
	}

	o.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	o.CreatedAt = now
	o.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, o); err != nil {
		return models.Objective{}, err
	}
	return o, nil
}

func (s *Store) Update(ctx context.Context, id primitive.ObjectID, o models.Objective) error {
	set := bson.M{
		"text_en":    strings.TrimSpace(o.TextEN),
		"text_de":    strings.TrimSpace(o.TextDE),
		"order_num":  o.OrderNum,
		"updated_at": time.Now().UTC(),
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

func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteByCourse removes every objective of a course.
func (s *Store) DeleteByCourse(ctx context.Context, courseID primitive.ObjectID) error {
	_, err := s.c.DeleteMany(ctx, bson.M{"course_id": courseID})
	return err
}
