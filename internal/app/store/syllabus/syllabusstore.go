// internal/app/store/syllabus/syllabusstore.go
package syllabusstore

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

// Store manages syllabus modules and their detail rows. Modules live
// in course_syllabus, details in course_syllabus_details.
type Store struct {
	modules *mongo.Collection
	details *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{
		modules: db.Collection("course_syllabus"),
		details: db.Collection("course_syllabus_details"),
	}
}

func (s *Store) GetModule(ctx context.Context, id primitive.ObjectID) (models.SyllabusModule, error) {
	var m models.SyllabusModule
	err := s.modules.FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	return m, err
}

// ListModules returns a course's syllabus modules in order_num order.
func (s *Store) ListModules(ctx context.Context, courseID primitive.ObjectID) ([]models.SyllabusModule, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "order_num", Value: 1}, {Key: "_id", Value: 1}})

	cur, err := s.modules.Find(ctx, bson.M{"course_id": courseID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	mods := []models.SyllabusModule{}
	if err := cur.All(ctx, &mods); err != nil {
		return nil, err
	}
	return mods, nil
}

func (s *Store) CreateModule(ctx context.Context, m models.SyllabusModule) (models.SyllabusModule, error) {
	m.TitleEN = strings.TrimSpace(m.TitleEN)
	m.TitleDE = strings.TrimSpace(m.TitleDE)

	if m.TitleEN == "" {
		return models.SyllabusModule{}, mongo.CommandError{Message: "title is required"}
	}
	if m.CourseID.IsZero() {
		return models.SyllabusModule{}, mongo.CommandError{Message: "course_id is required"}
	}

	m.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now

	if _, err := s.modules.InsertOne(ctx, m); err != nil {
		return models.SyllabusModule{}, err
	}
	return m, nil
}

func (s *Store) UpdateModule(ctx context.Context, id primitive.ObjectID, m models.SyllabusModule) error {
	set := bson.M{
		"title_en":   strings.TrimSpace(m.TitleEN),
		"title_de":   strings.TrimSpace(m.TitleDE),
		"order_num":  m.OrderNum,
		"updated_at": time.Now().UTC(),
	}

	res, err := s.modules.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeleteModule removes a module together with its detail rows.
func (s *Store) DeleteModule(ctx context.Context, id primitive.ObjectID) (int64, error) {
	if _, err := s.details.DeleteMany(ctx, bson.M{"syllabus_id": id}); err != nil {
		return 0, err
	}
	res, err := s.modules.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteByCourse removes every syllabus module of a course together
// with the modules' detail rows. Used when the course itself is
// deleted.
func (s *Store) DeleteByCourse(ctx context.Context, courseID primitive.ObjectID) error {
	cur, err := s.modules.Find(ctx, bson.M{"course_id": courseID})
	if err != nil {
		return err
	}
	defer cur.Close(ctx)

	var ids []primitive.ObjectID
	for cur.Next(ctx) {
		var m models.SyllabusModule
		if err := cur.Decode(&m); err != nil {
			return err
		}
		ids = append(ids, m.ID)
	}
	if err := cur.Err(); err != nil {
		return err
	}

	if len(ids) > 0 {
		if _, err := s.details.DeleteMany(ctx, bson.M{"syllabus_id": bson.M{"$in": ids}}); err != nil {
			return err
		}
	}
	_, err = s.modules.DeleteMany(ctx, bson.M{"course_id": courseID})
	return err
}

// ListDetails returns a module's detail rows in order_num order.
func (s *Store) ListDetails(ctx context.Context, syllabusID primitive.ObjectID) ([]models.SyllabusDetail, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "order_num", Value: 1}, {Key: "_id", Value: 1}})

	cur, err := s.details.Find(ctx, bson.M{"syllabus_id": syllabusID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	rows := []models.SyllabusDetail{}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Store) CreateDetail(ctx context.Context, d models.SyllabusDetail) (models.SyllabusDetail, error) {
	d.TextEN = strings.TrimSpace(d.TextEN)
	d.TextDE = strings.TrimSpace(d.TextDE)

	if d.TextEN == "" {
		return models.SyllabusDetail{}, mongo.CommandError{Message: "text is required"}
	}
	if d.SyllabusID.IsZero() {
		return models.SyllabusDetail{}, mongo.CommandError{Message: "syllabus_id is required"}
	}

	d.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now

	if _, err := s.details.InsertOne(ctx, d); err != nil {
		return models.SyllabusDetail{}, err
	}
	return d, nil
}

func (s *Store) UpdateDetail(ctx context.Context, id primitive.ObjectID, d models.SyllabusDetail) error {
	set := bson.M{
		"text_en":    strings.TrimSpace(d.TextEN),
		"text_de":    strings.TrimSpace(d.TextDE),
		"order_num":  d.OrderNum,
		"updated_at": time.Now().UTC(),
	}

	res, err := s.details.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (s *Store) DeleteDetail(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.details.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
