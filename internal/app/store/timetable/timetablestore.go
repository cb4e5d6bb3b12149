// internal/app/store/timetable/timetablestore.go
package timetablestore

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
	return &Store{c: db.Collection("course_timetable")}
}

// GroupSession is a timetable entry augmented with the referenced
// syllabus module's title and order, when the entry covers one.
type GroupSession struct {
	models.TimetableEntry `bson:",inline"`

	SyllabusTitleEN string `bson:"syllabus_title_en,omitempty"`
	SyllabusTitleDE string `bson:"syllabus_title_de,omitempty"`
	SyllabusOrder   int    `bson:"syllabus_order,omitempty"`
}

// SyllabusTitle returns the joined module title in the given language,
// falling back to English.
func (gs *GroupSession) SyllabusTitle(lang string) string {
	if lang == "de" && gs.SyllabusTitleDE != "" {
		return gs.SyllabusTitleDE
	}
	return gs.SyllabusTitleEN
}

// ListByGroup returns the sessions of a session group ascending by
// start time, each joined with its syllabus module (if referenced).
// A group with no timetable rows yields an empty slice, not an error.
func (s *Store) ListByGroup(ctx context.Context, groupID primitive.ObjectID) ([]GroupSession, error) {
	pipe := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"session_group_id": groupID}}},
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "start_at", Value: 1},
			{Key: "_id", Value: 1},
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "course_syllabus",
			"localField":   "syllabus_id",
			"foreignField": "_id",
			"as":           "syllabus",
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"syllabus_title_en": bson.M{"$ifNull": []interface{}{
				bson.M{"$arrayElemAt": []interface{}{"$syllabus.title_en", 0}}, "",
			}},
			"syllabus_title_de": bson.M{"$ifNull": []interface{}{
				bson.M{"$arrayElemAt": []interface{}{"$syllabus.title_de", 0}}, "",
			}},
			"syllabus_order": bson.M{"$ifNull": []interface{}{
				bson.M{"$arrayElemAt": []interface{}{"$syllabus.order_num", 0}}, 0,
			}},
		}}},
		bson.D{{Key: "$project", Value: bson.M{"syllabus": 0}}},
	}

	cur, err := s.c.Aggregate(ctx, pipe)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	sessions := []GroupSession{}
	if err := cur.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// FindAnyForGroup returns the ID of one timetable entry belonging to
// the group. When the group has no entries it returns the all-zero
// sentinel that satisfies the legacy timetable reference on bookings.
func (s *Store) FindAnyForGroup(ctx context.Context, groupID primitive.ObjectID) (primitive.ObjectID, error) {
	var row struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	opts := options.FindOne().SetProjection(bson.M{"_id": 1})
	err := s.c.FindOne(ctx, bson.M{"session_group_id": groupID}, opts).Decode(&row)
	if err == mongo.ErrNoDocuments {
		return models.SentinelTimetableID, nil
	}
	if err != nil {
		return models.SentinelTimetableID, err
	}
	return row.ID, nil
}

// ListByCourse returns every timetable entry of a course ascending by
// start time. Used by the admin timetable page.
func (s *Store) ListByCourse(ctx context.Context, courseID primitive.ObjectID) ([]models.TimetableEntry, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "start_at", Value: 1}, {Key: "_id", Value: 1}})

	cur, err := s.c.Find(ctx, bson.M{"course_id": courseID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var entries []models.TimetableEntry
	if err := cur.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetByID returns a timetable entry by its ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.TimetableEntry, error) {
	var e models.TimetableEntry
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&e); err != nil {
		return models.TimetableEntry{}, err
	}
	return e, nil
}

// Create inserts a new timetable entry and sets timestamps.
func (s *Store) Create(ctx context.Context, e models.TimetableEntry) (models.TimetableEntry, error) {
	now := time.Now().UTC()
	e.ID = primitive.NewObjectID()
	e.CreatedAt = now
	e.UpdatedAt = now

	if strings.TrimSpace(e.Title) == "" {
		return models.TimetableEntry{}, mongo.CommandError{Message: "title is required"}
	}
	if e.CourseID.IsZero() {
		return models.TimetableEntry{}, mongo.CommandError{Message: "course_id is required"}
	}
	if e.StartAt.IsZero() {
		return models.TimetableEntry{}, mongo.CommandError{Message: "start_at is required"}
	}
	if e.EndAt != nil && e.EndAt.Before(e.StartAt) {
		return models.TimetableEntry{}, mongo.CommandError{Message: "end_at must not precede start_at"}
	}

	if _, err := s.c.InsertOne(ctx, e); err != nil {
		return models.TimetableEntry{}, err
	}
	return e, nil
}

// Update replaces the mutable fields of an entry.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, mut models.TimetableEntry) error {
	set := bson.M{"updated_at": time.Now().UTC()}

	if strings.TrimSpace(mut.Title) != "" {
		set["title"] = mut.Title
	}
	set["description"] = mut.Description
	set["zoom_link"] = mut.ZoomLink
	set["chatgroup_link"] = mut.ChatGroupLink

	if !mut.StartAt.IsZero() {
		set["start_at"] = mut.StartAt
	}
	if mut.EndAt != nil {
		set["end_at"] = *mut.EndAt
	}
	if mut.MaxParticipants != nil {
		set["max_participants"] = *mut.MaxParticipants
	}
	if mut.SessionGroupID != nil {
		set["session_group_id"] = *mut.SessionGroupID
	}
	if mut.SyllabusID != nil {
		set["syllabus_id"] = *mut.SyllabusID
	}

	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}

// Delete removes a timetable entry by ID.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteByCourse removes every timetable entry of a course, including
// entries attached to the course's session groups.
func (s *Store) DeleteByCourse(ctx context.Context, courseID primitive.ObjectID) error {
	_, err := s.c.DeleteMany(ctx, bson.M{"course_id": courseID})
	return err
}

// DeleteByGroup removes every timetable entry of a session group.
func (s *Store) DeleteByGroup(ctx context.Context, groupID primitive.ObjectID) error {
	_, err := s.c.DeleteMany(ctx, bson.M{"session_group_id": groupID})
	return err
}
