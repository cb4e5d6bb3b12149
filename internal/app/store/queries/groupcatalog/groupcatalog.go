// Package groupcatalog provides complex read-only queries for session
// groups.
package groupcatalog

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// GroupItem is a session group enriched with its course title and
// booking count. Groups whose course row has been deleted come back
// with empty titles rather than being dropped from the list.
type GroupItem struct {
	ID              primitive.ObjectID `bson:"_id"`
	CourseID        primitive.ObjectID `bson:"course_id"`
	Name            string             `bson:"name"`
	Description     string             `bson:"description"`
	Price           float64            `bson:"price"`
	MaxParticipants *int               `bson:"max_participants"`
	StartDate       time.Time          `bson:"start_date"`
	EndDate         *time.Time         `bson:"end_date"`
	IsActive        bool               `bson:"is_active"`
	CreatedAt       time.Time          `bson:"created_at"`
	CourseTitleEN   string             `bson:"course_title_en"`
	CourseTitleDE   string             `bson:"course_title_de"`
	BookingsCount   int                `bson:"bookings_count"`
}

// CourseTitle returns the course title for the given language, falling
// back to English.
func (g GroupItem) CourseTitle(lang string) string {
	if lang == "de" && g.CourseTitleDE != "" {
		return g.CourseTitleDE
	}
	return g.CourseTitleEN
}

// ListFilter narrows the catalog query.
type ListFilter struct {
	CourseID   *primitive.ObjectID // nil means all courses
	ActiveOnly bool
}

// ListGroupsWithCourseInfo fetches session groups with course titles
// and booking counts in a single aggregation pipeline, newest created
// first.
func ListGroupsWithCourseInfo(ctx context.Context, db *mongo.Database, filter ListFilter) ([]GroupItem, error) {
	match := bson.M{}
	if filter.CourseID != nil {
		match["course_id"] = *filter.CourseID
	}
	if filter.ActiveOnly {
		match["is_active"] = true
	}

	pipe := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "created_at", Value: -1},
			{Key: "_id", Value: -1},
		}}},
		// Join the course for its bilingual title.
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "courses",
			"localField":   "course_id",
			"foreignField": "_id",
			"as":           "course",
		}}},
		// Count bookings per group without pulling booking rows.
		bson.D{{Key: "$lookup", Value: bson.M{
			"from": "session_bookings",
			"let":  bson.M{"gid": "$_id"},
			"pipeline": []bson.M{
				{"$match": bson.M{"$expr": bson.M{"$eq": []string{"$session_group_id", "$$gid"}}}},
				{"$count": "count"},
			},
			"as": "bookings",
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":              1,
			"course_id":        1,
			"name":             1,
			"description":      1,
			"price":            1,
			"max_participants": 1,
			"start_date":       1,
			"end_date":         1,
			"is_active":        1,
			"created_at":       1,
			"course_title_en": bson.M{"$ifNull": []interface{}{
				bson.M{"$arrayElemAt": []interface{}{"$course.title_en", 0}},
				"",
			}},
			"course_title_de": bson.M{"$ifNull": []interface{}{
				bson.M{"$arrayElemAt": []interface{}{"$course.title_de", 0}},
				"",
			}},
			"bookings_count": bson.M{"$ifNull": []interface{}{
				bson.M{"$arrayElemAt": []interface{}{"$bookings.count", 0}},
				0,
			}},
		}}},
	}

	cur, err := db.Collection("session_groups").Aggregate(ctx, pipe)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := []GroupItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ListActiveGroupsWithCourseInfo is the member-facing variant: active
// groups only, soonest start date first.
func ListActiveGroupsWithCourseInfo(ctx context.Context, db *mongo.Database, courseID *primitive.ObjectID) ([]GroupItem, error) {
	items, err := ListGroupsWithCourseInfo(ctx, db, ListFilter{CourseID: courseID, ActiveOnly: true})
	if err != nil {
		return nil, err
	}

	// Re-sort by start date; the base pipeline orders by creation time.
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].StartDate.Before(items[j].StartDate)
	})
	return items, nil
}
