// internal/domain/models/timetableentry.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TimetableEntry is one concrete scheduled meeting of a course. An entry
// may belong to a session group (cohort meetings) and may reference the
// syllabus module it covers.
//
// Entries belonging to a group are ordered ascending by StartAt.
type TimetableEntry struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	CourseID       primitive.ObjectID  `bson:"course_id" json:"course_id"`
	SessionGroupID *primitive.ObjectID `bson:"session_group_id,omitempty" json:"session_group_id,omitempty"`
	SyllabusID     *primitive.ObjectID `bson:"syllabus_id,omitempty" json:"syllabus_id,omitempty"`

	Title       string `bson:"title" json:"title"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`

	StartAt time.Time  `bson:"start_at" json:"start_at"`
	EndAt   *time.Time `bson:"end_at,omitempty" json:"end_at,omitempty"`

	ZoomLink        string `bson:"zoom_link,omitempty" json:"zoom_link,omitempty"`
	ChatGroupLink   string `bson:"chatgroup_link,omitempty" json:"chatgroup_link,omitempty"`
	MaxParticipants *int   `bson:"max_participants,omitempty" json:"max_participants,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
