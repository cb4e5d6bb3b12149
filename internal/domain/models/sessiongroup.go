// internal/domain/models/sessiongroup.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SessionGroup represents one scheduled cohort (run) of a course. A
// student books a session group as a unit; the group's individual
// meetings live in the course_timetable collection.
//
// NOTE:
//   - The owning course's title and the number of bookings are derived
//     at query time (see store/queries/groupcatalog); they are never
//     persisted on the group document.
//   - StartDate is required. EndDate, when present, must not precede
//     StartDate; the store enforces both.
type SessionGroup struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CourseID primitive.ObjectID `bson:"course_id" json:"course_id"`

	Name   string `bson:"name" json:"name"`
	NameCI string `bson:"name_ci" json:"name_ci"` // lowercase, diacritics-stripped

	Description     string     `bson:"description,omitempty" json:"description,omitempty"`
	Price           float64    `bson:"price" json:"price"`
	MaxParticipants *int       `bson:"max_participants,omitempty" json:"max_participants,omitempty"`
	StartDate       time.Time  `bson:"start_date" json:"start_date"`
	EndDate         *time.Time `bson:"end_date,omitempty" json:"end_date,omitempty"`
	IsActive        bool       `bson:"is_active" json:"is_active"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
