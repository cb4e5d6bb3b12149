// internal/domain/models/booking.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SentinelTimetableID is the all-zero placeholder written to a booking's
// timetable_id when the booked session group has no timetable rows yet.
// The column is required by the legacy schema but semantically
// meaningless for group-level bookings.
var SentinelTimetableID = primitive.NilObjectID

// Booking statuses. Status is free text in the legacy data; these are
// the values this application writes.
const (
	BookingConfirmed = "Confirmed"
	BookingCancelled = "Cancelled"
)

// Booking records a user's claim on a session group, or (for checkout
// purchases) on a course as a whole.
//
// NOTE:
//   - SessionGroupID is nil on legacy rows and on course-level bookings
//     created at checkout.
//   - TimetableID carries SentinelTimetableID when no concrete
//     timetable row exists for the booked group.
//   - At most one booking per (user, session group) pair. This is
//     enforced by the booking coordinator, not by a unique index.
type Booking struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID         primitive.ObjectID  `bson:"user_id" json:"user_id"`
	SessionGroupID *primitive.ObjectID `bson:"session_group_id,omitempty" json:"session_group_id,omitempty"`
	CourseID       *primitive.ObjectID `bson:"course_id,omitempty" json:"course_id,omitempty"`
	TimetableID    primitive.ObjectID  `bson:"timetable_id" json:"timetable_id"`

	Status        string `bson:"status" json:"status"`
	PaymentStatus string `bson:"payment_status,omitempty" json:"payment_status,omitempty"`

	// Reference is a human-shareable booking code (UUID string).
	Reference string `bson:"reference" json:"reference"`

	ParticipantName  string `bson:"participant_name,omitempty" json:"participant_name,omitempty"`
	ParticipantEmail string `bson:"participant_email,omitempty" json:"participant_email,omitempty"`

	BookedAt time.Time `bson:"booked_at" json:"booked_at"`
}

// IsGroupBooking reports whether this booking claims a session group
// (as opposed to a course-level checkout booking or a legacy row).
func (b *Booking) IsGroupBooking() bool {
	return b.SessionGroupID != nil
}
