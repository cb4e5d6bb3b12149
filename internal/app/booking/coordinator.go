// Package booking coordinates session-group bookings: it loads a
// user's existing group bookings, splits the catalog into booked and
// bookable groups, and creates new bookings with the timetable
// reference resolved.
package booking

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/store/queries/groupcatalog"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/domain/models"
)

// ErrAlreadyBooked is returned when the user already holds a booking
// for the session group.
var ErrAlreadyBooked = errors.New("session group already booked")

// BookingStore is the slice of the bookings store the coordinator
// needs.
type BookingStore interface {
	Insert(ctx context.Context, b models.Booking) (models.Booking, error)
	ListGroupBookingsByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Booking, error)
}

// TimetableResolver finds a timetable entry to hang a booking on.
type TimetableResolver interface {
	FindAnyForGroup(ctx context.Context, groupID primitive.ObjectID) (primitive.ObjectID, error)
}

// Coordinator ties the bookings store and the timetable together.
type Coordinator struct {
	bookings  BookingStore
	timetable TimetableResolver
	log       *zap.Logger
}

func NewCoordinator(bookings BookingStore, timetable TimetableResolver, log *zap.Logger) *Coordinator {
	return &Coordinator{bookings: bookings, timetable: timetable, log: log}
}

// LoadUserBookings returns the set of session-group IDs the user has
// booked. Every booking row counts, regardless of its status; a
// cancelled booking still marks the group as taken.
func (c *Coordinator) LoadUserBookings(ctx context.Context, userID primitive.ObjectID) (map[primitive.ObjectID]bool, error) {
	rows, err := c.bookings.ListGroupBookingsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	booked := make(map[primitive.ObjectID]bool, len(rows))
	for _, b := range rows {
		if b.SessionGroupID != nil {
			booked[*b.SessionGroupID] = true
		}
	}
	return booked, nil
}

// Partition splits the catalog into groups the user has booked and
// groups still open to them. Ordering within each slice follows the
// input; every input group lands in exactly one of the two.
func Partition(groups []groupcatalog.GroupItem, booked map[primitive.ObjectID]bool) (bookedGroups, bookable []groupcatalog.GroupItem) {
	bookedGroups = []groupcatalog.GroupItem{}
	bookable = []groupcatalog.GroupItem{}
	for _, g := range groups {
		if booked[g.ID] {
			bookedGroups = append(bookedGroups, g)
		} else {
			bookable = append(bookable, g)
		}
	}
	return bookedGroups, bookable
}

// Request carries the inputs for a new group booking.
type Request struct {
	UserID           primitive.ObjectID
	SessionGroupID   primitive.ObjectID
	CourseID         primitive.ObjectID
	ParticipantName  string
	ParticipantEmail string
	PaymentStatus    string
}

// BookGroup books a session group for a user. It re-checks the user's
// bookings first and returns ErrAlreadyBooked without inserting when
// the group is already taken. The booking's timetable reference is any
// entry of the group's timetable; the legacy schema demands a value
// there, so a group without entries gets the sentinel zero ID instead.
func (c *Coordinator) BookGroup(ctx context.Context, req Request) (models.Booking, error) {
	booked, err := c.LoadUserBookings(ctx, req.UserID)
	if err != nil {
		return models.Booking{}, err
	}
	if booked[req.SessionGroupID] {
		return models.Booking{}, ErrAlreadyBooked
	}

	timetableID, err := c.timetable.FindAnyForGroup(ctx, req.SessionGroupID)
	if err != nil {
		return models.Booking{}, err
	}
	if timetableID == models.SentinelTimetableID {
		c.log.Info("group has no timetable entries, booking with sentinel reference",
			zap.String("session_group_id", req.SessionGroupID.Hex()))
	}

	groupID := req.SessionGroupID
	courseID := req.CourseID

	b := models.Booking{
		UserID:           req.UserID,
		SessionGroupID:   &groupID,
		TimetableID:      timetableID,
		Status:           models.BookingConfirmed,
		PaymentStatus:    req.PaymentStatus,
		Reference:        uuid.NewString(),
		ParticipantName:  req.ParticipantName,
		ParticipantEmail: req.ParticipantEmail,
	}
	if !courseID.IsZero() {
		b.CourseID = &courseID
	}

	created, err := c.bookings.Insert(ctx, b)
	if err != nil {
		return models.Booking{}, err
	}

	c.log.Info("session group booked",
		zap.String("user_id", req.UserID.Hex()),
		zap.String("session_group_id", req.SessionGroupID.Hex()),
		zap.String("reference", created.Reference))

	return created, nil
}
