package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/winnaoderwas/academy-coachigo-sub001/internal/domain/models"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateCourse creates an active test course with the given English
// title and returns it with its generated ID.
func (f *Fixtures) CreateCourse(ctx context.Context, titleEN string) models.Course {
	f.t.Helper()

	now := time.Now().UTC()
	course := models.Course{
		ID:       primitive.NewObjectID(),
		Slug:     text.Fold(titleEN),
		TitleEN:  titleEN,
		TitleDE:  titleEN + " (DE)",
		TitleCI:  text.Fold(titleEN),
		Category: models.CategoryCourse,
		Price:    499,
		Status:   "active",

		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("courses").InsertOne(ctx, course); err != nil {
		f.t.Fatalf("failed to create test course: %v", err)
	}
	return course
}

// CreateSessionGroup creates an active session group for the course,
// starting in the future.
func (f *Fixtures) CreateSessionGroup(ctx context.Context, name string, courseID primitive.ObjectID) models.SessionGroup {
	f.t.Helper()

	now := time.Now().UTC()
	group := models.SessionGroup{
		ID:        primitive.NewObjectID(),
		CourseID:  courseID,
		Name:      name,
		NameCI:    text.Fold(name),
		Price:     100,
		StartDate: now.AddDate(0, 1, 0),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("session_groups").InsertOne(ctx, group); err != nil {
		f.t.Fatalf("failed to create test session group: %v", err)
	}
	return group
}

// CreateTimetableEntry creates a timetable entry belonging to the given
// group, offset hours after the group start.
func (f *Fixtures) CreateTimetableEntry(ctx context.Context, title string, courseID primitive.ObjectID, groupID *primitive.ObjectID, offsetHours int) models.TimetableEntry {
	f.t.Helper()

	now := time.Now().UTC()
	entry := models.TimetableEntry{
		ID:             primitive.NewObjectID(),
		CourseID:       courseID,
		SessionGroupID: groupID,
		Title:          title,
		StartAt:        now.AddDate(0, 1, 0).Add(time.Duration(offsetHours) * time.Hour),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if _, err := f.db.Collection("course_timetable").InsertOne(ctx, entry); err != nil {
		f.t.Fatalf("failed to create test timetable entry: %v", err)
	}
	return entry
}

// CreateSyllabusModule creates a syllabus module for the course.
func (f *Fixtures) CreateSyllabusModule(ctx context.Context, titleEN string, courseID primitive.ObjectID, orderNum int) models.SyllabusModule {
	f.t.Helper()

	now := time.Now().UTC()
	mod := models.SyllabusModule{
		ID:        primitive.NewObjectID(),
		CourseID:  courseID,
		TitleEN:   titleEN,
		OrderNum:  orderNum,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("course_syllabus").InsertOne(ctx, mod); err != nil {
		f.t.Fatalf("failed to create test syllabus module: %v", err)
	}
	return mod
}

// CreateBooking creates a confirmed group booking for the user.
func (f *Fixtures) CreateBooking(ctx context.Context, userID primitive.ObjectID, groupID primitive.ObjectID, timetableID primitive.ObjectID) models.Booking {
	f.t.Helper()

	booking := models.Booking{
		ID:             primitive.NewObjectID(),
		UserID:         userID,
		SessionGroupID: &groupID,
		TimetableID:    timetableID,
		Status:         models.BookingConfirmed,
		Reference:      "test-reference",
		BookedAt:       time.Now().UTC(),
	}

	if _, err := f.db.Collection("session_bookings").InsertOne(ctx, booking); err != nil {
		f.t.Fatalf("failed to create test booking: %v", err)
	}
	return booking
}

// CreateUser creates a test user with the given role.
func (f *Fixtures) CreateUser(ctx context.Context, fullName, email, role string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.User{
		ID:         primitive.NewObjectID(),
		FullName:   fullName,
		FullNameCI: text.Fold(fullName),
		Email:      email,
		EmailCI:    text.Fold(email),
		AuthMethod: models.AuthMethodPassword,
		Role:       role,
		Status:     "active",
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateStudent creates a test student user.
func (f *Fixtures) CreateStudent(ctx context.Context, fullName, email string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, fullName, email, "student")
}

// CreateAdmin creates a test admin user.
func (f *Fixtures) CreateAdmin(ctx context.Context, fullName, email string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, fullName, email, "admin")
}
