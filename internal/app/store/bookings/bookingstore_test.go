package bookingstore_test

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	bookingstore "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/store/bookings"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/domain/models"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/testutil"
)

func TestInsert(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := bookingstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	groupID := primitive.NewObjectID()
	created, err := store.Insert(ctx, models.Booking{
		UserID:           primitive.NewObjectID(),
		SessionGroupID:   &groupID,
		TimetableID:      primitive.NewObjectID(),
		PaymentStatus:    "pending",
		Reference:        "ref-001",
		ParticipantName:  "Test Student",
		ParticipantEmail: "student@test.com",
	})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	if created.ID.IsZero() {
		t.Error("expected ID to be assigned")
	}
	if created.BookedAt.IsZero() {
		t.Error("expected BookedAt to be set")
	}
	if created.Status != models.BookingConfirmed {
		t.Errorf("expected default status %q, got %q", models.BookingConfirmed, created.Status)
	}
}

func TestInsert_RequiresUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := bookingstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Insert(ctx, models.Booking{Reference: "ref-002"}); err == nil {
		t.Error("expected error for missing user ID")
	}
}

func TestInsert_SentinelTimetable(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := bookingstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	userID := primitive.NewObjectID()
	created, err := store.Insert(ctx, models.Booking{
		UserID:      userID,
		TimetableID: models.SentinelTimetableID,
		Reference:   "ref-003",
	})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	rows, err := store.ListByUser(ctx, userID)
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(rows))
	}
	if rows[0].TimetableID != models.SentinelTimetableID {
		t.Error("expected sentinel timetable ID to round-trip")
	}
	if rows[0].ID != created.ID {
		t.Error("expected the inserted booking back")
	}
}

func TestListGroupBookingsByUser_ExcludesCourseOnlyRows(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := bookingstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	userID := primitive.NewObjectID()
	groupID := primitive.NewObjectID()
	courseID := primitive.NewObjectID()

	if _, err := store.Insert(ctx, models.Booking{
		UserID:         userID,
		SessionGroupID: &groupID,
		Reference:      "ref-group",
	}); err != nil {
		t.Fatalf("Insert group booking failed: %v", err)
	}
	if _, err := store.Insert(ctx, models.Booking{
		UserID:      userID,
		CourseID:    &courseID,
		TimetableID: models.SentinelTimetableID,
		Reference:   "ref-course",
	}); err != nil {
		t.Fatalf("Insert course booking failed: %v", err)
	}

	rows, err := store.ListGroupBookingsByUser(ctx, userID)
	if err != nil {
		t.Fatalf("ListGroupBookingsByUser failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 group booking, got %d", len(rows))
	}
	if rows[0].Reference != "ref-group" {
		t.Errorf("expected the group booking, got %q", rows[0].Reference)
	}
}

func TestListGroupBookingsByUser_IncludesCancelled(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := bookingstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	userID := primitive.NewObjectID()
	groupID := primitive.NewObjectID()

	if _, err := store.Insert(ctx, models.Booking{
		UserID:         userID,
		SessionGroupID: &groupID,
		Status:         models.BookingCancelled,
		Reference:      "ref-cancelled",
	}); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	rows, err := store.ListGroupBookingsByUser(ctx, userID)
	if err != nil {
		t.Fatalf("ListGroupBookingsByUser failed: %v", err)
	}
	if len(rows) != 1 {
		t.Error("expected cancelled booking to still count as booked")
	}
}

func TestCountByGroup(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := bookingstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	course := fixtures.CreateCourse(ctx, "Agile Coaching")
	group := fixtures.CreateSessionGroup(ctx, "Kohorte", course.ID)
	other := fixtures.CreateSessionGroup(ctx, "Andere", course.ID)
	entry := fixtures.CreateTimetableEntry(ctx, "Kickoff", course.ID, &group.ID, 24)

	fixtures.CreateBooking(ctx, primitive.NewObjectID(), group.ID, entry.ID)
	fixtures.CreateBooking(ctx, primitive.NewObjectID(), group.ID, entry.ID)
	fixtures.CreateBooking(ctx, primitive.NewObjectID(), other.ID, entry.ID)

	n, err := store.CountByGroup(ctx, group.ID)
	if err != nil {
		t.Fatalf("CountByGroup failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 bookings for the group, got %d", n)
	}
}

func TestListByGroup(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := bookingstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	course := fixtures.CreateCourse(ctx, "Agile Coaching")
	group := fixtures.CreateSessionGroup(ctx, "Kohorte", course.ID)
	entry := fixtures.CreateTimetableEntry(ctx, "Kickoff", course.ID, &group.ID, 24)

	fixtures.CreateBooking(ctx, primitive.NewObjectID(), group.ID, entry.ID)
	fixtures.CreateBooking(ctx, primitive.NewObjectID(), group.ID, entry.ID)

	rows, err := store.ListByGroup(ctx, group.ID)
	if err != nil {
		t.Fatalf("ListByGroup failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(rows))
	}
}
