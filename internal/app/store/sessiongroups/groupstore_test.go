package sessiongroupstore_test

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	sessiongroupstore "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/store/sessiongroups"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/domain/models"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/testutil"
)

func TestCreate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := sessiongroupstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	course := fixtures.CreateCourse(ctx, "Agile Coaching")

	start := time.Now().UTC().AddDate(0, 1, 0)
	created, err := store.Create(ctx, newGroup("Kohorte März", course.ID, start))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID.IsZero() {
		t.Error("expected ID to be assigned")
	}
	if created.NameCI != "kohorte marz" {
		t.Errorf("expected folded name_ci, got %q", created.NameCI)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
}

func TestCreate_Validation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := sessiongroupstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	course := fixtures.CreateCourse(ctx, "Agile Coaching")
	start := time.Now().UTC().AddDate(0, 1, 0)

	g := newGroup("  ", course.ID, start)
	if _, err := store.Create(ctx, g); err == nil {
		t.Error("expected error for blank name")
	}

	g = newGroup("Kohorte", primitive.NilObjectID, start)
	if _, err := store.Create(ctx, g); err == nil {
		t.Error("expected error for missing course")
	}

	g = newGroup("Kohorte", course.ID, time.Time{})
	if _, err := store.Create(ctx, g); err == nil {
		t.Error("expected error for missing start date")
	}

	g = newGroup("Kohorte", course.ID, start)
	end := start.AddDate(0, 0, -7)
	g.EndDate = &end
	if _, err := store.Create(ctx, g); err == nil {
		t.Error("expected error for end date before start date")
	}

	g = newGroup("Kohorte", course.ID, start)
	g.Price = -1
	if _, err := store.Create(ctx, g); err == nil {
		t.Error("expected error for negative price")
	}
}

func TestList_NewestFirstAndCourseFilter(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := sessiongroupstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	courseA := fixtures.CreateCourse(ctx, "Course A")
	courseB := fixtures.CreateCourse(ctx, "Course B")

	first := fixtures.CreateSessionGroup(ctx, "First", courseA.ID)
	second := fixtures.CreateSessionGroup(ctx, "Second", courseA.ID)
	fixtures.CreateSessionGroup(ctx, "Other Course", courseB.ID)

	all, err := store.List(ctx, nil)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(all))
	}

	filtered, err := store.List(ctx, &courseA.ID)
	if err != nil {
		t.Fatalf("List with course filter failed: %v", err)
	}
	if len(filtered) != 2 {
		t.Fatalf("expected 2 groups for course A, got %d", len(filtered))
	}
	if filtered[0].ID != second.ID || filtered[1].ID != first.ID {
		t.Error("expected newest-created group first")
	}
}

func TestListActive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := sessiongroupstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	course := fixtures.CreateCourse(ctx, "Agile Coaching")

	later := fixtures.CreateSessionGroup(ctx, "Later", course.ID)
	sooner := fixtures.CreateSessionGroup(ctx, "Sooner", course.ID)
	inactive := fixtures.CreateSessionGroup(ctx, "Inactive", course.ID)

	soonStart := time.Now().UTC().AddDate(0, 0, 7)
	if _, err := store.Update(ctx, sooner.ID, sessiongroupstore.Patch{StartDate: &soonStart}); err != nil {
		t.Fatalf("Update start date failed: %v", err)
	}
	off := false
	if _, err := store.Update(ctx, inactive.ID, sessiongroupstore.Patch{IsActive: &off}); err != nil {
		t.Fatalf("Update is_active failed: %v", err)
	}

	active, err := store.ListActive(ctx, course.ID)
	if err != nil {
		t.Fatalf("ListActive failed: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("expected 2 active groups, got %d", len(active))
	}
	if active[0].ID != sooner.ID || active[1].ID != later.ID {
		t.Error("expected active groups ordered by soonest start date")
	}
}

func TestUpdate_PartialPatch(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := sessiongroupstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	course := fixtures.CreateCourse(ctx, "Agile Coaching")
	group := fixtures.CreateSessionGroup(ctx, "Kohorte März", course.ID)

	price := 249.0
	updated, err := store.Update(ctx, group.ID, sessiongroupstore.Patch{Price: &price})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.Price != 249.0 {
		t.Errorf("expected price 249, got %v", updated.Price)
	}
	if updated.Name != group.Name {
		t.Error("expected untouched fields to survive a partial patch")
	}
	if !updated.UpdatedAt.After(group.UpdatedAt) {
		t.Error("expected UpdatedAt to be refreshed")
	}
}

func TestUpdate_NameRefoldsCI(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := sessiongroupstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	course := fixtures.CreateCourse(ctx, "Agile Coaching")
	group := fixtures.CreateSessionGroup(ctx, "Old Name", course.ID)

	name := "Führungskräfte"
	updated, err := store.Update(ctx, group.ID, sessiongroupstore.Patch{Name: &name})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.NameCI != "fuhrungskrafte" {
		t.Errorf("expected refolded name_ci, got %q", updated.NameCI)
	}

	blank := "   "
	if _, err := store.Update(ctx, group.ID, sessiongroupstore.Patch{Name: &blank}); err == nil {
		t.Error("expected error for blank name")
	}
}

func TestUpdate_ClearEndDate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := sessiongroupstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	course := fixtures.CreateCourse(ctx, "Agile Coaching")
	group := fixtures.CreateSessionGroup(ctx, "Kohorte", course.ID)

	end := group.StartDate.AddDate(0, 2, 0)
	updated, err := store.Update(ctx, group.ID, sessiongroupstore.Patch{EndDate: &end})
	if err != nil {
		t.Fatalf("Update with end date failed: %v", err)
	}
	if updated.EndDate == nil {
		t.Fatal("expected end date to be set")
	}

	updated, err = store.Update(ctx, group.ID, sessiongroupstore.Patch{ClearEndDate: true})
	if err != nil {
		t.Fatalf("Update clearing end date failed: %v", err)
	}
	if updated.EndDate != nil {
		t.Error("expected end date to be cleared")
	}
}

func TestUpdate_EndBeforeStartRejected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := sessiongroupstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	course := fixtures.CreateCourse(ctx, "Agile Coaching")
	group := fixtures.CreateSessionGroup(ctx, "Kohorte", course.ID)

	end := group.StartDate.AddDate(0, 0, -7)
	if _, err := store.Update(ctx, group.ID, sessiongroupstore.Patch{EndDate: &end}); err == nil {
		t.Fatal("expected error for end date before start date")
	}

	g, err := store.GetByID(ctx, group.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if g.EndDate != nil {
		t.Error("expected invalid end date to be rejected without being stored")
	}
}

func TestUpdate_StartPastStoredEndRejected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := sessiongroupstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	course := fixtures.CreateCourse(ctx, "Agile Coaching")
	group := fixtures.CreateSessionGroup(ctx, "Kohorte", course.ID)

	end := group.StartDate.AddDate(0, 1, 0)
	if _, err := store.Update(ctx, group.ID, sessiongroupstore.Patch{EndDate: &end}); err != nil {
		t.Fatalf("Update with end date failed: %v", err)
	}

	badStart := end.AddDate(0, 0, 7)
	if _, err := store.Update(ctx, group.ID, sessiongroupstore.Patch{StartDate: &badStart}); err == nil {
		t.Fatal("expected error for start date past the stored end date")
	}

	g, err := store.GetByID(ctx, group.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if g.StartDate.UnixMilli() != group.StartDate.UnixMilli() {
		t.Errorf("expected start date to stay %v, got %v", group.StartDate, g.StartDate)
	}
	if g.EndDate == nil || g.EndDate.UnixMilli() != end.UnixMilli() {
		t.Error("expected stored end date to survive the rejected update")
	}
}

func TestDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := sessiongroupstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	course := fixtures.CreateCourse(ctx, "Agile Coaching")
	group := fixtures.CreateSessionGroup(ctx, "Kohorte", course.ID)

	if err := store.Delete(ctx, group.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.GetByID(ctx, group.ID); err != mongo.ErrNoDocuments {
		t.Errorf("expected ErrNoDocuments after delete, got %v", err)
	}
	if err := store.Delete(ctx, group.ID); err != mongo.ErrNoDocuments {
		t.Errorf("expected ErrNoDocuments for missing group, got %v", err)
	}
}

func TestDelete_BlockedByBookings(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := sessiongroupstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	course := fixtures.CreateCourse(ctx, "Agile Coaching")
	group := fixtures.CreateSessionGroup(ctx, "Kohorte", course.ID)
	student := fixtures.CreateStudent(ctx, "Test Student", "student@test.com")
	entry := fixtures.CreateTimetableEntry(ctx, "Kickoff", course.ID, &group.ID, 24)
	fixtures.CreateBooking(ctx, student.ID, group.ID, entry.ID)

	if err := store.Delete(ctx, group.ID); err != sessiongroupstore.ErrGroupHasBookings {
		t.Fatalf("expected ErrGroupHasBookings, got %v", err)
	}
	if _, err := store.GetByID(ctx, group.ID); err != nil {
		t.Errorf("expected group to survive blocked delete, got %v", err)
	}
}

func newGroup(name string, courseID primitive.ObjectID, start time.Time) models.SessionGroup {
	return models.SessionGroup{
		Name:      name,
		CourseID:  courseID,
		Price:     199,
		StartDate: start,
		IsActive:  true,
	}
}
