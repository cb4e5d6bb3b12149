package groups_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	uierrors "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/features/errors"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/features/groups"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/auth"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/testutil"
)

func newTestHandler(t *testing.T) (*groups.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	errLog := uierrors.NewErrorLogger(logger)
	handler := groups.NewHandler(db, errLog, logger)
	fixtures := testutil.NewFixtures(t, db)
	return handler, fixtures
}

func adminUser() *auth.SessionUser {
	return &auth.SessionUser{
		ID:    primitive.NewObjectID().Hex(),
		Name:  "Test Admin",
		Email: "admin@test.com",
		Role:  "admin",
	}
}

func postForm(path string, form url.Values, u *auth.SessionUser) *http.Request {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return auth.WithTestUser(req, u)
}

func TestHandleCreateGroup_Success(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	db := fixtures.DB()
	course := fixtures.CreateCourse(ctx, "Agile Coaching")

	form := url.Values{
		"name":       {"Kohorte März"},
		"course_id":  {course.ID.Hex()},
		"start_date": {"2026-10-01"},
		"price":      {"249.00"},
		"is_active":  {"on"},
	}

	rec := httptest.NewRecorder()
	handler.HandleCreateGroup(rec, postForm("/admin/groups", form, adminUser()))

	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}

	count, err := db.Collection("session_groups").CountDocuments(ctx, bson.M{"name": "Kohorte März"})
	if err != nil {
		t.Fatalf("CountDocuments failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 group, got %d", count)
	}
}

func TestHandleCreateGroup_MissingName(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	db := fixtures.DB()
	course := fixtures.CreateCourse(ctx, "Agile Coaching")

	form := url.Values{
		"course_id":  {course.ID.Hex()},
		"start_date": {"2026-10-01"},
		"price":      {"249.00"},
	}

	rec := httptest.NewRecorder()
	func() {
		defer func() { recover() }()
		handler.HandleCreateGroup(rec, postForm("/admin/groups", form, adminUser()))
	}()

	count, _ := db.Collection("session_groups").CountDocuments(ctx, bson.M{})
	if count != 0 {
		t.Errorf("expected 0 groups, got %d", count)
	}
}

func TestHandleCreateGroup_BadDate(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	db := fixtures.DB()
	course := fixtures.CreateCourse(ctx, "Agile Coaching")

	form := url.Values{
		"name":       {"Kohorte"},
		"course_id":  {course.ID.Hex()},
		"start_date": {"01.10.2026"},
		"price":      {"249.00"},
	}

	rec := httptest.NewRecorder()
	func() {
		defer func() { recover() }()
		handler.HandleCreateGroup(rec, postForm("/admin/groups", form, adminUser()))
	}()

	count, _ := db.Collection("session_groups").CountDocuments(ctx, bson.M{})
	if count != 0 {
		t.Errorf("expected 0 groups, got %d", count)
	}
}

func TestHandleEditGroup(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	db := fixtures.DB()
	course := fixtures.CreateCourse(ctx, "Agile Coaching")
	group := fixtures.CreateSessionGroup(ctx, "Old Name", course.ID)

	form := url.Values{
		"name":       {"New Name"},
		"course_id":  {course.ID.Hex()},
		"start_date": {"2026-11-15"},
		"price":      {"349.00"},
		"is_active":  {"on"},
	}

	req := postForm("/admin/groups/"+group.ID.Hex()+"/edit", form, adminUser())
	req = testutil.WithChiURLParam(req, "id", group.ID.Hex())

	rec := httptest.NewRecorder()
	handler.HandleEditGroup(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}

	var got struct {
		Name  string  `bson:"name"`
		Price float64 `bson:"price"`
	}
	if err := db.Collection("session_groups").FindOne(ctx, bson.M{"_id": group.ID}).Decode(&got); err != nil {
		t.Fatalf("FindOne failed: %v", err)
	}
	if got.Name != "New Name" {
		t.Errorf("expected updated name, got %q", got.Name)
	}
	if got.Price != 349 {
		t.Errorf("expected updated price, got %v", got.Price)
	}
}

func TestHandleDeleteGroup(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	db := fixtures.DB()
	course := fixtures.CreateCourse(ctx, "Agile Coaching")
	group := fixtures.CreateSessionGroup(ctx, "Doomed", course.ID)
	fixtures.CreateTimetableEntry(ctx, "Kickoff", course.ID, &group.ID, 24)

	req := postForm("/admin/groups/"+group.ID.Hex()+"/delete", url.Values{}, adminUser())
	req = testutil.WithChiURLParam(req, "id", group.ID.Hex())

	rec := httptest.NewRecorder()
	handler.HandleDeleteGroup(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/groups?notice=deleted" {
		t.Errorf("unexpected redirect target %q", loc)
	}

	count, _ := db.Collection("session_groups").CountDocuments(ctx, bson.M{})
	if count != 0 {
		t.Errorf("expected group to be deleted, got %d", count)
	}
	entries, _ := db.Collection("course_timetable").CountDocuments(ctx, bson.M{"session_group_id": group.ID})
	if entries != 0 {
		t.Errorf("expected group timetable entries to be removed, got %d", entries)
	}
}

func TestHandleDeleteGroup_BlockedByBookings(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	db := fixtures.DB()
	course := fixtures.CreateCourse(ctx, "Agile Coaching")
	group := fixtures.CreateSessionGroup(ctx, "Booked", course.ID)
	student := fixtures.CreateStudent(ctx, "Test Student", "student@test.com")
	entry := fixtures.CreateTimetableEntry(ctx, "Kickoff", course.ID, &group.ID, 24)
	fixtures.CreateBooking(ctx, student.ID, group.ID, entry.ID)

	req := postForm("/admin/groups/"+group.ID.Hex()+"/delete", url.Values{}, adminUser())
	req = testutil.WithChiURLParam(req, "id", group.ID.Hex())

	rec := httptest.NewRecorder()
	handler.HandleDeleteGroup(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/groups?notice=has_bookings" {
		t.Errorf("unexpected redirect target %q", loc)
	}

	count, _ := db.Collection("session_groups").CountDocuments(ctx, bson.M{"_id": group.ID})
	if count != 1 {
		t.Error("expected group to survive blocked delete")
	}
}
