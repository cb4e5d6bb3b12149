package syllabusstore_test

import (
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	syllabusstore "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/store/syllabus"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/domain/models"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/testutil"
)

func TestCreateModule(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := syllabusstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	course := fixtures.CreateCourse(ctx, "Agile Coaching")

	created, err := store.CreateModule(ctx, models.SyllabusModule{
		CourseID: course.ID,
		TitleEN:  "  Foundations  ",
		TitleDE:  "Grundlagen",
		OrderNum: 1,
	})
	if err != nil {
		t.Fatalf("CreateModule failed: %v", err)
	}

	if created.ID.IsZero() {
		t.Error("expected ID to be assigned")
	}
	if created.TitleEN != "Foundations" {
		t.Errorf("expected trimmed title, got %q", created.TitleEN)
	}

	if _, err := store.CreateModule(ctx, models.SyllabusModule{CourseID: course.ID}); err == nil {
		t.Error("expected error for missing title")
	}
	if _, err := store.CreateModule(ctx, models.SyllabusModule{TitleEN: "Orphan"}); err == nil {
		t.Error("expected error for missing course")
	}
}

func TestListModules_Ordered(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := syllabusstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	course := fixtures.CreateCourse(ctx, "Agile Coaching")
	fixtures.CreateSyllabusModule(ctx, "Third", course.ID, 3)
	fixtures.CreateSyllabusModule(ctx, "First", course.ID, 1)
	fixtures.CreateSyllabusModule(ctx, "Second", course.ID, 2)

	mods, err := store.ListModules(ctx, course.ID)
	if err != nil {
		t.Fatalf("ListModules failed: %v", err)
	}
	if len(mods) != 3 {
		t.Fatalf("expected 3 modules, got %d", len(mods))
	}
	if mods[0].TitleEN != "First" || mods[1].TitleEN != "Second" || mods[2].TitleEN != "Third" {
		t.Error("expected modules ordered by order_num")
	}
}

func TestUpdateModule(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := syllabusstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	course := fixtures.CreateCourse(ctx, "Agile Coaching")
	module := fixtures.CreateSyllabusModule(ctx, "Old Title", course.ID, 1)

	err := store.UpdateModule(ctx, module.ID, models.SyllabusModule{
		TitleEN:  "New Title",
		TitleDE:  "Neuer Titel",
		OrderNum: 5,
	})
	if err != nil {
		t.Fatalf("UpdateModule failed: %v", err)
	}

	got, err := store.GetModule(ctx, module.ID)
	if err != nil {
		t.Fatalf("GetModule failed: %v", err)
	}
	if got.TitleEN != "New Title" || got.TitleDE != "Neuer Titel" || got.OrderNum != 5 {
		t.Error("expected module fields to be updated")
	}
}

func TestDeleteModule_CascadesDetails(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := syllabusstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	course := fixtures.CreateCourse(ctx, "Agile Coaching")
	module := fixtures.CreateSyllabusModule(ctx, "Foundations", course.ID, 1)

	if _, err := store.CreateDetail(ctx, models.SyllabusDetail{SyllabusID: module.ID, TextEN: "Point one", OrderNum: 1}); err != nil {
		t.Fatalf("CreateDetail failed: %v", err)
	}
	if _, err := store.CreateDetail(ctx, models.SyllabusDetail{SyllabusID: module.ID, TextEN: "Point two", OrderNum: 2}); err != nil {
		t.Fatalf("CreateDetail failed: %v", err)
	}

	n, err := store.DeleteModule(ctx, module.ID)
	if err != nil {
		t.Fatalf("DeleteModule failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 deleted module, got %d", n)
	}

	details, err := store.ListDetails(ctx, module.ID)
	if err != nil {
		t.Fatalf("ListDetails failed: %v", err)
	}
	if len(details) != 0 {
		t.Errorf("expected details to be cascaded, got %d", len(details))
	}
}

func TestDeleteByCourse(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := syllabusstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	course := fixtures.CreateCourse(ctx, "Agile Coaching")
	other := fixtures.CreateCourse(ctx, "Moderation")

	module := fixtures.CreateSyllabusModule(ctx, "Doomed", course.ID, 1)
	if _, err := store.CreateDetail(ctx, models.SyllabusDetail{SyllabusID: module.ID, TextEN: "Point"}); err != nil {
		t.Fatalf("CreateDetail failed: %v", err)
	}
	keep := fixtures.CreateSyllabusModule(ctx, "Kept", other.ID, 1)

	if err := store.DeleteByCourse(ctx, course.ID); err != nil {
		t.Fatalf("DeleteByCourse failed: %v", err)
	}

	mods, err := store.ListModules(ctx, course.ID)
	if err != nil {
		t.Fatalf("ListModules failed: %v", err)
	}
	if len(mods) != 0 {
		t.Errorf("expected no modules left for the course, got %d", len(mods))
	}
	details, err := store.ListDetails(ctx, module.ID)
	if err != nil {
		t.Fatalf("ListDetails failed: %v", err)
	}
	if len(details) != 0 {
		t.Errorf("expected details to be cascaded, got %d", len(details))
	}

	if _, err := store.GetModule(ctx, keep.ID); err != nil {
		t.Errorf("expected module of another course to survive, got %v", err)
	}
}

func TestDetails_CRUD(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := syllabusstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	course := fixtures.CreateCourse(ctx, "Agile Coaching")
	module := fixtures.CreateSyllabusModule(ctx, "Foundations", course.ID, 1)

	second, err := store.CreateDetail(ctx, models.SyllabusDetail{SyllabusID: module.ID, TextEN: "Second", OrderNum: 2})
	if err != nil {
		t.Fatalf("CreateDetail failed: %v", err)
	}
	first, err := store.CreateDetail(ctx, models.SyllabusDetail{SyllabusID: module.ID, TextEN: "First", OrderNum: 1})
	if err != nil {
		t.Fatalf("CreateDetail failed: %v", err)
	}
	if first.CreatedAt.IsZero() || first.UpdatedAt.IsZero() {
		t.Error("expected created_at and updated_at to be set")
	}

	if _, err := store.CreateDetail(ctx, models.SyllabusDetail{SyllabusID: module.ID}); err == nil {
		t.Error("expected error for missing text")
	}

	rows, err := store.ListDetails(ctx, module.ID)
	if err != nil {
		t.Fatalf("ListDetails failed: %v", err)
	}
	if len(rows) != 2 || rows[0].ID != first.ID || rows[1].ID != second.ID {
		t.Error("expected details ordered by order_num")
	}

	err = store.UpdateDetail(ctx, first.ID, models.SyllabusDetail{TextEN: "Updated", TextDE: "Aktualisiert", OrderNum: 3})
	if err != nil {
		t.Fatalf("UpdateDetail failed: %v", err)
	}
	rows, err = store.ListDetails(ctx, module.ID)
	if err != nil {
		t.Fatalf("ListDetails failed: %v", err)
	}
	if rows[1].TextEN != "Updated" {
		t.Errorf("expected updated detail last, got %q", rows[1].TextEN)
	}
	if rows[1].UpdatedAt.Before(first.UpdatedAt) {
		t.Error("expected updated_at to advance on update")
	}

	n, err := store.DeleteDetail(ctx, second.ID)
	if err != nil {
		t.Fatalf("DeleteDetail failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 deleted detail, got %d", n)
	}
}

func TestGetModule_Missing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := syllabusstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	course := fixtures.CreateCourse(ctx, "Agile Coaching")
	module := fixtures.CreateSyllabusModule(ctx, "Foundations", course.ID, 1)

	if _, err := store.DeleteModule(ctx, module.ID); err != nil {
		t.Fatalf("DeleteModule failed: %v", err)
	}
	if _, err := store.GetModule(ctx, module.ID); err != mongo.ErrNoDocuments {
		t.Errorf("expected ErrNoDocuments, got %v", err)
	}
}
