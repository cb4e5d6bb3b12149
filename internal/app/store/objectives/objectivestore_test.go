package objectivestore_test

import (
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	objectivestore "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/store/objectives"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/domain/models"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/testutil"
)

func TestCreate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := objectivestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	course := fixtures.CreateCourse(ctx, "Agile Coaching")

	created, err := store.Create(ctx, models.Objective{
		CourseID: course.ID,
		TextEN:   "  Facilitate retrospectives  ",
		TextDE:   "Retrospektiven moderieren",
		OrderNum: 1,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID.IsZero() {
		t.Error("expected ID to be assigned")
	}
	if created.TextEN != "Facilitate retrospectives" {
		t.Errorf("expected trimmed text, got %q", created.TextEN)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected created_at and updated_at to be set")
	}

	if _, err := store.Create(ctx, models.Objective{CourseID: course.ID}); err == nil {
		t.Error("expected error for missing text")
	}
	if _, err := store.Create(ctx, models.Objective{TextEN: "Orphan"}); err == nil {
		t.Error("expected error for missing course")
	}
}

func TestListByCourse_Ordered(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := objectivestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	course := fixtures.CreateCourse(ctx, "Agile Coaching")
	other := fixtures.CreateCourse(ctx, "Moderation")

	if _, err := store.Create(ctx, models.Objective{CourseID: course.ID, TextEN: "Second", OrderNum: 2}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.Create(ctx, models.Objective{CourseID: course.ID, TextEN: "First", OrderNum: 1}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.Create(ctx, models.Objective{CourseID: other.ID, TextEN: "Elsewhere", OrderNum: 1}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	rows, err := store.ListByCourse(ctx, course.ID)
	if err != nil {
		t.Fatalf("ListByCourse failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 objectives, got %d", len(rows))
	}
	if rows[0].TextEN != "First" || rows[1].TextEN != "Second" {
		t.Error("expected objectives ordered by order_num")
	}
}

func TestUpdate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := objectivestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	course := fixtures.CreateCourse(ctx, "Agile Coaching")
	created, err := store.Create(ctx, models.Objective{CourseID: course.ID, TextEN: "Old", OrderNum: 1})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	err = store.Update(ctx, created.ID, models.Objective{TextEN: "New", TextDE: "Neu", OrderNum: 4})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.TextEN != "New" || got.TextDE != "Neu" || got.OrderNum != 4 {
		t.Error("expected objective fields to be updated")
	}
	if got.UpdatedAt.Before(created.UpdatedAt) {
		t.Error("expected updated_at to advance on update")
	}

	if err := store.Update(ctx, created.ID, models.Objective{TextEN: "X"}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
}

func TestDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := objectivestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	course := fixtures.CreateCourse(ctx, "Agile Coaching")
	created, err := store.Create(ctx, models.Objective{CourseID: course.ID, TextEN: "Doomed"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	n, err := store.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 deleted objective, got %d", n)
	}
	if _, err := store.GetByID(ctx, created.ID); err != mongo.ErrNoDocuments {
		t.Errorf("expected ErrNoDocuments, got %v", err)
	}
}

func TestDeleteByCourse(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := objectivestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	course := fixtures.CreateCourse(ctx, "Agile Coaching")
	other := fixtures.CreateCourse(ctx, "Moderation")

	if _, err := store.Create(ctx, models.Objective{CourseID: course.ID, TextEN: "One"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.Create(ctx, models.Objective{CourseID: course.ID, TextEN: "Two"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	kept, err := store.Create(ctx, models.Objective{CourseID: other.ID, TextEN: "Kept"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := store.DeleteByCourse(ctx, course.ID); err != nil {
		t.Fatalf("DeleteByCourse failed: %v", err)
	}

	rows, err := store.ListByCourse(ctx, course.ID)
	if err != nil {
		t.Fatalf("ListByCourse failed: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected no objectives left, got %d", len(rows))
	}
	if _, err := store.GetByID(ctx, kept.ID); err != nil {
		t.Errorf("expected objective of another course to survive, got %v", err)
	}
}
