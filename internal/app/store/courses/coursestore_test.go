package coursestore_test

import (
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	coursestore "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/store/courses"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/paging"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/domain/models"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/testutil"
)

func ensureSlugIndex(t *testing.T, db *mongo.Database) {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := db.Collection("courses").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		t.Fatalf("failed to create slug index: %v", err)
	}
}

func TestCreate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := coursestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Course{
		TitleEN: "Agile Coaching Fundamentals",
		TitleDE: "Grundlagen des Agile Coachings",
		Price:   499,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID.IsZero() {
		t.Error("expected ID to be assigned")
	}
	if created.Slug != "agile-coaching-fundamentals" {
		t.Errorf("expected derived slug, got %q", created.Slug)
	}
	if created.TitleCI != "agile coaching fundamentals" {
		t.Errorf("expected folded title_ci, got %q", created.TitleCI)
	}
	if created.Status != "active" {
		t.Errorf("expected default status active, got %q", created.Status)
	}
	if created.Category != models.CategoryCourse {
		t.Errorf("expected default category course, got %q", created.Category)
	}
}

func TestCreate_Validation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := coursestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, models.Course{TitleEN: "  "}); err == nil {
		t.Error("expected error for blank English title")
	}
	if _, err := store.Create(ctx, models.Course{TitleEN: "Valid", Price: -5}); err == nil {
		t.Error("expected error for negative price")
	}
	if _, err := store.Create(ctx, models.Course{TitleEN: "Valid", Category: "webinar"}); err == nil {
		t.Error("expected error for unknown category")
	}
	if _, err := store.Create(ctx, models.Course{TitleEN: "Valid", Status: "archived"}); err == nil {
		t.Error("expected error for unknown status")
	}
}

func TestCreate_DuplicateSlug(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ensureSlugIndex(t, db)
	store := coursestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, models.Course{TitleEN: "Agile Coaching"}); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	_, err := store.Create(ctx, models.Course{TitleEN: "Agile Coaching"})
	if err != coursestore.ErrDuplicateSlug {
		t.Fatalf("expected ErrDuplicateSlug, got %v", err)
	}
}

func TestGetBySlug(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := coursestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	course := fixtures.CreateCourse(ctx, "Agile Coaching")

	got, err := store.GetBySlug(ctx, course.Slug)
	if err != nil {
		t.Fatalf("GetBySlug failed: %v", err)
	}
	if got.ID != course.ID {
		t.Error("expected the created course back")
	}

	if _, err := store.GetBySlug(ctx, "no-such-slug"); err != mongo.ErrNoDocuments {
		t.Errorf("expected ErrNoDocuments for unknown slug, got %v", err)
	}
}

func TestUpdate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := coursestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	course := fixtures.CreateCourse(ctx, "Agile Coaching")

	err := store.Update(ctx, course.ID, models.Course{
		TitleDE:   "Agiles Coaching",
		SummaryEN: "A practical introduction.",
		Price:     299,
		Status:    "disabled",
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := store.GetByID(ctx, course.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.TitleEN != course.TitleEN {
		t.Error("expected blank English title to leave the field untouched")
	}
	if got.TitleDE != "Agiles Coaching" {
		t.Errorf("expected updated German title, got %q", got.TitleDE)
	}
	if got.SummaryEN != "A practical introduction." {
		t.Errorf("expected updated summary, got %q", got.SummaryEN)
	}
	if got.Price != 299 {
		t.Errorf("expected price 299, got %v", got.Price)
	}
	if got.Status != "disabled" {
		t.Errorf("expected status disabled, got %q", got.Status)
	}
}

func TestUpdate_ClearsSummaries(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := coursestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	course := fixtures.CreateCourse(ctx, "Agile Coaching")
	if err := store.Update(ctx, course.ID, models.Course{SummaryEN: "temp", DescriptionEN: "temp"}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if err := store.Update(ctx, course.ID, models.Course{}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := store.GetByID(ctx, course.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.SummaryEN != "" || got.DescriptionEN != "" {
		t.Error("expected summary and description to be cleared by empty update")
	}
}

func TestList_Filters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := coursestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, models.Course{TitleEN: "Agile Coaching"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.Create(ctx, models.Course{TitleEN: "Scrum Bootcamp", Category: models.CategoryBootcamp}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.Create(ctx, models.Course{TitleEN: "Retired Course", Status: "disabled"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	all, err := store.List(ctx, coursestore.ListFilter{}, 1)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 courses, got %d", len(all))
	}

	active, err := store.List(ctx, coursestore.ListFilter{ActiveOnly: true}, 1)
	if err != nil {
		t.Fatalf("List active failed: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("expected 2 active courses, got %d", len(active))
	}

	bootcamps, err := store.List(ctx, coursestore.ListFilter{Category: models.CategoryBootcamp}, 1)
	if err != nil {
		t.Fatalf("List bootcamps failed: %v", err)
	}
	if len(bootcamps) != 1 || bootcamps[0].TitleEN != "Scrum Bootcamp" {
		t.Fatalf("expected the bootcamp only, got %d courses", len(bootcamps))
	}

	found, err := store.List(ctx, coursestore.ListFilter{SearchQuery: "agile"}, 1)
	if err != nil {
		t.Fatalf("List search failed: %v", err)
	}
	if len(found) != 1 || found[0].TitleEN != "Agile Coaching" {
		t.Fatalf("expected the prefix match only, got %d courses", len(found))
	}
}

func TestList_Pagination(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := coursestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for i := 0; i < paging.PageSize+2; i++ {
		if _, err := store.Create(ctx, models.Course{TitleEN: fmt.Sprintf("Course %03d", i)}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	page1, err := store.List(ctx, coursestore.ListFilter{}, 1)
	if err != nil {
		t.Fatalf("List page 1 failed: %v", err)
	}
	if len(page1) != paging.PageSize+1 {
		t.Fatalf("expected %d rows on page 1, got %d", paging.PageSize+1, len(page1))
	}

	res := paging.TrimPage(&page1, 1)
	if len(page1) != paging.PageSize {
		t.Errorf("expected trimmed page of %d rows, got %d", paging.PageSize, len(page1))
	}
	if res.HasPrev || !res.HasNext {
		t.Error("expected page 1 to have a next page and no previous page")
	}

	page2, err := store.List(ctx, coursestore.ListFilter{}, 2)
	if err != nil {
		t.Fatalf("List page 2 failed: %v", err)
	}
	res = paging.TrimPage(&page2, 2)
	if len(page2) != 2 {
		t.Errorf("expected 2 rows on page 2, got %d", len(page2))
	}
	if !res.HasPrev || res.HasNext {
		t.Error("expected page 2 to have a previous page and no next page")
	}
}

func TestDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := coursestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	course := fixtures.CreateCourse(ctx, "Agile Coaching")

	n, err := store.Delete(ctx, course.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 deleted course, got %d", n)
	}

	n, err = store.Delete(ctx, course.ID)
	if err != nil {
		t.Fatalf("second Delete failed: %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0 deleted for missing course, got %d", n)
	}
}

func TestListAll_SortedByTitle(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := coursestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, title := range []string{"Zen Leadership", "Agile Coaching", "Moderation"} {
		if _, err := store.Create(ctx, models.Course{TitleEN: title}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	all, err := store.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 courses, got %d", len(all))
	}
	if all[0].TitleEN != "Agile Coaching" || all[2].TitleEN != "Zen Leadership" {
		t.Error("expected courses sorted by folded title")
	}
}
