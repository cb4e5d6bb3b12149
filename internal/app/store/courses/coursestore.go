// internal/app/store/courses/coursestore.go
package coursestore

import (
	"context"
	"errors"
	"strings"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/paging"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/status"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/domain/models"
)

type Store struct {
	c *mongo.Collection
}

var ErrDuplicateSlug = errors.New("a course with this slug already exists")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("courses")}
}

// Create inserts a new course, deriving Slug and TitleCI and setting
// timestamps. The English title is required; price must not be
// negative.
func (s *Store) Create(ctx context.Context, c models.Course) (models.Course, error) {
	now := time.Now().UTC()

	c.ID = primitive.NewObjectID()
	c.TitleCI = text.Fold(c.TitleEN)
	if strings.TrimSpace(c.Slug) == "" {
		c.Slug = slugify(c.TitleEN)
	}
	if c.Status == "" {
		c.Status = status.Active
	}
	if c.Category == "" {
		c.Category = models.CategoryCourse
	}
	c.CreatedAt = now
	c.UpdatedAt = now

	if strings.TrimSpace(c.TitleEN) == "" {
		return models.Course{}, mongo.CommandError{Message: "title_en is required"}
	}
	if c.Price < 0 {
		return models.Course{}, mongo.CommandError{Message: "price must not be negative"}
	}
	if c.Category != models.CategoryCourse && c.Category != models.CategoryBootcamp {
		return models.Course{}, mongo.CommandError{Message: "category must be 'course' or 'bootcamp'"}
	}
	if !status.IsValid(c.Status) {
		return models.Course{}, mongo.CommandError{Message: "status must be 'active' or 'disabled'"}
	}

	if _, err := s.c.InsertOne(ctx, c); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Course{}, ErrDuplicateSlug
		}
		return models.Course{}, err
	}
	return c, nil
}

// Update modifies the provided mutable fields and refreshes UpdatedAt.
// Empty strings leave text fields untouched except for the summaries
// and descriptions, which can be cleared.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, mut models.Course) error {
	set := bson.M{}

	if strings.TrimSpace(mut.TitleEN) != "" {
		set["title_en"] = mut.TitleEN
		set["title_ci"] = text.Fold(mut.TitleEN)
	}
	if strings.TrimSpace(mut.TitleDE) != "" {
		set["title_de"] = mut.TitleDE
	}

	// Summaries and descriptions can be cleared.
	set["summary_en"] = mut.SummaryEN
	set["summary_de"] = mut.SummaryDE
	set["description_en"] = mut.DescriptionEN
	set["description_de"] = mut.DescriptionDE
	set["duration"] = mut.Duration
	set["image_url"] = mut.ImageURL

	if mut.Price >= 0 {
		set["price"] = mut.Price
	}
	if mut.Category != "" {
		if mut.Category != models.CategoryCourse && mut.Category != models.CategoryBootcamp {
			return mongo.CommandError{Message: "category must be 'course' or 'bootcamp'"}
		}
		set["category"] = mut.Category
	}
	if mut.Status != "" {
		if !status.IsValid(mut.Status) {
			return mongo.CommandError{Message: "status must be 'active' or 'disabled'"}
		}
		set["status"] = mut.Status
	}

	set["updated_at"] = time.Now().UTC()

	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil && wafflemongo.IsDup(err) {
		return ErrDuplicateSlug
	}
	return err
}

// GetByID returns a course by its ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Course, error) {
	var c models.Course
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		return models.Course{}, err
	}
	return c, nil
}

// GetBySlug returns a course by its URL slug.
func (s *Store) GetBySlug(ctx context.Context, slug string) (models.Course, error) {
	var c models.Course
	if err := s.c.FindOne(ctx, bson.M{"slug": slug}).Decode(&c); err != nil {
		return models.Course{}, err
	}
	return c, nil
}

// Delete removes a course by ID. Returns the number of documents
// deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// ListFilter narrows List results.
type ListFilter struct {
	Category    string // "course", "bootcamp", or "" for all
	ActiveOnly  bool
	SearchQuery string // prefix search on title_ci
}

// List returns one page of courses ordered newest-created-first,
// fetching one extra row so the caller can detect a next page with
// paging.TrimPage.
func (s *Store) List(ctx context.Context, filter ListFilter, page int) ([]models.Course, error) {
	q := bson.M{}
	if filter.Category != "" {
		q["category"] = filter.Category
	}
	if filter.ActiveOnly {
		q["status"] = status.Active
	}
	if filter.SearchQuery != "" {
		folded := text.Fold(filter.SearchQuery)
		q["title_ci"] = bson.M{"$gte": folded, "$lt": folded + "￿"}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(paging.Skip(page)).
		SetLimit(paging.LimitPlusOne())

	cur, err := s.c.Find(ctx, q, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var courses []models.Course
	if err := cur.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// ListAll returns every course ordered by folded English title. Meant
// for admin dropdowns, which are not paginated.
func (s *Store) ListAll(ctx context.Context) ([]models.Course, error) {
	opts := options.Find().SetSort(bson.D{{Key: "title_ci", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var courses []models.Course
	if err := cur.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// slugify folds the title and replaces spaces with dashes.
func slugify(title string) string {
	folded := text.Fold(title)
	return strings.ReplaceAll(strings.Join(strings.Fields(folded), " "), " ", "-")
}
