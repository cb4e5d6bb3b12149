// Package cart implements the Redis-backed shopping cart. Each user
// gets one Redis hash keyed by their ID; fields are cart items encoded
// as JSON. Carts expire after two weeks of inactivity.
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TTL is the cart lifetime; every write pushes it forward.
const TTL = 14 * 24 * time.Hour

// Item kinds.
const (
	KindCourse = "course"
	KindGroup  = "group"
)

// Item is one line of the cart.
type Item struct {
	Kind     string  `json:"kind"` // "course" or "group"
	ID       string  `json:"id"`   // course or session group hex ID
	CourseID string  `json:"course_id,omitempty"`
	TitleEN  string  `json:"title_en"`
	TitleDE  string  `json:"title_de"`
	Price    float64 `json:"price"`
	AddedAt  int64   `json:"added_at"` // unix seconds, for stable display order
}

// Key is the hash field an item lives under, unique per (kind, id).
func (it Item) Key() string {
	return it.Kind + ":" + it.ID
}

// Title returns the item title for the given language, falling back to
// English.
func (it Item) Title(lang string) string {
	if lang == "de" && it.TitleDE != "" {
		return it.TitleDE
	}
	return it.TitleEN
}

// Cart reads and writes user carts in Redis.
type Cart struct {
	rdb *redis.Client
}

func New(rdb *redis.Client) *Cart {
	return &Cart{rdb: rdb}
}

func cartKey(userID primitive.ObjectID) string {
	return "cart:" + userID.Hex()
}

// Add puts an item in the user's cart. Adding the same item twice is a
// no-op overwrite, not a quantity bump; the catalog sells each course
// and group at most once per user.
func (c *Cart) Add(ctx context.Context, userID primitive.ObjectID, it Item) error {
	if it.AddedAt == 0 {
		it.AddedAt = time.Now().Unix()
	}

	raw, err := json.Marshal(it)
	if err != nil {
		return fmt.Errorf("encode cart item: %w", err)
	}

	key := cartKey(userID)
	if err := c.rdb.HSet(ctx, key, it.Key(), raw).Err(); err != nil {
		return err
	}
	return c.rdb.Expire(ctx, key, TTL).Err()
}

// Remove drops one item from the cart. Removing an absent item is not
// an error.
func (c *Cart) Remove(ctx context.Context, userID primitive.ObjectID, itemKey string) error {
	return c.rdb.HDel(ctx, cartKey(userID), itemKey).Err()
}

// Items returns the cart contents oldest first.
func (c *Cart) Items(ctx context.Context, userID primitive.ObjectID) ([]Item, error) {
	fields, err := c.rdb.HGetAll(ctx, cartKey(userID)).Result()
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(fields))
	for _, raw := range fields {
		var it Item
		if err := json.Unmarshal([]byte(raw), &it); err != nil {
			// Skip rows a newer or older build wrote in a shape we
			// cannot read.
			continue
		}
		items = append(items, it)
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].AddedAt != items[j].AddedAt {
			return items[i].AddedAt < items[j].AddedAt
		}
		return items[i].Key() < items[j].Key()
	})
	return items, nil
}

// Total sums item prices.
func Total(items []Item) float64 {
	var total float64
	for _, it := range items {
		total += it.Price
	}
	return total
}

// Clear empties the user's cart.
func (c *Cart) Clear(ctx context.Context, userID primitive.ObjectID) error {
	return c.rdb.Del(ctx, cartKey(userID)).Err()
}

// Count returns the number of items without loading them.
func (c *Cart) Count(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return c.rdb.HLen(ctx, cartKey(userID)).Result()
}
