// internal/app/store/users/fetcher.go
package userstore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/auth"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/status"
)

// Fetcher reloads the session user from the database on each request,
// so role changes and disabled accounts take effect without waiting
// for the cookie to expire.
type Fetcher struct {
	store *Store
	log   *zap.Logger
}

func NewFetcher(store *Store, log *zap.Logger) *Fetcher {
	return &Fetcher{store: store, log: log}
}

func (f *Fetcher) FetchUser(ctx context.Context, userID string) *auth.SessionUser {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil
	}

	u, err := f.store.GetByID(ctx, id)
	if err != nil {
		f.log.Debug("session user lookup failed",
			zap.String("user_id", userID), zap.Error(err))
		return nil
	}
	if u.Status != status.Active {
		return nil
	}

	return &auth.SessionUser{
		ID:    u.ID.Hex(),
		Name:  u.FullName,
		Email: u.Email,
		Role:  u.Role,
	}
}
