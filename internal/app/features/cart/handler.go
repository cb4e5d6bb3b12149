// internal/app/features/cart/handler.go
package cart

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	cartstore "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/cart"
	uierrors "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/features/errors"
	coursestore "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/store/courses"
	sessiongroupstore "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/store/sessiongroups"
)

// Handler is the shared dependency container for the shopping cart
// pages.
type Handler struct {
	DB      *mongo.Database
	Cart    *cartstore.Cart
	Courses *coursestore.Store
	Groups  *sessiongroupstore.Store
	ErrLog  *uierrors.ErrorLogger
	Log     *zap.Logger
}

func NewHandler(db *mongo.Database, c *cartstore.Cart, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:      db,
		Cart:    c,
		Courses: coursestore.New(db),
		Groups:  sessiongroupstore.New(db),
		ErrLog:  errLog,
		Log:     logger,
	}
}
