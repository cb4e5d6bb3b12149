// internal/app/features/groups/handler.go
package groups

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	uierrors "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/features/errors"
	bookingstore "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/store/bookings"
	coursestore "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/store/courses"
	sessiongroupstore "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/store/sessiongroups"
	timetablestore "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/store/timetable"
)

// Handler is the shared dependency container for the admin session
// group management feature.
type Handler struct {
	DB        *mongo.Database
	Groups    *sessiongroupstore.Store
	Courses   *coursestore.Store
	Timetable *timetablestore.Store
	Bookings  *bookingstore.Store
	ErrLog    *uierrors.ErrorLogger
	Log       *zap.Logger
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:        db,
		Groups:    sessiongroupstore.New(db),
		Courses:   coursestore.New(db),
		Timetable: timetablestore.New(db),
		Bookings:  bookingstore.New(db),
		ErrLog:    errLog,
		Log:       logger,
	}
}
