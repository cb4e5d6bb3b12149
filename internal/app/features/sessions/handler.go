// internal/app/features/sessions/handler.go
package sessions

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/booking"
	uierrors "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/features/errors"
	bookingstore "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/store/bookings"
	sessiongroupstore "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/store/sessiongroups"
	timetablestore "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/store/timetable"
)

// Handler is the shared dependency container for the member-facing
// session group pages.
type Handler struct {
	DB          *mongo.Database
	Groups      *sessiongroupstore.Store
	Timetable   *timetablestore.Store
	Coordinator *booking.Coordinator
	ErrLog      *uierrors.ErrorLogger
	Log         *zap.Logger
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	tt := timetablestore.New(db)
	return &Handler{
		DB:          db,
		Groups:      sessiongroupstore.New(db),
		Timetable:   tt,
		Coordinator: booking.NewCoordinator(bookingstore.New(db), tt, logger),
		ErrLog:      errLog,
		Log:         logger,
	}
}
