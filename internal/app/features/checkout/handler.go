// internal/app/features/checkout/handler.go
package checkout

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/booking"
	cartstore "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/cart"
	uierrors "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/features/errors"
	bookingstore "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/store/bookings"
	timetablestore "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/store/timetable"
)

// Handler is the shared dependency container for checkout.
type Handler struct {
	DB          *mongo.Database
	Cart        *cartstore.Cart
	Bookings    *bookingstore.Store
	Coordinator *booking.Coordinator
	ErrLog      *uierrors.ErrorLogger
	Log         *zap.Logger
}

func NewHandler(db *mongo.Database, c *cartstore.Cart, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	bookings := bookingstore.New(db)
	return &Handler{
		DB:          db,
		Cart:        c,
		Bookings:    bookings,
		Coordinator: booking.NewCoordinator(bookings, timetablestore.New(db), logger),
		ErrLog:      errLog,
		Log:         logger,
	}
}
