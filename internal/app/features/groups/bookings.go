// internal/app/features/groups/bookings.go
package groups

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	uierrors "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/features/errors"
	userstore "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/store/users"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/formutil"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/timeouts"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/domain/models"
)

// bookingRow is a booking joined with the booker's account, when it
// still exists.
type bookingRow struct {
	Booking models.Booking
	Name    string
	Email   string
}

type groupBookingsData struct {
	formutil.Base
	Group models.SessionGroup
	Rows  []bookingRow
}

// ServeGroupBookings shows who has booked a session group.
func (h *Handler) ServeGroupBookings(w http.ResponseWriter, r *http.Request) {
	groupID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "", "/admin/groups")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	g, err := h.Groups.GetByID(ctx, groupID)
	if err == mongo.ErrNoDocuments {
		uierrors.RenderNotFound(w, r, "", "/admin/groups")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "group load failed", err, "", "/admin/groups")
		return
	}

	bookings, err := h.Bookings.ListByGroup(ctx, groupID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "group bookings load failed", err, "", "/admin/groups")
		return
	}

	users := userstore.New(h.DB)
	data := groupBookingsData{Group: g}
	for _, b := range bookings {
		row := bookingRow{Booking: b, Name: b.ParticipantName, Email: b.ParticipantEmail}
		// Prefer the account's current name over the form snapshot.
		u, uerr := users.GetByID(ctx, b.UserID)
		switch {
		case uerr == nil:
			row.Name = u.FullName
			row.Email = u.Email
		case uerr != mongo.ErrNoDocuments:
			h.Log.Warn("booking user lookup failed",
				zap.String("user_id", b.UserID.Hex()),
				zap.Error(uerr))
		}
		data.Rows = append(data.Rows, row)
	}

	formutil.SetBase(&data.Base, r, "Bookings: "+g.Name, "/admin/groups")
	templates.Render(w, r, "admin_group_bookings", data)
}
