// internal/app/features/sessions/detail.go
package sessions

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/booking"
	uierrors "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/features/errors"
	timetablestore "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/store/timetable"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/authz"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/formutil"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/i18n"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/timeouts"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/domain/models"
)

type groupDetailData struct {
	formutil.Base
	Group    models.SessionGroup
	Sessions []timetablestore.GroupSession
	IsBooked bool
}

// ServeGroupDetail handles GET /sessions/{id}: one session group with
// its scheduled meetings. Meeting links are only shown once the user
// has booked the group.
func (h *Handler) ServeGroupDetail(w http.ResponseWriter, r *http.Request) {
	_, _, userID, ok := authz.UserCtx(r)
	if !ok {
		uierrors.RenderUnauthorized(w, r, "/login")
		return
	}

	groupID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "", "/sessions")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	lang := i18n.Lang(r)

	g, err := h.Groups.GetByID(ctx, groupID)
	if err == mongo.ErrNoDocuments {
		uierrors.RenderNotFound(w, r, "", "/sessions")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "group load failed", err, "", "/sessions")
		return
	}

	data := groupDetailData{Group: g}
	formutil.SetBase(&data.Base, r, g.Name, "/sessions")

	switch r.URL.Query().Get("notice") {
	case "booked":
		data.SetNotice(r, "booking.success")
	case "already_booked":
		data.SetNotice(r, "booking.already_booked")
	}

	booked, err := h.Coordinator.LoadUserBookings(ctx, userID)
	if err != nil {
		h.Log.Warn("user bookings load failed", zap.Error(err))
	}
	data.IsBooked = booked[groupID]

	sessions, err := h.Timetable.ListByGroup(ctx, groupID)
	if err != nil {
		h.Log.Warn("group sessions load failed", zap.Error(err))
		data.SetError(i18n.T(lang, "groups.sessions_load_failed"))
	} else {
		data.Sessions = sessions
	}

	templates.Render(w, r, "session_group_detail", data)
}

// HandleBookGroup handles POST /sessions/{id}/book: a direct booking
// without going through the cart.
func (h *Handler) HandleBookGroup(w http.ResponseWriter, r *http.Request) {
	_, name, userID, ok := authz.UserCtx(r)
	if !ok {
		uierrors.RenderUnauthorized(w, r, "/login")
		return
	}

	groupID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "", "/sessions")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	g, err := h.Groups.GetByID(ctx, groupID)
	if err == mongo.ErrNoDocuments {
		uierrors.RenderNotFound(w, r, "", "/sessions")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "group load failed", err, "", "/sessions")
		return
	}
	if !g.IsActive {
		uierrors.RenderNotFound(w, r, "", "/sessions")
		return
	}

	_, err = h.Coordinator.BookGroup(ctx, booking.Request{
		UserID:          userID,
		SessionGroupID:  groupID,
		CourseID:        g.CourseID,
		ParticipantName: name,
	})
	if err != nil {
		if errors.Is(err, booking.ErrAlreadyBooked) {
			http.Redirect(w, r, "/sessions/"+groupID.Hex()+"?notice=already_booked", http.StatusSeeOther)
			return
		}
		h.ErrLog.LogServerError(w, r, "group booking failed", err,
			i18n.T(i18n.Lang(r), "booking.failed"), "/sessions")
		return
	}

	http.Redirect(w, r, "/sessions/"+groupID.Hex()+"?notice=booked", http.StatusSeeOther)
}
