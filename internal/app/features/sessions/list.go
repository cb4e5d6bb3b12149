// internal/app/features/sessions/list.go
package sessions

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/booking"
	uierrors "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/features/errors"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/store/queries/groupcatalog"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/authz"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/formutil"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/i18n"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/timeouts"
)

type myGroupsData struct {
	formutil.Base
	Booked   []groupcatalog.GroupItem
	Bookable []groupcatalog.GroupItem
}

// ServeMyGroups handles GET /sessions: the signed-in user's booked
// session groups followed by the active groups still open to them.
func (h *Handler) ServeMyGroups(w http.ResponseWriter, r *http.Request) {
	_, _, userID, ok := authz.UserCtx(r)
	if !ok {
		uierrors.RenderUnauthorized(w, r, "/login")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	lang := i18n.Lang(r)
	title := "My Sessions"
	if lang == i18n.DE {
		title = "Meine Sessions"
	}

	data := myGroupsData{}
	formutil.SetBase(&data.Base, r, title, "/")

	switch r.URL.Query().Get("notice") {
	case "booked":
		data.SetNotice(r, "booking.success")
	case "already_booked":
		data.SetNotice(r, "booking.already_booked")
	}

	groups, err := groupcatalog.ListActiveGroupsWithCourseInfo(ctx, h.DB, nil)
	if err != nil {
		h.Log.Error("active group list failed", zap.Error(err))
		data.SetError(i18n.T(lang, "groups.load_failed"))
		templates.Render(w, r, "sessions_list", data)
		return
	}

	// The booked lookup fails soft: without it every group renders as
	// bookable, and the coordinator still refuses duplicates on post.
	booked, err := h.Coordinator.LoadUserBookings(ctx, userID)
	if err != nil {
		h.Log.Warn("user bookings load failed", zap.Error(err))
		data.SetError(i18n.T(lang, "booking.load_failed"))
		booked = map[primitive.ObjectID]bool{}
	}

	data.Booked, data.Bookable = booking.Partition(groups, booked)
	templates.Render(w, r, "sessions_list", data)
}
