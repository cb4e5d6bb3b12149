// internal/app/features/groups/timetable.go
package groups

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	uierrors "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/features/errors"
	syllabusstore "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/store/syllabus"
	timetablestore "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/store/timetable"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/formutil"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/i18n"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/normalize"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/timeouts"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/domain/models"
)

// datetimeLayout is the value format of <input type="datetime-local">.
const datetimeLayout = "2006-01-02T15:04"

type groupTimetableData struct {
	formutil.Base
	Group    models.SessionGroup
	Sessions []timetablestore.GroupSession
	Modules  []models.SyllabusModule
}

// ServeGroupTimetable shows a session group's scheduled meetings with
// inline add and edit forms.
func (h *Handler) ServeGroupTimetable(w http.ResponseWriter, r *http.Request) {
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

	data := groupTimetableData{Group: g}
	formutil.SetBase(&data.Base, r, "Timetable: "+g.Name, "/admin/groups")

	if msg := normalize.QueryParam(r.URL.Query().Get("err")); msg != "" {
		data.SetError(msg)
	}

	sessions, err := h.Timetable.ListByGroup(ctx, groupID)
	if err != nil {
		h.Log.Error("group sessions load failed", zap.Error(err))
		data.SetError(i18n.T(i18n.Lang(r), "groups.sessions_load_failed"))
		templates.Render(w, r, "admin_group_timetable", data)
		return
	}
	data.Sessions = sessions

	// Module options for linking a session to the syllabus; fails soft.
	modules, err := syllabusstore.New(h.DB).ListModules(ctx, g.CourseID)
	if err != nil {
		h.Log.Warn("syllabus options load failed", zap.Error(err))
	} else {
		data.Modules = modules
	}

	templates.Render(w, r, "admin_group_timetable", data)
}

// parseSessionForm reads the posted timetable entry fields.
func parseSessionForm(r *http.Request, g models.SessionGroup) (models.TimetableEntry, string) {
	lang := i18n.Lang(r)

	title := normalize.Name(r.FormValue("title"))
	if title == "" {
		return models.TimetableEntry{}, i18n.T(lang, "timetable.title_required")
	}

	start, err := time.Parse(datetimeLayout, normalize.QueryParam(r.FormValue("start_at")))
	if err != nil {
		return models.TimetableEntry{}, i18n.T(lang, "groups.bad_date")
	}

	groupID := g.ID
	e := models.TimetableEntry{
		CourseID:       g.CourseID,
		SessionGroupID: &groupID,
		Title:          title,
		Description:    normalize.QueryParam(r.FormValue("description")),
		StartAt:        start,
		ZoomLink:       normalize.QueryParam(r.FormValue("zoom_link")),
		ChatGroupLink:  normalize.QueryParam(r.FormValue("chatgroup_link")),
	}

	if endRaw := normalize.QueryParam(r.FormValue("end_at")); endRaw != "" {
		end, err := time.Parse(datetimeLayout, endRaw)
		if err != nil {
			return models.TimetableEntry{}, i18n.T(lang, "groups.bad_date")
		}
		if end.Before(start) {
			return models.TimetableEntry{}, i18n.T(lang, "groups.end_before_start")
		}
		e.EndAt = &end
	}

	if sylHex := normalize.QueryParam(r.FormValue("syllabus_id")); sylHex != "" {
		if sylID, err := primitive.ObjectIDFromHex(sylHex); err == nil {
			e.SyllabusID = &sylID
		}
	}

	return e, ""
}

// HandleCreateSession adds a timetable entry to a session group.
func (h *Handler) HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	groupID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "", "/admin/groups")
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
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

	entry, msg := parseSessionForm(r, g)
	if msg != "" {
		h.redirectTimetableError(w, r, groupID, msg)
		return
	}

	if _, err := h.Timetable.Create(ctx, entry); err != nil {
		h.ErrLog.LogServerError(w, r, "session create failed", err,
			i18n.T(i18n.Lang(r), "groups.save_failed"), timetableURL(groupID))
		return
	}

	http.Redirect(w, r, timetableURL(groupID), http.StatusSeeOther)
}

// HandleUpdateSession updates a timetable entry.
func (h *Handler) HandleUpdateSession(w http.ResponseWriter, r *http.Request) {
	groupID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "", "/admin/groups")
		return
	}
	entryID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "entryID"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "", timetableURL(groupID))
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
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

	entry, msg := parseSessionForm(r, g)
	if msg != "" {
		h.redirectTimetableError(w, r, groupID, msg)
		return
	}

	if err := h.Timetable.Update(ctx, entryID, entry); err != nil && err != mongo.ErrNoDocuments {
		h.ErrLog.LogServerError(w, r, "session update failed", err,
			i18n.T(i18n.Lang(r), "groups.save_failed"), timetableURL(groupID))
		return
	}

	http.Redirect(w, r, timetableURL(groupID), http.StatusSeeOther)
}

// HandleDeleteSession removes a timetable entry.
func (h *Handler) HandleDeleteSession(w http.ResponseWriter, r *http.Request) {
	groupID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "", "/admin/groups")
		return
	}
	entryID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "entryID"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "", timetableURL(groupID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := h.Timetable.Delete(ctx, entryID); err != nil {
		h.ErrLog.LogServerError(w, r, "session delete failed", err,
			i18n.T(i18n.Lang(r), "groups.save_failed"), timetableURL(groupID))
		return
	}

	http.Redirect(w, r, timetableURL(groupID), http.StatusSeeOther)
}

// redirectTimetableError bounces back to the timetable page with the
// validation message in the query string.
func (h *Handler) redirectTimetableError(w http.ResponseWriter, r *http.Request, groupID primitive.ObjectID, msg string) {
	http.Redirect(w, r, timetableURL(groupID)+"?err="+url.QueryEscape(msg), http.StatusSeeOther)
}

func timetableURL(groupID primitive.ObjectID) string {
	return "/admin/groups/" + groupID.Hex() + "/timetable"
}
