// internal/app/features/groups/groupform.go
package groups

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	uierrors "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/features/errors"
	sessiongroupstore "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/store/sessiongroups"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/formutil"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/htmlsanitize"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/i18n"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/inputval"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/normalize"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/timeouts"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/domain/models"
)

// dateLayout is the value format of <input type="date">.
const dateLayout = "2006-01-02"

// groupInput defines validation rules for the session group form.
type groupInput struct {
	Name      string `validate:"required,max=200" label:"Name"`
	CourseHex string `validate:"required" label:"Course"`
	StartDate string `validate:"required" label:"Start date"`
}

type groupFormData struct {
	formutil.Base
	IsNew bool

	GroupID         string
	Name            string
	Description     string
	CourseHex       string
	PriceRaw        string
	MaxParticipants string
	StartDate       string
	EndDate         string
	IsActive        bool

	Courses []models.Course
}

// groupForm is the parsed and validated form submission.
type groupForm struct {
	Name            string
	Description     string
	CourseID        primitive.ObjectID
	Price           float64
	MaxParticipants *int
	StartDate       time.Time
	EndDate         *time.Time
	IsActive        bool
}

// parseGroupForm validates the posted fields. On failure it returns a
// localized message for the form to re-render with.
func parseGroupForm(r *http.Request) (groupForm, string) {
	lang := i18n.Lang(r)

	name := normalize.Name(r.FormValue("name"))
	courseHex := normalize.QueryParam(r.FormValue("course_id"))
	startRaw := normalize.QueryParam(r.FormValue("start_date"))

	input := groupInput{Name: name, CourseHex: courseHex, StartDate: startRaw}
	if result := inputval.Validate(input); result.HasErrors() {
		return groupForm{}, result.First()
	}

	courseID, err := primitive.ObjectIDFromHex(courseHex)
	if err != nil {
		return groupForm{}, i18n.T(lang, "groups.bad_course")
	}

	start, err := time.Parse(dateLayout, startRaw)
	if err != nil {
		return groupForm{}, i18n.T(lang, "groups.bad_date")
	}

	f := groupForm{
		Name:        name,
		Description: htmlsanitize.Clean(r.FormValue("description")),
		CourseID:    courseID,
		StartDate:   start,
		IsActive:    r.FormValue("is_active") == "on",
	}

	if endRaw := normalize.QueryParam(r.FormValue("end_date")); endRaw != "" {
		end, err := time.Parse(dateLayout, endRaw)
		if err != nil {
			return groupForm{}, i18n.T(lang, "groups.bad_date")
		}
		if end.Before(start) {
			return groupForm{}, i18n.T(lang, "groups.end_before_start")
		}
		f.EndDate = &end
	}

	price, err := strconv.ParseFloat(normalize.QueryParam(r.FormValue("price")), 64)
	if err != nil || price < 0 {
		return groupForm{}, i18n.T(lang, "groups.bad_price")
	}
	f.Price = price

	if maxRaw := normalize.QueryParam(r.FormValue("max_participants")); maxRaw != "" {
		max, err := strconv.Atoi(maxRaw)
		if err != nil || max < 1 {
			return groupForm{}, i18n.T(lang, "groups.bad_max")
		}
		f.MaxParticipants = &max
	}

	return f, ""
}

// ServeNewGroup renders the Add Session Group page. A course can be
// preselected via ?course=.
func (h *Handler) ServeNewGroup(w http.ResponseWriter, r *http.Request) {
	data := groupFormData{
		IsNew:     true,
		IsActive:  true,
		CourseHex: normalize.QueryParam(r.URL.Query().Get("course")),
	}
	h.renderGroupForm(w, r, data, "")
}

// HandleCreateGroup processes the Add Session Group form submission.
func (h *Handler) HandleCreateGroup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	form, msg := parseGroupForm(r)
	if msg != "" {
		h.renderGroupForm(w, r, postedGroupData(r, true, ""), msg)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	_, err := h.Groups.Create(ctx, models.SessionGroup{
		CourseID:        form.CourseID,
		Name:            form.Name,
		Description:     form.Description,
		Price:           form.Price,
		MaxParticipants: form.MaxParticipants,
		StartDate:       form.StartDate,
		EndDate:         form.EndDate,
		IsActive:        form.IsActive,
	})
	if err != nil {
		var cmdErr mongo.CommandError
		if errors.As(err, &cmdErr) {
			h.renderGroupForm(w, r, postedGroupData(r, true, ""), cmdErr.Message)
			return
		}
		h.ErrLog.LogServerError(w, r, "group create failed", err,
			i18n.T(i18n.Lang(r), "groups.save_failed"), "/admin/groups")
		return
	}

	http.Redirect(w, r, "/admin/groups?notice=created", http.StatusSeeOther)
}

// ServeEditGroup renders the Edit Session Group page.
func (h *Handler) ServeEditGroup(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "", "/admin/groups")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	g, err := h.Groups.GetByID(ctx, id)
	if err == mongo.ErrNoDocuments {
		uierrors.RenderNotFound(w, r, "", "/admin/groups")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "group load failed", err, "", "/admin/groups")
		return
	}

	data := groupFormData{
		GroupID:     g.ID.Hex(),
		Name:        g.Name,
		Description: g.Description,
		CourseHex:   g.CourseID.Hex(),
		PriceRaw:    strconv.FormatFloat(g.Price, 'f', 2, 64),
		StartDate:   g.StartDate.Format(dateLayout),
		IsActive:    g.IsActive,
	}
	if g.MaxParticipants != nil {
		data.MaxParticipants = strconv.Itoa(*g.MaxParticipants)
	}
	if g.EndDate != nil {
		data.EndDate = g.EndDate.Format(dateLayout)
	}
	h.renderGroupForm(w, r, data, "")
}

// HandleEditGroup processes the Edit Session Group form submission.
func (h *Handler) HandleEditGroup(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "", "/admin/groups")
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	form, msg := parseGroupForm(r)
	if msg != "" {
		h.renderGroupForm(w, r, postedGroupData(r, false, id.Hex()), msg)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	patch := sessiongroupstore.Patch{
		Name:        &form.Name,
		Description: &form.Description,
		Price:       &form.Price,
		StartDate:   &form.StartDate,
		IsActive:    &form.IsActive,
		CourseID:    &form.CourseID,
	}
	if form.MaxParticipants != nil {
		patch.MaxParticipants = form.MaxParticipants
	}
	if form.EndDate != nil {
		patch.EndDate = form.EndDate
	} else {
		patch.ClearEndDate = true
	}

	if _, err := h.Groups.Update(ctx, id, patch); err != nil {
		if err == mongo.ErrNoDocuments {
			uierrors.RenderNotFound(w, r, "", "/admin/groups")
			return
		}
		var cmdErr mongo.CommandError
		if errors.As(err, &cmdErr) {
			h.renderGroupForm(w, r, postedGroupData(r, false, id.Hex()), cmdErr.Message)
			return
		}
		h.ErrLog.LogServerError(w, r, "group update failed", err,
			i18n.T(i18n.Lang(r), "groups.save_failed"), "/admin/groups")
		return
	}

	http.Redirect(w, r, "/admin/groups?notice=updated", http.StatusSeeOther)
}

// HandleDeleteGroup removes a session group unless bookings still
// reference it. The group's timetable rows are removed with it.
func (h *Handler) HandleDeleteGroup(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "", "/admin/groups")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Groups.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, sessiongroupstore.ErrGroupHasBookings):
			http.Redirect(w, r, "/admin/groups?notice=has_bookings", http.StatusSeeOther)
		case errors.Is(err, mongo.ErrNoDocuments):
			uierrors.RenderNotFound(w, r, "", "/admin/groups")
		default:
			h.ErrLog.LogServerError(w, r, "group delete failed", err,
				i18n.T(i18n.Lang(r), "groups.save_failed"), "/admin/groups")
		}
		return
	}

	if err := h.Timetable.DeleteByGroup(ctx, id); err != nil {
		h.Log.Warn("group timetable cleanup failed",
			zap.String("group_id", id.Hex()),
			zap.Error(err))
	}

	http.Redirect(w, r, "/admin/groups?notice=deleted", http.StatusSeeOther)
}

// postedGroupData echoes the submitted values back into the form.
func postedGroupData(r *http.Request, isNew bool, groupID string) groupFormData {
	return groupFormData{
		IsNew:           isNew,
		GroupID:         groupID,
		Name:            normalize.Name(r.FormValue("name")),
		Description:     normalize.QueryParam(r.FormValue("description")),
		CourseHex:       normalize.QueryParam(r.FormValue("course_id")),
		PriceRaw:        normalize.QueryParam(r.FormValue("price")),
		MaxParticipants: normalize.QueryParam(r.FormValue("max_participants")),
		StartDate:       normalize.QueryParam(r.FormValue("start_date")),
		EndDate:         normalize.QueryParam(r.FormValue("end_date")),
		IsActive:        r.FormValue("is_active") == "on",
	}
}

func (h *Handler) renderGroupForm(w http.ResponseWriter, r *http.Request, data groupFormData, msg string) {
	title := "Edit Session Group"
	if data.IsNew {
		title = "Add Session Group"
	}
	formutil.SetBase(&data.Base, r, title, "/admin/groups")
	if msg != "" {
		data.SetError(msg)
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	courses, err := h.Courses.ListAll(ctx)
	if err != nil {
		h.Log.Warn("course options load failed", zap.Error(err))
	} else {
		data.Courses = courses
	}

	templates.Render(w, r, "admin_group_form", data)
}
