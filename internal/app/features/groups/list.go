// internal/app/features/groups/list.go
package groups

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/store/queries/groupcatalog"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/formutil"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/i18n"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/normalize"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/timeouts"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/domain/models"
)

type groupListData struct {
	formutil.Base
	Groups    []groupcatalog.GroupItem
	Courses   []models.Course
	CourseHex string
}

// ServeGroupsList handles GET /admin/groups: every session group with
// its course title and booking count, optionally filtered by course.
func (h *Handler) ServeGroupsList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	data := groupListData{}
	formutil.SetBase(&data.Base, r, "Session Groups", "/admin/courses")

	switch r.URL.Query().Get("notice") {
	case "created":
		data.SetNotice(r, "groups.created")
	case "updated":
		data.SetNotice(r, "groups.updated")
	case "deleted":
		data.SetNotice(r, "groups.deleted")
	case "has_bookings":
		data.SetError(i18n.T(i18n.Lang(r), "groups.delete_blocked"))
	}

	filter := groupcatalog.ListFilter{}
	courseHex := normalize.QueryParam(r.URL.Query().Get("course"))
	if courseHex != "" {
		if courseID, err := primitive.ObjectIDFromHex(courseHex); err == nil {
			filter.CourseID = &courseID
			data.CourseHex = courseHex
		}
	}

	rows, err := groupcatalog.ListGroupsWithCourseInfo(ctx, h.DB, filter)
	if err != nil {
		h.Log.Error("group list failed", zap.Error(err))
		data.SetError(i18n.T(i18n.Lang(r), "groups.load_failed"))
		templates.Render(w, r, "admin_groups_list", data)
		return
	}
	data.Groups = rows

	// The course dropdown fails soft; the list is still useful without
	// the filter options.
	courses, err := h.Courses.ListAll(ctx)
	if err != nil {
		h.Log.Warn("course filter load failed", zap.Error(err))
	} else {
		data.Courses = courses
	}

	templates.Render(w, r, "admin_groups_list", data)
}
