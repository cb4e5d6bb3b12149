// internal/app/features/courses/adminlist.go
package courses

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	coursestore "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/store/courses"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/formutil"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/i18n"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/normalize"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/paging"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/timeouts"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/domain/models"
)

type adminListData struct {
	formutil.Base
	Courses     []models.Course
	SearchQuery string
	Category    string
	Page        int
	PrevPage    int
	NextPage    int
	HasPrev     bool
	HasNext     bool
}

// ServeAdminList handles GET /admin/courses: every course including
// disabled ones, newest first.
func (h *Handler) ServeAdminList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	lang := i18n.Lang(r)
	search := normalize.QueryParam(r.URL.Query().Get("q"))
	category := normalize.QueryParam(r.URL.Query().Get("category"))
	if category != models.CategoryCourse && category != models.CategoryBootcamp {
		category = ""
	}
	page := parsePage(r.URL.Query().Get("page"))

	data := adminListData{
		SearchQuery: search,
		Category:    category,
		Page:        page,
		PrevPage:    page - 1,
		NextPage:    page + 1,
	}
	formutil.SetBase(&data.Base, r, "Manage Courses", "/")

	switch r.URL.Query().Get("notice") {
	case "created":
		data.SetNotice(r, "courses.created")
	case "updated":
		data.SetNotice(r, "courses.updated")
	case "deleted":
		data.SetNotice(r, "courses.deleted")
	}

	rows, err := h.Courses.List(ctx, coursestore.ListFilter{
		Category:    category,
		SearchQuery: search,
	}, page)
	if err != nil {
		h.Log.Error("admin course list failed", zap.Error(err))
		data.SetError(i18n.T(lang, "courses.load_failed"))
		templates.Render(w, r, "admin_courses_list", data)
		return
	}

	res := paging.TrimPage(&rows, page)
	data.Courses = rows
	data.HasPrev = res.HasPrev
	data.HasNext = res.HasNext

	templates.Render(w, r, "admin_courses_list", data)
}
