// internal/app/features/courses/list.go
package courses

import (
	"context"
	"net/http"
	"strconv"

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

type catalogData struct {
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

// ServeCatalog handles GET /courses: the public catalog with search,
// category filter, and paging. Only active courses are listed.
func (h *Handler) ServeCatalog(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	lang := i18n.Lang(r)
	search := normalize.QueryParam(r.URL.Query().Get("q"))
	category := normalize.QueryParam(r.URL.Query().Get("category"))
	if category != models.CategoryCourse && category != models.CategoryBootcamp {
		category = ""
	}
	page := parsePage(r.URL.Query().Get("page"))

	title := "Courses"
	if lang == i18n.DE {
		title = "Kurse"
	}

	data := catalogData{
		SearchQuery: search,
		Category:    category,
		Page:        page,
		PrevPage:    page - 1,
		NextPage:    page + 1,
	}
	formutil.SetBase(&data.Base, r, title, "/")

	rows, err := h.Courses.List(ctx, coursestore.ListFilter{
		Category:    category,
		ActiveOnly:  true,
		SearchQuery: search,
	}, page)
	if err != nil {
		h.Log.Error("catalog query failed", zap.Error(err))
		data.SetError(i18n.T(lang, "courses.load_failed"))
		templates.Render(w, r, "courses_list", data)
		return
	}

	res := paging.TrimPage(&rows, page)
	data.Courses = rows
	data.HasPrev = res.HasPrev
	data.HasNext = res.HasNext

	templates.Render(w, r, "courses_list", data)
}

func parsePage(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}
