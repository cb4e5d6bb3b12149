// internal/app/features/courses/adminform.go
package courses

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	uierrors "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/features/errors"
	coursestore "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/store/courses"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/formutil"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/htmlsanitize"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/i18n"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/inputval"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/normalize"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/timeouts"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/domain/models"
)

// courseInput defines validation rules for the course form.
type courseInput struct {
	TitleEN string `validate:"required,max=200" label:"Title (EN)"`
	TitleDE string `validate:"max=200" label:"Title (DE)"`
}

type courseFormData struct {
	formutil.Base
	Course   models.Course
	PriceRaw string
	IsNew    bool
}

// parseCourseForm reads the posted course fields. Rich-text
// descriptions are sanitized before they ever reach the store.
func parseCourseForm(r *http.Request) (models.Course, string) {
	priceRaw := normalize.QueryParam(r.FormValue("price"))
	return models.Course{
		TitleEN:       normalize.Name(r.FormValue("title_en")),
		TitleDE:       normalize.Name(r.FormValue("title_de")),
		Slug:          normalize.QueryParam(r.FormValue("slug")),
		SummaryEN:     normalize.Name(r.FormValue("summary_en")),
		SummaryDE:     normalize.Name(r.FormValue("summary_de")),
		DescriptionEN: htmlsanitize.Clean(r.FormValue("description_en")),
		DescriptionDE: htmlsanitize.Clean(r.FormValue("description_de")),
		Category:      normalize.QueryParam(r.FormValue("category")),
		Duration:      normalize.QueryParam(r.FormValue("duration")),
		ImageURL:      normalize.QueryParam(r.FormValue("image_url")),
		Status:        normalize.Status(r.FormValue("status")),
	}, priceRaw
}

// ServeNewCourse renders the Add Course page.
func (h *Handler) ServeNewCourse(w http.ResponseWriter, r *http.Request) {
	data := courseFormData{IsNew: true}
	data.Course.Status = "active"
	data.Course.Category = models.CategoryCourse
	formutil.SetBase(&data.Base, r, "Add Course", "/admin/courses")
	templates.Render(w, r, "admin_course_form", data)
}

// HandleCreateCourse processes the Add Course form submission.
func (h *Handler) HandleCreateCourse(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	course, priceRaw := parseCourseForm(r)

	input := courseInput{TitleEN: course.TitleEN, TitleDE: course.TitleDE}
	if result := inputval.Validate(input); result.HasErrors() {
		h.reRenderCourseForm(w, r, course, priceRaw, true, result.First())
		return
	}

	price, err := strconv.ParseFloat(priceRaw, 64)
	if err != nil || price < 0 {
		h.reRenderCourseForm(w, r, course, priceRaw, true, i18n.T(i18n.Lang(r), "courses.bad_price"))
		return
	}
	course.Price = price

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := h.Courses.Create(ctx, course); err != nil {
		if errors.Is(err, coursestore.ErrDuplicateSlug) {
			h.reRenderCourseForm(w, r, course, priceRaw, true, i18n.T(i18n.Lang(r), "courses.duplicate_slug"))
			return
		}
		h.ErrLog.LogServerError(w, r, "course create failed", err, i18n.T(i18n.Lang(r), "courses.save_failed"), "/admin/courses")
		return
	}

	http.Redirect(w, r, "/admin/courses?notice=created", http.StatusSeeOther)
}

// ServeEditCourse renders the Edit Course page.
func (h *Handler) ServeEditCourse(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "", "/admin/courses")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	course, err := h.Courses.GetByID(ctx, id)
	if err == mongo.ErrNoDocuments {
		uierrors.RenderNotFound(w, r, "", "/admin/courses")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "course load failed", err, "", "/admin/courses")
		return
	}

	data := courseFormData{Course: course, PriceRaw: strconv.FormatFloat(course.Price, 'f', 2, 64)}
	formutil.SetBase(&data.Base, r, "Edit Course", "/admin/courses")
	templates.Render(w, r, "admin_course_form", data)
}

// HandleUpdateCourse processes the Edit Course form submission.
func (h *Handler) HandleUpdateCourse(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "", "/admin/courses")
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	course, priceRaw := parseCourseForm(r)
	course.ID = id

	input := courseInput{TitleEN: course.TitleEN, TitleDE: course.TitleDE}
	if result := inputval.Validate(input); result.HasErrors() {
		h.reRenderCourseForm(w, r, course, priceRaw, false, result.First())
		return
	}

	price, perr := strconv.ParseFloat(priceRaw, 64)
	if perr != nil || price < 0 {
		h.reRenderCourseForm(w, r, course, priceRaw, false, i18n.T(i18n.Lang(r), "courses.bad_price"))
		return
	}
	course.Price = price

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Courses.Update(ctx, id, course); err != nil {
		if errors.Is(err, coursestore.ErrDuplicateSlug) {
			h.reRenderCourseForm(w, r, course, priceRaw, false, i18n.T(i18n.Lang(r), "courses.duplicate_slug"))
			return
		}
		h.ErrLog.LogServerError(w, r, "course update failed", err, i18n.T(i18n.Lang(r), "courses.save_failed"), "/admin/courses")
		return
	}

	http.Redirect(w, r, "/admin/courses?notice=updated", http.StatusSeeOther)
}

// HandleDeleteCourse removes a course together with its syllabus,
// objectives, and timetable rows. Bookings are kept for history.
func (h *Handler) HandleDeleteCourse(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "", "/admin/courses")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := h.Courses.Delete(ctx, id); err != nil {
		h.ErrLog.LogServerError(w, r, "course delete failed", err, i18n.T(i18n.Lang(r), "courses.save_failed"), "/admin/courses")
		return
	}
	if err := h.Syllabus.DeleteByCourse(ctx, id); err != nil {
		h.Log.Warn("syllabus cleanup failed", zap.Error(err))
	}
	if err := h.Objectives.DeleteByCourse(ctx, id); err != nil {
		h.Log.Warn("objectives cleanup failed", zap.Error(err))
	}
	if err := h.Timetable.DeleteByCourse(ctx, id); err != nil {
		h.Log.Warn("timetable cleanup failed", zap.Error(err))
	}

	http.Redirect(w, r, "/admin/courses?notice=deleted", http.StatusSeeOther)
}

// reRenderCourseForm re-renders the course form with a validation error
// and the previously posted values.
func (h *Handler) reRenderCourseForm(w http.ResponseWriter, r *http.Request, course models.Course, priceRaw string, isNew bool, msg string) {
	data := courseFormData{Course: course, PriceRaw: priceRaw, IsNew: isNew}
	title := "Edit Course"
	if isNew {
		title = "Add Course"
	}
	formutil.SetBase(&data.Base, r, title, "/admin/courses")
	data.SetError(msg)
	templates.Render(w, r, "admin_course_form", data)
}
