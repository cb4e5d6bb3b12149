// internal/app/features/courses/adminsyllabus.go
package courses

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	uierrors "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/features/errors"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/formutil"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/i18n"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/normalize"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/timeouts"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/domain/models"
)

type adminSyllabusData struct {
	formutil.Base
	Course  models.Course
	Modules []syllabusItem
}

// ServeAdminSyllabus shows a course's syllabus modules and details with
// inline add forms.
func (h *Handler) ServeAdminSyllabus(w http.ResponseWriter, r *http.Request) {
	courseID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "", "/admin/courses")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	course, err := h.Courses.GetByID(ctx, courseID)
	if err == mongo.ErrNoDocuments {
		uierrors.RenderNotFound(w, r, "", "/admin/courses")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "course load failed", err, "", "/admin/courses")
		return
	}

	data := adminSyllabusData{Course: course}
	formutil.SetBase(&data.Base, r, "Syllabus: "+course.TitleEN, "/admin/courses")

	modules, err := h.Syllabus.ListModules(ctx, courseID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "syllabus load failed", err, "", "/admin/courses")
		return
	}
	for i := range modules {
		details, derr := h.Syllabus.ListDetails(ctx, modules[i].ID)
		if derr != nil {
			h.Log.Warn("syllabus details load failed",
				zap.String("module_id", modules[i].ID.Hex()),
				zap.Error(derr))
		}
		data.Modules = append(data.Modules, syllabusItem{Module: modules[i], Details: details})
	}

	templates.Render(w, r, "admin_course_syllabus", data)
}

// HandleCreateModule adds a syllabus module to a course.
func (h *Handler) HandleCreateModule(w http.ResponseWriter, r *http.Request) {
	courseID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "", "/admin/courses")
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	_, err = h.Syllabus.CreateModule(ctx, models.SyllabusModule{
		CourseID: courseID,
		TitleEN:  normalize.Name(r.FormValue("title_en")),
		TitleDE:  normalize.Name(r.FormValue("title_de")),
		OrderNum: parseOrderNum(r.FormValue("order_num")),
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "syllabus module create failed", err,
			i18n.T(i18n.Lang(r), "courses.save_failed"), syllabusURL(courseID))
		return
	}

	http.Redirect(w, r, syllabusURL(courseID), http.StatusSeeOther)
}

// HandleUpdateModule updates a syllabus module's titles and position.
func (h *Handler) HandleUpdateModule(w http.ResponseWriter, r *http.Request) {
	courseID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "", "/admin/courses")
		return
	}
	moduleID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "moduleID"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "", syllabusURL(courseID))
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err = h.Syllabus.UpdateModule(ctx, moduleID, models.SyllabusModule{
		TitleEN:  normalize.Name(r.FormValue("title_en")),
		TitleDE:  normalize.Name(r.FormValue("title_de")),
		OrderNum: parseOrderNum(r.FormValue("order_num")),
	})
	if err != nil && err != mongo.ErrNoDocuments {
		h.ErrLog.LogServerError(w, r, "syllabus module update failed", err,
			i18n.T(i18n.Lang(r), "courses.save_failed"), syllabusURL(courseID))
		return
	}

	http.Redirect(w, r, syllabusURL(courseID), http.StatusSeeOther)
}

// HandleDeleteModule removes a syllabus module and its details.
func (h *Handler) HandleDeleteModule(w http.ResponseWriter, r *http.Request) {
	courseID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "", "/admin/courses")
		return
	}
	moduleID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "moduleID"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "", syllabusURL(courseID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := h.Syllabus.DeleteModule(ctx, moduleID); err != nil {
		h.ErrLog.LogServerError(w, r, "syllabus module delete failed", err,
			i18n.T(i18n.Lang(r), "courses.save_failed"), syllabusURL(courseID))
		return
	}

	http.Redirect(w, r, syllabusURL(courseID), http.StatusSeeOther)
}

// HandleCreateDetail adds a detail row to a syllabus module.
func (h *Handler) HandleCreateDetail(w http.ResponseWriter, r *http.Request) {
	courseID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "", "/admin/courses")
		return
	}
	moduleID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "moduleID"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "", syllabusURL(courseID))
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	_, err = h.Syllabus.CreateDetail(ctx, models.SyllabusDetail{
		SyllabusID: moduleID,
		TextEN:     normalize.Name(r.FormValue("text_en")),
		TextDE:     normalize.Name(r.FormValue("text_de")),
		OrderNum:   parseOrderNum(r.FormValue("order_num")),
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "syllabus detail create failed", err,
			i18n.T(i18n.Lang(r), "courses.save_failed"), syllabusURL(courseID))
		return
	}

	http.Redirect(w, r, syllabusURL(courseID), http.StatusSeeOther)
}

// HandleUpdateDetail updates a detail row.
func (h *Handler) HandleUpdateDetail(w http.ResponseWriter, r *http.Request) {
	courseID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "", "/admin/courses")
		return
	}
	detailID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "detailID"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "", syllabusURL(courseID))
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err = h.Syllabus.UpdateDetail(ctx, detailID, models.SyllabusDetail{
		TextEN:   normalize.Name(r.FormValue("text_en")),
		TextDE:   normalize.Name(r.FormValue("text_de")),
		OrderNum: parseOrderNum(r.FormValue("order_num")),
	})
	if err != nil && err != mongo.ErrNoDocuments {
		h.ErrLog.LogServerError(w, r, "syllabus detail update failed", err,
			i18n.T(i18n.Lang(r), "courses.save_failed"), syllabusURL(courseID))
		return
	}

	http.Redirect(w, r, syllabusURL(courseID), http.StatusSeeOther)
}

// HandleDeleteDetail removes a detail row.
func (h *Handler) HandleDeleteDetail(w http.ResponseWriter, r *http.Request) {
	courseID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "", "/admin/courses")
		return
	}
	detailID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "detailID"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "", syllabusURL(courseID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := h.Syllabus.DeleteDetail(ctx, detailID); err != nil {
		h.ErrLog.LogServerError(w, r, "syllabus detail delete failed", err,
			i18n.T(i18n.Lang(r), "courses.save_failed"), syllabusURL(courseID))
		return
	}

	http.Redirect(w, r, syllabusURL(courseID), http.StatusSeeOther)
}

func syllabusURL(courseID primitive.ObjectID) string {
	return "/admin/courses/" + courseID.Hex() + "/syllabus"
}

func parseOrderNum(raw string) int {
	n, err := strconv.Atoi(normalize.QueryParam(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
