// internal/app/features/courses/adminobjectives.go
package courses

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	uierrors "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/features/errors"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/formutil"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/i18n"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/normalize"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/timeouts"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/domain/models"
)

type adminObjectivesData struct {
	formutil.Base
	Course     models.Course
	Objectives []models.Objective
}

// ServeAdminObjectives shows a course's learning objectives with an
// inline add form.
func (h *Handler) ServeAdminObjectives(w http.ResponseWriter, r *http.Request) {
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

	objectives, err := h.Objectives.ListByCourse(ctx, courseID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "objectives load failed", err, "", "/admin/courses")
		return
	}

	data := adminObjectivesData{Course: course, Objectives: objectives}
	formutil.SetBase(&data.Base, r, "Objectives: "+course.TitleEN, "/admin/courses")
	templates.Render(w, r, "admin_course_objectives", data)
}

// HandleCreateObjective adds a learning objective to a course.
func (h *Handler) HandleCreateObjective(w http.ResponseWriter, r *http.Request) {
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

	_, err = h.Objectives.Create(ctx, models.Objective{
		CourseID: courseID,
		TextEN:   normalize.Name(r.FormValue("text_en")),
		TextDE:   normalize.Name(r.FormValue("text_de")),
		OrderNum: parseOrderNum(r.FormValue("order_num")),
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "objective create failed", err,
			i18n.T(i18n.Lang(r), "courses.save_failed"), objectivesURL(courseID))
		return
	}

	http.Redirect(w, r, objectivesURL(courseID), http.StatusSeeOther)
}

// HandleUpdateObjective updates an objective's text and position.
func (h *Handler) HandleUpdateObjective(w http.ResponseWriter, r *http.Request) {
	courseID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "", "/admin/courses")
		return
	}
	objectiveID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "objectiveID"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "", objectivesURL(courseID))
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err = h.Objectives.Update(ctx, objectiveID, models.Objective{
		TextEN:   normalize.Name(r.FormValue("text_en")),
		TextDE:   normalize.Name(r.FormValue("text_de")),
		OrderNum: parseOrderNum(r.FormValue("order_num")),
	})
	if err != nil && err != mongo.ErrNoDocuments {
		h.ErrLog.LogServerError(w, r, "objective update failed", err,
			i18n.T(i18n.Lang(r), "courses.save_failed"), objectivesURL(courseID))
		return
	}

	http.Redirect(w, r, objectivesURL(courseID), http.StatusSeeOther)
}

// HandleDeleteObjective removes an objective.
func (h *Handler) HandleDeleteObjective(w http.ResponseWriter, r *http.Request) {
	courseID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "", "/admin/courses")
		return
	}
	objectiveID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "objectiveID"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "", objectivesURL(courseID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := h.Objectives.Delete(ctx, objectiveID); err != nil {
		h.ErrLog.LogServerError(w, r, "objective delete failed", err,
			i18n.T(i18n.Lang(r), "courses.save_failed"), objectivesURL(courseID))
		return
	}

	http.Redirect(w, r, objectivesURL(courseID), http.StatusSeeOther)
}

func objectivesURL(courseID primitive.ObjectID) string {
	return "/admin/courses/" + courseID.Hex() + "/objectives"
}
