// internal/app/features/courses/detail.go
package courses

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	uierrors "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/features/errors"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/store/queries/groupcatalog"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/formutil"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/i18n"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/timeouts"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/domain/models"
)

// syllabusItem is a syllabus module with its detail rows, ready for
// display.
type syllabusItem struct {
	Module  models.SyllabusModule
	Details []models.SyllabusDetail
}

type courseDetailData struct {
	formutil.Base
	Course     models.Course
	Syllabus   []syllabusItem
	Objectives []models.Objective
	Groups     []groupcatalog.GroupItem
	Timetable  []models.TimetableEntry
}

// ServeCourseDetail handles GET /courses/{slug}: the public course
// page with syllabus, objectives, upcoming timetable, and the active
// session groups open for booking. The secondary sections fail soft;
// only a missing course is a hard 404.
func (h *Handler) ServeCourseDetail(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	lang := i18n.Lang(r)
	slug := chi.URLParam(r, "slug")

	course, err := h.Courses.GetBySlug(ctx, slug)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		uierrors.RenderNotFound(w, r, i18n.T(lang, "courses.not_found"), "/courses")
		return
	case err != nil:
		h.ErrLog.LogServerError(w, r, "load course by slug failed", err, i18n.T(lang, "courses.load_failed"), "/courses")
		return
	}

	data := courseDetailData{Course: course}
	formutil.SetBase(&data.Base, r, course.Title(lang), "/courses")

	if mods, err := h.Syllabus.ListModules(ctx, course.ID); err != nil {
		h.Log.Warn("syllabus load failed", zap.String("course_id", course.ID.Hex()), zap.Error(err))
	} else {
		for _, m := range mods {
			item := syllabusItem{Module: m}
			if details, err := h.Syllabus.ListDetails(ctx, m.ID); err != nil {
				h.Log.Warn("syllabus details load failed", zap.String("syllabus_id", m.ID.Hex()), zap.Error(err))
			} else {
				item.Details = details
			}
			data.Syllabus = append(data.Syllabus, item)
		}
	}

	if objectives, err := h.Objectives.ListByCourse(ctx, course.ID); err != nil {
		h.Log.Warn("objectives load failed", zap.String("course_id", course.ID.Hex()), zap.Error(err))
	} else {
		data.Objectives = objectives
	}

	courseID := course.ID
	if groups, err := groupcatalog.ListActiveGroupsWithCourseInfo(ctx, h.DB, &courseID); err != nil {
		h.Log.Warn("session groups load failed", zap.String("course_id", course.ID.Hex()), zap.Error(err))
		data.SetError(i18n.T(lang, "groups.load_failed"))
	} else {
		data.Groups = groups
	}

	if entries, err := h.Timetable.ListByCourse(ctx, course.ID); err != nil {
		h.Log.Warn("timetable load failed", zap.String("course_id", course.ID.Hex()), zap.Error(err))
	} else {
		data.Timetable = entries
	}

	templates.Render(w, r, "course_detail", data)
}
