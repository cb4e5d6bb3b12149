// internal/app/features/courses/routes.go
package courses

import (
	"github.com/go-chi/chi/v5"

	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/auth"
)

// Routes serves the public catalog under /courses.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeCatalog)
	r.Get("/{slug}", h.ServeCourseDetail)

	return r
}

// AdminRoutes serves course management under /admin/courses. The
// caller mounts it behind the admin role check.
func AdminRoutes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Use(sm.RequireSignedIn)
	r.Use(sm.RequireRole("admin"))

	// LIST
	r.Get("/", h.ServeAdminList)

	// CREATE
	r.Get("/new", h.ServeNewCourse)
	r.Post("/", h.HandleCreateCourse)

	// EDIT
	r.Get("/{id}/edit", h.ServeEditCourse)
	r.Post("/{id}/edit", h.HandleUpdateCourse)

	// DELETE
	r.Post("/{id}/delete", h.HandleDeleteCourse)

	// SYLLABUS
	r.Get("/{id}/syllabus", h.ServeAdminSyllabus)
	r.Post("/{id}/syllabus", h.HandleCreateModule)
	r.Post("/{id}/syllabus/{moduleID}/edit", h.HandleUpdateModule)
	r.Post("/{id}/syllabus/{moduleID}/delete", h.HandleDeleteModule)
	r.Post("/{id}/syllabus/{moduleID}/details", h.HandleCreateDetail)
	r.Post("/{id}/syllabus/details/{detailID}/edit", h.HandleUpdateDetail)
	r.Post("/{id}/syllabus/details/{detailID}/delete", h.HandleDeleteDetail)

	// OBJECTIVES
	r.Get("/{id}/objectives", h.ServeAdminObjectives)
	r.Post("/{id}/objectives", h.HandleCreateObjective)
	r.Post("/{id}/objectives/{objectiveID}/edit", h.HandleUpdateObjective)
	r.Post("/{id}/objectives/{objectiveID}/delete", h.HandleDeleteObjective)

	return r
}
