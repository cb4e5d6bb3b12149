// internal/app/features/groups/routes.go
package groups

import (
	"github.com/go-chi/chi/v5"

	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/auth"
)

// AdminRoutes serves session group management under /admin/groups.
func AdminRoutes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Use(sm.RequireSignedIn)
	r.Use(sm.RequireRole("admin"))

	// LIST
	r.Get("/", h.ServeGroupsList)

	// CREATE
	r.Get("/new", h.ServeNewGroup)
	r.Post("/", h.HandleCreateGroup)

	// EDIT
	r.Get("/{id}/edit", h.ServeEditGroup)
	r.Post("/{id}/edit", h.HandleEditGroup)

	// DELETE
	r.Post("/{id}/delete", h.HandleDeleteGroup)

	// TIMETABLE
	r.Get("/{id}/timetable", h.ServeGroupTimetable)
	r.Post("/{id}/timetable", h.HandleCreateSession)
	r.Post("/{id}/timetable/{entryID}/edit", h.HandleUpdateSession)
	r.Post("/{id}/timetable/{entryID}/delete", h.HandleDeleteSession)

	// BOOKINGS
	r.Get("/{id}/bookings", h.ServeGroupBookings)

	return r
}
