// internal/app/features/sessions/routes.go
package sessions

import (
	"github.com/go-chi/chi/v5"

	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/auth"
)

func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Use(sm.RequireSignedIn)

	r.Get("/", h.ServeMyGroups)
	r.Get("/{id}", h.ServeGroupDetail)
	r.Post("/{id}/book", h.HandleBookGroup)

	return r
}
