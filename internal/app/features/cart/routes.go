// internal/app/features/cart/routes.go
package cart

import (
	"github.com/go-chi/chi/v5"

	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/auth"
)

func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Use(sm.RequireSignedIn)

	r.Get("/", h.ServeCart)
	r.Post("/add/course/{id}", h.HandleAddCourse)
	r.Post("/add/group/{id}", h.HandleAddGroup)
	r.Post("/remove", h.HandleRemove)
	r.Post("/clear", h.HandleClear)

	return r
}
