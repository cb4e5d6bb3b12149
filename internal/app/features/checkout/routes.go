// internal/app/features/checkout/routes.go
package checkout

import (
	"github.com/go-chi/chi/v5"

	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/auth"
)

func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Use(sm.RequireSignedIn)

	r.Get("/", h.ServeCheckout)
	r.Post("/", h.HandleCheckout)

	return r
}
