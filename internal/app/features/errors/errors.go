// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"

	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/authz"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/i18n"
)

// pageData is the basic view model for error pages.
type pageData struct {
	Title      string
	Lang       string
	IsLoggedIn bool
	Role       string
	UserName   string
	Message    string
	BackURL    string
}

// Handler is the errors feature handler.
// No DB needed; it just renders templates.
type Handler struct{}

// NewHandler constructs an errors Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Forbidden renders a friendly "access denied" page.
// GET /forbidden
func (h *Handler) Forbidden(w http.ResponseWriter, r *http.Request) {
	role, name, _, signedIn := authz.UserCtx(r)
	lang := i18n.Lang(r)

	data := pageData{
		Title:      i18n.T(lang, "errors.forbidden_title"),
		Lang:       lang,
		IsLoggedIn: signedIn,
		Role:       role,
		UserName:   name,
		Message:    i18n.T(lang, "errors.forbidden"),
		BackURL:    "/",
	}

	templates.Render(w, r, "error_forbidden", data)
}

// Unauthorized renders a friendly "sign in required" page.
// GET /unauthorized
func (h *Handler) Unauthorized(w http.ResponseWriter, r *http.Request) {
	role, name, _, signedIn := authz.UserCtx(r)
	lang := i18n.Lang(r)

	data := pageData{
		Title:      i18n.T(lang, "errors.unauthorized_title"),
		Lang:       lang,
		IsLoggedIn: signedIn,
		Role:       role,
		UserName:   name,
		Message:    i18n.T(lang, "errors.unauthorized"),
		BackURL:    "/login",
	}

	templates.Render(w, r, "error_forbidden", data)
}
