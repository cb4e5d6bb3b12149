// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/dalemusser/waffle/pantry/templates"

	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/auth"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/i18n"
)

// RenderUnauthorized shows a friendly "sign in required" page.
// If backURL is empty, it will default to /login.
func RenderUnauthorized(w http.ResponseWriter, r *http.Request, backURL string) {
	u, signed := auth.CurrentUser(r)
	role, name := "", ""
	if signed && u != nil {
		role, name = u.Role, u.Name
	}
	if backURL == "" {
		backURL = "/login"
	}
	lang := i18n.Lang(r)

	w.WriteHeader(http.StatusUnauthorized)
	templates.Render(w, r, "error_forbidden", pageData{
		Title:      i18n.T(lang, "errors.unauthorized_title"),
		Lang:       lang,
		IsLoggedIn: signed,
		Role:       role,
		UserName:   name,
		Message:    i18n.T(lang, "errors.unauthorized"),
		BackURL:    backURL,
	})
}

// RenderForbidden shows a friendly access error page with a message.
// If backURL is empty, it resolves a safe back URL with a default
// fallback.
func RenderForbidden(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	u, signed := auth.CurrentUser(r)
	role, name := "", ""
	if signed && u != nil {
		role, name = u.Role, u.Name
	}
	if backURL == "" {
		backURL = httpnav.ResolveBackURL(r, "/")
	}
	lang := i18n.Lang(r)
	if msg == "" {
		msg = i18n.T(lang, "errors.forbidden")
	}

	w.WriteHeader(http.StatusForbidden)
	templates.Render(w, r, "error_forbidden", pageData{
		Title:      i18n.T(lang, "errors.forbidden_title"),
		Lang:       lang,
		IsLoggedIn: signed,
		Role:       role,
		UserName:   name,
		Message:    msg,
		BackURL:    backURL,
	})
}

// RenderNotFound shows a friendly "not found" page.
func RenderNotFound(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	u, signed := auth.CurrentUser(r)
	role, name := "", ""
	if signed && u != nil {
		role, name = u.Role, u.Name
	}
	if backURL == "" {
		backURL = httpnav.ResolveBackURL(r, "/")
	}
	lang := i18n.Lang(r)
	if msg == "" {
		msg = i18n.T(lang, "errors.not_found")
	}

	w.WriteHeader(http.StatusNotFound)
	templates.Render(w, r, "error_notfound", pageData{
		Title:      i18n.T(lang, "errors.not_found_title"),
		Lang:       lang,
		IsLoggedIn: signed,
		Role:       role,
		UserName:   name,
		Message:    msg,
		BackURL:    backURL,
	})
}
