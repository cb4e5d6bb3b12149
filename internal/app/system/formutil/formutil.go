// Package formutil provides helpers for pages that re-render with a
// notice or validation error.
//
// Page data structs embed Base so the shared template fields (title,
// signed-in user, language, back URL, notice) are populated the same
// way everywhere:
//
//	type newGroupData struct {
//		formutil.Base
//		Name string
//	}
//
//	data := newGroupData{Name: name}
//	formutil.SetBase(&data.Base, r, "Add Session Group", "/admin/groups")
//	data.SetError("Name is required.")
package formutil

import (
	"html/template"
	"net/http"

	"github.com/dalemusser/waffle/pantry/httpnav"

	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/authz"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/i18n"
)

// Base contains the fields shared by all rendered pages.
type Base struct {
	Title       string
	Lang        string
	IsLoggedIn  bool
	Role        string
	UserName    string
	BackURL     string
	CurrentPath string
	Error       template.HTML
	Notice      string
}

// SetError records a validation error for the template to display.
// The message is escaped; markup is not allowed through.
func (b *Base) SetError(msg string) {
	b.Error = template.HTML(template.HTMLEscapeString(msg))
}

// SetBase populates the shared fields from the request context.
func SetBase(b *Base, r *http.Request, title, backDefault string) {
	role, uname, _, signedIn := authz.UserCtx(r)
	b.Title = title
	b.Lang = i18n.Lang(r)
	b.IsLoggedIn = signedIn
	b.Role = role
	b.UserName = uname
	b.BackURL = httpnav.ResolveBackURL(r, backDefault)
	b.CurrentPath = r.URL.Path
}

// SetNotice records a translated notice message by catalog key.
func (b *Base) SetNotice(r *http.Request, key string) {
	b.Notice = i18n.T(i18n.Lang(r), key)
}
