// internal/app/features/errors/errlog.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/auth"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/i18n"
)

// ErrorLogger logs server-side failures and renders the shared error
// page, so handlers can treat "log it and bail" as one call.
type ErrorLogger struct {
	log *zap.Logger
}

func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// LogServerError logs err with request context and renders a 500 page
// carrying userMsg (already localized by the caller) and a back link.
func (el *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	el.log.Error(logMsg,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path))

	u, signed := auth.CurrentUser(r)
	role, name := "", ""
	if signed && u != nil {
		role, name = u.Role, u.Name
	}
	if backURL == "" {
		backURL = httpnav.ResolveBackURL(r, "/")
	}
	lang := i18n.Lang(r)
	if userMsg == "" {
		userMsg = i18n.T(lang, "errors.server")
	}

	w.WriteHeader(http.StatusInternalServerError)
	templates.Render(w, r, "error_server", pageData{
		Title:      i18n.T(lang, "errors.server_title"),
		Lang:       lang,
		IsLoggedIn: signed,
		Role:       role,
		UserName:   name,
		Message:    userMsg,
		BackURL:    backURL,
	})
}
