// internal/app/features/login/handler.go
package login

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	uierrors "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/features/errors"
	userstore "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/store/users"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/auth"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/authutil"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/formutil"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/i18n"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/normalize"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/status"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/timeouts"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/domain/models"
)

type Handler struct {
	DB            *mongo.Database
	Users         *userstore.Store
	Log           *zap.Logger
	SessionMgr    *auth.SessionManager
	ErrLog        *uierrors.ErrorLogger
	GoogleEnabled bool
}

func NewHandler(db *mongo.Database, sessionMgr *auth.SessionManager, errLog *uierrors.ErrorLogger, googleEnabled bool, logger *zap.Logger) *Handler {
	return &Handler{
		DB:            db,
		Users:         userstore.New(db),
		Log:           logger,
		SessionMgr:    sessionMgr,
		ErrLog:        errLog,
		GoogleEnabled: googleEnabled,
	}
}

type loginFormData struct {
	formutil.Base
	Email         string
	ReturnURL     string
	GoogleEnabled bool
}

// ServeLogin handles GET /login.
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	data := loginFormData{
		ReturnURL:     query.Get(r, "return"),
		GoogleEnabled: h.GoogleEnabled,
	}
	formutil.SetBase(&data.Base, r, "Login", "/")

	templates.Render(w, r, "login", data)
}

// HandleLoginPost handles POST /login: email + password in one step.
func (h *Handler) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogServerError(w, r, "parse login form failed", err, "", "/login")
		return
	}

	lang := i18n.Lang(r)
	email := normalize.Email(r.FormValue("email"))
	password := r.FormValue("password")

	if email == "" || password == "" {
		h.renderFormWithError(w, r, i18n.T(lang, "login.invalid"), email)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, email)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		h.renderFormWithError(w, r, i18n.T(lang, "login.invalid"), email)
		return
	case err != nil:
		h.ErrLog.LogServerError(w, r, "load user for login failed", err, "", "/login")
		return
	}

	if u.Status == status.Disabled {
		h.renderFormWithError(w, r, i18n.T(lang, "login.disabled"), email)
		return
	}

	if u.AuthMethod == models.AuthMethodGoogle || u.PasswordHash == "" {
		// Google accounts have no local password.
		h.renderFormWithError(w, r, i18n.T(lang, "login.invalid"), email)
		return
	}

	if !authutil.CheckPassword(password, u.PasswordHash) {
		h.Log.Info("login failed: wrong password", zap.String("email_ci", u.EmailCI))
		h.renderFormWithError(w, r, i18n.T(lang, "login.invalid"), email)
		return
	}

	if err := h.SessionMgr.SignIn(w, r, &auth.SessionUser{
		ID:    u.ID.Hex(),
		Name:  u.FullName,
		Email: u.Email,
		Role:  u.Role,
	}); err != nil {
		h.ErrLog.LogServerError(w, r, "save session failed", err, "", "/login")
		return
	}

	h.Log.Info("user signed in", zap.String("user_id", u.ID.Hex()))

	ret := strings.TrimSpace(r.FormValue("return"))
	dest := urlutil.SafeReturn(ret, "", "/sessions")
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

func (h *Handler) renderFormWithError(w http.ResponseWriter, r *http.Request, msg, email string) {
	ret := strings.TrimSpace(r.FormValue("return"))
	if ret == "" {
		ret = query.Get(r, "return")
	}

	data := loginFormData{
		Email:         email,
		ReturnURL:     ret,
		GoogleEnabled: h.GoogleEnabled,
	}
	formutil.SetBase(&data.Base, r, "Login", "/")
	data.SetError(msg)

	templates.Render(w, r, "login", data)
}
