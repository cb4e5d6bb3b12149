// internal/app/features/register/handler.go
package register

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	uierrors "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/features/errors"
	userstore "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/store/users"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/auth"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/authutil"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/formutil"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/i18n"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/inputval"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/normalize"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/timeouts"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/domain/models"
)

type Handler struct {
	Users      *userstore.Store
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
	ErrLog     *uierrors.ErrorLogger
}

func NewHandler(db *mongo.Database, sessionMgr *auth.SessionManager, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Users:      userstore.New(db),
		Log:        logger,
		SessionMgr: sessionMgr,
		ErrLog:     errLog,
	}
}

type registerFormData struct {
	formutil.Base
	FullName string
	Email    string
}

type registerInput struct {
	FullName string `validate:"required,max=200" label:"Name"`
	Email    string `validate:"required,email,max=320" label:"Email"`
}

// ServeRegister handles GET /register.
func (h *Handler) ServeRegister(w http.ResponseWriter, r *http.Request) {
	data := registerFormData{}
	formutil.SetBase(&data.Base, r, "Register", "/")
	templates.Render(w, r, "register", data)
}

// HandleRegisterPost handles POST /register: creates a student account
// and signs it in.
func (h *Handler) HandleRegisterPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogServerError(w, r, "parse register form failed", err, "", "/register")
		return
	}

	lang := i18n.Lang(r)
	in := registerInput{
		FullName: normalize.Name(r.FormValue("full_name")),
		Email:    normalize.Email(r.FormValue("email")),
	}
	password := r.FormValue("password")

	if res := inputval.Validate(in); res.HasErrors() {
		h.renderFormWithError(w, r, res.First(), in)
		return
	}
	if err := authutil.ValidatePassword(password); err != nil {
		h.renderFormWithError(w, r, err.Error(), in)
		return
	}

	hash, err := authutil.HashPassword(password)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "hash password failed", err, "", "/register")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.Create(ctx, models.User{
		FullName:     in.FullName,
		Email:        in.Email,
		AuthMethod:   models.AuthMethodPassword,
		PasswordHash: hash,
		Role:         "student",
		PreferredLang: lang,
	})
	switch {
	case errors.Is(err, userstore.ErrDuplicateEmail):
		h.renderFormWithError(w, r, i18n.T(lang, "register.email_taken"), in)
		return
	case err != nil:
		h.ErrLog.LogServerError(w, r, "create user failed", err, "", "/register")
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

	h.Log.Info("user registered", zap.String("user_id", u.ID.Hex()))
	http.Redirect(w, r, "/sessions", http.StatusSeeOther)
}

func (h *Handler) renderFormWithError(w http.ResponseWriter, r *http.Request, msg string, in registerInput) {
	data := registerFormData{
		FullName: in.FullName,
		Email:    in.Email,
	}
	formutil.SetBase(&data.Base, r, "Register", "/")
	data.SetError(msg)
	templates.Render(w, r, "register", data)
}
