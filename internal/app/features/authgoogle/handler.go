// internal/app/features/authgoogle/handler.go
package authgoogle

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"github.com/gorilla/securecookie"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	userstore "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/store/users"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/auth"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/i18n"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/status"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/timeouts"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/domain/models"
)

const stateCookie = "academy-oauth-state"

// Handler handles Google OAuth sign-in. The CSRF state round-trips in
// a signed cookie rather than server-side storage.
type Handler struct {
	Users      *userstore.Store
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
	Codec      *securecookie.SecureCookie

	ClientID     string
	ClientSecret string
	RedirectURL  string // e.g., "https://academy.example.com/auth/google/callback"
}

func NewHandler(db *mongo.Database, sessionMgr *auth.SessionManager, sessionKey, clientID, clientSecret, baseURL string, logger *zap.Logger) *Handler {
	return &Handler{
		Users:        userstore.New(db),
		Log:          logger,
		SessionMgr:   sessionMgr,
		Codec:        securecookie.New([]byte(sessionKey), nil),
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  baseURL + "/auth/google/callback",
	}
}

// IsConfigured returns true if Google OAuth is configured.
func (h *Handler) IsConfigured() bool {
	return h.ClientID != "" && h.ClientSecret != ""
}

func (h *Handler) oauth2Config() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     h.ClientID,
		ClientSecret: h.ClientSecret,
		RedirectURL:  h.RedirectURL,
		Scopes: []string{
			"openid",
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}

type statePayload struct {
	State  string
	Return string
}

// ServeLogin handles GET /auth/google: sets the state cookie and
// redirects to Google's consent screen.
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	if !h.IsConfigured() {
		h.Log.Warn("Google OAuth not configured")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	state, err := generateState()
	if err != nil {
		h.Log.Error("failed to generate OAuth state", zap.Error(err))
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	encoded, err := h.Codec.Encode(stateCookie, statePayload{
		State:  state,
		Return: query.Get(r, "return"),
	})
	if err != nil {
		h.Log.Error("failed to encode OAuth state cookie", zap.Error(err))
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    encoded,
		Path:     "/auth/google",
		MaxAge:   600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, h.oauth2Config().AuthCodeURL(state), http.StatusTemporaryRedirect)
}

// ServeCallback handles GET /auth/google/callback: validates state,
// exchanges the code, loads or creates the account, and signs in.
func (h *Handler) ServeCallback(w http.ResponseWriter, r *http.Request) {
	if errParam := r.URL.Query().Get("error"); errParam != "" {
		h.Log.Warn("Google OAuth denied", zap.String("error", errParam))
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	var payload statePayload
	if c, err := r.Cookie(stateCookie); err != nil {
		h.Log.Warn("missing OAuth state cookie")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	} else if err := h.Codec.Decode(stateCookie, c.Value, &payload); err != nil {
		h.Log.Warn("invalid OAuth state cookie", zap.Error(err))
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	// One-shot cookie.
	http.SetCookie(w, &http.Cookie{Name: stateCookie, Path: "/auth/google", MaxAge: -1})

	if r.URL.Query().Get("state") != payload.State {
		h.Log.Warn("OAuth state mismatch")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	token, err := h.oauth2Config().Exchange(r.Context(), code)
	if err != nil {
		h.Log.Error("OAuth code exchange failed", zap.Error(err))
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	info, err := fetchGoogleUserInfo(r.Context(), token)
	if err != nil {
		h.Log.Error("fetching Google user info failed", zap.Error(err))
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if info.Email == "" || !info.EmailVerified {
		h.Log.Warn("Google account has no verified email")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.findOrCreateUser(ctx, r, info)
	if err != nil {
		h.Log.Error("Google sign-in user lookup failed", zap.Error(err))
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if u == nil {
		// Disabled account.
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := h.SessionMgr.SignIn(w, r, &auth.SessionUser{
		ID:    u.ID.Hex(),
		Name:  u.FullName,
		Email: u.Email,
		Role:  u.Role,
	}); err != nil {
		h.Log.Error("save session failed", zap.Error(err))
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	h.Log.Info("user signed in via Google", zap.String("user_id", u.ID.Hex()))

	dest := urlutil.SafeReturn(payload.Return, "", "/sessions")
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

// findOrCreateUser loads the account for a verified Google identity,
// provisioning a student account on first sign-in. A nil user with nil
// error means the account exists but is disabled.
func (h *Handler) findOrCreateUser(ctx context.Context, r *http.Request, info *googleUserInfo) (*models.User, error) {
	u, err := h.Users.GetByEmail(ctx, info.Email)
	switch {
	case err == nil:
		if u.Status == status.Disabled {
			h.Log.Info("Google sign-in refused: account disabled",
				zap.String("user_id", u.ID.Hex()))
			return nil, nil
		}
		return &u, nil
	case errors.Is(err, mongo.ErrNoDocuments):
		// First sign-in: provision a student account.
	default:
		return nil, err
	}

	created, err := h.Users.Create(ctx, models.User{
		FullName:      info.Name,
		Email:         info.Email,
		AuthMethod:    models.AuthMethodGoogle,
		Role:          "student",
		PreferredLang: i18n.Lang(r),
	})
	if err != nil {
		return nil, err
	}

	h.Log.Info("provisioned account from Google sign-in",
		zap.String("user_id", created.ID.Hex()))
	return &created, nil
}

// googleUserInfo represents user info returned from Google.
type googleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"verified_email"`
	Name          string `json:"name"`
}

// fetchGoogleUserInfo retrieves user information from Google's
// userinfo endpoint.
func fetchGoogleUserInfo(ctx context.Context, token *oauth2.Token) (*googleUserInfo, error) {
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(token))

	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode user info: %w", err)
	}
	return &info, nil
}

// generateState creates a cryptographically secure random state string.
func generateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
