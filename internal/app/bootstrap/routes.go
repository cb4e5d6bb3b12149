// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	cartpkg "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/cart"
	authgooglefeature "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/features/authgoogle"
	cartfeature "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/features/cart"
	checkoutfeature "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/features/checkout"
	coursesfeature "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/features/courses"
	errorsfeature "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/features/errors"
	groupsfeature "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/features/groups"
	healthfeature "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/features/health"
	homefeature "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/features/home"
	loginfeature "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/features/login"
	logoutfeature "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/features/logout"
	registerfeature "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/features/register"
	sessionsfeature "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/features/sessions"
	userstore "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/store/users"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/auth"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/i18n"
)

// BuildHandler constructs the root HTTP handler (router) for this
// WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup,
// and any Startup hooks have completed. It wires the session manager,
// boots the template engine, and mounts the feature routers: catalog,
// sessions, cart, checkout, and the admin areas.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Fetch fresh user data on each request so role changes and
	// disabled accounts take effect immediately.
	db := deps.AcademyMongoDatabase
	sessionMgr.SetUserFetcher(userstore.NewFetcher(userstore.New(db), logger))

	// Boot the template engine once at startup. Dev mode enables
	// template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	errLog := errorsfeature.NewErrorLogger(logger)
	userCart := cartpkg.New(deps.AcademyRedisClient)

	r := chi.NewRouter()

	// Global middleware: session user into context, then the display
	// language (?lang= beats the user's saved preference).
	r.Use(sessionMgr.LoadSessionUser)
	r.Use(i18n.Middleware)

	// Health check endpoint for load balancers and orchestrators.
	healthHandler := healthfeature.NewHandler(deps.AcademyMongoClient, deps.AcademyRedisClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli).
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Public pages
	homeHandler := homefeature.NewHandler(db, logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	coursesHandler := coursesfeature.NewHandler(db, errLog, logger)
	r.Mount("/courses", coursesfeature.Routes(coursesHandler))

	// Authentication
	googleHandler := authgooglefeature.NewHandler(db, sessionMgr, appCfg.SessionKey,
		appCfg.GoogleClientID, appCfg.GoogleClientSecret, appCfg.BaseURL, logger)

	loginHandler := loginfeature.NewHandler(db, sessionMgr, errLog, googleHandler.IsConfigured(), logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	registerHandler := registerfeature.NewHandler(db, sessionMgr, errLog, logger)
	r.Mount("/register", registerfeature.Routes(registerHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler))

	if googleHandler.IsConfigured() {
		r.Mount("/auth/google", authgooglefeature.Routes(googleHandler))
	}

	// Error pages
	errorsHandler := errorsfeature.NewHandler()
	r.Get("/forbidden", errorsHandler.Forbidden)
	r.Get("/unauthorized", errorsHandler.Unauthorized)

	// Member pages
	sessionsHandler := sessionsfeature.NewHandler(db, errLog, logger)
	r.Mount("/sessions", sessionsfeature.Routes(sessionsHandler, sessionMgr))

	cartHandler := cartfeature.NewHandler(db, userCart, errLog, logger)
	r.Mount("/cart", cartfeature.Routes(cartHandler, sessionMgr))

	checkoutHandler := checkoutfeature.NewHandler(db, userCart, errLog, logger)
	r.Mount("/checkout", checkoutfeature.Routes(checkoutHandler, sessionMgr))

	// Admin areas
	r.Mount("/admin/courses", coursesfeature.AdminRoutes(coursesHandler, sessionMgr))

	groupsHandler := groupsfeature.NewHandler(db, errLog, logger)
	r.Mount("/admin/groups", groupsfeature.AdminRoutes(groupsHandler, sessionMgr))

	return r, nil
}
