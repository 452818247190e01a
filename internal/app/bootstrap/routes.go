// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	authgooglefeature "github.com/jutionck/enigma-upskilling-platform/internal/app/features/authgoogle"
	classfeature "github.com/jutionck/enigma-upskilling-platform/internal/app/features/class"
	dashboardfeature "github.com/jutionck/enigma-upskilling-platform/internal/app/features/dashboard"
	errorsfeature "github.com/jutionck/enigma-upskilling-platform/internal/app/features/errors"
	healthfeature "github.com/jutionck/enigma-upskilling-platform/internal/app/features/health"
	loginfeature "github.com/jutionck/enigma-upskilling-platform/internal/app/features/login"
	logoutfeature "github.com/jutionck/enigma-upskilling-platform/internal/app/features/logout"
	notregisteredfeature "github.com/jutionck/enigma-upskilling-platform/internal/app/features/notregistered"
	"github.com/jutionck/enigma-upskilling-platform/internal/app/store/courses"
	"github.com/jutionck/enigma-upskilling-platform/internal/app/store/oauthstate"
	"github.com/jutionck/enigma-upskilling-platform/internal/app/store/summaries"
	userstore "github.com/jutionck/enigma-upskilling-platform/internal/app/store/users"
	"github.com/jutionck/enigma-upskilling-platform/internal/app/system/auth"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// the Startup hook have completed. It creates the session manager, boots the
// template engine, and mounts the feature routers.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Create the session manager using app config.
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(
		appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain,
		appCfg.SessionMaxAge, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Set up the UserFetcher so LoadSessionUser fetches fresh user data on
	// each request. Role changes and disabled accounts take effect on the
	// next navigation, not the next sign-in.
	sessionMgr.SetUserFetcher(userstore.NewFetcher(deps.MongoDatabase))

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	courseStore := courses.New(deps.MongoDatabase)
	summaryStore := summaries.New(deps.MongoDatabase)

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	// This makes the current user available to all handlers via auth.CurrentUser(r).
	r.Use(sessionMgr.LoadSessionUser)

	// CSRF protection for all form posts.
	r.Use(csrf.Protect([]byte(appCfg.CSRFKey),
		csrf.Secure(secure),
		csrf.Path("/"),
	))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Root: signed-in viewers land on the dashboard, everyone else on login.
	r.Get("/", serveRoot)

	// Authentication
	googleEnabled := appCfg.GoogleClientID != "" && appCfg.GoogleClientSecret != ""
	loginHandler := loginfeature.NewHandler(googleEnabled, logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	authGoogleHandler := authgooglefeature.NewHandler(
		userstore.New(deps.MongoDatabase),
		oauthstate.New(deps.MongoDatabase),
		sessionMgr,
		appCfg.GoogleClientID,
		appCfg.GoogleClientSecret,
		appCfg.BaseURL,
		logger,
	)
	r.Mount("/auth/google", authgooglefeature.Routes(authGoogleHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler))

	notRegHandler := notregisteredfeature.NewHandler(appCfg.SupportEmail, logger)
	r.Mount("/not-registered", notregisteredfeature.Routes(notRegHandler))

	// Protected pages
	dashboardHandler := dashboardfeature.NewHandler(courseStore, summaryStore, logger)
	r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler, sessionMgr))

	classHandler := classfeature.NewHandler(courseStore, summaryStore, logger)
	r.Mount("/class", classfeature.Routes(classHandler, sessionMgr))

	// Error pages
	errorsHandler := errorsfeature.NewHandler()
	r.Get("/forbidden", errorsHandler.Forbidden)
	r.Get("/unauthorized", errorsHandler.Unauthorized)

	return r, nil
}

func serveRoot(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.CurrentUser(r); ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
