package http

import (
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/linhares06/expensetracker-app/internal/http/authweb"
	"github.com/linhares06/expensetracker-app/internal/http/session"
	"github.com/linhares06/expensetracker-app/internal/http/statement"
	"github.com/linhares06/expensetracker-app/internal/http/tracker"
	"github.com/linhares06/expensetracker-app/web"
)

func New(
	sessions *session.Manager,
	auth *authweb.Handler,
	expenses *tracker.Handler,
	imports *statement.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	if static, err := fs.Sub(web.StaticFS, "static"); err == nil {
		router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))
	} else {
		slog.Warn("failed to mount embedded static assets", "error", err)
	}

	auth.Routes(router)

	router.Group(func(r chi.Router) {
		r.Use(sessions.RequireUser)

		auth.ProtectedRoutes(r)
		expenses.Routes(r)
		imports.Routes(r)
	})

	return router
}
