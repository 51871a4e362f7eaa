// Package authweb serves the login, registration and logout pages.
package authweb

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/linhares06/expensetracker-app/internal/account"
	"github.com/linhares06/expensetracker-app/internal/http/render"
	"github.com/linhares06/expensetracker-app/internal/http/session"
)

type Handler struct {
	svc      *account.Service
	sessions *session.Manager
	view     *render.Renderer
}

func NewHandler(svc *account.Service, sessions *session.Manager, view *render.Renderer) *Handler {
	return &Handler{svc: svc, sessions: sessions, view: view}
}

// Routes registers the pages reachable without a session.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/login", h.loginForm)
	r.Post("/login", h.login)
	r.Get("/register", h.registerForm)
	r.Post("/register", h.register)
}

// ProtectedRoutes registers the pages that need a logged-in user.
func (h *Handler) ProtectedRoutes(r chi.Router) {
	r.Get("/logout", h.logout)
}

type loginForm struct {
	Username string
	Password string
}

type loginView struct {
	render.Base
	Form   loginForm
	Errors map[string]string
}

func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request) {
	if h.sessions.Authenticated(r) {
		h.sessions.Flash(w, session.LevelInfo, "You are already logged in.")
		http.Redirect(w, r, "/", http.StatusFound)

		return
	}

	h.view.Page(w, "login.html", loginView{
		Base: h.view.NewBase(r, "Login", h.sessions.PopFlashes(w, r)),
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	if h.sessions.Authenticated(r) {
		h.sessions.Flash(w, session.LevelInfo, "You are already logged in.")
		http.Redirect(w, r, "/", http.StatusFound)

		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	form := loginForm{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}

	fieldErrs := make(map[string]string)

	if strings.TrimSpace(form.Username) == "" {
		fieldErrs["username"] = "This field is required."
	}

	if strings.TrimSpace(form.Password) == "" {
		fieldErrs["password"] = "This field is required."
	}

	if len(fieldErrs) > 0 {
		h.view.Page(w, "login.html", loginView{
			Base:   h.view.NewBase(r, "Login", h.sessions.PopFlashes(w, r)),
			Form:   loginForm{Username: form.Username},
			Errors: fieldErrs,
		})

		return
	}

	user, err := h.svc.Authenticate(r.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, account.ErrInvalidCredentials) {
			h.view.Page(w, "login.html", loginView{
				Base: h.view.NewBase(r, "Login",
					h.sessions.FlashNow(w, r, session.LevelDanger, "Invalid username and/or password.")),
				Form: loginForm{Username: form.Username},
			})

			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if err := h.sessions.Issue(w, user.Username); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

type registerForm struct {
	Username string
}

type registerView struct {
	render.Base
	Form   registerForm
	Errors map[string]string
}

func (h *Handler) registerForm(w http.ResponseWriter, r *http.Request) {
	if h.sessions.Authenticated(r) {
		h.sessions.Flash(w, session.LevelInfo, "You are already registered.")
		http.Redirect(w, r, "/", http.StatusFound)

		return
	}

	h.view.Page(w, "register.html", registerView{
		Base: h.view.NewBase(r, "Register", h.sessions.PopFlashes(w, r)),
	})
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	if h.sessions.Authenticated(r) {
		h.sessions.Flash(w, session.LevelInfo, "You are already registered.")
		http.Redirect(w, r, "/", http.StatusFound)

		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	form := registerForm{Username: r.PostFormValue("username")}
	password := r.PostFormValue("password")
	confirm := r.PostFormValue("confirm")

	fieldErrs := make(map[string]string)

	if strings.TrimSpace(form.Username) == "" {
		fieldErrs["username"] = "This field is required."
	}

	if strings.TrimSpace(password) == "" {
		fieldErrs["password"] = "This field is required."
	} else if password != confirm {
		fieldErrs["password"] = "Passwords must match."
	}

	if strings.TrimSpace(confirm) == "" {
		fieldErrs["confirm"] = "This field is required."
	}

	if len(fieldErrs) > 0 {
		h.view.Page(w, "register.html", registerView{
			Base:   h.view.NewBase(r, "Register", h.sessions.PopFlashes(w, r)),
			Form:   form,
			Errors: fieldErrs,
		})

		return
	}

	user, err := h.svc.Register(r.Context(), form.Username, password)
	if err != nil {
		if errors.Is(err, account.ErrUsernameTaken) {
			h.view.Page(w, "register.html", registerView{
				Base: h.view.NewBase(r, "Register",
					h.sessions.FlashNow(w, r, session.LevelInfo, "Username already submitted")),
				Form: form,
			})

			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if err := h.sessions.Issue(w, user.Username); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.sessions.Flash(w, session.LevelSuccess, "You registered and are now logged in. Welcome!")
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	h.sessions.Flash(w, session.LevelSuccess, "You were logged out.")
	http.Redirect(w, r, "/login", http.StatusFound)
}
