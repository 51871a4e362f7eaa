// Package statement serves the bank statement import page.
package statement

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/linhares06/expensetracker-app/internal/http/render"
	"github.com/linhares06/expensetracker-app/internal/http/session"
	"github.com/linhares06/expensetracker-app/internal/importer"
	"github.com/linhares06/expensetracker-app/internal/ledger"
)

const maxUploadSize = 10 << 20

type Handler struct {
	imports  *importer.Service
	expenses *ledger.Service
	sessions *session.Manager
	view     *render.Renderer
}

func NewHandler(imports *importer.Service, expenses *ledger.Service, sessions *session.Manager, view *render.Renderer) *Handler {
	return &Handler{imports: imports, expenses: expenses, sessions: sessions, view: view}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/import", h.importForm)
	r.Post("/import", h.importStatement)
}

type importView struct {
	render.Base
	Categories []ledger.Category
}

func (h *Handler) importForm(w http.ResponseWriter, r *http.Request) {
	username := session.User(r.Context())

	categories, err := h.expenses.Categories(r.Context(), username)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.view.Page(w, "import.html", importView{
		Base:       h.view.NewBase(r, "Import Statement", h.sessions.PopFlashes(w, r)),
		Categories: categories,
	})
}

func (h *Handler) importStatement(w http.ResponseWriter, r *http.Request) {
	username := session.User(r.Context())

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	categories, err := h.expenses.Categories(r.Context(), username)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	view := importView{Categories: categories}

	categoryID := r.PostFormValue("category")
	if !hasCategory(categories, categoryID) {
		view.Base = h.view.NewBase(r, "Import Statement",
			h.sessions.FlashNow(w, r, session.LevelDanger, "Please choose a category."))
		h.view.Page(w, "import.html", view)

		return
	}

	file, _, err := r.FormFile("statement")
	if err != nil {
		view.Base = h.view.NewBase(r, "Import Statement",
			h.sessions.FlashNow(w, r, session.LevelDanger, "Please choose a statement file."))
		h.view.Page(w, "import.html", view)

		return
	}
	defer file.Close()

	entries, err := h.imports.Spending(file)
	if err != nil {
		slog.Error("failed to parse statement", "error", err)

		view.Base = h.view.NewBase(r, "Import Statement",
			h.sessions.FlashNow(w, r, session.LevelDanger, "Could not read the statement file."))
		h.view.Page(w, "import.html", view)

		return
	}

	params := make([]ledger.ExpenseParams, len(entries))

	for i, e := range entries {
		params[i] = ledger.ExpenseParams{
			Description: e.Description,
			Amount:      ledger.NewMoney(e.Amount),
			CategoryID:  categoryID,
			Date:        e.Date.Format(ledger.DateLayout),
		}
	}

	created, err := h.expenses.AddExpenses(r.Context(), username, params)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.sessions.Flash(w, session.LevelSuccess, fmt.Sprintf("Imported %d expenses.", len(created)))
	http.Redirect(w, r, "/expenses", http.StatusFound)
}

func hasCategory(categories []ledger.Category, id string) bool {
	for _, c := range categories {
		if c.ID == id {
			return true
		}
	}

	return false
}
