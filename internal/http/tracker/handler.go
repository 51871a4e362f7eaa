// Package tracker serves the expense and category pages.
package tracker

import (
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/linhares06/expensetracker-app/internal/chart"
	"github.com/linhares06/expensetracker-app/internal/http/render"
	"github.com/linhares06/expensetracker-app/internal/http/session"
	"github.com/linhares06/expensetracker-app/internal/ledger"
	"github.com/linhares06/expensetracker-app/internal/report"
)

type Handler struct {
	svc      *ledger.Service
	sessions *session.Manager
	view     *render.Renderer
}

func NewHandler(svc *ledger.Service, sessions *session.Manager, view *render.Renderer) *Handler {
	return &Handler{svc: svc, sessions: sessions, view: view}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.home)
	r.Get("/expenses", h.listExpenses)
	r.Get("/add_expense", h.addExpenseForm)
	r.Post("/add_expense", h.addExpense)
	r.Get("/edit_expense/{id}", h.editExpenseForm)
	r.Post("/edit_expense/{id}", h.editExpense)
	r.Get("/delete_expense/{id}", h.deleteExpense)
	r.Get("/categories", h.listCategories)
	r.Get("/add_category", h.addCategoryForm)
	r.Post("/add_category", h.addCategory)
	r.Get("/edit_category/{id}", h.editCategoryForm)
	r.Post("/edit_category/{id}", h.editCategory)
	r.Get("/delete_category/{id}", h.deleteCategory)
}

type homeView struct {
	render.Base
	Expenses []ledger.Expense
	Chart    template.URL
	Total    ledger.Money
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	username := session.User(r.Context())

	expenses, err := h.svc.Expenses(r.Context(), username)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	view := homeView{
		Base:     h.view.NewBase(r, "Home", h.sessions.PopFlashes(w, r)),
		Expenses: expenses,
		Total:    report.Total(expenses),
	}

	if len(expenses) > 0 {
		labels, totals := report.SpendingByCategory(expenses)

		encoded, err := chart.RenderBase64(labels, totals)
		if err != nil {
			// The page is still useful without the chart.
			slog.Error("failed to render expense chart", "error", err)
		} else {
			view.Chart = template.URL("data:image/png;base64," + encoded)
		}
	}

	h.view.Page(w, "home.html", view)
}

type expenseListView struct {
	render.Base
	Budgets  []report.CategoryBudget
	Expenses []ledger.Expense
	Total    ledger.Money
}

func (h *Handler) listExpenses(w http.ResponseWriter, r *http.Request) {
	username := session.User(r.Context())

	categories, err := h.svc.Categories(r.Context(), username)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	expenses, err := h.svc.Expenses(r.Context(), username)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.view.Page(w, "expense_list.html", expenseListView{
		Base:     h.view.NewBase(r, "Expenses", h.sessions.PopFlashes(w, r)),
		Budgets:  report.RemainingBudget(categories, expenses),
		Expenses: expenses,
		Total:    report.Total(expenses),
	})
}

type expenseFormView struct {
	render.Base
	Heading     string
	Action      string
	Description string
	Amount      string
	CategoryID  string
	Categories  []ledger.Category
	Errors      map[string]string
}

func validateExpenseForm(view expenseFormView) map[string]string {
	fieldErrs := make(map[string]string)

	if strings.TrimSpace(view.Description) == "" {
		fieldErrs["description"] = "This field is required."
	}

	if view.Amount == "" {
		fieldErrs["amount"] = "This field is required."
	}

	switch {
	case view.CategoryID == "":
		fieldErrs["category"] = "This field is required."
	case !hasCategory(view.Categories, view.CategoryID):
		fieldErrs["category"] = "Not a valid choice."
	}

	return fieldErrs
}

func hasCategory(categories []ledger.Category, id string) bool {
	for _, c := range categories {
		if c.ID == id {
			return true
		}
	}

	return false
}

func (h *Handler) addExpenseForm(w http.ResponseWriter, r *http.Request) {
	username := session.User(r.Context())

	categories, err := h.svc.Categories(r.Context(), username)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.view.Page(w, "expense_form.html", expenseFormView{
		Base:       h.view.NewBase(r, "Add Expense", h.sessions.PopFlashes(w, r)),
		Heading:    "Add Expense",
		Action:     "/add_expense",
		Categories: categories,
	})
}

func (h *Handler) addExpense(w http.ResponseWriter, r *http.Request) {
	username := session.User(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	categories, err := h.svc.Categories(r.Context(), username)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	view := expenseFormView{
		Heading:     "Add Expense",
		Action:      "/add_expense",
		Description: r.PostFormValue("description"),
		Amount:      r.PostFormValue("amount"),
		CategoryID:  r.PostFormValue("category"),
		Categories:  categories,
	}

	if fieldErrs := validateExpenseForm(view); len(fieldErrs) > 0 {
		view.Base = h.view.NewBase(r, "Add Expense", h.sessions.PopFlashes(w, r))
		view.Errors = fieldErrs
		h.view.Page(w, "expense_form.html", view)

		return
	}

	amount, err := ledger.ParseAmount(view.Amount)
	if err != nil {
		view.Base = h.view.NewBase(r, "Add Expense",
			h.sessions.FlashNow(w, r, session.LevelDanger, "Amount must be a positive number."))
		h.view.Page(w, "expense_form.html", view)

		return
	}

	if _, err := h.svc.AddExpense(r.Context(), username, ledger.ExpenseParams{
		Description: view.Description,
		Amount:      amount,
		CategoryID:  view.CategoryID,
	}); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.sessions.Flash(w, session.LevelSuccess, "Expense form submitted successfully!")
	http.Redirect(w, r, "/expenses", http.StatusFound)
}

func (h *Handler) editExpenseForm(w http.ResponseWriter, r *http.Request) {
	username := session.User(r.Context())

	expense, err := h.svc.Expense(r.Context(), username, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			h.sessions.Flash(w, session.LevelDanger, "Expense not found or unable to update.")
			http.Redirect(w, r, "/expenses", http.StatusFound)

			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	categories, err := h.svc.Categories(r.Context(), username)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.view.Page(w, "expense_form.html", expenseFormView{
		Base:        h.view.NewBase(r, "Edit Expense", h.sessions.PopFlashes(w, r)),
		Heading:     "Edit Expense",
		Action:      "/edit_expense/" + expense.ID,
		Description: expense.Description,
		Amount:      expense.Amount.String(),
		CategoryID:  expense.CategoryID,
		Categories:  categories,
	})
}

func (h *Handler) editExpense(w http.ResponseWriter, r *http.Request) {
	username := session.User(r.Context())
	expenseID := chi.URLParam(r, "id")

	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	categories, err := h.svc.Categories(r.Context(), username)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	view := expenseFormView{
		Heading:     "Edit Expense",
		Action:      "/edit_expense/" + expenseID,
		Description: r.PostFormValue("description"),
		Amount:      r.PostFormValue("amount"),
		CategoryID:  r.PostFormValue("category"),
		Categories:  categories,
	}

	if fieldErrs := validateExpenseForm(view); len(fieldErrs) > 0 {
		view.Base = h.view.NewBase(r, "Edit Expense", h.sessions.PopFlashes(w, r))
		view.Errors = fieldErrs
		h.view.Page(w, "expense_form.html", view)

		return
	}

	amount, err := ledger.ParseAmount(view.Amount)
	if err != nil {
		view.Base = h.view.NewBase(r, "Edit Expense",
			h.sessions.FlashNow(w, r, session.LevelDanger, "Amount must be a positive number."))
		h.view.Page(w, "expense_form.html", view)

		return
	}

	err = h.svc.UpdateExpense(r.Context(), username, expenseID, ledger.ExpenseParams{
		Description: view.Description,
		Amount:      amount,
		CategoryID:  view.CategoryID,
	})
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			h.sessions.Flash(w, session.LevelDanger, "Expense not found or unable to update.")
			http.Redirect(w, r, "/expenses", http.StatusFound)

			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	h.sessions.Flash(w, session.LevelSuccess, "Expense form submitted successfully!")
	http.Redirect(w, r, "/expenses", http.StatusFound)
}

func (h *Handler) deleteExpense(w http.ResponseWriter, r *http.Request) {
	username := session.User(r.Context())

	err := h.svc.DeleteExpense(r.Context(), username, chi.URLParam(r, "id"))

	switch {
	case err == nil:
		h.sessions.Flash(w, session.LevelSuccess, "Expense deleted successfully!")
	case errors.Is(err, ledger.ErrNotFound):
		h.sessions.Flash(w, session.LevelDanger, "Expense not found or unable to delete.")
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/expenses", http.StatusFound)
}

type categoryListView struct {
	render.Base
	Categories []ledger.Category
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	username := session.User(r.Context())

	categories, err := h.svc.Categories(r.Context(), username)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.view.Page(w, "category_list.html", categoryListView{
		Base:       h.view.NewBase(r, "Categories", h.sessions.PopFlashes(w, r)),
		Categories: categories,
	})
}

type categoryFormView struct {
	render.Base
	Heading string
	Action  string
	Name    string
	Budget  string
	Errors  map[string]string
}

func validateCategoryForm(name, budget string) map[string]string {
	fieldErrs := make(map[string]string)

	if name == "" {
		fieldErrs["name"] = "This field is required."
	}

	if budget == "" {
		fieldErrs["budget"] = "This field is required."
	}

	return fieldErrs
}

func (h *Handler) addCategoryForm(w http.ResponseWriter, r *http.Request) {
	h.view.Page(w, "category_form.html", categoryFormView{
		Base:    h.view.NewBase(r, "Add Category", h.sessions.PopFlashes(w, r)),
		Heading: "Add Category",
		Action:  "/add_category",
	})
}

func (h *Handler) addCategory(w http.ResponseWriter, r *http.Request) {
	username := session.User(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	name := strings.TrimSpace(r.PostFormValue("name"))

	view := categoryFormView{
		Heading: "Add Category",
		Action:  "/add_category",
		Name:    r.PostFormValue("name"),
		Budget:  r.PostFormValue("budget"),
	}

	if fieldErrs := validateCategoryForm(name, view.Budget); len(fieldErrs) > 0 {
		view.Base = h.view.NewBase(r, "Add Category", h.sessions.PopFlashes(w, r))
		view.Errors = fieldErrs
		h.view.Page(w, "category_form.html", view)

		return
	}

	budget, err := ledger.ParseAmount(view.Budget)
	if err != nil {
		view.Base = h.view.NewBase(r, "Add Category",
			h.sessions.FlashNow(w, r, session.LevelDanger, "Budget must be a positive number."))
		h.view.Page(w, "category_form.html", view)

		return
	}

	_, err = h.svc.AddCategory(r.Context(), username, ledger.CategoryParams{Name: name, Budget: budget})
	if err != nil {
		if errors.Is(err, ledger.ErrDuplicateCategory) {
			view.Base = h.view.NewBase(r, "Add Category",
				h.sessions.FlashNow(w, r, session.LevelInfo, fmt.Sprintf(`Category "%s" already exists.`, name)))
			h.view.Page(w, "category_form.html", view)

			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	h.sessions.Flash(w, session.LevelSuccess, "Category form submitted successfully!")
	http.Redirect(w, r, "/categories", http.StatusFound)
}

func (h *Handler) editCategoryForm(w http.ResponseWriter, r *http.Request) {
	username := session.User(r.Context())

	category, err := h.svc.Category(r.Context(), username, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			h.sessions.Flash(w, session.LevelDanger, "Category not found or unable to update.")
			http.Redirect(w, r, "/categories", http.StatusFound)

			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	h.view.Page(w, "category_form.html", categoryFormView{
		Base:    h.view.NewBase(r, "Edit Category", h.sessions.PopFlashes(w, r)),
		Heading: "Edit Category",
		Action:  "/edit_category/" + category.ID,
		Name:    category.Name,
		Budget:  category.Budget.String(),
	})
}

func (h *Handler) editCategory(w http.ResponseWriter, r *http.Request) {
	username := session.User(r.Context())
	categoryID := chi.URLParam(r, "id")

	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	name := strings.TrimSpace(r.PostFormValue("name"))

	view := categoryFormView{
		Heading: "Edit Category",
		Action:  "/edit_category/" + categoryID,
		Name:    r.PostFormValue("name"),
		Budget:  r.PostFormValue("budget"),
	}

	if fieldErrs := validateCategoryForm(name, view.Budget); len(fieldErrs) > 0 {
		view.Base = h.view.NewBase(r, "Edit Category", h.sessions.PopFlashes(w, r))
		view.Errors = fieldErrs
		h.view.Page(w, "category_form.html", view)

		return
	}

	budget, err := ledger.ParseAmount(view.Budget)
	if err != nil {
		view.Base = h.view.NewBase(r, "Edit Category",
			h.sessions.FlashNow(w, r, session.LevelDanger, "Budget must be a positive number."))
		h.view.Page(w, "category_form.html", view)

		return
	}

	err = h.svc.UpdateCategory(r.Context(), username, categoryID, ledger.CategoryParams{Name: name, Budget: budget})
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrDuplicateCategory):
			view.Base = h.view.NewBase(r, "Edit Category",
				h.sessions.FlashNow(w, r, session.LevelInfo, fmt.Sprintf(`Category "%s" already exists.`, name)))
			h.view.Page(w, "category_form.html", view)
		case errors.Is(err, ledger.ErrNotFound):
			h.sessions.Flash(w, session.LevelDanger, "Category not found or unable to update.")
			http.Redirect(w, r, "/categories", http.StatusFound)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	h.sessions.Flash(w, session.LevelSuccess, "Category form submitted successfully!")
	http.Redirect(w, r, "/categories", http.StatusFound)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	username := session.User(r.Context())

	err := h.svc.DeleteCategory(r.Context(), username, chi.URLParam(r, "id"))

	switch {
	case err == nil:
		h.sessions.Flash(w, session.LevelSuccess, "Category deleted successfully!")
	case errors.Is(err, ledger.ErrCategoryInUse):
		h.sessions.Flash(w, session.LevelWarning, "Can't delete Category with Expenses. ")
	case errors.Is(err, ledger.ErrNotFound):
		h.sessions.Flash(w, session.LevelDanger, "Category not found or unable to delete.")
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/categories", http.StatusFound)
}
