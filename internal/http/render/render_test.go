package render_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linhares06/expensetracker-app/internal/http/render"
	"github.com/linhares06/expensetracker-app/internal/http/session"
)

type loginView struct {
	render.Base
	Form   struct{ Username string }
	Errors map[string]string
}

func TestRenderer_Page(t *testing.T) {
	view, err := render.New("Expense Tracker")
	require.NoError(t, err)

	data := loginView{
		Base: render.Base{
			Title:   "Login",
			AppName: "Expense Tracker",
			Flashes: []session.Flash{
				{Level: session.LevelDanger, Message: "Invalid username and/or password."},
			},
		},
	}
	data.Form.Username = "alice"

	w := httptest.NewRecorder()
	view.Page(w, "login.html", data)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	body := w.Body.String()
	assert.Contains(t, body, "<title>Login - Expense Tracker</title>")
	assert.Contains(t, body, "alert-danger")
	assert.Contains(t, body, "Invalid username and/or password.")
	assert.Contains(t, body, `value="alice"`)
}

func TestRenderer_Page_Unknown(t *testing.T) {
	view, err := render.New("Expense Tracker")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	view.Page(w, "missing.html", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRenderer_NewBase(t *testing.T) {
	view, err := render.New("Expense Tracker")
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r = r.WithContext(session.WithUser(r.Context(), "bob"))

	base := view.NewBase(r, "Home", []session.Flash{{Level: session.LevelInfo, Message: "Please login."}})

	assert.Equal(t, "Home", base.Title)
	assert.Equal(t, "Expense Tracker", base.AppName)
	assert.Equal(t, "bob", base.Username)
	require.Len(t, base.Flashes, 1)
}
