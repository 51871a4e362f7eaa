// Package render executes the embedded page templates against the
// shared base layout.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"path"

	"github.com/linhares06/expensetracker-app/internal/http/session"
	"github.com/linhares06/expensetracker-app/web"
)

const baseTemplate = "templates/base.html"

// Base carries the fields every page needs: the tab title, the
// application name for the navbar, the logged-in user, and any flash
// messages to show.
type Base struct {
	Title    string
	AppName  string
	Username string
	Flashes  []session.Flash
}

// Renderer pairs each page template with the base layout once at
// startup and renders pages into it.
type Renderer struct {
	appName string
	pages   map[string]*template.Template
}

func New(appName string) (*Renderer, error) {
	names, err := fs.Glob(web.TemplatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}

	pages := make(map[string]*template.Template, len(names))

	for _, name := range names {
		if name == baseTemplate {
			continue
		}

		t, err := template.ParseFS(web.TemplatesFS, baseTemplate, name)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}

		pages[path.Base(name)] = t
	}

	return &Renderer{appName: appName, pages: pages}, nil
}

// NewBase assembles the shared page fields, pulling the username from
// the request context.
func (r *Renderer) NewBase(req *http.Request, title string, flashes []session.Flash) Base {
	return Base{
		Title:    title,
		AppName:  r.appName,
		Username: session.User(req.Context()),
		Flashes:  flashes,
	}
}

// Page renders the named page into the base layout. Output is buffered
// so a template failure becomes a plain 500 instead of a torn page.
func (r *Renderer) Page(w http.ResponseWriter, name string, data any) {
	t, ok := r.pages[name]
	if !ok {
		slog.Error("unknown page template", "name", name)
		http.Error(w, "Template error", http.StatusInternalServerError)

		return
	}

	var buf bytes.Buffer

	if err := t.ExecuteTemplate(&buf, "base.html", data); err != nil {
		slog.Error("failed to render page", "name", name, "error", err)
		http.Error(w, "Template error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
