package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"sync"

	appointmentsModel "campusvisit/internal/domains/appointments/model"
	bookingModel "campusvisit/internal/domains/booking/model"
	notificationsModel "campusvisit/internal/domains/notifications/model"
	sessionModel "campusvisit/internal/domains/session/model"
	"campusvisit/permissions"

	"github.com/rs/zerolog/log"
)

//go:embed templates static
var files embed.FS

const pagesDir = "templates/pages/"

// Page is what every layout receives; Data carries the screen's own view model.
type Page struct {
	Title     string
	Path      string
	Role      string
	Name      string
	Email     string
	Nav       []permissions.NavItem
	Toasts    []sessionModel.Toast
	CSRFToken string
	Year      int
	Data      any
}

var funcs = template.FuncMap{
	"markdown": notificationsModel.Render,
	"category": appointmentsModel.Category,
	"time12h":  bookingModel.Label12h,
	"humanize": func(status string) string {
		return strings.ReplaceAll(status, "_", " ")
	},
	"active": func(current, item string) bool {
		return current == item || strings.HasPrefix(current, item+"/")
	},
	"add": func(a, b int) int {
		return a + b
	},
	"deref": func(id *int64) int64 {
		if id == nil {
			return 0
		}

		return *id
	},
}

var (
	pages     map[string]*template.Template
	pagesErr  error
	pagesOnce sync.Once
)

func layoutFor(name string) string {
	switch {
	case strings.HasPrefix(name, "visitor/"):
		return "visitor"
	case strings.HasPrefix(name, "staff/"):
		return "staff"
	default:
		return "main"
	}
}

// Parse builds one template set per page: its layout, the shared partials and the page itself.
func Parse() (map[string]*template.Template, error) {
	parsed := make(map[string]*template.Template)

	err := fs.WalkDir(files, strings.TrimSuffix(pagesDir, "/"), func(file string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() || path.Ext(file) != ".html" {
			return nil
		}

		name := strings.TrimSuffix(strings.TrimPrefix(file, pagesDir), ".html")
		layout := layoutFor(name)

		tpl, err := template.New(layout+".html").Funcs(funcs).ParseFS(files,
			"templates/layouts/"+layout+".html",
			"templates/partials/*.html",
			file,
		)
		if err != nil {
			return fmt.Errorf("parsing page %s: %w", name, err)
		}

		parsed[name] = tpl

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking templates: %w", err)
	}

	return parsed, nil
}

// Static serves the embedded stylesheet under /static/.
func Static() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open embedded static files")
	}

	return sub
}

// Render executes a page by name, e.g. "staff/home".
func Render(w io.Writer, name string, page Page) error {
	pagesOnce.Do(func() {
		pages, pagesErr = Parse()
		if pagesErr != nil {
			log.Error().Err(pagesErr).Msg("Failed to parse embedded templates")
		}
	})

	if pagesErr != nil {
		return pagesErr
	}

	tpl, ok := pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}

	if err := tpl.Execute(w, page); err != nil {
		return fmt.Errorf("rendering page %s: %w", name, err)
	}

	return nil
}
