package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/yosssi/gohtml"

	"github.com/KevinMolina1996/realestate-front/internal/contextkeys"
	"github.com/KevinMolina1996/realestate-front/internal/core/port"
)

//go:embed templates static
var assets embed.FS

const (
	pageListing  = "listing.html"
	pageDetail   = "detail.html"
	pageNotFound = "not_found.html"
)

var templateFuncs = template.FuncMap{
	"price":     formatPrice,
	"shortDate": formatShortDate,
	"longDate":  formatLongDate,
	"year":      formatYear,
	"input":     formatInput,
	"imageSrc":  imageSrc,
}

// Renderer держит разобранные шаблоны страниц. Каждая страница собирается из layout и общих partials.
type Renderer struct {
	pages  map[string]*template.Template
	pretty bool
}

func NewRenderer(pretty bool) (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template), pretty: pretty}
	for _, page := range []string{pageListing, pageDetail, pageNotFound} {
		tmpl, err := template.New(page).Funcs(templateFuncs).ParseFS(assets,
			"templates/layout.html",
			"templates/partials/*.html",
			"templates/"+page,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		r.pages[page] = tmpl
	}
	return r, nil
}

// Render пишет страницу целиком в буфер, чтобы ошибка шаблона не оставила полуответ
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data any) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("execute template %s: %w", page, err)
	}

	body := buf.Bytes()
	if r.pretty {
		body = gohtml.FormatBytes(body)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(body)
	return nil
}

// staticHandler раздает встроенные стили
func staticHandler() http.Handler {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

func (h *PropertiesHandler) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	if err := h.renderer.Render(w, status, page, data); err != nil {
		logger := contextkeys.LoggerFromContext(r.Context())
		logger.Error("Failed to render page", err, port.Fields{"page": page})
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
