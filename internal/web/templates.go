package web

import (
	"embed"
	"html/template"
	"net/http"

	"go-calc-frontends/internal/observability"

	"go.uber.org/zap"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html.tmpl"))

// renderPage executes the calculator page template. Template failures are
// server bugs, logged and answered with a bare 500.
func renderPage(w http.ResponseWriter, status int, data PageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplate.Execute(w, data); err != nil {
		observability.Logger.Error("render calculator page", zap.Error(err))
	}
}
