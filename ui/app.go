package ui

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"cogmetrics/domain/core"
	"cogmetrics/domain/report"
	"cogmetrics/ports"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:embed templates/*
var embeddedFiles embed.FS

// App is the read-only HTML viewer for stored reports. It wires against the
// reader port only and cannot submit or modify anything.
type App struct {
	router    *chi.Mux
	reader    ports.ReaderPort
	templates *template.Template
}

// AppConfig holds viewer configuration
type AppConfig struct {
	Reader ports.ReaderPort
}

// NewApp creates the HTML viewer and registers its routes
func NewApp(cfg AppConfig) (*App, error) {
	funcMap := template.FuncMap{
		"printf": fmt.Sprintf,
	}
	tmpl, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	a := &App{
		router:    chi.NewRouter(),
		reader:    cfg.Reader,
		templates: tmpl,
	}

	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))

	a.router.Get("/", a.handleIndex)
	a.router.Get("/reports/{id}", a.handleReport)

	return a, nil
}

// Router exposes the chi mux for mounting or serving
func (a *App) Router() http.Handler {
	return a.router
}

// Run starts the viewer on the given port
func (a *App) Run(port string) error {
	return http.ListenAndServe(":"+port, a.router)
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	filters := ports.ReportFilters{Limit: 100}
	summaries, err := a.reader.ListReports(r.Context(), filters)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data := struct {
		Reports []ports.ReportSummary
	}{Reports: summaries}

	if err := a.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (a *App) handleReport(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseReportID(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rep, err := a.reader.GetReport(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	data := struct {
		Report *report.Report
	}{Report: rep}

	if err := a.templates.ExecuteTemplate(w, "report.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
