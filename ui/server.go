package ui

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"cogmetrics/app"
	"cogmetrics/domain/core"
	"cogmetrics/domain/intake"
	"cogmetrics/domain/report"
	"cogmetrics/ports"

	"github.com/gin-gonic/gin"
)

// Server is the JSON API surface. Capture tools submit raw assessments here
// and retrieve composed reports.
type Server struct {
	router   *gin.Engine
	service  *app.ReportService
	reader   ports.ReaderPort
	renderer ports.RendererPort
	exporter ports.ExporterPort
}

// ServerConfig wires the API server's collaborators
type ServerConfig struct {
	Service  *app.ReportService
	Reader   ports.ReaderPort
	Renderer ports.RendererPort
	Exporter ports.ExporterPort
	GinMode  string
}

// NewServer creates the API server and registers its routes
func NewServer(cfg ServerConfig) *Server {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	s := &Server{
		router:   gin.Default(),
		service:  cfg.Service,
		reader:   cfg.Reader,
		renderer: cfg.Renderer,
		exporter: cfg.Exporter,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.GET("/healthz", s.handleHealth)

	api := s.router.Group("/api/v1")
	{
		api.POST("/assessments", s.handleSubmitAssessment)
		api.POST("/assessments/:session/regenerate", s.handleRegenerate)
		api.GET("/reports", s.handleListReports)
		api.GET("/reports/:id", s.handleGetReport)
		api.GET("/reports/:id/markdown", s.handleReportMarkdown)
		api.GET("/sessions/:session/snapshot", s.handleGetSnapshot)
		api.GET("/export/reports.xlsx", s.handleExport)
	}
}

// Run starts the HTTP server
func (s *Server) Run(port string) error {
	return s.router.Run(fmt.Sprintf(":%s", port))
}

// Handler exposes the router for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// submitRequest is the API envelope around a raw submission
type submitRequest struct {
	Input    *intake.RawAssessmentInput `json:"input" binding:"required"`
	Audience string                     `json:"audience"`
	Seed     *int64                     `json:"seed"`
	Persist  *bool                      `json:"persist"`
}

func (s *Server) handleSubmitAssessment(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request: " + err.Error()})
		return
	}

	audience, err := report.ParseAudience(req.Audience)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	persist := true
	if req.Persist != nil {
		persist = *req.Persist
	}

	rep, err := s.service.Generate(c.Request.Context(), app.GenerateRequest{
		Raw:      req.Input,
		Audience: audience,
		Seed:     req.Seed,
		Persist:  persist,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rep)
}

func (s *Server) handleRegenerate(c *gin.Context) {
	sessionID, err := core.ParseSessionID(c.Param("session"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	audience, err := report.ParseAudience(c.DefaultQuery("audience", string(report.AudiencePatient)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var seed *int64
	if raw := c.Query("seed"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "seed must be an integer"})
			return
		}
		seed = &v
	}

	rep, err := s.service.Regenerate(c.Request.Context(), sessionID, audience, seed)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rep)
}

func (s *Server) handleListReports(c *gin.Context) {
	filters := ports.ReportFilters{Limit: 50}
	if raw := c.Query("subject"); raw != "" {
		id := core.SubjectID(raw)
		filters.SubjectID = &id
	}
	if raw := c.Query("audience"); raw != "" {
		audience, err := report.ParseAudience(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		filters.Audience = &audience
	}
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			filters.Limit = v
		}
	}

	summaries, err := s.reader.ListReports(c.Request.Context(), filters)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": summaries, "count": len(summaries)})
}

func (s *Server) handleGetReport(c *gin.Context) {
	id, err := core.ParseReportID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rep, err := s.reader.GetReport(c.Request.Context(), id)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rep)
}

func (s *Server) handleReportMarkdown(c *gin.Context) {
	id, err := core.ParseReportID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rep, err := s.reader.GetReport(c.Request.Context(), id)
	if err != nil {
		s.writeError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := s.renderer.RenderMarkdown(c.Request.Context(), rep, &buf); err != nil {
		s.writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", buf.Bytes())
}

func (s *Server) handleGetSnapshot(c *gin.Context) {
	sessionID, err := core.ParseSessionID(c.Param("session"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	snap, err := s.reader.GetSnapshot(c.Request.Context(), sessionID)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (s *Server) handleExport(c *gin.Context) {
	filters := ports.ReportFilters{Limit: 500}
	if raw := c.Query("subject"); raw != "" {
		id := core.SubjectID(raw)
		filters.SubjectID = &id
	}

	summaries, err := s.reader.ListReports(c.Request.Context(), filters)
	if err != nil {
		s.writeError(c, err)
		return
	}

	reports := make([]*report.Report, 0, len(summaries))
	for _, summary := range summaries {
		rep, err := s.reader.GetReport(c.Request.Context(), summary.ID)
		if err != nil {
			s.writeError(c, err)
			return
		}
		reports = append(reports, rep)
	}

	var buf bytes.Buffer
	if err := s.exporter.ExportWorkbook(c.Request.Context(), reports, &buf); err != nil {
		s.writeError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="reports.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func (s *Server) writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, core.ErrNotFound):
		status = http.StatusNotFound
	case core.IsDataQualityError(err), errors.Is(err, core.ErrMalformedInput):
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
