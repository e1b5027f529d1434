package ui

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"

	"gridbayes/app"
	"gridbayes/domain/core"
	"gridbayes/domain/inference"
	"gridbayes/internal"
)

//go:embed templates/*
var embeddedFiles embed.FS

// Server renders the inference UI: a configuration form plus the overlay
// chart of likelihood, prior, and posterior with a markdown run report.
type Server struct {
	router   *gin.Engine
	service  *app.InferenceService
	defaults inference.RunConfig
	chart    ChartConfig
	logger   *internal.Logger
}

// NewServer creates the UI server and wires its routes
func NewServer(service *app.InferenceService, defaults inference.RunConfig) (*Server, error) {
	templates, err := template.ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	router := gin.Default()
	router.SetHTMLTemplate(templates)

	s := &Server{
		router:   router,
		service:  service,
		defaults: defaults,
		chart:    DefaultChartConfig(),
		logger:   internal.DefaultLogger,
	}

	router.GET("/", s.handleIndex)
	router.POST("/run", s.handleRun)

	return s, nil
}

// Start runs the HTTP server on the given port
func (s *Server) Start(port string) error {
	addr := fmt.Sprintf(":%s", port)
	s.logger.Info("UI server listening on %s", addr)
	return s.router.Run(addr)
}

// pageData is everything the index template renders
type pageData struct {
	Config     inference.RunConfig
	Result     *inference.RunResult
	Chart      ChartView
	ReportHTML template.HTML
	Error      string
}

func (s *Server) handleIndex(c *gin.Context) {
	s.renderRun(c, s.defaults)
}

func (s *Server) handleRun(c *gin.Context) {
	cfg, err := s.parseForm(c)
	if err != nil {
		c.HTML(http.StatusBadRequest, "index.html", pageData{
			Config: s.defaults,
			Error:  err.Error(),
		})
		return
	}
	s.renderRun(c, cfg)
}

func (s *Server) renderRun(c *gin.Context, cfg inference.RunConfig) {
	result, err := s.service.Run(c.Request.Context(), cfg)
	if err != nil {
		status := http.StatusInternalServerError
		if core.IsInvalidParameter(err) || core.IsDimensionMismatch(err) {
			status = http.StatusBadRequest
		} else if core.IsDegenerateNormalization(err) {
			status = http.StatusUnprocessableEntity
		}
		c.HTML(status, "index.html", pageData{Config: cfg, Error: err.Error()})
		return
	}

	report := markdown.ToHTML([]byte(app.BuildReport(result)), nil, nil)

	c.HTML(http.StatusOK, "index.html", pageData{
		Config:     cfg,
		Result:     result,
		Chart:      BuildOverlay(s.chart, result),
		ReportHTML: template.HTML(report),
	})
}

// parseForm reads the configuration form, falling back to the server
// defaults for any field left blank. Range checks belong to the domain
// validators, not here.
func (s *Server) parseForm(c *gin.Context) (inference.RunConfig, error) {
	cfg := s.defaults
	cfg.Observations = nil

	fields := []struct {
		name   string
		assign func(float64)
	}{
		{"population_mean", func(v float64) { cfg.PopulationMean = v }},
		{"population_spread", func(v float64) { cfg.PopulationSpread = v }},
		{"grid_lower", func(v float64) { cfg.GridLower = v }},
		{"grid_upper", func(v float64) { cfg.GridUpper = v }},
		{"prior_mean", func(v float64) { cfg.PriorMean = v }},
		{"prior_spread", func(v float64) { cfg.PriorSpread = v }},
	}
	for _, f := range fields {
		raw := c.PostForm(f.name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return cfg, fmt.Errorf("field %s: %w", f.name, err)
		}
		f.assign(v)
	}

	intFields := []struct {
		name   string
		assign func(int)
	}{
		{"sample_size", func(v int) { cfg.SampleSize = v }},
		{"grid_points", func(v int) { cfg.GridPoints = v }},
	}
	for _, f := range intFields {
		raw := c.PostForm(f.name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return cfg, fmt.Errorf("field %s: %w", f.name, err)
		}
		f.assign(v)
	}

	if raw := c.PostForm("seed"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("field seed: %w", err)
		}
		cfg.Seed = v
	}

	return cfg, nil
}
