package web

import (
	"bytes"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sstent/fittracker-go/internal/database"
	"github.com/sstent/fittracker-go/internal/models"
	"github.com/sstent/fittracker-go/internal/parser"
	"github.com/sstent/fittracker-go/internal/report"
)

type WebHandler struct {
	db       database.Database
	reporter *report.Service
}

type summaryResponse struct {
	Summary *models.Summary `json:"summary,omitempty"`
	Message string          `json:"message"`
}

func NewWebHandler(db database.Database, reporter *report.Service) *WebHandler {
	return &WebHandler{
		db:       db,
		reporter: reporter,
	}
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(h *WebHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	h.RegisterRoutes(router)
	return router
}

func (h *WebHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", h.Health)
	router.POST("/summary", h.Summary)
	router.POST("/packages", h.AddPackage)
	router.GET("/report", h.Report)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (h *WebHandler) Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// Summary computes the summary of a single package without storing it.
func (h *WebHandler) Summary(c *gin.Context) {
	var pkg parser.Package
	if err := c.ShouldBindJSON(&pkg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := report.Summarize(pkg)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// JSON has no encoding for Inf or NaN, which a zero duration produces.
	if !finite(summary.Distance, summary.Speed, summary.Calories) {
		c.JSON(http.StatusUnprocessableEntity, summaryResponse{Message: summary.Message()})
		return
	}

	c.JSON(http.StatusOK, summaryResponse{Summary: &summary, Message: summary.Message()})
}

func (h *WebHandler) AddPackage(c *gin.Context) {
	var pkg parser.Package
	if err := c.ShouldBindJSON(&pkg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stored, err := h.db.AddPackage(pkg)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, stored)
}

// Report renders stored packages as plain text, one line per package.
func (h *WebHandler) Report(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	stored, err := h.db.GetPackages(limit, offset)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	packages := make([]parser.Package, 0, len(stored))
	for _, p := range stored {
		packages = append(packages, p.Package())
	}

	var buf bytes.Buffer
	stats, err := h.reporter.Run(c.Request.Context(), packages, &buf)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.Header("X-Report-Rendered", strconv.Itoa(stats.Rendered))
	c.Header("X-Report-Failed", strconv.Itoa(stats.Failed))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}
