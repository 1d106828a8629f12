package dashboard

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"social-sentiment-dashboard/internal/logger"
	"social-sentiment-dashboard/internal/pipeline"
	"social-sentiment-dashboard/internal/store"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Server serves the dashboard page and its JSON/CSV API
type Server struct {
	cfg      *store.Config
	pipeline *pipeline.Pipeline
}

func NewServer(cfg *store.Config, p *pipeline.Pipeline) *Server {
	return &Server{cfg: cfg, pipeline: p}
}

// Router builds the gin engine with all routes registered
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error(c.Request.Context(), "Request handler panic",
			"error", recovered,
			"method", c.Request.Method,
			"path", c.Request.URL.Path)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	r.Use(requestIDMiddleware())
	r.Use(loggingMiddleware())

	r.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	r.GET("/", s.index)
	r.POST("/run", s.run)

	api := r.Group("/api")
	{
		api.GET("/sentiment", s.sentimentJSON)
		api.GET("/sentiment.csv", s.sentimentCSV)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

// HTTPServer wraps the router with the configured timeouts
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         s.cfg.Server.Addr,
		Handler:      s.Router(),
		ReadTimeout:  s.cfg.ReadTimeout(),
		WriteTimeout: s.cfg.WriteTimeout(),
	}
}
