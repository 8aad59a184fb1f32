package web

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/KevinMolina1996/realestate-front/internal/core/port"
)

const apiPrefix = "/api"

type ServerConfig struct {
	Port               string
	PropertiesAPIURL   *url.URL
	CORSAllowedOrigins []string
}

type Server struct {
	httpServer *http.Server
	logger     port.LoggerPort
}

// NewRouter собирает маршруты; вынесен отдельно для тестов
func NewRouter(cfg ServerConfig, properties *PropertiesHandler, baseLogger port.LoggerPort) http.Handler {
	r := chi.NewRouter()

	compressor := middleware.NewCompressor(5, "text/html", "text/css", "application/json")
	compressor.SetEncoder("br", func(w io.Writer, level int) io.Writer {
		return brotli.NewWriterLevel(w, level)
	})

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer, compressor.Handler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/static/*", staticHandler())

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/properties", http.StatusSeeOther)
	})

	r.Route("/properties", func(r chi.Router) {
		r.Get("/", properties.ListProperties)
		r.Post("/", properties.CreateProperty)
		r.Post("/filters", properties.SubmitFilters)
		r.Get("/{id}", properties.PropertyDetails)
		r.Post("/{id}", properties.UpdateProperty)
	})

	// прямой доступ к properties API для скриптов с того же origin
	if cfg.PropertiesAPIURL != nil {
		proxyLogger := baseLogger.WithFields(port.Fields{"component": "api_proxy"})
		r.Route(apiPrefix, func(r chi.Router) {
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins: cfg.CORSAllowedOrigins,
				AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
				AllowedHeaders: []string{"Accept", "Content-Type", "X-Trace-ID"},
				ExposedHeaders: []string{"X-Trace-ID"},
				MaxAge:         300,
			}))
			r.Handle("/*", CreateProxy(cfg.PropertiesAPIURL, apiPrefix, proxyLogger))
		})
	}

	return r
}

func NewServer(cfg ServerConfig, properties *PropertiesHandler, baseLogger port.LoggerPort) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           NewRouter(cfg, properties, baseLogger),
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: baseLogger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("Starting web server", port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping web server...", nil)
	return s.httpServer.Shutdown(ctx)
}
