// Package server serves the portfolio page, its HTMX fragments, the
// contact relay endpoints and the typing text stream.
package server

import (
	"context"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"

	"github.com/farooque06/portfolio/internal/chat"
	"github.com/farooque06/portfolio/internal/config"
	"github.com/farooque06/portfolio/internal/content"
	"github.com/farooque06/portfolio/internal/relay"
	"github.com/farooque06/portfolio/internal/typing"
	"github.com/farooque06/portfolio/web"
)

// Relayer delivers contact submissions.
type Relayer interface {
	Submit(ctx context.Context, s relay.Submission) (relay.Receipt, error)
}

// Options wires the server's collaborators. Scheduler is optional and
// defaults to the wall clock.
type Options struct {
	Config    *config.Config
	Content   *content.Portfolio
	Relay     Relayer
	Scheduler typing.Scheduler
}

// Server is the portfolio HTTP server.
type Server struct {
	cfg        *config.Config
	content    *content.Portfolio
	relay      Relayer
	scheduler  typing.Scheduler
	launcher   chat.Launcher
	visitors   *visitorHasher
	engine     *gin.Engine
	handler    http.Handler
	httpServer *http.Server
}

// New builds the gin engine and registers every route.
func New(opts Options) (*Server, error) {
	if opts.Config == nil || opts.Content == nil || opts.Relay == nil {
		return nil, fmt.Errorf("server: config, content and relay are required")
	}
	if opts.Config.Mode != "" {
		gin.SetMode(opts.Config.Mode)
	}

	visitors, err := newVisitorHasher()
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:       opts.Config,
		content:   opts.Content,
		relay:     opts.Relay,
		scheduler: opts.Scheduler,
		launcher: chat.Launcher{
			WhatsAppNumber: opts.Content.Chat.WhatsAppNumber,
			MessengerUser:  opts.Content.Chat.MessengerUser,
			Greeting:       opts.Content.Chat.Greeting,
		},
		visitors: visitors,
	}

	if err := s.buildEngine(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Server) buildEngine() error {
	r := gin.Default()
	r.Use(s.visitorLogMiddleware())

	tmpl, err := template.ParseFS(web.ContentFS, "templates/*.html")
	if err != nil {
		return fmt.Errorf("parsing templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	static, err := fs.Sub(web.ContentFS, "static")
	if err != nil {
		return fmt.Errorf("static assets: %w", err)
	}
	r.StaticFS("/static", http.FS(static))

	s.registerRoutes(r)
	s.engine = r

	s.handler = r
	if origins := s.cfg.CORS.AllowedOrigins; len(origins) > 0 {
		s.handler = cors.Handler(cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		})(r)
	}
	return nil
}

// Engine returns the gin engine.
func (s *Server) Engine() *gin.Engine { return s.engine }

// Handler returns the engine wrapped in any configured middleware.
func (s *Server) Handler() http.Handler { return s.handler }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("server: %s's portfolio listening on %s", s.content.Profile.ShortName, addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
