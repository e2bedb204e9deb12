// Package httpapi exposes the catalog over HTTP/JSON: public read and
// login/registration endpoints, and admin-gated mutating endpoints guarded
// by the session cookie middleware.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dmitrijs2005/bookkeeper/internal/logging"
	"github.com/dmitrijs2005/bookkeeper/internal/server/books"
	"github.com/dmitrijs2005/bookkeeper/internal/server/config"
	"github.com/dmitrijs2005/bookkeeper/internal/server/covers"
	"github.com/dmitrijs2005/bookkeeper/internal/server/users"
)

type Server struct {
	address      string
	logger       logging.Logger
	users        *users.Service
	books        *books.Service
	covers       *covers.Service
	jwtSecret    []byte
	cookieSecure bool
	clientOrigin string
}

func NewServer(cfg *config.Config, l logging.Logger, us *users.Service, bs *books.Service, cs *covers.Service) (*Server, error) {
	return &Server{
		address:      cfg.EndpointAddrHTTP,
		logger:       l.With("module", "httpapi"),
		users:        us,
		books:        bs,
		covers:       cs,
		jwtSecret:    []byte(cfg.SecretKey),
		cookieSecure: cfg.CookieSecure,
		clientOrigin: cfg.ClientOrigin,
	}, nil
}

// Router assembles the chi router: baseline middleware, a CORS policy that
// allows exactly the configured client origin with credentials, public
// routes, and the admin-gated mutating routes.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{s.clientOrigin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/ping", s.ping)
	r.Post("/register", s.registerUser)
	r.Post("/login", s.login)
	r.Get("/books", s.listBooks)

	r.Group(func(r chi.Router) {
		r.Use(s.adminOnly)
		r.Post("/books", s.addBook)
		r.Put("/books/{isbn}", s.updateBook)
		r.Delete("/books/{isbn}", s.deleteBook)
		r.Post("/covers/upload-url", s.coverUploadURL)
		r.Get("/covers/download-url", s.coverDownloadURL)
	})

	return r
}

// Run serves the API until the context is canceled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
