// Package httpapi exposes the account service over HTTP: registration,
// token issuance, and current-user resolution, plus a liveness probe.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/accountd/internal/logging"
	"github.com/dmitrijs2005/accountd/internal/server/users"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// UserService is the orchestrator surface the HTTP layer needs. The real
// *users.Service satisfies it; tests provide stubs.
type UserService interface {
	Register(ctx context.Context, username, email, password string, fullName *string) (*users.User, error)
	Login(ctx context.Context, username, password string) (*users.LoginResult, error)
	CurrentUser(ctx context.Context, token string) (*users.User, error)
}

type HTTPServer struct {
	address    string
	users      UserService
	logger     logging.Logger
	corsOrigin string
}

func NewHTTPServer(a string, l logging.Logger, us UserService, corsOrigin string) (*HTTPServer, error) {
	return &HTTPServer{
		address:    a,
		logger:     l.With("module", "http_server"),
		users:      us,
		corsOrigin: corsOrigin,
	}, nil
}

// Handler builds the chi router with CORS and all routes attached.
func (s *HTTPServer) Handler() http.Handler {
	r := chi.NewRouter()

	var origins []string
	for _, p := range strings.Split(s.corsOrigin, ",") {
		if o := strings.TrimRight(strings.TrimSpace(p), "/"); o != "" {
			origins = append(origins, o)
		}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/register", s.handleRegister)
	r.Post("/token", s.handleToken)
	r.Get("/users/me", s.handleMe)
	r.Get("/healthz", s.handleHealthz)

	return r
}

func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
