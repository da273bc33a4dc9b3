// Package httpapi exposes the service over HTTP: the public auth endpoints,
// the token-gated routes, and the JSON error contract.
package httpapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dvargas92/fotoapp/internal/logging"
	"github.com/dvargas92/fotoapp/internal/server/users"
)

// ImageStore stores uploaded files and resolves time-limited links to them.
type ImageStore interface {
	Upload(ctx context.Context, userID, filename, contentType string, body io.Reader) (string, error)
	PresignedGetURL(ctx context.Context, key string) (string, error)
}

type HTTPServer struct {
	address string
	logger  logging.Logger
	users   *users.Service
	images  ImageStore
	tokens  TokenVerifier
}

func NewHTTPServer(a string, l logging.Logger, us *users.Service, im ImageStore, tv TokenVerifier) (*HTTPServer, error) {
	return &HTTPServer{
		address: a,
		logger:  l.With("module", "http_server"),
		users:   us,
		images:  im,
		tokens:  tv,
	}, nil
}

// Router assembles the gin engine with all routes and middleware attached.
func (s *HTTPServer) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	api := r.Group("/api/v1")
	api.GET("/ping", s.ping)
	api.POST("/auth/register", s.register)
	api.POST("/auth/login", s.login)

	protected := api.Group("")
	protected.Use(AuthGate(s.tokens, RejectMissing401))
	protected.POST("/image-upload", s.imageUpload)
	protected.GET("/image-url", s.imageLink)

	return r
}

func (s *HTTPServer) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug(c.Request.Context(), "request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
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
