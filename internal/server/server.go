// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/prateekh777/AIInterviewV4-0/internal/config"
	"github.com/prateekh777/AIInterviewV4-0/internal/storage"
)

// Server bundles the configuration, the storage backend and the logger
// the route handlers run against.
type Server struct {
	Cfg   *config.Config
	Store storage.Storage
	Log   zerolog.Logger
}

// New construct new Server instance
func New(cfg *config.Config, store storage.Storage, log zerolog.Logger) *Server {
	return &Server{Cfg: cfg, Store: store, Log: log}
}

// HTTPServer wraps the route handlers in an http.Server with sane
// timeouts.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%s", s.Cfg.Port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
