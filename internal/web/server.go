// Package web provides a read-only HTTP inspector for a tinysql database.
//
// EDUCATIONAL NOTES:
// ------------------
// This package sets up an HTTP server using the chi router, a
// lightweight, idiomatic Go router. Key concepts:
//
// 1. Middleware: functions that wrap handlers to add cross-cutting
//    concerns like logging, panic recovery, and request timeouts.
//
// 2. Graceful shutdown: when the server receives a termination signal,
//    it stops accepting new connections but finishes in-flight requests
//    first.
//
// 3. Dependency injection: the storage.Tree is threaded into the server
//    so handlers can read rows and page structure.
//
// Every route here only reads from the tree; there is no POST endpoint
// that inserts or mutates anything. Mutation stays on the REPL, which is
// also the reason every handler takes the shared mutex before touching
// the tree or pager: the core engine assumes a single caller, and this
// server runs concurrently with it.
package web

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/shxntanu/tinysql/internal/storage"
)

// Server is the read-only HTTP inspector.
type Server struct {
	router *chi.Mux
	addr   string
	tree   *storage.Tree
	mu     *sync.Mutex
}

// NewServer creates a new inspector bound to addr (e.g. ":8080"), reading
// from tree. mu must be the same mutex the REPL takes around its own
// tree/pager access.
func NewServer(addr string, tree *storage.Tree, mu *sync.Mutex) *Server {
	r := chi.NewRouter()

	// RequestID: adds a unique ID to each request for tracing.
	r.Use(middleware.RequestID)
	// RealIP: extracts the real client IP from X-Forwarded-For headers.
	r.Use(middleware.RealIP)
	// Logger: logs each request (method, path, duration).
	r.Use(middleware.Logger)
	// Recoverer: catches panics in handlers, logs a stack trace, returns 500.
	r.Use(middleware.Recoverer)
	// Timeout: cancels the request context after 10 seconds.
	r.Use(middleware.Timeout(10 * time.Second))

	s := &Server{router: r, addr: addr, tree: tree, mu: mu}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(WithTree(s.tree, s.mu))

	s.router.Get("/", s.handleIndex)
	s.router.Get("/health", s.handleHealth)
	s.router.Get("/rows", s.handleRows)
	s.router.Get("/tree", s.handleTree)
	s.router.Get("/constants", s.handleConstants)

	s.router.Route("/api", func(r chi.Router) {
		r.Use(RequireTree)
		r.Get("/rows", s.handleAPIRows)
		r.Get("/tree", s.handleAPITree)
		r.Get("/constants", s.handleAPIConstants)
	})
}

// Router returns the chi router, for testing.
func (s *Server) Router() http.Handler {
	return s.router
}

// Run starts the HTTP server and blocks until shutdown.
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         s.addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case <-done:
	case err := <-errChan:
		return fmt.Errorf("inspector server error: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("inspector shutdown error: %w", err)
	}
	return nil
}
