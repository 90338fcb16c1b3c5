// Package server provides the HTTP REST API for the resume builder.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/davidchen/resume-builder/internal/content"
	"github.com/davidchen/resume-builder/internal/pipeline"
	"github.com/davidchen/resume-builder/internal/types"
)

// ResumeBuilder is the pipeline-facing contract the handlers depend on.
// *pipeline.Builder satisfies it; tests substitute a fake.
type ResumeBuilder interface {
	BuildFromInputs(ctx context.Context, in pipeline.Inputs) (*types.RenderResult, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	builder    ResumeBuilder
	renderer   pipeline.PageFitRenderer
	generator  content.Generator
	validator  *validator.Validate
	verbose    bool
}

// Config holds server configuration
type Config struct {
	Port    string
	Verbose bool
}

// New creates a new server instance. The generator may be nil, in which
// case /resume/build reports that content generation is not configured.
func New(cfg Config, builder ResumeBuilder, renderer pipeline.PageFitRenderer, generator content.Generator) *Server {
	s := &Server{
		builder:   builder,
		renderer:  renderer,
		generator: generator,
		validator: validator.New(),
		verbose:   cfg.Verbose,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /resume/build", s.handleBuild)
	mux.HandleFunc("POST /resume/generate", s.handleGenerate)
	mux.HandleFunc("POST /resume/render", s.handleRender)
	mux.HandleFunc("POST /resume/pdf", s.handlePDF)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // Long timeout for render passes
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.generator != nil {
		if err := s.generator.Close(); err != nil {
			log.Printf("Error closing generator: %v", err)
		}
	}

	log.Println("Server stopped")
	return nil
}

// Handler exposes the configured routes for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}
