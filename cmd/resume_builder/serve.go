package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/davidchen/resume-builder/internal/config"
	"github.com/davidchen/resume-builder/internal/content"
	"github.com/davidchen/resume-builder/internal/pagefit"
	"github.com/davidchen/resume-builder/internal/pipeline"
	"github.com/davidchen/resume-builder/internal/server"
)

var (
	servePort string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for building, rendering, and converting resumes.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (defaults to PORT env var or 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.NewServerConfig()
	if err != nil {
		return fmt.Errorf("failed to load server config: %w", err)
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}

	renderer := pagefit.NewRenderer(pagefit.Options{
		MaxConcurrent: int64(cfg.MaxConcurrent),
		RenderTimeout: cfg.EngineTimeout,
		ChromePath:    cfg.ChromePath,
		Verbose:       cfg.Verbose,
	})

	builder := pipeline.New(renderer, pipeline.Config{
		MaxAdjustPasses: cfg.MaxAdjustPasses,
		Verbose:         cfg.Verbose,
	})

	// The generator is optional; without an API key the /resume/build
	// endpoint reports itself unconfigured while the render endpoints
	// keep working.
	var generator content.Generator
	if cfg.APIKey != "" {
		g, err := content.NewGeminiGenerator(context.Background(), cfg.APIKey, cfg.Model, cfg.Verbose)
		if err != nil {
			return fmt.Errorf("failed to create content generator: %w", err)
		}
		generator = g
	} else {
		log.Println("GEMINI_API_KEY not set; /resume/build will be unavailable")
	}

	srv := server.New(server.Config{Port: cfg.Port, Verbose: cfg.Verbose}, builder, renderer, generator)
	return srv.Start()
}
