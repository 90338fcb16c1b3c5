package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/davidchen/resume-builder/internal/config"
	"github.com/davidchen/resume-builder/internal/content"
	"github.com/davidchen/resume-builder/internal/pagefit"
	"github.com/davidchen/resume-builder/internal/pipeline"
	"github.com/davidchen/resume-builder/internal/types"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a resume PDF in one shot",
	Long: `Builds a PDF resume from a user profile. Content comes either from a
pre-generated AI content file (--ai-content) or from the content source,
tailored to a job description (--job).

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runBuild,
}

var (
	buildConfigPath string
	buildJob        string
	buildProfile    string
	buildAIContent  string
	buildTemplate   string
	buildPages      string
	buildDensity    int
	buildOutput     string
	buildAPIKey     string
	buildModel      string
	buildChromePath string
	buildMaxPasses  int
	buildVerbose    bool
)

func init() {
	// Config file flag (processed first)
	buildCmd.Flags().StringVar(&buildConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	buildCmd.Flags().StringVarP(&buildJob, "job", "j", "", "Path to job description text file (mutually exclusive with --ai-content)")
	buildCmd.Flags().StringVarP(&buildProfile, "profile", "p", "", "Path to user profile JSON file")
	buildCmd.Flags().StringVar(&buildAIContent, "ai-content", "", "Path to pre-generated AI content JSON (skips the content source)")
	buildCmd.Flags().StringVarP(&buildTemplate, "template", "t", "", "Template name: modern, classic, minimal, compact")
	buildCmd.Flags().StringVar(&buildPages, "pages", "", `Target page count: "1", "2", or "3"`)
	buildCmd.Flags().IntVar(&buildDensity, "density", 0, "Layout density 1 (roomy) to 5 (tight)")
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "Path to write the PDF (default resume.pdf)")
	buildCmd.Flags().StringVar(&buildChromePath, "chrome-path", "", "Path to the Chrome/Chromium binary (defaults to CHROME_PATH env var)")
	buildCmd.Flags().IntVar(&buildMaxPasses, "max-passes", 0, "Density adjustment passes after the first render")
	buildCmd.Flags().BoolVarP(&buildVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	buildCmd.Flags().StringVar(&buildAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	buildCmd.Flags().StringVar(&buildModel, "model", "", "Gemini model name (optional, defaults to GEMINI_MODEL env var)")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if buildConfigPath != "" {
		loadedCfg, err := config.LoadConfig(buildConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
		if buildVerbose {
			fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", buildConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("job") {
		cfg.Job = buildJob
	}
	if cmd.Flags().Changed("profile") {
		cfg.Profile = buildProfile
	}
	if cmd.Flags().Changed("template") {
		cfg.Template = buildTemplate
	}
	if cmd.Flags().Changed("pages") {
		cfg.Pages = buildPages
	}
	if cmd.Flags().Changed("density") {
		cfg.Density = buildDensity
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = buildOutput
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = buildAPIKey
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = buildModel
	}
	if cmd.Flags().Changed("chrome-path") {
		cfg.ChromePath = buildChromePath
	}
	if cmd.Flags().Changed("max-passes") {
		cfg.MaxAdjustPasses = buildMaxPasses
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = buildVerbose
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{
		Output:          "resume.pdf",
		MaxAdjustPasses: 1,
	})

	// Step 4: Validate required fields
	if cfg.Profile == "" {
		return fmt.Errorf("--profile is required (via flag or config)")
	}
	if buildAIContent == "" && cfg.Job == "" {
		return fmt.Errorf("either --job or --ai-content must be provided")
	}

	profile, err := loadProfile(cfg.Profile)
	if err != nil {
		return err
	}

	// Step 5: Obtain AI content, from file or from the content source
	var ai *types.AIContent
	if buildAIContent != "" {
		ai, err = loadAIContent(buildAIContent)
		if err != nil {
			return err
		}
	} else {
		if cfg.APIKey == "" {
			cfg.APIKey = os.Getenv("GEMINI_API_KEY")
		}
		if cfg.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
		}
		if cfg.Model == "" {
			cfg.Model = os.Getenv("GEMINI_MODEL")
		}

		jobText, err := os.ReadFile(cfg.Job)
		if err != nil {
			return fmt.Errorf("failed to read job file %s: %w", cfg.Job, err)
		}

		generator, err := content.NewGeminiGenerator(ctx, cfg.APIKey, cfg.Model, cfg.Verbose)
		if err != nil {
			return fmt.Errorf("failed to create content generator: %w", err)
		}
		defer generator.Close()

		pages := cfg.Pages
		if pages == "" {
			pages = types.DefaultTargetPages
		}
		ai, err = generator.Generate(ctx, string(jobText), profile, pages)
		if err != nil {
			return err
		}
	}

	// Step 6: Render with page-fit adjustment
	renderer := pagefit.NewRenderer(pagefit.Options{
		ChromePath: cfg.ChromePath,
		Verbose:    cfg.Verbose,
	})
	builder := pipeline.New(renderer, pipeline.Config{
		MaxAdjustPasses: cfg.MaxAdjustPasses,
		Verbose:         cfg.Verbose,
	})

	result, err := builder.BuildFromInputs(ctx, pipeline.Inputs{
		AI:          ai,
		Profile:     profile,
		TemplateID:  cfg.Template,
		TargetPages: cfg.Pages,
		Density:     cfg.Density,
	})
	if err != nil {
		return err
	}

	if err := os.WriteFile(cfg.Output, result.PDF, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", cfg.Output, err)
	}

	fmt.Fprintf(os.Stdout, "Wrote %s: %d page(s) (target %s), density %d, fill %.2f\n",
		cfg.Output, result.ActualPages, result.TargetPages, result.Density, result.FillRatio)
	return nil
}

func loadProfile(path string) (*types.UserProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}
	var profile types.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}
	return &profile, nil
}

func loadAIContent(path string) (*types.AIContent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read AI content file %s: %w", path, err)
	}
	var ai types.AIContent
	if err := json.Unmarshal(data, &ai); err != nil {
		return nil, fmt.Errorf("failed to parse AI content JSON: %w", err)
	}
	return &ai, nil
}
