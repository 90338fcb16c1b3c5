// Package pipeline orchestrates a resume build: content normalization,
// layout resolution, template rendering, and the page-fit render with a
// bounded number of density adjustment passes.
package pipeline

import (
	"context"
	"log"
	"strings"

	"github.com/davidchen/resume-builder/internal/layout"
	"github.com/davidchen/resume-builder/internal/normalize"
	"github.com/davidchen/resume-builder/internal/pagefit"
	"github.com/davidchen/resume-builder/internal/render"
	"github.com/davidchen/resume-builder/internal/types"
)

// PageFitRenderer is the engine-facing contract the builder depends on.
// *pagefit.Renderer satisfies it; tests substitute a fake.
type PageFitRenderer interface {
	RenderToPDF(ctx context.Context, html string, targetPages string, margins layout.PageMargins) (*pagefit.Result, error)
}

// Config tunes the builder.
type Config struct {
	// MaxAdjustPasses caps how many times a missed page target may trigger
	// a density re-resolve and re-render. Zero means render exactly once.
	MaxAdjustPasses int
	Verbose         bool
}

// DefaultConfig allows one adjustment pass.
func DefaultConfig() Config {
	return Config{MaxAdjustPasses: 1}
}

// Builder runs the render pipeline. It holds no per-request state; every
// build is independent.
type Builder struct {
	renderer PageFitRenderer
	cfg      Config
}

// New creates a builder around a page-fit renderer.
func New(renderer PageFitRenderer, cfg Config) *Builder {
	if cfg.MaxAdjustPasses < 0 {
		cfg.MaxAdjustPasses = 0
	}
	return &Builder{renderer: renderer, cfg: cfg}
}

// Inputs are the raw build inputs before normalization.
type Inputs struct {
	AI          *types.AIContent
	Profile     *types.UserProfile
	TemplateID  string
	TargetPages string
	Density     int
}

// BuildFromInputs normalizes the raw content shapes and renders the result.
func (b *Builder) BuildFromInputs(ctx context.Context, in Inputs) (*types.RenderResult, error) {
	profile := in.Profile
	if profile == nil {
		profile = &types.UserProfile{}
	}
	req := &types.RenderRequest{
		FullName:    strings.TrimSpace(profile.FullName),
		Content:     normalize.Normalize(in.AI, profile),
		TemplateID:  in.TemplateID,
		TargetPages: in.TargetPages,
		Density:     in.Density,
	}
	return b.Build(ctx, req)
}

// Build renders a request to a paginated artifact. When the artifact misses
// the page target, density is stepped toward the deficit and the render
// repeated, at most MaxAdjustPasses times. Convergence is not guaranteed;
// the last artifact and its measured metrics are always returned.
func (b *Builder) Build(ctx context.Context, req *types.RenderRequest) (*types.RenderResult, error) {
	req.SetDefaults()

	templateID := render.CanonicalTemplateID(req.TemplateID)
	density := req.Density

	// The compact profile is fixed, so re-resolving density cannot change
	// its output.
	adjustable := templateID != render.TemplateCompact

	var result *pagefit.Result
	for pass := 0; ; pass++ {
		params := render.ParamsFor(templateID, req.TargetPages, density)
		html, err := render.Render(req.FullName, req.Content, templateID, req.TargetPages, params)
		if err != nil {
			return nil, err
		}

		result, err = b.renderer.RenderToPDF(ctx, html, req.TargetPages, params.PageMargins)
		if err != nil {
			return nil, err
		}

		if !adjustable || pass >= b.cfg.MaxAdjustPasses {
			break
		}
		next, ok := nextDensity(density, result, pagefit.PageCount(req.TargetPages))
		if !ok {
			break
		}
		if b.cfg.Verbose {
			log.Printf("[BUILD] pass %d: %d page(s) at fill %.2f for target %s, retrying at density %d",
				pass+1, result.ActualPages, result.FillRatio, req.TargetPages, next)
		}
		density = next
	}

	return &types.RenderResult{
		PDF:         result.PDF,
		ActualPages: result.ActualPages,
		TargetPages: req.TargetPages,
		Density:     density,
		FillRatio:   result.FillRatio,
	}, nil
}

// underfillThreshold is the fill ratio below which a roomier density is
// worth a retry.
const underfillThreshold = 0.62

// nextDensity proposes one density step toward the target: tighter when the
// artifact overflows the page target, roomier when it badly underfills.
// Returns false when density is already pinned or the render hit the target.
func nextDensity(density int, result *pagefit.Result, targetPages int) (int, bool) {
	switch {
	case result.ActualPages > targetPages && density < 5:
		return density + 1, true
	case result.ActualPages <= targetPages && result.FillRatio < underfillThreshold && density > 1:
		return density - 1, true
	}
	return density, false
}
