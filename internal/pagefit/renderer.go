package pagefit

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"golang.org/x/sync/semaphore"

	"github.com/davidchen/resume-builder/internal/layout"
)

// US letter, the paper size every template targets.
const (
	letterWidthInches  = 8.5
	letterHeightInches = 11.0

	// Chrome lays out at 96 CSS pixels per inch.
	pixelsPerInch = 96.0
)

// Result is the outcome of one page-fit render.
type Result struct {
	// PDF is the paginated artifact.
	PDF []byte
	// ActualPages is the structural page count of the artifact, counted
	// from the PDF itself. It may diverge from the requested target.
	ActualPages int
	// FillRatio is measured content height over total usable height across
	// the requested target pages, capped at 1.0.
	FillRatio float64
	// ContentHeightPx is the measured layout height in CSS pixels.
	ContentHeightPx float64
}

// Options configure the renderer pool.
type Options struct {
	// MaxConcurrent bounds the number of engine instances alive at once.
	MaxConcurrent int64
	// RenderTimeout bounds launch + navigation + print for one call.
	RenderTimeout time.Duration
	// ChromePath overrides the browser binary (CHROME_PATH-style).
	ChromePath string
	Verbose    bool
}

// DefaultOptions returns the renderer defaults: two concurrent instances,
// 60s per render.
func DefaultOptions() Options {
	return Options{
		MaxConcurrent: 2,
		RenderTimeout: 60 * time.Second,
		ChromePath:    os.Getenv("CHROME_PATH"),
	}
}

// Renderer runs headless-browser renders. Every call gets a fresh engine
// instance that is torn down unconditionally when the call returns; the
// only shared state is the semaphore bounding concurrent instances.
type Renderer struct {
	opts Options
	sem  *semaphore.Weighted
}

// NewRenderer creates a renderer with the given options. Zero values fall
// back to DefaultOptions.
func NewRenderer(opts Options) *Renderer {
	defaults := DefaultOptions()
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = defaults.MaxConcurrent
	}
	if opts.RenderTimeout <= 0 {
		opts.RenderTimeout = defaults.RenderTimeout
	}
	if opts.ChromePath == "" {
		opts.ChromePath = defaults.ChromePath
	}
	return &Renderer{opts: opts, sem: semaphore.NewWeighted(opts.MaxConcurrent)}
}

// RenderToPDF loads the HTML document into a fresh headless browser,
// measures the content extent, prints a letter-size PDF with the given page
// margins, and counts the pages actually produced. The engine instance is
// released whether or not the render succeeds.
func (r *Renderer) RenderToPDF(ctx context.Context, html string, targetPages string, margins layout.PageMargins) (*Result, error) {
	if err := r.sem.Acquire(ctx, 1); err != nil {
		return nil, &EngineError{Op: "acquire", Cause: err}
	}
	defer r.sem.Release(1)

	if r.opts.Verbose {
		log.Printf("[ENGINE] rendering %d bytes of HTML, target %s page(s)", len(html), targetPages)
	}

	execOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.opts.ChromePath != "" {
		execOpts = append(execOpts, chromedp.ExecPath(r.opts.ChromePath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, execOpts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, r.opts.RenderTimeout)
	defer cancelTimeout()

	// Chrome needs a real URL to resolve the document against; a temp file
	// keeps the content out of the command line and the DevTools protocol.
	tmpDir, err := os.MkdirTemp("", "resume-render-")
	if err != nil {
		return nil, &EngineError{Op: "prepare", Cause: err}
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, &EngineError{Op: "prepare", Cause: err}
	}

	var contentHeight float64
	var pdfBuf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Evaluate(`document.body.scrollHeight`, &contentHeight),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var printErr error
			pdfBuf, _, printErr = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(letterWidthInches).
				WithPaperHeight(letterHeightInches).
				WithMarginTop(margins.Top).
				WithMarginBottom(margins.Bottom).
				WithMarginLeft(margins.Left).
				WithMarginRight(margins.Right).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return printErr
		}),
	)
	if err != nil {
		return nil, &EngineError{Op: "render", Cause: err}
	}

	actualPages, err := CountPages(pdfBuf)
	if err != nil {
		return nil, &EngineError{Op: "page count", Cause: err}
	}

	result := &Result{
		PDF:             pdfBuf,
		ActualPages:     actualPages,
		FillRatio:       FillRatio(contentHeight, targetPages, margins),
		ContentHeightPx: contentHeight,
	}
	if r.opts.Verbose {
		log.Printf("[ENGINE] produced %d page(s), fill ratio %.2f", result.ActualPages, result.FillRatio)
	}
	return result, nil
}

// UsablePageHeightPx is the printable height of one page in CSS pixels:
// physical page height minus top and bottom margins.
func UsablePageHeightPx(margins layout.PageMargins) float64 {
	usable := letterHeightInches - margins.Top - margins.Bottom
	if usable <= 0 {
		return 0
	}
	return usable * pixelsPerInch
}

// FillRatio is measured content height over the total usable height across
// the requested target pages, clamped to [0, 1].
func FillRatio(contentHeightPx float64, targetPages string, margins layout.PageMargins) float64 {
	total := UsablePageHeightPx(margins) * float64(PageCount(targetPages))
	if total <= 0 || contentHeightPx <= 0 {
		return 0
	}
	ratio := contentHeightPx / total
	if ratio > 1 {
		return 1
	}
	return ratio
}

// PageCount maps a target pages value to its numeric page count.
// Anything outside the supported set counts as one page.
func PageCount(targetPages string) int {
	switch targetPages {
	case "2":
		return 2
	case "3":
		return 3
	default:
		return 1
	}
}
