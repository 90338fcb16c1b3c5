package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidchen/resume-builder/internal/layout"
	"github.com/davidchen/resume-builder/internal/pagefit"
	"github.com/davidchen/resume-builder/internal/types"
)

// fakeRenderer returns scripted results and records the margins it saw.
type fakeRenderer struct {
	results []*pagefit.Result
	err     error

	calls   int
	margins []layout.PageMargins
	htmls   []string
}

func (f *fakeRenderer) RenderToPDF(_ context.Context, html string, _ string, margins layout.PageMargins) (*pagefit.Result, error) {
	f.calls++
	f.margins = append(f.margins, margins)
	f.htmls = append(f.htmls, html)
	if f.err != nil {
		return nil, f.err
	}
	idx := f.calls - 1
	if idx >= len(f.results) {
		idx = len(f.results) - 1
	}
	return f.results[idx], nil
}

func testRequest() *types.RenderRequest {
	return &types.RenderRequest{
		FullName: "Jane Doe",
		Content: &types.CanonicalContent{
			Summary: "Engineer.",
			Skills:  []string{"Go"},
		},
	}
}

func TestBuild_SinglePassWhenOnTarget(t *testing.T) {
	fake := &fakeRenderer{results: []*pagefit.Result{
		{PDF: []byte("%PDF"), ActualPages: 1, FillRatio: 0.9},
	}}
	b := New(fake, DefaultConfig())

	result, err := b.Build(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, fake.calls)
	assert.Equal(t, 1, result.ActualPages)
	assert.Equal(t, "1", result.TargetPages)
	assert.Equal(t, 3, result.Density)
	assert.InDelta(t, 0.9, result.FillRatio, 1e-9)
	assert.Equal(t, []byte("%PDF"), result.PDF)
}

func TestBuild_OverflowTightensDensity(t *testing.T) {
	fake := &fakeRenderer{results: []*pagefit.Result{
		{PDF: []byte("first"), ActualPages: 2, FillRatio: 1.0},
		{PDF: []byte("second"), ActualPages: 1, FillRatio: 0.97},
	}}
	b := New(fake, DefaultConfig())

	result, err := b.Build(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, 2, fake.calls)
	assert.Equal(t, 4, result.Density)
	assert.Equal(t, []byte("second"), result.PDF)
	// The second pass rendered with tighter page margins.
	assert.Less(t, fake.margins[1].Top, fake.margins[0].Top)
}

func TestBuild_UnderfillLoosensDensity(t *testing.T) {
	fake := &fakeRenderer{results: []*pagefit.Result{
		{PDF: []byte("first"), ActualPages: 1, FillRatio: 0.3},
		{PDF: []byte("second"), ActualPages: 1, FillRatio: 0.55},
	}}
	b := New(fake, DefaultConfig())

	result, err := b.Build(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, 2, fake.calls)
	assert.Equal(t, 2, result.Density)
	assert.Greater(t, fake.margins[1].Top, fake.margins[0].Top)
}

func TestBuild_PassCapRespected(t *testing.T) {
	fake := &fakeRenderer{results: []*pagefit.Result{
		{PDF: []byte("over"), ActualPages: 3, FillRatio: 1.0},
	}}
	b := New(fake, Config{MaxAdjustPasses: 2})

	result, err := b.Build(context.Background(), testRequest())
	require.NoError(t, err)
	// Initial render plus two adjustment passes, never more.
	assert.Equal(t, 3, fake.calls)
	assert.Equal(t, 5, result.Density)
	// The target was never hit; the last artifact is still returned.
	assert.Equal(t, 3, result.ActualPages)
}

func TestBuild_ZeroPassesRendersOnce(t *testing.T) {
	fake := &fakeRenderer{results: []*pagefit.Result{
		{PDF: []byte("over"), ActualPages: 2, FillRatio: 1.0},
	}}
	b := New(fake, Config{MaxAdjustPasses: 0})

	_, err := b.Build(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, fake.calls)
}

func TestBuild_DensityPinnedStops(t *testing.T) {
	fake := &fakeRenderer{results: []*pagefit.Result{
		{PDF: []byte("over"), ActualPages: 2, FillRatio: 1.0},
	}}
	b := New(fake, Config{MaxAdjustPasses: 3})

	req := testRequest()
	req.Density = 5
	_, err := b.Build(context.Background(), req)
	require.NoError(t, err)
	// Already at maximum density; nothing to adjust.
	assert.Equal(t, 1, fake.calls)
}

func TestBuild_CompactTemplateNeverAdjusts(t *testing.T) {
	fake := &fakeRenderer{results: []*pagefit.Result{
		{PDF: []byte("over"), ActualPages: 2, FillRatio: 1.0},
	}}
	b := New(fake, Config{MaxAdjustPasses: 3})

	req := testRequest()
	req.TemplateID = "compact"
	_, err := b.Build(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, fake.calls)
}

func TestBuild_RendererErrorPropagates(t *testing.T) {
	engineErr := &pagefit.EngineError{Op: "render", Cause: errors.New("boom")}
	fake := &fakeRenderer{err: engineErr}
	b := New(fake, DefaultConfig())

	_, err := b.Build(context.Background(), testRequest())
	require.Error(t, err)
	var asEngine *pagefit.EngineError
	assert.ErrorAs(t, err, &asEngine)
}

func TestBuild_AppliesRequestDefaults(t *testing.T) {
	fake := &fakeRenderer{results: []*pagefit.Result{
		{PDF: []byte("ok"), ActualPages: 1, FillRatio: 0.8},
	}}
	b := New(fake, DefaultConfig())

	result, err := b.Build(context.Background(), &types.RenderRequest{
		FullName: "Jane Doe",
		Content:  &types.CanonicalContent{Summary: "Hi."},
	})
	require.NoError(t, err)
	assert.Equal(t, "1", result.TargetPages)
	assert.Equal(t, 3, result.Density)
}

func TestBuildFromInputs_NormalizesBeforeRendering(t *testing.T) {
	fake := &fakeRenderer{results: []*pagefit.Result{
		{PDF: []byte("ok"), ActualPages: 1, FillRatio: 0.8},
	}}
	b := New(fake, DefaultConfig())

	_, err := b.BuildFromInputs(context.Background(), Inputs{
		AI:      &types.AIContent{Summary: "  Hi   there  "},
		Profile: &types.UserProfile{FullName: " Jane Doe "},
	})
	require.NoError(t, err)
	require.Len(t, fake.htmls, 1)
	assert.Contains(t, fake.htmls[0], "Hi there")
	assert.Contains(t, fake.htmls[0], "Jane Doe")
}
