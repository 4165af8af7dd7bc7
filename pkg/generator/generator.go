package generator

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/syncx"

	"sitegen-api/pkg/journal"
	"sitegen-api/pkg/llm"
)

// Generator defines the generation pipeline interface.
type Generator interface {
	// Generate builds the prompt from the request, calls the completion
	// provider once and post-processes the output into a Result.
	Generate(ctx context.Context, req *Request) (*Result, error)
	// GetConfig exposes the immutable pipeline configuration.
	GetConfig() *Config
}

// Pipeline wires configuration, prompt rendering, the completion client and
// post-processing. Concurrent calls share no mutable state beyond the
// concurrency gate.
type Pipeline struct {
	cfg      *Config
	llm      llm.CompletionClient
	renderer *PromptRenderer
	gate     syncx.Limit
	journal  *journal.Writer

	nowFn func() time.Time
	idFn  func() string
}

// NewPipeline constructs a Pipeline. The prompt template path comes from the
// configuration and is resolved by the caller.
func NewPipeline(cfg *Config, client llm.CompletionClient) (*Pipeline, error) {
	if cfg == nil {
		return nil, errors.New("generator: config is required")
	}
	if client == nil {
		return nil, errors.New("generator: completion client is required")
	}
	renderer, err := NewPromptRenderer(cfg.PromptTemplate)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		cfg:      cfg,
		llm:      client,
		renderer: renderer,
		gate:     syncx.NewLimit(cfg.MaxConcurrentGenerations),
		nowFn:    time.Now,
		idFn: func() string {
			return uuid.NewString()
		},
	}
	if cfg.JournalDir != "" {
		p.journal = journal.NewWriter(cfg.JournalDir)
	}
	return p, nil
}

// GetConfig returns the underlying configuration.
func (p *Pipeline) GetConfig() *Config { return p.cfg }

// Generate implements the end-to-end flow: prompt, one completion call,
// derivations, identifier and timing. A provider failure aborts the whole
// call with a wrapped GenerationError.
func (p *Pipeline) Generate(ctx context.Context, req *Request) (*Result, error) {
	if p == nil || p.renderer == nil {
		return nil, errors.New("generator: not initialised")
	}
	if req == nil {
		return nil, errors.New("generator: request is required")
	}

	start := p.nowFn()
	p.gate.Borrow()
	defer func() {
		_ = p.gate.Return()
	}()

	inputs := buildPromptInputs(req)
	promptStr, err := p.renderer.Render(inputs)
	if err != nil {
		// Rendering is total over validated input; a failure here is an
		// internal defect, not a domain error.
		return nil, err
	}

	callCtx, cancel := context.WithTimeout(ctx, p.cfg.CompletionTimeout)
	defer cancel()

	completion, err := p.llm.Complete(callCtx, &llm.CompletionRequest{
		System: p.cfg.SystemPrompt,
		Prompt: promptStr,
	})
	if err != nil {
		p.record(ctx, req, nil, err)
		return nil, &GenerationError{Cause: err}
	}

	features := FeaturesIncluded(req.Recommendations, req.IncludeBooking, req.Style)
	result := &Result{
		ID:                   p.idFn(),
		BusinessName:         req.Business.Name,
		GeneratedAt:          p.nowFn(),
		HTMLCode:             completion.Text,
		CSSCode:              ColorVariables(req.Business, req.ColorScheme),
		StyleApplied:         req.Style,
		FeaturesIncluded:     features,
		EstimatedImprovement: ImprovementNarrative(req.Recommendations, features),
		GenerationTimeMs:     p.nowFn().Sub(start).Milliseconds(),
	}
	if req.IncludeBooking {
		result.JSCode = BookingScript
	}

	p.record(ctx, req, result, nil)
	return result, nil
}

func (p *Pipeline) record(ctx context.Context, req *Request, result *Result, genErr error) {
	if p.journal == nil {
		return
	}
	rec := &journal.GenerationRecord{
		BusinessName: req.Business.Name,
		Industry:     req.Business.Industry,
		Style:        string(req.Style),
		PromptDigest: p.renderer.Digest(),
		Success:      genErr == nil,
	}
	if result != nil {
		rec.GenerationID = result.ID
		rec.Features = result.FeaturesIncluded
		rec.DurationMs = result.GenerationTimeMs
	}
	if genErr != nil {
		rec.ErrorMessage = genErr.Error()
	}
	if _, err := p.journal.WriteGeneration(rec); err != nil {
		logx.WithContext(ctx).Errorf("generator: journal write failed: %v", err)
	}
}
