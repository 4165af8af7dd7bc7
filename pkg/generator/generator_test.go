package generator

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"sitegen-api/pkg/llm"
)

// fakeCompletion returns fixed markup, or an error when failWith is set.
type fakeCompletion struct {
	text     string
	failWith error
	calls    int
	lastReq  *llm.CompletionRequest
}

func (f *fakeCompletion) Complete(_ context.Context, req *llm.CompletionRequest) (*llm.Completion, error) {
	f.calls++
	f.lastReq = req
	if f.failWith != nil {
		return nil, f.failWith
	}
	return &llm.Completion{Text: f.text, Model: "fake-model"}, nil
}

func (f *fakeCompletion) GetConfig() *llm.Config { return &llm.Config{} }
func (f *fakeCompletion) Close() error           { return nil }

func testPipeline(t *testing.T, client llm.CompletionClient) *Pipeline {
	t.Helper()
	cfg := DefaultConfig()
	cfg.PromptTemplate = filepath.Join("..", "..", "etc", "prompts", "generator", "homepage.tmpl")
	cfg.CompletionTimeout = 5 * time.Second

	p, err := NewPipeline(cfg, client)
	if err != nil {
		t.Fatalf("NewPipeline error: %v", err)
	}
	return p
}

func TestPipelineGenerate(t *testing.T) {
	client := &fakeCompletion{text: "<main><h1>Acme Plumbing</h1></main>"}
	p := testPipeline(t, client)

	out, err := p.Generate(context.Background(), sampleRequest())
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if out.ID == "" {
		t.Fatal("expected a generated identifier")
	}
	if out.BusinessName != "Acme Plumbing" {
		t.Fatalf("businessName = %q", out.BusinessName)
	}
	if out.HTMLCode != "<main><h1>Acme Plumbing</h1></main>" {
		t.Fatalf("htmlCode = %q", out.HTMLCode)
	}
	if !strings.Contains(out.CSSCode, "--primary-color") {
		t.Fatalf("cssCode missing palette variables:\n%s", out.CSSCode)
	}
	if out.JSCode != "" {
		t.Fatal("jsCode must be absent without booking")
	}
	if out.StyleApplied != StyleModern {
		t.Fatalf("styleApplied = %q", out.StyleApplied)
	}
	if len(out.FeaturesIncluded) == 0 || out.FeaturesIncluded[0] != "responsive_design" {
		t.Fatalf("features = %v", out.FeaturesIncluded)
	}
	if out.EstimatedImprovement == "" {
		t.Fatal("expected an improvement narrative")
	}
	if out.GeneratedAt.IsZero() {
		t.Fatal("expected a generation timestamp")
	}
	if out.GenerationTimeMs < 0 {
		t.Fatalf("generationTimeMs = %d", out.GenerationTimeMs)
	}
	if client.calls != 1 {
		t.Fatalf("completion calls = %d, want exactly 1", client.calls)
	}
	if client.lastReq.System == "" {
		t.Fatal("expected the fixed system instruction to be sent")
	}
}

func TestPipelineGenerateUniqueIdentifiers(t *testing.T) {
	p := testPipeline(t, &fakeCompletion{text: "<div/>"})

	seen := make(map[string]struct{})
	for i := 0; i < 25; i++ {
		out, err := p.Generate(context.Background(), sampleRequest())
		if err != nil {
			t.Fatalf("Generate error: %v", err)
		}
		if _, dup := seen[out.ID]; dup {
			t.Fatalf("duplicate identifier %q", out.ID)
		}
		seen[out.ID] = struct{}{}
	}
}

func TestPipelineGenerateBooking(t *testing.T) {
	p := testPipeline(t, &fakeCompletion{text: "<div/>"})

	req := sampleRequest()
	req.IncludeBooking = true
	out, err := p.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if !strings.Contains(out.JSCode, "[data-booking]") {
		t.Fatalf("jsCode should be the booking script, got:\n%s", out.JSCode)
	}
}

func TestPipelineGenerateWrapsProviderFailure(t *testing.T) {
	cause := errors.New("provider exploded")
	p := testPipeline(t, &fakeCompletion{failWith: cause})

	out, err := p.Generate(context.Background(), sampleRequest())
	if out != nil {
		t.Fatalf("no partial result expected, got %+v", out)
	}
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected *GenerationError, got %T: %v", err, err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("wrapped error must expose the original cause, got %v", err)
	}
}

func TestPipelineRequiresDependencies(t *testing.T) {
	if _, err := NewPipeline(nil, &fakeCompletion{}); err == nil {
		t.Fatal("nil config must be rejected")
	}
	if _, err := NewPipeline(DefaultConfig(), nil); err == nil {
		t.Fatal("nil client must be rejected")
	}
}
