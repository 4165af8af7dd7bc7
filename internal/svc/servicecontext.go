package svc

import (
	"log"

	"sitegen-api/internal/config"
	generatorpkg "sitegen-api/pkg/generator"
	llmpkg "sitegen-api/pkg/llm"
	renderpkg "sitegen-api/pkg/render"
)

type ServiceContext struct {
	Config config.Config

	LLMConfig *llmpkg.Config
	LLMClient llmpkg.CompletionClient

	GeneratorConfig *generatorpkg.Config
	Generator       generatorpkg.Generator

	RenderConfig *renderpkg.Config
	Render       *renderpkg.Engine
}

func NewServiceContext(c config.Config) *ServiceContext {
	svc := &ServiceContext{Config: c}

	svc.LLMConfig = c.LLM.Value
	if svc.LLMConfig == nil {
		svc.LLMConfig = llmpkg.DefaultConfig()
	}
	client, err := llmpkg.NewClient(svc.LLMConfig)
	if err != nil {
		log.Fatalf("failed to init llm client: %v", err)
	}
	svc.LLMClient = client

	svc.GeneratorConfig = c.Generator.Value
	if svc.GeneratorConfig == nil {
		svc.GeneratorConfig = generatorpkg.DefaultConfig()
	}
	pipeline, err := generatorpkg.NewPipeline(svc.GeneratorConfig, svc.LLMClient)
	if err != nil {
		log.Fatalf("failed to init generation pipeline: %v", err)
	}
	svc.Generator = pipeline

	svc.RenderConfig = c.Render.Value
	if svc.RenderConfig == nil {
		svc.RenderConfig = renderpkg.DefaultConfig()
	}
	// Constructed uninitialized. The main entrypoint calls Initialize so a
	// missing browser disables previews without blocking startup.
	svc.Render = renderpkg.NewEngine(svc.RenderConfig)

	return svc
}
