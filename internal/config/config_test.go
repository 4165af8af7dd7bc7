package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadHydratesSections(t *testing.T) {
	t.Setenv("NO_DOTENV", "1")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	dir := t.TempDir()
	tmpl := writeConfig(t, dir, "homepage.tmpl", "Build a page for {{ .BusinessName }}.")
	writeConfig(t, dir, "llm.yaml", "model: gpt-4o-mini\n")
	writeConfig(t, dir, "generator.yaml", "prompt_template: \""+tmpl+"\"\ncompletion_timeout: \"60s\"\n")
	writeConfig(t, dir, "render.yaml", "navigation_timeout: \"15s\"\n")
	main := writeConfig(t, dir, "sitegen.yaml", `
Name: sitegen-api
Host: 127.0.0.1
Port: 8888
Env: test

LLM:
  File: llm.yaml
Generator:
  File: generator.yaml
Render:
  File: render.yaml
`)

	cfg, err := Load(main)
	require.NoError(t, err)
	require.True(t, cfg.IsTestEnv())
	require.Equal(t, dir, cfg.BaseDir())
	require.Equal(t, main, cfg.MainPath())

	require.NotNil(t, cfg.LLM.Value)
	require.Equal(t, "sk-test", cfg.LLM.Value.APIKey)
	require.NotNil(t, cfg.Generator.Value)
	require.Equal(t, tmpl, cfg.Generator.Value.PromptTemplate)
	require.NotNil(t, cfg.Render.Value)
	require.Equal(t, 4, cfg.Render.Value.MaxConcurrentCaptures)
}

func TestLoadWithoutSections(t *testing.T) {
	t.Setenv("NO_DOTENV", "1")

	main := writeConfig(t, t.TempDir(), "sitegen.yaml", `
Name: sitegen-api
Host: 127.0.0.1
Port: 8888
`)
	cfg, err := Load(main)
	require.NoError(t, err)
	require.Equal(t, "dev", cfg.Env)
	require.Nil(t, cfg.LLM.Value)
	require.Nil(t, cfg.Generator.Value)
	require.Nil(t, cfg.Render.Value)
}

func TestLoadRejectsUnknownEnv(t *testing.T) {
	t.Setenv("NO_DOTENV", "1")

	main := writeConfig(t, t.TempDir(), "sitegen.yaml", `
Name: sitegen-api
Host: 127.0.0.1
Port: 8888
Env: staging
`)
	_, err := Load(main)
	require.Error(t, err)
	require.Contains(t, err.Error(), "env")
}

func TestLoadMissingSectionFileFails(t *testing.T) {
	t.Setenv("NO_DOTENV", "1")

	main := writeConfig(t, t.TempDir(), "sitegen.yaml", `
Name: sitegen-api
Host: 127.0.0.1
Port: 8888
Render:
  File: nope.yaml
`)
	_, err := Load(main)
	require.Error(t, err)
	require.Contains(t, err.Error(), "render")
}
