package confkit

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type sampleSection struct {
	Name string `yaml:"name"`
}

func loadSample(path string) (*sampleSection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s sampleSection
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func writeSection(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("name: sitegen\n"), 0o644))
	return path
}

func TestSectionHydrateRelative(t *testing.T) {
	dir := t.TempDir()
	path := writeSection(t, dir, "section.yaml")

	s := Section[sampleSection]{File: "section.yaml"}
	require.NoError(t, s.Hydrate(dir, loadSample))
	require.NotNil(t, s.Value)
	require.Equal(t, "sitegen", s.Value.Name)
	require.Equal(t, path, s.File)
}

func TestSectionHydrateAbsoluteAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := writeSection(t, dir, "section.yaml")

	abs := Section[sampleSection]{File: path}
	require.NoError(t, abs.Hydrate("/elsewhere", loadSample))
	require.Equal(t, path, abs.File)
	require.NotNil(t, abs.Value)

	t.Setenv("CONF_DIR", dir)
	env := Section[sampleSection]{File: "${CONF_DIR}/section.yaml"}
	require.NoError(t, env.Hydrate("/elsewhere", loadSample))
	require.Equal(t, filepath.Join(dir, "section.yaml"), env.File)
	require.NotNil(t, env.Value)
}

func TestSectionHydrateEmptyFile(t *testing.T) {
	s := Section[sampleSection]{}
	require.NoError(t, s.Hydrate(t.TempDir(), loadSample))
	require.Nil(t, s.Value)
}

func TestSectionHydrateLoadFailure(t *testing.T) {
	s := Section[sampleSection]{File: "missing.yaml"}
	err := s.Hydrate(t.TempDir(), loadSample)
	require.Error(t, err)
	require.Nil(t, s.Value)

	boom := Section[sampleSection]{File: "any.yaml"}
	err = boom.Hydrate(t.TempDir(), func(string) (*sampleSection, error) {
		return nil, errors.New("bad section")
	})
	require.ErrorContains(t, err, "bad section")
}
