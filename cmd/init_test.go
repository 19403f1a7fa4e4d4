package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newInitTestRoot() (*bytes.Buffer, func() error) {
	out := &bytes.Buffer{}

	cmd := newRootCmd()
	cmd.AddCommand(newInitCmd())
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs([]string{"init"})

	return out, cmd.Execute
}

func TestInitCmd_WritesSuitegateDefaults(t *testing.T) {
	tempDir := chdirTemp(t)

	out, execute := newInitTestRoot()
	require.NoError(t, execute())
	assert.Contains(t, out.String(), "wrote "+configFileName)

	contents, err := os.ReadFile(filepath.Join(tempDir, configFileName))
	require.NoError(t, err)

	var written struct {
		Version  int    `yaml:"version"`
		Store    string `yaml:"store"`
		Baseline struct {
			Backend      string `yaml:"backend"`
			Branch       string `yaml:"branch"`
			FetchRetries int    `yaml:"fetch_retries"`
		} `yaml:"baseline"`
		Policy struct {
			AllowEqual     bool `yaml:"allow_equal"`
			MaxNewFailures int  `yaml:"max_new_failures"`
		} `yaml:"policy"`
		Suites map[string]struct {
			Format string `yaml:"format"`
		} `yaml:"suites"`
		Log struct {
			Filename string `yaml:"filename"`
		} `yaml:"log"`
	}
	require.NoError(t, yaml.Unmarshal(contents, &written))

	assert.Equal(t, currentConfigVersion, written.Version)
	assert.Equal(t, defaultBackend, written.Baseline.Backend)
	assert.Equal(t, "main", written.Baseline.Branch)
	assert.Equal(t, defaultFetchRetries, written.Baseline.FetchRetries)
	assert.True(t, written.Policy.AllowEqual)
	assert.Zero(t, written.Policy.MaxNewFailures)
	assert.Equal(t, "gnu", written.Suites["gnu"].Format)
	assert.Equal(t, "bfs", written.Suites["bfs"].Format)
	assert.NotEmpty(t, written.Store)
	assert.NotEmpty(t, written.Log.Filename)
}

func TestInitCmd_KeepsExistingFile(t *testing.T) {
	tempDir := chdirTemp(t)

	targetPath := filepath.Join(tempDir, configFileName)
	require.NoError(t, os.WriteFile(targetPath, []byte("policy:\n  allow_equal: false\n"), 0o644))

	_, execute := newInitTestRoot()
	err := execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write config file")

	contents, err := os.ReadFile(targetPath)
	require.NoError(t, err)
	assert.Equal(t, "policy:\n  allow_equal: false\n", string(contents))
}
