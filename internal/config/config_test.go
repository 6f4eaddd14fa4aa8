package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(envConfig, "")
	t.Setenv(envProfile, "")
	t.Setenv(envDB, "")
	return dir
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ExplicitMissingFails(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_EnvPathMissingFails(t *testing.T) {
	dir := isolate(t)
	t.Setenv(envConfig, filepath.Join(dir, "learnighub.yaml"))

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "learnighub.yaml")
}

func TestLoad_XDGFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "learninghub", "config.yaml"), `
profile: alice
limits:
  quizzes: 30
generation:
  temperature: 0.2
server:
  mode: debug
`)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "alice", cfg.Profile)
	assert.Equal(t, 30, cfg.Limits.Quizzes)
	assert.Equal(t, 120, cfg.Limits.Flashcards, "unset keys keep defaults")
	assert.Equal(t, 0.2, cfg.Generation.Temperature)
	assert.Equal(t, ModeDebug, cfg.Server.Mode)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, "profile: alice\ndb: /tmp/a.db\n")
	t.Setenv(envConfig, path)
	t.Setenv(envProfile, "bob")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "bob", cfg.Profile)
	assert.Equal(t, "/tmp/a.db", cfg.DB)
}

func TestParse_UnknownField(t *testing.T) {
	cfg := Default()
	err := Parse([]byte("limits:\n  quizes: 3\n"), &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quizes")
}

func TestParse_MultipleDocuments(t *testing.T) {
	cfg := Default()
	err := Parse([]byte("profile: a\n---\nprofile: b\n"), &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multiple YAML documents")
}

func TestParse_SecondDocumentRejected(t *testing.T) {
	tests := []string{
		"profile: a\n---\nprofile: b\n",
		"profile: a\n---\nnot_a_field: 1\n",
		"profile: a\n---\n{}\n",
	}
	for _, doc := range tests {
		cfg := Default()
		err := Parse([]byte(doc), &cfg)
		if err == nil || !strings.Contains(err.Error(), "multiple YAML documents") {
			t.Errorf("Parse(%q) = %v, want multiple documents error", doc, err)
		}
	}
}

func TestParse_Empty(t *testing.T) {
	cfg := Default()
	require.NoError(t, Parse(nil, &cfg))
	assert.Equal(t, Default(), cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero quiz limit", func(c *Config) { c.Limits.Quizzes = 0 }, "limits.quizzes"},
		{"negative flashcards", func(c *Config) { c.Limits.Flashcards = -1 }, "limits.flashcards"},
		{"bad mode", func(c *Config) { c.Server.Mode = "prod" }, "server.mode"},
		{"hot temperature", func(c *Config) { c.Generation.Temperature = 1.5 }, "temperature"},
		{"no profile", func(c *Config) { c.Profile = "" }, "profile"},
		{"no burst", func(c *Config) { c.Server.Burst = 0 }, "burst"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, want error mentioning %q", err, tt.want)
			}
		})
	}
}

func TestPath(t *testing.T) {
	dir := isolate(t)

	assert.Equal(t, "/x.yaml", Path("/x.yaml"))
	assert.Equal(t, filepath.Join(dir, "learninghub", "config.yaml"), Path(""))

	t.Setenv(envConfig, "/env.yaml")
	assert.Equal(t, "/env.yaml", Path(""))
}
