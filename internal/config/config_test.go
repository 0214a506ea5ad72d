package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func clearJiraEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"JIRA_URL", "JIRA_EMAIL", "JIRA_API_TOKEN",
		"SIDEKICK_JIRA_URL", "SIDEKICK_JIRA_EMAIL", "SIDEKICK_JIRA_API_TOKEN",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadFromFile(t *testing.T) {
	clearJiraEnv(t)
	path := writeConfig(t, `jira:
  url: https://example.atlassian.net
  email: me@example.com
  api_token: secret
`)
	t.Setenv("SIDEKICK_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Jira.URL != "https://example.atlassian.net" {
		t.Errorf("URL = %q", cfg.Jira.URL)
	}
	if cfg.Jira.Email != "me@example.com" {
		t.Errorf("Email = %q", cfg.Jira.Email)
	}
	if cfg.Jira.APIToken != "secret" {
		t.Errorf("APIToken = %q", cfg.Jira.APIToken)
	}
	if cfg.Jira.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %d, want default %d", cfg.Jira.Timeout, DefaultTimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadMissingFileIsNotFatal(t *testing.T) {
	clearJiraEnv(t)
	t.Setenv("SIDEKICK_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Jira.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %d", cfg.Jira.Timeout)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	clearJiraEnv(t)
	path := writeConfig(t, `jira:
  url: https://file.atlassian.net
  email: file@example.com
  api_token: file-token
  timeout: 10
`)
	t.Setenv("SIDEKICK_CONFIG", path)
	t.Setenv("JIRA_URL", "https://env.atlassian.net")
	t.Setenv("SIDEKICK_JIRA_EMAIL", "env@example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Jira.URL != "https://env.atlassian.net" {
		t.Errorf("URL = %q, env should win over file", cfg.Jira.URL)
	}
	if cfg.Jira.Email != "env@example.com" {
		t.Errorf("Email = %q", cfg.Jira.Email)
	}
	if cfg.Jira.APIToken != "file-token" {
		t.Errorf("APIToken = %q", cfg.Jira.APIToken)
	}
	if cfg.Jira.Timeout != 10 {
		t.Errorf("Timeout = %d", cfg.Jira.Timeout)
	}
}

func TestEnvOnly(t *testing.T) {
	clearJiraEnv(t)
	t.Setenv("SIDEKICK_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("JIRA_URL", "https://env.atlassian.net")
	t.Setenv("JIRA_EMAIL", "env@example.com")
	t.Setenv("JIRA_API_TOKEN", "env-token")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestValidateListsAllMissingKeys(t *testing.T) {
	cfg := &Config{}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for empty config")
	}
	for _, want := range []string{"jira.url", "jira.email", "jira.api_token"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err.Error(), want)
		}
	}
}

func TestRedactMasksToken(t *testing.T) {
	cfg := &Config{Jira: JiraConfig{URL: "https://x", APIToken: "secret"}}
	red := cfg.Redact()
	if red.Jira.APIToken == "secret" {
		t.Error("token not redacted")
	}
	if cfg.Jira.APIToken != "secret" {
		t.Error("Redact mutated the original")
	}
	if red.Jira.URL != "https://x" {
		t.Error("URL should be preserved")
	}
}

func TestConfigPathEnvOverride(t *testing.T) {
	t.Setenv("SIDEKICK_CONFIG", "/tmp/custom.yaml")
	if got := ConfigPath(); got != "/tmp/custom.yaml" {
		t.Errorf("ConfigPath = %q", got)
	}
}
