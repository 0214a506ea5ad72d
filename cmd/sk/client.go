package main

import (
	"fmt"
	"time"

	"github.com/chase-seibert/chase-sidekick/internal/config"
	"github.com/chase-seibert/chase-sidekick/internal/debug"
	"github.com/chase-seibert/chase-sidekick/internal/jira"
)

// newRepository loads the configuration and builds the Jira-backed
// repository every issue command talks through.
func newRepository() (*jira.Repository, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	client := jira.NewClient(cfg.Jira.URL, cfg.Jira.Email, cfg.Jira.APIToken)
	client.HTTPClient.Timeout = time.Duration(cfg.Jira.Timeout) * time.Second
	return jira.NewRepository(client), nil
}

// reportAPIUsage logs the request count and elapsed time for the command.
// Verbose-only; call it deferred with the command start time.
func reportAPIUsage(start time.Time) {
	debug.Logf("%s\n", apiUsageLine(start))
}

func apiUsageLine(start time.Time) string {
	return fmt.Sprintf("%d API calls in %s", debug.APICalls(), time.Since(start).Round(time.Millisecond))
}
