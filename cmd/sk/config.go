package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/chase-seibert/chase-sidekick/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show resolved configuration",
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the full resolved configuration (secrets redacted)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		red := cfg.Redact()
		if jsonOutput {
			outputJSON(redactedView(red))
			return nil
		}
		out, err := yaml.Marshal(redactedView(red))
		if err != nil {
			return fmt.Errorf("render config: %w", err)
		}
		fmt.Printf("# %s\n%s", config.ConfigPath(), out)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Show one configuration value",
	Long:  `Keys: jira.url, jira.email, jira.api_token, jira.timeout. Secrets are redacted.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		red := cfg.Redact()

		var value interface{}
		switch args[0] {
		case "jira.url":
			value = red.Jira.URL
		case "jira.email":
			value = red.Jira.Email
		case "jira.api_token":
			value = red.Jira.APIToken
		case "jira.timeout":
			value = red.Jira.Timeout
		default:
			return fmt.Errorf("unknown config key %q", args[0])
		}

		if jsonOutput {
			outputJSON(map[string]interface{}{args[0]: value})
			return nil
		}
		fmt.Println(value)
		return nil
	},
}

// redactedView shapes the config for display with stable lowercase keys.
func redactedView(c *config.Config) map[string]interface{} {
	return map[string]interface{}{
		"jira": map[string]interface{}{
			"url":       c.Jira.URL,
			"email":     c.Jira.Email,
			"api_token": c.Jira.APIToken,
			"timeout":   c.Jira.Timeout,
		},
	}
}

func init() {
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}
