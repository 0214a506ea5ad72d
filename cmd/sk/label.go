package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var labelCmd = &cobra.Command{
	Use:   "label",
	Short: "Add or remove issue labels",
}

var labelAddCmd = &cobra.Command{
	Use:   "add KEY LABEL",
	Short: "Add a label to an issue",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := newRepository()
		if err != nil {
			return err
		}
		defer reportAPIUsage(time.Now())

		key, label := args[0], args[1]
		if err := repo.AddLabel(rootCtx, key, label); err != nil {
			return fmt.Errorf("add label %s to %s: %w", label, key, err)
		}
		if jsonOutput {
			outputJSON(map[string]string{"key": key, "label": label, "action": "added"})
			return nil
		}
		fmt.Printf("%s: added [%s]\n", key, label)
		return nil
	},
}

var labelRemoveCmd = &cobra.Command{
	Use:   "remove KEY LABEL",
	Short: "Remove a label from an issue",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := newRepository()
		if err != nil {
			return err
		}
		defer reportAPIUsage(time.Now())

		key, label := args[0], args[1]
		if err := repo.RemoveLabel(rootCtx, key, label); err != nil {
			return fmt.Errorf("remove label %s from %s: %w", label, key, err)
		}
		if jsonOutput {
			outputJSON(map[string]string{"key": key, "label": label, "action": "removed"})
			return nil
		}
		fmt.Printf("%s: removed [%s]\n", key, label)
		return nil
	},
}

func init() {
	labelCmd.AddCommand(labelAddCmd)
	labelCmd.AddCommand(labelRemoveCmd)
	rootCmd.AddCommand(labelCmd)
}
