package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/chase-seibert/chase-sidekick/internal/roadmap"
	"github.com/chase-seibert/chase-sidekick/internal/ui"
)

// outputJSON outputs data as pretty-printed JSON to stdout.
func outputJSON(v interface{}) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}
}

// formatItem renders the one-line microformat used by all issue listings:
// KEY: summary [status] (assignee) [label1, label2]
func formatItem(item *roadmap.WorkItem) string {
	var b strings.Builder
	b.WriteString(ui.RenderKey(item.Key))
	b.WriteString(": ")
	b.WriteString(item.Title)
	if item.Status != "" {
		b.WriteString(" [")
		b.WriteString(ui.RenderStatus(item.Status))
		b.WriteString("]")
	}
	if item.Assignee != "" {
		b.WriteString(" (")
		b.WriteString(item.Assignee)
		b.WriteString(")")
	}
	if len(item.Labels) > 0 {
		b.WriteString(" [")
		b.WriteString(ui.RenderLabels(strings.Join(item.Labels, ", ")))
		b.WriteString("]")
	}
	return b.String()
}

// printItems writes one microformat line per item, or the JSON array when
// --json is set.
func printItems(items []*roadmap.WorkItem) {
	if jsonOutput {
		outputJSON(items)
		return
	}
	for _, item := range items {
		fmt.Println(formatItem(item))
	}
}
