package roadmap

import (
	"context"
	"fmt"
	"strings"
)

// Stats aggregates the outcome of one labeling run.
type Stats struct {
	Processed int `json:"processed"` // items that had labels attempted
	Labeled   int `json:"labeled"`   // items with at least one label attempt
	Skipped   int `json:"skipped"`   // items whose labels were already correct
	Errors    int `json:"errors"`    // individual label writes that failed
}

// Orchestrator drives the traverser and labeler over one roadmap and
// applies (or previews) label writes through the repository.
//
// A run is a single synchronous pass with no persisted state. Interrupting
// it leaves already-written labels in place; re-running is safe because
// label-add is idempotent and already-correct items are skipped.
type Orchestrator struct {
	Repo     Repository
	Project  string // optional project filter for the traversal
	MaxDepth int    // zero means DefaultMaxDepth
	DryRun   bool   // preview changes without writing
	Limit    int    // stop after this many items reach labeled status (0 = no limit)

	// Callbacks for streaming per-item feedback (optional).
	OnMessage func(msg string)
	OnWarning func(msg string)
}

// Run labels the hierarchy rooted at rootKey and returns aggregate
// counters. A root without an extractable roadmap prefix is fatal: the
// run aborts before any traversal or mutation.
func (o *Orchestrator) Run(ctx context.Context, rootKey string) (Stats, error) {
	var stats Stats

	root, err := o.Repo.GetItem(ctx, rootKey)
	if err != nil {
		return stats, fmt.Errorf("fetch root %s: %w", rootKey, err)
	}
	rootPrefix, ok := ExtractPrefix(root.Title)
	if !ok {
		return stats, fmt.Errorf("root issue %s has no roadmap prefix in title %q", rootKey, root.Title)
	}

	labeler := NewLabeler(rootPrefix)
	traverser := NewTraverser(o.Repo, Options{Project: o.Project, MaxDepth: o.MaxDepth})

	err = traverser.Walk(ctx, rootKey, func(node Node) error {
		key := node.Item.Key
		computed := labeler.Observe(node)
		missing := Missing(computed, node.Item.Labels)

		if len(missing) == 0 {
			stats.Skipped++
			o.msg("%s: already has correct labels, skipped", key)
			return nil
		}

		inherited := ""
		if node.Depth >= InheritDepth {
			inherited = " (inherited)"
		}

		if o.DryRun {
			o.msg("%s: would add [%s]%s", key, strings.Join(missing, ", "), inherited)
		} else {
			failed := 0
			// Each label write is independent: one failure doesn't block
			// the item's remaining labels or abort the run.
			for _, label := range missing {
				if err := o.Repo.AddLabel(ctx, key, label); err != nil {
					stats.Errors++
					failed++
					o.warn("add label %q to %s: %v", label, key, err)
				}
			}
			suffix := inherited
			if failed > 0 {
				suffix += fmt.Sprintf(" (errors: %d)", failed)
			}
			o.msg("[%d] %s: added [%s]%s", stats.Processed+1, key, strings.Join(missing, ", "), suffix)
		}

		stats.Processed++
		stats.Labeled++
		if o.Limit > 0 && stats.Labeled >= o.Limit {
			return ErrStopTraversal
		}
		return nil
	})
	return stats, err
}

func (o *Orchestrator) msg(format string, args ...interface{}) {
	if o.OnMessage != nil {
		o.OnMessage(fmt.Sprintf(format, args...))
	}
}

func (o *Orchestrator) warn(format string, args ...interface{}) {
	if o.OnWarning != nil {
		o.OnWarning(fmt.Sprintf(format, args...))
	}
}
