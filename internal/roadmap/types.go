// Package roadmap walks an issue tracker's parent/child and link graph and
// applies roadmap-prefix ancestry labels to the items it finds.
//
// It defines the Repository interface (the slice of a tracker the engines
// consume) plus three pieces: a depth-first hierarchy traverser, an
// ancestry-label computer, and an orchestrator that drives both and writes
// labels back through the repository.
package roadmap

import (
	"context"
	"errors"
	"strings"
)

// ErrNotFound is returned (wrapped) by Repository.GetItem when the key does
// not exist in the tracker.
var ErrNotFound = errors.New("work item not found")

// Repository provides the tracker operations the roadmap engines need.
// Implementations live at the boundary (e.g. the Jira client adapter);
// everything in this package operates on typed WorkItems only.
type Repository interface {
	// GetItem fetches a single item by key. A missing key yields an error
	// satisfying errors.Is(err, ErrNotFound).
	GetItem(ctx context.Context, key string) (*WorkItem, error)

	// QueryItems fetches items matching a query expression (JQL for Jira),
	// returning at most maxResults items.
	QueryItems(ctx context.Context, query string, maxResults int) ([]*WorkItem, error)

	// AddLabel adds a label to an item, preserving its existing labels.
	// Adding a label the item already has is a no-op.
	AddLabel(ctx context.Context, key, label string) error
}

// Relationship describes how a node was reached from its hierarchy parent.
type Relationship string

const (
	RelRoot   Relationship = "root"
	RelChild  Relationship = "child"
	RelLinked Relationship = "linked"
)

// Link is one outbound link descriptor on a work item.
type Link struct {
	Type      string `json:"type"`       // link type name, e.g. "Blocks", "Cloners"
	Inward    string `json:"inward"`     // inward direction text, e.g. "is blocked by"
	Outward   string `json:"outward"`    // outward direction text, e.g. "blocks"
	TargetKey string `json:"target_key"` // key of the item on the other end
}

// WorkItem is an immutable snapshot of a tracker issue as fetched.
// Mutations happen only through Repository write calls, never in place.
type WorkItem struct {
	Key       string   `json:"key"` // "PROJECT-NUMBER" shaped, globally unique
	Title     string   `json:"title"`
	Status    string   `json:"status,omitempty"`
	Assignee  string   `json:"assignee,omitempty"`
	Labels    []string `json:"labels,omitempty"`
	IssueType string   `json:"issue_type,omitempty"`
	ParentKey string   `json:"parent_key,omitempty"` // empty when the item has no parent
	Links     []Link   `json:"links,omitempty"`
}

// Project returns the project key derived from the item key prefix
// (e.g. "DBX" for "DBX-1734").
func (w *WorkItem) Project() string {
	if idx := strings.LastIndex(w.Key, "-"); idx > 0 {
		return w.Key[:idx]
	}
	return ""
}

// HasLabel reports whether the item currently carries the given label.
func (w *WorkItem) HasLabel(label string) bool {
	for _, l := range w.Labels {
		if l == label {
			return true
		}
	}
	return false
}

// Node is one entry in the traversal sequence.
type Node struct {
	Item         *WorkItem    `json:"item"`
	Depth        int          `json:"depth"`        // 0 for the root; otherwise parent's depth + 1
	Relationship Relationship `json:"relationship"` // how this node was reached
	ParentKey    string       `json:"parent_key,omitempty"` // empty for the root
}
