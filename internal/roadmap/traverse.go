package roadmap

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// DefaultMaxDepth bounds traversal depth when Options.MaxDepth is unset.
const DefaultMaxDepth = 10

// maxChildResults caps the "parent = KEY" child query.
const maxChildResults = 100

// ErrStopTraversal can be returned from a visit callback to end the walk
// early. Walk swallows it and returns nil.
var ErrStopTraversal = errors.New("stop traversal")

// Options configure a hierarchy traversal.
type Options struct {
	// Project restricts cross-project links and child queries to one
	// project key. Empty traverses across all projects.
	Project string

	// Type narrows which items are reported to the visit callback.
	// Items of other types are still expanded into their descendants.
	Type string

	// MaxDepth bounds recursion depth. Zero means DefaultMaxDepth.
	MaxDepth int
}

// Traverser walks the parent/child and link graph rooted at an item,
// depth-first and pre-order, visiting each reachable key at most once.
// A Traverser holds per-run state (visited set, fetch cache) and is good
// for a single Walk call.
type Traverser struct {
	repo    Repository
	opts    Options
	visited map[string]bool
	// cache maps key to fetched item; a nil entry marks a key known to be
	// unfetchable so later references don't re-fetch it.
	cache map[string]*WorkItem
}

// NewTraverser creates a traverser over the given repository.
func NewTraverser(repo Repository, opts Options) *Traverser {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	return &Traverser{
		repo:    repo,
		opts:    opts,
		visited: make(map[string]bool),
		cache:   make(map[string]*WorkItem),
	}
}

// Walk traverses the hierarchy rooted at rootKey, invoking visit for each
// node in deterministic pre-order (a node before its descendants, linked
// items before children). Unresolvable keys become empty subtrees rather
// than errors. Any other error from visit aborts the walk and is returned;
// ErrStopTraversal ends the walk cleanly.
func (t *Traverser) Walk(ctx context.Context, rootKey string, visit func(Node) error) error {
	err := t.walk(ctx, rootKey, 0, RelRoot, "", visit)
	if errors.Is(err, ErrStopTraversal) {
		return nil
	}
	return err
}

func (t *Traverser) walk(ctx context.Context, key string, depth int, rel Relationship, parentKey string, visit func(Node) error) error {
	if depth > t.opts.MaxDepth || t.visited[key] {
		return nil
	}
	t.visited[key] = true

	item := t.fetch(ctx, key)
	if item == nil {
		return nil
	}

	// The type filter narrows what is reported, not what is traversed:
	// a filtered-out node still contributes its descendants.
	if t.opts.Type == "" || item.IssueType == t.opts.Type {
		if err := visit(Node{Item: item, Depth: depth, Relationship: rel, ParentKey: parentKey}); err != nil {
			return err
		}
	}

	for _, d := range t.descendants(ctx, item) {
		if err := t.walk(ctx, d.key, depth+1, d.rel, key, visit); err != nil {
			return err
		}
	}
	return nil
}

// fetch returns the item for key, consulting the cache first. Fetch
// failures mark the key unfetchable and yield nil (empty subtree).
func (t *Traverser) fetch(ctx context.Context, key string) *WorkItem {
	if item, ok := t.cache[key]; ok {
		return item
	}
	item, err := t.repo.GetItem(ctx, key)
	if err != nil {
		t.cache[key] = nil
		return nil
	}
	t.cache[key] = item
	return item
}

type descendant struct {
	key string
	rel Relationship
}

// descendants collects an item's traversal candidates in fixed order:
// linked items first, then children from the "parent = KEY" query.
// Repository failures here are swallowed, producing an empty (or partial)
// descendant set for this node only.
func (t *Traverser) descendants(ctx context.Context, item *WorkItem) []descendant {
	var out []descendant

	var uncached []string
	for _, link := range item.Links {
		if isCloneLink(link) {
			continue
		}
		key := link.TargetKey
		if key == "" || t.visited[key] {
			continue
		}
		if t.opts.Project != "" && !strings.HasPrefix(key, t.opts.Project+"-") {
			continue
		}
		out = append(out, descendant{key: key, rel: RelLinked})
		if _, ok := t.cache[key]; !ok {
			uncached = append(uncached, key)
		}
	}

	// One batched lookup for linked candidates keeps the per-node call
	// count at two regardless of link fan-out.
	t.prefetch(ctx, uncached)

	// The child query is always issued; its results are cached even when
	// nothing will be reported at this node.
	jql := fmt.Sprintf("parent = %s", item.Key)
	if t.opts.Project != "" {
		jql += fmt.Sprintf(" AND project = %s", t.opts.Project)
	}
	if t.opts.Type != "" {
		jql += fmt.Sprintf(" AND issuetype = %q", t.opts.Type)
	}
	children, err := t.repo.QueryItems(ctx, jql, maxChildResults)
	if err != nil {
		return out
	}
	for _, child := range children {
		if child.Key == "" || t.visited[child.Key] {
			continue
		}
		t.cache[child.Key] = child
		out = append(out, descendant{key: child.Key, rel: RelChild})
	}
	return out
}

// prefetch caches linked candidates in a single "key IN" query. A failure
// is silent; the keys fall back to individual fetches during recursion.
func (t *Traverser) prefetch(ctx context.Context, keys []string) {
	if len(keys) == 0 {
		return
	}
	var jql string
	if len(keys) == 1 {
		jql = fmt.Sprintf("key = %s", keys[0])
	} else {
		jql = fmt.Sprintf("key IN (%s)", strings.Join(keys, ", "))
	}
	items, err := t.repo.QueryItems(ctx, jql, len(keys))
	if err != nil {
		return
	}
	for _, item := range items {
		if item.Key != "" {
			t.cache[item.Key] = item
		}
	}
}

// isCloneLink reports whether a link marks a clone relationship. Clone
// links are never traversed.
func isCloneLink(l Link) bool {
	for _, s := range []string{l.Type, l.Inward, l.Outward} {
		if strings.Contains(strings.ToLower(s), "clone") {
			return true
		}
	}
	return false
}
