package roadmap

import (
	"slices"
	"sort"
	"strings"
)

// InheritDepth is the depth at which items stop computing their own
// ancestry chain and inherit their parent's labels instead.
const InheritDepth = 4

// maxChainLabels caps the ancestry chain; longer chains compress to
// [root, immediate structural parent, self].
const maxChainLabels = 3

// Labeler computes ancestry labels from roadmap prefixes as nodes stream
// out of a traversal. It accumulates prefix, parent, and computed-label
// maps incrementally; labels for a key are deterministic given those maps
// and the key's depth.
type Labeler struct {
	rootPrefix string
	prefixes   map[string]string   // key -> prefix as written in the title
	parents    map[string]string   // key -> hierarchy parent key
	computed   map[string][]string // key -> computed label list
}

// NewLabeler creates a labeler anchored on the root item's prefix. The
// prefix's family (first character) scopes which item prefixes participate:
// an item whose prefix belongs to another family is treated as having none.
func NewLabeler(rootPrefix string) *Labeler {
	return &Labeler{
		rootPrefix: rootPrefix,
		prefixes:   make(map[string]string),
		parents:    make(map[string]string),
		computed:   make(map[string][]string),
	}
}

// Observe records a node's parent relationship and prefix, then computes
// and returns its ancestry labels: 1-3 lowercase strings encoding the
// item's position in the roadmap numbering.
func (l *Labeler) Observe(node Node) []string {
	key := node.Item.Key
	if node.ParentKey != "" {
		l.parents[key] = node.ParentKey
	}
	if prefix, ok := ExtractPrefix(node.Item.Title); ok && SameFamily(prefix, l.rootPrefix) {
		l.prefixes[key] = prefix
	}
	labels := l.ancestry(key, node.Depth)
	l.computed[key] = labels
	return labels
}

// Computed returns the labels previously computed for key, if any.
func (l *Labeler) Computed(key string) ([]string, bool) {
	labels, ok := l.computed[key]
	return labels, ok
}

func (l *Labeler) ancestry(key string, depth int) []string {
	// Deep items inherit rather than recompute; their level of detail is
	// already beyond the labeling scheme's resolution.
	if depth >= InheritDepth {
		if parent, ok := l.parents[key]; ok {
			if labels, ok := l.computed[parent]; ok {
				return labels
			}
		}
		// Unknown parent: fall through and build from the chain.
	}

	var chain []string
	current := key
	for {
		if prefix, ok := l.prefixes[current]; ok {
			chain = append(chain, strings.ToLower(prefix))
		}
		parent, ok := l.parents[current]
		if !ok {
			break
		}
		current = parent
	}
	slices.Reverse(chain) // root-to-self order

	if len(chain) > maxChainLabels {
		return []string{chain[0], chain[len(chain)-2], chain[len(chain)-1]}
	}
	return chain
}

// Missing returns the computed labels absent from current, sorted for
// deterministic output. An empty result means the item needs no write.
func Missing(computed, current []string) []string {
	have := make(map[string]bool, len(current))
	for _, l := range current {
		have[l] = true
	}
	var missing []string
	for _, l := range computed {
		if !have[l] {
			missing = append(missing, l)
		}
	}
	sort.Strings(missing)
	return missing
}
