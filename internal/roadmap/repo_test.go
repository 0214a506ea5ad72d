package roadmap

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// fakeRepo is an in-memory Repository that answers the JQL shapes the
// traverser emits: "key = K", "key IN (...)", and "parent = K" with
// optional project/issuetype narrowing.
type fakeRepo struct {
	items    map[string]*WorkItem
	getErr   map[string]error         // per-key GetItem failures
	queryErr func(jql string) error   // injected query failures
	labelErr map[string]error         // "KEY/label" -> AddLabel failure

	getCalls map[string]int
	queries  []string
	added    []string // "KEY/label" in call order
}

func newFakeRepo(items ...*WorkItem) *fakeRepo {
	f := &fakeRepo{
		items:    make(map[string]*WorkItem),
		getErr:   make(map[string]error),
		labelErr: make(map[string]error),
		getCalls: make(map[string]int),
	}
	for _, item := range items {
		f.items[item.Key] = item
	}
	return f
}

func (f *fakeRepo) GetItem(_ context.Context, key string) (*WorkItem, error) {
	f.getCalls[key]++
	if err := f.getErr[key]; err != nil {
		return nil, err
	}
	item, ok := f.items[key]
	if !ok {
		return nil, fmt.Errorf("%s: %w", key, ErrNotFound)
	}
	return item, nil
}

func (f *fakeRepo) QueryItems(_ context.Context, query string, maxResults int) ([]*WorkItem, error) {
	f.queries = append(f.queries, query)
	if f.queryErr != nil {
		if err := f.queryErr(query); err != nil {
			return nil, err
		}
	}

	switch {
	case strings.HasPrefix(query, "key = "):
		key := strings.TrimPrefix(query, "key = ")
		if item, ok := f.items[key]; ok {
			return []*WorkItem{item}, nil
		}
		return nil, nil

	case strings.HasPrefix(query, "key IN ("):
		inner := strings.TrimSuffix(strings.TrimPrefix(query, "key IN ("), ")")
		var out []*WorkItem
		for _, key := range strings.Split(inner, ",") {
			if item, ok := f.items[strings.TrimSpace(key)]; ok {
				out = append(out, item)
			}
		}
		return out, nil

	case strings.HasPrefix(query, "parent = "):
		parent, project, issueType := parseChildQuery(query)
		var keys []string
		for key, item := range f.items {
			if item.ParentKey != parent {
				continue
			}
			if project != "" && item.Project() != project {
				continue
			}
			if issueType != "" && item.IssueType != issueType {
				continue
			}
			keys = append(keys, key)
		}
		sort.Strings(keys)
		var out []*WorkItem
		for _, key := range keys {
			if len(out) >= maxResults {
				break
			}
			out = append(out, f.items[key])
		}
		return out, nil
	}

	return nil, fmt.Errorf("fakeRepo: unsupported query %q", query)
}

func (f *fakeRepo) AddLabel(_ context.Context, key, label string) error {
	if err := f.labelErr[key+"/"+label]; err != nil {
		return err
	}
	f.added = append(f.added, key+"/"+label)
	if item, ok := f.items[key]; ok && !item.HasLabel(label) {
		item.Labels = append(item.Labels, label)
	}
	return nil
}

func parseChildQuery(query string) (parent, project, issueType string) {
	parts := strings.Split(query, " AND ")
	parent = strings.TrimPrefix(parts[0], "parent = ")
	for _, part := range parts[1:] {
		switch {
		case strings.HasPrefix(part, "project = "):
			project = strings.TrimPrefix(part, "project = ")
		case strings.HasPrefix(part, "issuetype = "):
			issueType = strings.Trim(strings.TrimPrefix(part, "issuetype = "), `"`)
		}
	}
	return parent, project, issueType
}

// item builds a WorkItem for tests. parent may be empty.
func item(key, title, parent string, links ...Link) *WorkItem {
	return &WorkItem{
		Key:       key,
		Title:     title,
		IssueType: "Story",
		ParentKey: parent,
		Links:     links,
	}
}

// linkTo builds a plain (non-clone) link descriptor.
func linkTo(key string) Link {
	return Link{Type: "Relates", Inward: "relates to", Outward: "relates to", TargetKey: key}
}
