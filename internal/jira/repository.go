package jira

import (
	"context"
	"errors"
	"fmt"

	"github.com/chase-seibert/chase-sidekick/internal/roadmap"
)

// Repository adapts Client to the roadmap.Repository interface.
type Repository struct {
	client *Client
}

// NewRepository wraps a Jira client as a roadmap repository.
func NewRepository(client *Client) *Repository {
	return &Repository{client: client}
}

// GetItem fetches a single work item by key.
func (r *Repository) GetItem(ctx context.Context, key string) (*roadmap.WorkItem, error) {
	issue, err := r.client.GetIssue(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", key, roadmap.ErrNotFound)
		}
		return nil, err
	}
	return ToWorkItem(issue), nil
}

// QueryItems fetches work items matching a JQL expression.
func (r *Repository) QueryItems(ctx context.Context, jql string, maxResults int) ([]*roadmap.WorkItem, error) {
	issues, err := r.client.SearchIssues(ctx, jql, maxResults)
	if err != nil {
		return nil, err
	}
	items := make([]*roadmap.WorkItem, 0, len(issues))
	for i := range issues {
		items = append(items, ToWorkItem(&issues[i]))
	}
	return items, nil
}

// AddLabel adds a label to an item, preserving its existing labels.
func (r *Repository) AddLabel(ctx context.Context, key, label string) error {
	return r.client.AddLabel(ctx, key, label)
}

// RemoveLabel removes a label from an item. Not part of the
// roadmap.Repository interface; used by the label CLI commands.
func (r *Repository) RemoveLabel(ctx context.Context, key, label string) error {
	return r.client.RemoveLabel(ctx, key, label)
}

// ToWorkItem converts a Jira API issue to the typed roadmap snapshot.
func ToWorkItem(issue *Issue) *roadmap.WorkItem {
	item := &roadmap.WorkItem{
		Key:    issue.Key,
		Title:  issue.Fields.Summary,
		Labels: issue.Fields.Labels,
	}
	if issue.Fields.Status != nil {
		item.Status = issue.Fields.Status.Name
	}
	if issue.Fields.IssueType != nil {
		item.IssueType = issue.Fields.IssueType.Name
	}
	if issue.Fields.Assignee != nil {
		item.Assignee = issue.Fields.Assignee.DisplayName
	}
	if issue.Fields.Parent != nil {
		item.ParentKey = issue.Fields.Parent.Key
	}
	for _, link := range issue.Fields.IssueLinks {
		target := ""
		if link.InwardIssue != nil {
			target = link.InwardIssue.Key
		} else if link.OutwardIssue != nil {
			target = link.OutwardIssue.Key
		}
		if target == "" {
			continue
		}
		item.Links = append(item.Links, roadmap.Link{
			Type:      link.Type.Name,
			Inward:    link.Type.Inward,
			Outward:   link.Type.Outward,
			TargetKey: target,
		})
	}
	return item
}
