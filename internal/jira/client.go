// Package jira provides HTTP access to a Jira Cloud instance and adapts
// it to the roadmap.Repository interface.
package jira

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/chase-seibert/chase-sidekick/internal/debug"
)

// ErrNotFound indicates the requested issue key does not exist.
var ErrNotFound = errors.New("issue not found")

// Issue represents a Jira issue from the REST API.
type Issue struct {
	ID     string      `json:"id"`
	Key    string      `json:"key"`
	Self   string      `json:"self"`
	Fields IssueFields `json:"fields"`
}

// IssueFields contains the fields of a Jira issue.
type IssueFields struct {
	Summary     string          `json:"summary"`
	Description json.RawMessage `json:"description"` // ADF (Atlassian Document Format) or plain text
	Status      *StatusField    `json:"status"`
	IssueType   *IssueTypeField `json:"issuetype"`
	Project     *ProjectField   `json:"project"`
	Assignee    *UserField      `json:"assignee"`
	Labels      []string        `json:"labels"`
	Parent      *ParentField    `json:"parent"`
	IssueLinks  []IssueLink     `json:"issuelinks"`
	Created     string          `json:"created"`
	Updated     string          `json:"updated"`
}

// StatusField represents a Jira issue status.
type StatusField struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// IssueTypeField represents a Jira issue type.
type IssueTypeField struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProjectField represents a Jira project.
type ProjectField struct {
	ID  string `json:"id"`
	Key string `json:"key"`
}

// UserField represents a Jira user.
type UserField struct {
	AccountID    string `json:"accountId"`
	DisplayName  string `json:"displayName"`
	EmailAddress string `json:"emailAddress"`
}

// ParentField represents the parent reference on a subtask or child issue.
type ParentField struct {
	ID  string `json:"id"`
	Key string `json:"key"`
}

// IssueLink represents one entry in an issue's issuelinks field. Exactly
// one of InwardIssue/OutwardIssue is set depending on link direction.
type IssueLink struct {
	ID           string       `json:"id"`
	Type         LinkType     `json:"type"`
	InwardIssue  *LinkedIssue `json:"inwardIssue"`
	OutwardIssue *LinkedIssue `json:"outwardIssue"`
}

// LinkType describes an issue link type with its direction texts.
type LinkType struct {
	Name    string `json:"name"`
	Inward  string `json:"inward"`
	Outward string `json:"outward"`
}

// LinkedIssue is the stub issue on the far side of a link.
type LinkedIssue struct {
	ID  string `json:"id"`
	Key string `json:"key"`
}

// SearchResult represents a Jira JQL search response.
type SearchResult struct {
	StartAt    int     `json:"startAt"`
	MaxResults int     `json:"maxResults"`
	Total      int     `json:"total"`
	Issues     []Issue `json:"issues"`
}

// searchFields is the field projection requested on every get/search call.
const searchFields = "summary,description,status,assignee,labels,issuetype,project,parent,issuelinks,created,updated"

// Client provides HTTP access to a Jira instance.
type Client struct {
	URL        string
	Username   string
	APIToken   string
	HTTPClient *http.Client
}

// NewClient creates a new Jira client authenticated as username/apiToken.
func NewClient(url, username, apiToken string) *Client {
	return &Client{
		URL:      strings.TrimSuffix(url, "/"),
		Username: username,
		APIToken: apiToken,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GetIssue fetches a single Jira issue by key (e.g., "PROJ-123").
// A missing key yields an error satisfying errors.Is(err, ErrNotFound).
func (c *Client) GetIssue(ctx context.Context, key string) (*Issue, error) {
	apiURL := fmt.Sprintf("%s/rest/api/3/issue/%s?fields=%s", c.URL, url.PathEscape(key), searchFields)

	body, err := c.doRequest(ctx, "GET", apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("get issue %s: %w", key, err)
	}

	var issue Issue
	if err := json.Unmarshal(body, &issue); err != nil {
		return nil, fmt.Errorf("parse issue response: %w", err)
	}
	return &issue, nil
}

// SearchIssues queries Jira using JQL and returns up to maxResults issues.
func (c *Client) SearchIssues(ctx context.Context, jql string, maxResults int) ([]Issue, error) {
	params := url.Values{
		"jql":        {jql},
		"fields":     {searchFields},
		"maxResults": {strconv.Itoa(maxResults)},
	}
	apiURL := fmt.Sprintf("%s/rest/api/3/search/jql?%s", c.URL, params.Encode())

	body, err := c.doRequest(ctx, "GET", apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("search issues: %w", err)
	}

	var result SearchResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("parse search response: %w", err)
	}
	return result.Issues, nil
}

// UpdateIssue updates fields on an existing Jira issue by key.
func (c *Client) UpdateIssue(ctx context.Context, key string, fields map[string]interface{}) error {
	payload := map[string]interface{}{"fields": fields}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal update request: %w", err)
	}

	apiURL := fmt.Sprintf("%s/rest/api/3/issue/%s", c.URL, url.PathEscape(key))

	if _, err := c.doRequest(ctx, "PUT", apiURL, data); err != nil {
		return fmt.Errorf("update issue %s: %w", key, err)
	}
	return nil
}

// AddLabel adds a label to an issue, preserving its existing labels.
// The read-then-write is not atomic; a concurrent external modification
// between the two calls can be lost.
func (c *Client) AddLabel(ctx context.Context, key, label string) error {
	issue, err := c.GetIssue(ctx, key)
	if err != nil {
		return err
	}
	for _, l := range issue.Fields.Labels {
		if l == label {
			return nil
		}
	}
	labels := append(issue.Fields.Labels, label)
	return c.UpdateIssue(ctx, key, map[string]interface{}{"labels": labels})
}

// RemoveLabel removes a label from an issue, preserving its other labels.
func (c *Client) RemoveLabel(ctx context.Context, key, label string) error {
	issue, err := c.GetIssue(ctx, key)
	if err != nil {
		return err
	}
	var labels []string
	found := false
	for _, l := range issue.Fields.Labels {
		if l == label {
			found = true
			continue
		}
		labels = append(labels, l)
	}
	if !found {
		return nil
	}
	if labels == nil {
		labels = []string{}
	}
	return c.UpdateIssue(ctx, key, map[string]interface{}{"labels": labels})
}

// doRequest executes an authenticated HTTP request and returns the response body.
func (c *Client) doRequest(ctx context.Context, method, apiURL string, body []byte) ([]byte, error) {
	if c.URL == "" {
		return nil, fmt.Errorf("jira URL not configured")
	}
	if c.APIToken == "" {
		return nil, fmt.Errorf("jira API token not configured")
	}

	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, apiURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	c.setAuth(req)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "sidekick/1.0")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	debug.CountAPICall()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	// PUT returns 204 No Content on success
	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("jira API returned %d: %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}

// setAuth sets the appropriate authentication header on the request.
func (c *Client) setAuth(req *http.Request) {
	// Jira Cloud uses basic auth with email + API token; self-hosted
	// instances typically take a bearer PAT.
	if c.Username != "" {
		auth := base64.StdEncoding.EncodeToString([]byte(c.Username + ":" + c.APIToken))
		req.Header.Set("Authorization", "Basic "+auth)
	} else {
		req.Header.Set("Authorization", "Bearer "+c.APIToken)
	}
}

// ParseTimestamp parses Jira's timestamp format into a time.Time.
// Jira uses ISO 8601 with timezone: 2024-01-15T10:30:00.000+0000 or 2024-01-15T10:30:00.000Z
func ParseTimestamp(ts string) (time.Time, error) {
	if ts == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	formats := []string{
		"2006-01-02T15:04:05.000-0700",
		"2006-01-02T15:04:05.000Z",
		"2006-01-02T15:04:05-0700",
		"2006-01-02T15:04:05Z",
		time.RFC3339,
		time.RFC3339Nano,
	}
	for _, format := range formats {
		if t, err := time.Parse(format, ts); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp format: %s", ts)
}

// DescriptionToPlainText extracts plain text from Jira's ADF (Atlassian
// Document Format). Jira v3 returns descriptions as ADF JSON, not plain text.
func DescriptionToPlainText(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var doc struct {
		Type    string `json:"type"`
		Content []struct {
			Type    string `json:"type"`
			Content []struct {
				Type string `json:"type"`
				Text string `json:"text"`
			} `json:"content"`
		} `json:"content"`
	}

	if err := json.Unmarshal(raw, &doc); err != nil || doc.Type != "doc" {
		// Not ADF - try plain string
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
		return string(raw)
	}

	var parts []string
	for _, block := range doc.Content {
		var line []string
		for _, inline := range block.Content {
			if inline.Text != "" {
				line = append(line, inline.Text)
			}
		}
		if len(line) > 0 {
			parts = append(parts, strings.Join(line, ""))
		}
	}
	return strings.Join(parts, "\n")
}
