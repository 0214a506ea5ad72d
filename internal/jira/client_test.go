package jira

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetIssue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/api/3/issue/PROJ-123" {
			t.Errorf("path = %q, want /rest/api/3/issue/PROJ-123", r.URL.Path)
		}
		if r.URL.Query().Get("fields") == "" {
			t.Error("missing fields projection")
		}
		_ = json.NewEncoder(w).Encode(Issue{
			ID:  "10001",
			Key: "PROJ-123",
			Fields: IssueFields{
				Summary: "C1.5 Delivery milestone",
				Status:  &StatusField{Name: "In Progress"},
				Labels:  []string{"c1"},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "user@example.com", "token")
	issue, err := c.GetIssue(context.Background(), "PROJ-123")
	if err != nil {
		t.Fatalf("GetIssue() error: %v", err)
	}
	if issue.Key != "PROJ-123" {
		t.Errorf("Key = %q, want PROJ-123", issue.Key)
	}
	if issue.Fields.Summary != "C1.5 Delivery milestone" {
		t.Errorf("Summary = %q", issue.Fields.Summary)
	}
}

func TestGetIssueNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errorMessages":["Issue does not exist"]}`, http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "user@example.com", "token")
	_, err := c.GetIssue(context.Background(), "PROJ-404")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetIssue() error = %v, want ErrNotFound", err)
	}
}

func TestSearchIssues(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/api/3/search/jql" {
			t.Errorf("path = %q, want /rest/api/3/search/jql", r.URL.Path)
		}
		if got := r.URL.Query().Get("jql"); got != "parent = PROJ-1" {
			t.Errorf("jql = %q, want parent = PROJ-1", got)
		}
		if got := r.URL.Query().Get("maxResults"); got != "100" {
			t.Errorf("maxResults = %q, want 100", got)
		}
		_ = json.NewEncoder(w).Encode(SearchResult{
			Total: 2,
			Issues: []Issue{
				{Key: "PROJ-2", Fields: IssueFields{Summary: "C1.1 First"}},
				{Key: "PROJ-3", Fields: IssueFields{Summary: "C1.2 Second"}},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "user@example.com", "token")
	issues, err := c.SearchIssues(context.Background(), "parent = PROJ-1", 100)
	if err != nil {
		t.Fatalf("SearchIssues() error: %v", err)
	}
	if len(issues) != 2 {
		t.Fatalf("len(issues) = %d, want 2", len(issues))
	}
	if issues[0].Key != "PROJ-2" {
		t.Errorf("first key = %q, want PROJ-2", issues[0].Key)
	}
}

func TestAddLabelPreservesExisting(t *testing.T) {
	var updated map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode(Issue{
				Key:    "PROJ-1",
				Fields: IssueFields{Labels: []string{"existing"}},
			})
		case http.MethodPut:
			var payload struct {
				Fields map[string]interface{} `json:"fields"`
			}
			_ = json.NewDecoder(r.Body).Decode(&payload)
			updated = payload.Fields
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "user@example.com", "token")
	if err := c.AddLabel(context.Background(), "PROJ-1", "c1"); err != nil {
		t.Fatalf("AddLabel() error: %v", err)
	}

	labels, ok := updated["labels"].([]interface{})
	if !ok || len(labels) != 2 {
		t.Fatalf("updated labels = %v, want [existing c1]", updated["labels"])
	}
	if labels[0] != "existing" || labels[1] != "c1" {
		t.Errorf("updated labels = %v, want [existing c1]", labels)
	}
}

func TestAddLabelAlreadyPresentIsNoOp(t *testing.T) {
	puts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode(Issue{
				Key:    "PROJ-1",
				Fields: IssueFields{Labels: []string{"c1"}},
			})
		case http.MethodPut:
			puts++
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "user@example.com", "token")
	if err := c.AddLabel(context.Background(), "PROJ-1", "c1"); err != nil {
		t.Fatalf("AddLabel() error: %v", err)
	}
	if puts != 0 {
		t.Errorf("PUT count = %d, want 0 for already-present label", puts)
	}
}

func TestRemoveLabel(t *testing.T) {
	var updated map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode(Issue{
				Key:    "PROJ-1",
				Fields: IssueFields{Labels: []string{"c1", "keep"}},
			})
		case http.MethodPut:
			var payload struct {
				Fields map[string]interface{} `json:"fields"`
			}
			_ = json.NewDecoder(r.Body).Decode(&payload)
			updated = payload.Fields
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "user@example.com", "token")
	if err := c.RemoveLabel(context.Background(), "PROJ-1", "c1"); err != nil {
		t.Fatalf("RemoveLabel() error: %v", err)
	}

	labels, ok := updated["labels"].([]interface{})
	if !ok || len(labels) != 1 || labels[0] != "keep" {
		t.Errorf("updated labels = %v, want [keep]", updated["labels"])
	}
}

func TestAuthHeaderBasicForCloud(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(Issue{Key: "PROJ-1"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "user@example.com", "token")
	_, _ = c.GetIssue(context.Background(), "PROJ-1")

	if auth == "" || auth[:6] != "Basic " {
		t.Errorf("Authorization = %q, want Basic auth when username is set", auth)
	}
}

func TestAuthHeaderBearerWithoutUsername(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(Issue{Key: "PROJ-1"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", "token")
	_, _ = c.GetIssue(context.Background(), "PROJ-1")

	if auth != "Bearer token" {
		t.Errorf("Authorization = %q, want Bearer token", auth)
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		ts      string
		wantErr bool
	}{
		{"2024-01-15T10:30:00.000+0000", false},
		{"2024-01-15T10:30:00.000Z", false},
		{"2024-01-15T10:30:00Z", false},
		{"not a timestamp", true},
		{"", true},
	}
	for _, tt := range tests {
		_, err := ParseTimestamp(tt.ts)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTimestamp(%q) error = %v, wantErr %v", tt.ts, err, tt.wantErr)
		}
	}
}
