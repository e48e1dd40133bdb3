package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearchParsesPage(t *testing.T) {
	var gotQuery, gotPerPage, gotCursor, gotFields string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/hosts/search" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if _, _, ok := r.BasicAuth(); !ok {
			t.Error("expected basic auth on request")
		}
		gotQuery = r.URL.Query().Get("q")
		gotPerPage = r.URL.Query().Get("per_page")
		gotCursor = r.URL.Query().Get("cursor")
		gotFields = r.URL.Query().Get("fields")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"code": 200,
			"status": "OK",
			"result": {
				"query": "test",
				"total": 2,
				"hits": [{"ip": "1.2.3.4"}, {"ip": "5.6.7.8"}],
				"links": {"next": "nextcursor", "prev": ""}
			}
		}`))
	}))
	defer server.Close()

	client := NewClient("id", "secret")
	client.SetBaseURL(server.URL)

	result, err := client.Search(context.Background(), `host.location.country = "Japan"`, 100, "abc", []string{"ip", "services.port"})
	if err != nil {
		t.Fatalf("Search returned an error: %v", err)
	}

	if gotQuery != `host.location.country = "Japan"` {
		t.Errorf("q param = %q", gotQuery)
	}
	if gotPerPage != "100" {
		t.Errorf("per_page param = %q", gotPerPage)
	}
	if gotCursor != "abc" {
		t.Errorf("cursor param = %q", gotCursor)
	}
	if gotFields != "ip,services.port" {
		t.Errorf("fields param = %q", gotFields)
	}

	if len(result.Hits) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(result.Hits))
	}
	if result.Total != 2 {
		t.Errorf("expected total 2, got %d", result.Total)
	}
	if result.Links.Next != "nextcursor" {
		t.Errorf("expected next cursor, got %q", result.Links.Next)
	}
}

func TestSearchAuthError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient("bad", "creds")
	client.SetBaseURL(server.URL)

	_, err := client.Search(context.Background(), "q", 100, "", nil)
	if err == nil {
		t.Fatal("expected an error for 401")
	}
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected *AuthError, got %T: %v", err, err)
	}
	if authErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", authErr.StatusCode)
	}
}

func TestSearchRateLimitIsTransient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"code": 429, "status": "Too Many Requests", "error": "rate limit exceeded"}`))
	}))
	defer server.Close()

	client := NewClient("id", "secret")
	client.SetBaseURL(server.URL)

	_, err := client.Search(context.Background(), "q", 100, "", nil)
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected *RequestError, got %T: %v", err, err)
	}
	if !reqErr.Transient() {
		t.Error("expected 429 to be transient")
	}
	if reqErr.Message != "rate limit exceeded" {
		t.Errorf("expected API error message, got %q", reqErr.Message)
	}
}

func TestSearchBadQueryIsNotTransient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"code": 422, "status": "Unprocessable Entity", "error": "invalid query"}`))
	}))
	defer server.Close()

	client := NewClient("id", "secret")
	client.SetBaseURL(server.URL)

	_, err := client.Search(context.Background(), "not a query", 100, "", nil)
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected *RequestError, got %T: %v", err, err)
	}
	if reqErr.Transient() {
		t.Error("expected 422 not to be transient")
	}
}
