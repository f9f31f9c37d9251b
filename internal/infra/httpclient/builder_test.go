package httpclient

import (
	"context"
	"io"
	"net/url"
	"testing"
)

func TestBuildRequestBearerToken(t *testing.T) {
	req, err := BuildRequest(context.Background(), RequestSpec{
		Method: "GET",
		URL:    "https://example.test/get_size",
		Token:  "s3cret",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := req.Header.Get("Authorization"); got != "Bearer s3cret" {
		t.Fatalf("unexpected Authorization header: %q", got)
	}
}

func TestBuildRequestQuery(t *testing.T) {
	q := url.Values{}
	q.Set("x", "4")
	q.Set("y", "9")

	req, err := BuildRequest(context.Background(), RequestSpec{
		Method: "GET",
		URL:    "https://example.test/get_pixel",
		Query:  q,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := req.URL.Query().Get("x"); got != "4" {
		t.Fatalf("unexpected x param: %q", got)
	}
	if got := req.URL.Query().Get("y"); got != "9" {
		t.Fatalf("unexpected y param: %q", got)
	}
}

func TestBuildRequestJSONBody(t *testing.T) {
	req, err := BuildRequest(context.Background(), RequestSpec{
		Method: "POST",
		URL:    "https://example.test/set_pixel",
		JSON:   map[string]any{"x": 1, "y": 2, "rgb": "ff00ff"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := req.Header.Get("Content-Type"); got != "application/json" {
		t.Fatalf("unexpected Content-Type: %q", got)
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	if len(body) == 0 {
		t.Fatalf("expected a JSON body")
	}
}

func TestBuildRequestEmptyURL(t *testing.T) {
	_, err := BuildRequest(context.Background(), RequestSpec{Method: "GET", URL: "  "})
	if err == nil {
		t.Fatalf("expected error for empty URL")
	}
}
