package github

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRepositoryDecodesMetadata(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/octo/widget" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"name":             "widget",
			"description":      "a widget",
			"language":         "Go",
			"size":             1500,
			"stargazers_count": 42,
			"forks_count":      7,
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", 5*time.Second)
	meta, err := client.Repository(context.Background(), "octo", "widget")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta.Language != "Go" || meta.SizeKB != 1500 || meta.Stars != 42 || meta.Forks != 7 {
		t.Fatalf("unexpected metadata: %+v", meta)
	}
}

func TestRepositoryNotFoundIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", 5*time.Second)
	_, err := client.Repository(context.Background(), "octo", "ghost")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{"name": "widget"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret-token", 5*time.Second)
	if _, err := client.Repository(context.Background(), "octo", "widget"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer secret-token" {
		t.Fatalf("expected bearer token header, got %q", gotAuth)
	}
}
