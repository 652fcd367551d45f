package inference

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newFakeOllama(t *testing.T, reply string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/generate", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Model  string `json:"model"`
			Prompt string `json:"prompt"`
			Stream *bool  `json:"stream"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode generate request: %v", err)
		}
		if req.Stream == nil || *req.Stream {
			t.Errorf("expected stream=false, got %v", req.Stream)
		}
		if req.Model != "llama3" {
			t.Errorf("expected model llama3, got %q", req.Model)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"model":    req.Model,
			"response": reply,
			"done":     true,
		})
	})
	mux.HandleFunc("/api/tags", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"models":[{"name":"llama3:latest","model":"llama3:latest","size":4661224676}]}`))
	})
	return httptest.NewServer(mux)
}

func TestQueryNonStreaming(t *testing.T) {
	srv := newFakeOllama(t, `Here is my answer: {"score":92}`)
	defer srv.Close()

	client, err := NewClient(srv.URL, "llama3", 0)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	answer, err := client.Query(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if answer != `Here is my answer: {"score":92}` {
		t.Fatalf("unexpected answer %q", answer)
	}
}

func TestQueryStripsThinkBlock(t *testing.T) {
	srv := newFakeOllama(t, "<think>maybe {\"score\": 1}</think>\n{\"score\":80}")
	defer srv.Close()

	client, err := NewClient(srv.URL, "llama3", 5)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	answer, err := client.Query(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if answer != `{"score":80}` {
		t.Fatalf("think block not removed: %q", answer)
	}
}

func TestListModels(t *testing.T) {
	srv := newFakeOllama(t, "")
	defer srv.Close()

	client, err := NewClient(srv.URL, "llama3", 0)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	models, err := client.ListModels(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(models) != 1 || models[0].Name != "llama3:latest" {
		t.Fatalf("unexpected models %+v", models)
	}
}

func TestQueryUnreachable(t *testing.T) {
	srv := newFakeOllama(t, "")
	addr := srv.URL
	srv.Close()

	client, err := NewClient(addr, "llama3", 0)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if _, err := client.Query(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error from closed server")
	}
}

func TestNewClientRejectsBadHost(t *testing.T) {
	if _, err := NewClient("localhost", "llama3", 0); err == nil {
		t.Fatal("expected error for host without scheme")
	}
}

func TestUpstreamErrors(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
	}{
		{"unavailable", http.StatusServiceUnavailable, `{"error":"loading"}`},
		{"not found", http.StatusNotFound, "404 page not found"},
		{"malformed body", http.StatusOK, "not json"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(c.status)
				_, _ = w.Write([]byte(c.body))
			}))
			defer srv.Close()

			client, err := NewClient(srv.URL, "llama3", 0)
			if err != nil {
				t.Fatalf("new client: %v", err)
			}
			if _, err := client.ListModels(context.Background()); err == nil {
				t.Fatal("expected error listing models")
			}
			if _, err := client.Query(context.Background(), "prompt"); err == nil {
				t.Fatal("expected error from query")
			}
		})
	}
}
