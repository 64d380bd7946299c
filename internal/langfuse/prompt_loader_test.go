package langfuse

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestPromptText(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		want    string
		wantErr bool
	}{
		{"text prompt", `{"type":"text","prompt":"Be kind."}`, "Be kind.", false},
		{"untyped prompt", `{"prompt":"Plain"}`, "Plain", false},
		{
			"chat prompt",
			`{"type":"chat","prompt":[{"role":"system","content":"You coach."},{"type":"placeholder","name":"history"},{"role":"user","content":""}]}`,
			"SYSTEM: You coach.\n\nMESSAGE: {{history}}",
			false,
		},
		{"unknown type", `{"type":"image","prompt":"x"}`, "", true},
		{"text not string", `{"type":"text","prompt":42}`, "", true},
		{"invalid json", `{`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := promptText([]byte(tt.doc))
			if (err != nil) != tt.wantErr {
				t.Fatalf("promptText error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("promptText = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoadPrompt_FetchesAndCaches(t *testing.T) {
	var gotPath, gotLabel string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotLabel = r.URL.Query().Get("label")
		_, _ = w.Write([]byte(`{"type":"text","prompt":"remote prompt"}`))
	}))
	defer srv.Close()

	cache := filepath.Join(t.TempDir(), "prompts", "coaching.txt")
	cfg := PromptConfig{
		Config:    Config{BaseURL: srv.URL, PublicKey: "pk", SecretKey: "sk"},
		Name:      "wellness-coaching",
		Label:     "production",
		CachePath: cache,
	}

	prompt, err := LoadPrompt(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("LoadPrompt returned error: %v", err)
	}
	if prompt != "remote prompt" {
		t.Errorf("prompt = %q, want remote prompt", prompt)
	}
	if gotPath != "/api/public/v2/prompts/wellness-coaching" || gotLabel != "production" {
		t.Errorf("unexpected request path=%s label=%s", gotPath, gotLabel)
	}

	cached, err := os.ReadFile(cache)
	if err != nil || string(cached) != "remote prompt" {
		t.Errorf("cache not written: %q, %v", cached, err)
	}
}

func TestLoadPrompt_FallsBackToCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	cache := filepath.Join(t.TempDir(), "coaching.txt")
	if err := os.WriteFile(cache, []byte("cached prompt"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := PromptConfig{
		Config:    Config{BaseURL: srv.URL, PublicKey: "pk", SecretKey: "sk"},
		Name:      "wellness-coaching",
		CachePath: cache,
	}
	prompt, err := LoadPrompt(context.Background(), cfg, nil)
	if err != nil || prompt != "cached prompt" {
		t.Fatalf("LoadPrompt = (%q, %v), want cached prompt", prompt, err)
	}

	// Disabled source goes straight to the cache.
	prompt, err = LoadPrompt(context.Background(), PromptConfig{CachePath: cache}, nil)
	if err != nil || prompt != "cached prompt" {
		t.Fatalf("disabled LoadPrompt = (%q, %v)", prompt, err)
	}

	if _, err := LoadPrompt(context.Background(), PromptConfig{}, nil); err == nil {
		t.Fatal("expected error without cache")
	}
}
