package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/johnquangdev/meeting-recap/pkg/config"
)

func TestChatCompletion_Success(t *testing.T) {
	// Mock Groq server
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/openai/v1/chat/completions" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Fatalf("missing bearer token, got %q", r.Header.Get("Authorization"))
		}
		var payload ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if len(payload.Messages) != 2 {
			t.Fatalf("expected system+user messages, got %d", len(payload.Messages))
		}
		if payload.Messages[0].Role != "system" || payload.Messages[1].Role != "user" {
			t.Fatalf("unexpected roles: %+v", payload.Messages)
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": `{"summary":"ok"}`}},
			},
		})
	}))
	defer ts.Close()

	client := NewGroqClient(&config.GroqConfig{APIKey: "test-key", BaseURL: ts.URL})

	content, err := client.ChatCompletion(context.Background(), "analyze", "hello world", 0.7)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if content != `{"summary":"ok"}` {
		t.Fatalf("unexpected content %q", content)
	}
}

func TestChatCompletion_ErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	client := NewGroqClient(&config.GroqConfig{APIKey: "bad-key", BaseURL: ts.URL})

	if _, err := client.ChatCompletion(context.Background(), "analyze", "hello", 0.7); err == nil {
		t.Fatal("expected error for 401 response")
	}
}

func TestTranscribeFile_Success(t *testing.T) {
	audioPath := filepath.Join(t.TempDir(), "standup.mp3")
	if err := os.WriteFile(audioPath, []byte("fake-audio-bytes"), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/openai/v1/audio/transcriptions" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if got := r.FormValue("model"); got != WhisperModel {
			t.Fatalf("unexpected model %q", got)
		}
		if got := r.FormValue("response_format"); got != "json" {
			t.Fatalf("unexpected response_format %q", got)
		}
		f, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("missing file part: %v", err)
		}
		defer f.Close()
		if header.Filename != "standup.mp3" {
			t.Fatalf("unexpected filename %q", header.Filename)
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"text": "we discussed the roadmap"})
	}))
	defer ts.Close()

	client := NewGroqClient(&config.GroqConfig{APIKey: "test-key", BaseURL: ts.URL})

	text, err := client.TranscribeFile(context.Background(), audioPath)
	if err != nil {
		t.Fatalf("transcribe failed: %v", err)
	}
	if text != "we discussed the roadmap" {
		t.Fatalf("unexpected transcript %q", text)
	}
}

func TestTranscribeFile_MissingFile(t *testing.T) {
	client := NewGroqClient(&config.GroqConfig{APIKey: "test-key", BaseURL: "http://127.0.0.1:0"})

	if _, err := client.TranscribeFile(context.Background(), "/nonexistent/audio.mp3"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
