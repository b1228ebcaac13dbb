package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-recap/internal/domain/entities"
	pkgai "github.com/johnquangdev/meeting-recap/pkg/ai"
	"github.com/johnquangdev/meeting-recap/pkg/config"
)

// groqStub serves a canned chat-completion content string
func groqStub(t *testing.T, content string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status >= 400 {
			w.WriteHeader(status)
			return
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": content}},
			},
		})
	}))
}

func newSummarizer(apiKey, baseURL string) *Summarizer {
	groq := pkgai.NewGroqClient(&config.GroqConfig{APIKey: apiKey, BaseURL: baseURL})
	return NewSummarizer(groq, zap.NewNop())
}

// assertFiveKeys checks the serialized contract: exactly summary,
// key_points, decisions, action_items, agenda.
func assertFiveKeys(t *testing.T, result entities.SummaryResult) {
	t.Helper()
	raw, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("marshal result: %v", err)
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	want := []string{"summary", "key_points", "decisions", "action_items", "agenda"}
	if len(m) != len(want) {
		t.Fatalf("expected %d keys, got %d: %v", len(want), len(m), m)
	}
	for _, k := range want {
		if _, ok := m[k]; !ok {
			t.Fatalf("missing key %q in %v", k, m)
		}
	}
}

func TestSummarize_MissingCredential(t *testing.T) {
	s := newSummarizer("", "http://127.0.0.1:0")

	result := s.Summarize(context.Background(), "any transcript")

	if !result.Degraded {
		t.Fatal("expected degraded result")
	}
	if result.Summary != "Error: GROQ_API_KEY not found. Please set it in your environment variables." {
		t.Fatalf("unexpected summary %q", result.Summary)
	}
	if len(result.KeyPoints) != 0 || len(result.Decisions) != 0 || len(result.ActionItems) != 0 {
		t.Fatal("expected empty list fields")
	}
	assertFiveKeys(t, result)
}

func TestSummarize_UpstreamError(t *testing.T) {
	ts := groqStub(t, "", http.StatusTooManyRequests)
	defer ts.Close()

	s := newSummarizer("key", ts.URL)
	result := s.Summarize(context.Background(), "transcript")

	if !result.Degraded {
		t.Fatal("expected degraded result")
	}
	if result.Summary == "" {
		t.Fatal("expected failure detail in summary")
	}
	assertFiveKeys(t, result)
}

func TestSummarize_FencedJSON(t *testing.T) {
	body := `{"summary":"Weekly sync recap","key_points":["hiring"],"decisions":["ship v2"],"action_items":[{"task":"write docs","owner":"an","due_date":null}],"agenda":[{"topic":"hiring"}]}`

	for name, content := range map[string]string{
		"tagged fence": "```json\n" + body + "\n```",
		"plain fence":  "```\n" + body + "\n```",
		"no fence":     body,
	} {
		ts := groqStub(t, content, http.StatusOK)
		s := newSummarizer("key", ts.URL)

		result := s.Summarize(context.Background(), "transcript")
		ts.Close()

		if result.Degraded {
			t.Fatalf("%s: unexpected degraded result: %s", name, result.Summary)
		}
		if result.Summary != "Weekly sync recap" {
			t.Fatalf("%s: unexpected summary %q", name, result.Summary)
		}
		if len(result.KeyPoints) != 1 || result.KeyPoints[0] != "hiring" {
			t.Fatalf("%s: unexpected key points %v", name, result.KeyPoints)
		}
		if len(result.ActionItems) != 1 || result.ActionItems[0].Task != "write docs" {
			t.Fatalf("%s: unexpected action items %v", name, result.ActionItems)
		}
		if result.ActionItems[0].DueDate != nil {
			t.Fatalf("%s: expected null due_date", name)
		}
		assertFiveKeys(t, result)
	}
}

func TestSummarize_UnparsableResponse(t *testing.T) {
	ts := groqStub(t, "Sure! Here is the summary you asked for.", http.StatusOK)
	defer ts.Close()

	s := newSummarizer("key", ts.URL)
	result := s.Summarize(context.Background(), "transcript")

	if !result.Degraded {
		t.Fatal("expected degraded result")
	}
	if result.Summary != "Error parsing AI response. The model output was not valid JSON." {
		t.Fatalf("unexpected summary %q", result.Summary)
	}
	assertFiveKeys(t, result)
}

func TestSummarize_NilFieldsNormalized(t *testing.T) {
	// Model omitted every list field; the serialized result still carries
	// all five keys.
	ts := groqStub(t, `{"summary":"short meeting"}`, http.StatusOK)
	defer ts.Close()

	s := newSummarizer("key", ts.URL)
	result := s.Summarize(context.Background(), "transcript")

	if result.Degraded {
		t.Fatalf("unexpected degraded result: %s", result.Summary)
	}
	if result.KeyPoints == nil || result.ActionItems == nil || result.Decisions == nil {
		t.Fatal("expected normalized empty collections")
	}
	assertFiveKeys(t, result)
}

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"tagged fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"leading whitespace", "\n\n  ```json\n{\"a\":1}\n```  ", `{"a":1}`},
		{"unterminated fence", "```json\n{\"a\":1}", `{"a":1}`},
	}

	for _, tc := range cases {
		if got := extractJSON(tc.input); got != tc.want {
			t.Errorf("%s: extractJSON(%q) = %q, want %q", tc.name, tc.input, got, tc.want)
		}
	}
}

func TestExtractJSON_Idempotent(t *testing.T) {
	fenced := "```json\n{\"summary\":\"x\"}\n```"
	once := extractJSON(fenced)
	twice := extractJSON(once)
	if once != twice {
		t.Fatalf("stripping is not idempotent: %q vs %q", once, twice)
	}
}
