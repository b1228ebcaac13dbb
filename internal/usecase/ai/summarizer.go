package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-recap/internal/domain/entities"
	pkgai "github.com/johnquangdev/meeting-recap/pkg/ai"
)

// systemPrompt instructs the model to return strict JSON matching the
// SummaryResult contract.
const systemPrompt = `
You are an expert meeting analyst.

Analyze the meeting transcript and return STRICT JSON with:
- summary
- key_points (list)
- decisions (list)
- action_items (list of {task, owner, due_date})
- agenda (topic-wise breakdown)

If owner or due_date is not mentioned, use null.
Do NOT add extra text outside JSON.
`

const summaryTemperature = 0.7

// Summarizer turns transcript text into a structured SummaryResult. Every
// failure path converges on the same five-key shape with the failure detail
// in the summary text, so callers never branch on failure type.
type Summarizer struct {
	groq   *pkgai.GroqClient
	logger *zap.Logger
}

// NewSummarizer creates a Summarizer backed by the Groq chat API
func NewSummarizer(groq *pkgai.GroqClient, logger *zap.Logger) *Summarizer {
	return &Summarizer{groq: groq, logger: logger}
}

// Summarize asks the model for a structured summary of the transcript. It
// never returns an error: credential absence, upstream failures and
// unparsable responses all degrade to a fallback SummaryResult.
func (s *Summarizer) Summarize(ctx context.Context, transcript string) entities.SummaryResult {
	if !s.groq.HasKey() {
		return entities.FallbackSummary("Error: GROQ_API_KEY not found. Please set it in your environment variables.")
	}

	content, err := s.groq.ChatCompletion(ctx, systemPrompt, transcript, summaryTemperature)
	if err != nil {
		s.logger.Warn("summarization call failed", zap.Error(err))
		return entities.FallbackSummary(fmt.Sprintf("Groq API Error: %v", err))
	}

	content = extractJSON(content)

	var result entities.SummaryResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		s.logger.Warn("summarization response was not valid JSON", zap.Error(err))
		return entities.FallbackSummary("Error parsing AI response. The model output was not valid JSON.")
	}

	result.Normalize()
	return result
}

// extractJSON extracts JSON content from markdown code blocks or plain
// text. The model is instructed to emit bare JSON but is not guaranteed to
// comply; stripping is idempotent on already-unfenced text.
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}
