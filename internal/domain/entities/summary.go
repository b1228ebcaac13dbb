package entities

import "encoding/json"

// ActionItem is one task extracted from a meeting. Owner and DueDate stay
// null when the transcript does not mention them.
type ActionItem struct {
	Task    string  `json:"task"`
	Owner   *string `json:"owner"`
	DueDate *string `json:"due_date"`
}

// SummaryResult is the fixed-shape output of the summarization adapter.
// Every path through the adapter, including credential absence, upstream
// failure and unparsable responses, produces this shape with exactly the
// five serialized keys.
type SummaryResult struct {
	Summary     string          `json:"summary"`
	KeyPoints   []string        `json:"key_points"`
	Decisions   []string        `json:"decisions"`
	ActionItems []ActionItem    `json:"action_items"`
	// Agenda is a topic-wise breakdown whose structure is defined by the
	// upstream model's free-form output.
	Agenda json.RawMessage `json:"agenda"`

	// Degraded marks results produced by a fallback path. Carried
	// out-of-band so the serialized shape stays at five keys.
	Degraded bool `json:"-"`
}

// FallbackSummary builds the degraded SummaryResult used when the upstream
// service cannot produce real content. The failure detail goes into the
// summary text, all list fields stay empty.
func FallbackSummary(message string) SummaryResult {
	return SummaryResult{
		Summary:     message,
		KeyPoints:   []string{},
		Decisions:   []string{},
		ActionItems: []ActionItem{},
		Agenda:      json.RawMessage("[]"),
		Degraded:    true,
	}
}

// Normalize replaces nil collection fields with empty ones so serialization
// always carries the full key set.
func (s *SummaryResult) Normalize() {
	if s.KeyPoints == nil {
		s.KeyPoints = []string{}
	}
	if s.Decisions == nil {
		s.Decisions = []string{}
	}
	if s.ActionItems == nil {
		s.ActionItems = []ActionItem{}
	}
	if len(s.Agenda) == 0 {
		s.Agenda = json.RawMessage("[]")
	}
}
