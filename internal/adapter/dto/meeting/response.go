package meeting

import (
	"time"

	"github.com/johnquangdev/meeting-recap/internal/domain/entities"
)

// CreateMeetingResponse is returned by the ingestion endpoint
type CreateMeetingResponse struct {
	ID     uint                   `json:"id"`
	Result entities.SummaryResult `json:"result"`
}

// MeetingResponse is the full row representation. AIOutput is the stored
// serialized text, not re-parsed.
type MeetingResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	MeetingType string    `json:"meeting_type"`
	Transcript  string    `json:"transcript"`
	AIOutput    string    `json:"ai_output"`
	FilePath    *string   `json:"file_path"`
	CreatedAt   time.Time `json:"created_at"`
}

// DeleteMeetingResponse confirms a deletion
type DeleteMeetingResponse struct {
	Message string `json:"message"`
}

// NewMeetingResponse maps a Meeting entity to its API representation
func NewMeetingResponse(m *entities.Meeting) MeetingResponse {
	return MeetingResponse{
		ID:          m.ID,
		Title:       m.Title,
		MeetingType: m.MeetingType,
		Transcript:  m.Transcript,
		AIOutput:    string(m.AIOutput),
		FilePath:    m.FilePath,
		CreatedAt:   m.CreatedAt,
	}
}

// NewMeetingListResponse maps a slice of Meeting entities
func NewMeetingListResponse(meetings []*entities.Meeting) []MeetingResponse {
	out := make([]MeetingResponse, 0, len(meetings))
	for _, m := range meetings {
		out = append(out, NewMeetingResponse(m))
	}
	return out
}
