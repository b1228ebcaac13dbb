package entities

import (
	"time"

	"gorm.io/datatypes"
)

// PlaceholderTranscript is stored when a meeting is created with neither a
// transcript nor an audio file.
const PlaceholderTranscript = " [Transcription Placeholder] "

// Meeting is one analyzed meeting record
type Meeting struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	MeetingType string         `gorm:"not null" json:"meeting_type"`
	Transcript  string         `gorm:"type:text" json:"transcript"`
	// AIOutput holds the serialized SummaryResult. The summarization
	// adapter guarantees it is always valid JSON, even on upstream
	// failure, so the column is never unset.
	AIOutput  datatypes.JSON `gorm:"type:json" json:"ai_output"`
	FilePath  *string        `json:"file_path"`
	CreatedAt time.Time      `json:"created_at"`
}

// TableName overrides the GORM table name
func (Meeting) TableName() string {
	return "meetings"
}
