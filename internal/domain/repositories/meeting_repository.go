package repositories

import (
	"context"

	"github.com/johnquangdev/meeting-recap/internal/domain/entities"
)

// MeetingFilters narrows a meeting listing. Search matches the title as a
// substring, Type matches the meeting type exactly. Empty fields are ignored.
type MeetingFilters struct {
	Search string
	Type   string
}

// MeetingRepository defines persistence operations for meetings
type MeetingRepository interface {
	Create(ctx context.Context, meeting *entities.Meeting) error
	FindByID(ctx context.Context, id uint) (*entities.Meeting, error)
	List(ctx context.Context, filters MeetingFilters) ([]*entities.Meeting, error)
	Delete(ctx context.Context, id uint) error
}
