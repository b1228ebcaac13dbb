package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/meeting-recap/errors"
	meetingdto "github.com/johnquangdev/meeting-recap/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-recap/internal/domain/repositories"
	meetinguse "github.com/johnquangdev/meeting-recap/internal/usecase/meeting"
)

// Meeting handles the meeting ingestion and retrieval endpoints
type Meeting struct {
	svc    meetinguse.Service
	logger *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(svc meetinguse.Service, logger *zap.Logger) *Meeting {
	return &Meeting{svc: svc, logger: logger}
}

// CreateMeeting ingests a meeting: stores the optional upload, transcribes
// when needed, summarizes, and persists one record. Upstream AI failures
// never fail this endpoint; they degrade the summary content instead.
func (h *Meeting) CreateMeeting(c echo.Context) error {
	var req meetingdto.CreateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("title and meeting_type are required"))
	}

	input := meetinguse.CreateInput{
		Title:       req.Title,
		MeetingType: req.MeetingType,
		Transcript:  req.Transcript,
	}

	if fh, err := c.FormFile("file"); err == nil && fh != nil && fh.Filename != "" {
		f, err := fh.Open()
		if err != nil {
			return HandleError(h.logger, c, apperrors.ErrStorageFailed("open upload", err))
		}
		defer f.Close()
		input.File = f
		input.Filename = fh.Filename
	}

	m, result, err := h.svc.Create(c.Request().Context(), input)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, meetingdto.CreateMeetingResponse{
		ID:     m.ID,
		Result: result,
	})
}

// ListMeetings returns all meetings, optionally filtered by title
// substring and exact meeting type.
func (h *Meeting) ListMeetings(c echo.Context) error {
	var req meetingdto.ListMeetingsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}

	meetings, err := h.svc.List(c.Request().Context(), repositories.MeetingFilters{
		Search: req.Search,
		Type:   req.Type,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, meetingdto.NewMeetingListResponse(meetings))
}

// GetMeeting returns one meeting by id
func (h *Meeting) GetMeeting(c echo.Context) error {
	id, err := parseMeetingID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	m, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, meetingdto.NewMeetingResponse(m))
}

// DeleteMeeting removes one meeting by id. The uploaded file, if any,
// stays on disk.
func (h *Meeting) DeleteMeeting(c echo.Context) error {
	id, err := parseMeetingID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, meetingdto.DeleteMeetingResponse{Message: "Deleted"})
}

func parseMeetingID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, apperrors.ErrInvalidArgument("Invalid meeting id")
	}
	return uint(id), nil
}
