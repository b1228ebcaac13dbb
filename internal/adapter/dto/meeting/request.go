package meeting

// CreateMeetingRequest carries the multipart form fields of a create
// request. The uploaded file, when present, is read separately from the
// multipart payload.
type CreateMeetingRequest struct {
	Title       string `form:"title" validate:"required"`
	MeetingType string `form:"meeting_type" validate:"required"`
	Transcript  string `form:"transcript"`
}

// ListMeetingsRequest carries the optional listing filters
type ListMeetingsRequest struct {
	Search string `query:"search"`
	Type   string `query:"type"`
}
