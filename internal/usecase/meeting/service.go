package meeting

import (
	"context"
	"encoding/json"
	stdErrors "errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	apperrors "github.com/johnquangdev/meeting-recap/errors"
	"github.com/johnquangdev/meeting-recap/internal/domain/entities"
	"github.com/johnquangdev/meeting-recap/internal/domain/repositories"
	"github.com/johnquangdev/meeting-recap/internal/infrastructure/cache"
)

// Transcriber converts a stored audio file into transcript text. Failures
// surface as error-shaped strings, never faults.
type Transcriber interface {
	Transcribe(ctx context.Context, filePath string) string
}

// Summarizer produces the fixed-shape summary for a transcript
type Summarizer interface {
	Summarize(ctx context.Context, transcript string) entities.SummaryResult
}

// UploadStore persists uploaded recordings and returns their relative path
type UploadStore interface {
	Save(filename string, r io.Reader) (string, error)
}

// Archiver copies uploads to object storage, best-effort
type Archiver interface {
	Archive(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error
}

// CreateInput carries the fields of a create-meeting request. File and
// Filename are zero when no upload was attached.
type CreateInput struct {
	Title       string
	MeetingType string
	Transcript  string
	Filename    string
	File        io.Reader
}

// Service defines meeting ingestion and retrieval operations
type Service interface {
	Create(ctx context.Context, input CreateInput) (*entities.Meeting, entities.SummaryResult, error)
	List(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, error)
	Get(ctx context.Context, id uint) (*entities.Meeting, error)
	Delete(ctx context.Context, id uint) error
}

type meetingService struct {
	repo        repositories.MeetingRepository
	transcriber Transcriber
	summarizer  Summarizer
	uploads     UploadStore
	archiver    Archiver // nil when object storage is not configured
	cache       cache.Store
	cacheTTL    time.Duration
	logger      *zap.Logger
}

// NewService constructs the meeting service. archiver may be nil.
func NewService(
	repo repositories.MeetingRepository,
	transcriber Transcriber,
	summarizer Summarizer,
	uploads UploadStore,
	archiver Archiver,
	cacheStore cache.Store,
	cacheTTL time.Duration,
	logger *zap.Logger,
) Service {
	return &meetingService{
		repo:        repo,
		transcriber: transcriber,
		summarizer:  summarizer,
		uploads:     uploads,
		archiver:    archiver,
		cache:       cacheStore,
		cacheTTL:    cacheTTL,
		logger:      logger,
	}
}

// Create runs the ingestion flow: store the upload, transcribe when no
// transcript was supplied, always summarize, persist one row. Upstream AI
// failures degrade to fallback content; only storage failures fault.
func (s *meetingService) Create(ctx context.Context, input CreateInput) (*entities.Meeting, entities.SummaryResult, error) {
	var filePath *string

	if input.File != nil && input.Filename != "" {
		stored, err := s.uploads.Save(input.Filename, input.File)
		if err != nil {
			return nil, entities.SummaryResult{}, apperrors.ErrStorageFailed("save upload", err)
		}
		filePath = &stored

		s.archive(ctx, stored)
	}

	transcript := input.Transcript
	if transcript == "" && filePath != nil {
		transcript = s.transcriber.Transcribe(ctx, *filePath)
	} else if transcript == "" {
		transcript = entities.PlaceholderTranscript
	}

	result := s.summarizer.Summarize(ctx, transcript)
	if result.Degraded {
		s.logger.Warn("meeting summarized with degraded result",
			zap.String("title", input.Title),
			zap.String("detail", result.Summary))
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return nil, entities.SummaryResult{}, apperrors.ErrInternal(err)
	}

	m := &entities.Meeting{
		Title:       input.Title,
		MeetingType: input.MeetingType,
		Transcript:  transcript,
		AIOutput:    datatypes.JSON(raw),
		FilePath:    filePath,
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return nil, entities.SummaryResult{}, apperrors.ErrDBQueryFailed("create meeting", err)
	}

	s.logger.Info("meeting created",
		zap.Uint("id", m.ID),
		zap.String("meeting_type", m.MeetingType),
		zap.Bool("degraded", result.Degraded))

	return m, result, nil
}

// archive copies a stored upload to object storage when configured. Errors
// are logged and swallowed; the local copy stays the source of truth.
func (s *meetingService) archive(ctx context.Context, storedPath string) {
	if s.archiver == nil {
		return
	}

	f, err := os.Open(storedPath)
	if err != nil {
		s.logger.Warn("archive skipped: cannot reopen upload", zap.Error(err))
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		s.logger.Warn("archive skipped: cannot stat upload", zap.Error(err))
		return
	}

	name := filepath.Base(storedPath)
	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	objectName := fmt.Sprintf("recordings/%s/%s", time.Now().UTC().Format("2006-01-02"), name)
	if err := s.archiver.Archive(ctx, objectName, f, info.Size(), contentType); err != nil {
		s.logger.Warn("archive upload failed",
			zap.String("object_name", objectName),
			zap.Error(err))
	}
}

// List returns meetings matching the filters, in storage order
func (s *meetingService) List(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, error) {
	meetings, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed("list meetings", err)
	}
	return meetings, nil
}

// Get returns one meeting, consulting the read cache first
func (s *meetingService) Get(ctx context.Context, id uint) (*entities.Meeting, error) {
	key := cacheKey(id)

	if cached, ok := s.cache.Get(ctx, key); ok {
		var m entities.Meeting
		if err := json.Unmarshal([]byte(cached), &m); err == nil {
			return &m, nil
		}
		// Corrupt entry; drop it and fall through to the repository.
		s.cache.Delete(ctx, key)
	}

	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMeetingNotFound()
		}
		return nil, apperrors.ErrDBQueryFailed("find meeting", err)
	}

	if raw, err := json.Marshal(m); err == nil {
		s.cache.Set(ctx, key, string(raw), s.cacheTTL)
	}

	return m, nil
}

// Delete removes one meeting and invalidates its cache entry. The uploaded
// file, if any, is intentionally left in place.
func (s *meetingService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMeetingNotFound()
		}
		return apperrors.ErrDBQueryFailed("delete meeting", err)
	}

	s.cache.Delete(ctx, cacheKey(id))

	s.logger.Info("meeting deleted", zap.Uint("id", id))
	return nil
}

func cacheKey(id uint) string {
	return fmt.Sprintf("meeting:%d", id)
}
