package ai

import (
	"context"
	"fmt"
	"os"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	"go.uber.org/zap"

	pkgai "github.com/johnquangdev/meeting-recap/pkg/ai"
	"github.com/johnquangdev/meeting-recap/pkg/config"
)

// MissingKeySentinel is returned in place of a transcript when no
// transcription credential is configured.
const MissingKeySentinel = "Error: GROQ_API_KEY not found."

// TranscriptionProvider is one speech-to-text backend
type TranscriptionProvider interface {
	Transcribe(ctx context.Context, filePath string) (string, error)
	// Configured reports whether a credential is available.
	Configured() bool
}

// Transcriber converts a stored audio file into transcript text. Failures
// are degraded to error-shaped strings rather than faults, so the ingestion
// flow can persist them as the transcript and carry on.
type Transcriber struct {
	provider TranscriptionProvider
	logger   *zap.Logger
}

// NewTranscriber creates a Transcriber over the given provider
func NewTranscriber(provider TranscriptionProvider, logger *zap.Logger) *Transcriber {
	return &Transcriber{provider: provider, logger: logger}
}

// Transcribe returns the transcript text for a local audio file. Callers
// must treat error-shaped strings as degraded content, not faults.
func (t *Transcriber) Transcribe(ctx context.Context, filePath string) string {
	if !t.provider.Configured() {
		return MissingKeySentinel
	}

	text, err := t.provider.Transcribe(ctx, filePath)
	if err != nil {
		t.logger.Warn("transcription failed",
			zap.String("file_path", filePath),
			zap.Error(err))
		return fmt.Sprintf("Error transcribing audio: %v", err)
	}
	return text
}

// GroqWhisperProvider transcribes via Groq's hosted Whisper model
type GroqWhisperProvider struct {
	client *pkgai.GroqClient
}

// NewGroqWhisperProvider creates the default transcription provider
func NewGroqWhisperProvider(client *pkgai.GroqClient) *GroqWhisperProvider {
	return &GroqWhisperProvider{client: client}
}

func (p *GroqWhisperProvider) Configured() bool {
	return p.client.HasKey()
}

func (p *GroqWhisperProvider) Transcribe(ctx context.Context, filePath string) (string, error) {
	return p.client.TranscribeFile(ctx, filePath)
}

// AssemblyAIProvider transcribes via the official AssemblyAI SDK. The SDK
// call uploads the file and blocks until the transcript completes, which
// fits the synchronous ingestion flow.
type AssemblyAIProvider struct {
	client *aai.Client
	apiKey string
}

// NewAssemblyAIProvider creates the alternative transcription provider
func NewAssemblyAIProvider(cfg *config.AssemblyAIConfig) *AssemblyAIProvider {
	return &AssemblyAIProvider{
		client: aai.NewClient(cfg.APIKey),
		apiKey: cfg.APIKey,
	}
}

func (p *AssemblyAIProvider) Configured() bool {
	return p.apiKey != ""
}

func (p *AssemblyAIProvider) Transcribe(ctx context.Context, filePath string) (string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	transcript, err := p.client.Transcripts.TranscribeFromReader(ctx, f, &aai.TranscriptOptionalParams{
		LanguageDetection: aai.Bool(true),
	})
	if err != nil {
		return "", err
	}
	if transcript.Status == aai.TranscriptStatusError {
		if transcript.Error != nil {
			return "", fmt.Errorf("assemblyai: %s", *transcript.Error)
		}
		return "", fmt.Errorf("assemblyai: transcription failed")
	}
	if transcript.Text == nil {
		return "", fmt.Errorf("assemblyai: empty transcript")
	}
	return *transcript.Text, nil
}
