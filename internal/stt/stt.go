package stt

import "context"

// Result represents a speech-to-text transcription result.
type Result struct {
	Text     string // the transcribed text
	Language string // detected ISO-639-1 language code, "" if unknown
}

// Transcriber defines the interface for speech-to-text backends.
type Transcriber interface {
	// TranscribeFile transcribes the audio file at path.
	TranscribeFile(ctx context.Context, path string) (Result, error)

	// Close releases the backing model.
	Close() error
}
