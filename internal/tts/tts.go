package tts

import "context"

// Client defines the interface for text-to-speech providers.
type Client interface {
	// Synthesize converts text in the given supported language to audio
	// data. The returned audio is MP3.
	Synthesize(ctx context.Context, text, langCode string) ([]byte, error)
}
