package stt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/ggerganov/whisper.cpp/bindings/go/pkg/whisper"

	"github.com/team-aura/voicemate/internal/audioconv"
)

// Whisper transcribes audio with a locally loaded whisper.cpp model.
// Language is left on "auto" so the model reports what it heard.
type Whisper struct {
	model whisper.Model
}

// NewWhisper loads the model at modelPath. Loading is expensive; do it
// once at startup and share the instance.
func NewWhisper(modelPath string) (*Whisper, error) {
	if modelPath == "" {
		return nil, errors.New("empty model path")
	}
	m, err := whisper.New(modelPath)
	if err != nil {
		return nil, fmt.Errorf("load whisper model: %w", err)
	}
	return &Whisper{model: m}, nil
}

// Close releases the model.
func (w *Whisper) Close() error {
	if w.model == nil {
		return nil
	}
	return w.model.Close()
}

// TranscribeFile decodes the audio file at path and runs it through the
// model, returning the transcript and the detected language code.
func (w *Whisper) TranscribeFile(ctx context.Context, path string) (Result, error) {
	if w.model == nil {
		return Result{}, errors.New("nil model")
	}

	pcm, err := audioconv.DecodeFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("decode audio: %w", err)
	}
	if len(pcm) == 0 {
		return Result{}, errors.New("no audio samples")
	}

	wctx, err := w.model.NewContext()
	if err != nil {
		return Result{}, fmt.Errorf("new whisper context: %w", err)
	}

	if err := wctx.SetLanguage("auto"); err != nil {
		return Result{}, fmt.Errorf("set language: %w", err)
	}
	wctx.SetThreads(uint(runtime.NumCPU()))

	if err := wctx.Process(pcm, nil, nil, nil); err != nil {
		return Result{}, fmt.Errorf("process audio: %w", err)
	}

	var parts []string
	for {
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		default:
		}

		seg, err := wctx.NextSegment()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Result{}, fmt.Errorf("next segment: %w", err)
		}
		parts = append(parts, strings.TrimSpace(seg.Text))
	}

	lang := wctx.DetectedLanguage()
	if lang == "" {
		lang = wctx.Language()
	}

	return Result{
		Text:     strings.Join(parts, " "),
		Language: lang,
	}, nil
}
