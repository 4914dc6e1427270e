package voice

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
)

// Player plays a synthesized audio file through the local audio subsystem.
type Player interface {
	// PlayFile plays the MP3 file at path, blocking until playback ends.
	PlayFile(path string) error
}

// BeepPlayer plays MP3 files through the default audio device. beep's
// speaker is package-global and re-running Init discards whatever is
// queued, so the device is initialized exactly once and playback is
// serialized; concurrent callers take turns.
type BeepPlayer struct {
	mu       sync.Mutex
	initOnce sync.Once
	initErr  error
	rate     beep.SampleRate
}

// NewBeepPlayer creates a speaker-backed player.
func NewBeepPlayer() *BeepPlayer {
	return &BeepPlayer{}
}

// PlayFile decodes and plays the MP3 file at path. Blocks the calling
// goroutine until playback completes.
func (p *BeepPlayer) PlayFile(path string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open audio file: %w", err)
	}

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("failed to decode mp3: %w", err)
	}
	defer streamer.Close()

	// The first file's sample rate configures the device; later files at
	// other rates are resampled to it.
	p.initOnce.Do(func() {
		p.rate = format.SampleRate
		p.initErr = speaker.Init(p.rate, p.rate.N(time.Second/10))
	})
	if p.initErr != nil {
		return fmt.Errorf("failed to init speaker: %w", p.initErr)
	}

	var stream beep.Streamer = streamer
	if format.SampleRate != p.rate {
		stream = beep.Resample(4, format.SampleRate, p.rate, streamer)
	}

	done := make(chan bool)
	speaker.Play(beep.Seq(stream, beep.Callback(func() {
		done <- true
	})))
	<-done

	return nil
}

// NoopPlayer discards audio. Used for headless deployments and tests.
type NoopPlayer struct{}

// PlayFile does nothing.
func (NoopPlayer) PlayFile(string) error { return nil }
