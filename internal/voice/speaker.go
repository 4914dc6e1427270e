// Package voice speaks bot replies out loud: it synthesizes text through a
// TTS provider and plays the result locally, off the request-handling
// goroutine, through a bounded worker pool.
package voice

import (
	"context"
	"log"
	"os"
	"sync"
	"time"

	"github.com/team-aura/voicemate/internal/tts"
)

const synthesisTimeout = 30 * time.Second

type job struct {
	text     string
	langCode string
}

// Speaker runs a fixed pool of workers that synthesize and play speech.
// Enqueueing never blocks: when the queue is full the job is dropped with
// a log line. Failures are logged and never reach the caller.
type Speaker struct {
	tts    tts.Client
	player Player
	logger *log.Logger

	jobs chan job
	wg   sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewSpeaker creates a Speaker with the given number of workers and queue
// capacity. Non-positive values fall back to one worker and a queue of 16.
func NewSpeaker(ttsClient tts.Client, player Player, logger *log.Logger, workers, queueSize int) *Speaker {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 16
	}

	s := &Speaker{
		tts:    ttsClient,
		player: player,
		logger: logger,
		jobs:   make(chan job, queueSize),
	}

	s.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go s.worker()
	}
	return s
}

// Speak enqueues text for synthesis and playback. Returns immediately;
// a full queue or a closed speaker drops the job.
func (s *Speaker) Speak(text, langCode string) {
	if text == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	select {
	case s.jobs <- job{text: text, langCode: langCode}:
	default:
		s.logger.Printf("voice: queue full, dropping synthesis job (lang=%s)", langCode)
	}
}

// Close stops accepting jobs and waits for in-flight playback to finish.
func (s *Speaker) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.jobs)
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *Speaker) worker() {
	defer s.wg.Done()
	for j := range s.jobs {
		s.speak(j)
	}
}

// speak synthesizes one job to a uniquely named temp file, plays it, and
// removes the file on every path.
func (s *Speaker) speak(j job) {
	ctx, cancel := context.WithTimeout(context.Background(), synthesisTimeout)
	defer cancel()

	audio, err := s.tts.Synthesize(ctx, j.text, j.langCode)
	if err != nil {
		s.logger.Printf("voice: synthesis failed (lang=%s): %v", j.langCode, err)
		return
	}

	f, err := os.CreateTemp("", "voicemate-*.mp3")
	if err != nil {
		s.logger.Printf("voice: temp file: %v", err)
		return
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.Write(audio); err != nil {
		f.Close()
		s.logger.Printf("voice: write audio: %v", err)
		return
	}
	if err := f.Close(); err != nil {
		s.logger.Printf("voice: close audio file: %v", err)
		return
	}

	if err := s.player.PlayFile(path); err != nil {
		s.logger.Printf("voice: playback failed: %v", err)
	}
}
