package app

import (
	"errors"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/team-aura/voicemate/internal/chat"
	"github.com/team-aura/voicemate/internal/httpapi"
	"github.com/team-aura/voicemate/internal/llm"
	"github.com/team-aura/voicemate/internal/memory"
	"github.com/team-aura/voicemate/internal/stt"
	"github.com/team-aura/voicemate/internal/tts"
	"github.com/team-aura/voicemate/internal/voice"
)

type App struct {
	cfg         Config
	logger      *log.Logger
	httpClient  *http.Client // shared client with connection pooling for LLM and TTS
	memory      *memory.Store
	generator   *chat.Generator
	speaker     *voice.Speaker
	transcriber *stt.Whisper
}

func New(cfg Config, logger *log.Logger) (*App, error) {
	if cfg.TogetherAPIKey == "" {
		return nil, errors.New("TOGETHER_API_KEY is required")
	}

	// Shared HTTP client with connection pooling. Both outbound providers
	// (Together, Google TTS) are single-host, so keep-alives matter.
	httpClient := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   5 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:          100,
			MaxIdleConnsPerHost:   10,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   5 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
		},
	}

	transcriber, err := stt.NewWhisper(cfg.WhisperModelPath)
	if err != nil {
		return nil, err
	}

	togetherClient := llm.NewTogetherClient(llm.TogetherConfig{
		APIKey:     cfg.TogetherAPIKey,
		Model:      cfg.TogetherModel,
		MaxTokens:  cfg.LLMMaxTokens,
		HTTPClient: httpClient,
	})

	ttsClient := tts.NewGoogleClient(tts.GoogleConfig{HTTPClient: httpClient})

	var player voice.Player = voice.NewBeepPlayer()
	if !cfg.PlaybackEnabled {
		player = voice.NoopPlayer{}
	}
	speaker := voice.NewSpeaker(ttsClient, player, logger, cfg.SynthWorkers, cfg.SynthQueueSize)

	return &App{
		cfg:         cfg,
		logger:      logger,
		httpClient:  httpClient,
		memory:      memory.NewStore(),
		generator:   chat.NewGenerator(togetherClient, logger),
		speaker:     speaker,
		transcriber: transcriber,
	}, nil
}

func (a *App) Router() http.Handler {
	return httpapi.NewRouter(a.logger, a.memory, a.generator, a.speaker, a.transcriber)
}

// Close drains in-flight playback and releases the speech model.
func (a *App) Close() error {
	if a.speaker != nil {
		a.speaker.Close()
	}
	if a.transcriber != nil {
		return a.transcriber.Close()
	}
	return nil
}
