package app

import (
	"os"
	"strconv"
)

type Config struct {
	HTTPAddr  string
	SentryDSN string
	LogLevel  string

	// Chat completion provider
	TogetherAPIKey string
	TogetherModel  string
	LLMMaxTokens   int

	// Speech recognition
	WhisperModelPath string

	// Speech synthesis & playback
	SynthWorkers    int
	SynthQueueSize  int
	PlaybackEnabled bool
}

func LoadConfigFromEnv() Config {
	return Config{
		HTTPAddr:  getenv("HTTP_ADDR", ":8080"),
		SentryDSN: getenv("SENTRY_DSN", ""),
		LogLevel:  getenv("LOG_LEVEL", "info"),

		// The credential comes only from the environment; there is no
		// fallback on purpose.
		TogetherAPIKey: os.Getenv("TOGETHER_API_KEY"),
		TogetherModel:  getenv("TOGETHER_MODEL", "meta-llama/Llama-3-8b-chat-hf"),
		LLMMaxTokens:   getenvInt("LLM_MAX_TOKENS", 512),

		WhisperModelPath: getenv("WHISPER_MODEL_PATH", "models/ggml-base.bin"),

		SynthWorkers:    getenvInt("SYNTH_WORKERS", 2),
		SynthQueueSize:  getenvInt("SYNTH_QUEUE_SIZE", 16),
		PlaybackEnabled: getenvBool("PLAYBACK_ENABLED", true),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getenvBool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
