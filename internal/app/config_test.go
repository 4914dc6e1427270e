package app

import (
	"os"
	"testing"
)

func TestGetenv(t *testing.T) {
	tests := []struct {
		name     string
		envKey   string
		envValue string
		defValue string
		want     string
	}{
		{
			name:     "env set",
			envKey:   "TEST_ENV_VAR",
			envValue: "custom_value",
			defValue: "default",
			want:     "custom_value",
		},
		{
			name:     "env not set",
			envKey:   "TEST_ENV_VAR_NOTSET",
			envValue: "",
			defValue: "default",
			want:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != "" {
				os.Setenv(tt.envKey, tt.envValue)
				defer os.Unsetenv(tt.envKey)
			}

			got := getenv(tt.envKey, tt.defValue)
			if got != tt.want {
				t.Errorf("getenv(%q, %q) = %q, want %q", tt.envKey, tt.defValue, got, tt.want)
			}
		})
	}
}

func TestGetenvInt(t *testing.T) {
	t.Run("valid number", func(t *testing.T) {
		os.Setenv("TEST_INT_VAR", "42")
		defer os.Unsetenv("TEST_INT_VAR")

		if got := getenvInt("TEST_INT_VAR", 7); got != 42 {
			t.Errorf("getenvInt = %d, want 42", got)
		}
	})

	t.Run("not a number falls back", func(t *testing.T) {
		os.Setenv("TEST_INT_VAR_BAD", "not-a-number")
		defer os.Unsetenv("TEST_INT_VAR_BAD")

		if got := getenvInt("TEST_INT_VAR_BAD", 7); got != 7 {
			t.Errorf("getenvInt = %d, want default 7", got)
		}
	})

	t.Run("unset falls back", func(t *testing.T) {
		if got := getenvInt("TEST_INT_VAR_UNSET", 7); got != 7 {
			t.Errorf("getenvInt = %d, want default 7", got)
		}
	})
}

func TestGetenvBool(t *testing.T) {
	t.Run("false", func(t *testing.T) {
		os.Setenv("TEST_BOOL_VAR", "false")
		defer os.Unsetenv("TEST_BOOL_VAR")

		if got := getenvBool("TEST_BOOL_VAR", true); got {
			t.Error("getenvBool = true, want false")
		}
	})

	t.Run("garbage falls back", func(t *testing.T) {
		os.Setenv("TEST_BOOL_VAR_BAD", "maybe")
		defer os.Unsetenv("TEST_BOOL_VAR_BAD")

		if got := getenvBool("TEST_BOOL_VAR_BAD", true); !got {
			t.Error("getenvBool = false, want default true")
		}
	})
}

func TestLoadConfigFromEnvDefaults(t *testing.T) {
	cfg := LoadConfigFromEnv()

	if cfg.HTTPAddr == "" {
		t.Error("HTTPAddr should have a default")
	}
	if cfg.TogetherModel != "meta-llama/Llama-3-8b-chat-hf" {
		t.Errorf("TogetherModel = %q, want the Llama-3 default", cfg.TogetherModel)
	}
	if cfg.LLMMaxTokens != 512 {
		t.Errorf("LLMMaxTokens = %d, want 512", cfg.LLMMaxTokens)
	}
	if cfg.SynthWorkers <= 0 {
		t.Errorf("SynthWorkers = %d, want positive default", cfg.SynthWorkers)
	}
}

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := New(Config{}, nil); err == nil {
		t.Error("New() error = nil, want error when TOGETHER_API_KEY is missing")
	}
}
