package language

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"en", "en"},
		{"ta", "ta"},
		{"ml", "ml"},
		{"hi", "hi"},
		{"fr", "en"},
		{"de", "en"},
		{"zh", "en"},
		{"", "en"},
		{"english", "en"},
		{"EN", "en"}, // codes are lower-case by contract
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := Normalize(tt.code); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestGetAlwaysValid(t *testing.T) {
	lang := Get("xx")
	if lang.Code != "en" {
		t.Errorf("Get(%q).Code = %q, want %q", "xx", lang.Code, "en")
	}
	if lang.RecognitionLocale != "en-US" {
		t.Errorf("RecognitionLocale = %q, want %q", lang.RecognitionLocale, "en-US")
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"en", "English"},
		{"ta", "Tamil"},
		{"ml", "Malayalam"},
		{"hi", "Hindi"},
		{"ru", "English"},
	}

	for _, tt := range tests {
		if got := DisplayName(tt.code); got != tt.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"tamil script", "எனக்கு வருகைப் பதிவு பற்றி தெரிந்து கொள்ள வேண்டும்", "ta"},
		{"malayalam script", "എനിക്ക് ലൈബ്രറി സമയം അറിയണം", "ml"},
		{"hindi script", "मुझे परीक्षा के परिणाम के बारे में जानना है", "hi"},
		{"hindi colloquial", "हिंदी में बोलो भाई मुझे मदद चाहिए", "hi"},
		{"english text", "Can you tell me about the library opening hours today please", "en"},
		{"unsupported language", "Je voudrais savoir quand ouvre la bibliothèque demain matin", "en"},
		{"empty", "", "en"},
		{"too short", "ok", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.text); got != tt.want {
				t.Errorf("Detect(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestIntroPresentForAllLanguages(t *testing.T) {
	for _, code := range []string{"en", "ta", "ml", "hi"} {
		if Get(code).Intro == "" {
			t.Errorf("language %q has no intro", code)
		}
	}
}
