// Package language holds the fixed catalog of languages the bot supports
// and the detection/normalization applied to every inbound text before any
// other component sees a language code.
package language

import "github.com/abadojack/whatlanggo"

// Default is the code every unrecognized or undetectable language
// normalizes to.
const Default = "en"

// Language describes one supported language.
type Language struct {
	Code              string // ISO-639-1
	DisplayName       string
	RecognitionLocale string // speech-recognition locale tag
	Intro             string // localized self-introduction
}

// supported is the fixed set of four languages. Never mutated at runtime.
var supported = map[string]Language{
	"en": {
		Code:              "en",
		DisplayName:       "English",
		RecognitionLocale: "en-US",
		Intro:             "My name is Voice Mate, developed by Team Aura as a SaaS customer service bot for all types of businesses and organizations.",
	},
	"ta": {
		Code:              "ta",
		DisplayName:       "Tamil",
		RecognitionLocale: "ta-IN",
		Intro:             "என் பெயர் Voice Mate, இது Team Aura உருவாக்கியது, அனைத்து நிறுவனங்களுக்கும் வணிகங்களுக்கும் SaaS வாடிக்கையாளர் சேவை உதவியாளராக இருக்கிறது.",
	},
	"ml": {
		Code:              "ml",
		DisplayName:       "Malayalam",
		RecognitionLocale: "ml-IN",
		Intro:             "എന്റെ പേര് Voice Mate ആണ്, ഇത് Team Aura വികസിപ്പിച്ചിരിക്കുന്നത്, എല്ലാ ബിസിനസ്സുകൾക്കും സ്ഥാപനങ്ങൾക്കും വേണ്ടി ഉള്ള ഒരു SaaS കസ്റ്റമർ സർവീസ് ബോട്ടാണ്.",
	},
	"hi": {
		Code:              "hi",
		DisplayName:       "Hindi",
		RecognitionLocale: "hi-IN",
		Intro:             "मेरा नाम Voice Mate है, जिसे Team Aura द्वारा सभी प्रकार के व्यवसायों और संगठनों के लिए एक SaaS ग्राहक सेवा बॉट के रूप में विकसित किया गया है।",
	},
}

// IsSupported reports whether code is one of the four supported codes.
func IsSupported(code string) bool {
	_, ok := supported[code]
	return ok
}

// Normalize maps any code outside the supported set to the English default.
func Normalize(code string) string {
	if IsSupported(code) {
		return code
	}
	return Default
}

// Get returns the catalog entry for code, normalizing first, so the result
// is always a valid entry.
func Get(code string) Language {
	return supported[Normalize(code)]
}

// DisplayName returns the human-readable name for code (normalized).
func DisplayName(code string) string {
	return Get(code).DisplayName
}

// detectOptions restricts identification to the four supported languages.
// Without the whitelist, Devanagari text is frequently attributed to other
// languages sharing the script (Bhojpuri, Marathi) and Hindi input would
// wrongly normalize to English.
var detectOptions = whatlanggo.Options{
	Whitelist: map[whatlanggo.Lang]bool{
		whatlanggo.Eng: true,
		whatlanggo.Tam: true,
		whatlanggo.Mal: true,
		whatlanggo.Hin: true,
	},
}

// Detect identifies the language of text and normalizes the result. Short,
// ambiguous, or unsupported text yields the English default.
func Detect(text string) string {
	info := whatlanggo.DetectWithOptions(text, detectOptions)
	if !info.IsReliable() {
		return Default
	}
	return Normalize(info.Lang.Iso6391())
}
