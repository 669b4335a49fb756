package tts

// FallbackVoice is used whenever a (language, gender) pair misses the
// voice table.
const FallbackVoice = "Aoede"

// voiceTable maps (language, gender) to a Gemini prebuilt voice. It is
// package-level immutable data; nothing mutates it after init.
var voiceTable = map[Language]map[Gender]string{
	LanguageLatamSpanish: {
		GenderMale:    "Sulafat",
		GenderFemale:  "Achernar",
		GenderNeutral: "Aoede",
	},
	LanguageEnglish: {
		GenderMale:    "Enceladus",
		GenderFemale:  "Vindemiatrix",
		GenderNeutral: "Aoede",
	},
}

// VoiceDescriptions documents the mapped voices for the /voices listing.
var VoiceDescriptions = map[string]string{
	"Sulafat":      "Warm male voice, suited to slow-paced Spanish narration",
	"Achernar":     "Soft female voice with a gentle delivery",
	"Aoede":        "Breezy neutral voice, the default for all languages",
	"Enceladus":    "Breathy male voice for English narration",
	"Vindemiatrix": "Gentle female voice for English narration",
}

// AllVoices enumerates every prebuilt voice the Gemini speech models
// accept. Discovery only; requests are never validated against it.
var AllVoices = []string{
	"Zephyr", "Puck", "Charon", "Kore", "Fenrir", "Leda",
	"Orus", "Aoede", "Callirrhoe", "Autonoe", "Enceladus", "Iapetus",
	"Umbriel", "Algieba", "Despina", "Erinome", "Algenib", "Rasalgethi",
	"Laomedeia", "Achernar", "Alnilam", "Schedar", "Gacrux", "Pulcherrima",
	"Achird", "Zubenelgenubi", "Vindemiatrix", "Sadachbia", "Sadaltager", "Sulafat",
}

// VoiceTable returns the static (language, gender) → voice mapping,
// keyed by plain strings for JSON encoding.
func VoiceTable() map[string]map[string]string {
	out := make(map[string]map[string]string, len(voiceTable))
	for lang, byGender := range voiceTable {
		m := make(map[string]string, len(byGender))
		for g, v := range byGender {
			m[string(g)] = v
		}
		out[string(lang)] = m
	}
	return out
}

// ResolveVoice maps a (language, gender) pair to a voice name. Empty
// values take the defaults (es-latam, neutral); any unmapped language or
// gender resolves to the single fallback voice.
func ResolveVoice(language Language, gender Gender) (string, Language) {
	if language == "" {
		language = LanguageLatamSpanish
	}
	if gender == "" {
		gender = GenderNeutral
	}

	byGender, ok := voiceTable[language]
	if !ok {
		return FallbackVoice, language
	}
	voice, ok := byGender[gender]
	if !ok {
		return FallbackVoice, language
	}
	return voice, language
}

// Style-instruction phrases prepended to the narration text. The prefix
// is the only mechanism that shapes delivery; there is no separate
// style configuration on the request.
const (
	stylePromptSpanish = "Narra lo siguiente en un susurro suave y muy lento, con pausas largas entre frases: "
	stylePromptEnglish = "Narrate the following in a soft, very slow whisper, with long pauses between sentences: "
)

// StylePrompt returns the delivery-instruction prefix for a language.
// Unknown languages use the Spanish phrase, consistent with the default
// language.
func StylePrompt(language Language) string {
	if language == LanguageEnglish {
		return stylePromptEnglish
	}
	return stylePromptSpanish
}
