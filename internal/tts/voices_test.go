package tts

import "testing"

func TestResolveVoice(t *testing.T) {
	tests := []struct {
		name     string
		language Language
		gender   Gender
		expected string
	}{
		{"es-latam male", LanguageLatamSpanish, GenderMale, "Sulafat"},
		{"es-latam female", LanguageLatamSpanish, GenderFemale, "Achernar"},
		{"es-latam neutral", LanguageLatamSpanish, GenderNeutral, "Aoede"},
		{"es-latam unset gender", LanguageLatamSpanish, "", "Aoede"},
		{"en male", LanguageEnglish, GenderMale, "Enceladus"},
		{"en female", LanguageEnglish, GenderFemale, "Vindemiatrix"},
		{"en neutral", LanguageEnglish, GenderNeutral, "Aoede"},
		{"unset language defaults to es-latam", "", GenderMale, "Sulafat"},
		{"both unset", "", "", "Aoede"},
		{"unknown language falls back", "fr", GenderFemale, "Aoede"},
		{"unknown gender falls back", LanguageEnglish, "robot", "Aoede"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			voice, _ := ResolveVoice(tt.language, tt.gender)
			if voice != tt.expected {
				t.Errorf("ResolveVoice(%q, %q) = %q, expected %q", tt.language, tt.gender, voice, tt.expected)
			}
		})
	}
}

func TestResolveVoice_LanguageDefaulting(t *testing.T) {
	_, language := ResolveVoice("", GenderNeutral)
	if language != LanguageLatamSpanish {
		t.Errorf("Expected default language %q, got %q", LanguageLatamSpanish, language)
	}

	_, language = ResolveVoice(LanguageEnglish, "")
	if language != LanguageEnglish {
		t.Errorf("Expected language %q to pass through, got %q", LanguageEnglish, language)
	}
}

func TestAllVoices_Count(t *testing.T) {
	if len(AllVoices) != 30 {
		t.Errorf("Expected 30 provider voices, got %d", len(AllVoices))
	}

	seen := make(map[string]bool, len(AllVoices))
	for _, v := range AllVoices {
		if seen[v] {
			t.Errorf("Duplicate voice %q in AllVoices", v)
		}
		seen[v] = true
	}
}

func TestVoiceTable_MappedVoicesAreKnown(t *testing.T) {
	known := make(map[string]bool, len(AllVoices))
	for _, v := range AllVoices {
		known[v] = true
	}

	for lang, byGender := range VoiceTable() {
		for gender, voice := range byGender {
			if !known[voice] {
				t.Errorf("Voice %q for (%s, %s) is not a known provider voice", voice, lang, gender)
			}
		}
	}
}

func TestStylePrompt(t *testing.T) {
	es := StylePrompt(LanguageLatamSpanish)
	en := StylePrompt(LanguageEnglish)

	if es == "" || en == "" {
		t.Fatal("Expected non-empty style prompts for both languages")
	}
	if es == en {
		t.Error("Expected distinct style prompts per language")
	}
	if StylePrompt("fr") != es {
		t.Error("Expected unknown language to use the Spanish prompt")
	}
}
