package chatbot

import "strings"

// LanguageSupport is the translation/language-detection capability.
// The default implementation is a no-op; a real integration can be
// substituted without touching the pipeline.
type LanguageSupport interface {
	DetectLanguage(text string) string
	TranslateResponse(text, targetLanguage string) string
	SupportedLanguages() map[string]string
}

type NoopLanguageSupport struct{}

func (NoopLanguageSupport) DetectLanguage(text string) string {
	return "en"
}

func (NoopLanguageSupport) TranslateResponse(text, targetLanguage string) string {
	return text
}

func (NoopLanguageSupport) SupportedLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"es": "Spanish",
		"fr": "French",
		"de": "German",
		"hi": "Hindi",
		"zh": "Chinese",
	}
}

// VoiceProcessor is the speech capability. The default implementation
// reports that voice input is unavailable.
type VoiceProcessor interface {
	Available() bool
	SpeechToText(audio []byte) (string, error)
	TextToSpeech(text, language string) ([]byte, error)
	IsVoiceCommand(text string) bool
}

type NoopVoiceProcessor struct{}

func (NoopVoiceProcessor) Available() bool {
	return false
}

func (NoopVoiceProcessor) SpeechToText(audio []byte) (string, error) {
	return "Voice processing not implemented yet. Please use text input.", nil
}

func (NoopVoiceProcessor) TextToSpeech(text, language string) ([]byte, error) {
	return nil, nil
}

func (NoopVoiceProcessor) IsVoiceCommand(text string) bool {
	lower := strings.ToLower(text)
	for _, indicator := range []string{"voice:", "speak:", "say:", "audio:"} {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}
