// Package language classifies transcripts into the two languages the
// service supports. The detection is a Unicode-block presence test, not a
// statistical classifier; it is deliberately approximate.
package language

// Display names for the supported classifications.
const (
	English   = "English"
	Malayalam = "Malayalam"
)

// Malayalam Unicode block bounds.
const (
	malayalamLo = 0x0D00
	malayalamHi = 0x0D7F
)

// Detect returns Malayalam when text contains any code point in the
// Malayalam block, English otherwise (including for the empty string).
func Detect(text string) string {
	for _, r := range text {
		if r >= malayalamLo && r <= malayalamHi {
			return Malayalam
		}
	}
	return English
}

// FromCode maps the transcription service's language_code to a display
// language. The service only ever reports the two supported languages.
func FromCode(code string) string {
	if code == "en" {
		return English
	}
	return Malayalam
}
