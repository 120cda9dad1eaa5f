package rewrite

import (
	"fmt"
	"strings"
)

// Voice selects the rewrite style requested by the caller.
type Voice string

const (
	VoiceNormal  Voice = "normal"
	VoiceGenZ    Voice = "genz"
	VoiceFunny   Voice = "funny"
	VoiceSarcasm Voice = "sarcasm"
	VoiceIrony   Voice = "irony"
)

type promptSpec struct {
	label    string
	template string
}

// promptTable maps each voice to its display label and prompt template. The
// transcript is substituted verbatim into the template.
var promptTable = map[Voice]promptSpec{
	VoiceNormal: {
		label:    "Summary",
		template: `Provide a clear, professional summary of this text in 2-3 sentences: "%s"`,
	},
	VoiceGenZ: {
		label:    "Gen Z Translation",
		template: `Convert this text into a short, fun Gen Z slang explanation (max 2-3 sentences). Make it casual, trendy, and use modern slang terms like "no cap", "fr", "periodt", "slay", etc. Text: "%s"`,
	},
	VoiceFunny: {
		label:    "Funny Version",
		template: `Rewrite this text in a hilarious, over-the-top funny way (max 2-3 sentences). Use humor, exaggeration, and comedic timing. Make it entertaining and witty: "%s"`,
	},
	VoiceSarcasm: {
		label:    "Sarcastic Take",
		template: `Rewrite this text with heavy sarcasm and wit (max 2-3 sentences). Be cleverly sarcastic, use ironic tone, and add some sass: "%s"`,
	},
	VoiceIrony: {
		label:    "Ironic Perspective",
		template: `Rewrite this text highlighting the irony and contradictions (max 2-3 sentences). Point out the ironic elements and unexpected twists in a clever way: "%s"`,
	},
}

// ParseVoice normalizes a caller-supplied selector. Anything absent or
// unrecognized falls back to the Gen Z voice.
func ParseVoice(s string) Voice {
	v := Voice(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := promptTable[v]; ok {
		return v
	}
	return VoiceGenZ
}

// Label returns the display label for v.
func (v Voice) Label() string {
	return v.spec().label
}

func (v Voice) prompt(transcript string) string {
	return fmt.Sprintf(v.spec().template, transcript)
}

func (v Voice) spec() promptSpec {
	if spec, ok := promptTable[v]; ok {
		return spec
	}
	return promptTable[VoiceGenZ]
}
