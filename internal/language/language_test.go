package language

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"plain english", "hello world", English},
		{"empty string", "", English},
		{"numbers and punctuation", "123, ok!", English},
		{"malayalam text", "നമസ്കാരം", Malayalam},
		{"single malayalam rune in english", "meeting at നാളെ ten", Malayalam},
		{"devanagari is not malayalam", "नमस्ते", English},
		{"block lower bound", string(rune(0x0D00)), Malayalam},
		{"block upper bound", string(rune(0x0D7F)), Malayalam},
		{"just below block", string(rune(0x0CFF)), English},
		{"just above block", string(rune(0x0D80)), English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.text); got != tt.want {
				t.Errorf("Detect(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestFromCode(t *testing.T) {
	if got := FromCode("en"); got != English {
		t.Errorf("FromCode(en) = %v", got)
	}
	if got := FromCode("ml"); got != Malayalam {
		t.Errorf("FromCode(ml) = %v", got)
	}
}
