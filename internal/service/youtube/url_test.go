package youtube

import "testing"

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare id", "dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"watch url with extra params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ"},
		{"short link", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"short link with params", "https://youtu.be/dQw4w9WgXcQ?si=abc", "dQw4w9WgXcQ"},
		{"whitespace trimmed", "  dQw4w9WgXcQ  ", "dQw4w9WgXcQ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractVideoID(tt.input); got != tt.want {
				t.Errorf("ExtractVideoID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseChannelRef(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		id     string
		handle string
	}{
		{"bare id", "UC1opHUrw8rvnsadT-iGp7Cg", "UC1opHUrw8rvnsadT-iGp7Cg", ""},
		{"bare handle", "@mkbhd", "", "mkbhd"},
		{"channel url", "https://www.youtube.com/channel/UC1opHUrw8rvnsadT-iGp7Cg", "UC1opHUrw8rvnsadT-iGp7Cg", ""},
		{"channel url with suffix", "https://www.youtube.com/channel/UC1opHUrw8rvnsadT-iGp7Cg/videos", "UC1opHUrw8rvnsadT-iGp7Cg", ""},
		{"handle url", "https://www.youtube.com/@mkbhd", "", "mkbhd"},
		{"handle url with suffix", "https://www.youtube.com/@mkbhd/videos", "", "mkbhd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := parseChannelRef(tt.input)
			if ref.ID != tt.id || ref.Handle != tt.handle {
				t.Errorf("parseChannelRef(%q) = %+v, want ID=%q Handle=%q", tt.input, ref, tt.id, tt.handle)
			}
		})
	}
}
