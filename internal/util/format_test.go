package util

import "testing"

func TestFormatCount(t *testing.T) {
	tests := []struct {
		n    uint64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.0K"},
		{1532, "1.5K"},
		{999_999, "1000.0K"},
		{1_000_000, "1.0M"},
		{2_450_000, "2.5M"},
		{1_000_000_000, "1.0B"},
		{12_340_000_000, "12.3B"},
	}
	for _, tt := range tests {
		if got := FormatCount(tt.n); got != tt.want {
			t.Errorf("FormatCount(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestParseISODuration(t *testing.T) {
	tests := []struct {
		raw  string
		want int64
	}{
		{"PT1H2M3S", 3723},
		{"PT15M33S", 933},
		{"PT45S", 45},
		{"PT2H", 7200},
		{"PT3M", 180},
		{"PT0S", 0},
		{"", 0},
		{"P1DT2H", 0},
		{"garbage", 0},
	}
	for _, tt := range tests {
		if got := ParseISODuration(tt.raw); got != tt.want {
			t.Errorf("ParseISODuration(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{3723, "1h 2m 3s"},
		{933, "15m 33s"},
		{45, "45s"},
		{0, "0s"},
		{-5, "0s"},
		{3600, "1h 0m 0s"},
	}
	for _, tt := range tests {
		if got := FormatSeconds(tt.seconds); got != tt.want {
			t.Errorf("FormatSeconds(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(150, 0, 100); got != 100 {
		t.Errorf("Clamp(150, 0, 100) = %v", got)
	}
	if got := Clamp(-5, 0, 100); got != 0 {
		t.Errorf("Clamp(-5, 0, 100) = %v", got)
	}
	if got := Clamp(42, 0, 100); got != 42 {
		t.Errorf("Clamp(42, 0, 100) = %v", got)
	}
}

func TestRounding(t *testing.T) {
	if got := Round1(66.666); got != 66.7 {
		t.Errorf("Round1(66.666) = %v", got)
	}
	if got := Round2(66.666); got != 66.67 {
		t.Errorf("Round2(66.666) = %v", got)
	}
}
