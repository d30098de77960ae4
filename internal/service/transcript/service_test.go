package transcript

import "testing"

func TestPickTrackPrefersManualOverAuto(t *testing.T) {
	tracks := []captionTrack{
		{BaseURL: "auto", LanguageCode: "en", Kind: "asr"},
		{BaseURL: "manual", LanguageCode: "en"},
	}

	track, ok := pickTrack(tracks, "en")

	if !ok {
		t.Fatal("expected a track")
	}
	if track.BaseURL != "manual" {
		t.Errorf("picked %q, want manual track", track.BaseURL)
	}
}

func TestPickTrackFallsBackToAuto(t *testing.T) {
	tracks := []captionTrack{
		{BaseURL: "auto-es", LanguageCode: "es", Kind: "asr"},
	}

	track, ok := pickTrack(tracks, "es")

	if !ok || track.BaseURL != "auto-es" {
		t.Errorf("pickTrack = %+v, %v", track, ok)
	}
}

func TestPickTrackFallsBackToEnglish(t *testing.T) {
	tracks := []captionTrack{
		{BaseURL: "ko", LanguageCode: "ko"},
		{BaseURL: "en-us", LanguageCode: "en-US", Kind: "asr"},
	}

	track, ok := pickTrack(tracks, "fr")

	if !ok || track.BaseURL != "en-us" {
		t.Errorf("pickTrack = %+v, %v", track, ok)
	}
}

func TestPickTrackNoMatch(t *testing.T) {
	tracks := []captionTrack{
		{BaseURL: "ko", LanguageCode: "ko"},
	}

	if _, ok := pickTrack(tracks, "fr"); ok {
		t.Error("expected no track")
	}
}
