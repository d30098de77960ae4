// Package transcript retrieves video captions through the Innertube player
// endpoint. The official Data API only exposes caption downloads to video
// owners, so this goes through the same endpoint the mobile clients use.
package transcript

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/archish9/youtube-mcp/internal/domain"
	apperrors "github.com/archish9/youtube-mcp/pkg/errors"
	"go.uber.org/zap"
)

const (
	innertubePlayerURL = "https://www.youtube.com/youtubei/v1/player"
	androidVersion     = "20.10.38"
	androidUserAgent   = "com.google.android.youtube/" + androidVersion + " (Linux; U; Android 11) gzip"
	maxCaptionBytes    = 512 * 1024
)

type Service struct {
	client *http.Client
	logger *zap.Logger
}

func NewService(logger *zap.Logger) *Service {
	return &Service{
		client: &http.Client{Timeout: 15 * time.Second},
		logger: logger,
	}
}

type playerRequest struct {
	VideoID        string        `json:"videoId"`
	Context        playerContext `json:"context"`
	RacyCheckOk    bool          `json:"racyCheckOk"`
	ContentCheckOk bool          `json:"contentCheckOk"`
}

type playerContext struct {
	Client playerClient `json:"client"`
}

type playerClient struct {
	ClientName        string `json:"clientName"`
	ClientVersion     string `json:"clientVersion"`
	AndroidSdkVersion int    `json:"androidSdkVersion,omitempty"`
	Hl                string `json:"hl,omitempty"`
	Gl                string `json:"gl,omitempty"`
}

type playerResponse struct {
	Captions *struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
	PlayabilityStatus *struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"` // "asr" = auto-generated
}

type timedText struct {
	Lines []timedTextLine `xml:"text"`
}

type timedTextLine struct {
	Start float64 `xml:"start,attr"`
	Dur   float64 `xml:"dur,attr"`
	Text  string  `xml:",chardata"`
}

// Fetch retrieves the transcript for a video, preferring a manual track in
// the requested language, then an auto-generated one, then any English
// track.
func (s *Service) Fetch(ctx context.Context, videoID, language string) (*domain.Transcript, error) {
	if language == "" {
		language = "en"
	}

	tracks, err := s.captionTracks(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if len(tracks) == 0 {
		return nil, apperrors.NewTranscriptError(
			fmt.Sprintf("transcripts are disabled for this video: %s", videoID), videoID, "disabled")
	}

	track, ok := pickTrack(tracks, language)
	if !ok {
		return nil, apperrors.NewTranscriptError(
			fmt.Sprintf("no transcript found for language %q in video: %s", language, videoID), videoID, "language")
	}

	lines, err := s.fetchTimedText(ctx, track.BaseURL)
	if err != nil {
		terr := apperrors.NewTranscriptError("failed to fetch caption track", videoID, "fetch")
		terr.Cause = err
		return nil, terr
	}

	transcript := &domain.Transcript{
		VideoID:      videoID,
		LanguageCode: track.LanguageCode,
		IsGenerated:  track.Kind == "asr",
	}

	var fullText strings.Builder
	for _, line := range lines {
		text := strings.TrimSpace(html.UnescapeString(line.Text))
		if text == "" {
			continue
		}
		minutes := int(line.Start) / 60
		seconds := int(line.Start) % 60
		transcript.Segments = append(transcript.Segments, domain.TranscriptSegment{
			Timestamp:        fmt.Sprintf("%02d:%02d", minutes, seconds),
			TimestampSeconds: line.Start,
			Duration:         line.Dur,
			Text:             text,
		})
		if fullText.Len() > 0 {
			fullText.WriteByte(' ')
		}
		fullText.WriteString(text)
	}
	transcript.FullText = fullText.String()

	return transcript, nil
}

func (s *Service) captionTracks(ctx context.Context, videoID string) ([]captionTrack, error) {
	reqBody, err := json.Marshal(playerRequest{
		VideoID: videoID,
		Context: playerContext{
			Client: playerClient{
				ClientName:        "ANDROID",
				ClientVersion:     androidVersion,
				AndroidSdkVersion: 30,
				Hl:                "en",
				Gl:                "US",
			},
		},
		RacyCheckOk:    true,
		ContentCheckOk: true,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, innertubePlayerURL+"?prettyPrint=false", bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", androidUserAgent)
	req.Header.Set("X-Youtube-Client-Name", "3")
	req.Header.Set("X-Youtube-Client-Version", androidVersion)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, apperrors.NewAPIError("innertube player request failed", 0, err)
	}
	defer resp.Body.Close()

	var player playerResponse
	if err := json.NewDecoder(resp.Body).Decode(&player); err != nil {
		return nil, apperrors.NewAPIError("failed to decode player response", resp.StatusCode, err)
	}

	if player.Captions == nil {
		if player.PlayabilityStatus != nil && player.PlayabilityStatus.Status != "OK" {
			reason := player.PlayabilityStatus.Reason
			if reason == "" {
				reason = player.PlayabilityStatus.Status
			}
			s.logger.Warn("Video unplayable", zap.String("videoId", videoID), zap.String("reason", reason))
			return nil, apperrors.NewTranscriptError(
				fmt.Sprintf("video is unavailable: %s", videoID), videoID, "unavailable")
		}
		return nil, nil
	}

	return player.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks, nil
}

func pickTrack(tracks []captionTrack, language string) (captionTrack, bool) {
	// Manual track in the requested language wins over auto-generated.
	for _, t := range tracks {
		if t.LanguageCode == language && t.Kind != "asr" {
			return t, true
		}
	}
	for _, t := range tracks {
		if t.LanguageCode == language {
			return t, true
		}
	}
	for _, t := range tracks {
		if strings.HasPrefix(t.LanguageCode, "en") {
			return t, true
		}
	}
	return captionTrack{}, false
}

func (s *Service) fetchTimedText(ctx context.Context, baseURL string) ([]timedTextLine, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", androidUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxCaptionBytes))
	if err != nil {
		return nil, err
	}

	var tt timedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return nil, fmt.Errorf("parse timedtext XML: %w", err)
	}

	return tt.Lines, nil
}
