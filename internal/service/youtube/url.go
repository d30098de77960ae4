package youtube

import "strings"

// ExtractVideoID accepts a bare video ID, a youtube.com/watch URL, or a
// youtu.be short link and returns the ID.
func ExtractVideoID(urlOrID string) string {
	s := strings.TrimSpace(urlOrID)
	if !strings.Contains(s, "youtube.com") && !strings.Contains(s, "youtu.be") {
		return s
	}

	if idx := strings.Index(s, "youtu.be/"); idx >= 0 {
		rest := s[idx+len("youtu.be/"):]
		if q := strings.IndexByte(rest, '?'); q >= 0 {
			rest = rest[:q]
		}
		return rest
	}

	if idx := strings.Index(s, "watch?v="); idx >= 0 {
		rest := s[idx+len("watch?v="):]
		if amp := strings.IndexByte(rest, '&'); amp >= 0 {
			rest = rest[:amp]
		}
		return rest
	}

	return s
}

// channelRef describes how a channel argument should be resolved: directly
// by ID or via a handle search.
type channelRef struct {
	ID     string
	Handle string
}

// parseChannelRef accepts a bare channel ID, a /channel/ URL, or an @handle
// URL. Handles need a search round-trip to resolve; plain IDs do not.
func parseChannelRef(urlOrID string) channelRef {
	s := strings.TrimSpace(urlOrID)
	if !strings.Contains(s, "youtube.com") {
		if strings.HasPrefix(s, "@") {
			return channelRef{Handle: strings.TrimPrefix(s, "@")}
		}
		return channelRef{ID: s}
	}

	if idx := strings.Index(s, "/channel/"); idx >= 0 {
		rest := s[idx+len("/channel/"):]
		if slash := strings.IndexByte(rest, '/'); slash >= 0 {
			rest = rest[:slash]
		}
		return channelRef{ID: rest}
	}

	if idx := strings.Index(s, "/@"); idx >= 0 {
		rest := s[idx+len("/@"):]
		if slash := strings.IndexByte(rest, '/'); slash >= 0 {
			rest = rest[:slash]
		}
		return channelRef{Handle: rest}
	}

	return channelRef{ID: s}
}
