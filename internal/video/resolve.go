package video

import (
	"net/url"
	"regexp"
	"strings"
)

// Kind classifies what the resolver produced for a pasted URL.
type Kind string

const (
	// KindEmpty means the input was blank; render nothing.
	KindEmpty Kind = "empty"
	// KindEmbed carries a URL safe to put in an iframe.
	KindEmbed Kind = "embed"
	// KindUnavailable means the provider was recognized but no playable
	// embed could be derived.
	KindUnavailable Kind = "unavailable"
	// KindInvalid flags a URL that must not be framed raw (e.g. a YouTube
	// page with no extractable video ID).
	KindInvalid Kind = "invalid"
)

type Resolution struct {
	Kind     Kind   `json:"kind"`
	EmbedURL string `json:"embed_url,omitempty"`
}

var (
	// Matches the known YouTube URL shapes: watch?v=ID, youtu.be/ID,
	// embed/ID, v/ID, shorts/ID. IDs are exactly 11 characters.
	youtubeIDPattern = regexp.MustCompile(`(?:youtube\.com/(?:[^/]+/.+/|(?:v|e(?:mbed)?)/|.*[?&]v=|shorts/)|youtu\.be/)([^"&?/\s]{11})`)

	vimeoIDPattern = regexp.MustCompile(`vimeo\.com/(?:channels/(?:\w+/)?|groups/(?:[^/]*)/videos/|album/(?:\d+)/video/|video/|)(\d+)(?:$|/|\?)`)
)

// Resolve maps a raw pasted URL to an embeddable player URL. Providers are
// tried in a fixed order (YouTube, Facebook, Vimeo, Drive, then heuristics);
// the order matters because a URL can coincidentally satisfy a later pattern.
func Resolve(raw string) Resolution {
	clean := strings.TrimSpace(raw)
	if clean == "" {
		return Resolution{Kind: KindEmpty}
	}

	if id := youTubeID(clean); id != "" {
		embed := "https://www.youtube.com/embed/" + id + "?autoplay=0&rel=0&modestbranding=1&playsinline=1"
		return Resolution{Kind: KindEmbed, EmbedURL: embed}
	}

	if strings.Contains(clean, "facebook.com") || strings.Contains(clean, "fb.watch") {
		embed := "https://www.facebook.com/plugins/video.php?href=" + url.QueryEscape(clean) + "&show_text=false&t=0"
		return Resolution{Kind: KindEmbed, EmbedURL: embed}
	}

	if strings.Contains(clean, "vimeo.com") {
		m := vimeoIDPattern.FindStringSubmatch(clean)
		if m == nil {
			return Resolution{Kind: KindUnavailable}
		}
		return Resolution{Kind: KindEmbed, EmbedURL: "https://player.vimeo.com/video/" + m[1]}
	}

	if strings.Contains(clean, "drive.google.com") {
		embed := strings.Replace(clean, "/view", "/preview", 1)
		embed = strings.Replace(embed, "/sharing", "/preview", 1)
		return Resolution{Kind: KindEmbed, EmbedURL: embed}
	}

	// Already an embed URL: pass through.
	if strings.Contains(clean, "/embed/") || strings.Contains(clean, "player.") {
		return Resolution{Kind: KindEmbed, EmbedURL: clean}
	}

	// A YouTube link that the ID pattern could not handle must not be
	// framed raw; a watch page refuses to render inside an iframe.
	if strings.Contains(clean, "youtube.com") || strings.Contains(clean, "youtu.be") {
		return Resolution{Kind: KindInvalid}
	}

	// Best effort: direct video files and other embeddable sources.
	return Resolution{Kind: KindEmbed, EmbedURL: clean}
}

func youTubeID(link string) string {
	m := youtubeIDPattern.FindStringSubmatch(link)
	if m == nil {
		return ""
	}
	return m[1]
}
