package services

import (
	"net/url"
	"strings"

	"contentpilot/models"
)

// ExtractUsernameFromURL derives a display username from a profile URL using
// per-platform path conventions. It never fails: URLs that don't match the
// expected shape yield an empty string.
func ExtractUsernameFromURL(profileURL string, platform models.Platform) string {
	parsed, err := url.Parse(profileURL)
	if err != nil || parsed.Host == "" {
		return ""
	}

	segments := splitPath(parsed.Path)

	switch platform {
	case models.PlatformLinkedIn:
		// linkedin.com/in/<username>
		for i, seg := range segments {
			if seg == "in" && i+1 < len(segments) {
				return segments[i+1]
			}
		}
		return ""
	case models.PlatformTwitter, models.PlatformInstagram:
		if len(segments) == 0 {
			return ""
		}
		return strings.TrimPrefix(segments[len(segments)-1], "@")
	case models.PlatformTikTok, models.PlatformThreads:
		for _, seg := range segments {
			if strings.HasPrefix(seg, "@") {
				return strings.TrimPrefix(seg, "@")
			}
		}
		return ""
	case models.PlatformYouTube:
		// youtube.com/c/<name>, /channel/<id>, /user/<name> or /@handle
		for i, seg := range segments {
			switch seg {
			case "c", "channel", "user":
				if i+1 < len(segments) {
					return segments[i+1]
				}
			}
			if strings.HasPrefix(seg, "@") {
				return strings.TrimPrefix(seg, "@")
			}
		}
		return ""
	default:
		// Blogs and anything else identify by site rather than handle
		return strings.TrimPrefix(parsed.Hostname(), "www.")
	}
}

func splitPath(path string) []string {
	var segments []string
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}
