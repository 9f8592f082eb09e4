package models

// Platform identifies a supported social network or publication channel.
type Platform string

const (
	PlatformLinkedIn  Platform = "linkedin"
	PlatformTwitter   Platform = "twitter"
	PlatformInstagram Platform = "instagram"
	PlatformTikTok    Platform = "tiktok"
	PlatformYouTube   Platform = "youtube"
	PlatformThreads   Platform = "threads"
	PlatformBlog      Platform = "blog"
)

// AllPlatforms lists every platform a source can be tracked on.
var AllPlatforms = []Platform{
	PlatformLinkedIn,
	PlatformTwitter,
	PlatformInstagram,
	PlatformTikTok,
	PlatformYouTube,
	PlatformThreads,
	PlatformBlog,
}

func (p Platform) Valid() bool {
	for _, known := range AllPlatforms {
		if p == known {
			return true
		}
	}
	return false
}

func (p Platform) String() string {
	return string(p)
}

// DisplayName returns the human-facing platform name used in prompts and
// responses.
func (p Platform) DisplayName() string {
	switch p {
	case PlatformLinkedIn:
		return "LinkedIn"
	case PlatformTwitter:
		return "Twitter/X"
	case PlatformInstagram:
		return "Instagram"
	case PlatformTikTok:
		return "TikTok"
	case PlatformYouTube:
		return "YouTube"
	case PlatformThreads:
		return "Threads"
	case PlatformBlog:
		return "Blog"
	default:
		return string(p)
	}
}
