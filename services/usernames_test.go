package services

import (
	"testing"

	"contentpilot/models"

	"github.com/stretchr/testify/assert"
)

func TestExtractUsernameFromURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		platform models.Platform
		want     string
	}{
		{"linkedin profile", "https://www.linkedin.com/in/janedoe", models.PlatformLinkedIn, "janedoe"},
		{"linkedin trailing slash", "https://linkedin.com/in/janedoe/", models.PlatformLinkedIn, "janedoe"},
		{"linkedin company page has no handle", "https://www.linkedin.com/company/acme", models.PlatformLinkedIn, ""},
		{"twitter handle", "https://twitter.com/janedoe", models.PlatformTwitter, "janedoe"},
		{"x.com handle with at sign", "https://x.com/@janedoe", models.PlatformTwitter, "janedoe"},
		{"instagram handle", "https://www.instagram.com/janedoe/", models.PlatformInstagram, "janedoe"},
		{"tiktok at-handle", "https://www.tiktok.com/@janedoe", models.PlatformTikTok, "janedoe"},
		{"tiktok without at-handle", "https://www.tiktok.com/discover", models.PlatformTikTok, ""},
		{"threads at-handle", "https://www.threads.net/@janedoe", models.PlatformThreads, "janedoe"},
		{"youtube channel path", "https://www.youtube.com/channel/UC12345", models.PlatformYouTube, "UC12345"},
		{"youtube c path", "https://youtube.com/c/JaneDoe", models.PlatformYouTube, "JaneDoe"},
		{"youtube user path", "https://youtube.com/user/janedoe", models.PlatformYouTube, "janedoe"},
		{"youtube handle", "https://www.youtube.com/@janedoe", models.PlatformYouTube, "janedoe"},
		{"blog uses hostname", "https://www.example.com/articles", models.PlatformBlog, "example.com"},
		{"blog without www", "https://blog.example.com", models.PlatformBlog, "blog.example.com"},
		{"bare path never matches", "/in/janedoe", models.PlatformLinkedIn, ""},
		{"malformed url", "://not a url", models.PlatformTwitter, ""},
		{"empty url", "", models.PlatformInstagram, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractUsernameFromURL(tt.url, tt.platform))
		})
	}
}
