package models

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlatformValid(t *testing.T) {
	for _, p := range AllPlatforms {
		assert.True(t, p.Valid(), "platform %s", p)
	}
	assert.False(t, Platform("myspace").Valid())
	assert.False(t, Platform("").Valid())
	assert.False(t, Platform("LinkedIn").Valid(), "platform values are lowercase")
}

func TestPlatformDisplayName(t *testing.T) {
	assert.Equal(t, "LinkedIn", PlatformLinkedIn.DisplayName())
	assert.Equal(t, "Twitter/X", PlatformTwitter.DisplayName())
	assert.Equal(t, "TikTok", PlatformTikTok.DisplayName())
	assert.Equal(t, "unknown", Platform("unknown").DisplayName())
}

func TestNewID(t *testing.T) {
	idShape := regexp.MustCompile(`^source_\d+_[a-z0-9]{9}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID("source")
		assert.Regexp(t, idShape, id)
		assert.False(t, seen[id], "ids must not repeat")
		seen[id] = true
	}
}
