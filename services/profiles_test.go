package services

import (
	"testing"
	"time"

	"contentpilot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupWritingProfilesMergesByGroup(t *testing.T) {
	analyzedAt := time.Now().UTC()
	rows := []*models.SocialProfile{
		{ID: "source_a", WorkspaceID: "workspace_1", Platform: models.PlatformLinkedIn, ProfileName: "Jane", ProfileGroup: "profile_1", IsActive: true},
		{ID: "source_b", WorkspaceID: "workspace_1", Platform: models.PlatformTwitter, ProfileName: "Jane", ProfileGroup: "profile_1", LastAnalyzed: &analyzedAt},
		{ID: "source_c", WorkspaceID: "workspace_1", Platform: models.PlatformInstagram, Username: "solo"},
	}

	profiles := GroupWritingProfiles(rows, nil)
	require.Len(t, profiles, 2)

	grouped := profiles[0]
	assert.Equal(t, "profile_1", grouped.ID)
	assert.Equal(t, "Jane", grouped.Name)
	assert.Len(t, grouped.Sources, 2)
	assert.True(t, grouped.IsActive, "active when any source is active")
	require.NotNil(t, grouped.LastAnalyzed)
	assert.Equal(t, analyzedAt, *grouped.LastAnalyzed)

	// An ungrouped row stands alone, keyed by its own id and named by username
	solo := profiles[1]
	assert.Equal(t, "source_c", solo.ID)
	assert.Equal(t, "solo", solo.Name)
	assert.Len(t, solo.Sources, 1)
	assert.False(t, solo.IsActive)
}

func TestGroupWritingProfilesAttachesStyle(t *testing.T) {
	rows := []*models.SocialProfile{
		{ID: "source_a", ProfileGroup: "profile_1"},
		{ID: "source_b", ProfileGroup: "profile_1"},
	}
	style := &models.StyleProfile{ID: "style_1", ProfileID: "source_b"}

	// Style anchored to any source of the group attaches to the profile
	profiles := GroupWritingProfiles(rows, map[string]*models.StyleProfile{"source_b": style})
	require.Len(t, profiles, 1)
	assert.Equal(t, style, profiles[0].StyleProfile)

	profiles = GroupWritingProfiles(rows, map[string]*models.StyleProfile{"source_other": style})
	assert.Nil(t, profiles[0].StyleProfile)
}

func TestGroupWritingProfilesNameFallbacks(t *testing.T) {
	tests := []struct {
		name string
		row  models.SocialProfile
		want string
	}{
		{"profile name wins", models.SocialProfile{ID: "s1", ProfileName: "Jane", Username: "janedoe"}, "Jane"},
		{"username second", models.SocialProfile{ID: "s1", Username: "janedoe"}, "janedoe"},
		{"placeholder last", models.SocialProfile{ID: "s1"}, "Unnamed Profile"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profiles := GroupWritingProfiles([]*models.SocialProfile{&tt.row}, nil)
			require.Len(t, profiles, 1)
			assert.Equal(t, tt.want, profiles[0].Name)
		})
	}
}

func TestGroupWritingProfilesPreservesOrder(t *testing.T) {
	rows := []*models.SocialProfile{
		{ID: "source_1", ProfileGroup: "profile_b"},
		{ID: "source_2", ProfileGroup: "profile_a"},
		{ID: "source_3", ProfileGroup: "profile_b"},
	}

	profiles := GroupWritingProfiles(rows, nil)
	require.Len(t, profiles, 2)
	assert.Equal(t, "profile_b", profiles[0].ID, "order follows first appearance")
	assert.Equal(t, "profile_a", profiles[1].ID)
	assert.Len(t, profiles[0].Sources, 2)
}

func TestGroupWritingProfilesEmptyInput(t *testing.T) {
	profiles := GroupWritingProfiles(nil, nil)
	assert.Empty(t, profiles)
	assert.NotNil(t, profiles, "serializes as [] rather than null")
}
