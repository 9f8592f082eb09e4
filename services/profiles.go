package services

import (
	"contentpilot/models"
)

// GroupWritingProfiles rebuilds writing-profile view models from raw social
// profile rows. Rows sharing a ProfileGroup merge into one profile; ungrouped
// rows each stand alone. The projection is pure: group order follows first
// appearance in rows, and styles maps anchor source ids to their latest style
// profile.
func GroupWritingProfiles(rows []*models.SocialProfile, styles map[string]*models.StyleProfile) []*models.WritingProfile {
	groups := make(map[string][]*models.SocialProfile)
	var order []string

	for _, row := range rows {
		key := row.GroupKey()
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], row)
	}

	profiles := make([]*models.WritingProfile, 0, len(order))
	for _, key := range order {
		sources := groups[key]
		first := sources[0]

		name := first.ProfileName
		if name == "" {
			name = first.Username
		}
		if name == "" {
			name = "Unnamed Profile"
		}

		profile := &models.WritingProfile{
			ID:          key,
			WorkspaceID: first.WorkspaceID,
			Name:        name,
			Sources:     make([]models.SocialProfile, 0, len(sources)),
			CreatedAt:   first.CreatedAt,
			UpdatedAt:   first.CreatedAt,
		}

		for _, src := range sources {
			profile.Sources = append(profile.Sources, *src)
			if src.IsActive {
				profile.IsActive = true
			}
			if profile.LastAnalyzed == nil && src.LastAnalyzed != nil {
				profile.LastAnalyzed = src.LastAnalyzed
			}
			if profile.StyleProfile == nil {
				if style, ok := styles[src.ID]; ok {
					profile.StyleProfile = style
				}
			}
		}

		profiles = append(profiles, profile)
	}
	return profiles
}
