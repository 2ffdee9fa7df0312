package models

import "time"

// Snapshot is the persisted subset of planner state.
type Snapshot struct {
	Contents         []ContentItem `json:"contents"`
	Theme            string        `json:"theme"`
	SidebarCollapsed bool          `json:"sidebarCollapsed"`
	Assets           AssetLibrary  `json:"assets"`
}

const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// DefaultSnapshot is the state a fresh installation starts from: dark theme
// and a single example content item so the dashboard is not empty.
func DefaultSnapshot(now time.Time) Snapshot {
	return Snapshot{
		Contents: []ContentItem{
			{
				ID:            "example-1",
				Type:          "Story",
				Title:         "Behind the Scenes",
				Description:   "A peek into our creative process and daily workflow",
				Platform:      "Instagram",
				Tags:          "behind-scenes, creative, workflow",
				Status:        ContentStatusPublished,
				ScheduledDate: "2024-01-15T10:00",
				CreatedAt:     now,
				UpdatedAt:     now,
			},
		},
		Theme:            ThemeDark,
		SidebarCollapsed: false,
		Assets: AssetLibrary{
			Images:   []Asset{},
			Videos:   []Asset{},
			Captions: []Asset{},
			Hashtags: []Asset{},
		},
	}
}
