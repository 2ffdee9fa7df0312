package models

import "time"

type ContentItem struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Platform      string    `json:"platform"`
	Tags          string    `json:"tags"`
	Status        string    `json:"status"` // Draft, Scheduled, Published, Archived
	ScheduledDate string    `json:"scheduledDate,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

const (
	ContentStatusDraft     = "Draft"
	ContentStatusScheduled = "Scheduled"
	ContentStatusPublished = "Published"
	ContentStatusArchived  = "Archived"
)

// ScheduledDateLayout is the layout produced by datetime-local form inputs.
const ScheduledDateLayout = "2006-01-02T15:04"

var ContentTypes = []string{
	"Video", "Blog", "Social", "Story", "Reel", "Post", "Article", "Podcast",
}

var Platforms = []string{
	"Instagram", "YouTube", "Twitter", "Facebook", "LinkedIn", "TikTok", "Pinterest", "Medium",
}
