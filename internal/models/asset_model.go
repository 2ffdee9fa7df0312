package models

// Asset is a categorized creative resource. Records are loosely shaped at
// rest: uploads fill the file fields, captions fill the text fields and
// hashtag sets fill the hashtag fields. The remaining fields stay empty and
// are dropped from the serialized form.
type Asset struct {
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"` // YYYY-MM-DD

	// image and video uploads
	Size int64  `json:"size,omitempty"` // bytes
	Type string `json:"type,omitempty"` // MIME type
	URL  string `json:"url,omitempty"`

	// captions
	Text           string   `json:"text,omitempty"`
	Platform       string   `json:"platform,omitempty"`
	Tone           string   `json:"tone,omitempty"`
	CharacterCount int      `json:"characterCount,omitempty"`
	Tags           []string `json:"tags,omitempty"`

	// hashtag sets
	Hashtags   []string `json:"hashtags,omitempty"`
	Category   string   `json:"category,omitempty"`
	Reach      string   `json:"reach,omitempty"`
	Engagement string   `json:"engagement,omitempty"`
	Posts      string   `json:"posts,omitempty"`
	Trend      string   `json:"trend,omitempty"` // rising, stable, falling
}

const (
	AssetCategoryImages   = "images"
	AssetCategoryVideos   = "videos"
	AssetCategoryCaptions = "captions"
	AssetCategoryHashtags = "hashtags"
)

var AssetCategories = []string{
	AssetCategoryImages,
	AssetCategoryVideos,
	AssetCategoryCaptions,
	AssetCategoryHashtags,
}

// AssetDateLayout is the layout asset dates are stored in.
const AssetDateLayout = "2006-01-02"

// AssetLibrary holds the four independent per-category collections.
type AssetLibrary struct {
	Images   []Asset `json:"images"`
	Videos   []Asset `json:"videos"`
	Captions []Asset `json:"captions"`
	Hashtags []Asset `json:"hashtags"`
}

// Slice returns a pointer to the collection for category, or nil if the
// category is unknown.
func (l *AssetLibrary) Slice(category string) *[]Asset {
	switch category {
	case AssetCategoryImages:
		return &l.Images
	case AssetCategoryVideos:
		return &l.Videos
	case AssetCategoryCaptions:
		return &l.Captions
	case AssetCategoryHashtags:
		return &l.Hashtags
	}
	return nil
}

func IsAssetCategory(category string) bool {
	for _, c := range AssetCategories {
		if c == category {
			return true
		}
	}
	return false
}
