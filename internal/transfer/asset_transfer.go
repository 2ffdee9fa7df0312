package transfer

// AssetCreation carries the fields of the manual asset forms (captions and
// hashtag sets; images and videos arrive as file uploads instead).
type AssetCreation struct {
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Text        string   `json:"text"`
	Platform    string   `json:"platform"`
	Tone        string   `json:"tone"`
	Tags        []string `json:"tags"`
	Hashtags    []string `json:"hashtags"`
	Category    string   `json:"category"`
	Reach       string   `json:"reach"`
	Engagement  string   `json:"engagement"`
	Posts       string   `json:"posts"`
	Trend       string   `json:"trend"`
}

// AssetPatch is a partial metadata update; nil fields are left untouched.
type AssetPatch struct {
	Name        *string   `json:"name"`
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Date        *string   `json:"date"`
	Text        *string   `json:"text"`
	Platform    *string   `json:"platform"`
	Tone        *string   `json:"tone"`
	Tags        *[]string `json:"tags"`
	Hashtags    *[]string `json:"hashtags"`
	Category    *string   `json:"category"`
	Reach       *string   `json:"reach"`
	Engagement  *string   `json:"engagement"`
	Posts       *string   `json:"posts"`
	Trend       *string   `json:"trend"`
}
