package transfer

// ContentCreation carries the fields of the content creation form.
type ContentCreation struct {
	Type          string `json:"type"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Platform      string `json:"platform"`
	Tags          string `json:"tags"`
	Status        string `json:"status"`
	ScheduledDate string `json:"scheduledDate"`
}

// ContentPatch is a partial update; nil fields are left untouched.
type ContentPatch struct {
	Type          *string `json:"type"`
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	Platform      *string `json:"platform"`
	Tags          *string `json:"tags"`
	Status        *string `json:"status"`
	ScheduledDate *string `json:"scheduledDate"`
}

// ContentFilters is a conjunctive filter; empty fields are no constraint.
type ContentFilters struct {
	Type     string `json:"type"`
	Platform string `json:"platform"`
	Status   string `json:"status"`
	DateFrom string `json:"dateFrom"`
	DateTo   string `json:"dateTo"`
}

func (f ContentFilters) Empty() bool {
	return f.Type == "" && f.Platform == "" && f.Status == "" && f.DateFrom == "" && f.DateTo == ""
}

type BulkUpdate struct {
	IDs   []string     `json:"ids"`
	Patch ContentPatch `json:"patch"`
}

type BulkDelete struct {
	IDs []string `json:"ids"`
}
