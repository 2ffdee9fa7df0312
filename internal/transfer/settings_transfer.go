package transfer

type SettingsInfo struct {
	Theme            string `json:"theme"`
	SidebarCollapsed bool   `json:"sidebarCollapsed"`
	LastUpdated      string `json:"lastUpdated,omitempty"`
}
