package service

import (
	"github.com/maheshrc27/socialplanner/internal/store"
	"github.com/maheshrc27/socialplanner/internal/transfer"
)

type SettingsService interface {
	Info() transfer.SettingsInfo
	ToggleTheme() string
	ToggleSidebar() bool
}

type settingsService struct {
	store *store.Store
}

func NewSettingsService(s *store.Store) SettingsService {
	return &settingsService{store: s}
}

func (s *settingsService) Info() transfer.SettingsInfo {
	return transfer.SettingsInfo{
		Theme:            s.store.Theme(),
		SidebarCollapsed: s.store.SidebarCollapsed(),
		LastUpdated:      s.store.LastUpdated(),
	}
}

func (s *settingsService) ToggleTheme() string {
	return s.store.ToggleTheme()
}

func (s *settingsService) ToggleSidebar() bool {
	return s.store.ToggleSidebar()
}
