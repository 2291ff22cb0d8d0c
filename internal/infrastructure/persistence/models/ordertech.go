package models

import "github.com/restopos/backend/internal/domain/ordertech"

// OrderTechSettingsModel persists the single platform connection record.
type OrderTechSettingsModel struct {
	BaseModel
	Name        string `gorm:"size:128;not null"`
	BaseURL     string `gorm:"size:512"`
	APIKey      string `gorm:"size:128"`
	BearerToken string `gorm:"size:2048"`
}

// TableName returns the table name for OrderTechSettingsModel
func (OrderTechSettingsModel) TableName() string { return "ordertech_settings" }

// ToDomain converts OrderTechSettingsModel to domain Settings
func (m *OrderTechSettingsModel) ToDomain() *ordertech.Settings {
	return &ordertech.Settings{
		ID:          m.ID,
		Name:        m.Name,
		BaseURL:     m.BaseURL,
		APIKey:      m.APIKey,
		BearerToken: m.BearerToken,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromDomain populates OrderTechSettingsModel from domain Settings
func (m *OrderTechSettingsModel) FromDomain(s *ordertech.Settings) {
	m.ID = s.ID
	m.Name = s.Name
	m.BaseURL = s.BaseURL
	m.APIKey = s.APIKey
	m.BearerToken = s.BearerToken
}
