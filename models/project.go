package models

import (
	"time"
)

// Project is the tenant unit: it owns logs, events, and at most one
// active API key. Name uniqueness is scoped per owner, not global.
type Project struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name      string    `json:"name" gorm:"not null;uniqueIndex:idx_projects_owner_name"`
	OwnerID   string    `json:"ownerId" gorm:"type:uuid;not null;index;uniqueIndex:idx_projects_owner_name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	Owner   User     `json:"owner,omitempty" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Logs    []Log    `json:"logs,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Events  []Event  `json:"events,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	APIKeys []APIKey `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}
