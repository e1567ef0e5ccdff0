package models

import (
	"time"
)

// APIKey stores only the SHA-256 digest of a project secret plus a masked
// display form. The plaintext is handed out once at creation and never
// persisted. The partial unique index lets the store, not the application,
// arbitrate concurrent rotations: at most one active key per project.
type APIKey struct {
	ID         string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ProjectID  string     `json:"projectId" gorm:"type:uuid;not null;index;uniqueIndex:idx_api_keys_one_active,where:is_active = true"`
	KeyHash    string     `json:"-" gorm:"size:255;uniqueIndex;not null"`
	MaskedKey  string     `json:"maskedKey" gorm:"size:64;not null"`
	IsActive   bool       `json:"isActive" gorm:"not null;default:true"`
	LastUsedAt *time.Time `json:"lastUsedAt"`
	CreatedAt  time.Time  `json:"createdAt"`

	// Relations
	Project Project `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}
