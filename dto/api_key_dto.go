package dto

import (
	"time"

	"github.com/logtide-backend/models"
)

// APIKeyResponse exposes key metadata without the secret: only the masked
// form ever leaves the system after creation.
type APIKeyResponse struct {
	ID         string     `json:"id"`
	ProjectID  string     `json:"projectId"`
	MaskedKey  string     `json:"maskedKey"`
	Active     bool       `json:"active"`
	CreatedAt  time.Time  `json:"createdAt"`
	LastUsedAt *time.Time `json:"lastUsedAt"`
}

// NewAPIKeyResponse builds the metadata view of a stored key.
func NewAPIKeyResponse(key models.APIKey) APIKeyResponse {
	return APIKeyResponse{
		ID:         key.ID,
		ProjectID:  key.ProjectID,
		MaskedKey:  key.MaskedKey,
		Active:     key.IsActive,
		CreatedAt:  key.CreatedAt,
		LastUsedAt: key.LastUsedAt,
	}
}

// APIKeyCreatedResponse is returned once, at creation or rotation: the only
// time the plaintext key is visible.
type APIKeyCreatedResponse struct {
	APIKeyResponse
	Key string `json:"key"`
}
