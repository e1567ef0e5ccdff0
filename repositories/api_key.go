package repositories

import (
	"time"

	"github.com/logtide-backend/models"
	"gorm.io/gorm"
)

// APIKeyRepository handles database operations for project API keys
type APIKeyRepository struct {
	db *gorm.DB
}

// NewAPIKeyRepository creates a new API key repository instance
func NewAPIKeyRepository(db *gorm.DB) *APIKeyRepository {
	return &APIKeyRepository{db: db}
}

// FindActiveByProject retrieves the currently active key for a project
func (r *APIKeyRepository) FindActiveByProject(projectID string) (models.APIKey, error) {
	var key models.APIKey
	result := r.db.First(&key, "project_id = ? AND is_active = ?", projectID, true)
	return key, result.Error
}

// FindActiveByHash retrieves an active key by its digest. Inactive keys
// are invisible here, so a revoked secret authenticates exactly like an
// unknown one.
func (r *APIKeyRepository) FindActiveByHash(keyHash string) (models.APIKey, error) {
	var key models.APIKey
	result := r.db.First(&key, "key_hash = ? AND is_active = ?", keyHash, true)
	return key, result.Error
}

// Rotate deactivates any existing key for the project and inserts the new
// one in a single transaction. If the insert fails the deactivation rolls
// back, leaving the prior key active. The partial unique index on
// (project_id) WHERE is_active makes concurrent rotations fail rather than
// leave two active keys.
func (r *APIKeyRepository) Rotate(projectID string, key models.APIKey) (models.APIKey, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.APIKey{}).
			Where("project_id = ? AND is_active = ?", projectID, true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Create(&key).Error
	})
	return key, err
}

// Deactivate flips the active key off. Returns false when no active key
// existed, which is not an error.
func (r *APIKeyRepository) Deactivate(projectID string) (bool, error) {
	result := r.db.Model(&models.APIKey{}).
		Where("project_id = ? AND is_active = ?", projectID, true).
		Update("is_active", false)
	return result.RowsAffected > 0, result.Error
}

// TouchLastUsed records that the key just authenticated a request
func (r *APIKeyRepository) TouchLastUsed(id string, at time.Time) error {
	return r.db.Model(&models.APIKey{}).Where("id = ?", id).Update("last_used_at", at).Error
}

// CountActiveByProject counts active keys for a project
func (r *APIKeyRepository) CountActiveByProject(projectID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.APIKey{}).
		Where("project_id = ? AND is_active = ?", projectID, true).
		Count(&count).Error
	return count, err
}
