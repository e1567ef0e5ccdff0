package services

import (
	"errors"
	"log"
	"time"

	"github.com/logtide-backend/lib/maybe"
	"github.com/logtide-backend/models"
	"github.com/logtide-backend/repositories"
	"github.com/logtide-backend/utils"
	"gorm.io/gorm"
)

// CreatedKey pairs a stored key with its plaintext secret. The plaintext
// exists only in this value, returned once from Create or Rotate.
type CreatedKey struct {
	Key       models.APIKey
	Plaintext string
}

// APIKeyService generates, rotates, deactivates, and verifies per-project
// API keys.
type APIKeyService struct {
	keys     *repositories.APIKeyRepository
	projects *repositories.ProjectRepository
}

// NewAPIKeyService creates a new API key service instance
func NewAPIKeyService(db *gorm.DB) *APIKeyService {
	return &APIKeyService{
		keys:     repositories.NewAPIKeyRepository(db),
		projects: repositories.NewProjectRepository(db),
	}
}

// Create issues a new key for the project, deactivating any existing key
// in the same transaction. The returned plaintext is never retrievable
// again.
func (s *APIKeyService) Create(projectID string) utils.OpResult[CreatedKey] {
	if _, err := s.projects.FindByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Fail[CreatedKey](utils.NotFoundOrForbiddenError("project"))
		}
		return utils.Fail[CreatedKey](utils.InternalError())
	}

	plaintext, keyHash, masked := utils.GenerateAPIKey()
	key := models.APIKey{
		ProjectID: projectID,
		KeyHash:   keyHash,
		MaskedKey: masked,
		IsActive:  true,
	}

	key, err := s.keys.Rotate(projectID, key)
	if err != nil {
		// The loser of a concurrent rotation hits the partial unique
		// index; the winner's key stays active.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.Fail[CreatedKey](utils.ConflictError("key rotation conflict, retry"))
		}
		log.Printf("failed to create API key for project %s: %v", projectID, err)
		return utils.Fail[CreatedKey](utils.InternalError())
	}

	return utils.Ok(CreatedKey{Key: key, Plaintext: plaintext})
}

// Rotate is Create under its caller-facing "reset" name: deactivate the
// prior key and activate a new one atomically. The old plaintext is gone
// for good.
func (s *APIKeyService) Rotate(projectID string) utils.OpResult[CreatedKey] {
	return s.Create(projectID)
}

// Deactivate turns off the project's active key. Idempotent: a second
// call returns false, not an error.
func (s *APIKeyService) Deactivate(projectID string) utils.OpResult[bool] {
	deactivated, err := s.keys.Deactivate(projectID)
	if err != nil {
		log.Printf("failed to deactivate API key for project %s: %v", projectID, err)
		return utils.Fail[bool](utils.InternalError())
	}
	return utils.Ok(deactivated)
}

// LookupByProject returns the active key's metadata. The plaintext is not
// part of the model and cannot be returned from here.
func (s *APIKeyService) LookupByProject(projectID string) maybe.Maybe[models.APIKey] {
	key, err := s.keys.FindActiveByProject(projectID)
	if err != nil {
		return maybe.Nothing[models.APIKey]()
	}
	return maybe.Some(key)
}

// Authenticate hashes the presented secret and looks up an active key with
// a matching digest, comparing digests in constant time. A wrong key and
// an inactive key are indistinguishable: both are Nothing. On success the
// last-used timestamp is touched.
func (s *APIKeyService) Authenticate(presented string) maybe.Maybe[models.APIKey] {
	keyHash := utils.HashAPIKey(presented)

	key, err := s.keys.FindActiveByHash(keyHash)
	if err != nil {
		return maybe.Nothing[models.APIKey]()
	}

	if !utils.VerifyAPIKey(presented, key.KeyHash) {
		return maybe.Nothing[models.APIKey]()
	}

	now := time.Now()
	if err := s.keys.TouchLastUsed(key.ID, now); err != nil {
		log.Printf("failed to touch last_used_at for key %s: %v", key.ID, err)
	} else {
		key.LastUsedAt = &now
	}

	return maybe.Some(key)
}
