package services

import (
	"testing"

	"github.com/logtide-backend/dto"
	"github.com/logtide-backend/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func registerTestUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()

	name := "Test User"
	created := NewAuthService(db).Register(dto.RegisterRequest{
		Email:       email,
		Password:    "password123",
		DisplayName: &name,
	})
	require.True(t, created.IsOk(), "failed to register %s: %v", email, created)
	return created.Unwrap()
}

func createTestProject(t *testing.T, db *gorm.DB, ownerID, name string) models.Project {
	t.Helper()

	created := NewProjectService(db).Create(name, ownerID)
	require.True(t, created.IsOk(), "failed to create project %s: %v", name, created)
	return created.Unwrap()
}
