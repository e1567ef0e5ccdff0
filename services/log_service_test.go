package services

import (
	"testing"

	"github.com/logtide-backend/database"
	"github.com/logtide-backend/dto"
	"github.com/logtide-backend/models"
	"github.com/logtide-backend/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedLog(t *testing.T, svc *LogService, projectID string, req dto.CreateLogRequest) models.Log {
	t.Helper()
	created := svc.Create(projectID, req)
	require.True(t, created.IsOk(), "failed to seed log: %v", created)
	return created.Unwrap()
}

func TestCreateLogValidatesLevel(t *testing.T) {
	db := database.OpenTest(t)
	svc := NewLogService(db)

	alice := registerTestUser(t, db, "alice@x.com")
	project := createTestProject(t, db, alice.ID, "demo")

	created := svc.Create(project.ID, dto.CreateLogRequest{Level: "ERROR", Message: "boom"})
	require.True(t, created.IsOk())
	assert.Equal(t, "error", created.Unwrap().Level, "levels are normalized to lowercase")

	invalid := svc.Create(project.ID, dto.CreateLogRequest{Level: "shout", Message: "boom"})
	require.True(t, invalid.IsErr())
	assert.Equal(t, utils.KindValidation, invalid.UnwrapErr().Kind)
}

func TestListLogsRequiresOwnership(t *testing.T) {
	db := database.OpenTest(t)
	svc := NewLogService(db)

	alice := registerTestUser(t, db, "alice@x.com")
	mallory := registerTestUser(t, db, "mallory@x.com")
	project := createTestProject(t, db, alice.ID, "demo")
	seedLog(t, svc, project.ID, dto.CreateLogRequest{Level: "info", Message: "one"})

	listed := svc.ListByProject(project.ID, alice.ID)
	require.True(t, listed.IsOk())
	assert.Len(t, listed.Unwrap(), 1)

	denied := svc.ListByProject(project.ID, mallory.ID)
	require.True(t, denied.IsErr())
	assert.Equal(t, utils.KindNotFoundOrForbidden, denied.UnwrapErr().Kind)
}

func TestLogFilters(t *testing.T) {
	db := database.OpenTest(t)
	svc := NewLogService(db)

	alice := registerTestUser(t, db, "alice@x.com")
	project := createTestProject(t, db, alice.ID, "demo")

	checkout := "checkout"
	seedLog(t, svc, project.ID, dto.CreateLogRequest{Level: "error", Message: "payment failed", Category: &checkout, Tags: []string{"billing", "urgent"}})
	seedLog(t, svc, project.ID, dto.CreateLogRequest{Level: "info", Message: "cart viewed", Category: &checkout})
	seedLog(t, svc, project.ID, dto.CreateLogRequest{Level: "error", Message: "other", Tags: []string{"misc"}})

	byLevel := svc.ListByLevel(project.ID, "error", alice.ID)
	require.True(t, byLevel.IsOk())
	assert.Len(t, byLevel.Unwrap(), 2)

	badLevel := svc.ListByLevel(project.ID, "loud", alice.ID)
	require.True(t, badLevel.IsErr())
	assert.Equal(t, utils.KindValidation, badLevel.UnwrapErr().Kind)

	byCategory := svc.ListByCategory(project.ID, "checkout", alice.ID)
	require.True(t, byCategory.IsOk())
	assert.Len(t, byCategory.Unwrap(), 2)

	byTag := svc.ListByTag(project.ID, "billing", alice.ID)
	require.True(t, byTag.IsOk())
	require.Len(t, byTag.Unwrap(), 1)
	assert.Equal(t, "payment failed", byTag.Unwrap()[0].Message)
}

func TestGetUpdateDeleteLogThroughOwnershipJoin(t *testing.T) {
	db := database.OpenTest(t)
	svc := NewLogService(db)

	alice := registerTestUser(t, db, "alice@x.com")
	mallory := registerTestUser(t, db, "mallory@x.com")
	project := createTestProject(t, db, alice.ID, "demo")
	record := seedLog(t, svc, project.ID, dto.CreateLogRequest{Level: "info", Message: "original"})

	found := svc.GetByID(record.ID, alice.ID)
	require.True(t, found.IsOk())

	// Foreign caller sees the same error as a missing record.
	foreign := svc.GetByID(record.ID, mallory.ID)
	require.True(t, foreign.IsErr())
	assert.Equal(t, utils.KindNotFoundOrForbidden, foreign.UnwrapErr().Kind)

	newMessage := "edited"
	newLevel := "warning"
	updated := svc.Update(record.ID, dto.UpdateLogRequest{Message: &newMessage, Level: &newLevel}, alice.ID)
	require.True(t, updated.IsOk())
	assert.Equal(t, "edited", updated.Unwrap().Message)
	assert.Equal(t, "warning", updated.Unwrap().Level)

	badLevel := "loud"
	invalid := svc.Update(record.ID, dto.UpdateLogRequest{Level: &badLevel}, alice.ID)
	require.True(t, invalid.IsErr())
	assert.Equal(t, utils.KindValidation, invalid.UnwrapErr().Kind)

	deleted := svc.Delete(record.ID, alice.ID)
	require.True(t, deleted.IsOk())

	gone := svc.GetByID(record.ID, alice.ID)
	require.True(t, gone.IsErr())
	assert.Equal(t, utils.KindNotFoundOrForbidden, gone.UnwrapErr().Kind)
}
