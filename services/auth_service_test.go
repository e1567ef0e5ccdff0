package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/logtide-backend/database"
	"github.com/logtide-backend/dto"
	"github.com/logtide-backend/models"
	"github.com/logtide-backend/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndAuthenticateRoundTrip(t *testing.T) {
	db := database.OpenTest(t)
	svc := NewAuthService(db)

	name := "A"
	created := svc.Register(dto.RegisterRequest{Email: "a@x.com", Password: "pw1234", DisplayName: &name})
	require.True(t, created.IsOk())
	assert.Equal(t, "a@x.com", created.Unwrap().Email)
	assert.NotEmpty(t, created.Unwrap().ID)
	assert.NotEqual(t, "pw1234", created.Unwrap().PasswordHash, "plaintext must never be stored")

	authenticated := svc.Authenticate("a@x.com", "pw1234")
	require.True(t, authenticated.IsSome())
	assert.Equal(t, "a@x.com", authenticated.Unwrap().Email)
	assert.NotNil(t, authenticated.Unwrap().LastLoginAt)

	assert.True(t, svc.Authenticate("a@x.com", "wrong").IsNothing())
	assert.True(t, svc.Authenticate("nobody@x.com", "pw1234").IsNothing())
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	db := database.OpenTest(t)
	svc := NewAuthService(db)

	first := svc.Register(dto.RegisterRequest{Email: "dup@x.com", Password: "pw1234"})
	require.True(t, first.IsOk())

	second := svc.Register(dto.RegisterRequest{Email: "dup@x.com", Password: "other567"})
	require.True(t, second.IsErr())
	assert.Equal(t, utils.KindConflict, second.UnwrapErr().Kind)
}

func TestIssueAndResolveToken(t *testing.T) {
	db := database.OpenTest(t)
	t.Setenv("JWT_SECRET", "test-secret")
	svc := NewAuthService(db)

	user := registerTestUser(t, db, "token@x.com")

	token, expiresAt, err := svc.IssueToken(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(TokenTTL), expiresAt, 5*time.Second)

	resolved := svc.ResolveToken(token)
	require.True(t, resolved.IsOk())
	assert.Equal(t, user.ID, resolved.Unwrap().ID)
}

func TestResolveTokenFailuresCollapseToUnauthorized(t *testing.T) {
	db := database.OpenTest(t)
	t.Setenv("JWT_SECRET", "test-secret")
	svc := NewAuthService(db)

	user := registerTestUser(t, db, "badtoken@x.com")

	token, _, err := svc.IssueToken(user)
	require.NoError(t, err)

	// Malformed
	garbled := svc.ResolveToken("not.a.token")
	require.True(t, garbled.IsErr())
	assert.Equal(t, utils.KindUnauthorized, garbled.UnwrapErr().Kind)

	// Expired: correctly signed, but past its TTL
	staleClaims := dto.TokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-TokenTTL - time.Minute)),
		},
	}
	stale, err := jwt.NewWithClaims(jwt.SigningMethodHS256, staleClaims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	expired := svc.ResolveToken(stale)
	require.True(t, expired.IsErr())
	assert.Equal(t, utils.KindUnauthorized, expired.UnwrapErr().Kind)

	// Wrong signature
	t.Setenv("JWT_SECRET", "different-secret")
	forged := svc.ResolveToken(token)
	require.True(t, forged.IsErr())
	assert.Equal(t, utils.KindUnauthorized, forged.UnwrapErr().Kind)
}

func TestChangePassword(t *testing.T) {
	db := database.OpenTest(t)
	svc := NewAuthService(db)

	user := registerTestUser(t, db, "change@x.com")

	changed := svc.ChangePassword(user.ID, dto.ChangePasswordRequest{
		CurrentPassword: "password123",
		NewPassword:     "newpassword456",
	})
	require.True(t, changed.IsOk())

	assert.True(t, svc.Authenticate("change@x.com", "newpassword456").IsSome())
	assert.True(t, svc.Authenticate("change@x.com", "password123").IsNothing())

	wrongCurrent := svc.ChangePassword(user.ID, dto.ChangePasswordRequest{
		CurrentPassword: "nope",
		NewPassword:     "whatever789",
	})
	require.True(t, wrongCurrent.IsErr())
	assert.Equal(t, utils.KindUnauthorized, wrongCurrent.UnwrapErr().Kind)
}

func TestRegisterConflictsWhenEmailRowSurvivesLookup(t *testing.T) {
	db := database.OpenTest(t)
	svc := NewAuthService(db)

	user := registerTestUser(t, db, "ghost@x.com")

	// Soft-delete hides the account from the pre-insert lookup while the
	// email still occupies the unique index, the same shape as a
	// concurrent registration landing between check and insert. The
	// store's refusal must surface as Conflict, not Internal.
	require.NoError(t, db.Delete(&models.User{}, "id = ?", user.ID).Error)
	require.True(t, svc.GetUserByEmail("ghost@x.com").IsNothing())

	again := svc.Register(dto.RegisterRequest{Email: "ghost@x.com", Password: "pw1234"})
	require.True(t, again.IsErr())
	assert.Equal(t, utils.KindConflict, again.UnwrapErr().Kind)
}
