package services

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/logtide-backend/dto"
	"github.com/logtide-backend/lib/maybe"
	"github.com/logtide-backend/models"
	"github.com/logtide-backend/repositories"
	"github.com/logtide-backend/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TokenTTL is the lifetime of issued bearer tokens.
const TokenTTL = 15 * time.Minute

// AuthService registers users, verifies credentials, and issues and
// resolves bearer tokens.
type AuthService struct {
	users *repositories.UserRepository
}

// NewAuthService creates a new auth service instance
func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{users: repositories.NewUserRepository(db)}
}

// Register creates a new user account. Fails with Conflict when the email
// is already registered. Only the bcrypt hash of the password is stored.
func (s *AuthService) Register(req dto.RegisterRequest) utils.OpResult[models.User] {
	if existing := s.GetUserByEmail(req.Email); existing.IsSome() {
		return utils.Fail[models.User](utils.ConflictError("email already registered"))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return utils.Fail[models.User](utils.InternalError())
	}

	user := models.User{
		Email:        req.Email,
		PasswordHash: string(hashed),
		DisplayName:  req.DisplayName,
		Role:         models.RoleUser,
		Status:       models.UserStatusActive,
	}

	user, err = s.users.Create(user)
	if err != nil {
		// A concurrent registration can slip past the lookup above; the
		// unique index on email reports it here.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.Fail[models.User](utils.ConflictError("email already registered"))
		}
		log.Printf("failed to create user: %v", err)
		return utils.Fail[models.User](utils.InternalError())
	}

	return utils.Ok(user)
}

// GetUserByEmail looks up a user by email
func (s *AuthService) GetUserByEmail(email string) maybe.Maybe[models.User] {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return maybe.Nothing[models.User]()
	}
	return maybe.Some(user)
}

// Authenticate verifies email and password. An unknown email and a wrong
// password both come back as Nothing. On success the last-login timestamp
// is updated as a side effect.
func (s *AuthService) Authenticate(email, password string) maybe.Maybe[models.User] {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return maybe.Nothing[models.User]()
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return maybe.Nothing[models.User]()
	}

	now := time.Now()
	if err := s.users.UpdateLastLogin(user.ID, now); err != nil {
		log.Printf("failed to update last login for %s: %v", user.ID, err)
	} else {
		user.LastLoginAt = &now
	}

	return maybe.Some(user)
}

// IssueToken generates a signed JWT for a user with a fixed TTL
func (s *AuthService) IssueToken(user models.User) (string, time.Time, error) {
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return "", time.Time{}, errors.New("JWT_SECRET not set in environment")
	}

	expiresAt := time.Now().Add(TokenTTL)

	claims := dto.TokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// ResolveToken verifies signature and expiry and loads the subject.
// Expired, malformed, badly signed, and unknown-subject tokens all
// collapse into the one Unauthorized kind.
func (s *AuthService) ResolveToken(tokenString string) utils.OpResult[models.User] {
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return utils.Fail[models.User](utils.UnauthorizedError())
	}

	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secretKey), nil
	})
	if err != nil || !token.Valid {
		return utils.Fail[models.User](utils.UnauthorizedError())
	}

	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok {
		return utils.Fail[models.User](utils.UnauthorizedError())
	}

	user, err := s.users.FindByID(claims.UserID)
	if err != nil {
		return utils.Fail[models.User](utils.UnauthorizedError())
	}

	return utils.Ok(user)
}

// GetUser retrieves a user by ID
func (s *AuthService) GetUser(id string) utils.OpResult[models.User] {
	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Fail[models.User](utils.NotFoundOrForbiddenError("user"))
		}
		return utils.Fail[models.User](utils.InternalError())
	}
	return utils.Ok(user)
}

// ChangePassword verifies the current password and stores a new hash
func (s *AuthService) ChangePassword(userID string, req dto.ChangePasswordRequest) utils.OpResult[bool] {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return utils.Fail[bool](utils.UnauthorizedError())
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)) != nil {
		return utils.Fail[bool](utils.UnauthorizedError())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return utils.Fail[bool](utils.InternalError())
	}

	if err := s.users.UpdatePassword(user.ID, string(hashed)); err != nil {
		log.Printf("failed to update password for %s: %v", user.ID, err)
		return utils.Fail[bool](utils.InternalError())
	}

	return utils.Ok(true)
}
