package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/logtide-backend/dto"
	"github.com/logtide-backend/services"
	"github.com/logtide-backend/utils"
	"gorm.io/gorm"
)

// AuthController handles signup, login, and session endpoints
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new auth controller
func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{authService: services.NewAuthService(db)}
}

// Register handles user signup
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, utils.ValidationError("invalid request body"))
		return
	}

	respond(ctx, http.StatusCreated, c.authService.Register(req))
}

// Login handles user authentication
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, utils.ValidationError("invalid request body"))
		return
	}

	user := c.authService.Authenticate(req.Email, req.Password)
	if user.IsNothing() {
		ctx.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "invalid email or password",
		})
		return
	}

	authenticated := user.Unwrap()
	token, expiresAt, err := c.authService.IssueToken(authenticated)
	if err != nil {
		respondError(ctx, utils.InternalError())
		return
	}

	// Set token as HttpOnly cookie alongside the response body so both
	// cookie and Bearer clients work.
	ctx.SetCookie(
		"access_token",
		token,
		int(services.TokenTTL.Seconds()),
		"/",
		"",
		true,
		true,
	)

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": dto.AuthResponse{
			Token:     token,
			User:      authenticated,
			ExpiresAt: expiresAt,
		},
	})
}

// GetCurrentUser returns the authenticated user's profile
func (c *AuthController) GetCurrentUser(ctx *gin.Context) {
	respond(ctx, http.StatusOK, c.authService.GetUser(currentUserID(ctx)))
}

// ChangePassword replaces the authenticated user's password
func (c *AuthController) ChangePassword(ctx *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, utils.ValidationError("invalid request body"))
		return
	}

	changed := c.authService.ChangePassword(currentUserID(ctx), req)
	if changed.IsErr() {
		respondError(ctx, changed.UnwrapErr())
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "password changed",
	})
}

// Logout clears the auth cookie. Tokens are stateless and stay valid
// until expiry; the short TTL bounds the window.
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.SetCookie(
		"access_token",
		"",
		-1,
		"/",
		"",
		true,
		true,
	)

	ctx.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "logged out successfully",
	})
}
