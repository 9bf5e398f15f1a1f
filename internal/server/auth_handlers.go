package server

import (
	"fmt"
	"strconv"
	"time"

	"flatterer/internal/cache"
	"flatterer/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Register handles POST /register
func (s *Server) Register(c *fiber.Ctx) error {
	var req struct {
		Name        string `json:"name"`
		Username    string `json:"username"`
		Password    string `json:"password"`
		ConfirmPass string `json:"confirm_pass"`
		Admin       bool   `json:"admin"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	if req.Name == "" || req.Username == "" || req.Password == "" {
		return respondError(c, models.NewValidationError("Name, username, and password are required"))
	}
	if req.Password != req.ConfirmPass {
		return respondError(c, models.NewValidationError("The passwords provided did not match!"))
	}

	existing, err := s.userRepo.GetByUsername(c.Context(), req.Username)
	if err != nil {
		return respondError(c, err)
	}
	if existing != nil {
		return respondError(c, models.NewConflictError("This username is taken!"))
	}

	// Credentials are hashed before storage, never kept in plaintext.
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return respondError(c, models.NewInternalError(err))
	}

	user := &models.User{
		Name:     req.Name,
		Username: req.Username,
		Password: string(hashedPassword),
		Admin:    req.Admin,
	}

	if err := s.userRepo.Create(c.Context(), user); err != nil {
		return respondError(c, err)
	}

	// Registration logs the new user in immediately.
	token, err := s.generateToken(user.ID)
	if err != nil {
		return respondError(c, models.NewInternalError(err))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Registered and logged in successfully!",
		"token":   token,
		"user":    user,
	})
}

// RegisterInfo handles GET /register
func (s *Server) RegisterInfo(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Register a new account",
		"user":    s.identity(c).DisplayName(),
	})
}

// Login handles POST /login
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	user, err := s.userRepo.GetByUsername(c.Context(), req.Username)
	if err != nil {
		return respondError(c, err)
	}
	if user == nil {
		return respondError(c, models.NewUnauthorizedError("Invalid credentials"))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return respondError(c, models.NewUnauthorizedError("Invalid credentials"))
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return respondError(c, models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{
		"message": "Logged in successfully.",
		"token":   token,
		"user":    user,
	})
}

// LoginInfo handles GET /login
func (s *Server) LoginInfo(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Log in",
		"user":    s.identity(c).DisplayName(),
	})
}

// Logout handles POST /logout. The presented token's JTI is revoked until
// the token would have expired; a guest logout succeeds as a no-op.
func (s *Server) Logout(c *fiber.Ctx) error {
	jti, _ := c.Locals(tokenJTIKey).(string)
	if jti != "" {
		expiresAt, _ := c.Locals(tokenExpKey).(time.Time)
		if expiresAt.IsZero() {
			expiresAt = time.Now().Add(7 * 24 * time.Hour)
		}
		if err := cache.RevokeToken(c.Context(), jti, expiresAt); err != nil {
			return respondError(c, models.NewInternalError(err))
		}
	}

	return c.JSON(fiber.Map{
		"message": "Logged out successfully!",
	})
}

// generateToken creates a JWT token for the given user ID
func (s *Server) generateToken(userID uint) (string, error) {
	if s.config.JWTSecret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10), // Subject (user ID as string)
		"iss": tokenIssuer,
		"aud": tokenAudience,
		"exp": now.Add(time.Hour * 24 * 7).Unix(), // Expiration (7 days)
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"jti": s.generateJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// generateJTI creates a unique JWT ID so individual tokens can be revoked
func (s *Server) generateJTI() string {
	return fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.New().String()[:8])
}
