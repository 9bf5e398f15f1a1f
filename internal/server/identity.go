package server

import (
	"strconv"
	"strings"
	"time"

	"flatterer/internal/cache"
	"flatterer/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	identityKey = "identity"
	tokenJTIKey = "tokenJTI"
	tokenExpKey = "tokenExp"

	tokenIssuer   = "flatterer-api"
	tokenAudience = "flatterer-client"
)

// ResolveIdentity returns middleware that resolves the bearer token to a
// request-scoped Identity. Missing, invalid, expired, or revoked tokens
// resolve to the guest; handlers that need more call the guard helpers.
func (s *Server) ResolveIdentity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(identityKey, models.Guest())

		tokenString := bearerToken(c)
		if tokenString == "" {
			return c.Next()
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(s.config.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return c.Next()
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.Next()
		}
		if issuer, issuerOk := claims["iss"].(string); !issuerOk || issuer != tokenIssuer {
			return c.Next()
		}
		if audience, audienceOk := claims["aud"].(string); !audienceOk || audience != tokenAudience {
			return c.Next()
		}

		jti, _ := claims["jti"].(string)
		if cache.IsTokenRevoked(c.Context(), jti) {
			return c.Next()
		}

		sub, ok := claims["sub"].(string)
		if !ok {
			return c.Next()
		}
		userID, err := strconv.ParseUint(sub, 10, 32)
		if err != nil {
			return c.Next()
		}

		user, err := s.userRepo.GetByID(c.Context(), uint(userID))
		if err != nil {
			return c.Next()
		}

		c.Locals(identityKey, models.Authenticated(user))
		c.Locals("userID", user.ID)
		c.Locals(tokenJTIKey, jti)
		if exp, expOk := claims["exp"].(float64); expOk {
			c.Locals(tokenExpKey, time.Unix(int64(exp), 0))
		}

		return c.Next()
	}
}

// identity returns the resolved identity for the request.
func (s *Server) identity(c *fiber.Ctx) models.Identity {
	if id, ok := c.Locals(identityKey).(models.Identity); ok {
		return id
	}
	return models.Guest()
}

func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
