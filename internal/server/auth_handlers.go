package server

import (
	"crypto/subtle"
	"time"

	"haven/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// sessionCookie is the HttpOnly cookie carrying the signed admin session token.
const sessionCookie = "haven_session"

const sessionTTL = 24 * time.Hour

// Login handles POST /api/auth/login. A correct password yields an admin
// session cookie; anything else is a 401.
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if !s.passwordMatches(req.Password) {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid password"))
	}

	token, err := s.issueSessionToken()
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(sessionTTL.Seconds()),
		HTTPOnly: true,
		Secure:   s.config.Env == "production" || s.config.Env == "prod",
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(fiber.Map{
		"message": "Logged in successfully",
		"isAdmin": true,
	})
}

// Logout handles POST /api/auth/logout by expiring the session cookie.
func (s *Server) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(fiber.Map{
		"message": "Logged out successfully",
	})
}

// AuthStatus handles GET /api/auth/status.
func (s *Server) AuthStatus(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"isAdmin": s.isAdmin(c),
	})
}

// AdminRequired returns middleware that rejects requests without a valid
// admin session with 401.
func (s *Server) AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !s.isAdmin(c) {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Admin access required"))
		}
		return c.Next()
	}
}

// passwordMatches compares the submitted password against the configured
// secret. A configured bcrypt hash takes precedence over the plain secret.
func (s *Server) passwordMatches(password string) bool {
	if s.config.AdminPasswordHash != "" {
		return bcrypt.CompareHashAndPassword(
			[]byte(s.config.AdminPasswordHash), []byte(password)) == nil
	}
	if s.config.AdminPassword == "" {
		return false
	}
	return subtle.ConstantTimeCompare(
		[]byte(s.config.AdminPassword), []byte(password)) == 1
}

// issueSessionToken mints the signed session token carried by the cookie.
func (s *Server) issueSessionToken() (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"admin": true,
		"iss":   "haven-api",
		"iat":   now.Unix(),
		"exp":   now.Add(sessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.SessionSecret))
}

// isAdmin reports whether the request carries a valid admin session cookie.
func (s *Server) isAdmin(c *fiber.Ctx) bool {
	cookie := c.Cookies(sessionCookie)
	if cookie == "" {
		return false
	}

	token, err := jwt.Parse(cookie, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.config.SessionSecret), nil
	})
	if err != nil || !token.Valid {
		return false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}

	admin, ok := claims["admin"].(bool)
	return ok && admin
}
