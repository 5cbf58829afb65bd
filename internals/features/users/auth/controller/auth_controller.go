// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"studenthub_backend/internals/configs"
	helper "studenthub_backend/internals/helpers"
	helperAuth "studenthub_backend/internals/helpers/auth"
)

// Sign-in is issued by the campus SSO service; this side only revokes.
type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// ==============================
// LOGOUT - POST /auth/logout
// ==============================
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	raw, _ := c.Locals(helperAuth.LocRawToken).(string)
	if strings.TrimSpace(raw) == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not signed in")
	}

	// keep the blacklist row until the token would have expired anyway
	expiresAt := time.Now().Add(24 * time.Hour)
	if claims, ok := c.Locals(helperAuth.LocClaims).(jwt.MapClaims); ok {
		if v, ok := claims["exp"].(float64); ok && v > 0 {
			expiresAt = time.Unix(int64(v), 0)
		}
	}

	if err := helperAuth.Add(c.Context(), ctl.DB, raw, configs.JWTSecret, expiresAt); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign out")
	}

	// drop the cookie copy as well
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return helper.JsonOK(c, "Signed out successfully", nil)
}
