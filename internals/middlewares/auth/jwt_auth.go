package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"studenthub_backend/internals/constants"
	helperAuth "studenthub_backend/internals/helpers/auth"
)

type AuthJWTOpts struct {
	Secret              string
	BlacklistChecker    func(rawToken string) (bool, error) // return true if blacklisted
	AllowCookieFallback bool                                // use the access_token cookie when no Bearer header
}

func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret is required")
	}

	return func(c *fiber.Ctx) error {
		// 1) token: Authorization: Bearer xxx (or cookie when allowed)
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		// 2) blacklist check (optional)
		if o.BlacklistChecker != nil {
			if black, err := o.BlacklistChecker(raw); err == nil && black {
				return fiber.NewError(fiber.StatusUnauthorized, "Token revoked")
			}
		}

		// 3) parse + verify algorithm
		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}

		c.Locals(helperAuth.LocClaims, claims)
		c.Locals(helperAuth.LocRawToken, raw)

		// user_id: id, then sub, then user_id, in order of preference
		switch {
		case strClaim(claims, "id") != "":
			c.Locals(helperAuth.LocUserID, strClaim(claims, "id"))
		case strClaim(claims, "sub") != "":
			c.Locals(helperAuth.LocUserID, strClaim(claims, "sub"))
		case strClaim(claims, "user_id") != "":
			c.Locals(helperAuth.LocUserID, strClaim(claims, "user_id"))
		}

		// fail fast when the user_id is not a UUID
		if v := c.Locals(helperAuth.LocUserID); v != nil {
			if s, ok := v.(string); ok {
				if _, err := uuid.Parse(strings.TrimSpace(s)); err != nil {
					return fiber.NewError(fiber.StatusUnauthorized, "Invalid user ID in token")
				}
			}
		}

		if name := strClaim(claims, "user_name"); name != "" {
			c.Locals(helperAuth.LocUserName, name)
		}

		// role for the guards downstream
		EnsureRoleLocal(c, claims)

		return c.Next()
	}
}

// small util to read a string claim
func strClaim(m jwt.MapClaims, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// util: interface{} → []string (robust for []string or []any)
func readStringSlice(v any) []string {
	out := make([]string, 0)
	switch t := v.(type) {
	case []string:
		for _, s := range t {
			s = strings.TrimSpace(s)
			if s != "" {
				out = append(out, s)
			}
		}
	case []any:
		for _, it := range t {
			if s, ok := it.(string); ok {
				s = strings.TrimSpace(s)
				if s != "" {
					out = append(out, s)
				}
			}
		}
	}
	return out
}

// EnsureRoleLocal fills c.Locals("role") from the claims.
// Precedence: single "role" claim, then "roles" list (admin > moderator > student),
// last fallback "student".
func EnsureRoleLocal(c *fiber.Ctx, claims jwt.MapClaims) {
	if v := c.Locals(helperAuth.LocRole); v != nil {
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			return
		}
	}

	if r := strClaim(claims, "role"); r != "" {
		c.Locals(helperAuth.LocRole, strings.ToLower(r))
		return
	}

	if roles := readStringSlice(claims["roles"]); len(roles) > 0 {
		has := map[string]struct{}{}
		for _, r := range roles {
			r = strings.ToLower(strings.TrimSpace(r))
			if r != "" {
				has[r] = struct{}{}
			}
		}
		for _, w := range []string{constants.RoleAdmin, constants.RoleModerator, constants.RoleStudent} {
			if _, ok := has[w]; ok {
				c.Locals(helperAuth.LocRole, w)
				return
			}
		}
	}

	c.Locals(helperAuth.LocRole, constants.RoleStudent)
}
