// file: internals/helpers/auth/auth_blacklist.go
package helper

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"gorm.io/gorm"
)

/*
   =========================================================
   LOW-LEVEL UTILS
   =========================================================
*/

func hmacHex(msg, secret string) string {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(msg))
	return hex.EncodeToString(m.Sum(nil)) // fits a TEXT column
}

/*
   =========================================================
   CORE API (table: token TEXT unique, expired_at, deleted_at)
   =========================================================
*/

// Add stores HMAC(access_token) (hex) in the token TEXT column.
func Add(ctx context.Context, db *gorm.DB, rawAccessToken, jwtSecret string, expiresAt time.Time) error {
	if db == nil || strings.TrimSpace(rawAccessToken) == "" || strings.TrimSpace(jwtSecret) == "" {
		return nil
	}
	tokenHex := hmacHex(rawAccessToken, jwtSecret)
	return db.WithContext(ctx).Exec(`
		INSERT INTO token_blacklist (token, expired_at)
		VALUES (?, ?)
		ON CONFLICT (token) DO UPDATE
		SET expired_at = EXCLUDED.expired_at,
		    deleted_at = NULL
	`, tokenHex, expiresAt).Error
}

// IsBlacklisted: is there an active, unexpired row for this token?
func IsBlacklisted(ctx context.Context, db *gorm.DB, rawAccessToken, jwtSecret string) (bool, error) {
	if db == nil || strings.TrimSpace(rawAccessToken) == "" || strings.TrimSpace(jwtSecret) == "" {
		return false, nil
	}
	tokenHex := hmacHex(rawAccessToken, jwtSecret)
	var exists bool
	err := db.WithContext(ctx).Raw(`
		SELECT EXISTS (
		  SELECT 1
		  FROM token_blacklist
		  WHERE token = ?
		    AND deleted_at IS NULL
		    AND expired_at > NOW()
		)
	`, tokenHex).Scan(&exists).Error
	return exists, err
}

