package serverutils

import (
	"crypto/rand"
	"encoding/hex"

	"anon-board-be/internal/repository/memory"
	"anon-board-be/pkg/store"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const SessionCookieName = "board_session"

// SessionMiddleware guarantees every request carries an owner token
// before any handler runs. The cookie is a signed JWT holding only the
// session id; the owner token itself stays server-side in the session
// store. A missing, tampered, or expired session silently gets a fresh
// one - there is no failure mode for the caller.
func SessionMiddleware(sessions *memory.SessionRepository, secret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if cookie := ctx.Cookies(SessionCookieName); cookie != "" {
			if sid, ok := parseSessionCookie(cookie, secret); ok {
				if sess, found := sessions.Get(sid); found {
					// Sliding expiration: re-save refreshes the TTL.
					sessions.Save(sess)
					ctx.Locals("user_id", sess.UserID)
					return ctx.Next()
				}
			}
		}

		sess := &store.Session{
			ID:     uuid.NewString(),
			UserID: newOwnerToken(),
		}
		sessions.Save(sess)

		signed, err := signSessionCookie(sess.ID, secret)
		if err != nil {
			return err
		}
		ctx.Cookie(&fiber.Cookie{
			Name:     SessionCookieName,
			Value:    signed,
			HTTPOnly: true,
			SameSite: "Lax",
		})

		ctx.Locals("user_id", sess.UserID)
		return ctx.Next()
	}
}

// newOwnerToken returns 16 bytes of entropy as hex, the same shape the
// legacy board stamped into user_id.
func newOwnerToken() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand only fails if the OS entropy source is broken.
		panic(err)
	}
	return hex.EncodeToString(buf)
}

func signSessionCookie(sessionID, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": sessionID,
	})
	return token.SignedString([]byte(secret))
}

func parseSessionCookie(cookie, secret string) (string, bool) {
	token, err := jwt.Parse(cookie, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", false
	}
	return sid, true
}

// CurrentOwnerId reads the owner token the session middleware set.
func CurrentOwnerId(ctx *fiber.Ctx) string {
	if ownerId, ok := ctx.Locals("user_id").(string); ok {
		return ownerId
	}
	return ""
}
