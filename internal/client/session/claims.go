package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/redhub-app/redhub-cli/internal/common"
)

// Claims are the identity hints embedded in the credential's payload
// segment: subject id, role and expiry. They are decoded, never verified —
// the signature segment stays a black box and the server is the sole
// authority for it.
type Claims struct {
	SubjectID string
	Role      Role

	// ExpiresAt is zero when the token carries no expiry.
	ExpiresAt time.Time
}

// Expired reports whether the claims carry an expiry that has passed.
func (c *Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

// DecodeClaims extracts Claims from the credential without contacting the
// server. It fails with common.ErrMalformedToken when the token does not
// have three dot-separated segments, the payload segment is not valid
// base64url, or the decoded payload is not a JSON object.
func DecodeClaims(token string) (*Claims, error) {
	mc := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, mc); err != nil {
		return nil, fmt.Errorf("%w: %s", common.ErrMalformedToken, err)
	}

	claims := &Claims{}

	if uid, ok := mc["uid"].(string); ok {
		claims.SubjectID = uid
	}
	if role, ok := mc["role"].(string); ok {
		claims.Role = ParseRole(role)
	}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}

	return claims, nil
}
