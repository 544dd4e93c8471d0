package session

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"
)

const tokenRandomSize = 32 // 256 bits

// Codec mints and verifies session tokens. A token is a random
// component plus an HMAC over it keyed by the server secret, so a
// client cannot fabricate a token the store would ever be asked about.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Issue generates a fresh token.
func (c *Codec) Issue() (string, error) {
	b := make([]byte, tokenRandomSize)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("session: failed to generate token: %w", err)
	}

	random := base64.RawURLEncoding.EncodeToString(b)
	return random + "." + c.sign(random), nil
}

// Verify reports whether the token was issued with the same secret.
func (c *Codec) Verify(token string) bool {
	random, sig, found := strings.Cut(token, ".")
	if !found || random == "" {
		return false
	}
	return hmac.Equal([]byte(sig), []byte(c.sign(random)))
}

func (c *Codec) sign(random string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(random))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
