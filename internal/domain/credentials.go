package domain

import (
	"fmt"
	"strings"
)

// Credentials identify the developer account every request is signed with.
type Credentials struct {
	DevID   string
	AuthKey string
}

func (c Credentials) Validate() error {
	if strings.TrimSpace(c.DevID) == "" {
		return fmt.Errorf("%w: developer id is empty", ErrCredentialsMissing)
	}
	if strings.TrimSpace(c.AuthKey) == "" {
		return fmt.Errorf("%w: auth key is empty", ErrCredentialsMissing)
	}

	return nil
}

// String never prints the auth key in full.
func (c Credentials) String() string {
	return fmt.Sprintf("dev %s, key %s", c.DevID, maskSecret(c.AuthKey))
}

func maskSecret(secret string) string {
	if len(secret) <= 4 {
		return strings.Repeat("*", len(secret))
	}

	return strings.Repeat("*", len(secret)-4) + secret[len(secret)-4:]
}
