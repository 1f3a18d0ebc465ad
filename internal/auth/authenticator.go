// Package auth signs staff in to the back office. Every authenticated user
// sees the whole garage; there are no roles.
package auth

import (
	"context"
	"strings"

	"github.com/mmynk/garagedesk/internal/models"
)

// Authenticator verifies staff credentials.
type Authenticator interface {
	// Register creates a staff account. credential is the raw secret
	// (a password for PasswordAuthenticator).
	Register(ctx context.Context, email, displayName, credential string) (*models.User, error)

	// Authenticate returns the user whose credentials match.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	ValidateCredential(credential string) error
}

// NormalizeEmail is the canonical form emails are stored and looked up in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
