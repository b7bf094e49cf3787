package usecases

import "context"

// EmailService sends the account lifecycle emails. Tokens are the
// plaintext one-time values; only hashes are persisted.
type EmailService interface {
	SendActivationEmail(to, token string) error
	SendEmailConfirmation(to, token string) error
	SendPasswordResetEmail(to, token string) error
	SendPasswordChangedEmail(to string) error
}

// TokenGenerator produces one-time tokens and their stored hashes.
type TokenGenerator interface {
	Generate() (plainToken string, hash string, err error)
	Hash(plainToken string) string
	Verify(plainToken, hash string) bool
}

// TokenPair is the session token set returned on login and refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// SessionTokenService issues and refreshes JWT session tokens.
type SessionTokenService interface {
	Generate(userID uint, username string, superuser, staff bool) (*TokenPair, error)
	RefreshAccess(refreshToken string) (string, error)
}

// TransactionRunner runs a function inside a database transaction
// carried through the context.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
