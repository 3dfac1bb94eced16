package auth

import (
	"context"
	"net/mail"

	"invoice-dashboard-backend/internal/models"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

type Kind int

const (
	InvalidCredentials Kind = iota
	Authenticated
	ProviderFailure
)

func (k Kind) String() string {
	switch k {
	case Authenticated:
		return "authenticated"
	case ProviderFailure:
		return "provider_failure"
	default:
		return "invalid_credentials"
	}
}

// Result is the outcome of a credentials check. User is set only when Kind is
// Authenticated.
type Result struct {
	Kind Kind
	User *models.User
}

// UserStore is the subset of the user repository the provider reads from.
type UserStore interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

type Provider struct {
	users UserStore
}

func NewProvider(users UserStore) *Provider {
	return &Provider{users: users}
}

func validCredentials(email, password string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}
	return len(password) >= minPasswordLength
}

func (p *Provider) Verify(ctx context.Context, email, password string) Result {
	if !validCredentials(email, password) {
		return Result{Kind: InvalidCredentials}
	}

	user, err := p.users.GetUserByEmail(ctx, email)
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("failed to load user")
		return Result{Kind: ProviderFailure}
	}
	if user == nil {
		return Result{Kind: InvalidCredentials}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return Result{Kind: InvalidCredentials}
	}
	return Result{Kind: Authenticated, User: user}
}

// HashPassword hashes a plain password with the given bcrypt cost.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
