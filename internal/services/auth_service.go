package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fitlog-dev/fitlog/internal/auth"
	"github.com/fitlog-dev/fitlog/internal/models"
	"github.com/fitlog-dev/fitlog/internal/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned for unknown emails and wrong
	// passwords alike so login failures never reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthService handles registration, login and per-request identity
// resolution against the credential store.
type AuthService struct {
	users  repositories.UserRepository
	tokens *auth.TokenManager
}

func NewAuthService(users repositories.UserRepository, tokens *auth.TokenManager) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register stores a new user with a bcrypt-hashed credential and issues a
// session token for the fresh identity.
func (s *AuthService) Register(name, email, password string) (*models.User, string, error) {
	email = normalizeEmail(email)

	if _, err := s.users.GetByEmail(email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, "", err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(passwordHash),
	}

	if err := s.users.Create(&user); err != nil {
		// A racing registration for the same email lands here through
		// the unique index.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.ID)

	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return &user, token, nil
}

// Login verifies the credential pair and issues a session token.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	user, err := s.users.GetByEmail(normalizeEmail(email))

	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)

	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return user, token, nil
}

// Authenticate resolves a presented token to a live user. Signature and
// expiry are checked without touching the store, but the identity is
// re-fetched every time so tokens for deleted users stop working.
func (s *AuthService) Authenticate(tokenString string) (*models.User, error) {
	userID, err := s.tokens.Verify(tokenString)

	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(userID)

	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, auth.ErrInvalidToken
		}
		return nil, err
	}

	return user, nil
}
