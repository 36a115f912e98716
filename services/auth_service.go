package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jochemical/My-Cinema/data_access"
	"github.com/jochemical/My-Cinema/models"
)

var (
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("user already exists")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password, so a login attempt cannot reveal whether an email exists.
	ErrInvalidCredentials = errors.New("login credentials not correct")
)

// UserStore is the slice of the user repository the services need.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	AddMovie(ctx context.Context, userID, movieID string) error
}

type AuthService struct {
	users UserStore
	cost  int
}

func NewAuthService(users UserStore) *AuthService {
	return &AuthService{users: users, cost: bcrypt.DefaultCost}
}

// NewAuthServiceWithCost is for tests, where the default bcrypt cost is too
// slow.
func NewAuthServiceWithCost(users UserStore, cost int) *AuthService {
	return &AuthService{users: users, cost: cost}
}

// Register creates a new account with a freshly salted password hash and an
// empty watchlist.
func (s *AuthService) Register(ctx context.Context, email, password string) (string, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("checking existing user: %w", err)
	}
	if existing != nil {
		return "", ErrDuplicateEmail
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{
		ID:       NewID(),
		Email:    email,
		Password: string(hashed),
		Movies:   []string{},
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, data_access.ErrDuplicateEmail) {
			// Lost a race with a concurrent registration; the unique
			// index is the backstop.
			return "", ErrDuplicateEmail
		}
		return "", fmt.Errorf("creating user: %w", err)
	}

	return user.ID, nil
}

// Authenticate verifies the credentials and returns the matching user.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// NewID returns an opaque identifier, the hex form of a random UUID.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
