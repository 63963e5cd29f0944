package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"careerguide/internal/notify"
	"careerguide/internal/repository"
)

var (
	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords so login failures don't reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrMissingCredentials is returned when username or password is blank.
	ErrMissingCredentials = errors.New("username and password are required")
)

// AuthService handles signup and credential verification for users and
// admins. Passwords are bcrypt-hashed before they reach any store; the
// stores only ever see the hash.
type AuthService struct {
	users    repository.AccountStore
	admins   repository.AccountStore
	notifier notify.Notifier
}

// NewAuthService creates a new auth service.
func NewAuthService(users, admins repository.AccountStore, notifier notify.Notifier) *AuthService {
	return &AuthService{users: users, admins: admins, notifier: notifier}
}

// Signup registers a new user. Duplicate usernames surface as
// repository.ErrDuplicateUser with the original credential untouched.
func (s *AuthService) Signup(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return ErrMissingCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.users.Create(ctx, username, string(hash)); err != nil {
		return err
	}

	s.publish(ctx, "New User Signup", fmt.Sprintf("%s registered", username))
	return nil
}

// Login verifies a user credential.
func (s *AuthService) Login(ctx context.Context, username, password string) error {
	if err := s.verify(ctx, s.users, username, password); err != nil {
		return err
	}
	s.publish(ctx, "User Login", fmt.Sprintf("%s logged in", username))
	return nil
}

// AdminLogin verifies an admin credential against the admin store.
func (s *AuthService) AdminLogin(ctx context.Context, username, password string) error {
	return s.verify(ctx, s.admins, username, password)
}

// UserCount returns the number of registered users.
func (s *AuthService) UserCount(ctx context.Context) (int, error) {
	return s.users.Count(ctx)
}

// SeedAdmin ensures the configured admin account exists. An already-seeded
// admin is left untouched.
func (s *AuthService) SeedAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return ErrMissingCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	err = s.admins.Create(ctx, username, string(hash))
	if errors.Is(err, repository.ErrDuplicateUser) {
		return nil
	}
	return err
}

func (s *AuthService) verify(ctx context.Context, store repository.AccountStore, username, password string) error {
	if username == "" || password == "" {
		return ErrMissingCredentials
	}

	secret, err := store.Get(ctx, username)
	if errors.Is(err, repository.ErrUserNotFound) {
		return ErrInvalidCredentials
	}
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(secret), []byte(password)) != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// publish dispatches a notification; failures are logged, never returned.
func (s *AuthService) publish(ctx context.Context, subject, message string) {
	if err := s.notifier.Publish(ctx, subject, message); err != nil {
		log.Printf("Failed to publish notification %q: %v", subject, err)
	}
}
