package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	netmail "net/mail"

	"github.com/google/uuid"

	"github.com/buwanikaveesha/Jungle-Banana-Backend/internal/auth"
	"github.com/buwanikaveesha/Jungle-Banana-Backend/internal/mail"
	"github.com/buwanikaveesha/Jungle-Banana-Backend/internal/models"
	"github.com/buwanikaveesha/Jungle-Banana-Backend/internal/repository"
)

// AuthService handles the credential lifecycle: signup, login and the
// password-reset email flow.
type AuthService struct {
	users  UserStore
	cache  UserCache
	mailer mail.Mailer
	secret string
	appURL string
}

// NewAuthService creates a new auth service.
func NewAuthService(users UserStore, cache UserCache, mailer mail.Mailer, secret, appURL string) *AuthService {
	return &AuthService{
		users:  users,
		cache:  cache,
		mailer: mailer,
		secret: secret,
		appURL: appURL,
	}
}

func validEmail(email string) bool {
	addr, err := netmail.ParseAddress(email)
	return err == nil && addr.Address == email
}

// Signup registers a new user with a zeroed score record. A duplicate email
// fails with ErrEmailTaken and never touches the existing record.
func (s *AuthService) Signup(ctx context.Context, username, email, password string) error {
	if username == "" || email == "" || password == "" {
		return ErrMissingFields
	}
	if !validEmail(email) {
		return ErrInvalidEmail
	}

	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	err = s.users.Create(ctx, user)
	if errors.Is(err, repository.ErrDuplicateEmail) {
		// Lost a signup race for the same email.
		return ErrEmailTaken
	}
	return err
}

// Login verifies the credentials and mints a session token. No token is ever
// issued on a password mismatch.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return "", ErrUserNotFound
	}
	if err != nil {
		return "", err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	return auth.NewSessionToken(s.secret, user.ID, user.Email)
}

// ForgotPassword mints a reset token bound to the user's current password
// hash and mails the reset link. The mail send is blocking; a provider
// failure fails the request.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	if !validEmail(email) {
		return ErrInvalidEmail
	}

	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}

	token, err := auth.NewResetToken(s.secret, user.PasswordHash, user.ID, user.Email)
	if err != nil {
		return err
	}

	link := fmt.Sprintf("%s/reset-password/%s/%s", s.appURL, user.ID, token)
	body := fmt.Sprintf(
		"Hi %s,\n\nClick the link below to reset your Jungle Banana password. "+
			"The link expires in 5 minutes.\n\n%s\n\n"+
			"If you did not request a reset you can ignore this email.\n",
		user.Username, link)

	return s.mailer.Send(user.Email, "Reset your password", body)
}

// ResetPassword verifies the reset token against the user's current password
// hash and stores the new password. A failed verification mutates nothing,
// and a successful reset invalidates every outstanding token for the user
// because the hash it was signed with is gone.
func (s *AuthService) ResetPassword(ctx context.Context, userID, token, newPassword string) error {
	if newPassword == "" {
		return ErrMissingFields
	}

	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}

	claims, err := auth.ParseResetToken(s.secret, user.PasswordHash, token)
	if err != nil || claims.UserID != user.ID {
		return ErrInvalidResetToken
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		return err
	}

	if err := s.cache.Invalidate(ctx, user.ID); err != nil {
		log.Printf("Failed to invalidate cached user %s: %v", user.ID, err)
	}
	return nil
}
