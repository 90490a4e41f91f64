// Package usecase defines the application-layer interfaces and their
// input/output types.
package usecase

import (
	"context"

	"expitrack/internal/domain/entity"

	"github.com/google/uuid"
)

// SignupInput carries the fields required to create an account.
type SignupInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// LoginInput carries login credentials plus an optional device
// registration piggybacked on the login call.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FCMToken string `json:"fcm_token"`
	Platform string `json:"platform"`
}

// AuthTokens is the token pair issued on signup, login and refresh.
type AuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthUsecase defines the interface for authentication use cases.
type AuthUsecase interface {
	// Signup creates a new account with a FREE subscription and returns
	// the user plus an initial token pair.
	Signup(ctx context.Context, input *SignupInput) (*entity.User, *AuthTokens, error)

	// Login verifies credentials, stamps last login, optionally registers
	// the supplied device token, and returns a token pair.
	Login(ctx context.Context, input *LoginInput) (*entity.User, *AuthTokens, error)

	// Refresh exchanges a valid refresh token for a new token pair.
	Refresh(ctx context.Context, refreshToken string) (*AuthTokens, error)

	// Logout removes the supplied device token registration, if any.
	Logout(ctx context.Context, userID uuid.UUID, fcmToken string) error

	// ForgotPassword issues a password reset token for the email. It
	// never reveals whether the email is registered.
	ForgotPassword(ctx context.Context, email string) error

	// ResetPassword sets a new password for the holder of a valid reset token.
	ResetPassword(ctx context.Context, token, newPassword string) error
}
