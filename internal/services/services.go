package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/adanyl0v/go-task-tracker/internal/models"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUserAlreadyExists    = errors.New("user already exists")
	ErrUserPasswordMismatch = errors.New("user password mismatch")
	ErrSessionNotFound      = errors.New("session not found")
	ErrSessionExpired       = errors.New("session expired")

	// ErrTaskForbidden means the task exists but belongs to a
	// different owner. It is deliberately distinct from the store's
	// not-found error so the HTTP layer can answer 403 instead of 404.
	ErrTaskForbidden = errors.New("task belongs to another user")
)

type TaskService interface {
	// Add validates the title and description, allocates an ID and
	// stores a new pending task. It returns a *models.ValidationError
	// if the input is malformed.
	Add(ctx context.Context, owner models.Owner, title string, description *string) (*models.Task, error)

	// List returns the owner's tasks in creation order, optionally
	// filtered by completion status and paginated by skip/limit. An
	// empty result is not an error.
	List(ctx context.Context, owner models.Owner, params ListTasksParams) ([]*models.Task, error)

	// Get returns one task. It returns storage.ErrTaskNotFound if no
	// task has the given ID and ErrTaskForbidden if the task belongs
	// to a different owner. Existence is always checked before
	// ownership.
	Get(ctx context.Context, owner models.Owner, id int64) (*models.Task, error)

	// Update overwrites the provided fields after re-validating them
	// and refreshes the task's updated-at timestamp. Validation runs
	// before any store mutation.
	Update(ctx context.Context, owner models.Owner, params UpdateTaskParams) (*models.Task, error)

	// Delete removes the task and returns it. Its ID is never reused.
	Delete(ctx context.Context, owner models.Owner, id int64) (*models.Task, error)

	// Toggle flips the task between pending and completed.
	Toggle(ctx context.Context, owner models.Owner, id int64) (*models.Task, error)
}

type ListTasksParams struct {
	Completed *bool
	Skip      int
	Limit     int
}

type UpdateTaskParams struct {
	ID          int64
	Title       *string
	Description *string
}

type AuthService interface {
	// Register creates a user with the given email and password,
	// hashes the password, generates a unique ID and opens a session
	// with a fresh token pair.
	//
	// It returns ErrUserAlreadyExists if the email is taken.
	Register(ctx context.Context, params RegisterParams) (*AuthResult, error)

	// Login authenticates the user by email and password, drops all
	// previous sessions and opens a new one.
	//
	// It returns ErrUserNotFound or ErrUserPasswordMismatch.
	Login(ctx context.Context, params LoginParams) (*AuthResult, error)

	// Refresh rotates the refresh token of an existing session and
	// issues a new access token.
	//
	// It returns ErrSessionNotFound or ErrSessionExpired.
	Refresh(ctx context.Context, refreshToken string) (*AuthResult, error)

	// Logout invalidates all sessions of the given user.
	Logout(ctx context.Context, userID string) error

	// ParseAccessToken parses and verifies the access token and
	// returns its registered claims, or jwt.ErrTokenExpired if the
	// token is expired.
	ParseAccessToken(token string) (*jwt.RegisteredClaims, error)
}

type RegisterParams struct {
	Email    string
	Name     string
	Password string
}

type LoginParams struct {
	Email    string
	Password string
}

type AuthResult struct {
	UserID                string
	SessionID             string
	AccessToken           string
	AccessTokenExpiresAt  time.Time
	RefreshToken          string
	RefreshTokenExpiresAt time.Time
}
