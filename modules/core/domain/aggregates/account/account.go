package account

import (
	"context"
	"errors"

	"github.com/gaunghar/admin-console/pkg/session"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// Account is the administrator the login endpoint returns.
type Account struct {
	UserID  string
	ToleID  string
	Profile session.Profile
}

type Credentials struct {
	ToleID   string
	UserName string
	Password string
}

type PasswordChange struct {
	ToleID string
	UserID string
	OldPwd string
	NewPwd string
}

type Repository interface {
	Login(ctx context.Context, creds Credentials) (Account, error)
	ChangePassword(ctx context.Context, change PasswordChange) error
}
