package services

import (
	"context"

	"github.com/pkg/errors"

	"github.com/gaunghar/admin-console/modules/core/domain/aggregates/account"
	"github.com/gaunghar/admin-console/pkg/composables"
	"github.com/gaunghar/admin-console/pkg/session"
)

type AuthService struct {
	repo          account.Repository
	sessions      session.Store
	defaultToleID string
}

// NewAuthService signs administrators in against repo. defaultToleID is sent
// with the login request when the form leaves the tole blank.
func NewAuthService(repo account.Repository, sessions session.Store, defaultToleID string) *AuthService {
	return &AuthService{repo: repo, sessions: sessions, defaultToleID: defaultToleID}
}

func (s *AuthService) DefaultToleID() string {
	return s.defaultToleID
}

// Login verifies the credentials and stores a new session for the account.
func (s *AuthService) Login(ctx context.Context, creds account.Credentials) (*session.Session, error) {
	if creds.ToleID == "" {
		creds.ToleID = s.defaultToleID
	}
	acc, err := s.repo.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	sess, err := s.sessions.Create(ctx, &session.Session{
		UserID:  acc.UserID,
		ToleID:  acc.ToleID,
		Profile: acc.Profile,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create session")
	}
	composables.UseLogger(ctx).WithField("user-id", acc.UserID).Info("administrator signed in")
	return sess, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessions.Delete(ctx, sessionID)
}

// ChangePassword changes the password of the administrator bound to ctx.
func (s *AuthService) ChangePassword(ctx context.Context, oldPwd, newPwd string) error {
	sess, err := composables.UseSession(ctx)
	if err != nil {
		return err
	}
	return s.repo.ChangePassword(ctx, account.PasswordChange{
		ToleID: sess.ToleID,
		UserID: sess.UserID,
		OldPwd: oldPwd,
		NewPwd: newPwd,
	})
}
