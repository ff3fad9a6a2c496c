package session

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound  = errors.New("session not found")
	ErrMalformed = errors.New("session is malformed")
)

// Profile is the administrator record returned by the login endpoint.
type Profile struct {
	UserName         string `json:"UserName"`
	FirstName        string `json:"FirstName"`
	LastName         string `json:"LastName"`
	Email            string `json:"Email"`
	Contact          string `json:"Contact"`
	Gender           string `json:"Gender"`
	BirthAD          string `json:"BirthAD"`
	BloodGroup       string `json:"BloodGroup"`
	Profession       string `json:"Profession"`
	UserImage        string `json:"UserImage"`
	Nationality      string `json:"Nationality"`
	PermAddress      string `json:"PermAddress"`
	TempAddress      string `json:"TempAddress"`
	ToleName         string `json:"ToleName"`
	ToleDistrict     string `json:"ToleDistrict"`
	ToleMunicipality string `json:"ToleMunicipality"`
	ToleWoda         string `json:"ToleWoda"`
	ToleContact      string `json:"ToleContact"`
	ToleEmail        string `json:"ToleEmail"`
	ToleWebsite      string `json:"ToleWebsite"`
}

// Session is the authenticated administrator. UserID and ToleID are sent with
// every backend request.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ToleID    string    `json:"tole_id"`
	Profile   Profile   `json:"profile"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *Session) FullName() string {
	name := strings.TrimSpace(s.Profile.FirstName + " " + s.Profile.LastName)
	if name == "" {
		return s.Profile.UserName
	}
	return name
}

func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// Store keeps sessions keyed by the sid cookie value.
type Store interface {
	Create(ctx context.Context, s *Session) (*Session, error)
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

func encode(s *Session) ([]byte, error) {
	return json.Marshal(s)
}

// decode rejects payloads that do not describe an authenticated administrator.
func decode(raw []byte) (*Session, error) {
	s := &Session{}
	if err := json.Unmarshal(raw, s); err != nil {
		return nil, errors.Join(ErrMalformed, err)
	}
	if s.ID == "" || s.UserID == "" {
		return nil, ErrMalformed
	}
	return s, nil
}
