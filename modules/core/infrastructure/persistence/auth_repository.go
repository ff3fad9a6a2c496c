package persistence

import (
	"context"
	"errors"

	"github.com/gaunghar/admin-console/modules/core/domain/aggregates/account"
	"github.com/gaunghar/admin-console/pkg/backend"
	"github.com/gaunghar/admin-console/pkg/session"
)

// loginSource marks requests coming from the web console.
const loginSource = "W"

type loginOp struct {
	ToleID   string `json:"ToleID"`
	UserName string `json:"UserName"`
	Password string `json:"Password"`
	NoToken  string `json:"NoToken"`
	Source   string `json:"Source"`
}

func (loginOp) Endpoint() string   { return "/api/login" }
func (loginOp) Flag() backend.Flag { return "" }

type changePasswordOp struct {
	ToleID string `json:"ToleID"`
	UserID string `json:"UserID"`
	OldPwd string `json:"OldPwd"`
	NewPwd string `json:"NewPwd"`
}

func (changePasswordOp) Endpoint() string   { return "/api/change-pwd" }
func (changePasswordOp) Flag() backend.Flag { return "" }

type loginRow struct {
	UserID           backend.Text `json:"UserID"`
	ToleID           backend.Text `json:"ToleID"`
	UserName         backend.Text `json:"UserName"`
	FirstName        backend.Text `json:"FirstName"`
	LastName         backend.Text `json:"LastName"`
	Email            backend.Text `json:"Email"`
	Contact          backend.Text `json:"Contact"`
	Gender           backend.Text `json:"Gender"`
	BirthAD          backend.Text `json:"BirthAD"`
	BloodGroup       backend.Text `json:"BloodGroup"`
	Profession       backend.Text `json:"Profession"`
	UserImage        backend.Text `json:"UserImage"`
	Nationality      backend.Text `json:"Nationality"`
	PermAddress      backend.Text `json:"PermAddress"`
	TempAddress      backend.Text `json:"TempAddress"`
	ToleName         backend.Text `json:"ToleName"`
	ToleDistrict     backend.Text `json:"ToleDistrict"`
	ToleMunicipality backend.Text `json:"ToleMunicipality"`
	ToleWoda         backend.Text `json:"ToleWoda"`
	ToleContact      backend.Text `json:"ToleContact"`
	ToleEmail        backend.Text `json:"ToleEmail"`
	ToleWebsite      backend.Text `json:"ToleWebsite"`
}

type loginResponse struct {
	backend.Status
	LoginLst []loginRow `json:"loginLst"`
}

func toAccount(row loginRow, fallbackToleID string) account.Account {
	toleID := row.ToleID.String()
	if toleID == "" {
		toleID = fallbackToleID
	}
	return account.Account{
		UserID: row.UserID.String(),
		ToleID: toleID,
		Profile: session.Profile{
			UserName:         row.UserName.String(),
			FirstName:        row.FirstName.String(),
			LastName:         row.LastName.String(),
			Email:            row.Email.String(),
			Contact:          row.Contact.String(),
			Gender:           row.Gender.String(),
			BirthAD:          row.BirthAD.String(),
			BloodGroup:       row.BloodGroup.String(),
			Profession:       row.Profession.String(),
			UserImage:        row.UserImage.String(),
			Nationality:      row.Nationality.String(),
			PermAddress:      row.PermAddress.String(),
			TempAddress:      row.TempAddress.String(),
			ToleName:         row.ToleName.String(),
			ToleDistrict:     row.ToleDistrict.String(),
			ToleMunicipality: row.ToleMunicipality.String(),
			ToleWoda:         row.ToleWoda.String(),
			ToleContact:      row.ToleContact.String(),
			ToleEmail:        row.ToleEmail.String(),
			ToleWebsite:      row.ToleWebsite.String(),
		},
	}
}

type AuthRepository struct {
	client *backend.Client
}

func NewAuthRepository(client *backend.Client) account.Repository {
	return &AuthRepository{client: client}
}

// Login maps any rejection, or a success without a profile row, to
// account.ErrInvalidCredentials. Transport failures pass through.
func (r *AuthRepository) Login(ctx context.Context, creds account.Credentials) (account.Account, error) {
	resp := &loginResponse{}
	op := loginOp{
		ToleID:   creds.ToleID,
		UserName: creds.UserName,
		Password: creds.Password,
		Source:   loginSource,
	}
	if err := r.client.Do(ctx, op, resp); err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) {
			return account.Account{}, errors.Join(account.ErrInvalidCredentials, err)
		}
		return account.Account{}, err
	}
	if len(resp.LoginLst) == 0 || resp.LoginLst[0].UserID.String() == "" {
		return account.Account{}, account.ErrInvalidCredentials
	}
	return toAccount(resp.LoginLst[0], creds.ToleID), nil
}

func (r *AuthRepository) ChangePassword(ctx context.Context, change account.PasswordChange) error {
	return r.client.Do(ctx, changePasswordOp{
		ToleID: change.ToleID,
		UserID: change.UserID,
		OldPwd: change.OldPwd,
		NewPwd: change.NewPwd,
	}, nil)
}
