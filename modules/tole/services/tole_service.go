package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/wI2L/jsondiff"

	"github.com/gaunghar/admin-console/modules/tole/domain/aggregates/tole"
	"github.com/gaunghar/admin-console/pkg/composables"
)

type ToleService struct {
	repo tole.Repository
	now  func() time.Time
}

func NewToleService(repo tole.Repository) *ToleService {
	return &ToleService{repo: repo, now: time.Now}
}

// WithClock replaces the wall clock used for expiry checks.
func (s *ToleService) WithClock(now func() time.Time) *ToleService {
	s.now = now
	return s
}

func (s *ToleService) Now() time.Time {
	return s.now()
}

// List fetches the whole collection; paging and filtering happen in memory.
func (s *ToleService) List(ctx context.Context) ([]tole.Tole, error) {
	return s.repo.GetAll(ctx)
}

func (s *ToleService) Get(ctx context.Context, id string) (tole.Tole, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ToleService) Stats(ctx context.Context) (tole.Stats, error) {
	toles, err := s.repo.GetAll(ctx)
	if err != nil {
		return tole.Stats{}, err
	}
	return tole.ComputeStats(toles, s.now()), nil
}

func (s *ToleService) Create(ctx context.Context, t tole.Tole) error {
	if t.AllowApp == "" {
		t.AllowApp = tole.AllowAppYes
	}
	if t.RegDate.IsZero() {
		t.RegDate = tole.Day(s.now())
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return err
	}
	composables.UseLogger(ctx).WithField("tole_id", t.ID).Info("tole created")
	return nil
}

// Update saves t. An empty Logo keeps the stored one.
func (s *ToleService) Update(ctx context.Context, t tole.Tole) error {
	current, err := s.repo.GetByID(ctx, t.ID)
	if err != nil {
		return errors.Wrap(err, "load current tole")
	}
	if t.Logo == "" {
		t.Logo = current.Logo
	}
	if t.RegDate.IsZero() {
		t.RegDate = current.RegDate
	}
	if err := s.repo.Update(ctx, t); err != nil {
		return err
	}
	logChanges(ctx, current, t)
	return nil
}

func (s *ToleService) SetAllowApp(ctx context.Context, id string, allow tole.AllowApp) error {
	if allow != tole.AllowAppYes && allow != tole.AllowAppNo {
		return errors.Errorf("invalid AllowApp value %q", allow)
	}
	return s.repo.SetAllowApp(ctx, id, allow)
}

func (s *ToleService) Remove(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// ExtendExpiry moves the expiry of id to date. Dates not strictly in the
// future are rejected before any backend call.
func (s *ToleService) ExtendExpiry(ctx context.Context, id string, date time.Time) error {
	if err := tole.ValidateExpiry(date, s.now()); err != nil {
		return err
	}
	return s.repo.ExtendExpiry(ctx, id, date)
}

type auditView struct {
	Name           string `json:"name"`
	Address        string `json:"address"`
	ProvinceID     string `json:"province"`
	DistrictID     string `json:"district"`
	MunicipalityID string `json:"municipality"`
	WardNo         int    `json:"ward"`
	Contact        string `json:"contact"`
	Email          string `json:"email"`
	About          string `json:"about"`
	Website        string `json:"website"`
	Facebook       string `json:"facebook"`
	RegDate        string `json:"regDate"`
	Latitude       string `json:"latitude"`
	Longitude      string `json:"longitude"`
	AllowApp       string `json:"allowApp"`
	ExpiryDate     string `json:"expiryDate"`
	LogoSize       int    `json:"logoSize"`
}

func toAuditView(t tole.Tole) auditView {
	return auditView{
		Name:           t.Name,
		Address:        t.Address,
		ProvinceID:     t.Location.ProvinceID,
		DistrictID:     t.Location.DistrictID,
		MunicipalityID: t.Location.MunicipalityID,
		WardNo:         t.WardNo,
		Contact:        t.Contact,
		Email:          t.Email,
		About:          t.About,
		Website:        t.Website,
		Facebook:       t.Facebook,
		RegDate:        t.RegDate.Format(time.DateOnly),
		Latitude:       t.Latitude.String(),
		Longitude:      t.Longitude.String(),
		AllowApp:       string(t.AllowApp),
		ExpiryDate:     t.ExpiryDate.Format(time.DateOnly),
		LogoSize:       len(t.Logo),
	}
}

// Diff reports the fields that differ between before and after as a JSON Patch.
func Diff(before, after tole.Tole) (jsondiff.Patch, error) {
	return jsondiff.Compare(toAuditView(before), toAuditView(after))
}

func logChanges(ctx context.Context, before, after tole.Tole) {
	logger := composables.UseLogger(ctx).WithField("tole_id", after.ID)
	patch, err := Diff(before, after)
	if err != nil {
		logger.WithError(err).Warn("failed to diff tole update")
		return
	}
	raw, err := json.Marshal(patch)
	if err != nil {
		logger.WithError(err).Warn("failed to encode tole diff")
		return
	}
	logger.WithField("changes", string(raw)).Info("tole updated")
}
