package dtos

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/gaunghar/admin-console/modules/tole/domain/aggregates/tole"
	"github.com/gaunghar/admin-console/pkg/constants"
	"github.com/gaunghar/admin-console/pkg/intl"
	"github.com/gaunghar/admin-console/pkg/serrors"
)

// ToleFormDTO is the tole create and edit form. ScopeProvince and
// ScopeDistrict echo the selection the option lists were loaded for.
type ToleFormDTO struct {
	ToleID         string `form:"ToleID"`
	Name           string `form:"Name" validate:"required"`
	Address        string `form:"Address" validate:"required"`
	ProvinceID     string `form:"ProvinceID" validate:"required"`
	DistrictID     string `form:"DistrictID" validate:"required"`
	MunicipalityID string `form:"MunicipalityID" validate:"required"`
	ScopeProvince  string `form:"ScopeProvince"`
	ScopeDistrict  string `form:"ScopeDistrict"`
	WardNo         string `form:"WardNo" validate:"omitempty,number"`
	Contact        string `form:"Contact" validate:"required"`
	Email          string `form:"Email" validate:"required,basic_email"`
	About          string `form:"About"`
	Website        string `form:"Website"`
	Facebook       string `form:"Facebook"`
	RegDate        string `form:"RegDate" validate:"omitempty,datetime=2006-01-02"`
	Latitude       string `form:"Latitude" validate:"omitempty,latitude"`
	Longitude      string `form:"Longitude" validate:"omitempty,longitude"`
	AllowApp       string `form:"AllowApp" validate:"omitempty,oneof=Y N"`
	ExpiryDate     string `form:"ExpiryDate" validate:"omitempty,datetime=2006-01-02"`
}

func (d *ToleFormDTO) Normalize() {
	for _, f := range []*string{
		&d.ToleID, &d.Name, &d.Address, &d.ProvinceID, &d.DistrictID, &d.MunicipalityID,
		&d.WardNo, &d.Contact, &d.Email, &d.About, &d.Website, &d.Facebook,
		&d.RegDate, &d.Latitude, &d.Longitude, &d.AllowApp, &d.ExpiryDate,
	} {
		*f = strings.TrimSpace(*f)
	}
	d.AllowApp = strings.ToUpper(d.AllowApp)
}

func fieldLocaleKey(field string) string {
	switch field {
	case "ProvinceID", "DistrictID", "MunicipalityID":
		return fmt.Sprintf("Tole.Fields.%s", strings.TrimSuffix(field, "ID"))
	default:
		return fmt.Sprintf("Tole.Fields.%s", field)
	}
}

// Ok validates the form. The tole identifier is only required when creating.
func (d *ToleFormDTO) Ok(ctx context.Context, creating bool) (map[string]string, bool) {
	l, ok := intl.UseLocalizer(ctx)
	if !ok {
		panic(intl.ErrNoLocalizer)
	}

	d.Normalize()

	validationErrors := make(serrors.ValidationErrors)
	if creating && d.ToleID == "" {
		validationErrors["ToleID"] = serrors.ValidationError{Tag: "required", FieldKey: "Tole.Fields.ToleID"}
	}
	if errs := constants.Validate.Struct(d); errs != nil {
		validatorErrs := errs.(validator.ValidationErrors)
		for field, err := range serrors.ProcessValidatorErrors(validatorErrs, fieldLocaleKey) {
			validationErrors[field] = err
		}
	}
	if len(validationErrors) == 0 {
		return map[string]string{}, true
	}
	return serrors.LocalizeValidationErrors(validationErrors, l), false
}

func parseDate(v string) time.Time {
	if v == "" {
		return time.Time{}
	}
	t, err := time.Parse(constants.DateLayout, v)
	if err != nil {
		return time.Time{}
	}
	return t
}

func parseDecimal(v string) decimal.Decimal {
	if v == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ToEntity builds the tole to save. logo is the already encoded upload, empty
// when none was sent.
func (d *ToleFormDTO) ToEntity(logo string) tole.Tole {
	ward, _ := strconv.Atoi(d.WardNo)
	allow := tole.AllowApp(d.AllowApp)
	if allow == "" {
		allow = tole.AllowAppYes
	}
	return tole.Tole{
		ID:      d.ToleID,
		Name:    d.Name,
		Address: d.Address,
		Location: tole.Location{
			ProvinceID:     d.ProvinceID,
			DistrictID:     d.DistrictID,
			MunicipalityID: d.MunicipalityID,
		},
		WardNo:     ward,
		Contact:    d.Contact,
		Email:      d.Email,
		Logo:       logo,
		About:      d.About,
		Website:    d.Website,
		Facebook:   d.Facebook,
		RegDate:    parseDate(d.RegDate),
		Latitude:   parseDecimal(d.Latitude),
		Longitude:  parseDecimal(d.Longitude),
		AllowApp:   allow,
		ExpiryDate: parseDate(d.ExpiryDate),
	}
}

// ExtendExpiryDTO is the extend-expiry dialog form.
type ExtendExpiryDTO struct {
	ExpiryDate string `form:"ExpiryDate" validate:"required,datetime=2006-01-02"`
	Name       string `form:"Name"`
	Current    string `form:"Current"`
}

func (d *ExtendExpiryDTO) Date() (time.Time, error) {
	d.ExpiryDate = strings.TrimSpace(d.ExpiryDate)
	if err := constants.Validate.Struct(d); err != nil {
		return time.Time{}, err
	}
	return time.Parse(constants.DateLayout, d.ExpiryDate)
}

// AllowAppDTO carries the value the confirm dialog asks to set.
type AllowAppDTO struct {
	AllowApp string `form:"AllowApp" validate:"required,oneof=Y N"`
}

func (d *AllowAppDTO) Value() (tole.AllowApp, error) {
	d.AllowApp = strings.ToUpper(strings.TrimSpace(d.AllowApp))
	if err := constants.Validate.Struct(d); err != nil {
		return "", err
	}
	return tole.AllowApp(d.AllowApp), nil
}
