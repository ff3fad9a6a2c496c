package dtos

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/gaunghar/admin-console/pkg/constants"
	"github.com/gaunghar/admin-console/pkg/intl"
	"github.com/gaunghar/admin-console/pkg/serrors"
)

type LoginDTO struct {
	ToleID   string `form:"ToleID"`
	UserName string `form:"UserName" validate:"required"`
	Password string `form:"Password" validate:"required"`
}

func (d *LoginDTO) Ok(ctx context.Context) (map[string]string, bool) {
	d.ToleID = strings.TrimSpace(d.ToleID)
	d.UserName = strings.TrimSpace(d.UserName)
	return validate(ctx, d, "Login.Fields")
}

type ChangePasswordDTO struct {
	OldPwd     string `form:"OldPwd" validate:"required"`
	NewPwd     string `form:"NewPwd" validate:"required"`
	ConfirmPwd string `form:"ConfirmPwd" validate:"required,eqfield=NewPwd"`
}

func (d *ChangePasswordDTO) Ok(ctx context.Context) (map[string]string, bool) {
	return validate(ctx, d, "Profile.Password")
}

func validate(ctx context.Context, dto any, fieldPrefix string) (map[string]string, bool) {
	l, ok := intl.UseLocalizer(ctx)
	if !ok {
		panic(intl.ErrNoLocalizer)
	}
	errs := constants.Validate.Struct(dto)
	if errs == nil {
		return map[string]string{}, true
	}
	validationErrors := serrors.ProcessValidatorErrors(errs.(validator.ValidationErrors), func(field string) string {
		return fmt.Sprintf("%s.%s", fieldPrefix, field)
	})
	return serrors.LocalizeValidationErrors(validationErrors, l), false
}
