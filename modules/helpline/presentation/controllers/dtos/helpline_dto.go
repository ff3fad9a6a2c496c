package dtos

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/gaunghar/admin-console/modules/helpline/domain/aggregates/helpline"
	"github.com/gaunghar/admin-console/pkg/constants"
	"github.com/gaunghar/admin-console/pkg/intl"
	"github.com/gaunghar/admin-console/pkg/serrors"
)

type HelplineDTO struct {
	ForHelp     string `form:"ForHelp" validate:"required"`
	ContactName string `form:"ContactName" validate:"required"`
	Contact     string `form:"Contact" validate:"required"`
	IsActive    string `form:"IsActive" validate:"omitempty,oneof=A I"`
}

func (d *HelplineDTO) Ok(ctx context.Context) (map[string]string, bool) {
	l, ok := intl.UseLocalizer(ctx)
	if !ok {
		panic(intl.ErrNoLocalizer)
	}
	d.ForHelp = strings.TrimSpace(d.ForHelp)
	d.ContactName = strings.TrimSpace(d.ContactName)
	d.Contact = strings.TrimSpace(d.Contact)
	d.IsActive = strings.ToUpper(strings.TrimSpace(d.IsActive))

	errs := constants.Validate.Struct(d)
	if errs == nil {
		return map[string]string{}, true
	}
	validationErrors := serrors.ProcessValidatorErrors(errs.(validator.ValidationErrors), func(field string) string {
		return fmt.Sprintf("Helpline.Fields.%s", field)
	})
	return serrors.LocalizeValidationErrors(validationErrors, l), false
}

func (d *HelplineDTO) ToEntity(id string) helpline.Helpline {
	return helpline.Helpline{
		ID:          id,
		ForHelp:     d.ForHelp,
		ContactName: d.ContactName,
		Contact:     d.Contact,
		Status:      helpline.Status(d.IsActive),
	}
}
