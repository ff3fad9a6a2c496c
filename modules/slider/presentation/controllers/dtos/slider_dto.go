package dtos

import (
	"context"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/gaunghar/admin-console/modules/slider/domain/aggregates/slider"
	"github.com/gaunghar/admin-console/pkg/constants"
	"github.com/gaunghar/admin-console/pkg/intl"
	"github.com/gaunghar/admin-console/pkg/serrors"
)

type SliderDTO struct {
	Title    string `form:"Title" validate:"required"`
	RedURL   string `form:"RedUrl" validate:"omitempty,url"`
	ImgOrder string `form:"ImgOrder" validate:"required,number"`
	IsActive string `form:"IsActive" validate:"omitempty,oneof=A I"`
}

func fieldKey(field string) string {
	return "Slider.Fields." + field
}

// Ok validates the form. The order must be a whole number above zero.
func (d *SliderDTO) Ok(ctx context.Context) (map[string]string, bool) {
	l, ok := intl.UseLocalizer(ctx)
	if !ok {
		panic(intl.ErrNoLocalizer)
	}
	d.Title = strings.TrimSpace(d.Title)
	d.RedURL = strings.TrimSpace(d.RedURL)
	d.ImgOrder = strings.TrimSpace(d.ImgOrder)
	d.IsActive = strings.ToUpper(strings.TrimSpace(d.IsActive))

	validationErrors := make(serrors.ValidationErrors)
	if errs := constants.Validate.Struct(d); errs != nil {
		validationErrors = serrors.ProcessValidatorErrors(errs.(validator.ValidationErrors), fieldKey)
	}
	if _, bad := validationErrors["ImgOrder"]; !bad && d.Order() <= 0 {
		validationErrors["ImgOrder"] = serrors.ValidationError{Tag: "gt", Param: "0", FieldKey: fieldKey("ImgOrder")}
	}
	if len(validationErrors) == 0 {
		return map[string]string{}, true
	}
	return serrors.LocalizeValidationErrors(validationErrors, l), false
}

func (d *SliderDTO) Order() int {
	n, err := strconv.Atoi(d.ImgOrder)
	if err != nil {
		return 0
	}
	return n
}

// ToEntity builds the slide to save. image is the encoded upload, empty when none was sent.
func (d *SliderDTO) ToEntity(id, image string) slider.Slider {
	return slider.Slider{
		ID:          id,
		Title:       d.Title,
		ImgURL:      image,
		RedirectURL: d.RedURL,
		Order:       d.Order(),
		Status:      slider.Status(d.IsActive),
	}
}

// MoveDTO is the reorder button.
type MoveDTO struct {
	Direction string `form:"Direction" validate:"required,oneof=up down"`
}

func (d *MoveDTO) Value() (slider.Direction, error) {
	d.Direction = strings.ToLower(strings.TrimSpace(d.Direction))
	if err := constants.Validate.Struct(d); err != nil {
		return "", err
	}
	dir, _ := slider.ParseDirection(d.Direction)
	return dir, nil
}
