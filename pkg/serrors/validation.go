package serrors

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/iota-uz/go-i18n/v2/i18n"
)

// ValidationError is one failed rule on one form field.
type ValidationError struct {
	Tag      string
	Param    string
	FieldKey string
}

// ValidationErrors maps form field names to their first failed rule.
type ValidationErrors map[string]ValidationError

// ProcessValidatorErrors keeps the first error per field. fieldKey maps a
// struct field to its locale key; an empty key falls back to the field name.
func ProcessValidatorErrors(errs validator.ValidationErrors, fieldKey func(field string) string) ValidationErrors {
	out := make(ValidationErrors, len(errs))
	for _, err := range errs {
		field := err.Field()
		if _, seen := out[field]; seen {
			continue
		}
		key := fieldKey(field)
		if key == "" {
			key = field
		}
		out[field] = ValidationError{Tag: err.Tag(), Param: err.Param(), FieldKey: key}
	}
	return out
}

// FromError unwraps err into validator errors, reporting false for anything else.
func FromError(err error, fieldKey func(field string) string) (ValidationErrors, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}
	return ProcessValidatorErrors(verrs, fieldKey), true
}

func localize(l *i18n.Localizer, id string, data map[string]interface{}) (string, bool) {
	if l == nil {
		return "", false
	}
	msg, err := l.Localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
	if err != nil {
		return "", false
	}
	return msg, true
}

// LocalizeValidationErrors renders each error as "ValidationErrors.<tag>"
// with the translated field name, falling back to "ValidationErrors.invalid".
func LocalizeValidationErrors(errs ValidationErrors, l *i18n.Localizer) map[string]string {
	out := make(map[string]string, len(errs))
	for field, e := range errs {
		name, ok := localize(l, e.FieldKey, nil)
		if !ok {
			name = field
		}
		data := map[string]interface{}{"Field": name, "Param": e.Param}
		msg, ok := localize(l, "ValidationErrors."+e.Tag, data)
		if !ok {
			msg, ok = localize(l, "ValidationErrors.invalid", data)
		}
		if !ok {
			msg = name + " is invalid"
		}
		out[field] = msg
	}
	return out
}
