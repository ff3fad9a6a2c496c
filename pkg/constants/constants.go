package constants

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

type contextKey string

const (
	AppKey       contextKey = "app"
	LoggerKey    contextKey = "logger"
	ParamsKey    contextKey = "params"
	SessionKey   contextKey = "session"
	PageContext  contextKey = "pageContext"
	NavItemsKey  contextKey = "navItems"
	RequestStart contextKey = "requestStart"
)

const (
	// DateLayout is the calendar date format exchanged with the backend.
	DateLayout = "2006-01-02"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// looser than the built-in "email" rule, matches what the backend accepts
	if err := v.RegisterValidation("basic_email", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}
