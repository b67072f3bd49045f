// Package contact holds the validation rules of the portfolio's contact form.
package contact

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Form is a contact form submission.
type Form struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,address"`
	Subject string `validate:"required"`
	Message string `validate:"required,min=10"`
}

// same rule as the browser-side check, looser than RFC 5322
var addressPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var messages = map[string]string{
	"Name.required":    "Name is required",
	"Email.required":   "Email is required",
	"Email.address":    "Invalid email format",
	"Subject.required": "Subject is required",
	"Message.required": "Message is required",
	"Message.min":      "Message must be at least 10 characters",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("address", func(fl validator.FieldLevel) bool {
		return addressPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// Trimmed returns f with surrounding whitespace removed from every field.
func (f Form) Trimmed() Form {
	return Form{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Subject: strings.TrimSpace(f.Subject),
		Message: strings.TrimSpace(f.Message),
	}
}

// Validate checks the form and returns one message per failing field, keyed
// by lower-case field name. An empty map means the form is valid. Presence
// and length are judged on trimmed values; the address format is judged on
// the email exactly as typed.
func Validate(f Form) (map[string]string, error) {
	errs := map[string]string{}

	in := f.Trimmed()
	if in.Email != "" {
		in.Email = f.Email
	}
	err := validate.Struct(in)
	if err == nil {
		return errs, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, err
	}
	for _, fe := range verrs {
		key := strings.ToLower(fe.Field())
		if _, seen := errs[key]; seen {
			continue
		}
		msg, ok := messages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = fe.Error()
		}
		errs[key] = msg
	}
	return errs, nil
}
