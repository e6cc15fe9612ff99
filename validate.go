package inkpress

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Error codes attached to individual form fields. Views translate these
// into user-facing messages.
const (
	CodeRequired     = "required"
	CodeTooShort     = "too_short"
	CodeInvalid      = "invalid"
	CodeMismatch     = "mismatch"
	CodeInvalidImage = "invalid_image"
)

// FieldErrors maps a form field name to an error code. An empty map means
// the input is acceptable for submission.
type FieldErrors map[string]string

// Valid reports whether no field is in error.
func (e FieldErrors) Valid() bool { return len(e) == 0 }

var formValidator = validator.New(validator.WithRequiredStructEnabled())

// draftRules is the trimmed view of a draft that the struct validator runs
// against, so min-length rules see the value net of surrounding whitespace.
type draftRules struct {
	Title       string `validate:"required,min=6"`
	Description string `validate:"required,min=6"`
}

// ValidateDraft checks a draft against the field rules: title and
// description must be non-blank after trimming and at least 6 characters.
// Author and image are optional and carry no rules. Fields are evaluated
// independently, so both can be flagged in one pass.
func ValidateDraft(d Draft) FieldErrors {
	errs := FieldErrors{}
	rules := draftRules{
		Title:       strings.TrimSpace(d.Title),
		Description: strings.TrimSpace(d.Description),
	}
	err := formValidator.Struct(rules)
	if err == nil {
		return errs
	}
	for _, fe := range err.(validator.ValidationErrors) {
		errs[strings.ToLower(fe.Field())] = codeForTag(fe.Tag())
	}
	return errs
}

// Registration is the raw input of the account registration form.
type Registration struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
	Confirm  string `validate:"required,eqfield=Password"`
}

// ValidateRegistration checks the registration form: name and email
// required, email well-formed, password at least 6 characters and matching
// its confirmation.
func ValidateRegistration(r Registration) FieldErrors {
	errs := FieldErrors{}
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	err := formValidator.Struct(r)
	if err == nil {
		return errs
	}
	for _, fe := range err.(validator.ValidationErrors) {
		errs[strings.ToLower(fe.Field())] = codeForTag(fe.Tag())
	}
	return errs
}

// Credentials is the raw input of the login form.
type Credentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// ValidateCredentials checks the login form before any store lookup happens.
func ValidateCredentials(c Credentials) FieldErrors {
	errs := FieldErrors{}
	c.Email = strings.TrimSpace(c.Email)
	err := formValidator.Struct(c)
	if err == nil {
		return errs
	}
	for _, fe := range err.(validator.ValidationErrors) {
		errs[strings.ToLower(fe.Field())] = codeForTag(fe.Tag())
	}
	return errs
}

func codeForTag(tag string) string {
	switch tag {
	case "required":
		return CodeRequired
	case "min":
		return CodeTooShort
	case "eqfield":
		return CodeMismatch
	default:
		return CodeInvalid
	}
}
