package ui

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"todoterm/internal/apperr"
)

// Form validation runs entirely client-side; a failing form never reaches
// the auth client. Rules mirror what gates a request from being sent: empty
// fields, a password under 8 characters, an email without '@', a confirm
// mismatch.

var validate = validator.New()

type signInForm struct {
	Email    string `validate:"required"`
	Password string `validate:"required,min=8"`
}

type signUpForm struct {
	FullName string `validate:"required"`
	Email    string `validate:"required,contains=@"`
	Password string `validate:"required,min=8"`
	Confirm  string `validate:"required,min=8,eqfield=Password"`
}

func (f signInForm) check() error {
	errs, err := fieldErrors(validate.Struct(f))
	if err != nil || errs == nil {
		return err
	}
	fe := errs[0]
	if fe.Tag() == "required" {
		return apperr.Validation(fe.Field(), "Email and password must not be empty.")
	}
	return apperr.Validation("Password", "Password must be at least 8 characters.")
}

func (f signUpForm) check() error {
	errs, err := fieldErrors(validate.Struct(f))
	if err != nil || errs == nil {
		return err
	}
	fe := errs[0]
	switch {
	case fe.Tag() == "required":
		return apperr.Validation(fe.Field(), "All fields are required.")
	case fe.Field() == "Email":
		return apperr.Validation("Email", "Email must contain '@'.")
	case fe.Field() == "Password":
		return apperr.Validation("Password", "Password must be at least 8 characters.")
	case fe.Tag() == "min":
		return apperr.Validation("Confirm", "Confirm password must be at least 8 characters.")
	default:
		return apperr.Validation("Confirm", "Password and confirm password do not match.")
	}
}

// fieldErrors splits a validator result into per-field failures. A non-field
// failure should not happen with these forms; it still degrades to a generic
// validation error rather than reaching the backend.
func fieldErrors(err error) (validator.ValidationErrors, error) {
	if err == nil {
		return nil, nil
	}
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		return errs, nil
	}
	return nil, apperr.Validation("", "Invalid input.")
}
