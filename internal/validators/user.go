package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-pooja-site/models"
)

const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
)

const (
	NameMinLength     = 3
	NameMaxLength     = 50
	PasswordMinLength = 6
)

// UserValidator enforces the account rules shared by registration and
// profile updates: name length, email format and password length.
//
// Unlike a fail-fast validator it reports every broken rule at once, so a
// client can fix the whole form in one round trip.
type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate accepts models.User, models.RegisterRequest,
// models.UpdateUserRequest and models.UpdatePasswordRequest (by value or
// pointer). For a password update only the new password is checked.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validate(value.Name, value.Email, value.Password, defaultFields(fields, FieldName, FieldEmail, FieldPassword))
	case *models.User:
		return v.Validate(ctx, *value, fields...)

	case models.RegisterRequest:
		return v.validate(value.Name, value.Email, value.Password, defaultFields(fields, FieldName, FieldEmail, FieldPassword))
	case *models.RegisterRequest:
		return v.Validate(ctx, *value, fields...)

	case models.UpdateUserRequest:
		return v.validate(value.Name, value.Email, "", defaultFields(fields, FieldName, FieldEmail))
	case *models.UpdateUserRequest:
		return v.Validate(ctx, *value, fields...)

	case models.UpdatePasswordRequest:
		return v.validate("", "", value.NewPassword, defaultFields(fields, FieldPassword))
	case *models.UpdatePasswordRequest:
		return v.Validate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func defaultFields(fields []string, defaults ...string) []string {
	if len(fields) == 0 {
		return defaults
	}
	return fields
}

func (v *UserValidator) validate(name, email, password string, fields []string) error {
	verr := &ValidationError{}

	for _, f := range fields {
		switch f {
		case FieldName:
			validateName(verr, name)
		case FieldEmail:
			validateEmail(verr, email)
		case FieldPassword:
			validatePassword(verr, password)
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return verr.orNil()
}

func validateName(verr *ValidationError, name string) {
	n := utf8.RuneCountInString(strings.TrimSpace(name))
	switch {
	case n == 0:
		verr.add("Please provide name")
	case n < NameMinLength:
		verr.add(fmt.Sprintf("Name must be at least %d characters", NameMinLength))
	case n > NameMaxLength:
		verr.add(fmt.Sprintf("Name must be at most %d characters", NameMaxLength))
	}
}

func validateEmail(verr *ValidationError, email string) {
	if email == "" {
		verr.add("Please provide email")
		return
	}
	if !IsEmail(email) {
		verr.add("Please provide valid email")
	}
}

func validatePassword(verr *ValidationError, password string) {
	switch n := utf8.RuneCountInString(password); {
	case n == 0:
		verr.add("Please provide password")
	case n < PasswordMinLength:
		verr.add(fmt.Sprintf("Password must be at least %d characters", PasswordMinLength))
	}
}

// IsEmail reports whether s is a bare address such as "name@example.com".
// Display names ("Name <a@b.c>") are rejected, and so is a domain without a
// dot.
func IsEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s || addr.Name != "" {
		return false
	}

	_, domain, ok := strings.Cut(s, "@")
	return ok && strings.Contains(domain, ".") && !strings.HasSuffix(domain, ".")
}
