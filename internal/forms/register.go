// Package forms implements the client-side validation that gates form
// submission. Validation is a pure function over the current field values;
// running it twice on the same input yields the same error map.
package forms

import (
	"fmt"
	"regexp"
	"strings"
)

// Bounds shared with the platform's registration contract.
const (
	MinUsernameLength = 3
	MaxUsernameLength = 20
	MinPasswordLength = 8
	MaxPasswordLength = 128
)

// Field names used as keys in the error map.
const (
	FieldUsername           = "username"
	FieldEmail              = "email"
	FieldPassword           = "password"
	FieldConfirmPassword    = "confirmPassword"
	FieldCompanyName        = "companyName"
	FieldCompanyDescription = "companyDescription"
)

var (
	usernameCharset = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	emailShape      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	hasLower        = regexp.MustCompile(`[a-z]`)
	hasUpper        = regexp.MustCompile(`[A-Z]`)
	hasDigit        = regexp.MustCompile(`[0-9]`)
)

// RegistrationInput carries the registration form's field values.
type RegistrationInput struct {
	Username           string
	Email              string
	Password           string
	ConfirmPassword    string
	IsCompany          bool
	CompanyName        string
	CompanyDescription string
}

// ValidateRegistration returns a field→message map; an empty map means the
// form may be submitted. Messages match what the platform displays.
func ValidateRegistration(input RegistrationInput) map[string]string {
	errors := make(map[string]string)

	switch {
	case len(input.Username) < MinUsernameLength:
		errors[FieldUsername] = fmt.Sprintf("Nome de usuário deve ter pelo menos %d caracteres", MinUsernameLength)
	case len(input.Username) > MaxUsernameLength:
		errors[FieldUsername] = fmt.Sprintf("Nome de usuário deve ter no máximo %d caracteres", MaxUsernameLength)
	case !usernameCharset.MatchString(input.Username):
		errors[FieldUsername] = "Nome de usuário deve conter apenas letras, números e underscore"
	}

	if !emailShape.MatchString(input.Email) {
		errors[FieldEmail] = "Email inválido"
	}

	switch {
	case len(input.Password) < MinPasswordLength:
		errors[FieldPassword] = fmt.Sprintf("Senha deve ter pelo menos %d caracteres", MinPasswordLength)
	case len(input.Password) > MaxPasswordLength:
		errors[FieldPassword] = fmt.Sprintf("Senha deve ter no máximo %d caracteres", MaxPasswordLength)
	case !hasLower.MatchString(input.Password) ||
		!hasUpper.MatchString(input.Password) ||
		!hasDigit.MatchString(input.Password):
		errors[FieldPassword] = "Senha deve conter pelo menos uma letra maiúscula, uma minúscula e um número"
	}

	if input.Password != input.ConfirmPassword {
		errors[FieldConfirmPassword] = "Senhas não coincidem"
	}

	if input.IsCompany {
		if strings.TrimSpace(input.CompanyName) == "" {
			errors[FieldCompanyName] = "Nome da empresa é obrigatório"
		}
		if strings.TrimSpace(input.CompanyDescription) == "" {
			errors[FieldCompanyDescription] = "Descrição da empresa é obrigatória"
		}
	}

	return errors
}
