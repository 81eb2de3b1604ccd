package services

import (
	"errors"
	"regexp"
	"strings"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// Form rules enforced before any request leaves the client. This mirrors
// the server's own validation for faster feedback; the server stays
// authoritative.

var (
	reDigit   = regexp.MustCompile(`[0-9]`)
	reLower   = regexp.MustCompile(`[a-z]`)
	reUpper   = regexp.MustCompile(`[A-Z]`)
	reSpecial = regexp.MustCompile(`[@#$%^&+=!]`)
)

// ValidatePassword applies the password policy: at least 8 characters, one
// digit, one lowercase, one uppercase, one of @#$%^&+=!, and no whitespace.
func ValidatePassword(password string) error {
	return validation.Validate(password,
		validation.Required.Error("Le mot de passe est requis"),
		validation.Length(8, 0).Error("Au moins 8 caractères"),
		validation.Match(reDigit).Error("Au moins 1 chiffre"),
		validation.Match(reLower).Error("Au moins 1 minuscule"),
		validation.Match(reUpper).Error("Au moins 1 majuscule"),
		validation.Match(reSpecial).Error("Au moins 1 caractère spécial (@#$%^&+=!)"),
		validation.By(noWhitespace),
	)
}

func noWhitespace(value interface{}) error {
	s, _ := value.(string)
	if strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return errors.New("Pas d'espaces autorisés")
	}
	return nil
}

func validateRegistration(username, email, password string) error {
	return validation.Errors{
		"username": validation.Validate(username, validation.Required.Error("Le nom d'utilisateur est requis")),
		"email":    validation.Validate(email, validation.Required.Error("L'email est requis"), is.Email.Error("Email invalide")),
		"password": ValidatePassword(password),
	}.Filter()
}

func validateLogin(identifier, password string) error {
	return validation.Errors{
		"identifier": validation.Validate(identifier, validation.Required.Error("L'identifiant est requis")),
		"password":   validation.Validate(password, validation.Required.Error("Le mot de passe est requis")),
	}.Filter()
}
