package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnauthorized matches any *APIError carrying a 401 status via errors.Is.
var ErrUnauthorized = errors.New("unauthorized")

// genericErrorMessage is shown when the server's error body carries no
// usable message. Kept in the UI language of the application.
const genericErrorMessage = "Une erreur est survenue. Veuillez réessayer."

// APIError is a non-2xx response decoded into the server-provided message
// when one is present.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == http.StatusUnauthorized
}
