package services

import "errors"

// ErrNotLoggedIn is returned by operations that need an authenticated user
// while the session is empty.
var ErrNotLoggedIn = errors.New("not logged in")
