// Package common defines shared constants and sentinel errors used across
// client and server layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// ErrNotFound signals that the targeted record does not exist.
	ErrNotFound = errors.New("usuario no encontrado")

	// ErrDuplicateEmail signals a unique-constraint violation on the email column.
	ErrDuplicateEmail = errors.New("el email ya existe")

	// ErrValidation signals malformed or missing client input, including an
	// update request carrying no recognized fields.
	ErrValidation = errors.New("validation error")

	// ErrStorage signals a connectivity problem or an unexpected database
	// error. The raw driver error stays wrapped underneath and is never shown
	// to API consumers.
	ErrStorage = errors.New("storage error")
)
