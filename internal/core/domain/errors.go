package domain

import "errors"

var (
	// ErrUserNotFound is returned when an id or name resolves to no account.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists is returned on a unique-name violation at insert.
	ErrUserExists = errors.New("user already exists")

	// ErrIncorrectName and ErrIncorrectPassword carry the exact client-facing
	// login failure messages.
	ErrIncorrectName     = errors.New("Incorrect user name has been entered.")
	ErrIncorrectPassword = errors.New("Incorrect password has been entered.")

	// ErrInvalidToken covers malformed, tampered and expired bearer tokens.
	ErrInvalidToken = errors.New("invalid token")

	// ErrNotAdmin denies a delete to a non-admin actor.
	ErrNotAdmin = errors.New("must be an admin in order to delete users")
	// ErrNotOwner denies an update to an actor who is neither the account
	// owner nor an admin.
	ErrNotOwner = errors.New("must be the owner of this account or an admin")
	// ErrNoFields rejects an update that supplies nothing to change.
	ErrNoFields = errors.New("no fields supplied")

	// ErrMissingField rejects a create/login request missing a required field.
	ErrMissingField = errors.New("missing required field")
)
