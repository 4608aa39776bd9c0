package domain

import "errors"

// Sentinel errors for every failure the API distinguishes. Handlers never
// build status codes themselves; helper.RenderError translates these once.
var (
	// ErrEmailTaken is returned when a registration hits the unique email
	// index, or the pre-insert lookup finds an existing row.
	ErrEmailTaken = errors.New("email already exists")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password. The two cases must stay indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken covers bad signature, malformed payload and expiry.
	ErrInvalidToken = errors.New("invalid or expired token")

	ErrUnauthorized = errors.New("unauthorized request")

	// ErrTaskNotFound is returned both when a task does not exist and when
	// it belongs to another user.
	ErrTaskNotFound = errors.New("task not found")

	ErrUserNotFound = errors.New("user not found")
)
