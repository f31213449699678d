package port

import "errors"

// Error taxonomy shared by the gateway, repository and usecase layers.
// Handlers map these onto HTTP status codes; nothing else inspects error
// strings.
var (
	// ErrRemoteUnavailable indicates the external platform could not be
	// reached. Polling retries it silently; user actions surface it.
	ErrRemoteUnavailable = errors.New("external platform unavailable")

	// ErrNotFound indicates the campaign is unknown, either locally or to
	// the external platform.
	ErrNotFound = errors.New("campaign not found")

	// ErrInvalidTransition indicates the requested status change is not
	// permitted by the lifecycle table. Local state is never mutated.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrActionInFlight indicates another action for the same campaign has
	// not yet resolved. The new request is rejected, not queued.
	ErrActionInFlight = errors.New("another action is in flight for this campaign")

	// ErrUnauthenticated indicates no valid session; it blocks all
	// operations and is handled by the auth layer above this core.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrConfirmExpired indicates a stop confirmation token is unknown or
	// no longer valid.
	ErrConfirmExpired = errors.New("stop confirmation expired or unknown")
)
