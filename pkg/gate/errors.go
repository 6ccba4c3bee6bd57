package gate

import "errors"

var (
	// ErrUnauthenticated means no authenticated actor could be resolved
	// for the request.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden means the actor is authenticated but does not hold one
	// of the required roles. A missing profile row collapses to the same
	// error: both cases deny the action and nothing downstream
	// distinguishes them.
	ErrForbidden = errors.New("forbidden")
)
