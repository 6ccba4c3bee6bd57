// Package gate implements the authorization gate protecting privileged
// operations.
//
// The gate answers one question: is the current actor authenticated and,
// when a route or operation demands it, does the actor's stored role match
// one of the allowed roles. It has no side effects beyond the role lookup.
//
// Two middleware flavors wrap the same check: RequireRole for API routes
// (401/403 responses) and RequirePageRole for page navigation (redirects to
// the login page or a safe default destination).
package gate
