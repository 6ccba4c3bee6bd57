// Package profile manages registered-person records and their access roles.
//
// Authentication itself is delegated to the external identity provider; a
// profile row links an authenticated subject to a role (citizen, secretary,
// admin) and to the contact details used by notifications.
//
// Storage is abstracted behind ProfileRepository with PostgreSQL and
// in-memory implementations.
package profile
