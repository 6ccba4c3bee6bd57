// Package application implements the donation-application review workflow.
//
// An application starts pending and is decided exactly once by a secretary
// or admin into the terminal approved or rejected status. The decision is a
// conditional update at the store layer, so two concurrent reviewers cannot
// both win. After the transition commits, the matching decision email is
// attempted on a detached context; its failure is logged and never surfaces
// to the caller.
package application
