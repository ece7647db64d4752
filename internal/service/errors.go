// Package service implements the domain services that orchestrate store
// access and enforce relational invariants.
package service

import "errors"

// Common service-level errors.
var (
	// ErrCommentNotOwned indicates that a comment exists but does not belong
	// to the post addressed in the request path. This is a client error, not
	// a not-found: both IDs resolve, their relationship is wrong.
	ErrCommentNotOwned = errors.New("comment does not belong to post")
)
