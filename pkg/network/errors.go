package network

import "errors"

// Configuration errors are fatal and surfaced immediately; none of them are
// retried. Callers branch with errors.Is.
var (
	// ErrTooFewUsers indicates the requested node count does not leave room
	// for any regular users beyond the hub list.
	ErrTooFewUsers = errors.New("network: node count must exceed hub count")

	// ErrInvalidAttachment indicates the preferential-attachment parameter m
	// is incompatible with the number of backbone nodes (m < 1 or
	// m >= n_regular leaves the construction undefined).
	ErrInvalidAttachment = errors.New("network: invalid attachment parameter")

	// ErrTooFewPosts indicates the requested post count cannot cover the
	// viral posts authored by the leading hubs.
	ErrTooFewPosts = errors.New("network: post count below viral post count")
)
