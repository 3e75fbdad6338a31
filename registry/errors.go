// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

import "errors"

var (
	// ErrClassroomExists is returned by Create when the code is taken.
	ErrClassroomExists = errors.New("classroom code already exists")

	// ErrClassroomNotFound is returned when no classroom has the given code.
	ErrClassroomNotFound = errors.New("classroom not found")

	// ErrUnknownStudent is returned when the caller has no membership
	// record in the classroom.
	ErrUnknownStudent = errors.New("unknown student")

	// ErrForbidden is returned when the authorization policy denies the
	// caller. It is always surfaced, never silently ignored.
	ErrForbidden = errors.New("forbidden")
)
