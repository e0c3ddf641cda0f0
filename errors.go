package sab

import "errors"

// Decode errors. All of them are terminal for the current Parse call;
// callers match them with errors.Is.
var (
	// ErrNotSAB is returned when the buffer starts with neither of the
	// known SAB signatures.
	ErrNotSAB = errors.New("not a SAB format buffer")

	// ErrTag is returned when the leading tag byte of a field does not
	// match what the grammar position requires.
	ErrTag = errors.New("unexpected tag")

	// ErrTruncated is returned when the buffer ends at a token boundary
	// inside a record that is not a reserved end-of-data marker.
	ErrTruncated = errors.New("premature end of data")

	// ErrUnknownTag is returned for a tag byte outside the recognized set.
	ErrUnknownTag = errors.New("unknown SAB tag")

	// ErrDanglingPointer is returned when a pointer index is outside the
	// decoded entity list.
	ErrDanglingPointer = errors.New("dangling entity pointer")

	// ErrTypeMismatch is returned by DataLoader accessors when the next
	// token is not of the requested kind.
	ErrTypeMismatch = errors.New("token type mismatch")
)

// errOutOfData marks a cursor read past the end of the buffer. The record
// stream treats it as the ragged tail of a truncated file and stops
// cleanly; the header reader surfaces it as ErrTruncated.
var errOutOfData = errors.New("out of data")
