package draftapi

import (
	"errors"
	"fmt"
)

// ErrorKind classifies an operation failure. The handler maps kinds to HTTP
// status codes.
type ErrorKind int

const (
	// KindNotFound covers unknown folder ids, unknown draft names, and
	// missing path targets.
	KindNotFound ErrorKind = iota + 1
	// KindInvalidArgument covers traversal-flagged paths, unknown enum
	// names, malformed color tuples, bad track types, and unparseable
	// time expressions.
	KindInvalidArgument
	// KindConflict covers disallowed draft replacement.
	KindConflict
	// KindInternal covers unexpected engine failures and save I/O errors.
	KindInternal
)

// Error is a kind-tagged operation failure with a caller-facing message.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func notFoundf(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func invalidArgumentf(format string, args ...any) error {
	return &Error{Kind: KindInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

func conflictf(format string, args ...any) error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func internalf(format string, args ...any) error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the kind of err. Untagged errors are classified as
// internal.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
