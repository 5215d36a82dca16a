package common

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	KindNetwork ErrorKind = iota
	KindIO
	KindParse
)

func (k ErrorKind) String() string {
	return [...]string{"network", "io", "parse"}[k]
}

var (
	ErrNetworkError = fmt.Errorf("network error")
	ErrIOError      = fmt.Errorf("io error")
	ErrParseError   = fmt.Errorf("parse error")
)

// Error carries the kind of failure through fmt.Errorf wrapping,
// errors.Is(err, ErrNetworkError) matches any KindNetwork error.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func NewError(kind ErrorKind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
	}

	return fmt.Sprintf("%s error: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrNetworkError:
		return e.Kind == KindNetwork
	case ErrIOError:
		return e.Kind == KindIO
	case ErrParseError:
		return e.Kind == KindParse
	}

	return false
}

func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}

	return 0, false
}
