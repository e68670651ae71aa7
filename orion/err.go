package orion

import "errors"

// Kind classifies the errors that terminate the loop.
type Kind uint8

const (
	// KindOther is an application defined failure created with NewError.
	KindOther Kind = iota

	// KindPlatform is a failure of the window or the event loop.
	KindPlatform

	// KindFramebuffer is a failure to allocate, resize or present the framebuffer.
	KindFramebuffer

	// KindApplication is an error returned by one of the App callbacks.
	KindApplication
)

// Sentinels to match an error by its Kind using errors.Is.
var (
	ErrOther       error = KindOther
	ErrPlatform    error = KindPlatform
	ErrFramebuffer error = KindFramebuffer
	ErrApplication error = KindApplication
)

func (k Kind) Error() string {
	switch k {
	case KindPlatform:
		return "platform error"
	case KindFramebuffer:
		return "framebuffer error"
	case KindApplication:
		return "application error"
	default:
		return "error"
	}
}

// Error is returned by the loop when it terminates due to a failure.
type Error struct {
	Kind Kind

	// Op describes the operation that failed, e.g. "update" or "present"
	Op string

	Err error
}

// NewError creates an opaque application defined error.
func NewError(msg string) error {
	return &Error{Kind: KindOther, Err: errors.New(msg)}
}

// WrapError attaches a Kind and the failed operation to err. Returns nil
// if err is nil.
func WrapError(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}

	return &Error{Kind: kind, Op: op, Err: err}
}

func (e *Error) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}

	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	kind, ok := target.(Kind)
	return ok && kind == e.Kind
}
