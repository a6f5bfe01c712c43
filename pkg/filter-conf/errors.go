package filter_conf

import (
	stderrors "errors"
	"fmt"
)

// FatalError A configuration the caller cannot meaningfully continue from:
// out-of-range endpoint labels, unmatched specifiers, exhausted streams,
// unsupported media types, broken internal invariants. The top-level driver is
// expected to turn one of these into process termination. Everything else
// returned by this package is an engine failure the caller may survive
type FatalError struct {
	Msg string
}

func (e *FatalError) Error() string {
	return e.Msg
}

// Fatalf Build a FatalError with a descriptive diagnostic
func Fatalf(format string, a ...interface{}) error {
	return &FatalError{Msg: fmt.Sprintf(format, a...)}
}

// IsFatal Report whether err carries a FatalError anywhere in its chain
func IsFatal(err error) bool {
	var fe *FatalError
	return stderrors.As(err, &fe)
}
