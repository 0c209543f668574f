package comms

import (
	"fmt"
	"strings"
)

// MissingParameterError reports required protocol parameters absent
// from the caller's parameter bag.
type MissingParameterError struct {
	Protocol string
	Fields   []string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("protocol %q: missing required parameter(s): %s",
		e.Protocol, strings.Join(e.Fields, ", "))
}

// ValidationError reports a protocol parameter with a malformed or
// out-of-range value.
type ValidationError struct {
	Protocol string
	Field    string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("protocol %q: parameter %q %s", e.Protocol, e.Field, e.Reason)
}

// UnknownProtocolError reports a protocol name absent from the
// registry. Known carries the registered names for debuggability.
type UnknownProtocolError struct {
	Name  string
	Known []string
}

func (e *UnknownProtocolError) Error() string {
	return fmt.Sprintf("unknown communication protocol %q (known: %s)",
		e.Name, strings.Join(e.Known, ", "))
}
