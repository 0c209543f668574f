package standard

import (
	"fmt"
	"strings"
)

// ValidationError reports a required standard parameter that is
// missing, empty, or outside its enumerated values.
type ValidationError struct {
	Standard string
	Field    string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("standard %q: parameter %q %s", e.Standard, e.Field, e.Reason)
}

// UnknownStandardError reports a standard name absent from the
// registry. Known carries the registered names for debuggability.
type UnknownStandardError struct {
	Name  string
	Known []string
}

func (e *UnknownStandardError) Error() string {
	return fmt.Sprintf("unknown document standard %q (known: %s)",
		e.Name, strings.Join(e.Known, ", "))
}
