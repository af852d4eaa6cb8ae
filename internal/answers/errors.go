package answers

import (
	"fmt"
	"strings"

	oerrors "github.com/opmodel/skel/internal/errors"
)

// OptionError reports an answer key or value outside the recognized
// vocabulary, or a required answer that was never set.
type OptionError struct {
	// Option is the offending key.
	Option string

	// Value is the offending value; empty for unknown keys.
	Value string

	// Allowed lists the accepted values, when the option has a closed vocabulary.
	Allowed []string

	// Reason describes the problem.
	Reason string
}

// Error implements the error interface.
func (e *OptionError) Error() string {
	msg := fmt.Sprintf("option %q: %s", e.Option, e.Reason)
	if len(e.Allowed) > 0 {
		msg += fmt.Sprintf(" (valid values: %s)", strings.Join(e.Allowed, ", "))
	}
	return msg
}

// Unwrap ties option errors to the validation exit code.
func (e *OptionError) Unwrap() error {
	return oerrors.ErrValidation
}

func unknownOption(key string) *OptionError {
	return &OptionError{Option: key, Reason: "unrecognized option"}
}

func invalidValue(d Definition, value string) *OptionError {
	return &OptionError{
		Option:  string(d.Key),
		Value:   value,
		Allowed: d.Choices,
		Reason:  fmt.Sprintf("invalid value %q", value),
	}
}
