package tickencoding

import "errors"

// Decode error classes. Every *DecodeError matches exactly one of them with
// errors.Is.
var (
	// ErrEncodingMalformed is returned when the text is not valid output of
	// the Encoding.
	ErrEncodingMalformed = errors.New("tickencoding: malformed encoded text")

	// ErrTargetConversion is returned when the decoded bytes cannot be
	// converted into the target type.
	ErrTargetConversion = errors.New("tickencoding: target conversion failed")
)

// DecodeError reports why encoded text could not be turned into a value.
//
// Error returns the message of the underlying cause verbatim so host
// frameworks print what the primitive or the target type said.
// Unwrap exposes both the class sentinel and the cause, so errors.Is and
// errors.As work against either.
type DecodeError struct {
	// Kind is ErrEncodingMalformed or ErrTargetConversion.
	Kind error
	// Err is the error returned by the Encoding or by SetBytes.
	Err error
}

func (e *DecodeError) Error() string {
	if e.Err == nil {
		return e.Kind.Error()
	}
	return e.Err.Error()
}

func (e *DecodeError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// IsEncodingMalformed checks if the error was caused by invalid encoded text.
func IsEncodingMalformed(err error) bool {
	return errors.Is(err, ErrEncodingMalformed)
}

// IsTargetConversion checks if the error was caused by the target type
// rejecting the decoded bytes.
func IsTargetConversion(err error) bool {
	return errors.Is(err, ErrTargetConversion)
}
