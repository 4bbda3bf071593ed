package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidUser is matched by every *ValidationError.
	ErrInvalidUser = errors.New("invalid user data")
)

// ValidationError collects every failed rule of one validation run.
type ValidationError struct {
	Messages []string
}

// Error joins the messages with a comma, the format the API reports them in.
func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ",")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidUser
}

func (e *ValidationError) add(msg string) {
	e.Messages = append(e.Messages, msg)
}

// orNil returns nil when no rule failed.
func (e *ValidationError) orNil() error {
	if len(e.Messages) == 0 {
		return nil
	}
	return e
}
