package fieldtypes

import (
	"errors"
	"fmt"
)

var (
	ErrFieldTypeNotFound   = errors.New("field type not found")
	ErrInvalidFieldType    = errors.New("registered field type must implement FieldType")
	ErrDuplicateIdentifier = errors.New("a field type with this identifier is already registered")
	ErrEmptyIdentifier     = errors.New("field type identifier cannot be empty")
	ErrNilConstructor      = errors.New("field type constructor cannot be nil")
	ErrNilFieldType        = errors.New("field type constructor returned nil")
	ErrNoRuleDefiner       = errors.New("request must provide a RuleDefiner")
	ErrNoFieldTypes        = errors.New("request must be given a FieldTypes registry")
)

// ConfigurationError is returned when field types or requests are wired
// incorrectly. It is a developer-facing error raised at declaration time,
// never a user input failure.
type ConfigurationError struct {
	Identifier string
	Err        error
}

// Error implements the error interface
func (ce *ConfigurationError) Error() string {
	if ce.Identifier == "" {
		return fmt.Sprintf("field types configuration: %v", ce.Err)
	}
	return fmt.Sprintf("field types configuration for %q: %v", ce.Identifier, ce.Err)
}

func (ce *ConfigurationError) Unwrap() error {
	return ce.Err
}

// NotFoundError is returned when an identifier was never registered.
type NotFoundError struct {
	Identifier string
}

// Error implements the error interface
func (nf *NotFoundError) Error() string {
	return fmt.Sprintf("field type %q not found", nf.Identifier)
}

// Is makes errors.Is(err, ErrFieldTypeNotFound) match any NotFoundError.
func (nf *NotFoundError) Is(target error) bool {
	return target == ErrFieldTypeNotFound
}

// IsConfigurationError reports whether err is or wraps a ConfigurationError.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

// IsNotFoundError reports whether err is or wraps a NotFoundError.
func IsNotFoundError(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
