package inference

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tdakkota/inferconf/version"
)

var (
	// ErrInvalidRequest is matched by every error caused by bad caller input.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrIncompatibleVersion is matched when config can't be sent to a peer.
	ErrIncompatibleVersion = errors.New("incompatible version")
)

// UnrecognizedFieldsError is returned when options contain unknown keys.
type UnrecognizedFieldsError struct {
	// Fields is sorted.
	Fields []string
}

func (e *UnrecognizedFieldsError) Error() string {
	return fmt.Sprintf("unrecognized fields [%s]", strings.Join(e.Fields, ", "))
}

func (e *UnrecognizedFieldsError) Is(target error) bool {
	return target == ErrInvalidRequest
}

// OptionsError is returned when options can't be decoded into config fields,
// e.g. value has wrong type or does not fit into int32.
type OptionsError struct {
	Err error
}

func (e *OptionsError) Error() string {
	return fmt.Sprintf("invalid options: %v", e.Err)
}

func (e *OptionsError) Unwrap() error {
	return e.Err
}

func (e *OptionsError) Is(target error) bool {
	return target == ErrInvalidRequest
}

// FieldTypeError is returned when config body has a value of unexpected type.
type FieldTypeError struct {
	Field string
	Want  string
	Value interface{}
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("field [%s] must be %s, got %T(%v)", e.Field, e.Want, e.Value, e.Value)
}

func (e *FieldTypeError) Is(target error) bool {
	return target == ErrInvalidRequest
}

// UnknownConfigError is returned when no config variant is registered under Name.
type UnknownConfigError struct {
	Name string
}

func (e *UnknownConfigError) Error() string {
	return fmt.Sprintf("unknown inference config [%s]", e.Name)
}

func (e *UnknownConfigError) Is(target error) bool {
	return target == ErrInvalidRequest
}

type UnknownTargetTypeError struct {
	Name string
}

func (e *UnknownTargetTypeError) Error() string {
	return fmt.Sprintf("unknown target type [%s]", e.Name)
}

func (e *UnknownTargetTypeError) Is(target error) bool {
	return target == ErrInvalidRequest
}

// IncompatibleVersionError is returned when peer is older than config's minimal version.
type IncompatibleVersionError struct {
	Name     string
	Required version.Version
	Peer     version.Version
}

func (e *IncompatibleVersionError) Error() string {
	return fmt.Sprintf("inference config [%s] requires version %s, peer is %s", e.Name, e.Required, e.Peer)
}

func (e *IncompatibleVersionError) Is(target error) bool {
	return target == ErrIncompatibleVersion
}
