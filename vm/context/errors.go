package vmcontext

import (
	"fmt"

	"github.com/pkg/errors"
)

// NotFoundError is returned when a required storage item is missing.
type NotFoundError struct {
	Kind string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Kind)
}

func NewNotFound(kind string) error {
	return &NotFoundError{Kind: kind}
}

func IsNotFound(err error) bool {
	_, ok := errors.Cause(err).(*NotFoundError)
	return ok
}

// GenericError carries a plain message.
type GenericError struct {
	Msg string
}

func (e *GenericError) Error() string {
	return "Generic error: " + e.Msg
}

func NewGenericErr(msg string) error {
	return &GenericError{Msg: msg}
}

// ParseError reports a message or state value that could not be decoded.
type ParseError struct {
	Target string
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Error parsing into type %s: %s", e.Target, e.Msg)
}

func NewParseErr(target string, err error) error {
	return &ParseError{Target: target, Msg: err.Error()}
}

// SerializeError reports a value that could not be encoded.
type SerializeError struct {
	Source string
	Msg    string
}

func (e *SerializeError) Error() string {
	return fmt.Sprintf("Error serializing type %s: %s", e.Source, e.Msg)
}

func NewSerializeErr(source string, err error) error {
	return &SerializeError{Source: source, Msg: err.Error()}
}
