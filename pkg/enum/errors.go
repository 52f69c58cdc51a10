package enum

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrUnknownName is matched by errors.Is for every failed Parse.
var ErrUnknownName = errors.New("enum: unknown name")

// UnknownNameError reports a name that is not declared for an enum type.
type UnknownNameError struct {
	Type string
	Name string
}

// Error implements the error interface
func (e *UnknownNameError) Error() string {
	return fmt.Sprintf("enum: %q is not a value of %s", e.Name, e.Type)
}

// Unwrap lets errors.Is match ErrUnknownName.
func (e *UnknownNameError) Unwrap() error {
	return ErrUnknownName
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
