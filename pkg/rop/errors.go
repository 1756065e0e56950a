package rop

import (
	"errors"
	"fmt"
)

var (
	ErrNilError    = errors.New("rop: failure without error")
	ErrEmptyResult = errors.New("rop: empty result")
	ErrNoResult    = errors.New("rop: no result")

	ErrNilComputation = errors.New("rop: nil computation")
	ErrNone           = errors.New("rop: none value")
)

// PanicError is a panic recovered inside a combinator.
type PanicError struct {
	// Value is what was passed to panic.
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns Value when the panic carried an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// UnwrapError is raised (as a panic) by Unwrap and Expect on a failure.
type UnwrapError struct {
	// Msg is the Expect message, empty for Unwrap.
	Msg string
	Err error
}

func (e *UnwrapError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("unwrap of failed result: %v", e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Msg, e.Err)
}

func (e *UnwrapError) Unwrap() error {
	return e.Err
}
