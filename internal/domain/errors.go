package domain

import (
	"errors"
	"fmt"
)

// ConnectionError means the database could not be reached at all.
// It is fatal for the process once it has been surfaced to the user.
type ConnectionError struct {
	Err error
}

func (e ConnectionError) Error() string {
	if e.Err == nil {
		return "database connection failed"
	}
	return fmt.Sprintf("database connection failed: %v", e.Err)
}

func (e ConnectionError) Unwrap() error { return e.Err }

// QueryError wraps a failed lookup. Callers treat the result as empty.
type QueryError struct {
	Op  string
	Err error
}

func (e QueryError) Error() string {
	switch {
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.Op != "":
		return e.Op + " failed"
	case e.Err != nil:
		return e.Err.Error()
	default:
		return "query failed"
	}
}

func (e QueryError) Unwrap() error { return e.Err }

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsConnection(err error) bool {
	var target ConnectionError
	return errors.As(err, &target)
}

func IsQuery(err error) bool {
	var target QueryError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}
