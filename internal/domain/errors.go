package domain

import (
	"errors"
	"fmt"
)

var (
	ErrAuthDenied = errors.New("auth denied")
	ErrNotReady   = errors.New("controller not ready")
)

// TransportError indica que el intercambio de red no se completó.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DomainError es una respuesta bien formada con campo "error".
type DomainError struct {
	Op      string
	Status  int
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// ParseError indica una respuesta o entrada con forma inesperada.
type ParseError struct {
	What  string
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse %s %q: %v", e.What, e.Input, e.Err)
	}
	return fmt.Sprintf("parse %s %q", e.What, e.Input)
}

func (e *ParseError) Unwrap() error { return e.Err }
