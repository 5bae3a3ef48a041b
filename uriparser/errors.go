/*
Copyright 2025 URI Parser Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package uriparser

import (
	"errors"
	"fmt"
)

// Kind identifies the class of a parse failure.
type Kind int

const (
	// KindInvalidInput reports a value that exposes no to-text conversion.
	KindInvalidInput Kind = iota + 1
	// KindInvalidCharacters reports a control character (0x00-0x1F or 0x7F)
	// anywhere in the input.
	KindInvalidCharacters
	// KindInvalidScheme reports a scheme delimiter whose token violates the
	// scheme grammar.
	KindInvalidScheme
	// KindInvalidHostname reports malformed IP-literal bracket structure in
	// a host[:port] fragment.
	KindInvalidHostname
	// KindInvalidHost reports a host candidate that fails validation.
	KindInvalidHost
	// KindInvalidPort reports a port candidate that is not a clean base-10
	// unsigned integer.
	KindInvalidPort
	// KindMissingIDNSupport reports that an internationalized host required
	// the IDN capability but none is configured. It marks an environment
	// fault, not a malformed input.
	KindMissingIDNSupport
)

// Sentinel errors, one per failure kind. Every error returned by this
// package wraps exactly one of them, so callers can classify failures with
// errors.Is without inspecting the ParseError directly.
var (
	// ErrInvalidInput is wrapped when a value is not text and not
	// convertible to text.
	ErrInvalidInput = errors.New("input value is not text")
	// ErrInvalidCharacters is wrapped when the input holds control
	// characters.
	ErrInvalidCharacters = errors.New("URI contains control characters")
	// ErrInvalidScheme is wrapped when a scheme token fails the scheme
	// grammar.
	ErrInvalidScheme = errors.New("invalid scheme")
	// ErrInvalidHostname is wrapped when an IP literal has broken bracket
	// structure.
	ErrInvalidHostname = errors.New("malformed IP literal in hostname")
	// ErrInvalidHost is wrapped when a host candidate is unacceptable.
	ErrInvalidHost = errors.New("invalid host")
	// ErrInvalidPort is wrapped when a port candidate is not a base-10
	// unsigned integer.
	ErrInvalidPort = errors.New("invalid port")
	// ErrMissingIDNSupport is wrapped when IDN conversion is required but
	// unavailable.
	ErrMissingIDNSupport = errors.New("IDN conversion support is missing")
)

// sentinel returns the package-level error wrapped by ParseErrors of this kind.
func (k Kind) sentinel() error {
	switch k {
	case KindInvalidInput:
		return ErrInvalidInput
	case KindInvalidCharacters:
		return ErrInvalidCharacters
	case KindInvalidScheme:
		return ErrInvalidScheme
	case KindInvalidHostname:
		return ErrInvalidHostname
	case KindInvalidHost:
		return ErrInvalidHost
	case KindInvalidPort:
		return ErrInvalidPort
	case KindMissingIDNSupport:
		return ErrMissingIDNSupport
	}
	return nil
}

// ParseError is the error type returned by parsing functions in this package.
// It carries the failure kind, a descriptive message and the kind's sentinel
// error for use with errors.Is.
type ParseError struct {
	Kind    Kind
	Message string
	Err     error
}

// Error returns the string representation of the parse error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("URI parse error: %s", e.Message)
}

// Unwrap provides compatibility with Go's standard errors package.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Fatal reports whether the failure is an environment or configuration
// fault rather than a malformed input. Only KindMissingIDNSupport is fatal.
func (e *ParseError) Fatal() bool {
	return e.Kind == KindMissingIDNSupport
}

// newError builds a ParseError of the given kind, wrapping the kind's
// sentinel error.
func newError(kind Kind, format string, args ...any) *ParseError {
	return &ParseError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Err:     kind.sentinel(),
	}
}
