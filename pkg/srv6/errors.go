package srv6

import (
	"errors"
	"fmt"
)

// Sentinel errors for parse failures. Typed errors below unwrap to these
// so callers can branch with errors.Is.
var (
	ErrInvalidPrefix    = errors.New("invalid IPv6 prefix")
	ErrUnknownDirective = errors.New("unknown configuration directive")
	ErrMissingLocator   = errors.New("prefix outside locator scope")
)

// InvalidPrefixError reports a prefix line whose CIDR failed validation.
type InvalidPrefixError struct {
	Line   int
	Prefix string
}

func (e *InvalidPrefixError) Error() string {
	return fmt.Sprintf("line %d: invalid IPv6 prefix %q", e.Line, e.Prefix)
}

func (e *InvalidPrefixError) Unwrap() error {
	return ErrInvalidPrefix
}

// UnknownDirectiveError reports a non-blank line that matched no grammar
// rule. Unrecognized lines are rejected, not skipped.
type UnknownDirectiveError struct {
	Line    int
	Content string
}

func (e *UnknownDirectiveError) Error() string {
	return fmt.Sprintf("line %d: unrecognized directive %q", e.Line, e.Content)
}

func (e *UnknownDirectiveError) Unwrap() error {
	return ErrUnknownDirective
}

// MissingLocatorError reports a prefix line that appeared before any
// locator declaration.
type MissingLocatorError struct {
	Line    int
	Content string
}

func (e *MissingLocatorError) Error() string {
	return fmt.Sprintf("line %d: prefix declared outside a locator block: %q", e.Line, e.Content)
}

func (e *MissingLocatorError) Unwrap() error {
	return ErrMissingLocator
}
