// Package errors provides standardized error handling for sweep.
// It defines the error kinds raised while loading configuration, discovering
// removable packages and removing them, plus helpers for consistent error
// creation, wrapping and classification across the application.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package errors that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Config error kinds
	InvalidConfig
	ConfigUnreadable
	// Key symbol parse error kinds
	UnknownKey
	// Discovery error kinds
	CommandNotFound
	DiscoveryFailed
	UnsupportedSystem
	// Removal error kinds
	BackendFailed
	IoFailed
)

// String returns a short name for the kind
func (k ErrorKind) String() string {
	switch k {
	case InvalidConfig:
		return "invalid config"
	case ConfigUnreadable:
		return "config unreadable"
	case UnknownKey:
		return "unknown key"
	case CommandNotFound:
		return "command not found"
	case DiscoveryFailed:
		return "discovery failed"
	case UnsupportedSystem:
		return "unsupported system"
	case BackendFailed:
		return "backend failed"
	case IoFailed:
		return "io failed"
	default:
		return "unknown"
	}
}

// ErrRemovalFailed is returned by the CLI when at least one removal failed.
var ErrRemovalFailed = New("one or more removals failed")

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// ConfigError represents errors related to configuration.
// Param names the offending field, e.g. "keybindings.quit".
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// ParseError is raised for a key symbol that cannot be resolved
type ParseError struct {
	ApplicationError
	input string
}

// NewParseError creates an UnknownKey error for the original, unmodified input
func NewParseError(input string) *ParseError {
	return &ParseError{
		ApplicationError: ApplicationError{
			msg:  "unknown key",
			kind: UnknownKey,
		},
		input: input,
	}
}

// Error returns the parse error message
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %q", e.msg, e.input)
}

// Input returns the string that failed to parse
func (e *ParseError) Input() string {
	return e.input
}

// DiscoveryError represents a failure to list removable packages
type DiscoveryError struct {
	ApplicationError
	command string
}

// NewDiscoveryError creates a new discovery error for a host command
func NewDiscoveryError(msg string, command string, kind ErrorKind, err error) *DiscoveryError {
	return &DiscoveryError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		command: command,
	}
}

// Error returns the discovery error message
func (e *DiscoveryError) Error() string {
	if e.command != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.command, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.command)
	}
	return e.ApplicationError.Error()
}

// Command returns the host command associated with the error
func (e *DiscoveryError) Command() string {
	return e.command
}

// RemovalError represents a failed removal of a single item.
// Target is the package name or the artifact path.
type RemovalError struct {
	ApplicationError
	target string
}

// NewRemovalError creates a new removal error
func NewRemovalError(msg string, target string, kind ErrorKind, err error) *RemovalError {
	return &RemovalError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		target: target,
	}
}

// Error returns the removal error message
func (e *RemovalError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %v", e.msg, e.target, e.err)
	}
	return fmt.Sprintf("%s: %s", e.msg, e.target)
}

// Target returns the package name or path that could not be removed
func (e *RemovalError) Target() string {
	return e.target
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == InvalidConfig
	}
	return false
}

// IsUnknownKey checks if the error is an unresolvable key symbol
func IsUnknownKey(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}

// IsDiscoveryFailure checks if the error came from a discovery backend
func IsDiscoveryFailure(err error) bool {
	var discErr *DiscoveryError
	return errors.As(err, &discErr)
}

// IsBackendFailed checks if a package manager invocation failed
func IsBackendFailed(err error) bool {
	var remErr *RemovalError
	if errors.As(err, &remErr) {
		return remErr.Kind() == BackendFailed
	}
	return false
}

// IsIoFailed checks if a filesystem removal failed
func IsIoFailed(err error) bool {
	var remErr *RemovalError
	if errors.As(err, &remErr) {
		return remErr.Kind() == IoFailed
	}
	return false
}

// ConfigParam returns the configuration field named by err, if any
func ConfigParam(err error) string {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Param()
	}
	return ""
}
