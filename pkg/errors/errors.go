package errors

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/rs/zerolog"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
	ErrThemeLoad   ErrorCode = "THEME_LOAD"

	// Local pacman state
	ErrPacmanConf ErrorCode = "PACMAN_CONF"
	ErrLocalDB    ErrorCode = "LOCAL_DB"
	ErrDelegate   ErrorCode = "DELEGATE"

	// Remote index errors
	ErrURLBuild   ErrorCode = "URL_BUILD"
	ErrRetrieval  ErrorCode = "RETRIEVAL"
	ErrHTTPStatus ErrorCode = "HTTP_STATUS"
	ErrBodyRead   ErrorCode = "BODY_READ"
	ErrDecode     ErrorCode = "DECODE"
)

// PaclsError represents a structured error with code and details
type PaclsError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PaclsError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PaclsError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PaclsError) Is(target error) bool {
	var targetErr *PaclsError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PaclsError with the given code and message
func New(code ErrorCode, message string) *PaclsError {
	return &PaclsError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PaclsError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PaclsError {
	return &PaclsError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PaclsError
func Wrap(err error, code ErrorCode, message string) *PaclsError {
	if err == nil {
		return nil
	}
	return &PaclsError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PaclsError {
	if err == nil {
		return nil
	}
	return &PaclsError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PaclsError) WithDetail(key string, value interface{}) *PaclsError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// MarshalZerologObject adds the code, the message and every detail to a
// log event, so a failure can be logged as structured fields.
func (e *PaclsError) MarshalZerologObject(ev *zerolog.Event) {
	ev.Str("code", string(e.Code)).Str("message", e.Message)
	for _, k := range slices.Sorted(maps.Keys(e.Details)) {
		ev.Interface(k, e.Details[k])
	}
	if e.Wrapped != nil {
		ev.AnErr("cause", e.Wrapped)
	}
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var paclsErr *PaclsError
	if errors.As(err, &paclsErr) {
		return paclsErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PaclsError
func GetErrorCode(err error) ErrorCode {
	var paclsErr *PaclsError
	if errors.As(err, &paclsErr) {
		return paclsErr.Code
	}
	return ErrUnknown
}

// LogObject returns err's PaclsError for zerolog's EmbedObject, or nil when
// err carries none.
func LogObject(err error) zerolog.LogObjectMarshaler {
	var paclsErr *PaclsError
	if errors.As(err, &paclsErr) {
		return paclsErr
	}
	return nil
}

// GetErrorDetails returns the details from an error, or nil if not a PaclsError
func GetErrorDetails(err error) map[string]interface{} {
	var paclsErr *PaclsError
	if errors.As(err, &paclsErr) {
		return paclsErr.Details
	}
	return nil
}
