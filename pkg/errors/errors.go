package errors

import (
	"fmt"
	"sort"
	"strings"
)

// Error codes
const (
	CodeValidation    = "VALIDATION_ERROR"
	CodeConfiguration = "CONFIGURATION_ERROR"
	CodeUpstream      = "UPSTREAM_ERROR"
	CodeCache         = "CACHE_ERROR"
	CodePersistence   = "PERSISTENCE_ERROR"
)

type AppError struct {
	Message    string
	Code       string
	StatusCode int
	Context    map[string]any
	Cause      error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// ValidationError carries every violated field constraint, not just the first.
type ValidationError struct {
	*AppError
	Fields map[string]string
}

func NewValidationError(message string, fields map[string]string) *ValidationError {
	return &ValidationError{
		AppError: &AppError{
			Message:    message,
			Code:       CodeValidation,
			StatusCode: 400,
			Context:    map[string]any{"fields": fields},
		},
		Fields: fields,
	}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(names, ", "))
}

// ConfigurationError marks a missing or unusable credential/setting. The generation
// orchestrator treats it like any other model failure and falls back.
type ConfigurationError struct {
	*AppError
	Setting string
}

func NewConfigurationError(message, setting string) *ConfigurationError {
	return &ConfigurationError{
		AppError: &AppError{
			Message:    message,
			Code:       CodeConfiguration,
			StatusCode: 500,
			Context:    map[string]any{"setting": setting},
		},
		Setting: setting,
	}
}

// UpstreamError wraps failures of external generative services.
type UpstreamError struct {
	*AppError
	Service   string
	Operation string
}

func NewUpstreamError(message, service, operation string, cause error) *UpstreamError {
	return &UpstreamError{
		AppError: &AppError{
			Message:    message,
			Code:       CodeUpstream,
			StatusCode: 502,
			Context: map[string]any{
				"service":   service,
				"operation": operation,
			},
			Cause: cause,
		},
		Service:   service,
		Operation: operation,
	}
}

type CacheError struct {
	*AppError
	Operation string
	Key       string
}

func NewCacheError(message, operation, key string, cause error) *CacheError {
	return &CacheError{
		AppError: &AppError{
			Message:    message,
			Code:       CodeCache,
			StatusCode: 500,
			Context: map[string]any{
				"operation": operation,
				"key":       key,
			},
			Cause: cause,
		},
		Operation: operation,
		Key:       key,
	}
}

// PersistenceError marks a failed artifact write. This is the only error category
// the generation pipeline surfaces to callers.
type PersistenceError struct {
	*AppError
	Path string
}

func NewPersistenceError(message, path string, cause error) *PersistenceError {
	return &PersistenceError{
		AppError: &AppError{
			Message:    message,
			Code:       CodePersistence,
			StatusCode: 500,
			Context:    map[string]any{"path": path},
			Cause:      cause,
		},
		Path: path,
	}
}
