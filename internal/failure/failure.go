// Package failure holds the payloads a pipeline stage puts into a Failure.
// The set is closed: reporting code switches on these three types.
package failure

import (
	"fmt"
	"strings"
)

// ConfigMissing reports required environment names that were not bound.
type ConfigMissing struct {
	Fields []string
}

func (e *ConfigMissing) Error() string {
	return "missing required environment variables: " + strings.Join(e.Fields, ", ")
}

// RemoteCallFailed wraps an error returned by a workspace API call.
// Operation names the call, e.g. "databases.create".
type RemoteCallFailed struct {
	Operation string
	Cause     error
}

func (e *RemoteCallFailed) Error() string {
	return fmt.Sprintf("%s: %v", e.Operation, e.Cause)
}

func (e *RemoteCallFailed) Unwrap() error {
	return e.Cause
}

// MappingFailed reports a source payload that could not be turned into an
// event. Field is empty when the payload as a whole was unreadable.
type MappingFailed struct {
	Field string
	Cause error
}

func (e *MappingFailed) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("decode event payload: %v", e.Cause)
	}
	return fmt.Sprintf("map event field %q: %v", e.Field, e.Cause)
}

func (e *MappingFailed) Unwrap() error {
	return e.Cause
}

func Remote(operation string, cause error) error {
	return &RemoteCallFailed{Operation: operation, Cause: cause}
}

func Mapping(field string, cause error) error {
	return &MappingFailed{Field: field, Cause: cause}
}
