package port

import "fmt"

// NotFoundError means an identifier, push, or file does not exist
// upstream. Terminal and non-retryable.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

// ConversionError means the commit mapper could not translate a hash.
// Status carries the upstream HTTP status.
type ConversionError struct {
	Direction string
	ID        string
	Status    int
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("convert %s %q: mapper returned status %d", e.Direction, e.ID, e.Status)
}

// UpstreamError means a collaborator answered with an unexpected
// status. Terminal everywhere except the release-calendar fetches,
// which degrade to nil dates.
type UpstreamError struct {
	Service string
	Status  int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.Service, e.Status)
}

// MissingInputError means the operator declined to supply a required
// value. Distinguished from upstream failures so the presentation
// layer does not frame it as a bug.
type MissingInputError struct {
	Field string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("required input %q was not provided", e.Field)
}
