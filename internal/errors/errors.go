// Package errors defines the typed domain errors surfaced by the core
// services. Sentinels are compared with errors.Is; call sites wrap them
// with fmt.Errorf("...: %w", err) when adding context.
package errors

// DomainError is a typed business error with a stable machine-readable code.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}
