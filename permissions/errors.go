package permissions

import (
	"errors"
	"fmt"

	"github.com/geoknoesis/rdf-permissions/rdf"
)

// ErrorCode represents a programmatic error code for error handling.
type ErrorCode string

const (
	// ErrCodeReadDenied indicates a denied Read.
	ErrCodeReadDenied ErrorCode = "READ_DENIED"
	// ErrCodeUpdateDenied indicates a denied Update.
	ErrCodeUpdateDenied ErrorCode = "UPDATE_DENIED"
	// ErrCodeAddDenied indicates a denied Create.
	ErrCodeAddDenied ErrorCode = "ADD_DENIED"
	// ErrCodeDeleteDenied indicates a denied Delete.
	ErrCodeDeleteDenied ErrorCode = "DELETE_DENIED"
	// ErrCodeAuthenticationRequired indicates an unauthenticated
	// principal where authentication is required.
	ErrCodeAuthenticationRequired ErrorCode = "AUTHENTICATION_REQUIRED"
)

var (
	// ErrAccessDenied matches every denial via errors.Is.
	ErrAccessDenied = errors.New("permissions: access denied")
	// ErrReadDenied indicates the principal lacks Read.
	ErrReadDenied = errors.New("permissions: read denied")
	// ErrUpdateDenied indicates the principal lacks Update on the
	// graph.
	ErrUpdateDenied = errors.New("permissions: update denied")
	// ErrAddDenied indicates the principal lacks Create on a triple.
	ErrAddDenied = errors.New("permissions: add denied")
	// ErrDeleteDenied indicates the principal lacks Delete on a
	// triple.
	ErrDeleteDenied = errors.New("permissions: delete denied")
	// ErrAuthenticationRequired indicates the evaluator requires an
	// authenticated principal.
	ErrAuthenticationRequired = errors.New("permissions: authentication required")
)

// AccessError is a typed denial. It carries the offending action, the
// graph, the triple when the denial is triple-level, and the principal.
type AccessError struct {
	// Action is the denied action.
	Action Action
	// Graph is the graph the denial applies to.
	Graph rdf.IRI
	// Triple is the offending triple, nil for graph-level denials.
	Triple *rdf.Triple
	// Principal is the denied principal.
	Principal Principal
}

func (e *AccessError) Error() string {
	if e.Triple != nil {
		return fmt.Sprintf("permissions: %s denied on %s for triple %s", e.Action, e.Graph.Value, e.Triple)
	}
	return fmt.Sprintf("permissions: %s denied on %s", e.Action, e.Graph.Value)
}

// Is matches ErrAccessDenied and the sentinel for the denied action.
func (e *AccessError) Is(target error) bool {
	if target == ErrAccessDenied {
		return true
	}
	return target == e.sentinel()
}

func (e *AccessError) sentinel() error {
	switch e.Action {
	case ActionRead:
		return ErrReadDenied
	case ActionUpdate:
		return ErrUpdateDenied
	case ActionCreate:
		return ErrAddDenied
	case ActionDelete:
		return ErrDeleteDenied
	}
	return ErrAccessDenied
}

// Code returns the error code for an error, or "" for nil and
// non-permission errors.
func Code(err error) ErrorCode {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrAuthenticationRequired):
		return ErrCodeAuthenticationRequired
	case errors.Is(err, ErrReadDenied):
		return ErrCodeReadDenied
	case errors.Is(err, ErrUpdateDenied):
		return ErrCodeUpdateDenied
	case errors.Is(err, ErrAddDenied):
		return ErrCodeAddDenied
	case errors.Is(err, ErrDeleteDenied):
		return ErrCodeDeleteDenied
	}
	return ""
}
