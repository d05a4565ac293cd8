package view

import (
	"errors"
	"fmt"

	"github.com/open-agentic/viewengine/pkg/models"
)

// ErrEmptySequence is returned when an operation that requires at least
// one event is given none.
var ErrEmptySequence = errors.New("view: empty event sequence")

// MalformedInputError means an event in the raw sequence failed its own
// shape check (models.Event.Validate). It is always fatal: the engine
// refuses to project a view over input it cannot trust.
type MalformedInputError struct {
	EventID models.EventID
	Reason  string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("view: malformed event %q: %s", e.EventID, e.Reason)
}

// MatchingError means an ActionEvent or ObservationEvent could not be
// paired with its counterpart. In lenient mode (the default) the engine
// drops the orphan and keeps going; in strict mode this is surfaced as
// an error instead.
type MatchingError struct {
	ToolCallID models.ToolCallID
	Reason     string
}

func (e *MatchingError) Error() string {
	return fmt.Sprintf("view: unmatched tool call %q: %s", e.ToolCallID, e.Reason)
}

// InvariantError means a post-condition the engine itself is supposed to
// guarantee did not hold. It indicates a bug in the engine, not bad
// input. BuildView performs no post-condition checks and never returns
// this error; the type is available to callers that check the
// invariants themselves.
type InvariantError struct {
	Invariant string
	Detail    string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("view: invariant %q violated: %s", e.Invariant, e.Detail)
}

// AsMalformedInput reports whether err is (or wraps) a MalformedInputError.
func AsMalformedInput(err error) (*MalformedInputError, bool) {
	var m *MalformedInputError
	ok := errors.As(err, &m)
	return m, ok
}

// AsMatchingError reports whether err is (or wraps) a MatchingError.
func AsMatchingError(err error) (*MatchingError, bool) {
	var m *MatchingError
	ok := errors.As(err, &m)
	return m, ok
}
