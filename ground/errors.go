package ground

import "fmt"

// InvalidInputError reports a violated input invariant on a PageInfo value:
// a fatal condition the caller must fix before calling Extract again
// (spec.md §7).
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("ground: invalid input: %s: %s", e.Field, e.Reason)
}

// MalformedGroundingError reports a single grounded block that failed to
// parse or produced a degenerate bounding box. Extract logs these as
// warnings and continues with the remaining blocks (spec.md §7).
type MalformedGroundingError struct {
	Label  string
	Reason string
}

func (e *MalformedGroundingError) Error() string {
	return fmt.Sprintf("ground: malformed grounding block (label %q): %s", e.Label, e.Reason)
}
