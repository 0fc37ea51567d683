package sequencer

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput is wrapped by every precondition failure of Sequence
	// and Validate. Callers branch on it with errors.Is.
	ErrInvalidInput = errors.New("sequencer: invalid input")

	// ErrAmbiguousGroup indicates an item listed more than once across groups.
	ErrAmbiguousGroup = errors.New("sequencer: item appears in more than one group slot")

	// ErrItemMismatch indicates that the graph keys and the group items differ.
	ErrItemMismatch = errors.New("sequencer: items in graph must be the same as items in groups")

	// ErrUnknownDependency indicates a dependency that is not a graph key.
	ErrUnknownDependency = errors.New("sequencer: dependency is not an item of the graph")
)

// MismatchError reports how the graph keys and the group items disagree.
// It unwraps to both ErrItemMismatch and ErrInvalidInput.
type MismatchError struct {
	// Missing are graph keys that no group lists.
	Missing []string
	// Extra are group items that are not graph keys.
	Extra []string
}

func (e *MismatchError) Error() string {
	var b strings.Builder
	b.WriteString(ErrItemMismatch.Error())
	if len(e.Missing) > 0 {
		fmt.Fprintf(&b, "; missing from groups: %s", strings.Join(e.Missing, ", "))
	}
	if len(e.Extra) > 0 {
		fmt.Fprintf(&b, "; not in graph: %s", strings.Join(e.Extra, ", "))
	}

	return b.String()
}

// Unwrap exposes both sentinels to errors.Is.
func (e *MismatchError) Unwrap() []error {
	return []error{ErrItemMismatch, ErrInvalidInput}
}

// invalidf wraps a specific sentinel together with ErrInvalidInput.
func invalidf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s", ErrInvalidInput, sentinel, fmt.Sprintf(format, args...))
}
