package dom

import (
	"errors"
	"fmt"
)

var (
	// ErrBlockedAppend is matched by every BlockedAppendError.
	ErrBlockedAppend = errors.New("blocked append")

	// ErrInvalidNode is returned when a NodeID does not belong to the tree.
	ErrInvalidNode = errors.New("invalid node")

	// ErrAttached is returned when a node that already has a parent is made
	// the root.
	ErrAttached = errors.New("node is attached to a parent")
)

// BlockedAppendError reports a mutation the target node's variant forbids.
type BlockedAppendError struct {
	Reason string
}

// Error implements the error interface.
func (e *BlockedAppendError) Error() string {
	return "blocked append: " + e.Reason
}

// Is makes errors.Is(err, ErrBlockedAppend) match.
func (e *BlockedAppendError) Is(target error) bool {
	return target == ErrBlockedAppend
}

func invalidNode(id NodeID) error {
	return fmt.Errorf("%w: %d", ErrInvalidNode, id)
}
