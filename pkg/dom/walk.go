package dom

// WalkFunc is the function signature for Walk callbacks.
// Return a non-nil error to stop the walk.
type WalkFunc func(id NodeID) error

// Walk performs a pre-order traversal of the subtree rooted at id.
// If walkFunc returns a non-nil error, the walk stops and returns it.
func (t *Tree) Walk(id NodeID, walkFunc WalkFunc) error {
	n := t.node(id)
	if n == nil {
		return nil
	}

	if err := walkFunc(id); err != nil {
		return err
	}

	for _, child := range n.children {
		if err := t.Walk(child, walkFunc); err != nil {
			return err
		}
	}

	return nil
}

// WalkWithContext performs a traversal with enter and leave callbacks.
// Enter is called before visiting children, leave is called after.
// Either callback may be nil.
func (t *Tree) WalkWithContext(id NodeID, enter, leave WalkFunc) error {
	n := t.node(id)
	if n == nil {
		return nil
	}

	if enter != nil {
		if err := enter(id); err != nil {
			return err
		}
	}

	for _, child := range n.children {
		if err := t.WalkWithContext(child, enter, leave); err != nil {
			return err
		}
	}

	if leave != nil {
		if err := leave(id); err != nil {
			return err
		}
	}

	return nil
}

// FindAll returns every node in the subtree matching the predicate, in
// document order.
func (t *Tree) FindAll(id NodeID, predicate func(id NodeID) bool) []NodeID {
	var result []NodeID

	//nolint:errcheck,revive // Walk only returns nil errors in this usage
	t.Walk(id, func(cur NodeID) error {
		if predicate(cur) {
			result = append(result, cur)
		}
		return nil
	})

	return result
}

// FindFirst returns the first node matching the predicate, or NoNode.
func (t *Tree) FindFirst(id NodeID, predicate func(id NodeID) bool) NodeID {
	found := NoNode

	//nolint:errcheck,revive // errStopWalk is expected and intentionally ignored
	t.Walk(id, func(cur NodeID) error {
		if predicate(cur) {
			found = cur
			return errStopWalk
		}
		return nil
	})

	return found
}

// errStopWalk is a sentinel error used to stop walking early.
var errStopWalk = &stopWalkError{}

type stopWalkError struct{}

func (e *stopWalkError) Error() string {
	return "stop walk"
}
