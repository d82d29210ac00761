package dom

import (
	"github.com/pkg/errors"
)

var (
	// ErrNoModificationAllowed indicates no modification was allowed.
	ErrNoModificationAllowed = errors.New("no modification allowed")
	// ErrIndexSize indicates an indexing argument (such as an "offset" or "count") was invalid
	// given the operation requested.
	ErrIndexSize = errors.New("index size error")
	// ErrChildNotFound indicates the child was not found
	ErrChildNotFound = errors.New("child not found")
	// ErrAttributeNotFound indicates the child attribute was not found
	ErrAttributeNotFound = errors.New("attribute not found")
	// ErrHierarchyRequest indicates a request element hierarchy error
	ErrHierarchyRequest = errors.New("hierarchy request error")
	// ErrNotFound indicates a reference node was not a child (or
	// attribute) of the node the operation was requested against.
	ErrNotFound = errors.New("not found error")
	// ErrWrongDocument indicates a node was used in a document other
	// than the one that created it.
	ErrWrongDocument = errors.New("wrong document error")
	// ErrInvalidState indicates an operation was attempted on an event
	// or listener in a state that does not permit it.
	ErrInvalidState = errors.New("invalid state error")

	errBadType = errors.New("unexpected type")
)
