package dom

import xml "github.com/andaru/flexml"

// isSelfOrAncestor reports whether candidate is n itself or one of
// n's ancestors, i.e. whether attaching candidate beneath n would
// create a cycle.
func isSelfOrAncestor(candidate, n *node) bool {
	for cur := n; cur != nil; cur = cur.parent {
		if cur == candidate {
			return true
		}
	}
	return false
}

// adopt resolves the owner-document precondition for attaching child
// beneath parent: an owned child must share parent's owner document,
// while an unowned child is adopted into it.
func adopt(parent, child *node) error {
	owner := parent.effectiveOwner()
	childOwner := child.effectiveOwner()
	if childOwner != nil && owner != nil && childOwner != owner {
		return ErrWrongDocument
	}
	if childOwner == nil && owner != nil {
		adoptSubtree(child, owner)
	}
	return nil
}

// InsertBefore implements the DOM Core insertBefore operation: newChild
// is inserted as a child of n, immediately before refChild (or at the
// end of n's children, if refChild is nil). It shares its precondition
// kernel (cycle check, owner-document adoption, detachment from any
// existing parent, DocumentFragment splicing) with AppendChild and the
// other primitive insertion methods via insertChild.
func (n *node) InsertBefore(newChild, refChild Node) error {
	if refChild == nil {
		return n.AppendChild(newChild)
	}
	ref := refChild.nodePtr()
	if ref.parent != n {
		return ErrNotFound
	}
	return insertChild(n, newChild, ref)
}

// ReplaceChild implements the DOM Core replaceChild operation:
// oldChild, a child of n, is replaced by newChild. oldChild's removal
// event sequence is dispatched before newChild's insertion sequence.
func (n *node) ReplaceChild(newChild, oldChild Node) error {
	old := oldChild.nodePtr()
	if old.parent != n {
		return ErrNotFound
	}
	ref := old.nextSib
	if err := n.RemoveChild(old); err != nil {
		return err
	}
	return n.InsertBefore(newChild, ref)
}

// RemoveChild implements the DOM Core removeChild operation: oldChild,
// a child of n, is detached and its removal event sequence dispatched.
func (n *node) RemoveChild(oldChild Node) error {
	cn := oldChild.nodePtr()
	if cn.parent != n {
		return ErrNotFound
	}
	wasInDoc := isInDocument(cn)
	removeNode(cn, n)
	dispatchNodeRemoved(cn, n, wasInDoc)
	return nil
}

// CloneNode returns a detached copy of n. If deep is true, n's
// attributes and descendants are copied recursively; otherwise only
// n itself (with its attributes, for an Element) is copied. Cloning
// never fires mutation events, since the clone has no parent.
func (n *node) CloneNode(deep bool) Node {
	c := &node{value: cloneValue(n.value), ownerDoc: n.ownerDoc}

	iterAttributes(n, func(a *node) error {
		appendAttribute(a.CloneNode(true).nodePtr(), c)
		return nil
	})

	if deep {
		iterChildren(n, func(ch *node) error {
			appendNode(ch.CloneNode(true).nodePtr(), c)
			return nil
		})
	}
	return c
}

// cloneValue returns a fresh copy of a node's type-specific payload.
func cloneValue(v nodeTyper) nodeTyper {
	switch val := v.(type) {
	case *element:
		return &element{name: val.name, prefix: val.prefix}
	case *attribute:
		a := val.Attr
		return &attribute{Attr: xml.Attr{Name: a.Name, Value: a.Value}}
	case *text:
		cp := make([]byte, len(val.value))
		copy(cp, val.value)
		return &text{value: cp}
	case *comment:
		cp := make([]byte, len(val.value))
		copy(cp, val.value)
		return &comment{text{value: cp}}
	case *cdataSection:
		cp := make([]byte, len(val.value))
		copy(cp, val.value)
		return &cdataSection{text{value: cp}}
	case *procinst:
		return &procinst{val.ProcInst.Copy()}
	case *declaration:
		return &declaration{val.ProcInst.Copy()}
	case *docType:
		return &docType{name: val.name, publicID: val.publicID, systemID: val.systemID}
	case *documentFragment:
		return &documentFragment{}
	default:
		return v
	}
}
