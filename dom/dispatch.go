package dom

// ancestorChain returns parent and its own ancestors, nearest first,
// ending at the document root (or wherever parent links run out).
// Passing the immediate parent of a dispatch target yields exactly the
// chain propagation needs to walk.
func ancestorChain(parent *node) []*node {
	var out []*node
	for p := parent; p != nil; p = p.parent {
		out = append(out, p)
	}
	return out
}

// suspended reports whether event dispatch is currently suspended for
// target, consulting target's owner document. A node detached before
// its owner was ever set (never attached beneath any Document) is
// treated as not suspended, since no document governs it.
func suspended(target *node) bool {
	owner := target.effectiveOwner()
	if owner == nil {
		return false
	}
	return owner.value.(*document).eventsSuspended
}

// DispatchEvent implements Node.DispatchEvent: it runs ev through the
// standard capture/target/bubble algorithm against n, as the
// synthesized mutation events are run. Only events of this package's
// own event type are delivered; an Event implemented outside the
// package reaches no listener.
func (n *node) DispatchEvent(ev Event) (bool, error) {
	if suspended(n) {
		return true, nil
	}
	chain := ancestorChain(n.parent)
	dispatch(ev, n, chain)
	return !ev.IsDefaultPrevented(), nil
}

// dispatch runs ev through the three DOM Level 2 phases against
// target, given the precomputed ancestor chain (nearest ancestor
// first). It mutates ev's currentTarget/phase fields as it proceeds.
func dispatch(ev Event, target *node, chain []*node) {
	e, ok := ev.(interface {
		setCurrentTarget(Node)
		setPhase(EventPhase)
	})
	if !ok {
		return
	}

	// Capturing phase: chain visited top-down (document first),
	// excluding the target itself.
	for i := len(chain) - 1; i >= 0; i-- {
		a := chain[i]
		e.setCurrentTarget(a)
		e.setPhase(PhaseCapturing)
		for _, l := range a.snapshotListeners(ev.Type(), true) {
			l.HandleEvent(ev)
			if ev.IsPropagationStopped() {
				return
			}
		}
	}

	// At-target phase: capturing-registered listeners run first, then
	// non-capturing ones, both reported as PhaseAtTarget.
	e.setCurrentTarget(target)
	e.setPhase(PhaseAtTarget)
	for _, l := range target.snapshotListeners(ev.Type(), true) {
		l.HandleEvent(ev)
		if ev.IsPropagationStopped() {
			return
		}
	}
	for _, l := range target.snapshotListeners(ev.Type(), false) {
		l.HandleEvent(ev)
		if ev.IsPropagationStopped() {
			return
		}
	}

	if !ev.Bubbles() {
		return
	}

	// Bubbling phase: chain visited nearest-first.
	for _, a := range chain {
		e.setCurrentTarget(a)
		e.setPhase(PhaseBubbling)
		for _, l := range a.snapshotListeners(ev.Type(), false) {
			l.HandleEvent(ev)
			if ev.IsPropagationStopped() {
				return
			}
		}
	}
}

func (e *event) setCurrentTarget(n Node) { e.currentTarget = n }
func (e *event) setPhase(p EventPhase)   { e.phase = p }

func newMutationEvent(typ string, target, related Node, bubbles, cancelable bool) *mutationEvent {
	return &mutationEvent{
		event: event{
			typ:        typ,
			target:     target,
			bubbles:    bubbles,
			cancelable: cancelable,
		},
		relatedNode: related,
	}
}

// preorder calls visit for n and then, in document order, every
// descendant of n.
func preorder(n *node, visit func(*node)) {
	visit(n)
	for c := n.firstChild; c != nil; c = c.nextSib {
		preorder(c, visit)
	}
}

// dispatchNodeInserted synthesizes the event sequence for inserting
// child beneath parent, once the structural link is already in place.
// It fires, in order: DOMNodeInserted on child; if child is now
// reachable from a document, DOMNodeInsertedIntoDocument on child and
// every descendant in document order; and DOMSubtreeModified on
// parent.
func dispatchNodeInserted(child, parent *node) {
	if suspended(child) {
		return
	}
	childChain := ancestorChain(parent)
	ev := newMutationEvent(EventNodeInserted, child, parent, true, false)
	dispatch(ev, child, childChain)

	if isInDocument(child) {
		preorder(child, func(d *node) {
			dChain := ancestorChain(d.parent)
			dev := newMutationEvent(EventNodeInsertedIntoDocument, d, nil, false, false)
			dispatch(dev, d, dChain)
		})
	}

	sev := newMutationEvent(EventSubtreeModified, parent, nil, true, false)
	dispatch(sev, parent, ancestorChain(parent.parent))
}

// dispatchNodeRemoved synthesizes the event sequence for removing
// child, which was a child of oldParent until the moment this is
// called; the caller must have already unlinked child from oldParent
// (child.parent must be nil) but must not yet have disturbed any of
// child's own descendants.
func dispatchNodeRemoved(child, oldParent *node, wasInDocument bool) {
	if suspended(child) {
		return
	}
	oldChain := ancestorChain(oldParent)

	ev := newMutationEvent(EventNodeRemoved, child, oldParent, true, false)
	dispatch(ev, child, oldChain)

	if wasInDocument {
		preorder(child, func(d *node) {
			dChain := append(ancestorChain(d.parent), oldChain...)
			dev := newMutationEvent(EventNodeRemovedFromDocument, d, nil, false, false)
			dispatch(dev, d, dChain)
		})
	}

	sev := newMutationEvent(EventSubtreeModified, oldParent, nil, true, false)
	dispatch(sev, oldParent, ancestorChain(oldParent.parent))
}

// dispatchCharacterDataModified fires DOMCharacterDataModified on n, a
// Text, Comment or ProcessingInstruction/Declaration node whose data
// changed from prev to next.
func dispatchCharacterDataModified(n *node, prev, next string) {
	if prev == next || suspended(n) {
		return
	}
	ev := &mutationEvent{
		event:     event{typ: EventCharacterDataModified, target: n, bubbles: true},
		prevValue: prev,
		newValue:  next,
	}
	dispatch(ev, n, ancestorChain(n.parent))
}

// dispatchAttrModified fires DOMAttrModified on elem describing a
// change to the named attribute. Unlike the structural and
// character-data mutations, an attribute change does not additionally
// dispatch DOMSubtreeModified.
func dispatchAttrModified(elem *node, attrName string, change AttrChangeType, prev, next string) {
	updateIDIndex(elem, attrName, change, next)
	if suspended(elem) {
		return
	}
	ev := &mutationEvent{
		event:      event{typ: EventAttrModified, target: elem, bubbles: true},
		prevValue:  prev,
		newValue:   next,
		attrName:   attrName,
		attrChange: change,
	}
	dispatch(ev, elem, ancestorChain(elem.parent))
}

// updateIDIndex keeps the owning document's GetElementByID index in
// sync with attribute changes on elem, regardless of whether event
// dispatch is currently suspended: the index reflects tree state, not
// delivered events.
func updateIDIndex(elem *node, attrName string, change AttrChangeType, next string) {
	owner := elem.effectiveOwner()
	if owner == nil {
		return
	}
	doc := owner.value.(*document)
	if attrName != doc.idAttrName {
		return
	}
	for id, n := range doc.byID {
		if n == elem {
			delete(doc.byID, id)
		}
	}
	if change != AttrChangeRemoval && next != "" {
		doc.byID[next] = elem
	}
}
