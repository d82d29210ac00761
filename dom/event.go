package dom

import "time"

// EventPhase identifies which of the three dispatch phases an event is
// currently in.
type EventPhase int

const (
	// PhaseNone is the zero value, reported before dispatch begins.
	// Dispatch does not reset the phase when it finishes.
	PhaseNone EventPhase = iota
	// PhaseCapturing indicates the event is propagating from the
	// document down toward, but not including, the target.
	PhaseCapturing
	// PhaseAtTarget indicates the event is being handled by listeners
	// registered directly on the target node.
	PhaseAtTarget
	// PhaseBubbling indicates the event is propagating from the
	// target's parent back up toward the document.
	PhaseBubbling
)

func (p EventPhase) String() string {
	switch p {
	case PhaseCapturing:
		return "CAPTURING_PHASE"
	case PhaseAtTarget:
		return "AT_TARGET"
	case PhaseBubbling:
		return "BUBBLING_PHASE"
	default:
		return "NONE"
	}
}

// AttrChangeType classifies the kind of change reported by a
// DOMAttrModified event.
type AttrChangeType int

const (
	// AttrChangeModification indicates an existing attribute's value
	// changed. It is also the zero value, reported by events other
	// than DOMAttrModified, which carry the field but leave it unset.
	AttrChangeModification AttrChangeType = iota
	// AttrChangeAddition indicates a new attribute was added.
	AttrChangeAddition
	// AttrChangeRemoval indicates an attribute was removed.
	AttrChangeRemoval
)

func (c AttrChangeType) String() string {
	switch c {
	case AttrChangeModification:
		return "MODIFICATION"
	case AttrChangeAddition:
		return "ADDITION"
	case AttrChangeRemoval:
		return "REMOVAL"
	default:
		return ""
	}
}

// Mutation event type names, as dispatched by the tree and
// character-data mutation operations.
const (
	EventNodeInserted             = "DOMNodeInserted"
	EventNodeRemoved              = "DOMNodeRemoved"
	EventNodeInsertedIntoDocument = "DOMNodeInsertedIntoDocument"
	EventNodeRemovedFromDocument  = "DOMNodeRemovedFromDocument"
	EventSubtreeModified          = "DOMSubtreeModified"
	EventCharacterDataModified    = "DOMCharacterDataModified"
	EventAttrModified             = "DOMAttrModified"
)

// Event is the base interface implemented by every object dispatched
// through a node's listeners. The tree and character-data mutation
// operations dispatch MutationEvent values of their own construction;
// Node.DispatchEvent delivers only events of this package's own event
// type.
type Event interface {
	// Type returns the event's type name, e.g. "DOMNodeInserted".
	Type() string
	// Target returns the node the event was originally dispatched against.
	Target() Node
	// CurrentTarget returns the node whose listeners are currently
	// being invoked. It changes throughout dispatch.
	CurrentTarget() Node
	// EventPhase reports which phase of dispatch is currently active.
	EventPhase() EventPhase
	// Bubbles reports whether the event propagates to ancestors after
	// reaching its target.
	Bubbles() bool
	// Cancelable reports whether PreventDefault has any effect on
	// this event.
	Cancelable() bool
	// StopPropagation prevents any further listener invocation beyond
	// the one currently executing.
	StopPropagation()
	// PreventDefault marks a cancelable event so IsDefaultPrevented
	// reports true. It has no effect on an event that is not
	// cancelable.
	PreventDefault()
	// IsPropagationStopped reports whether StopPropagation has been
	// called on this event.
	IsPropagationStopped() bool
	// IsDefaultPrevented reports whether PreventDefault has been
	// called on this event while it was cancelable.
	IsDefaultPrevented() bool
	// TimeStamp returns the event's time stamp. The mutation events
	// dispatched by this package do not set it, so it is the zero
	// time.Time for them.
	TimeStamp() time.Time
}

// MutationEvent extends Event with the fields defined by the DOM Level
// 2 Events mutation event interface.
type MutationEvent interface {
	Event
	// RelatedNode carries the secondary node relevant to the event:
	// the parent for DOMNodeInserted/DOMNodeRemoved, or nil otherwise.
	RelatedNode() Node
	// PrevValue is the value before the change, for character data and
	// attribute modification events.
	PrevValue() string
	// NewValue is the value after the change, for character data and
	// attribute modification events.
	NewValue() string
	// AttrName names the attribute affected by a DOMAttrModified event.
	AttrName() string
	// AttrChange classifies a DOMAttrModified event.
	AttrChange() AttrChangeType
}

// EventListener receives dispatched events. A function may act as a
// listener by way of EventListenerFunc.
type EventListener interface {
	HandleEvent(Event)
}

// EventListenerFunc adapts a plain function to the EventListener
// interface, the way http.HandlerFunc adapts a function to
// http.Handler.
type EventListenerFunc func(Event)

// HandleEvent calls f(e).
func (f EventListenerFunc) HandleEvent(e Event) { f(e) }

type event struct {
	typ           string
	target        Node
	currentTarget Node
	phase         EventPhase
	bubbles       bool
	cancelable    bool
	stopped       bool
	prevented     bool
	when          time.Time
}

func (e *event) Type() string                  { return e.typ }
func (e *event) Target() Node                   { return e.target }
func (e *event) CurrentTarget() Node            { return e.currentTarget }
func (e *event) EventPhase() EventPhase         { return e.phase }
func (e *event) Bubbles() bool                  { return e.bubbles }
func (e *event) Cancelable() bool               { return e.cancelable }
func (e *event) IsPropagationStopped() bool     { return e.stopped }
func (e *event) IsDefaultPrevented() bool       { return e.prevented }
func (e *event) TimeStamp() time.Time           { return e.when }
func (e *event) StopPropagation()               { e.stopped = true }
func (e *event) PreventDefault() {
	if e.cancelable {
		e.prevented = true
	}
}

type mutationEvent struct {
	event
	relatedNode Node
	prevValue   string
	newValue    string
	attrName    string
	attrChange  AttrChangeType
}

func (m *mutationEvent) RelatedNode() Node          { return m.relatedNode }
func (m *mutationEvent) PrevValue() string          { return m.prevValue }
func (m *mutationEvent) NewValue() string           { return m.newValue }
func (m *mutationEvent) AttrName() string           { return m.attrName }
func (m *mutationEvent) AttrChange() AttrChangeType { return m.attrChange }

var (
	_ Event         = &event{}
	_ MutationEvent = &mutationEvent{}
)
