package dom

import (
	"testing"

	xml "github.com/andaru/flexml"
	"github.com/stretchr/testify/assert"
)

func TestAddEventListenerIgnoresDuplicateRegistration(t *testing.T) {
	root := elem("root").nodePtr()
	var calls int
	l := EventListenerFunc(func(Event) { calls++ })
	root.AddEventListener("custom", l, false)
	root.AddEventListener("custom", l, false)
	assert.Len(t, root.snapshotListeners("custom", false), 1)
}

func TestRemoveEventListenerIsNoOpWhenNotRegistered(t *testing.T) {
	root := elem("root").nodePtr()
	l := EventListenerFunc(func(Event) {})
	assert.NotPanics(t, func() { root.RemoveEventListener("custom", l, false) })
}

func TestRemoveEventListenerStopsFutureDelivery(t *testing.T) {
	root := elem("root")
	var calls int
	l := EventListenerFunc(func(Event) { calls++ })
	root.AddEventListener(EventAttrModified, l, false)
	root.RemoveEventListener(EventAttrModified, l, false)

	_ = root.SetAttribute(xml.Attr{Name: xml.Name{Local: "a"}, Value: "v"})
	assert.Equal(t, 0, calls)
}

// TestListenerSnapshotLaw verifies that a listener registered by a
// handler mid-dispatch does not receive the event currently being
// dispatched, only subsequent ones.
func TestListenerSnapshotLaw(t *testing.T) {
	root := elem("root")
	var lateCalls int
	late := EventListenerFunc(func(Event) { lateCalls++ })

	var earlyCalls int
	root.AddEventListener(EventAttrModified, EventListenerFunc(func(Event) {
		earlyCalls++
		root.AddEventListener(EventAttrModified, late, false)
	}), false)

	_ = root.SetAttribute(xml.Attr{Name: xml.Name{Local: "a"}, Value: "v1"})
	assert.Equal(t, 1, earlyCalls)
	assert.Equal(t, 0, lateCalls, "listener added during dispatch must not run for the in-flight event")

	_ = root.SetAttribute(xml.Attr{Name: xml.Name{Local: "a"}, Value: "v2"})
	assert.Equal(t, 2, earlyCalls)
	assert.Equal(t, 1, lateCalls, "listener added during the prior dispatch must run on the next one")
}

// TestListenerSnapshotLawRemoval verifies that removing a listener
// mid-dispatch does not prevent it from completing its current
// invocation, only subsequent ones.
func TestListenerSnapshotLawRemoval(t *testing.T) {
	root := elem("root")
	var calls int
	var self EventListener
	self = EventListenerFunc(func(Event) {
		calls++
		root.RemoveEventListener(EventAttrModified, self, false)
	})
	root.AddEventListener(EventAttrModified, self, false)

	_ = root.SetAttribute(xml.Attr{Name: xml.Name{Local: "a"}, Value: "v1"})
	assert.Equal(t, 1, calls)

	_ = root.SetAttribute(xml.Attr{Name: xml.Name{Local: "a"}, Value: "v2"})
	assert.Equal(t, 1, calls, "removed listener must not run again")
}
