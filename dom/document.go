package dom

import (
	"context"

	xml "github.com/andaru/flexml"
	"github.com/pkg/errors"
)

// Document is the root of a node tree. It holds at most one Element
// child and at most one DocumentType child, creates nodes owned by
// itself, indexes elements by ID attribute, and controls mutation
// event suspension for the nodes it owns.
type Document interface {
	Node
	// Context returns the Document context for access to document metadata.
	Context() context.Context
	// DocumentElement returns the Document's Element child, or nil if the
	// Document has no Element children.
	DocumentElement() Element

	// CreateElement returns a new, owned Element using the provided
	// XML start element. The returned node is detached; it becomes
	// part of the document's tree (and fires DOMNodeInserted) only
	// once appended or inserted somewhere in it.
	CreateElement(se xml.StartElement) Element
	// CreateTextNode returns a new, owned Text node.
	CreateTextNode(cd xml.CharData) Text
	// CreateCDATASection returns a new, owned CDATASection node.
	CreateCDATASection(cd xml.CharData) CDATASection
	// CreateComment returns a new, owned Comment node.
	CreateComment(c xml.Comment) Comment
	// CreateProcessingInstruction returns a new, owned Processing
	// Instruction (or Declaration, if pi.Target is "xml") node.
	CreateProcessingInstruction(pi xml.ProcInst) Node
	// CreateAttribute returns a new, owned Attr node.
	CreateAttribute(a xml.Attr) Attr
	// CreateDocumentFragment returns a new, owned Document Fragment
	// hosted by host.
	CreateDocumentFragment(host Element) DocumentFragment

	// GetElementByID returns the element whose ID attribute matches
	// id, or nil if no such element is registered. An attribute is
	// considered an ID attribute when its name matches the document's
	// ID attribute name, set via SetIDAttributeName (defaulting to
	// "id").
	GetElementByID(id string) Element
	// SetIDAttributeName sets the attribute local name treated as the
	// ID attribute for GetElementByID lookups performed from this
	// point forward. It does not retroactively index existing
	// attributes.
	SetIDAttributeName(local string)

	// SuspendEvents stops mutation event dispatch for nodes owned by
	// this document. Structural and character-data mutations still
	// occur; events raised while suspended are dropped, not queued.
	SuspendEvents()
	// ResumeEvents resumes mutation event dispatch suspended by
	// SuspendEvents.
	ResumeEvents()
	// EventsSuspended reports whether SuspendEvents has been called
	// without a matching ResumeEvents.
	EventsSuspended() bool
}

// DocumentFragment is a collection of zero or more child nodes.
//
// A fragment's parent link refers to its host Element, but the host does not
// list the fragment or the fragment's children among its own children.
// Inserting a fragment into a node moves the fragment's children, in order,
// into that node and leaves the fragment empty.
type DocumentFragment interface {
	Node
	// Host returns the Document Fragment's element node.
	Host() Element
	// SetHost sets the Document Fragment's host element.
	SetHost(Element) error
}

// NewDocument returns a new Document using the provided context to access
// document metadata. Pass context.Background() to specify no metadata.
func NewDocument(ctx context.Context) Document { return newDocument(ctx).asDocument() }

type document struct {
	ctx context.Context

	eventsSuspended bool

	// idAttrName is the attribute local name treated as an ID
	// attribute for GetElementByID/SetIDAttributeName. Defaults to
	// "id".
	idAttrName string
	// byID indexes elements by the current value of their ID
	// attribute. It is maintained on attribute add/modify/remove via
	// dispatchAttrModified, and is best-effort: it reflects the
	// attribute state at the time of the last observed mutation.
	byID map[string]*node
}

type documentNode struct {
	*document
	*node
}

func (d *document) nodeType() NodeType       { return NodeTypeDocument }
func (d *document) Context() context.Context { return d.ctx }

func newDocument(ctx context.Context) *node {
	if ctx == nil {
		ctx = context.Background()
	}
	n := &node{value: &document{ctx: ctx, idAttrName: "id", byID: make(map[string]*node)}}
	n.ownerDoc = n
	return n
}

func (d documentNode) DocumentElement() Element {
	for it := d.node.firstChild; it != nil; it = it.nextSib {
		if it.NodeType() == NodeTypeElement {
			return it.asElement()
		}
	}
	return nil
}

func (d documentNode) CreateElement(se xml.StartElement) Element {
	n := newStartElement(se)
	n.ownerDoc = d.node
	return n.asElement()
}

func (d documentNode) CreateTextNode(cd xml.CharData) Text {
	n := newText(cd.Copy())
	n.ownerDoc = d.node
	return n.asText()
}

func (d documentNode) CreateCDATASection(cd xml.CharData) CDATASection {
	n := newCDATASection(cd.Copy())
	n.ownerDoc = d.node
	return n.asCDATASection()
}

func (d documentNode) CreateComment(c xml.Comment) Comment {
	n := newComment(c.Copy())
	n.ownerDoc = d.node
	return n.asComment()
}

func (d documentNode) CreateProcessingInstruction(pi xml.ProcInst) Node {
	var n *node
	if pi.Target == "xml" {
		n = newDeclaration(pi.Copy())
	} else {
		n = newProcInst(pi.Copy())
	}
	n.ownerDoc = d.node
	return n
}

func (d documentNode) CreateAttribute(a xml.Attr) Attr {
	n := newAttribute(a)
	n.ownerDoc = d.node
	return n.asAttribute()
}

func (d documentNode) CreateDocumentFragment(host Element) DocumentFragment {
	n := newDocumentFragment(host.(Node).nodePtr())
	n.ownerDoc = d.node
	return n.asFragment()
}

// GetElementByID returns the element registered under id, or nil. The
// index is maintained incrementally as ID attributes change; it is
// not recomputed by a tree walk.
func (d documentNode) GetElementByID(id string) Element {
	if n, ok := d.document.byID[id]; ok && n != nil {
		return n.asElement()
	}
	return nil
}

// SetIDAttributeName sets the attribute local name GetElementByID
// indexes on. It affects only subsequent attribute mutations.
func (d documentNode) SetIDAttributeName(local string) {
	d.document.idAttrName = local
}

func (d documentNode) SuspendEvents()      { d.document.eventsSuspended = true }
func (d documentNode) ResumeEvents()       { d.document.eventsSuspended = false }
func (d documentNode) EventsSuspended() bool { return d.document.eventsSuspended }

type documentFragmentNode struct {
	*documentFragment
	*node
}

type documentFragment struct{}

func (d *documentFragment) nodeType() NodeType { return NodeTypeDocumentFragment }

func (d documentFragmentNode) Host() Element {
	if p := d.node.parent; p != nil && p.NodeType() == NodeTypeElement {
		return p.asElement()
	}
	return nil
}

func (d documentFragmentNode) SetHost(host Element) error {
	if d.node == nil {
		return errors.New("cannot set nil node")
	}
	d.node.parent = host.nodePtr()
	return nil
}

func newDocumentFragment(host *node) *node { return &node{parent: host, value: &documentFragment{}} }

// documentNode and *documentNode must both implement Document
var _ Document = &documentNode{}
var _ Document = documentNode{}

var _ DocumentFragment = &documentFragmentNode{}
var _ DocumentFragment = documentFragmentNode{}
