package dom

import (
	"fmt"

	xml "github.com/andaru/flexml"
	"github.com/pkg/errors"
)

// Node interface is the primary datatype for the entire Document Object Model.
type Node interface {
	Namer
	Valuer
	ValueSetter
	// ChildValue returns the content value of the first Text child
	// node. Returns the empty string if node has no NodeTypeText
	// child nodes.
	ChildValue() string

	NodeType() NodeType
	// Parent returns the node's parent. This value will be nil if
	// Node represents a Document or is the root of a disconnected
	// subtree.
	Parent() Node

	// OwnerDocument returns the Document that created the node or that
	// the node was first attached beneath. The owner is kept after the
	// node is removed from the tree. It returns nil for a Document
	// itself and for a node that has never had an owner.
	OwnerDocument() Document

	// FirstChild returns the node's first child node, or nil if there
	// are no children.
	FirstChild() Node
	// LastChild returns the node's last child node, or nil if the
	// node has no children.
	LastChild() Node
	// HasChildNodes reports whether this node has any child nodes.
	HasChildNodes() bool
	// NextSibling returns the node's next sibling, or nil if the node
	// is the last child of its parent.
	NextSibling() Node
	// PreviousSibling returns the node's previous sibling, or nil if
	// the node is the first child of its parent.
	PreviousSibling() Node

	ChildrenByName(xml.Name) []Node
	ChildByName(xml.Name) Node

	// AppendChild appends the provided Node as a child, applying the
	// same preconditions as InsertBefore (cycle and owner-document
	// checks, detachment from any existing parent, DocumentFragment
	// splicing) before synthesizing the insertion event sequence.
	AppendChild(Node) error
	// PrependChild prepends the provided Node as a child, applying the
	// same preconditions as AppendChild.
	PrependChild(Node) error
	// InsertChildAfter inserts the provided child node after ref,
	// applying the same preconditions as AppendChild. If ref is nil,
	// child is appended instead. Returns ErrHierarchyRequest if ref is
	// non-nil and not a child of this node.
	InsertChildAfter(child, ref Node) error
	// InsertChildBefore inserts the provided child node before ref,
	// applying the same preconditions as AppendChild. If ref is nil,
	// child is prepended instead. Returns ErrHierarchyRequest if ref is
	// non-nil and not a child of this node.
	InsertChildBefore(child, ref Node) error

	// InsertBefore inserts newChild as a child of this node, before
	// refChild (or at the end, if refChild is nil), and synthesizes
	// the appropriate mutation event sequence. Returns ErrNotFound if
	// refChild is non-nil and not a child of this node.
	InsertBefore(newChild, refChild Node) error
	// ReplaceChild replaces oldChild, a child of this node, with
	// newChild. oldChild's removal event sequence is dispatched before
	// newChild's insertion event sequence.
	ReplaceChild(newChild, oldChild Node) error
	// RemoveChild detaches oldChild, a child of this node, and
	// synthesizes the appropriate mutation event sequence.
	RemoveChild(oldChild Node) error
	// CloneNode returns a copy of this node. If deep is true,
	// descendants and attributes are copied recursively; if false,
	// only this node (and, for elements, its attributes) is copied.
	// The clone is never itself attached to any parent.
	CloneNode(deep bool) Node

	// AddEventListener registers listener for events of eventType
	// dispatched at this node.
	AddEventListener(eventType string, listener EventListener, useCapture bool)
	// RemoveEventListener deregisters listener for events of eventType.
	RemoveEventListener(eventType string, listener EventListener, useCapture bool)
	// DispatchEvent dispatches event at this node through the standard
	// capture/target/bubble propagation algorithm, returning false if
	// any listener called PreventDefault on a cancelable event. Only
	// events of this package's own event type are delivered; an Event
	// implemented outside the package reaches no listener.
	DispatchEvent(event Event) (bool, error)

	nodePtr
}

// NodeProvider is an interface providing a context Node.
type NodeProvider interface {
	// Node returns the context node.
	//
	// This value typically represents the context node in a document
	// query or a node iterator's current position.
	Node() Node
}

// ParentNodeProvider is an interface providing a context Node's parent Node.
type ParentNodeProvider interface {
	// Parent returns the context node's parent, which may be nil if
	// the context node is a Document (i.e., its NodeType is
	// NodeTypeDocument), or the context node is the root of a subtree
	// not connected to a document.
	Parent() Node
}

// OwnerDocumentProvider is an interface providing a Node's owner document.
type OwnerDocumentProvider interface {
	// OwnerDocument returns the Document that created the node or that
	// the node was first attached beneath, kept after removal. It
	// returns nil for a Document itself and for a node that has never
	// had an owner.
	OwnerDocument() Document
}

// SiblingProvider is an interface providing access to the next and
// previous siblings of a context Node. This supports both Node an
// Attr siblings.
type SiblingProvider interface {
	// NextSibling returns the context node's next sibling, or nil if
	// there are no following siblings.
	NextSibling() Node
	// PreviousSibling returns the context node's previous sibling, or
	// nil if there are no previous siblings.
	PreviousSibling() Node
}

// NodeSet is a collection of Node
type NodeSet []Node

// Namer is an object with a XML name.
//
// Examples of such types in the DOM include Element and Attr nodes.
type Namer interface {
	// Name returns the object's XML name
	Name() xml.Name
}

// Valuer is a node which can report a string value
type Valuer interface {
	Value() string
}

// ValueSetter is a node which permits setting of its value as a string
type ValueSetter interface {
	SetValue(string) error
}

// ValueSetterBool is a node which permits setting of its value as a bool
type ValueSetterBool interface {
	SetValueBool(bool) error
}

// ValueSetterFloat64 is a node which permits setting a float64 value
type ValueSetterFloat64 interface {
	SetValueFloat64(float64) error
}

// ValueSetterInt is a node which permits setting an int value
type ValueSetterInt interface {
	SetValueInt(int) error
}

type nodePtr interface {
	nodePtr() *node
}

type nodeTyper interface {
	nodeType() NodeType
}

type node struct {
	parent           *node
	firstChild       *node
	nextSib, prevSib *node
	firstAttr        *node

	// ownerDoc is stamped once, either at creation time by a Document
	// factory method or lazily on first attachment beneath a node that
	// already has an owner. It is never reassigned afterward, and it
	// survives removal from the tree.
	ownerDoc *node

	// listeners holds the node's registered mutation event listeners.
	// Enumerated only by the dispatch engine, which always takes a
	// snapshot before invoking any of them.
	listeners []listenerEntry

	value nodeTyper // must not be nil
}

// CreateAttribute returns a new Attr node using the provided XML attribute.
func CreateAttribute(a xml.Attr) Attr { return newAttribute(a).asAttribute() }

// CreateText returns a new PCDATA text node using the provided data.
func CreateText(cd xml.CharData) Text { return newText(cd.Copy()).asText() }

// CreateElement returns a new Element node using the provided XML StartElement.
func CreateElement(se xml.StartElement) Element { return newStartElement(se).asElement() }

// CreateDocumentFragment returns a new Document Fragment Node with host.
func CreateDocumentFragment(host Element) DocumentFragment {
	return newDocumentFragment(host.(Node).nodePtr()).asFragment()
}

// CreateComment returns a new Comment node using the provided XML comment.
func CreateComment(c xml.Comment) Comment { return newComment(c.Copy()).asComment() }

// CreateProcessingInstruction returns a new Processing Instruction or
// Declaration node (if the ProcInst's target is "xml").
func CreateProcessingInstruction(pi xml.ProcInst) Node {
	if pi.Target == "xml" {
		return newDeclaration(pi.Copy())
	}
	return newProcInst(pi.Copy())
}

// CreateXMLDeclaration returns a Declaration node with the specified encoding.
func CreateXMLDeclaration(encoding string) Node {
	return newDeclaration(
		xml.ProcInst{
			Target: "xml",
			Inst:   []byte(fmt.Sprintf(`version="1.0" encoding="%s"`, encoding))})
}

func (n *node) Value() string {
	switch n.NodeType() {
	case NodeTypeText:
		return string(n.asText().text.value)
	case NodeTypeComment:
		return string(n.asComment().text.value)
	case NodeTypeAttribute:
		return n.asAttribute().Attr.Value
	}
	return ""
}

func (n *node) Format(f fmt.State, c rune) {
	switch c {
	case 'v':
		var as []string
		// gather info
		typ := n.NodeType()
		switch typ {
		case NodeTypeElement:
			as = append(as, "xmlName", fmt.Sprintf("%#v", n.xmlName()))
		case NodeTypeText, NodeTypeComment:
			as = append(as, "value", fmt.Sprintf("%q", n.textValue()))
		}

		// include child node info and attribute info
		if f.Flag('+') {
			if n.parent != nil {
				as = append(as, "Parent", fmt.Sprintf("%v", n.parent))
			}
		}
		if f.Flag('+') || f.Flag('#') {
			if n.firstChild != nil {
				as = append(as, "FirstChild", fmt.Sprintf("%#v", n.firstChild))
			}
			if n.firstAttr != nil {
				as = append(as, "FirstAttribute", fmt.Sprintf("%#v", n.firstAttr))
			}
		}
		// write the format
		f.Write([]byte(fmt.Sprintf("%T{NodeType:%s", n, n.NodeType())))
		if len(as) > 0 {
			for i := 0; i < len(as)/2; i++ {
				f.Write([]byte(", "))
				f.Write([]byte(as[i*2]))
				f.Write([]byte(":"))
				f.Write([]byte(as[(i*2)+1]))
			}
		}
		f.Write([]byte("}"))
	default:
		f.Write([]byte(fmt.Sprintf("%#v", n)))
	}
}

func (n *node) SetValue(value string) error {
	if setter, ok := n.value.(ValueSetter); ok {
		return setter.SetValue(value)
	}
	return errors.Errorf("cannot call SetValue on a %s", n.NodeType())
}

func (n *node) Parent() Node {
	if n.parent != nil {
		return n.parent
	}
	return nil
}

func (n *node) FirstChild() Node {
	if n.firstChild == nil {
		return nil
	}
	return n.firstChild
}
func (n *node) LastChild() Node {
	if n.firstChild == nil {
		return nil
	}
	return n.firstChild.prevSib
}

func (n *node) HasChildNodes() bool {
	return n.firstChild != nil
}

func (n *node) OwnerDocument() Document {
	if n.NodeType() == NodeTypeDocument {
		return nil
	}
	if n.ownerDoc != nil {
		return n.ownerDoc.asDocument()
	}
	return nil
}

// effectiveOwner returns n itself when n is a Document, otherwise its
// stamped ownerDoc (which may be nil for a node never attached beneath
// a document-bound factory).
func (n *node) effectiveOwner() *node {
	if n.NodeType() == NodeTypeDocument {
		return n
	}
	return n.ownerDoc
}

// adoptSubtree stamps owner as the ownerDoc of n and every descendant
// and attribute of n whose ownerDoc is not already set. It never
// overwrites an existing owner.
func adoptSubtree(n, owner *node) {
	if n.ownerDoc == nil {
		n.ownerDoc = owner
	}
	iterAttributes(n, func(a *node) error {
		adoptSubtree(a, owner)
		return nil
	})
	iterChildren(n, func(c *node) error {
		adoptSubtree(c, owner)
		return nil
	})
}

// isInDocument reports whether n is reachable, by walking live parent
// links, from a Document node. Used transiently while synthesizing
// mutation events, since that determination must be made relative to
// the tree shape at the moment of the structural change.
func isInDocument(n *node) bool {
	for p := n; p != nil; p = p.parent {
		if p.NodeType() == NodeTypeDocument {
			return true
		}
	}
	return false
}

func (n *node) NodeType() NodeType {
	if v := n.value; v != nil {
		return v.nodeType()
	}
	return NodeTypeNull
}

func (n *node) NextSibling() Node {
	if next := n.nextSib; next != nil {
		return next
	}
	return nil
}

func (n *node) PreviousSibling() Node {
	if prev := n.prevSib; prev != nil && prev.nextSib != nil {
		return prev
	}
	return nil
}

func (n *node) ChildByName(name xml.Name) Node {
	nodeset := n.ChildrenByName(name)
	if nodeset == nil {
		return nil
	}
	return nodeset[0]
}

func (n *node) ChildrenByName(name xml.Name) (nodeset []Node) {
	iterChildren(n, func(it *node) error {
		if namer, ok := it.value.(Namer); ok && namer.Name() == name {
			nodeset = append(nodeset, it)
		}
		return nil
	})
	return
}

// AppendChild, PrependChild, InsertChildAfter, InsertChildBefore and
// InsertBefore all funnel through insertChild, so that the DOM Core
// precondition kernel (cycle check, owner-document adoption, detach
// from any existing parent, DocumentFragment splicing) and mutation
// event synthesis each have a single point of truth.

// insertChild splices child into parent's child list immediately
// before ref, or at the end if ref is nil, after applying the shared
// structural-mutation preconditions. ref, if non-nil, must already be
// a child of parent; callers are responsible for that check, since
// its failure mode (ErrNotFound vs ErrHierarchyRequest) differs by
// caller.
func insertChild(parent *node, child Node, ref *node) error {
	cn := child.nodePtr()

	if cn.NodeType() == NodeTypeDocumentFragment {
		for {
			gc := cn.firstChild
			if gc == nil {
				return nil
			}
			if err := insertChild(parent, gc, ref); err != nil {
				return err
			}
		}
	}

	if err := allowInsertChildErr(parent, cn.NodeType()); err != nil {
		return err
	}
	if isSelfOrAncestor(cn, parent) {
		return ErrHierarchyRequest
	}
	if err := adopt(parent, cn); err != nil {
		return err
	}
	if cn.parent != nil {
		if err := cn.parent.RemoveChild(cn); err != nil {
			return err
		}
	}
	if ref == nil {
		appendNode(cn, parent)
	} else {
		insertNodeBefore(cn, ref)
	}
	dispatchNodeInserted(cn, parent)
	return nil
}

func (n *node) AppendChild(child Node) error {
	return insertChild(n, child, nil)
}

func (n *node) PrependChild(child Node) error {
	return insertChild(n, child, n.firstChild)
}

func (n *node) InsertChildAfter(child, after Node) error {
	if after == nil {
		return insertChild(n, child, nil)
	}
	an := after.nodePtr()
	if an.parent != n {
		return ErrHierarchyRequest
	}
	return insertChild(n, child, an.nextSib)
}

func (n *node) InsertChildBefore(child, before Node) error {
	if before == nil {
		return insertChild(n, child, n.firstChild)
	}
	bn := before.nodePtr()
	if bn.parent != n {
		return ErrHierarchyRequest
	}
	return insertChild(n, child, bn)
}

func (n *node) defaultNamespace() (owner *node, attrValue string) {
	for it := n; it != nil; it = it.parent {
		if err := iterAttributes(it, func(n *node) error {
			if a := n.asAttribute(); a.Name() == xmlnsDefault {
				owner = it
				attrValue = a.Attr.Value
				return errors.New("matched")
			}
			return nil
		}); err != nil {
			return
		}
	}
	return nil, ""
}

func (n *node) nodePtr() *node                 { return n }
func (n *node) asAttribute() attrNode          { return attrNode{n.value.(*attribute), n} }
func (n *node) asComment() commentNode         { return commentNode{n.value.(*comment), n} }
func (n *node) asDocument() documentNode       { return documentNode{n.value.(*document), n} }
func (n *node) asElement() elementNode         { return elementNode{n.value.(*element), n} }
func (n *node) asText() textNode               { return textNode{n.value.(*text), n} }
func (n *node) asProcInst() procinstNode       { return procinstNode{n.value.(*procinst), n} }
func (n *node) asDeclaration() declarationNode { return declarationNode{n.value.(*declaration), n} }
func (n *node) asFragment() documentFragmentNode {
	return documentFragmentNode{n.value.(*documentFragment), n}
}

func (n *node) ChildValue() string {
	for it := n.firstChild; it != nil; it = it.nextSib {
		switch it.NodeType() {
		case NodeTypeText:
			return it.asText().String()
		}
	}
	return ""
}

func (n *node) Name() xml.Name {
	if namer, ok := n.value.(Namer); ok {
		return namer.Name()
	}
	return xml.Name{}
}

func (n *node) xmlName() xml.Name {
	switch value := n.value.(type) {
	case Namer:
		return value.Name()
	default:
		return xml.Name{}
	}
}

func (n *node) textValue() []byte {
	switch n := n.value.(type) {
	case *text:
		return n.value
	case *comment:
		return n.value
	}
	return nil
}

func (n *node) FirstAttribute() Attr {
	if n.firstAttr == nil {
		return nil
	}
	return n.firstAttr.asAttribute()
}

func (n *node) LastAttribute() Attr {
	if n.firstAttr == nil {
		return nil
	}
	return n.firstAttr.prevSib.asAttribute()
}

func (n *node) Attribute(name xml.Name) Attr {
	for it := n.firstAttr; it != nil; it = it.nextSib {
		if it.value.(*attribute).Attr.Name == name {
			return it.asAttribute()
		}
	}
	return nil
}

func (n *node) InsertAttributeAfter(a xml.Attr, after Attr) error {
	if err := allowInsertAttributeErr(n.NodeType()); err != nil {
		return err
	} else if after == nil {
		an := newAttribute(a)
		appendAttribute(an, n)
		dispatchAttrModified(n, a.Name.Local, AttrChangeAddition, "", a.Value)
		return nil
	} else if after.Parent() != n {
		return ErrHierarchyRequest
	}
	an := newAttribute(a)
	insertAttributeAfter(an, after.(Node).nodePtr(), n)
	dispatchAttrModified(n, a.Name.Local, AttrChangeAddition, "", a.Value)
	return nil
}

func (n *node) InsertAttributeBefore(a xml.Attr, before Attr) error {
	if err := allowInsertAttributeErr(n.NodeType()); err != nil {
		return err
	} else if before == nil {
		an := newAttribute(a)
		prependAttribute(an, n)
		dispatchAttrModified(n, a.Name.Local, AttrChangeAddition, "", a.Value)
		return nil
	} else if before.Parent() != n {
		return ErrHierarchyRequest
	}
	an := newAttribute(a)
	insertAttributeBefore(an, before.(Node).nodePtr(), n)
	dispatchAttrModified(n, a.Name.Local, AttrChangeAddition, "", a.Value)
	return nil
}

func (n *node) AppendAttribute(a xml.Attr) error {
	if err := allowInsertAttributeErr(n.NodeType()); err != nil {
		return err
	}
	appendAttribute(newAttribute(a), n)
	dispatchAttrModified(n, a.Name.Local, AttrChangeAddition, "", a.Value)
	return nil
}

func (n *node) PrependAttribute(a xml.Attr) error {
	if err := allowInsertAttributeErr(n.NodeType()); err != nil {
		return err
	}
	prependAttribute(newAttribute(a), n)
	dispatchAttrModified(n, a.Name.Local, AttrChangeAddition, "", a.Value)
	return nil
}

// GetAttribute returns the value of the named attribute, or "" if it
// is not present.
func (n *node) GetAttribute(name xml.Name) string {
	if a := n.Attribute(name); a != nil {
		return a.(Node).nodePtr().value.(*attribute).Attr.Value
	}
	return ""
}

// SetAttribute adds or updates the named attribute, firing
// DOMAttrModified with AttrChangeAddition or AttrChangeModification.
func (n *node) SetAttribute(a xml.Attr) error {
	if err := allowInsertAttributeErr(n.NodeType()); err != nil {
		return err
	}
	if existing := n.Attribute(a.Name); existing != nil {
		an := existing.(Node).nodePtr()
		prev := an.value.(*attribute).Attr.Value
		if prev == a.Value {
			return nil
		}
		an.value.(*attribute).Attr.Value = a.Value
		dispatchAttrModified(n, a.Name.Local, AttrChangeModification, prev, a.Value)
		return nil
	}
	appendAttribute(newAttribute(a), n)
	dispatchAttrModified(n, a.Name.Local, AttrChangeAddition, "", a.Value)
	return nil
}

// RemoveAttribute removes the named attribute, firing DOMAttrModified
// with AttrChangeRemoval. Removing an attribute that is not present is
// not an error.
func (n *node) RemoveAttribute(name xml.Name) error {
	existing := n.Attribute(name)
	if existing == nil {
		return nil
	}
	an := existing.(Node).nodePtr()
	prev := an.value.(*attribute).Attr.Value
	removeAttribute(an, n)
	dispatchAttrModified(n, name.Local, AttrChangeRemoval, prev, "")
	return nil
}

// HasAttributes reports whether n has any attributes.
func (n *node) HasAttributes() bool {
	return n.firstAttr != nil
}

// SetAttributeNode adds newAttr to n's attribute list, replacing any
// existing attribute of the same name and returning it, or nil if
// there was none.
func (n *node) SetAttributeNode(newAttr Attr) (Attr, error) {
	if err := allowInsertAttributeErr(n.NodeType()); err != nil {
		return nil, err
	}
	an := newAttr.nodePtr()
	if an.parent != nil {
		return nil, errors.Wrap(ErrHierarchyRequest, "attribute node is already in use")
	}
	if err := adopt(n, an); err != nil {
		return nil, err
	}
	a := an.value.(*attribute).Attr
	existing := n.Attribute(a.Name)
	if existing != nil {
		existingNode := existing.(Node).nodePtr()
		prev := existingNode.value.(*attribute).Attr.Value
		removeAttribute(existingNode, n)
		appendAttribute(an, n)
		dispatchAttrModified(n, a.Name.Local, AttrChangeModification, prev, a.Value)
		return existing, nil
	}
	appendAttribute(an, n)
	dispatchAttrModified(n, a.Name.Local, AttrChangeAddition, "", a.Value)
	return nil, nil
}

// RemoveAttributeNode removes oldAttr from n's attribute list. Returns
// ErrNotFound if oldAttr is not one of n's attributes.
func (n *node) RemoveAttributeNode(oldAttr Attr) error {
	an := oldAttr.nodePtr()
	if an.parent != n {
		return ErrNotFound
	}
	prev := an.value.(*attribute).Attr.Value
	name := an.value.(*attribute).Attr.Name
	removeAttribute(an, n)
	dispatchAttrModified(n, name.Local, AttrChangeRemoval, prev, "")
	return nil
}

func appendNode(child, parent *node) {
	child.parent = parent
	if head := parent.firstChild; head != nil {
		tail := head.prevSib
		tail.nextSib = child
		child.prevSib = tail
		head.prevSib = child
	} else {
		parent.firstChild = child
		child.prevSib = child
	}
}

func prependNode(child, parent *node) {
	child.parent = parent
	head := parent.firstChild
	if head != nil {
		child.prevSib = head.prevSib
		head.prevSib = child
	} else {
		child.prevSib = child
	}
	child.nextSib = head
	parent.firstChild = child
}

func insertNodeBefore(child, before *node) {
	parent := before.parent
	child.parent = parent
	if before.prevSib.nextSib != nil {
		before.prevSib.nextSib = child
	} else {
		parent.firstChild = child
	}
	child.prevSib = before.prevSib
	child.nextSib = before
	before.prevSib = child
}

func insertNodeAfter(child, after *node) {
	parent := after.parent
	child.parent = parent
	if next := after.nextSib; next != nil {
		next.prevSib = child
	} else {
		parent.firstChild.prevSib = child
	}
	child.nextSib = after.nextSib
	child.prevSib = after
	after.nextSib = child
}

// removeNode unlinks child from parent's child list. child.parent,
// child.prevSib and child.nextSib are cleared; child's own subtree is
// left intact.
func removeNode(child, parent *node) {
	if parent.firstChild == nil {
		return
	}
	if next := child.nextSib; next != nil {
		next.prevSib = child.prevSib
	} else {
		parent.firstChild.prevSib = child.prevSib
	}
	if child.prevSib.nextSib != nil {
		child.prevSib.nextSib = child.nextSib
	} else {
		parent.firstChild = child.nextSib
	}
	child.parent = nil
	child.prevSib = nil
	child.nextSib = nil
}

// hasChildOfType reports whether n has a direct child of the given type.
func (n *node) hasChildOfType(t NodeType) bool {
	found := false
	iterChildren(n, func(c *node) error {
		if c.NodeType() == t {
			found = true
		}
		return nil
	})
	return found
}

// allowInsertChild reports whether child may be inserted beneath
// parent, per the node-type compatibility rules and, for a Document
// parent, the at-most-one-ELEMENT and at-most-one-DOCUMENT_TYPE child
// invariants.
func allowInsertChild(parent *node, child NodeType) bool {
	parentType := parent.NodeType()
	if parentType == NodeTypeNull || child == NodeTypeNull {
		return false
	} else if parentType != NodeTypeDocument && parentType != NodeTypeElement && parentType != NodeTypeDocumentFragment {
		return false
	} else if child == NodeTypeDocument || child == NodeTypeAttribute || child == 0 {
		return false
	} else if parentType != NodeTypeDocument && (child == NodeTypeDocumentType || child == NodeTypeDeclaration) {
		return false
	} else if parentType == NodeTypeDocument && child == NodeTypeElement && parent.hasChildOfType(NodeTypeElement) {
		return false
	} else if parentType == NodeTypeDocument && child == NodeTypeDocumentType && parent.hasChildOfType(NodeTypeDocumentType) {
		return false
	}
	return true
}

func allowInsertChildErr(parent *node, child NodeType) error {
	if !allowInsertChild(parent, child) {
		return errors.Wrapf(ErrHierarchyRequest, "parent node type %s may not have a %s child", parent.NodeType(), child)
	}
	return nil
}

func allowInsertAttribute(parent NodeType) bool {
	return parent == NodeTypeElement || parent == NodeTypeDeclaration
}

func allowInsertAttributeErr(parent NodeType) error {
	if !allowInsertAttribute(parent) {
		return errors.Wrapf(ErrHierarchyRequest, "parent node type %s may not have a %s child", parent, NodeTypeAttribute)
	}
	return nil
}

func allowMove(parent, child *node) bool {
	if !allowInsertChild(parent, child.NodeType()) {
		return false
	}

	if parent.OwnerDocument() != child.OwnerDocument() {
		return false
	}

	for cur := parent; cur != nil; cur = cur.parent {
		if cur == child {
			return false
		}
	}

	return true
}

func appendAttribute(attr, parent *node) {
	attr.parent = parent
	if head := parent.firstAttr; head != nil {
		tail := head.prevSib
		tail.nextSib = attr
		attr.prevSib = tail
		head.prevSib = attr
	} else {
		parent.firstAttr = attr
		attr.prevSib = attr
	}
}

func prependAttribute(attr, parent *node) {
	attr.parent = parent
	head := parent.firstAttr
	if head != nil {
		attr.prevSib = head.prevSib
		head.prevSib = attr
	} else {
		attr.prevSib = attr
	}
	attr.nextSib = head
	parent.firstAttr = attr
}

func insertAttributeAfter(attr, place, parent *node) {
	// attr and place must be an attribute
	if place.value.nodeType() != NodeTypeAttribute || attr.value.nodeType() != NodeTypeAttribute {
		panic(errors.Errorf(
			"want NodeTypeAttribute for both, but got place.nodeType() == %q attr.nodeType() == %q",
			place.value.nodeType(), attr.value.nodeType()))
	}

	attr.parent = parent
	if pnext := place.nextSib; pnext != nil {
		pnext.prevSib = attr
	} else {
		parent.firstAttr.prevSib = attr
	}
	attr.nextSib = place.nextSib
	attr.prevSib = place
	place.nextSib = attr
}

func insertAttributeBefore(attr, place, parent *node) {
	// attr and place must be an attribute
	if place.value.nodeType() != NodeTypeAttribute || attr.value.nodeType() != NodeTypeAttribute {
		panic(errors.Errorf(
			"want NodeTypeAttribute for both, but got place.nodeType() == %q attr.nodeType() == %q",
			place.value.nodeType(), attr.value.nodeType()))
	}

	attr.parent = parent
	if pprev := place.prevSib; pprev.nextSib != nil {
		pprev.nextSib = attr
	} else {
		parent.firstAttr = attr
	}
	attr.prevSib = place.prevSib
	attr.nextSib = place
	place.prevSib = attr
}

func removeAttribute(attr, parent *node) {
	// attr must be an attribute
	_ = attr.value.(*attribute)

	if parent.firstAttr == nil {
		return
	}

	if next := attr.nextSib; next != nil {
		next.prevSib = attr.prevSib
	} else {
		parent.firstAttr.prevSib = attr.prevSib
	}
	if attr.prevSib.nextSib != nil {
		attr.prevSib.nextSib = attr.nextSib
	} else {
		parent.firstAttr = attr.nextSib
	}
	attr.parent = nil
	attr.prevSib = nil
	attr.nextSib = nil
}

func iterAttributes(n *node, fn func(*node) error) error {
	for it := n.firstAttr; it != nil; it = it.nextSib {
		if err := fn(it); err != nil {
			return err
		}
	}
	return nil
}

func iterChildren(n *node, fn func(*node) error) error {
	for it := n.firstChild; it != nil; it = it.nextSib {
		if err := fn(it); err != nil {
			return err
		}
	}
	return nil
}

var _ Node = &node{}
