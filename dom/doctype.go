package dom

import xml "github.com/andaru/flexml"

// DocumentType is the document type declaration node. It exposes the
// DTD name and the public and system identifiers of the external
// subset; entities and notations are not represented.
type DocumentType interface {
	Node

	// Name returns the name of the DTD, i.e., the name immediately
	// following the DOCTYPE keyword, in the Local field.
	Name() xml.Name
	// PublicID returns the public identifier of the external subset.
	PublicID() string
	// SystemID returns the system identifier of the external subset.
	SystemID() string
}

type docType struct {
	name, publicID, systemID string
}

type docTypeNode struct {
	*docType
	*node
}

func (d *docType) nodeType() NodeType { return NodeTypeDocumentType }
func (d *docType) Name() xml.Name     { return xml.Name{Local: d.name} }
func (d *docType) PublicID() string   { return d.publicID }
func (d *docType) SystemID() string   { return d.systemID }

// CreateDocumentType returns a new, detached DocumentType node.
func CreateDocumentType(name, publicID, systemID string) DocumentType {
	return newDocType(name, publicID, systemID).asDocType()
}

func newDocType(name, publicID, systemID string) *node {
	return &node{value: &docType{name: name, publicID: publicID, systemID: systemID}}
}

func (n *node) asDocType() docTypeNode {
	return docTypeNode{n.value.(*docType), n}
}

func (d docTypeNode) Name() xml.Name { return d.docType.Name() }

var (
	_ DocumentType = docTypeNode{}
	_ DocumentType = &docTypeNode{}
)
