package dom

import (
	xml "github.com/andaru/flexml"
)

// Comment interface inherits from CharacterData and represents the content of a
// comment, i.e., all the characters between the starting '<!--' and ending
// '-->'. Note that this is the definition of a comment in XML, and, in
// practice, HTML, although some HTML tools may implement the full SGML comment
// structure.
type Comment interface {
	Node
	CharacterData
}

type commentNode struct {
	*comment
	*node
}

type comment struct{ text }

func (c comment) nodeType() NodeType { return NodeTypeComment }

// The methods below shadow the promoted *text mutators so that every
// character-data change on a Comment synthesizes
// DOMCharacterDataModified exactly once.

func (c commentNode) SetValue(v string) error { return c.SetData(v) }

func (c commentNode) SetData(arg string) error {
	return withCharDataMutation(c.node, func() error { return c.comment.text.SetData(arg) })
}

func (c commentNode) AppendData(arg string) error {
	return withCharDataMutation(c.node, func() error { return c.comment.text.AppendData(arg) })
}

func (c commentNode) InsertData(offset int, arg string) error {
	return withCharDataMutation(c.node, func() error { return c.comment.text.InsertData(offset, arg) })
}

func (c commentNode) DeleteData(offset, count int) error {
	return withCharDataMutation(c.node, func() error { return c.comment.text.DeleteData(offset, count) })
}

func (c commentNode) ReplaceData(offset, count int, arg string) error {
	return withCharDataMutation(c.node, func() error { return c.comment.text.ReplaceData(offset, count, arg) })
}

func newComment(c xml.Comment) *node { return &node{value: &comment{text{xml.CharData(c.Copy())}}} }

var _ Comment = &commentNode{}
var _ Comment = commentNode{}
