package dom

import (
	xml "github.com/andaru/flexml"
)

// CharacterData interface extends Node with a set of attributes and methods for
// accessing character data in the DOM. For clarity this set is defined here
// rather than on each object that uses these attributes and methods. No DOM
// objects correspond directly to CharacterData, though Text and others do
// inherit the interface from it. All offsets and counts in this interface are
// in bytes, and offsets start from 0.
type CharacterData interface {
	// Empty returns true if the node's character data is empty
	Empty() bool
	// Data returns the node's character data
	Data() string
	// SetData sets the node's character data, replacing any existing data
	SetData(arg string) error
	// AppendData appends the provided argument to the node's character data
	AppendData(arg string) error
	// InsertData inserts the provided argument at offset in the character data.
	InsertData(offset int, arg string) error
	// DeleteData deletes count bytes of character data at offset. If offset
	// plus count exceeds the node's character data length, ErrIndexSize is
	// returned.
	DeleteData(offset, count int) error
	// ReplaceData overwrites count bytes of character data starting at
	// offset with the first count bytes of arg; the data length does not
	// change, and bytes of arg beyond count are not written. If offset plus
	// count exceeds the node's character data length or arg is shorter than
	// count, ErrIndexSize is returned.
	ReplaceData(offset, count int, arg string) error
	// SubstringData returns count bytes of character data starting at
	// offset. If offset plus count exceeds the node's character data
	// length, ErrIndexSize is returned.
	SubstringData(offset, count int) (string, error)
}

// Text interface inherits from CharacterData and represents the textual content
// (termed character data in XML) of an Element or Attr. If there is no markup
// inside an element's content, the text is contained in a single object
// implementing the Text interface that is the only child of the element. If
// there is markup, it is parsed into the information items (elements, comments,
// etc.)  and Text nodes that form the list of children of the element.
//
// When a document is first made available via the DOM, there is only one Text
// node for each block of text. Users may create adjacent Text nodes that
// represent the contents of a given element without any intervening markup, but
// should be aware that there is no way to represent the separations between
// these nodes in XML or HTML, so they will not (in general) persist between DOM
// editing sessions. Node has no operation that merges such adjacent Text
// objects into a single node.
type Text interface {
	Node
	CharacterData

	// SplitText splits this node into two adjacent Text nodes at
	// offset, keeping the first offset bytes in this node and moving
	// the remainder into a new node inserted as this node's next
	// sibling. Returns the new node.
	SplitText(offset int) (Text, error)
}

type text struct {
	value []byte
}

type textNode struct {
	*text
	*node
}

func (t text) String() string               { return string(t.value) }
func (t text) nodeType() NodeType           { return NodeTypeText }
func (t text) Empty() bool                  { return len(t.value) == 0 }
func (t text) Data() string                 { return string(t.value) }
func (t text) charData() xml.CharData       { return xml.CharData(t.value).Copy() }
func (t *text) SetValue(value string) error { return t.SetData(value) }

func (t *text) SetData(arg string) error {
	t.value = t.value[:]
	t.value = []byte(arg)
	return nil
}

func (t *text) DeleteData(offset, count int) error {
	if count < 0 || offset+count > len(t.value) {
		return ErrIndexSize
	}
	t.value = append(t.value[:offset], t.value[offset+count:]...)
	return nil
}

func (t *text) ReplaceData(offset, count int, arg string) error {
	if count < 0 || offset+count > len(t.value) || len(arg) < count {
		return ErrIndexSize
	}
	copy(t.value[offset:], arg[:count])
	return nil
}

func (t *text) AppendData(arg string) error {
	t.value = append(t.value, []byte(arg)...)
	return nil
}

func (t *text) InsertData(offset int, arg string) error {
	if offset < 0 || offset > len(t.value) {
		return ErrIndexSize
	}
	t.value = append(t.value[:offset], append([]byte(arg), t.value[offset:]...)...)
	return nil
}

func (t text) SubstringData(offset, count int) (string, error) {
	if offset < 0 || count < 0 || offset+count > len(t.value) {
		return "", ErrIndexSize
	}
	return string(t.value[offset : offset+count]), nil
}

// The methods below shadow the promoted *text mutators so that every
// character-data change, however it's invoked, synthesizes
// DOMCharacterDataModified exactly once.

func (t textNode) SetValue(v string) error { return t.SetData(v) }

func (t textNode) SetData(arg string) error {
	return withCharDataMutation(t.node, func() error { return t.text.SetData(arg) })
}

func (t textNode) AppendData(arg string) error {
	return withCharDataMutation(t.node, func() error { return t.text.AppendData(arg) })
}

func (t textNode) InsertData(offset int, arg string) error {
	return withCharDataMutation(t.node, func() error { return t.text.InsertData(offset, arg) })
}

func (t textNode) DeleteData(offset, count int) error {
	return withCharDataMutation(t.node, func() error { return t.text.DeleteData(offset, count) })
}

func (t textNode) ReplaceData(offset, count int, arg string) error {
	return withCharDataMutation(t.node, func() error { return t.text.ReplaceData(offset, count, arg) })
}

// SplitText implements Text.SplitText, grounded on
// Poco::XML::CDATASection::splitText: the tail from offset onward
// becomes a new sibling node, and this node's data is truncated to
// the head.
func (t textNode) SplitText(offset int) (Text, error) {
	data := t.text.Data()
	if offset < 0 || offset > len(data) {
		return nil, ErrIndexSize
	}
	tail := data[offset:]
	newNode := newText(xml.CharData(tail))
	if err := t.DeleteData(offset, len(data)-offset); err != nil {
		return nil, err
	}
	if parent := t.node.parent; parent != nil {
		if err := parent.InsertChildAfter(newNode, t.node); err != nil {
			return nil, err
		}
	}
	return newNode.asText(), nil
}

func newText(cd xml.CharData) *node { return &node{value: &text{cd}} }

// textNode and *textNode must both implement Text
var _ Text = &textNode{}
var _ Text = textNode{}
